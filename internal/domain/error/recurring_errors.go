package error

import "errors"

// Recurring rule domain errors.
var (
	// ErrRecurringRuleNotFound is returned when a rule is absent or not owned by the caller.
	ErrRecurringRuleNotFound = errors.New("recurring transaction not found")

	// ErrInvalidFrequency is returned when the frequency is unknown.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrOccurrenceAlreadyMaterialized is returned when an occurrence was already turned into a transaction.
	ErrOccurrenceAlreadyMaterialized = errors.New("occurrence already materialized")
)

const (
	ErrCodeRecurringRuleNotFound  Code = "REC-010001"
	ErrCodeInvalidFrequency       Code = "REC-010002"
	ErrCodeInvalidRecurringDates  Code = "REC-010003"
	ErrCodeMissingRecurringFields Code = "REC-010004"
)
