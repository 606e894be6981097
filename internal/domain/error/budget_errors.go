package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is absent or not owned by the caller.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetPeriod is returned when the period is not monthly or yearly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
)

const (
	ErrCodeBudgetNotFound        Code = "BUD-010001"
	ErrCodeInvalidBudgetPeriod   Code = "BUD-010002"
	ErrCodeInvalidBudgetAmount   Code = "BUD-010003"
	ErrCodeMissingBudgetFields   Code = "BUD-010004"
	ErrCodeInvalidBudgetDates    Code = "BUD-010005"
	ErrCodeInvalidBudgetCategory Code = "BUD-010006"
)
