package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is absent or not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidProgressAmount is returned when a progress update is not positive.
	ErrInvalidProgressAmount = errors.New("invalid progress amount")

	// ErrInvalidGoalTitle is returned when the title is empty or too long.
	ErrInvalidGoalTitle = errors.New("invalid goal title")
)

const (
	ErrCodeGoalNotFound          Code = "GOL-010001"
	ErrCodeInvalidTargetAmount   Code = "GOL-010002"
	ErrCodeInvalidCurrentAmount  Code = "GOL-010003"
	ErrCodeInvalidProgressAmount Code = "GOL-010004"
	ErrCodeInvalidGoalTitle      Code = "GOL-010005"
	ErrCodeMissingGoalFields     Code = "GOL-010006"
)
