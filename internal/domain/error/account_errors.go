package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is absent or not owned by the caller.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountHasTransactions is returned when deleting an account still referenced by transactions.
	ErrAccountHasTransactions = errors.New("cannot delete account with existing transactions")

	// ErrInvalidAccountType is returned when the account type is unknown.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidAccountName is returned when the account name is empty or too long.
	ErrInvalidAccountName = errors.New("invalid account name")
)

const (
	ErrCodeAccountNotFound        Code = "ACC-010001"
	ErrCodeAccountHasTransactions Code = "ACC-010002"
	ErrCodeInvalidAccountType     Code = "ACC-010003"
	ErrCodeInvalidAccountName     Code = "ACC-010004"
	ErrCodeMissingAccountFields   Code = "ACC-010005"
)
