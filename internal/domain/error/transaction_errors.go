package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is absent or not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when type is neither income nor expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidCategory is returned when a category is empty or too long.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrDescriptionTooLong is returned when a description exceeds its limit.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidDateRange is returned when a start date follows its end date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidCurrency is returned when a currency code is not three letters.
	ErrInvalidCurrency = errors.New("invalid currency")
)

const (
	ErrCodeTransactionNotFound    Code = "TXN-010001"
	ErrCodeInvalidTransactionType Code = "TXN-010002"
	ErrCodeInvalidAmount          Code = "TXN-010003"
	ErrCodeInvalidCategory        Code = "TXN-010004"
	ErrCodeDescriptionTooLong     Code = "TXN-010005"
	ErrCodeInvalidDateRange       Code = "TXN-010006"
	ErrCodeInvalidCurrency        Code = "TXN-010007"
	ErrCodeMissingTransactionData Code = "TXN-010008"
)
