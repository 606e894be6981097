package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// DefaultCurrency is used when a write omits the currency code.
const DefaultCurrency = "USD"

// Transaction represents a financial transaction.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       *uuid.UUID
	DepartmentID    *uuid.UUID
	RecurringRuleID *uuid.UUID
	OccurrenceDate  *time.Time
	Type            TransactionType
	Category        string
	Amount          decimal.Decimal
	Currency        string
	Description     string
	Date            time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID *uuid.UUID,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	currency string,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Date:        DateOf(date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the amount as a balance delta.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionListResult represents one page of transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
