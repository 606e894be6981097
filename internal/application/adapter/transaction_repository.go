package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	Owner     *uuid.UUID
	AccountID *uuid.UUID
	Type      *entity.TransactionType
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// OwnedTransaction is a transaction joined with its owner's identity.
type OwnedTransaction struct {
	Transaction *entity.Transaction
	Username    string
	Email       string
}

// OwnedTransactionListResult represents one page of owned transactions.
type OwnedTransactionListResult struct {
	Transactions []OwnedTransaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by ID within the owner filter.
	FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Transaction, error)

	// List retrieves a page of transactions, newest first.
	List(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// ListWithOwners retrieves a page of transactions joined with owner details.
	ListWithOwners(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*OwnedTransactionListResult, error)

	// Recent returns the owner's latest transactions.
	Recent(ctx context.Context, owner uuid.UUID, limit int) ([]*entity.Transaction, error)

	// Categories returns the distinct categories used by the owner.
	Categories(ctx context.Context, owner uuid.UUID) ([]string, error)

	// ExpensesByCategory sums expense amounts per category for dates in [from, to).
	ExpensesByCategory(ctx context.Context, owner uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error)

	// Update saves an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
