package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// AccountWithBalance pairs an account with the balance implied by its transactions.
type AccountWithBalance struct {
	Account           *entity.Account
	CalculatedBalance decimal.Decimal
}

// AccountTotal is the summed balance of one owner's accounts of a currency and type.
type AccountTotal struct {
	Currency     string
	Type         entity.AccountType
	AccountCount int64
	Balance      decimal.Decimal
}

// AccountRepository defines the interface for account persistence operations.
// owner filters: nil means any owner.
type AccountRepository interface {
	// Create creates a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by ID within the owner filter.
	FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Account, error)

	// ListWithBalances returns the owner's accounts with calculated balances.
	ListWithBalances(ctx context.Context, owner uuid.UUID) ([]AccountWithBalance, error)

	// Summary returns active account totals grouped by currency and type.
	Summary(ctx context.Context, owner uuid.UUID) ([]AccountTotal, error)

	// Update saves an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountTransactions returns how many transactions reference the account.
	CountTransactions(ctx context.Context, id uuid.UUID) (int64, error)
}
