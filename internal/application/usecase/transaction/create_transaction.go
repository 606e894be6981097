package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	OwnerID      uuid.UUID
	AccountID    *uuid.UUID
	DepartmentID *uuid.UUID
	Type         entity.TransactionType
	Category     string
	Amount       decimal.Decimal
	Currency     string
	Description  string
	Date         time.Time // zero means today
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	cache           *cache.Cache
	clock           adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	c *cache.Cache,
	clock adapter.Clock,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		cache:           c,
		clock:           clock,
	}
}

// Execute validates and stores the transaction, then invalidates the
// owner's dependent views.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error) {
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	currency, err := normalizeCurrency(input.Currency)
	if err != nil {
		return nil, err
	}
	if err := ensureAccountOwned(ctx, uc.accountRepo, input.AccountID, input.OwnerID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = uc.clock.Now()
	}

	transaction := entity.NewTransaction(
		input.OwnerID,
		input.AccountID,
		input.Type,
		category,
		input.Amount,
		currency,
		input.Description,
		date,
	)
	transaction.DepartmentID = input.DepartmentID

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceTransactions, transaction.UserID)
	return transaction, nil
}
