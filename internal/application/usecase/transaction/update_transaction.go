package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction updates. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	ID           uuid.UUID
	Owner        *uuid.UUID
	AccountID    *uuid.UUID
	DepartmentID *uuid.UUID
	Type         *entity.TransactionType
	Category     *string
	Amount       *decimal.Decimal
	Currency     *string
	Description  *string
	Date         *time.Time
}

// UpdateTransactionUseCase handles transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	cache           *cache.Cache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	c *cache.Cache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		cache:           c,
	}
}

// Execute applies the update and invalidates the row owner's views.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID, input.Owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFound(err)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		category, err := normalizeCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		transaction.Category = category
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		transaction.Description = *input.Description
	}
	if input.Currency != nil {
		currency, err := normalizeCurrency(*input.Currency)
		if err != nil {
			return nil, err
		}
		transaction.Currency = currency
	}
	if input.AccountID != nil {
		if err := ensureAccountOwned(ctx, uc.accountRepo, input.AccountID, transaction.UserID); err != nil {
			return nil, err
		}
		transaction.AccountID = input.AccountID
	}
	if input.DepartmentID != nil {
		transaction.DepartmentID = input.DepartmentID
	}
	if input.Date != nil {
		transaction.Date = entity.DateOf(*input.Date)
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceTransactions, transaction.UserID)
	return transaction, nil
}
