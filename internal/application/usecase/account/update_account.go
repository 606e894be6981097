package account

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

// UpdateAccountInput represents the input for account updates. Nil fields
// are left unchanged.
type UpdateAccountInput struct {
	ID       uuid.UUID
	Owner    *uuid.UUID
	Name     *string
	Type     *entity.AccountType
	Balance  *decimal.Decimal
	Currency *string
	IsActive *bool
}

// UpdateAccountUseCase handles account updates.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       *cache.Cache
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository, c *cache.Cache) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
		cache:       c,
	}
}

// Execute applies the update to an account visible to the caller.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*entity.Account, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.ID, input.Owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, accountNotFound(err)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	name, accountType := account.Name, account.Type
	if input.Name != nil {
		name = *input.Name
	}
	if input.Type != nil {
		accountType = *input.Type
	}
	if account.Name, err = validateAccountFields(name, accountType); err != nil {
		return nil, err
	}
	account.Type = accountType

	if input.Currency != nil {
		currency, ok := entity.NormalizeCurrency(*input.Currency)
		if !ok {
			return nil, invalidCurrency()
		}
		account.Currency = currency
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceAccounts, account.UserID)
	return account, nil
}
