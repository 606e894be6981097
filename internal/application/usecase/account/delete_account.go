package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ID    uuid.UUID
	Owner *uuid.UUID
}

// DeleteAccountUseCase handles account deletion.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       *cache.Cache
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository, c *cache.Cache) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
		cache:       c,
	}
}

// Execute deletes an account that no transaction references.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	account, err := uc.accountRepo.FindByID(ctx, input.ID, input.Owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return accountNotFound(err)
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	count, err := uc.accountRepo.CountTransactions(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if count > 0 {
		return domainerror.New(
			domainerror.KindConflict,
			domainerror.ErrCodeAccountHasTransactions,
			"Cannot delete account with existing transactions",
			domainerror.ErrAccountHasTransactions,
		)
	}

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceAccounts, account.UserID)
	return nil
}
