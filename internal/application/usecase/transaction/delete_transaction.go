package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// DeleteTransactionUseCase handles transaction deletion. Admin deletion of
// any row goes through the same use case with an unrestricted owner.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           *cache.Cache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, c *cache.Cache) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           c,
	}
}

// Execute deletes the transaction and invalidates its owner's views.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error {
	transaction, err := uc.transactionRepo.FindByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return transactionNotFound(err)
		}
		return fmt.Errorf("failed to find transaction: %w", err)
	}

	if err := uc.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceTransactions, transaction.UserID)
	return nil
}
