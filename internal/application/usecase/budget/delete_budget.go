package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// DeleteBudgetUseCase handles budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      *cache.Cache
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, c *cache.Cache) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      c,
	}
}

// Execute deletes a budget visible to the caller.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error {
	budget, err := uc.budgetRepo.FindByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return budgetNotFound(err)
		}
		return fmt.Errorf("failed to find budget: %w", err)
	}

	if err := uc.budgetRepo.Delete(ctx, budget.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceBudgets, budget.UserID)
	return nil
}
