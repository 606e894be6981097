package budget

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

// UpdateBudgetInput represents the input for budget updates. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	ID        uuid.UUID
	Owner     *uuid.UUID
	Category  *string
	Amount    *decimal.Decimal
	Period    *entity.BudgetPeriod
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  *bool
}

// UpdateBudgetUseCase handles budget updates.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      *cache.Cache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, c *cache.Cache) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      c,
	}
}

// Execute applies the update to a budget visible to the caller.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*entity.Budget, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.ID, input.Owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetNotFound(err)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if input.Category != nil {
		if budget.Category, err = normalizeCategory(*input.Category); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		if err := validatePeriod(*input.Period); err != nil {
			return nil, err
		}
		budget.Period = *input.Period
	}
	if input.StartDate != nil {
		budget.StartDate = entity.DateOf(*input.StartDate)
	}
	if input.EndDate != nil {
		budget.EndDate = datePtr(input.EndDate)
	}
	if err := validateDates(budget.StartDate, budget.EndDate); err != nil {
		return nil, err
	}
	if input.IsActive != nil {
		budget.IsActive = *input.IsActive
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceBudgets, budget.UserID)
	return budget, nil
}
