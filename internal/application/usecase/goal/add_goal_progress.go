package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// AddGoalProgressInput represents an amount saved toward a goal.
type AddGoalProgressInput struct {
	ID     uuid.UUID
	Owner  *uuid.UUID
	Amount decimal.Decimal
}

// AddGoalProgressUseCase adds savings to a goal.
type AddGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
	cache    *cache.Cache
	clock    adapter.Clock
}

// NewAddGoalProgressUseCase creates a new AddGoalProgressUseCase instance.
func NewAddGoalProgressUseCase(goalRepo adapter.GoalRepository, c *cache.Cache, clock adapter.Clock) *AddGoalProgressUseCase {
	return &AddGoalProgressUseCase{
		goalRepo: goalRepo,
		cache:    c,
		clock:    clock,
	}
}

// Execute adds a positive amount to the goal's current amount.
func (uc *AddGoalProgressUseCase) Execute(ctx context.Context, input AddGoalProgressInput) (*GoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidProgressAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidProgressAmount,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.ID, input.Owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFound(err)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	goal.AddProgress(input.Amount)
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceGoals, goal.UserID)
	output := toOutput(goal, uc.clock.Now())
	return &output, nil
}
