package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal updates. Nil fields are
// left unchanged.
type UpdateGoalInput struct {
	ID            uuid.UUID
	Owner         *uuid.UUID
	Title         *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
	Category      *string
}

// UpdateGoalUseCase handles goal updates.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    *cache.Cache
	clock    adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, c *cache.Cache, clock adapter.Clock) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		cache:    c,
		clock:    clock,
	}
}

// Execute applies the update and re-derives IsAchieved.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*GoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.ID, input.Owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFound(err)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if input.Title != nil {
		if goal.Title, err = normalizeTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		goal.Description = *input.Description
	}
	if input.TargetAmount != nil {
		if err := validateTarget(*input.TargetAmount); err != nil {
			return nil, err
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		if err := validateCurrent(*input.CurrentAmount); err != nil {
			return nil, err
		}
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.TargetDate != nil {
		goal.TargetDate = datePtr(input.TargetDate)
	}
	if input.Category != nil {
		goal.Category = strings.TrimSpace(*input.Category)
	}
	goal.RefreshAchieved()
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceGoals, goal.UserID)
	output := toOutput(goal, uc.clock.Now())
	return &output, nil
}
