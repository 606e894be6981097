package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// DeleteGoalUseCase handles goal deletion.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    *cache.Cache
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, c *cache.Cache) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		cache:    c,
	}
}

// Execute deletes a goal visible to the caller.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error {
	goal, err := uc.goalRepo.FindByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return goalNotFound(err)
		}
		return fmt.Errorf("failed to find goal: %w", err)
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceGoals, goal.UserID)
	return nil
}
