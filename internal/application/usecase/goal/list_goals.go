// Package goal contains financial goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// GoalOutput is a goal with its derived progress.
type GoalOutput struct {
	Goal               *entity.FinancialGoal
	ProgressPercentage decimal.Decimal
	DaysRemaining      *int
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalOutput
}

// ListGoalsUseCase lists one owner's goals through the cache.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	cache    *cache.Cache
	clock    adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, c *cache.Cache, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		cache:    c,
		clock:    clock,
	}
}

// Execute returns the owner's goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, owner uuid.UUID) (*ListGoalsOutput, error) {
	return cache.ReadThrough(ctx, uc.cache, cache.GoalsKey(owner), uc.cache.ListTTL(),
		func(ctx context.Context) (*ListGoalsOutput, error) {
			goals, err := uc.goalRepo.ListByOwner(ctx, owner)
			if err != nil {
				return nil, fmt.Errorf("failed to list goals: %w", err)
			}
			now := uc.clock.Now()
			output := &ListGoalsOutput{Goals: make([]GoalOutput, 0, len(goals))}
			for _, g := range goals {
				output.Goals = append(output.Goals, toOutput(g, now))
			}
			return output, nil
		})
}
