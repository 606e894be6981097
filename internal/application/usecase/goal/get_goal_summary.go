package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

// GoalSummaryOutput aggregates an owner's goals.
type GoalSummaryOutput struct {
	TotalGoals      int
	AchievedGoals   int
	TotalTarget     decimal.Decimal
	TotalSaved      decimal.Decimal
	OverallProgress decimal.Decimal
}

// GetGoalSummaryUseCase aggregates goal progress.
type GetGoalSummaryUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalSummaryUseCase creates a new GetGoalSummaryUseCase instance.
func NewGetGoalSummaryUseCase(goalRepo adapter.GoalRepository) *GetGoalSummaryUseCase {
	return &GetGoalSummaryUseCase{goalRepo: goalRepo}
}

// Execute sums targets and savings across the owner's goals.
func (uc *GetGoalSummaryUseCase) Execute(ctx context.Context, owner uuid.UUID) (*GoalSummaryOutput, error) {
	goals, err := uc.goalRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &GoalSummaryOutput{TotalGoals: len(goals)}
	for _, g := range goals {
		if g.IsAchieved {
			output.AchievedGoals++
		}
		output.TotalTarget = output.TotalTarget.Add(g.TargetAmount)
		output.TotalSaved = output.TotalSaved.Add(g.CurrentAmount)
	}
	if output.TotalTarget.IsPositive() {
		output.OverallProgress = output.TotalSaved.Div(output.TotalTarget).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return output, nil
}
