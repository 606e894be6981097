// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// SpendingWindow is how far back a budget listing sums category spending.
const SpendingWindow = 30 * 24 * time.Hour

// BudgetOutput is a budget with its recent spending.
type BudgetOutput struct {
	Budget          *entity.Budget
	Spent           decimal.Decimal
	UsagePercentage decimal.Decimal
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []BudgetOutput
}

// ListBudgetsUseCase lists one owner's budgets through the cache.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	cache           *cache.Cache
	clock           adapter.Clock
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	c *cache.Cache,
	clock adapter.Clock,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		cache:           c,
		clock:           clock,
	}
}

// Execute returns every budget of the owner with spending over the last
// SpendingWindow.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, owner uuid.UUID) (*ListBudgetsOutput, error) {
	return cache.ReadThrough(ctx, uc.cache, cache.BudgetsKey(owner), uc.cache.ListTTL(),
		func(ctx context.Context) (*ListBudgetsOutput, error) {
			return uc.compute(ctx, owner)
		})
}

func (uc *ListBudgetsUseCase) compute(ctx context.Context, owner uuid.UUID) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.ListByOwner(ctx, owner, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	tomorrow := entity.DateOf(uc.clock.Now()).AddDate(0, 0, 1)
	spent, err := uc.transactionRepo.ExpensesByCategory(ctx, owner, tomorrow.Add(-SpendingWindow), tomorrow)
	if err != nil {
		return nil, fmt.Errorf("failed to sum spending: %w", err)
	}

	output := &ListBudgetsOutput{Budgets: make([]BudgetOutput, 0, len(budgets))}
	for _, b := range budgets {
		amount := spent[b.Category]
		output.Budgets = append(output.Budgets, BudgetOutput{
			Budget:          b,
			Spent:           amount,
			UsagePercentage: b.UsagePercentage(amount),
		})
	}
	return output, nil
}
