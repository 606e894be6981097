package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// BudgetLine reports one active budget against its current period.
type BudgetLine struct {
	BudgetID        uuid.UUID
	Category        string
	BudgetAmount    decimal.Decimal
	Period          entity.BudgetPeriod
	Currency        string
	ActualSpent     decimal.Decimal
	Remaining       decimal.Decimal
	UsagePercentage decimal.Decimal
	Status          entity.BudgetStatus
}

// BudgetReportOutput represents a budget report.
type BudgetReportOutput struct {
	Budgets     []BudgetLine
	GeneratedAt time.Time
}

// GetBudgetReportUseCase compares active budgets with spending in their
// current calendar period.
type GetBudgetReportUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetBudgetReportUseCase creates a new GetBudgetReportUseCase instance.
func NewGetBudgetReportUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetBudgetReportUseCase {
	return &GetBudgetReportUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute returns one line per active budget, highest usage first.
func (uc *GetBudgetReportUseCase) Execute(ctx context.Context, owner uuid.UUID) (*BudgetReportOutput, error) {
	now := uc.clock.Now()
	budgets, err := uc.budgetRepo.ListByOwner(ctx, owner, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	tomorrow := entity.DateOf(now).AddDate(0, 0, 1)
	spendingSince := map[time.Time]map[string]decimal.Decimal{}

	lines := make([]BudgetLine, 0, len(budgets))
	for _, b := range budgets {
		start := b.CurrentPeriodStart(now)
		spending, ok := spendingSince[start]
		if !ok {
			spending, err = uc.transactionRepo.ExpensesByCategory(ctx, owner, start, tomorrow)
			if err != nil {
				return nil, fmt.Errorf("failed to sum spending: %w", err)
			}
			spendingSince[start] = spending
		}

		spent := spending[b.Category]
		usage := b.UsagePercentage(spent)
		lines = append(lines, BudgetLine{
			BudgetID:        b.ID,
			Category:        b.Category,
			BudgetAmount:    b.Amount,
			Period:          b.Period,
			Currency:        b.Currency,
			ActualSpent:     spent,
			Remaining:       b.Amount.Sub(spent),
			UsagePercentage: usage,
			Status:          entity.StatusFor(usage),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].UsagePercentage.GreaterThan(lines[j].UsagePercentage)
	})

	return &BudgetReportOutput{
		Budgets:     lines,
		GeneratedAt: now.UTC(),
	}, nil
}
