package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

const recentTransactionLimit = 5

// MonthStats is one month's income, expense and transaction count.
type MonthStats struct {
	Income           decimal.Decimal
	Expense          decimal.Decimal
	TransactionCount int64
}

// DashboardOutput represents an owner's dashboard.
type DashboardOutput struct {
	CurrentMonth       MonthStats
	PreviousMonth      MonthStats
	RecentTransactions []*entity.Transaction
	SavingsRate        decimal.Decimal
}

// GetDashboardUseCase computes the dashboard through the cache.
type GetDashboardUseCase struct {
	analyticsRepo   adapter.AnalyticsRepository
	transactionRepo adapter.TransactionRepository
	cache           *cache.Cache
	clock           adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	analyticsRepo adapter.AnalyticsRepository,
	transactionRepo adapter.TransactionRepository,
	c *cache.Cache,
	clock adapter.Clock,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		analyticsRepo:   analyticsRepo,
		transactionRepo: transactionRepo,
		cache:           c,
		clock:           clock,
	}
}

// Execute returns the owner's dashboard.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, owner uuid.UUID) (*DashboardOutput, error) {
	return cache.ReadThrough(ctx, uc.cache, cache.DashboardKey(owner), uc.cache.AggregateTTL(),
		func(ctx context.Context) (*DashboardOutput, error) {
			return uc.compute(ctx, owner)
		})
}

func (uc *GetDashboardUseCase) compute(ctx context.Context, owner uuid.UUID) (*DashboardOutput, error) {
	currentStart := firstOfMonth(uc.clock.Now())
	currentEnd := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)

	var (
		current, previous adapter.Totals
		recent            []*entity.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = uc.analyticsRepo.Totals(gctx, &owner, adapter.DateRange{From: &currentStart, To: &currentEnd})
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = uc.analyticsRepo.Totals(gctx, &owner, adapter.DateRange{From: &previousStart, To: &currentStart})
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = uc.transactionRepo.Recent(gctx, owner, recentTransactionLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard: %w", err)
	}
	if recent == nil {
		recent = []*entity.Transaction{}
	}

	return &DashboardOutput{
		CurrentMonth:       monthStats(current),
		PreviousMonth:      monthStats(previous),
		RecentTransactions: recent,
		SavingsRate:        SavingsRate(current.Income, current.Expense),
	}, nil
}

func monthStats(t adapter.Totals) MonthStats {
	return MonthStats{
		Income:           t.Income,
		Expense:          t.Expense,
		TransactionCount: t.TransactionCount,
	}
}

// SavingsRate returns (income - expense) / income as a percentage rounded to
// two places, or zero without income.
func SavingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expense).Div(income).Mul(decimal.NewFromInt(100)).Round(2)
}
