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
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// GetAnalyticsInput represents the input for analytics.
type GetAnalyticsInput struct {
	Owner  uuid.UUID
	Period string
}

// AnalyticsTotals is the all-time total of an owner's transactions.
type AnalyticsTotals struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	TotalTransactions int64
}

// GetAnalyticsOutput represents an owner's analytics. The category
// breakdown covers the requested period; the rest is period independent.
type GetAnalyticsOutput struct {
	Period            entity.AnalyticsPeriod
	CategoryBreakdown []CategoryAmounts
	MonthlyTrends     []MonthAmounts
	YearlyOverview    []YearAmounts
	Totals            AnalyticsTotals
	Balance           decimal.Decimal
}

// GetAnalyticsUseCase computes analytics through the cache.
type GetAnalyticsUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
	cache         *cache.Cache
	clock         adapter.Clock
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(analyticsRepo adapter.AnalyticsRepository, c *cache.Cache, clock adapter.Clock) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		analyticsRepo: analyticsRepo,
		cache:         c,
		clock:         clock,
	}
}

// Execute returns the owner's analytics. An empty period means monthly.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	period := entity.AnalyticsPeriodMonthly
	if input.Period != "" {
		period = entity.AnalyticsPeriod(input.Period)
	}
	if !period.Valid() {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidPeriod,
			"period must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidPeriod,
		)
	}

	return cache.ReadThrough(ctx, uc.cache, cache.AnalyticsKey(input.Owner, period), uc.cache.AggregateTTL(),
		func(ctx context.Context) (*GetAnalyticsOutput, error) {
			return uc.compute(ctx, input.Owner, period)
		})
}

func (uc *GetAnalyticsUseCase) compute(ctx context.Context, owner uuid.UUID, period entity.AnalyticsPeriod) (*GetAnalyticsOutput, error) {
	now := uc.clock.Now()
	var (
		totals    adapter.Totals
		breakdown []adapter.CategoryTotal
		points    []adapter.AmountPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = uc.analyticsRepo.Totals(gctx, &owner, adapter.DateRange{})
		return err
	})
	g.Go(func() error {
		var err error
		breakdown, err = uc.analyticsRepo.CategoryBreakdown(gctx, &owner, periodRange(period, now))
		return err
	})
	g.Go(func() error {
		var err error
		points, err = uc.analyticsRepo.AmountPoints(gctx, &owner, adapter.DateRange{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}

	return &GetAnalyticsOutput{
		Period:            period,
		CategoryBreakdown: mergeCategories(breakdown),
		MonthlyTrends:     monthlyTrend(points, now),
		YearlyOverview:    yearlyOverview(points),
		Totals: AnalyticsTotals{
			TotalIncome:       totals.Income,
			TotalExpense:      totals.Expense,
			TotalTransactions: totals.TransactionCount,
		},
		Balance: totals.Net(),
	}, nil
}
