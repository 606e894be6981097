package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/cachestore"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAnalyticsRepository struct {
	calls     int
	totals    adapter.Totals
	breakdown []adapter.CategoryTotal
	points    []adapter.AmountPoint
	err       error
}

func (f *fakeAnalyticsRepository) Totals(context.Context, *uuid.UUID, adapter.DateRange) (adapter.Totals, error) {
	f.calls++
	return f.totals, f.err
}

func (f *fakeAnalyticsRepository) CategoryBreakdown(context.Context, *uuid.UUID, adapter.DateRange) ([]adapter.CategoryTotal, error) {
	return f.breakdown, f.err
}

func (f *fakeAnalyticsRepository) AmountPoints(context.Context, *uuid.UUID, adapter.DateRange) ([]adapter.AmountPoint, error) {
	return f.points, f.err
}

func newCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(cachestore.NewRedisStore(client), cache.DefaultTTLPolicy()), mr
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func point(y int, m time.Month, d int, typ entity.TransactionType, amount string) adapter.AmountPoint {
	return adapter.AmountPoint{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Type: typ, Amount: dec(amount)}
}

func TestGetAnalyticsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	repo := &fakeAnalyticsRepository{
		totals: adapter.Totals{Income: dec("3000"), Expense: dec("1250.50"), TransactionCount: 4},
		breakdown: []adapter.CategoryTotal{
			{Category: "Salary", Type: entity.TransactionTypeIncome, Total: dec("3000")},
			{Category: "Food", Type: entity.TransactionTypeExpense, Total: dec("250.50")},
			{Category: "Rent", Type: entity.TransactionTypeExpense, Total: dec("1000")},
		},
		points: []adapter.AmountPoint{
			point(2024, 6, 1, entity.TransactionTypeIncome, "3000"),
			point(2024, 6, 2, entity.TransactionTypeExpense, "1000"),
			point(2024, 5, 20, entity.TransactionTypeExpense, "250.50"),
			point(2018, 1, 1, entity.TransactionTypeIncome, "1"),
			point(2019, 1, 1, entity.TransactionTypeIncome, "1"),
			point(2020, 1, 1, entity.TransactionTypeIncome, "1"),
			point(2021, 1, 1, entity.TransactionTypeIncome, "1"),
		},
	}

	t.Run("aggregates and caches", func(t *testing.T) {
		c, mr := newCache(t)
		uc := NewGetAnalyticsUseCase(repo, c, fixedClock{now: now})

		output, err := uc.Execute(ctx, GetAnalyticsInput{Owner: owner})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !output.Balance.Equal(dec("1749.50")) {
			t.Errorf("Balance = %s, want 1749.50", output.Balance)
		}
		if got := output.CategoryBreakdown[0].Category; got != "Rent" {
			t.Errorf("first category = %s, want Rent (largest expense)", got)
		}
		if len(output.MonthlyTrends) != 12 {
			t.Fatalf("MonthlyTrends has %d months, want 12", len(output.MonthlyTrends))
		}
		last := output.MonthlyTrends[11]
		if last.Month != "2024-06" || !last.Income.Equal(dec("3000")) || !last.Expense.Equal(dec("1000")) {
			t.Errorf("last month = %+v", last)
		}
		if output.MonthlyTrends[0].Month != "2023-07" {
			t.Errorf("first month = %s, want 2023-07", output.MonthlyTrends[0].Month)
		}
		if len(output.YearlyOverview) != 5 || output.YearlyOverview[0].Year != 2024 {
			t.Errorf("YearlyOverview = %+v, want 5 years starting 2024", output.YearlyOverview)
		}
		if !mr.Exists(cache.AnalyticsKey(owner, entity.AnalyticsPeriodMonthly)) {
			t.Error("analytics should be cached under the monthly key")
		}
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		c, _ := newCache(t)
		counting := *repo
		counting.calls = 0
		uc := NewGetAnalyticsUseCase(&counting, c, fixedClock{now: now})

		_, _ = uc.Execute(ctx, GetAnalyticsInput{Owner: owner, Period: "yearly"})
		cached, err := uc.Execute(ctx, GetAnalyticsInput{Owner: owner, Period: "yearly"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if counting.calls != 1 {
			t.Errorf("repository hit %d times, want 1", counting.calls)
		}
		if !cached.Balance.Equal(dec("1749.50")) {
			t.Errorf("cached Balance = %s", cached.Balance)
		}
	})

	t.Run("unknown period is a validation error", func(t *testing.T) {
		c, _ := newCache(t)
		uc := NewGetAnalyticsUseCase(repo, c, fixedClock{now: now})

		_, err := uc.Execute(ctx, GetAnalyticsInput{Owner: owner, Period: "weekly"})
		domainErr, ok := domainerror.As(err)
		if !ok || domainErr.Kind != domainerror.KindValidation {
			t.Fatalf("error = %v, want validation error", err)
		}
	})

	t.Run("repository failure is not cached", func(t *testing.T) {
		c, mr := newCache(t)
		failing := &fakeAnalyticsRepository{err: errors.New("db down")}
		uc := NewGetAnalyticsUseCase(failing, c, fixedClock{now: now})

		if _, err := uc.Execute(ctx, GetAnalyticsInput{Owner: owner}); err == nil {
			t.Fatal("expected error")
		}
		if len(mr.Keys()) != 0 {
			t.Errorf("keys = %v, want none", mr.Keys())
		}
	})
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name    string
		income  string
		expense string
		want    string
	}{
		{"no income", "0", "100", "0"},
		{"half saved", "1000", "500", "50"},
		{"overspent", "1000", "1500", "-50"},
		{"rounded", "3", "1", "66.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsRate(dec(tt.income), dec(tt.expense))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("SavingsRate() = %s, want %s", got, tt.want)
			}
		})
	}
}
