package budget

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

type fakeBudgetRepository struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepository) Create(_ context.Context, b *entity.Budget) error {
	f.budgets = append(f.budgets, b)
	return nil
}

func (f *fakeBudgetRepository) FindByID(_ context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Budget, error) {
	for _, b := range f.budgets {
		if b.ID == id && (owner == nil || b.UserID == *owner) {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (f *fakeBudgetRepository) ListByOwner(_ context.Context, owner uuid.UUID, _ bool) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range f.budgets {
		if b.UserID == owner {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepository) Update(context.Context, *entity.Budget) error { return nil }
func (f *fakeBudgetRepository) Delete(context.Context, uuid.UUID) error    { return nil }

// fakeSpending only answers ExpensesByCategory and records the window asked for.
type fakeSpending struct {
	adapter.TransactionRepository
	spent    map[string]decimal.Decimal
	from, to time.Time
	calls    int
}

func (f *fakeSpending) ExpensesByCategory(_ context.Context, _ uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error) {
	f.calls++
	f.from, f.to = from, to
	return f.spent, nil
}

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
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

func TestListBudgetsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	clock := fixedClock{now: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	food := entity.NewBudget(owner, "Food", decimal.NewFromInt(500), entity.BudgetPeriodMonthly, "USD", start, nil)
	fun := entity.NewBudget(owner, "Fun", decimal.NewFromInt(100), entity.BudgetPeriodMonthly, "USD", start, nil)
	other := entity.NewBudget(uuid.New(), "Food", decimal.NewFromInt(10), entity.BudgetPeriodMonthly, "USD", start, nil)

	t.Run("usage over the trailing window", func(t *testing.T) {
		c, _ := newTestCache(t)
		spending := &fakeSpending{spent: map[string]decimal.Decimal{"Food": decimal.NewFromInt(450)}}
		uc := NewListBudgetsUseCase(&fakeBudgetRepository{budgets: []*entity.Budget{food, fun, other}}, spending, c, clock)

		output, err := uc.Execute(ctx, owner)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(output.Budgets) != 2 {
			t.Fatalf("got %d budgets, want 2", len(output.Budgets))
		}

		byCategory := map[string]BudgetOutput{}
		for _, b := range output.Budgets {
			byCategory[b.Budget.Category] = b
		}
		if got := byCategory["Food"].UsagePercentage.StringFixed(2); got != "90.00" {
			t.Errorf("Food usage = %s, want 90.00", got)
		}
		if !byCategory["Fun"].Spent.IsZero() {
			t.Errorf("Fun spent = %s, want 0", byCategory["Fun"].Spent)
		}

		wantTo := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
		if !spending.to.Equal(wantTo) || !spending.from.Equal(wantTo.Add(-SpendingWindow)) {
			t.Errorf("window = [%v, %v)", spending.from, spending.to)
		}
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		c, mr := newTestCache(t)
		spending := &fakeSpending{spent: map[string]decimal.Decimal{}}
		uc := NewListBudgetsUseCase(&fakeBudgetRepository{budgets: []*entity.Budget{food}}, spending, c, clock)

		_, _ = uc.Execute(ctx, owner)
		_, _ = uc.Execute(ctx, owner)

		if spending.calls != 1 {
			t.Errorf("spending computed %d times, want 1", spending.calls)
		}
		if !mr.Exists(cache.BudgetsKey(owner)) {
			t.Error("listing was not cached")
		}
	})

	t.Run("alerts keep only budgets above the threshold", func(t *testing.T) {
		c, _ := newTestCache(t)
		spending := &fakeSpending{spent: map[string]decimal.Decimal{
			"Food": decimal.NewFromInt(400),
			"Fun":  decimal.NewFromInt(81),
		}}
		list := NewListBudgetsUseCase(&fakeBudgetRepository{budgets: []*entity.Budget{food, fun}}, spending, c, clock)

		alerts, err := NewListBudgetAlertsUseCase(list).Execute(ctx, owner)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(alerts) != 1 || alerts[0].Budget.Category != "Fun" {
			t.Errorf("alerts = %+v, want only Fun", alerts)
		}
	})
}

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	clock := fixedClock{now: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}

	tests := []struct {
		name    string
		input   CreateBudgetInput
		wantErr error
	}{
		{
			name:    "blank category",
			input:   CreateBudgetInput{OwnerID: owner, Category: "  ", Amount: decimal.NewFromInt(10), Period: entity.BudgetPeriodMonthly},
			wantErr: domainerror.ErrInvalidCategory,
		},
		{
			name:    "unknown period",
			input:   CreateBudgetInput{OwnerID: owner, Category: "Food", Amount: decimal.NewFromInt(10), Period: "weekly"},
			wantErr: domainerror.ErrInvalidBudgetPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCache(t)
			uc := NewCreateBudgetUseCase(&fakeBudgetRepository{}, c, clock)
			_, err := uc.Execute(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("non-positive amount is a validation error", func(t *testing.T) {
		c, _ := newTestCache(t)
		uc := NewCreateBudgetUseCase(&fakeBudgetRepository{}, c, clock)
		_, err := uc.Execute(ctx, CreateBudgetInput{OwnerID: owner, Category: "Food", Amount: decimal.Zero, Period: entity.BudgetPeriodMonthly})
		domainErr, ok := domainerror.As(err)
		if !ok || domainErr.Kind != domainerror.KindValidation {
			t.Fatalf("error = %v, want validation", err)
		}
	})

	t.Run("creates with today's start and clears the owner listing", func(t *testing.T) {
		c, mr := newTestCache(t)
		_ = mr.Set(cache.BudgetsKey(owner), "{}")
		_ = mr.Set(cache.GoalsKey(owner), "{}")
		repo := &fakeBudgetRepository{}
		uc := NewCreateBudgetUseCase(repo, c, clock)

		created, err := uc.Execute(ctx, CreateBudgetInput{
			OwnerID:  owner,
			Category: " Food ",
			Amount:   decimal.NewFromInt(500),
			Period:   entity.BudgetPeriodMonthly,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if created.Category != "Food" || created.Currency != "USD" {
			t.Errorf("created = %+v", created)
		}
		if got := created.StartDate.Format("2006-01-02"); got != "2024-03-15" {
			t.Errorf("StartDate = %s, want 2024-03-15", got)
		}
		if mr.Exists(cache.BudgetsKey(owner)) {
			t.Error("budget listing should be invalidated")
		}
		if !mr.Exists(cache.GoalsKey(owner)) {
			t.Error("goal listing should survive a budget write")
		}
	})
}
