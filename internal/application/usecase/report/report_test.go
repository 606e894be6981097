package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeBudgetRepository struct {
	adapter.BudgetRepository
	budgets []*entity.Budget
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

// fakeSpending answers ExpensesByCategory per window start.
type fakeSpending struct {
	adapter.TransactionRepository
	byStart map[time.Time]map[string]decimal.Decimal
	windows [][2]time.Time
}

func (f *fakeSpending) ExpensesByCategory(_ context.Context, _ uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error) {
	f.windows = append(f.windows, [2]time.Time{from, to})
	return f.byStart[from], nil
}

func TestGetBudgetReportUseCase_Status(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	clock := fixedClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		spent      string
		wantStatus entity.BudgetStatus
		wantUsage  string
		wantLeft   string
	}{
		{"nothing spent", "0", entity.BudgetStatusOnTrack, "0.00", "200.00"},
		{"just under the threshold", "159.98", entity.BudgetStatusOnTrack, "79.99", "40.02"},
		{"at the threshold", "160", entity.BudgetStatusNearLimit, "80.00", "40.00"},
		{"fully used", "200", entity.BudgetStatusNearLimit, "100.00", "0.00"},
		{"over the amount", "250", entity.BudgetStatusOver, "125.00", "-50.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := entity.NewBudget(owner, "Food", decimal.NewFromInt(200), entity.BudgetPeriodMonthly, "", monthStart, nil)
			spending := &fakeSpending{byStart: map[time.Time]map[string]decimal.Decimal{
				monthStart: {"Food": decimal.RequireFromString(tt.spent)},
			}}
			uc := NewGetBudgetReportUseCase(&fakeBudgetRepository{budgets: []*entity.Budget{b}}, spending, clock)

			output, err := uc.Execute(ctx, owner)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if len(output.Budgets) != 1 {
				t.Fatalf("got %d lines, want 1", len(output.Budgets))
			}

			line := output.Budgets[0]
			if line.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", line.Status, tt.wantStatus)
			}
			if got := line.UsagePercentage.StringFixed(2); got != tt.wantUsage {
				t.Errorf("UsagePercentage = %s, want %s", got, tt.wantUsage)
			}
			if got := line.Remaining.StringFixed(2); got != tt.wantLeft {
				t.Errorf("Remaining = %s, want %s", got, tt.wantLeft)
			}
		})
	}
}

func TestGetBudgetReportUseCase_Periods(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	clock := fixedClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	yearStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	monthly := entity.NewBudget(owner, "Food", decimal.NewFromInt(100), entity.BudgetPeriodMonthly, "", monthStart, nil)
	yearly := entity.NewBudget(owner, "Travel", decimal.NewFromInt(1000), entity.BudgetPeriodYearly, "", yearStart, nil)
	spending := &fakeSpending{byStart: map[time.Time]map[string]decimal.Decimal{
		monthStart: {"Food": decimal.NewFromInt(10), "Travel": decimal.NewFromInt(5)},
		yearStart:  {"Food": decimal.NewFromInt(300), "Travel": decimal.NewFromInt(900)},
	}}
	uc := NewGetBudgetReportUseCase(&fakeBudgetRepository{budgets: []*entity.Budget{monthly, yearly}}, spending, clock)

	output, err := uc.Execute(ctx, owner)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Budgets) != 2 || output.Budgets[0].Category != "Travel" {
		t.Fatalf("lines = %+v, want Travel first by usage", output.Budgets)
	}
	if !output.Budgets[0].ActualSpent.Equal(decimal.NewFromInt(900)) {
		t.Errorf("yearly spent = %s, want 900 since January", output.Budgets[0].ActualSpent)
	}
	if !output.Budgets[1].ActualSpent.Equal(decimal.NewFromInt(10)) {
		t.Errorf("monthly spent = %s, want 10 since the 1st", output.Budgets[1].ActualSpent)
	}

	wantEnd := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	for _, w := range spending.windows {
		if !w[1].Equal(wantEnd) {
			t.Errorf("window end = %v, want %v", w[1], wantEnd)
		}
	}
	if len(spending.windows) != 2 {
		t.Errorf("spending queried %d times, want once per period start", len(spending.windows))
	}
}
