package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// DateRange is a half-open interval [From, To). Nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Totals aggregates income and expense amounts.
type Totals struct {
	Income           decimal.Decimal
	Expense          decimal.Decimal
	TransactionCount int64
}

// Net returns income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// CategoryTotal aggregates one category and type.
type CategoryTotal struct {
	Category         string
	Type             entity.TransactionType
	Total            decimal.Decimal
	TransactionCount int64
}

// AmountPoint is a single dated amount used for time-bucketed trends.
type AmountPoint struct {
	Date   time.Time
	Type   entity.TransactionType
	Amount decimal.Decimal
}

// AnalyticsRepository defines read-only aggregate queries over transactions.
// owner nil aggregates every owner.
type AnalyticsRepository interface {
	// Totals sums income and expense in the range.
	Totals(ctx context.Context, owner *uuid.UUID, dateRange DateRange) (Totals, error)

	// CategoryBreakdown sums amounts per category and type in the range, largest first.
	CategoryBreakdown(ctx context.Context, owner *uuid.UUID, dateRange DateRange) ([]CategoryTotal, error)

	// AmountPoints returns every transaction's date, type and amount in the range.
	AmountPoints(ctx context.Context, owner *uuid.UUID, dateRange DateRange) ([]AmountPoint, error)
}
