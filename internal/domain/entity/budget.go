package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the length of a budget cycle.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether p is monthly or yearly.
func (p BudgetPeriod) Valid() bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// Budget caps spending for one category.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Period    BudgetPeriod
	Currency  string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new active Budget.
func NewBudget(userID uuid.UUID, category string, amount decimal.Decimal, period BudgetPeriod, currency string, startDate time.Time, endDate *time.Time) *Budget {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    period,
		Currency:  currency,
		StartDate: DateOf(startDate),
		EndDate:   endDate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentPeriodStart returns the first day of the budget cycle containing now.
func (b *Budget) CurrentPeriodStart(now time.Time) time.Time {
	y, m, _ := now.UTC().Date()
	if b.Period == BudgetPeriodYearly {
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// UsagePercentage returns spent as a percentage of the budget amount.
func (b *Budget) UsagePercentage(spent decimal.Decimal) decimal.Decimal {
	if b.Amount.IsZero() {
		return decimal.Zero
	}
	return spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(2)
}

// BudgetStatus labels how far a budget has been consumed.
type BudgetStatus string

const (
	BudgetStatusOnTrack   BudgetStatus = "On Track"
	BudgetStatusNearLimit BudgetStatus = "Near Limit"
	BudgetStatusOver      BudgetStatus = "Over Budget"
)

// BudgetAlertThreshold is the usage percentage above which a budget alerts.
var BudgetAlertThreshold = decimal.NewFromInt(80)

// StatusFor classifies a usage percentage.
func StatusFor(usage decimal.Decimal) BudgetStatus {
	switch {
	case usage.GreaterThan(decimal.NewFromInt(100)):
		return BudgetStatusOver
	case usage.GreaterThanOrEqual(BudgetAlertThreshold):
		return BudgetStatusNearLimit
	default:
		return BudgetStatusOnTrack
	}
}
