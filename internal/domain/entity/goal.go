package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialGoal is a savings target tracked by its owner.
type FinancialGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	TargetDate    *time.Time
	Category      string
	IsAchieved    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewFinancialGoal creates a new goal and derives IsAchieved.
func NewFinancialGoal(
	userID uuid.UUID,
	title, description string,
	targetAmount, currentAmount decimal.Decimal,
	currency string,
	targetDate *time.Time,
	category string,
) *FinancialGoal {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	g := &FinancialGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Currency:      currency,
		TargetDate:    targetDate,
		Category:      category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	g.RefreshAchieved()
	return g
}

// RefreshAchieved recomputes IsAchieved from the amounts.
func (g *FinancialGoal) RefreshAchieved() {
	g.IsAchieved = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// AddProgress adds amount to CurrentAmount.
func (g *FinancialGoal) AddProgress(amount decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.RefreshAchieved()
	g.UpdatedAt = time.Now().UTC()
}

// ProgressPercentage returns CurrentAmount as a percentage of TargetAmount.
func (g *FinancialGoal) ProgressPercentage() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// DaysRemaining returns whole days until TargetDate, nil when there is none.
func (g *FinancialGoal) DaysRemaining(now time.Time) *int {
	if g.TargetDate == nil {
		return nil
	}
	days := int(DateOf(*g.TargetDate).Sub(DateOf(now)).Hours() / 24)
	return &days
}
