package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is the period between two firings of a recurring rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Advance returns the date one period after from.
//
// Months and years are calendar increments. When anchorDay does not exist in
// the target month the result is clamped to the month's last day, and the
// anchor is restored in later months: Jan 31 -> Feb 29 (2024) -> Mar 31.
// anchorDay <= 0 uses from's own day. Unknown frequencies advance monthly.
func (f Frequency) Advance(from time.Time, anchorDay int) time.Time {
	from = DateOf(from)
	if anchorDay <= 0 {
		anchorDay = from.Day()
	}

	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyYearly:
		return addMonthsClamped(from, 12, anchorDay)
	default:
		return addMonthsClamped(from, 1, anchorDay)
	}
}

// addMonthsClamped moves from by n calendar months onto anchorDay,
// clamping to the last day of the target month.
func addMonthsClamped(from time.Time, n, anchorDay int) time.Time {
	y, m, _ := from.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	day := anchorDay
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AutoGeneratedSuffix marks transactions created by the recurring processor.
const AutoGeneratedSuffix = " (Auto-generated)"

// RecurringRule is a template that periodically materializes transactions.
type RecurringRule struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AccountID     *uuid.UUID
	Type          TransactionType
	Category      string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	Frequency     Frequency
	StartDate     time.Time
	EndDate       *time.Time
	NextExecution time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringRule creates an active rule whose first firing is one period
// after startDate.
func NewRecurringRule(
	userID uuid.UUID,
	accountID *uuid.UUID,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	currency string,
	description string,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
) *RecurringRule {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	r := &RecurringRule{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Frequency:   frequency,
		StartDate:   DateOf(startDate),
		EndDate:     endDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.Reschedule()
	return r
}

// Reschedule recomputes NextExecution from StartDate.
func (r *RecurringRule) Reschedule() {
	r.NextExecution = r.Frequency.Advance(r.StartDate, r.StartDate.Day())
}

// IsDue reports whether the rule fires on today.
func (r *RecurringRule) IsDue(today time.Time) bool {
	today = DateOf(today)
	if !r.IsActive {
		return false
	}
	if r.EndDate != nil && DateOf(*r.EndDate).Before(today) {
		return false
	}
	return !DateOf(r.NextExecution).After(today)
}

// FollowingExecution returns the execution date after the current one.
func (r *RecurringRule) FollowingExecution() time.Time {
	return r.Frequency.Advance(r.NextExecution, r.StartDate.Day())
}

// Materialize builds the transaction for the current occurrence, dated today.
func (r *RecurringRule) Materialize(today time.Time) *Transaction {
	tx := NewTransaction(
		r.UserID,
		r.AccountID,
		r.Type,
		r.Category,
		r.Amount,
		r.Currency,
		r.Description+AutoGeneratedSuffix,
		today,
	)

	ruleID := r.ID
	occurrence := DateOf(r.NextExecution)
	tx.RecurringRuleID = &ruleID
	tx.OccurrenceDate = &occurrence
	return tx
}
