// Package analytics contains the cached analytics and dashboard use cases.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

const (
	trendMonths   = 12
	overviewYears = 5
)

// CategoryAmounts is the income and expense of one category.
type CategoryAmounts struct {
	Category string
	Income   decimal.Decimal
	Expense  decimal.Decimal
}

// MonthAmounts is the income and expense of one calendar month ("2006-01").
type MonthAmounts struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// YearAmounts is the income and expense of one calendar year.
type YearAmounts struct {
	Year    int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// mergeCategories folds per-type category totals into one row per
// category, largest expense first.
func mergeCategories(totals []adapter.CategoryTotal) []CategoryAmounts {
	byCategory := map[string]*CategoryAmounts{}
	order := make([]string, 0)
	for _, total := range totals {
		row, ok := byCategory[total.Category]
		if !ok {
			row = &CategoryAmounts{Category: total.Category}
			byCategory[total.Category] = row
			order = append(order, total.Category)
		}
		switch total.Type {
		case entity.TransactionTypeIncome:
			row.Income = row.Income.Add(total.Total)
		case entity.TransactionTypeExpense:
			row.Expense = row.Expense.Add(total.Total)
		}
	}

	rows := make([]CategoryAmounts, 0, len(order))
	for _, category := range order {
		rows = append(rows, *byCategory[category])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Expense.GreaterThan(rows[j].Expense)
	})
	return rows
}

// monthlyTrend buckets points into the trendMonths calendar months ending
// with the month of now. Months without transactions are zero.
func monthlyTrend(points []adapter.AmountPoint, now time.Time) []MonthAmounts {
	first := firstOfMonth(now).AddDate(0, -(trendMonths - 1), 0)
	months := make([]MonthAmounts, trendMonths)
	index := map[string]int{}
	for i := range months {
		key := first.AddDate(0, i, 0).Format("2006-01")
		months[i] = MonthAmounts{Month: key}
		index[key] = i
	}

	for _, p := range points {
		i, ok := index[p.Date.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		addTo(&months[i].Income, &months[i].Expense, p)
	}
	return months
}

// yearlyOverview buckets points by year, most recent overviewYears first.
func yearlyOverview(points []adapter.AmountPoint) []YearAmounts {
	byYear := map[int]*YearAmounts{}
	for _, p := range points {
		year := p.Date.UTC().Year()
		row, ok := byYear[year]
		if !ok {
			row = &YearAmounts{Year: year}
			byYear[year] = row
		}
		addTo(&row.Income, &row.Expense, p)
	}

	years := make([]YearAmounts, 0, len(byYear))
	for _, row := range byYear {
		years = append(years, *row)
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year > years[j].Year })
	if len(years) > overviewYears {
		years = years[:overviewYears]
	}
	return years
}

func addTo(income, expense *decimal.Decimal, p adapter.AmountPoint) {
	switch p.Type {
	case entity.TransactionTypeIncome:
		*income = income.Add(p.Amount)
	case entity.TransactionTypeExpense:
		*expense = expense.Add(p.Amount)
	}
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// periodRange returns the calendar month or year containing now.
func periodRange(period entity.AnalyticsPeriod, now time.Time) adapter.DateRange {
	var from, to time.Time
	switch period {
	case entity.AnalyticsPeriodYearly:
		from = time.Date(now.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(1, 0, 0)
	default:
		from = firstOfMonth(now)
		to = from.AddDate(0, 1, 0)
	}
	return adapter.DateRange{From: &from, To: &to}
}
