package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// TaxCategory is a category's income and expenses for the tax year.
type TaxCategory struct {
	Category         string
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	TransactionCount int64
}

// TaxReportOutput represents a tax report.
type TaxReportOutput struct {
	Year        int
	Summary     Summary
	Categories  []TaxCategory
	GeneratedAt time.Time
}

// GetTaxReportUseCase builds a per-category report for one calendar year.
type GetTaxReportUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
	clock         adapter.Clock
}

// NewGetTaxReportUseCase creates a new GetTaxReportUseCase instance.
func NewGetTaxReportUseCase(analyticsRepo adapter.AnalyticsRepository, clock adapter.Clock) *GetTaxReportUseCase {
	return &GetTaxReportUseCase{
		analyticsRepo: analyticsRepo,
		clock:         clock,
	}
}

// Execute reports the given year, or the current year when year is empty.
func (uc *GetTaxReportUseCase) Execute(ctx context.Context, owner uuid.UUID, year string) (*TaxReportOutput, error) {
	y := uc.clock.Now().UTC().Year()
	if year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil || parsed < 1900 || parsed > 9999 {
			return nil, domainerror.Validation(
				domainerror.ErrCodeInvalidYear,
				"year must be a four-digit year",
				domainerror.ErrInvalidYear,
			)
		}
		y = parsed
	}

	from := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	dateRange := adapter.DateRange{From: &from, To: &to}

	totals, err := uc.analyticsRepo.Totals(ctx, &owner, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to total tax year: %w", err)
	}
	breakdown, err := uc.analyticsRepo.CategoryBreakdown(ctx, &owner, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to break down tax year: %w", err)
	}

	return &TaxReportOutput{
		Year:        y,
		Summary:     summaryOf(totals),
		Categories:  taxCategories(breakdown),
		GeneratedAt: uc.clock.Now().UTC(),
	}, nil
}

// taxCategories merges per-type totals, largest combined amount first.
func taxCategories(breakdown []adapter.CategoryTotal) []TaxCategory {
	byCategory := map[string]*TaxCategory{}
	for _, row := range breakdown {
		c, ok := byCategory[row.Category]
		if !ok {
			c = &TaxCategory{Category: row.Category}
			byCategory[row.Category] = c
		}
		switch row.Type {
		case entity.TransactionTypeIncome:
			c.Income = c.Income.Add(row.Total)
		case entity.TransactionTypeExpense:
			c.Expenses = c.Expenses.Add(row.Total)
		}
		c.TransactionCount += row.TransactionCount
	}

	categories := make([]TaxCategory, 0, len(byCategory))
	for _, c := range byCategory {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool {
		a := categories[i].Income.Add(categories[i].Expenses)
		b := categories[j].Income.Add(categories[j].Expenses)
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}
