// Package report contains the financial, tax and budget report use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// Summary totals a report's transactions.
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int64
}

// MonthTypeTotal is the sum of one transaction type in one month.
type MonthTypeTotal struct {
	Month string
	Type  entity.TransactionType
	Total decimal.Decimal
}

// AccountBalance is an active account's stored balance.
type AccountBalance struct {
	Name     string
	Type     entity.AccountType
	Currency string
	Balance  decimal.Decimal
}

// FinancialReportInput represents an inclusive reporting period.
type FinancialReportInput struct {
	Owner     uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// FinancialReportOutput represents a financial report.
type FinancialReportOutput struct {
	StartDate         time.Time
	EndDate           time.Time
	Summary           Summary
	CategoryBreakdown []adapter.CategoryTotal
	MonthlyTrends     []MonthTypeTotal
	AccountBalances   []AccountBalance
	GeneratedAt       time.Time
}

// GetFinancialReportUseCase builds a financial report for a date range.
type GetFinancialReportUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
	accountRepo   adapter.AccountRepository
	clock         adapter.Clock
}

// NewGetFinancialReportUseCase creates a new GetFinancialReportUseCase instance.
func NewGetFinancialReportUseCase(
	analyticsRepo adapter.AnalyticsRepository,
	accountRepo adapter.AccountRepository,
	clock adapter.Clock,
) *GetFinancialReportUseCase {
	return &GetFinancialReportUseCase{
		analyticsRepo: analyticsRepo,
		accountRepo:   accountRepo,
		clock:         clock,
	}
}

// Execute aggregates the owner's transactions dated within the period.
func (uc *GetFinancialReportUseCase) Execute(ctx context.Context, input FinancialReportInput) (*FinancialReportOutput, error) {
	if input.StartDate == nil || input.EndDate == nil {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidReportRange,
			"start_date and end_date are required",
			domainerror.ErrInvalidReportRange,
		)
	}
	start := entity.DateOf(*input.StartDate)
	end := entity.DateOf(*input.EndDate)
	if end.Before(start) {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidReportRange,
			"start_date must not be after end_date",
			domainerror.ErrInvalidReportRange,
		)
	}
	endExclusive := end.AddDate(0, 0, 1)
	dateRange := adapter.DateRange{From: &start, To: &endExclusive}

	var (
		totals    adapter.Totals
		breakdown []adapter.CategoryTotal
		points    []adapter.AmountPoint
		accounts  []adapter.AccountWithBalance
	)
	owner := input.Owner

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = uc.analyticsRepo.Totals(gctx, &owner, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown, err = uc.analyticsRepo.CategoryBreakdown(gctx, &owner, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		points, err = uc.analyticsRepo.AmountPoints(gctx, &owner, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = uc.accountRepo.ListWithBalances(gctx, owner)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build financial report: %w", err)
	}
	if breakdown == nil {
		breakdown = []adapter.CategoryTotal{}
	}

	balances := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		if !a.Account.IsActive {
			continue
		}
		balances = append(balances, AccountBalance{
			Name:     a.Account.Name,
			Type:     a.Account.Type,
			Currency: a.Account.Currency,
			Balance:  a.Account.Balance,
		})
	}

	return &FinancialReportOutput{
		StartDate:         start,
		EndDate:           end,
		Summary:           summaryOf(totals),
		CategoryBreakdown: breakdown,
		MonthlyTrends:     monthTypeTotals(points),
		AccountBalances:   balances,
		GeneratedAt:       uc.clock.Now().UTC(),
	}, nil
}

func summaryOf(t adapter.Totals) Summary {
	return Summary{
		TotalIncome:      t.Income,
		TotalExpenses:    t.Expense,
		NetIncome:        t.Net(),
		TransactionCount: t.TransactionCount,
	}
}

// monthTypeTotals sums points per month and type, ordered by month.
func monthTypeTotals(points []adapter.AmountPoint) []MonthTypeTotal {
	type key struct {
		month string
		typ   entity.TransactionType
	}
	sums := map[key]decimal.Decimal{}
	for _, p := range points {
		k := key{month: p.Date.UTC().Format("2006-01"), typ: p.Type}
		sums[k] = sums[k].Add(p.Amount)
	}

	rows := make([]MonthTypeTotal, 0, len(sums))
	for k, total := range sums {
		rows = append(rows, MonthTypeTotal{Month: k.month, Type: k.typ, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].Type < rows[j].Type
	})
	return rows
}
