package dto

import (
	"time"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/report"
)

// ReportSummaryResponse holds report totals.
type ReportSummaryResponse struct {
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	NetIncome        string `json:"net_income"`
	TransactionCount int64  `json:"transaction_count"`
}

// ReportCategoryResponse is one category and type total.
type ReportCategoryResponse struct {
	Category         string `json:"category"`
	Type             string `json:"type"`
	Total            string `json:"total"`
	TransactionCount int64  `json:"transaction_count"`
}

// ReportMonthResponse is one month and type total.
type ReportMonthResponse struct {
	Month string `json:"month"`
	Type  string `json:"type"`
	Total string `json:"total"`
}

// ReportAccountResponse is one account balance.
type ReportAccountResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// FinancialReportResponse represents the financial report payload.
type FinancialReportResponse struct {
	Period            ReportPeriodResponse     `json:"period"`
	Summary           ReportSummaryResponse    `json:"summary"`
	CategoryBreakdown []ReportCategoryResponse `json:"category_breakdown"`
	MonthlyTrends     []ReportMonthResponse    `json:"monthly_trends"`
	AccountBalances   []ReportAccountResponse  `json:"account_balances"`
	GeneratedAt       time.Time                `json:"generated_at"`
}

// ReportPeriodResponse is the inclusive date range of a report.
type ReportPeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TaxCategoryResponse is one category of the tax report.
type TaxCategoryResponse struct {
	Category         string `json:"category"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	TransactionCount int64  `json:"transaction_count"`
}

// TaxReportResponse represents the tax report payload.
type TaxReportResponse struct {
	Year        int                   `json:"year"`
	Summary     ReportSummaryResponse `json:"summary"`
	Categories  []TaxCategoryResponse `json:"categories"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// BudgetLineResponse is one budget of the budget report.
type BudgetLineResponse struct {
	BudgetID        string `json:"budget_id"`
	Category        string `json:"category"`
	BudgetAmount    string `json:"budget_amount"`
	Period          string `json:"period"`
	Currency        string `json:"currency"`
	ActualSpent     string `json:"actual_spent"`
	Remaining       string `json:"remaining"`
	UsagePercentage string `json:"usage_percentage"`
	Status          string `json:"status"`
}

// BudgetReportResponse represents the budget report payload.
type BudgetReportResponse struct {
	Budgets     []BudgetLineResponse `json:"budgets"`
	GeneratedAt time.Time            `json:"generated_at"`
}

func toReportSummaryResponse(s report.Summary) ReportSummaryResponse {
	return ReportSummaryResponse{
		TotalIncome:      s.TotalIncome.StringFixed(2),
		TotalExpenses:    s.TotalExpenses.StringFixed(2),
		NetIncome:        s.NetIncome.StringFixed(2),
		TransactionCount: s.TransactionCount,
	}
}

// ToFinancialReportResponse converts the financial report output.
func ToFinancialReportResponse(output *report.FinancialReportOutput) FinancialReportResponse {
	response := FinancialReportResponse{
		Period: ReportPeriodResponse{
			StartDate: formatDate(output.StartDate),
			EndDate:   formatDate(output.EndDate),
		},
		Summary:           toReportSummaryResponse(output.Summary),
		CategoryBreakdown: make([]ReportCategoryResponse, 0, len(output.CategoryBreakdown)),
		MonthlyTrends:     make([]ReportMonthResponse, 0, len(output.MonthlyTrends)),
		AccountBalances:   make([]ReportAccountResponse, 0, len(output.AccountBalances)),
		GeneratedAt:       output.GeneratedAt,
	}
	for _, c := range output.CategoryBreakdown {
		response.CategoryBreakdown = append(response.CategoryBreakdown, ReportCategoryResponse{
			Category:         c.Category,
			Type:             string(c.Type),
			Total:            c.Total.StringFixed(2),
			TransactionCount: c.TransactionCount,
		})
	}
	for _, m := range output.MonthlyTrends {
		response.MonthlyTrends = append(response.MonthlyTrends, ReportMonthResponse{
			Month: m.Month,
			Type:  string(m.Type),
			Total: m.Total.StringFixed(2),
		})
	}
	for _, a := range output.AccountBalances {
		response.AccountBalances = append(response.AccountBalances, ReportAccountResponse{
			Name:     a.Name,
			Type:     string(a.Type),
			Currency: a.Currency,
			Balance:  a.Balance.StringFixed(2),
		})
	}
	return response
}

// ToTaxReportResponse converts the tax report output.
func ToTaxReportResponse(output *report.TaxReportOutput) TaxReportResponse {
	response := TaxReportResponse{
		Year:        output.Year,
		Summary:     toReportSummaryResponse(output.Summary),
		Categories:  make([]TaxCategoryResponse, 0, len(output.Categories)),
		GeneratedAt: output.GeneratedAt,
	}
	for _, c := range output.Categories {
		response.Categories = append(response.Categories, TaxCategoryResponse{
			Category:         c.Category,
			Income:           c.Income.StringFixed(2),
			Expenses:         c.Expenses.StringFixed(2),
			TransactionCount: c.TransactionCount,
		})
	}
	return response
}

// ToBudgetReportResponse converts the budget report output.
func ToBudgetReportResponse(output *report.BudgetReportOutput) BudgetReportResponse {
	response := BudgetReportResponse{
		Budgets:     make([]BudgetLineResponse, 0, len(output.Budgets)),
		GeneratedAt: output.GeneratedAt,
	}
	for _, line := range output.Budgets {
		response.Budgets = append(response.Budgets, BudgetLineResponse{
			BudgetID:        line.BudgetID.String(),
			Category:        line.Category,
			BudgetAmount:    line.BudgetAmount.StringFixed(2),
			Period:          string(line.Period),
			Currency:        line.Currency,
			ActualSpent:     line.ActualSpent.StringFixed(2),
			Remaining:       line.Remaining.StringFixed(2),
			UsagePercentage: line.UsagePercentage.StringFixed(2),
			Status:          string(line.Status),
		})
	}
	return response
}
