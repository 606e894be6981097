package dto

import "github.com/finance-tracker/rbac-backend/internal/application/usecase/analytics"

// CategoryAmountsResponse is one category of the analytics breakdown.
type CategoryAmountsResponse struct {
	Category string `json:"category"`
	Income   string `json:"income"`
	Expense  string `json:"expense"`
}

// MonthAmountsResponse is one month of the analytics trend.
type MonthAmountsResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// YearAmountsResponse is one year of the analytics overview.
type YearAmountsResponse struct {
	Year    int    `json:"year"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// AnalyticsTotalsResponse holds all-time totals.
type AnalyticsTotalsResponse struct {
	TotalIncome       string `json:"total_income"`
	TotalExpense      string `json:"total_expense"`
	TotalTransactions int64  `json:"total_transactions"`
}

// AnalyticsResponse represents the analytics endpoint payload.
type AnalyticsResponse struct {
	Period            string                    `json:"period"`
	CategoryBreakdown []CategoryAmountsResponse `json:"category_breakdown"`
	MonthlyTrends     []MonthAmountsResponse    `json:"monthly_trends"`
	YearlyOverview    []YearAmountsResponse     `json:"yearly_overview"`
	Totals            AnalyticsTotalsResponse   `json:"totals"`
	Balance           string                    `json:"balance"`
}

// MonthStatsResponse holds one month's totals on the dashboard.
type MonthStatsResponse struct {
	Income           string `json:"income"`
	Expense          string `json:"expense"`
	TransactionCount int64  `json:"transaction_count"`
}

// DashboardResponse represents the dashboard payload.
type DashboardResponse struct {
	CurrentMonth       MonthStatsResponse    `json:"current_month"`
	PreviousMonth      MonthStatsResponse    `json:"previous_month"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	SavingsRate        string                `json:"savings_rate"`
}

// ToAnalyticsResponse converts the analytics output.
func ToAnalyticsResponse(output *analytics.GetAnalyticsOutput) AnalyticsResponse {
	response := AnalyticsResponse{
		Period:            string(output.Period),
		CategoryBreakdown: make([]CategoryAmountsResponse, 0, len(output.CategoryBreakdown)),
		MonthlyTrends:     make([]MonthAmountsResponse, 0, len(output.MonthlyTrends)),
		YearlyOverview:    make([]YearAmountsResponse, 0, len(output.YearlyOverview)),
		Totals: AnalyticsTotalsResponse{
			TotalIncome:       output.Totals.TotalIncome.StringFixed(2),
			TotalExpense:      output.Totals.TotalExpense.StringFixed(2),
			TotalTransactions: output.Totals.TotalTransactions,
		},
		Balance: output.Balance.StringFixed(2),
	}
	for _, c := range output.CategoryBreakdown {
		response.CategoryBreakdown = append(response.CategoryBreakdown, CategoryAmountsResponse{
			Category: c.Category,
			Income:   c.Income.StringFixed(2),
			Expense:  c.Expense.StringFixed(2),
		})
	}
	for _, m := range output.MonthlyTrends {
		response.MonthlyTrends = append(response.MonthlyTrends, MonthAmountsResponse{
			Month:   m.Month,
			Income:  m.Income.StringFixed(2),
			Expense: m.Expense.StringFixed(2),
		})
	}
	for _, y := range output.YearlyOverview {
		response.YearlyOverview = append(response.YearlyOverview, YearAmountsResponse{
			Year:    y.Year,
			Income:  y.Income.StringFixed(2),
			Expense: y.Expense.StringFixed(2),
		})
	}
	return response
}

func toMonthStatsResponse(m analytics.MonthStats) MonthStatsResponse {
	return MonthStatsResponse{
		Income:           m.Income.StringFixed(2),
		Expense:          m.Expense.StringFixed(2),
		TransactionCount: m.TransactionCount,
	}
}

// ToDashboardResponse converts the dashboard output.
func ToDashboardResponse(output *analytics.DashboardOutput) DashboardResponse {
	return DashboardResponse{
		CurrentMonth:       toMonthStatsResponse(output.CurrentMonth),
		PreviousMonth:      toMonthStatsResponse(output.PreviousMonth),
		RecentTransactions: ToTransactionResponses(output.RecentTransactions),
		SavingsRate:        output.SavingsRate.StringFixed(2),
	}
}
