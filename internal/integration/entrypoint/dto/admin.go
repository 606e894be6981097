package dto

import "github.com/finance-tracker/rbac-backend/internal/application/usecase/admin"

// UserStatsResponse counts users per role.
type UserStatsResponse struct {
	TotalUsers    int64 `json:"total_users"`
	AdminCount    int64 `json:"admin_count"`
	UserCount     int64 `json:"user_count"`
	ReadOnlyCount int64 `json:"read_only_count"`
}

// TransactionStatsResponse holds system-wide transaction totals.
type TransactionStatsResponse struct {
	TotalTransactions int64  `json:"total_transactions"`
	TotalIncome       string `json:"total_income"`
	TotalExpenses     string `json:"total_expenses"`
}

// StatsResponse represents the admin statistics payload.
type StatsResponse struct {
	Users        UserStatsResponse        `json:"users"`
	Transactions TransactionStatsResponse `json:"transactions"`
}

// ToStatsResponse converts the admin statistics output.
func ToStatsResponse(output *admin.StatsOutput) StatsResponse {
	return StatsResponse{
		Users: UserStatsResponse{
			TotalUsers:    output.Users.TotalUsers,
			AdminCount:    output.Users.AdminCount,
			UserCount:     output.Users.UserCount,
			ReadOnlyCount: output.Users.ReadOnlyCount,
		},
		Transactions: TransactionStatsResponse{
			TotalTransactions: output.Transactions.TotalTransactions,
			TotalIncome:       output.Transactions.TotalIncome.StringFixed(2),
			TotalExpenses:     output.Transactions.TotalExpenses.StringFixed(2),
		},
	}
}
