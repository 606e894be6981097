package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/budget"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category  string          `json:"category" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period" binding:"required"`
	Currency  string          `json:"currency,omitempty"`
	StartDate *string         `json:"start_date,omitempty"`
	EndDate   *string         `json:"end_date,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category  *string          `json:"category,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Period    *string          `json:"period,omitempty"`
	StartDate *string          `json:"start_date,omitempty"`
	EndDate   *string          `json:"end_date,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Category        string    `json:"category"`
	Amount          string    `json:"amount"`
	Period          string    `json:"period"`
	Currency        string    `json:"currency"`
	StartDate       string    `json:"start_date"`
	EndDate         *string   `json:"end_date,omitempty"`
	IsActive        bool      `json:"is_active"`
	Spent           *string   `json:"spent,omitempty"`
	UsagePercentage *string   `json:"usage_percentage,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetAlertsResponse lists budgets above the alert threshold.
type BudgetAlertsResponse struct {
	Alerts []BudgetResponse `json:"alerts"`
}

// ToBudgetResponse converts a domain Budget to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		Category:  b.Category,
		Amount:    b.Amount.StringFixed(2),
		Period:    string(b.Period),
		Currency:  b.Currency,
		StartDate: formatDate(b.StartDate),
		EndDate:   formatDatePtr(b.EndDate),
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBudgetUsageResponses(items []budget.BudgetOutput) []BudgetResponse {
	responses := make([]BudgetResponse, 0, len(items))
	for _, item := range items {
		r := ToBudgetResponse(item.Budget)
		spent := item.Spent.StringFixed(2)
		usage := item.UsagePercentage.StringFixed(2)
		r.Spent = &spent
		r.UsagePercentage = &usage
		responses = append(responses, r)
	}
	return responses
}

// ToBudgetListResponse converts the budget listing output.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	return BudgetListResponse{Budgets: toBudgetUsageResponses(output.Budgets)}
}

// ToBudgetAlertsResponse converts the budgets above the alert threshold.
func ToBudgetAlertsResponse(alerts []budget.BudgetOutput) BudgetAlertsResponse {
	return BudgetAlertsResponse{Alerts: toBudgetUsageResponses(alerts)}
}
