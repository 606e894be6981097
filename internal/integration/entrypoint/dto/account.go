package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/account"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name     string          `json:"name" binding:"required"`
	Type     string          `json:"type" binding:"required"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name     *string          `json:"name,omitempty"`
	Type     *string          `json:"type,omitempty"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
	Currency *string          `json:"currency,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Balance           string    `json:"balance"`
	CalculatedBalance *string   `json:"calculated_balance,omitempty"`
	Currency          string    `json:"currency"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// CurrencyTotalResponse is one currency row of the account summary.
type CurrencyTotalResponse struct {
	Currency     string `json:"currency"`
	TotalBalance string `json:"total_balance"`
	AccountCount int64  `json:"account_count"`
}

// TypeTotalResponse is one account type row of the account summary.
type TypeTotalResponse struct {
	Type         string `json:"type"`
	TotalBalance string `json:"total_balance"`
	AccountCount int64  `json:"account_count"`
}

// AccountSummaryResponse represents account totals.
type AccountSummaryResponse struct {
	ByCurrency []CurrencyTotalResponse `json:"by_currency"`
	ByType     []TypeTotalResponse     `json:"by_type"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance.StringFixed(2),
		Currency:  a.Currency,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAccountListResponse converts the account listing output.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	response := AccountListResponse{Accounts: make([]AccountResponse, 0, len(output.Accounts))}
	for _, item := range output.Accounts {
		r := ToAccountResponse(item.Account)
		calculated := item.CalculatedBalance.StringFixed(2)
		r.CalculatedBalance = &calculated
		response.Accounts = append(response.Accounts, r)
	}
	return response
}

// ToAccountSummaryResponse converts the account summary output.
func ToAccountSummaryResponse(output *account.AccountSummaryOutput) AccountSummaryResponse {
	response := AccountSummaryResponse{
		ByCurrency: make([]CurrencyTotalResponse, 0, len(output.ByCurrency)),
		ByType:     make([]TypeTotalResponse, 0, len(output.ByType)),
	}
	for _, c := range output.ByCurrency {
		response.ByCurrency = append(response.ByCurrency, CurrencyTotalResponse{
			Currency:     c.Currency,
			TotalBalance: c.TotalBalance.StringFixed(2),
			AccountCount: c.AccountCount,
		})
	}
	for _, t := range output.ByType {
		response.ByType = append(response.ByType, TypeTotalResponse{
			Type:         string(t.Type),
			TotalBalance: t.TotalBalance.StringFixed(2),
			AccountCount: t.AccountCount,
		})
	}
	return response
}
