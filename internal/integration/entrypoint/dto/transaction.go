package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID    *string         `json:"account_id,omitempty"`
	DepartmentID *string         `json:"department_id,omitempty"`
	Type         string          `json:"type" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency,omitempty"`
	Description  string          `json:"description,omitempty"`
	Date         string          `json:"date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	AccountID    *string          `json:"account_id,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Type         *string          `json:"type,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Date         *string          `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AccountID       *string   `json:"account_id,omitempty"`
	DepartmentID    *string   `json:"department_id,omitempty"`
	RecurringRuleID *string   `json:"recurring_rule_id,omitempty"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Username        string    `json:"username,omitempty"`
	Email           string    `json:"email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// CategoryListResponse represents the distinct categories of an owner.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID.String(),
		UserID:          t.UserID.String(),
		AccountID:       uuidPtrString(t.AccountID),
		DepartmentID:    uuidPtrString(t.DepartmentID),
		RecurringRuleID: uuidPtrString(t.RecurringRuleID),
		Type:            string(t.Type),
		Category:        t.Category,
		Amount:          t.Amount.StringFixed(2),
		Currency:        t.Currency,
		Description:     t.Description,
		Date:            formatDate(t.Date),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, ToTransactionResponse(t))
	}
	return responses
}

// ToTransactionListResponse converts one page of transactions.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(result.Transactions),
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}

// ToOwnedTransactionListResponse converts one page of the cross-owner listing.
func ToOwnedTransactionListResponse(result *adapter.OwnedTransactionListResult) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(result.Transactions)),
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for _, owned := range result.Transactions {
		r := ToTransactionResponse(owned.Transaction)
		r.Username = owned.Username
		r.Email = owned.Email
		response.Transactions = append(response.Transactions, r)
	}
	return response
}
