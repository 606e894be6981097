package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for rule creation.
type CreateRecurringRequest struct {
	AccountID   *string         `json:"account_id,omitempty"`
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Description string          `json:"description,omitempty"`
	Frequency   string          `json:"frequency" binding:"required"`
	StartDate   string          `json:"start_date" binding:"required"`
	EndDate     *string         `json:"end_date,omitempty"`
}

// UpdateRecurringRequest represents the request body for rule update.
type UpdateRecurringRequest struct {
	AccountID   *string          `json:"account_id,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Frequency   *string          `json:"frequency,omitempty"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// RecurringResponse represents a single recurring rule in API responses.
type RecurringResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AccountID     *string   `json:"account_id,omitempty"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Description   string    `json:"description"`
	Frequency     string    `json:"frequency"`
	StartDate     string    `json:"start_date"`
	EndDate       *string   `json:"end_date,omitempty"`
	NextExecution string    `json:"next_execution"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RecurringListResponse represents the response for listing rules.
type RecurringListResponse struct {
	Rules []RecurringResponse `json:"recurring_transactions"`
}

// ProcessRecurringResponse reports a processing run.
type ProcessRecurringResponse struct {
	Message   string `json:"message"`
	Processed int    `json:"processed"`
}

// ToRecurringResponse converts a domain RecurringRule to a RecurringResponse DTO.
func ToRecurringResponse(r *entity.RecurringRule) RecurringResponse {
	return RecurringResponse{
		ID:            r.ID.String(),
		UserID:        r.UserID.String(),
		AccountID:     uuidPtrString(r.AccountID),
		Type:          string(r.Type),
		Category:      r.Category,
		Amount:        r.Amount.StringFixed(2),
		Currency:      r.Currency,
		Description:   r.Description,
		Frequency:     string(r.Frequency),
		StartDate:     formatDate(r.StartDate),
		EndDate:       formatDatePtr(r.EndDate),
		NextExecution: formatDate(r.NextExecution),
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToRecurringListResponse converts a slice of rules.
func ToRecurringListResponse(rules []*entity.RecurringRule) RecurringListResponse {
	response := RecurringListResponse{Rules: make([]RecurringResponse, 0, len(rules))}
	for _, r := range rules {
		response.Rules = append(response.Rules, ToRecurringResponse(r))
	}
	return response
}
