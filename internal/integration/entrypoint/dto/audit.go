package dto

import (
	"encoding/json"
	"time"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

// AuditLogResponse represents a single audit entry in API responses.
type AuditLogResponse struct {
	ID        string          `json:"id"`
	UserID    *string         `json:"user_id"`
	Action    string          `json:"action"`
	Resource  string          `json:"resource"`
	Details   json.RawMessage `json:"details,omitempty"`
	IPAddress string          `json:"ip_address,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuditLogListResponse represents one page of audit entries.
type AuditLogListResponse struct {
	Logs       []AuditLogResponse `json:"logs"`
	Pagination PaginationResponse `json:"pagination"`
}

// ActivityCountResponse is one action and resource count.
type ActivityCountResponse struct {
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Count    int64  `json:"count"`
}

// UserActivityResponse represents a user's grouped activity.
type UserActivityResponse struct {
	UserID   string                  `json:"user_id"`
	Activity []ActivityCountResponse `json:"activity"`
}

// ToAuditLogListResponse converts one page of audit entries. Details that
// are not valid JSON are rendered as a JSON string.
func ToAuditLogListResponse(result *adapter.AuditLogListResult) AuditLogListResponse {
	response := AuditLogListResponse{
		Logs: make([]AuditLogResponse, 0, len(result.Entries)),
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for _, e := range result.Entries {
		details := json.RawMessage(e.Details)
		if e.Details != "" && !json.Valid(details) {
			details, _ = json.Marshal(e.Details)
		}
		if e.Details == "" {
			details = nil
		}
		response.Logs = append(response.Logs, AuditLogResponse{
			ID:        e.ID.String(),
			UserID:    uuidPtrString(e.UserID),
			Action:    e.Action,
			Resource:  e.Resource,
			Details:   details,
			IPAddress: e.IPAddress,
			CreatedAt: e.CreatedAt,
		})
	}
	return response
}

// ToUserActivityResponse converts a user's grouped activity.
func ToUserActivityResponse(userID string, counts []adapter.ActivityCount) UserActivityResponse {
	response := UserActivityResponse{
		UserID:   userID,
		Activity: make([]ActivityCountResponse, 0, len(counts)),
	}
	for _, c := range counts {
		response.Activity = append(response.Activity, ActivityCountResponse{
			Action:   c.Action,
			Resource: c.Resource,
			Count:    c.Count,
		})
	}
	return response
}
