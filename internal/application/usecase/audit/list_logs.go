// Package audit contains audit log queries.
package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

const (
	defaultLogPageSize = 50
	maxLogPageSize     = 200
)

// ListLogsInput represents the audit log filters.
type ListLogsInput struct {
	UserID   *uuid.UUID
	Action   string
	Resource string
	Page     int
	Limit    int
}

// ListLogsUseCase lists audit log entries.
type ListLogsUseCase struct {
	auditRepo adapter.AuditLogRepository
}

// NewListLogsUseCase creates a new ListLogsUseCase instance.
func NewListLogsUseCase(auditRepo adapter.AuditLogRepository) *ListLogsUseCase {
	return &ListLogsUseCase{auditRepo: auditRepo}
}

// Execute returns one page of entries, newest first.
func (uc *ListLogsUseCase) Execute(ctx context.Context, input ListLogsInput) (*adapter.AuditLogListResult, error) {
	filter := adapter.AuditLogFilter{
		UserID:   input.UserID,
		Action:   strings.TrimSpace(input.Action),
		Resource: strings.TrimSpace(input.Resource),
		Page:     input.Page,
		Limit:    input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLogPageSize
	}
	if filter.Limit > maxLogPageSize {
		filter.Limit = maxLogPageSize
	}

	result, err := uc.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return result, nil
}
