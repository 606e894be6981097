package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// AuditLogFilter narrows an audit log listing.
type AuditLogFilter struct {
	UserID   *uuid.UUID
	Action   string
	Resource string
	Page     int
	Limit    int
}

// AuditLogListResult represents one page of audit entries.
type AuditLogListResult struct {
	Entries    []*entity.AuditLogEntry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ActivityCount counts one user's entries for an action and resource.
type ActivityCount struct {
	Action   string
	Resource string
	Count    int64
}

// AuditLogRepository defines the interface for audit log persistence.
type AuditLogRepository interface {
	// Create appends an entry.
	Create(ctx context.Context, entry *entity.AuditLogEntry) error

	// List returns a page of entries, newest first.
	List(ctx context.Context, filter AuditLogFilter) (*AuditLogListResult, error)

	// ActivityByUser groups a user's entries by action and resource.
	ActivityByUser(ctx context.Context, userID uuid.UUID) ([]ActivityCount, error)
}

// AuditRecorder accepts audit entries without blocking the caller.
type AuditRecorder interface {
	// Record enqueues the entry. It never blocks and never fails the caller.
	Record(entry *entity.AuditLogEntry)
}
