package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

// GetUserActivityUseCase summarizes one user's audit trail.
type GetUserActivityUseCase struct {
	auditRepo adapter.AuditLogRepository
}

// NewGetUserActivityUseCase creates a new GetUserActivityUseCase instance.
func NewGetUserActivityUseCase(auditRepo adapter.AuditLogRepository) *GetUserActivityUseCase {
	return &GetUserActivityUseCase{auditRepo: auditRepo}
}

// Execute returns entry counts grouped by action and resource.
func (uc *GetUserActivityUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]adapter.ActivityCount, error) {
	activity, err := uc.auditRepo.ActivityByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user activity: %w", err)
	}
	if activity == nil {
		activity = []adapter.ActivityCount{}
	}
	return activity, nil
}
