package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// GoalRepository defines the interface for financial goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal.
	Create(ctx context.Context, goal *entity.FinancialGoal) error

	// FindByID retrieves a goal by ID within the owner filter.
	FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.FinancialGoal, error)

	// ListByOwner returns the owner's goals, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.FinancialGoal, error)

	// Update saves an existing goal.
	Update(ctx context.Context, goal *entity.FinancialGoal) error

	// Delete removes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
