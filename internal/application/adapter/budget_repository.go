package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by ID within the owner filter.
	FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Budget, error)

	// ListByOwner returns the owner's budgets, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID, activeOnly bool) ([]*entity.Budget, error)

	// Update saves an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}
