package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// DepartmentSpending is a department's expense total for one category.
type DepartmentSpending struct {
	Category         string
	TransactionCount int64
	Total            decimal.Decimal
}

// DepartmentRepository defines the interface for department persistence operations.
type DepartmentRepository interface {
	// Create creates a new department. A taken name yields domainerror.ErrDuplicateKey.
	Create(ctx context.Context, department *entity.Department) error

	// FindByID retrieves a department by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Department, error)

	// List returns every department ordered by name.
	List(ctx context.Context) ([]*entity.Department, error)

	// Update saves an existing department.
	Update(ctx context.Context, department *entity.Department) error

	// Delete removes a department and detaches its users.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountMembers returns how many users belong to the department.
	CountMembers(ctx context.Context, id uuid.UUID) (int64, error)

	// Spending returns expense totals per category for the department's transactions.
	Spending(ctx context.Context, id uuid.UUID) ([]DepartmentSpending, error)
}
