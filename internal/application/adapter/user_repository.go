package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user. A taken email or username yields domainerror.ErrDuplicateKey.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether either identifier is taken.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// List returns every user, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// UpdateRole changes a user's role.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// AssignDepartment sets or clears a user's department.
	AssignDepartment(ctx context.Context, id uuid.UUID, departmentID *uuid.UUID) error

	// Delete removes a user together with every row they own.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByRole returns the number of users per role.
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)
}
