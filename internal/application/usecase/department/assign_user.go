package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// AssignUserUseCase moves a user into a department.
type AssignUserUseCase struct {
	departmentRepo adapter.DepartmentRepository
	userRepo       adapter.UserRepository
}

// NewAssignUserUseCase creates a new AssignUserUseCase instance.
func NewAssignUserUseCase(departmentRepo adapter.DepartmentRepository, userRepo adapter.UserRepository) *AssignUserUseCase {
	return &AssignUserUseCase{
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// Execute assigns the user and returns the updated user.
func (uc *AssignUserUseCase) Execute(ctx context.Context, departmentID, userID uuid.UUID) (*entity.User, error) {
	if _, err := uc.departmentRepo.FindByID(ctx, departmentID); err != nil {
		if errors.Is(err, domainerror.ErrDepartmentNotFound) {
			return nil, departmentNotFound(err)
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	if err := uc.userRepo.AssignDepartment(ctx, userID, &departmentID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NotFound(domainerror.ErrCodeUserNotFound, "User not found", err)
		}
		return nil, fmt.Errorf("failed to assign department: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return user, nil
}
