package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// UpdateRoleUseCase changes a user's role. The new role takes effect on
// the user's next login.
type UpdateRoleUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateRoleUseCase creates a new UpdateRoleUseCase instance.
func NewUpdateRoleUseCase(userRepo adapter.UserRepository) *UpdateRoleUseCase {
	return &UpdateRoleUseCase{userRepo: userRepo}
}

// Execute validates the role name and stores it.
func (uc *UpdateRoleUseCase) Execute(ctx context.Context, id uuid.UUID, roleName string) (*entity.User, error) {
	role, ok := entity.ParseRole(roleName)
	if !ok {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidRole,
			"Invalid role",
			domainerror.ErrInvalidRole,
		)
	}

	if err := uc.userRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, userNotFound(err)
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return user, nil
}

func userNotFound(err error) error {
	return domainerror.NotFound(domainerror.ErrCodeUserNotFound, "User not found", err)
}
