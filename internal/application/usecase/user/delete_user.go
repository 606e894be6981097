package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// DeleteUserInput identifies the actor and the user to delete.
type DeleteUserInput struct {
	ActorID uuid.UUID
	ID      uuid.UUID
}

// DeleteUserUseCase removes a user and everything they own.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
	cache    *cache.Cache
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository, c *cache.Cache) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		cache:    c,
	}
}

// Execute deletes the user and wipes their cache entries. Admins cannot
// delete themselves.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) (*entity.User, error) {
	if input.ActorID == input.ID {
		return nil, domainerror.Validation(
			domainerror.ErrCodeCannotDeleteSelf,
			"Cannot delete your own account",
			domainerror.ErrCannotDeleteSelf,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, userNotFound(err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, userNotFound(err)
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	uc.cache.InvalidateOwner(ctx, user.ID)
	return user, nil
}
