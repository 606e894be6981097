package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/cachestore"
)

type stubUserRepository struct {
	users   map[uuid.UUID]*entity.User
	deleted []uuid.UUID
}

func (s *stubUserRepository) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}
func (s *stubUserRepository) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (s *stubUserRepository) ExistsByEmailOrUsername(context.Context, string, string) (bool, error) {
	return false, nil
}
func (s *stubUserRepository) List(context.Context) ([]*entity.User, error) { return nil, nil }
func (s *stubUserRepository) UpdateRole(_ context.Context, id uuid.UUID, role entity.Role) error {
	u, ok := s.users[id]
	if !ok {
		return domainerror.ErrUserNotFound
	}
	u.Role = role
	return nil
}
func (s *stubUserRepository) AssignDepartment(context.Context, uuid.UUID, *uuid.UUID) error {
	return nil
}
func (s *stubUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.users, id)
	return nil
}
func (s *stubUserRepository) CountByRole(context.Context) (map[entity.Role]int64, error) {
	return nil, nil
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	admin := entity.NewUser("admin", "admin@example.com", "hash", entity.RoleAdmin)
	member := entity.NewUser("member", "member@example.com", "hash", entity.RoleUser)

	newUseCase := func() (*stubUserRepository, *DeleteUserUseCase) {
		repo := &stubUserRepository{users: map[uuid.UUID]*entity.User{admin.ID: admin, member.ID: member}}
		return repo, NewDeleteUserUseCase(repo, cache.New(cachestore.NewNoopStore(), cache.DefaultTTLPolicy()))
	}

	t.Run("admin cannot delete self", func(t *testing.T) {
		repo, uc := newUseCase()
		_, err := uc.Execute(ctx, DeleteUserInput{ActorID: admin.ID, ID: admin.ID})
		if !errors.Is(err, domainerror.ErrCannotDeleteSelf) {
			t.Fatalf("error = %v, want ErrCannotDeleteSelf", err)
		}
		if len(repo.deleted) != 0 {
			t.Error("nothing should be deleted")
		}
	})

	t.Run("deletes another user", func(t *testing.T) {
		repo, uc := newUseCase()
		deleted, err := uc.Execute(ctx, DeleteUserInput{ActorID: admin.ID, ID: member.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if deleted.Username != "member" || len(repo.deleted) != 1 {
			t.Errorf("deleted = %+v, calls = %v", deleted, repo.deleted)
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, uc := newUseCase()
		_, err := uc.Execute(ctx, DeleteUserInput{ActorID: admin.ID, ID: uuid.New()})
		domainErr, ok := domainerror.As(err)
		if !ok || domainErr.Kind != domainerror.KindNotFound {
			t.Fatalf("error = %v, want not found", err)
		}
	})
}

func TestUpdateRoleUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	member := entity.NewUser("member", "member@example.com", "hash", entity.RoleUser)
	repo := &stubUserRepository{users: map[uuid.UUID]*entity.User{member.ID: member}}
	uc := NewUpdateRoleUseCase(repo)

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, member.ID, "owner")
		if !errors.Is(err, domainerror.ErrInvalidRole) {
			t.Fatalf("error = %v, want ErrInvalidRole", err)
		}
	})

	t.Run("role is changed", func(t *testing.T) {
		updated, err := uc.Execute(ctx, member.ID, "read-only")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if updated.Role != entity.RoleReadOnly {
			t.Errorf("Role = %v, want read-only", updated.Role)
		}
	})
}
