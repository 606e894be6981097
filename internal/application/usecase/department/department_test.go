package department

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/cachestore"
)

// fakeDepartmentRepository enforces unique names the way the database index does.
type fakeDepartmentRepository struct {
	adapter.DepartmentRepository
	departments []*entity.Department
}

func (f *fakeDepartmentRepository) Create(_ context.Context, d *entity.Department) error {
	for _, existing := range f.departments {
		if existing.Name == d.Name {
			return domainerror.ErrDuplicateKey
		}
	}
	f.departments = append(f.departments, d)
	return nil
}

type fakeUserRepository struct {
	adapter.UserRepository
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(cachestore.NewRedisStore(client), cache.DefaultTTLPolicy()), mr
}

func TestCreateDepartmentUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	manager := entity.NewUser("manager", "manager@example.com", "hash", entity.RoleUser)
	missing := uuid.New()

	tests := []struct {
		name     string
		input    CreateDepartmentInput
		wantErr  error
		wantKind domainerror.Kind
	}{
		{
			name:  "new department",
			input: CreateDepartmentInput{Name: " Finance ", Budget: decimal.NewFromInt(1000), ManagerID: &manager.ID},
		},
		{
			name:     "duplicate name",
			input:    CreateDepartmentInput{Name: "Engineering", Budget: decimal.NewFromInt(10)},
			wantErr:  domainerror.ErrDepartmentExists,
			wantKind: domainerror.KindConflict,
		},
		{
			name:     "blank name",
			input:    CreateDepartmentInput{Name: "   "},
			wantErr:  domainerror.ErrInvalidDepartmentName,
			wantKind: domainerror.KindValidation,
		},
		{
			name:     "negative budget",
			input:    CreateDepartmentInput{Name: "Sales", Budget: decimal.NewFromInt(-1)},
			wantErr:  domainerror.ErrInvalidAmount,
			wantKind: domainerror.KindValidation,
		},
		{
			name:     "unknown manager",
			input:    CreateDepartmentInput{Name: "Legal", ManagerID: &missing},
			wantErr:  domainerror.ErrUserNotFound,
			wantKind: domainerror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mr := newTestCache(t)
			_ = mr.Set(cache.DepartmentsKey, "[]")

			repo := &fakeDepartmentRepository{departments: []*entity.Department{
				entity.NewDepartment("Engineering", "", decimal.Zero, nil),
			}}
			users := &fakeUserRepository{users: map[uuid.UUID]*entity.User{manager.ID: manager}}

			created, err := NewCreateDepartmentUseCase(repo, users, c).Execute(ctx, tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if domainErr, ok := domainerror.As(err); !ok || domainErr.Kind != tt.wantKind {
					t.Errorf("error = %v, want kind %v", err, tt.wantKind)
				}
				if len(repo.departments) != 1 {
					t.Errorf("stored %d departments, want 1", len(repo.departments))
				}
				return
			}

			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if created.Name != "Finance" {
				t.Errorf("Name = %q, want Finance", created.Name)
			}
			if mr.Exists(cache.DepartmentsKey) {
				t.Error("department listing should be invalidated")
			}
		})
	}
}
