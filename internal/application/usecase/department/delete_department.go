package department

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

// DeleteDepartmentUseCase handles department deletion. Members and tagged
// transactions are detached, not deleted.
type DeleteDepartmentUseCase struct {
	departmentRepo adapter.DepartmentRepository
	cache          *cache.Cache
}

// NewDeleteDepartmentUseCase creates a new DeleteDepartmentUseCase instance.
func NewDeleteDepartmentUseCase(departmentRepo adapter.DepartmentRepository, c *cache.Cache) *DeleteDepartmentUseCase {
	return &DeleteDepartmentUseCase{
		departmentRepo: departmentRepo,
		cache:          c,
	}
}

// Execute deletes the department and returns the removed record.
func (uc *DeleteDepartmentUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Department, error) {
	department, err := uc.departmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrDepartmentNotFound) {
			return nil, departmentNotFound(err)
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	if err := uc.departmentRepo.Delete(ctx, department.ID); err != nil {
		if errors.Is(err, domainerror.ErrDepartmentNotFound) {
			return nil, departmentNotFound(err)
		}
		return nil, fmt.Errorf("failed to delete department: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceDepartments, uuid.Nil)
	return department, nil
}
