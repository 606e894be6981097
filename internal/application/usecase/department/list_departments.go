// Package department contains department use cases.
package department

import (
	"context"
	"fmt"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// ListDepartmentsOutput represents the department listing.
type ListDepartmentsOutput struct {
	Departments []*entity.Department
}

// ListDepartmentsUseCase lists departments through the cache.
type ListDepartmentsUseCase struct {
	departmentRepo adapter.DepartmentRepository
	cache          *cache.Cache
}

// NewListDepartmentsUseCase creates a new ListDepartmentsUseCase instance.
func NewListDepartmentsUseCase(departmentRepo adapter.DepartmentRepository, c *cache.Cache) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{
		departmentRepo: departmentRepo,
		cache:          c,
	}
}

// Execute returns every department ordered by name.
func (uc *ListDepartmentsUseCase) Execute(ctx context.Context) (*ListDepartmentsOutput, error) {
	return cache.ReadThrough(ctx, uc.cache, cache.DepartmentsKey, uc.cache.ListTTL(),
		func(ctx context.Context) (*ListDepartmentsOutput, error) {
			departments, err := uc.departmentRepo.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list departments: %w", err)
			}
			if departments == nil {
				departments = []*entity.Department{}
			}
			return &ListDepartmentsOutput{Departments: departments}, nil
		})
}
