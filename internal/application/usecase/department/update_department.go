package department

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// UpdateDepartmentInput represents the input for department updates. Nil
// fields are left unchanged.
type UpdateDepartmentInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Budget      *decimal.Decimal
	ManagerID   *uuid.UUID
}

// UpdateDepartmentUseCase handles department updates.
type UpdateDepartmentUseCase struct {
	departmentRepo adapter.DepartmentRepository
	userRepo       adapter.UserRepository
	cache          *cache.Cache
}

// NewUpdateDepartmentUseCase creates a new UpdateDepartmentUseCase instance.
func NewUpdateDepartmentUseCase(
	departmentRepo adapter.DepartmentRepository,
	userRepo adapter.UserRepository,
	c *cache.Cache,
) *UpdateDepartmentUseCase {
	return &UpdateDepartmentUseCase{
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		cache:          c,
	}
}

// Execute applies the update.
func (uc *UpdateDepartmentUseCase) Execute(ctx context.Context, input UpdateDepartmentInput) (*entity.Department, error) {
	department, err := uc.departmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDepartmentNotFound) {
			return nil, departmentNotFound(err)
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	if input.Name != nil {
		if department.Name, err = normalizeName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		department.Description = strings.TrimSpace(*input.Description)
	}
	if input.Budget != nil {
		if err := validateBudget(*input.Budget); err != nil {
			return nil, err
		}
		department.Budget = *input.Budget
	}
	if input.ManagerID != nil {
		if err := ensureManagerExists(ctx, uc.userRepo, input.ManagerID); err != nil {
			return nil, err
		}
		department.ManagerID = input.ManagerID
	}
	department.UpdatedAt = time.Now().UTC()

	if err := uc.departmentRepo.Update(ctx, department); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateKey) {
			return nil, departmentExists()
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceDepartments, uuid.Nil)
	return department, nil
}
