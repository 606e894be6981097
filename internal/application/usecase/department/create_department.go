package department

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for department names.
const MaxNameLength = 100

// CreateDepartmentInput represents the input for department creation.
type CreateDepartmentInput struct {
	Name        string
	Description string
	Budget      decimal.Decimal
	ManagerID   *uuid.UUID
}

// CreateDepartmentUseCase handles department creation.
type CreateDepartmentUseCase struct {
	departmentRepo adapter.DepartmentRepository
	userRepo       adapter.UserRepository
	cache          *cache.Cache
}

// NewCreateDepartmentUseCase creates a new CreateDepartmentUseCase instance.
func NewCreateDepartmentUseCase(
	departmentRepo adapter.DepartmentRepository,
	userRepo adapter.UserRepository,
	c *cache.Cache,
) *CreateDepartmentUseCase {
	return &CreateDepartmentUseCase{
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		cache:          c,
	}
}

// Execute creates the department. A taken name is a validation error.
func (uc *CreateDepartmentUseCase) Execute(ctx context.Context, input CreateDepartmentInput) (*entity.Department, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateBudget(input.Budget); err != nil {
		return nil, err
	}
	if err := ensureManagerExists(ctx, uc.userRepo, input.ManagerID); err != nil {
		return nil, err
	}

	department := entity.NewDepartment(name, strings.TrimSpace(input.Description), input.Budget, input.ManagerID)
	if err := uc.departmentRepo.Create(ctx, department); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateKey) {
			return nil, departmentExists()
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceDepartments, uuid.Nil)
	return department, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLength {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidDepartmentName,
			fmt.Sprintf("name must be between 1 and %d characters", MaxNameLength),
			domainerror.ErrInvalidDepartmentName,
		)
	}
	return name, nil
}

func validateBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidDepartmentData,
			"budget must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func ensureManagerExists(ctx context.Context, userRepo adapter.UserRepository, managerID *uuid.UUID) error {
	if managerID == nil {
		return nil
	}
	if _, err := userRepo.FindByID(ctx, *managerID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.Validation(
				domainerror.ErrCodeInvalidDepartmentData,
				"manager_id does not reference an existing user",
				err,
			)
		}
		return fmt.Errorf("failed to find manager: %w", err)
	}
	return nil
}

func departmentExists() error {
	return domainerror.New(
		domainerror.KindConflict,
		domainerror.ErrCodeDepartmentExists,
		"Department name already exists",
		domainerror.ErrDepartmentExists,
	)
}

func departmentNotFound(err error) error {
	return domainerror.NotFound(domainerror.ErrCodeDepartmentNotFound, "Department not found", err)
}
