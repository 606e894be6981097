package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// BudgetAnalysisOutput compares a department's budget with its spending.
type BudgetAnalysisOutput struct {
	Department        *entity.Department
	MemberCount       int64
	TotalSpent        decimal.Decimal
	RemainingBudget   decimal.Decimal
	BudgetUtilization decimal.Decimal
	Categories        []adapter.DepartmentSpending
}

// GetBudgetAnalysisUseCase analyzes department spending.
type GetBudgetAnalysisUseCase struct {
	departmentRepo adapter.DepartmentRepository
}

// NewGetBudgetAnalysisUseCase creates a new GetBudgetAnalysisUseCase instance.
func NewGetBudgetAnalysisUseCase(departmentRepo adapter.DepartmentRepository) *GetBudgetAnalysisUseCase {
	return &GetBudgetAnalysisUseCase{departmentRepo: departmentRepo}
}

// Execute sums expenses tagged with the department or made by its members.
func (uc *GetBudgetAnalysisUseCase) Execute(ctx context.Context, id uuid.UUID) (*BudgetAnalysisOutput, error) {
	department, err := uc.departmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrDepartmentNotFound) {
			return nil, departmentNotFound(err)
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	members, err := uc.departmentRepo.CountMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	spending, err := uc.departmentRepo.Spending(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to sum department spending: %w", err)
	}
	if spending == nil {
		spending = []adapter.DepartmentSpending{}
	}

	total := decimal.Zero
	for _, s := range spending {
		total = total.Add(s.Total)
	}
	utilization := decimal.Zero
	if department.Budget.IsPositive() {
		utilization = total.Div(department.Budget).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &BudgetAnalysisOutput{
		Department:        department,
		MemberCount:       members,
		TotalSpent:        total,
		RemainingBudget:   department.Budget.Sub(total),
		BudgetUtilization: utilization,
		Categories:        spending,
	}, nil
}
