package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/department"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// CreateDepartmentRequest represents the request body for department creation.
type CreateDepartmentRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	ManagerID   *string         `json:"manager_id,omitempty"`
}

// UpdateDepartmentRequest represents the request body for department update.
type UpdateDepartmentRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	ManagerID   *string          `json:"manager_id,omitempty"`
}

// DepartmentResponse represents a single department in API responses.
type DepartmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Budget      string    `json:"budget"`
	ManagerID   *string   `json:"manager_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentListResponse represents the response for listing departments.
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// DepartmentCategoryResponse is one expense category of a department.
type DepartmentCategoryResponse struct {
	Category         string `json:"category"`
	TransactionCount int64  `json:"transaction_count"`
	Total            string `json:"total"`
}

// BudgetAnalysisResponse represents a department's budget analysis.
type BudgetAnalysisResponse struct {
	Department        DepartmentResponse           `json:"department"`
	MemberCount       int64                        `json:"member_count"`
	TotalSpent        string                       `json:"total_spent"`
	RemainingBudget   string                       `json:"remaining_budget"`
	BudgetUtilization string                       `json:"budget_utilization"`
	Categories        []DepartmentCategoryResponse `json:"categories"`
}

// ToDepartmentResponse converts a domain Department to a DepartmentResponse DTO.
func ToDepartmentResponse(d *entity.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Budget:      d.Budget.StringFixed(2),
		ManagerID:   uuidPtrString(d.ManagerID),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDepartmentListResponse converts the department listing output.
func ToDepartmentListResponse(output *department.ListDepartmentsOutput) DepartmentListResponse {
	response := DepartmentListResponse{Departments: make([]DepartmentResponse, 0, len(output.Departments))}
	for _, d := range output.Departments {
		response.Departments = append(response.Departments, ToDepartmentResponse(d))
	}
	return response
}

// ToBudgetAnalysisResponse converts a department budget analysis.
func ToBudgetAnalysisResponse(output *department.BudgetAnalysisOutput) BudgetAnalysisResponse {
	response := BudgetAnalysisResponse{
		Department:        ToDepartmentResponse(output.Department),
		MemberCount:       output.MemberCount,
		TotalSpent:        output.TotalSpent.StringFixed(2),
		RemainingBudget:   output.RemainingBudget.StringFixed(2),
		BudgetUtilization: output.BudgetUtilization.StringFixed(2),
		Categories:        make([]DepartmentCategoryResponse, 0, len(output.Categories)),
	}
	for _, c := range output.Categories {
		response.Categories = append(response.Categories, DepartmentCategoryResponse{
			Category:         c.Category,
			TransactionCount: c.TransactionCount,
			Total:            c.Total.StringFixed(2),
		})
	}
	return response
}
