package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/department"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// DepartmentController handles department endpoints.
type DepartmentController struct {
	listUseCase     *department.ListDepartmentsUseCase
	createUseCase   *department.CreateDepartmentUseCase
	updateUseCase   *department.UpdateDepartmentUseCase
	deleteUseCase   *department.DeleteDepartmentUseCase
	analysisUseCase *department.GetBudgetAnalysisUseCase
	assignUseCase   *department.AssignUserUseCase
}

// NewDepartmentController creates a new department controller instance.
func NewDepartmentController(
	listUseCase *department.ListDepartmentsUseCase,
	createUseCase *department.CreateDepartmentUseCase,
	updateUseCase *department.UpdateDepartmentUseCase,
	deleteUseCase *department.DeleteDepartmentUseCase,
	analysisUseCase *department.GetBudgetAnalysisUseCase,
	assignUseCase *department.AssignUserUseCase,
) *DepartmentController {
	return &DepartmentController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		analysisUseCase: analysisUseCase,
		assignUseCase:   assignUseCase,
	}
}

// List handles GET /departments requests.
func (c *DepartmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDepartmentListResponse(output))
}

// Create handles POST /departments requests.
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidDepartmentData)
		return
	}

	managerID, err := parseUUIDPtr(req.ManagerID)
	if err != nil {
		respondBadRequest(ctx, "Invalid manager_id format", domainerror.ErrCodeInvalidDepartmentData)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), department.CreateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		ManagerID:   managerID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDepartmentResponse(created))
}

// Update handles PUT /departments/:id requests.
func (c *DepartmentController) Update(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeDepartmentNotFound)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidDepartmentData)
		return
	}

	managerID, err := parseUUIDPtr(req.ManagerID)
	if err != nil {
		respondBadRequest(ctx, "Invalid manager_id format", domainerror.ErrCodeInvalidDepartmentData)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), department.UpdateDepartmentInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		ManagerID:   managerID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDepartmentResponse(updated))
}

// Delete handles DELETE /departments/:id requests.
func (c *DepartmentController) Delete(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeDepartmentNotFound)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Department deleted successfully"})
}

// BudgetAnalysis handles GET /departments/:id/budget-analysis requests.
func (c *DepartmentController) BudgetAnalysis(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeDepartmentNotFound)
	if !ok {
		return
	}

	output, err := c.analysisUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAnalysisResponse(output))
}

// AssignUser handles PUT /departments/:id/users/:user_id requests.
func (c *DepartmentController) AssignUser(ctx *gin.Context) {
	departmentID, ok := pathUUID(ctx, "id", domainerror.ErrCodeDepartmentNotFound)
	if !ok {
		return
	}
	userID, ok := pathUUID(ctx, "user_id", domainerror.ErrCodeInvalidUserID)
	if !ok {
		return
	}

	assigned, err := c.assignUseCase.Execute(ctx.Request.Context(), departmentID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserMessageResponse{
		Message: "User assigned to department successfully",
		User:    dto.ToUserResponse(assigned),
	})
}
