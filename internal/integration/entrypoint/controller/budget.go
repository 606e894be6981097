package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/budget"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	alertsUseCase *budget.ListBudgetAlertsUseCase
	createUseCase *budget.CreateBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	alertsUseCase *budget.ListBudgetAlertsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		alertsUseCase: alertsUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Alerts handles GET /budgets/alerts requests.
func (c *BudgetController) Alerts(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	alerts, err := c.alertsUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAlertsResponse(alerts))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingBudgetFields)
		return
	}

	input := budget.CreateBudgetInput{
		OwnerID:  scope.Owner(),
		Category: req.Category,
		Amount:   req.Amount,
		Period:   entity.BudgetPeriod(req.Period),
		Currency: req.Currency,
	}
	var err error
	if input.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		respondBadRequest(ctx, "Invalid start_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidBudgetDates)
		return
	}
	if input.EndDate, err = parseDatePtr(req.EndDate); err != nil {
		respondBadRequest(ctx, "Invalid end_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidBudgetDates)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(created))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeBudgetNotFound)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingBudgetFields)
		return
	}

	input := budget.UpdateBudgetInput{
		ID:       id,
		Owner:    scope.Filter(),
		Category: req.Category,
		Amount:   req.Amount,
		IsActive: req.IsActive,
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}
	var err error
	if input.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		respondBadRequest(ctx, "Invalid start_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidBudgetDates)
		return
	}
	if input.EndDate, err = parseDatePtr(req.EndDate); err != nil {
		respondBadRequest(ctx, "Invalid end_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidBudgetDates)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(updated))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeBudgetNotFound)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, scope.Filter()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted successfully"})
}
