package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/goal"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// GoalController handles financial goal endpoints.
type GoalController struct {
	listUseCase     *goal.ListGoalsUseCase
	summaryUseCase  *goal.GetGoalSummaryUseCase
	createUseCase   *goal.CreateGoalUseCase
	updateUseCase   *goal.UpdateGoalUseCase
	progressUseCase *goal.AddGoalProgressUseCase
	deleteUseCase   *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	summaryUseCase *goal.GetGoalSummaryUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	progressUseCase *goal.AddGoalProgressUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		summaryUseCase:  summaryUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		progressUseCase: progressUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// Summary handles GET /goals/summary requests.
func (c *GoalController) Summary(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalSummaryResponse(output))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingGoalFields)
		return
	}

	targetDate, err := parseDatePtr(req.TargetDate)
	if err != nil {
		respondBadRequest(ctx, "Invalid target_date format, expected YYYY-MM-DD", domainerror.ErrCodeMissingGoalFields)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		OwnerID:       scope.Owner(),
		Title:         req.Title,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Currency:      req.Currency,
		TargetDate:    targetDate,
		Category:      req.Category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeGoalNotFound)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingGoalFields)
		return
	}

	targetDate, err := parseDatePtr(req.TargetDate)
	if err != nil {
		respondBadRequest(ctx, "Invalid target_date format, expected YYYY-MM-DD", domainerror.ErrCodeMissingGoalFields)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		ID:            id,
		Owner:         scope.Filter(),
		Title:         req.Title,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    targetDate,
		Category:      req.Category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output))
}

// AddProgress handles PUT /goals/:id/progress requests.
func (c *GoalController) AddProgress(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeGoalNotFound)
	if !ok {
		return
	}

	var req dto.GoalProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeInvalidProgressAmount)
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), goal.AddGoalProgressInput{
		ID:     id,
		Owner:  scope.Filter(),
		Amount: req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeGoalNotFound)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, scope.Filter()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal deleted successfully"})
}
