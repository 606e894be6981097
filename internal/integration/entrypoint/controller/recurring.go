package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/recurring"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring transaction rule endpoints.
type RecurringController struct {
	listUseCase    *recurring.ListRulesUseCase
	createUseCase  *recurring.CreateRuleUseCase
	updateUseCase  *recurring.UpdateRuleUseCase
	deleteUseCase  *recurring.DeleteRuleUseCase
	processUseCase *recurring.ProcessDueUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRulesUseCase,
	createUseCase *recurring.CreateRuleUseCase,
	updateUseCase *recurring.UpdateRuleUseCase,
	deleteUseCase *recurring.DeleteRuleUseCase,
	processUseCase *recurring.ProcessDueUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		processUseCase: processUseCase,
	}
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	rules, err := c.listUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(rules))
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingRecurringFields)
		return
	}

	input := recurring.CreateRuleInput{
		OwnerID:     scope.Owner(),
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Frequency:   entity.Frequency(req.Frequency),
	}
	var err error
	if input.AccountID, err = parseUUIDPtr(req.AccountID); err != nil {
		respondBadRequest(ctx, "Invalid account_id format", domainerror.ErrCodeAccountNotFound)
		return
	}
	if input.StartDate, err = parseDate(req.StartDate); err != nil {
		respondBadRequest(ctx, "Invalid start_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidRecurringDates)
		return
	}
	if input.EndDate, err = parseDatePtr(req.EndDate); err != nil {
		respondBadRequest(ctx, "Invalid end_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidRecurringDates)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(created))
}

// Update handles PUT /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeRecurringRuleNotFound)
	if !ok {
		return
	}

	var req dto.UpdateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingRecurringFields)
		return
	}

	input := recurring.UpdateRuleInput{
		ID:          id,
		Owner:       scope.Filter(),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.Type != nil {
		t := entity.TransactionType(*req.Type)
		input.Type = &t
	}
	if req.Frequency != nil {
		f := entity.Frequency(*req.Frequency)
		input.Frequency = &f
	}
	var err error
	if input.AccountID, err = parseUUIDPtr(req.AccountID); err != nil {
		respondBadRequest(ctx, "Invalid account_id format", domainerror.ErrCodeAccountNotFound)
		return
	}
	if input.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		respondBadRequest(ctx, "Invalid start_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidRecurringDates)
		return
	}
	if input.EndDate, err = parseDatePtr(req.EndDate); err != nil {
		respondBadRequest(ctx, "Invalid end_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidRecurringDates)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(updated))
}

// Delete handles DELETE /recurring/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeRecurringRuleNotFound)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, scope.Filter()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Recurring transaction deleted successfully"})
}

// Process handles POST /recurring/process requests.
func (c *RecurringController) Process(ctx *gin.Context) {
	output, err := c.processUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProcessRecurringResponse{
		Message:   fmt.Sprintf("Processed %d recurring transactions", output.Processed),
		Processed: output.Processed,
	})
}
