package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/report"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	financialUseCase *report.GetFinancialReportUseCase
	taxUseCase       *report.GetTaxReportUseCase
	budgetUseCase    *report.GetBudgetReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	financialUseCase *report.GetFinancialReportUseCase,
	taxUseCase *report.GetTaxReportUseCase,
	budgetUseCase *report.GetBudgetReportUseCase,
) *ReportController {
	return &ReportController{
		financialUseCase: financialUseCase,
		taxUseCase:       taxUseCase,
		budgetUseCase:    budgetUseCase,
	}
}

// Financial handles GET /reports/financial requests.
func (c *ReportController) Financial(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	startDate, err := queryDate(ctx, "start_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid start_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidReportRange)
		return
	}
	endDate, err := queryDate(ctx, "end_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid end_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidReportRange)
		return
	}

	output, err := c.financialUseCase.Execute(ctx.Request.Context(), report.FinancialReportInput{
		Owner:     scope.Owner(),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialReportResponse(output))
}

// Tax handles GET /reports/tax requests.
func (c *ReportController) Tax(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.taxUseCase.Execute(ctx.Request.Context(), scope.Owner(), ctx.Query("year"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxReportResponse(output))
}

// Budget handles GET /reports/budget requests.
func (c *ReportController) Budget(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.budgetUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetReportResponse(output))
}
