package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/analytics"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics and dashboard endpoints.
type AnalyticsController struct {
	analyticsUseCase *analytics.GetAnalyticsUseCase
	dashboardUseCase *analytics.GetDashboardUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	analyticsUseCase *analytics.GetAnalyticsUseCase,
	dashboardUseCase *analytics.GetDashboardUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		analyticsUseCase: analyticsUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

// Get handles GET /analytics requests.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), analytics.GetAnalyticsInput{
		Owner:  scope.Owner(),
		Period: ctx.Query("period"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}

// Dashboard handles GET /analytics/dashboard requests.
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
