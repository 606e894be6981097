package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/audit"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// AuditController handles audit log endpoints.
type AuditController struct {
	listUseCase     *audit.ListLogsUseCase
	activityUseCase *audit.GetUserActivityUseCase
}

// NewAuditController creates a new audit controller instance.
func NewAuditController(listUseCase *audit.ListLogsUseCase, activityUseCase *audit.GetUserActivityUseCase) *AuditController {
	return &AuditController{
		listUseCase:     listUseCase,
		activityUseCase: activityUseCase,
	}
}

// ListLogs handles GET /audit/logs requests.
func (c *AuditController) ListLogs(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), audit.ListLogsInput{
		UserID:   scope.Filter(),
		Action:   ctx.Query("action"),
		Resource: ctx.Query("resource"),
		Page:     queryInt(ctx, "page"),
		Limit:    queryInt(ctx, "limit"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuditLogListResponse(result))
}

// UserActivity handles GET /audit/users/:id/activity requests.
func (c *AuditController) UserActivity(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeInvalidUserID)
	if !ok {
		return
	}

	counts, err := c.activityUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserActivityResponse(id.String(), counts))
}
