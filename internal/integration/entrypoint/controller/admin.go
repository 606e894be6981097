package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/admin"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/transaction"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// AdminController handles cross-owner administration endpoints.
type AdminController struct {
	listUseCase   *admin.ListAllTransactionsUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	statsUseCase  *admin.GetStatsUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	listUseCase *admin.ListAllTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	statsUseCase *admin.GetStatsUseCase,
) *AdminController {
	return &AdminController{
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		statsUseCase:  statsUseCase,
	}
}

// ListTransactions handles GET /admin/transactions requests. The user_id
// filter is resolved by the scope middleware.
func (c *AdminController) ListTransactions(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), admin.ListAllTransactionsInput{
		UserID:   scope.Filter(),
		Type:     queryTransactionType(ctx),
		Category: ctx.Query("category"),
		Page:     queryInt(ctx, "page"),
		Limit:    queryInt(ctx, "limit"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOwnedTransactionListResponse(result))
}

// DeleteTransaction handles DELETE /admin/transactions/:id requests.
func (c *AdminController) DeleteTransaction(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeTransactionNotFound)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, nil); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// Stats handles GET /admin/stats requests.
func (c *AdminController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output))
}
