package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase       *transaction.ListTransactionsUseCase
	getUseCase        *transaction.GetTransactionUseCase
	categoriesUseCase *transaction.ListCategoriesUseCase
	createUseCase     *transaction.CreateTransactionUseCase
	updateUseCase     *transaction.UpdateTransactionUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	categoriesUseCase *transaction.ListCategoriesUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		categoriesUseCase: categoriesUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	accountID, err := queryUUID(ctx, "account_id")
	if err != nil {
		respondBadRequest(ctx, "Invalid account_id format", domainerror.ErrCodeAccountNotFound)
		return
	}
	startDate, err := queryDate(ctx, "start_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid start_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidDateRange)
		return
	}
	endDate, err := queryDate(ctx, "end_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid end_date format, expected YYYY-MM-DD", domainerror.ErrCodeInvalidDateRange)
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		Owner:     scope.Filter(),
		AccountID: accountID,
		Type:      queryTransactionType(ctx),
		Category:  ctx.Query("category"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      queryInt(ctx, "page"),
		Limit:     queryInt(ctx, "limit"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(result))
}

// Categories handles GET /transactions/categories requests.
func (c *TransactionController) Categories(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	categories, err := c.categoriesUseCase.Execute(ctx.Request.Context(), scope.Owner())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeTransactionNotFound)
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id, scope.Filter())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(found))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingTransactionData)
		return
	}

	input := transaction.CreateTransactionInput{
		OwnerID:     scope.Owner(),
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	}
	var err error
	if input.AccountID, err = parseUUIDPtr(req.AccountID); err != nil {
		respondBadRequest(ctx, "Invalid account_id format", domainerror.ErrCodeAccountNotFound)
		return
	}
	if input.DepartmentID, err = parseUUIDPtr(req.DepartmentID); err != nil {
		respondBadRequest(ctx, "Invalid department_id format", domainerror.ErrCodeDepartmentNotFound)
		return
	}
	if req.Date != "" {
		if input.Date, err = parseDate(req.Date); err != nil {
			respondBadRequest(ctx, "Invalid date format, expected YYYY-MM-DD", domainerror.ErrCodeMissingTransactionData)
			return
		}
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeTransactionNotFound)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body: "+err.Error(), domainerror.ErrCodeMissingTransactionData)
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:          id,
		Owner:       scope.Filter(),
		Category:    req.Category,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	}
	if req.Type != nil {
		t := entity.TransactionType(*req.Type)
		input.Type = &t
	}
	var err error
	if input.AccountID, err = parseUUIDPtr(req.AccountID); err != nil {
		respondBadRequest(ctx, "Invalid account_id format", domainerror.ErrCodeAccountNotFound)
		return
	}
	if input.DepartmentID, err = parseUUIDPtr(req.DepartmentID); err != nil {
		respondBadRequest(ctx, "Invalid department_id format", domainerror.ErrCodeDepartmentNotFound)
		return
	}
	if input.Date, err = parseDatePtr(req.Date); err != nil {
		respondBadRequest(ctx, "Invalid date format, expected YYYY-MM-DD", domainerror.ErrCodeMissingTransactionData)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeTransactionNotFound)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id, scope.Filter()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}
