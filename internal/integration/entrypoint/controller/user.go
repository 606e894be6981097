package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/user"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/middleware"
)

// UserController handles user management endpoints.
type UserController struct {
	listUseCase       *user.ListUsersUseCase
	updateRoleUseCase *user.UpdateRoleUseCase
	deleteUseCase     *user.DeleteUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	listUseCase *user.ListUsersUseCase,
	updateRoleUseCase *user.UpdateRoleUseCase,
	deleteUseCase *user.DeleteUserUseCase,
) *UserController {
	return &UserController{
		listUseCase:       listUseCase,
		updateRoleUseCase: updateRoleUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// UpdateRole handles PUT /users/:id/role requests.
func (c *UserController) UpdateRole(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeInvalidUserID)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid role", domainerror.ErrCodeInvalidRole)
		return
	}

	updated, err := c.updateRoleUseCase.Execute(ctx.Request.Context(), id, req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserMessageResponse{
		Message: "User role updated successfully",
		User:    dto.ToUserResponse(updated),
	})
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	identity, ok := middleware.GetIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	id, ok := pathUUID(ctx, "id", domainerror.ErrCodeInvalidUserID)
	if !ok {
		return
	}

	deleted, err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{
		ActorID: identity.UserID,
		ID:      id,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserMessageResponse{
		Message: "User deleted successfully",
		User:    dto.ToUserResponse(deleted),
	})
}
