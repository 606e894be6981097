package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// OwnerQueryParam lets an admin target another owner's data.
const OwnerQueryParam = "user_id"

// Scope resolves the data scope for the authenticated caller. Non-admins are
// pinned to themselves and the query parameter is ignored for them.
func Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "No token provided",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			return
		}

		var requested *uuid.UUID
		if identity.Role.BypassesOwnership() {
			if raw := c.Query(OwnerQueryParam); raw != "" {
				id, err := uuid.Parse(raw)
				if err != nil {
					c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
						Error: "Invalid user_id",
						Code:  string(domainerror.ErrCodeInvalidUserID),
					})
					return
				}
				requested = &id
			}
		}

		c.Set(string(ScopeKey), entity.NewScope(identity, requested))
		c.Next()
	}
}

// GetScope returns the scope attached by Scope.
func GetScope(c *gin.Context) (entity.Scope, bool) {
	value, exists := c.Get(string(ScopeKey))
	if !exists {
		return entity.Scope{}, false
	}
	scope, ok := value.(entity.Scope)
	return scope, ok
}
