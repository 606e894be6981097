package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// ReadOnlyGate rejects mutating requests from roles that cannot mutate.
func ReadOnlyGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, mutating := entity.AuditActionFor(c.Request.Method); !mutating {
			c.Next()
			return
		}

		identity, ok := GetIdentity(c)
		if !ok || !identity.Role.CanMutate() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Read-only users cannot modify data",
				Code:  string(domainerror.ErrCodeReadOnly),
			})
			return
		}

		c.Next()
	}
}

// RequireRoles allows only callers holding one of roles.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	required := make([]string, len(roles))
	for i, role := range roles {
		required[i] = role.String()
	}

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.Role.Valid() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Access denied: No role found",
				Code:  string(domainerror.ErrCodeNoRole),
			})
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.AccessDeniedResponse{
			Error:         "Access denied: Insufficient permissions",
			Code:          string(domainerror.ErrCodeInsufficientRole),
			RequiredRoles: required,
			UserRole:      identity.Role.String(),
		})
	}
}
