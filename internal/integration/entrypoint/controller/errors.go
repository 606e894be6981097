// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

// statusForKind maps a domain error kind to an HTTP status code.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindUnauthorized:
		return http.StatusUnauthorized
	case domainerror.KindForbidden:
		return http.StatusForbidden
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindValidation, domainerror.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders err. Domain errors carry their own message and code;
// anything else is logged and hidden behind a generic message, with details
// only outside release mode.
func respondError(ctx *gin.Context, err error) {
	if domainErr, ok := domainerror.As(err); ok && domainErr.Kind != domainerror.KindInternal {
		ctx.JSON(statusForKind(domainErr.Kind), dto.ErrorResponse{
			Error: domainErr.Message,
			Code:  string(domainErr.Code),
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)

	response := dto.ErrorResponse{Error: "An internal error occurred"}
	if gin.Mode() != gin.ReleaseMode {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, response)
}

// respondBadRequest renders a request that failed binding or parsing.
func respondBadRequest(ctx *gin.Context, message string, code domainerror.Code) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}
