package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/middleware"
)

// requireScope returns the request scope or renders 401 when the chain did
// not attach one.
func requireScope(ctx *gin.Context) (entity.Scope, bool) {
	scope, ok := middleware.GetScope(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return entity.Scope{}, false
	}
	return scope, true
}

// pathUUID parses a UUID path parameter or renders 400. A malformed id on an
// owned resource is reported with the resource's not-found code.
func pathUUID(ctx *gin.Context, name string, code domainerror.Code) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		respondBadRequest(ctx, "Invalid "+name+" format", code)
		return uuid.Nil, false
	}
	return id, true
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dto.DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return entity.DateOf(t), nil
}

func parseDatePtr(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseUUIDPtr(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// queryInt returns the integer query value, or 0 when absent or malformed.
func queryInt(ctx *gin.Context, name string) int {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return value
}

func queryUUID(ctx *gin.Context, name string) (*uuid.UUID, error) {
	raw := ctx.Query(name)
	return parseUUIDPtr(&raw)
}

func queryDate(ctx *gin.Context, name string) (*time.Time, error) {
	raw := ctx.Query(name)
	return parseDatePtr(&raw)
}

func queryTransactionType(ctx *gin.Context) *entity.TransactionType {
	raw := ctx.Query("type")
	if raw == "" {
		return nil
	}
	t := entity.TransactionType(raw)
	return &t
}
