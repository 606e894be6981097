package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/dto"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantCode    string
		wantDetails bool
	}{
		{
			name:        "validation",
			err:         domainerror.Validation(domainerror.ErrCodeInvalidAmount, "Invalid amount", domainerror.ErrInvalidAmount),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid amount",
			wantCode:    string(domainerror.ErrCodeInvalidAmount),
		},
		{
			name:        "conflict renders as bad request",
			err:         domainerror.New(domainerror.KindConflict, domainerror.ErrCodeUserExists, "User already exists", domainerror.ErrUserAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User already exists",
			wantCode:    string(domainerror.ErrCodeUserExists),
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("lookup: %w", domainerror.NotFound(domainerror.ErrCodeGoalNotFound, "Goal not found", domainerror.ErrGoalNotFound)),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Goal not found",
			wantCode:    string(domainerror.ErrCodeGoalNotFound),
		},
		{
			name:        "unauthorized",
			err:         domainerror.New(domainerror.KindUnauthorized, domainerror.ErrCodeInvalidCredentials, "Invalid credentials", domainerror.ErrInvalidCredentials),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
			wantCode:    string(domainerror.ErrCodeInvalidCredentials),
		},
		{
			name:        "forbidden",
			err:         domainerror.New(domainerror.KindForbidden, domainerror.ErrCodeReadOnly, "Read-only users cannot modify data", domainerror.ErrReadOnly),
			wantStatus:  http.StatusForbidden,
			wantMessage: "Read-only users cannot modify data",
			wantCode:    string(domainerror.ErrCodeReadOnly),
		},
		{
			name:        "infrastructure failure is hidden",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An internal error occurred",
			wantDetails: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(ctx, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Error != tt.wantMessage {
				t.Errorf("error = %q, want %q", body.Error, tt.wantMessage)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if (body.Details != "") != tt.wantDetails {
				t.Errorf("details = %q, wantDetails %v", body.Details, tt.wantDetails)
			}
		})
	}

	t.Run("release mode omits details", func(t *testing.T) {
		gin.SetMode(gin.ReleaseMode)
		defer gin.SetMode(gin.TestMode)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(ctx, errors.New("secret dsn"))

		var body dto.ErrorResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Details != "" {
			t.Errorf("details leaked in release mode: %q", body.Details)
		}
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"2024-03-15", "2024-03-15", false},
		{"2024-03-15T23:30:00-05:00", "2024-03-16", false},
		{"15/03/2024", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Format(dto.DateLayout) != tt.want {
				t.Errorf("parseDate() = %s, want %s", got.Format(dto.DateLayout), tt.want)
			}
		})
	}
}
