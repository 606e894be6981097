package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

const redacted = "[REDACTED]"

// AuditMiddleware records successful mutations through an adapter.AuditRecorder.
type AuditMiddleware struct {
	recorder   adapter.AuditRecorder
	pathPrefix string
	logger     *slog.Logger
}

// NewAuditMiddleware creates the audit hook. pathPrefix is stripped from the
// route pattern when deriving the resource name.
func NewAuditMiddleware(recorder adapter.AuditRecorder, pathPrefix string) *AuditMiddleware {
	return &AuditMiddleware{
		recorder:   recorder,
		pathPrefix: pathPrefix,
		logger:     slog.With("component", "audit_middleware"),
	}
}

type auditSnapshot struct {
	Method     string            `json:"method"`
	URL        string            `json:"url"`
	Params     map[string]string `json:"params"`
	Body       any               `json:"body,omitempty"`
	StatusCode int               `json:"status_code"`
}

// Record returns the post-handler stage. It never changes the response.
func (m *AuditMiddleware) Record() gin.HandlerFunc {
	return func(c *gin.Context) {
		action, mutating := entity.AuditActionFor(c.Request.Method)
		if !mutating {
			c.Next()
			return
		}

		body := captureBody(c)

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		details, err := json.Marshal(auditSnapshot{
			Method:     c.Request.Method,
			URL:        c.Request.URL.RequestURI(),
			Params:     params,
			Body:       redactPasswords(body),
			StatusCode: status,
		})
		if err != nil {
			m.logger.Warn("failed to encode audit snapshot", "error", err)
			return
		}

		var userID *uuid.UUID
		if identity, ok := GetIdentity(c); ok {
			id := identity.UserID
			userID = &id
		}

		m.recorder.Record(entity.NewAuditLogEntry(
			userID,
			action,
			ResourceFromRoute(c.FullPath(), m.pathPrefix),
			string(details),
			c.ClientIP(),
		))
	}
}

func captureBody(c *gin.Context) any {
	if c.Request.Body == nil {
		return nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	_ = c.Request.Body.Close()
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil
	}
	return payload
}

func redactPasswords(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			if isPasswordKey(key) {
				v[key] = redacted
				continue
			}
			v[key] = redactPasswords(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = redactPasswords(item)
		}
		return v
	default:
		return v
	}
}

func isPasswordKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "password")
}

// ResourceFromRoute names the resource of a route pattern by its static
// segments, e.g. "/api/v1/goals/:id/progress" becomes "goals/progress".
func ResourceFromRoute(route, prefix string) string {
	route = strings.TrimPrefix(route, prefix)
	var parts []string
	for _, segment := range strings.Split(route, "/") {
		if segment == "" || strings.HasPrefix(segment, ":") || strings.HasPrefix(segment, "*") {
			continue
		}
		parts = append(parts, segment)
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "/")
}
