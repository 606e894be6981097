package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// Sanitize trims and HTML-escapes every string the handler can read: JSON
// body values at any depth, query values and path parameters. Numbers keep
// their literal form and password fields pass through untouched. A body
// that is not valid JSON is left for binding to reject.
func Sanitize() gin.HandlerFunc {
	return func(c *gin.Context) {
		sanitizeBody(c)

		if c.Request.URL.RawQuery != "" {
			query := c.Request.URL.Query()
			for key, values := range query {
				for i, value := range values {
					values[i] = sanitizeString(value)
				}
				query[key] = values
			}
			c.Request.URL.RawQuery = query.Encode()
		}

		for i := range c.Params {
			c.Params[i].Value = sanitizeString(c.Params[i].Value)
		}

		c.Next()
	}
}

func sanitizeBody(c *gin.Context) {
	if c.Request.Body == nil || !strings.Contains(c.ContentType(), "json") {
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	_ = c.Request.Body.Close()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var payload any
	if err := decoder.Decode(&payload); err != nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(sanitizeValue(payload)); err != nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		return
	}

	c.Request.Body = io.NopCloser(&buf)
	c.Request.ContentLength = int64(buf.Len())
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case string:
		return sanitizeString(v)
	case map[string]any:
		for key, item := range v {
			if isPasswordKey(key) {
				continue
			}
			v[key] = sanitizeValue(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = sanitizeValue(item)
		}
		return v
	default:
		return v
	}
}

// htmlEscaper escapes markup characters plus slash, backslash and backtick.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

func sanitizeString(s string) string {
	return htmlEscaper.Replace(strings.TrimSpace(s))
}
