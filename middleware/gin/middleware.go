package ginmw

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	htmlsafe "github.com/reoring/htmlsafe"
	"github.com/reoring/htmlsafe/middleware"
)

// LimitBody rejects request bodies above cfg.MaxBodyBytes with 413 and
// an Issues payload, before the handler reads them.
func LimitBody(cfg middleware.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MaxBodyBytes > 0 {
			if c.Request.ContentLength > cfg.MaxBodyBytes {
				iss := htmlsafe.AppendIssues(nil, htmlsafe.Issue{
					Code:    htmlsafe.CodeInputTooLarge,
					Message: "request body too large",
				})
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, middleware.ErrorPayload(iss))
				return
			}
			c.Request.Body = io.NopCloser(io.LimitReader(c.Request.Body, cfg.MaxBodyBytes+1))
		}
		c.Next()
	}
}

// SafeJSON marshals v and, when cfg.EscapeJSONStrings is set, escapes
// every string value before sending the response.
func SafeJSON(c *gin.Context, cfg middleware.Config, code int, v any) {
	data, err := htmlsafe.MarshalJSON(v)
	if err == nil && cfg.EscapeJSONStrings {
		data, err = htmlsafe.EscapeJSONStrings(data)
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(code, "application/json; charset=utf-8", data)
}
