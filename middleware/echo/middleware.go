package echomw

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	htmlsafe "github.com/reoring/htmlsafe"
	"github.com/reoring/htmlsafe/middleware"
)

// LimitBody rejects request bodies above cfg.MaxBodyBytes with 413 and
// an Issues payload, before the handler reads them.
func LimitBody(cfg middleware.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.MaxBodyBytes > 0 {
				req := c.Request()
				if req.ContentLength > cfg.MaxBodyBytes {
					iss := htmlsafe.AppendIssues(nil, htmlsafe.Issue{
						Code:    htmlsafe.CodeInputTooLarge,
						Message: "request body too large",
					})
					return c.JSON(http.StatusRequestEntityTooLarge, middleware.ErrorPayload(iss))
				}
				req.Body = io.NopCloser(io.LimitReader(req.Body, cfg.MaxBodyBytes+1))
			}
			return next(c)
		}
	}
}

// SafeJSON marshals v and, when cfg.EscapeJSONStrings is set, escapes
// every string value before sending the response. Use it for payloads
// that browsers interpolate into HTML.
func SafeJSON(c echo.Context, cfg middleware.Config, code int, v any) error {
	data, err := htmlsafe.MarshalJSON(v)
	if err != nil {
		return err
	}
	if cfg.EscapeJSONStrings {
		if data, err = htmlsafe.EscapeJSONStrings(data); err != nil {
			return err
		}
	}
	return c.JSONBlob(code, data)
}
