package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler returns the generic unhandled-error path. Handlers
// convert every expected failure into a flash notice plus a redirect
// themselves; only errors that escape that policy arrive here. The real
// cause is logged server-side and the user lands back on the home page —
// never a raw error page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors (404 from router, method not allowed, etc.)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.String(he.Code, fmt.Sprintf("%v", he.Message))
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		if err := c.Redirect(http.StatusFound, "/"); err != nil {
			_ = c.NoContent(http.StatusInternalServerError)
		}
	}
}
