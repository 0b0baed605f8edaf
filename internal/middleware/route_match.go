package middleware

import (
	"strings"

	"github.com/deppfellow/hrms/internal/errs"
	"github.com/labstack/echo/v4"
)

// StrictRouteMatch rejects requests whose path has more segments than the
// matched route. Echo lets a trailing path param swallow the rest of the
// path, so without this GET /a/b would match /:employee_id (and answer 405)
// and /attendance/E1/2024-01-01/x would bind date to "2024-01-01/x".
// Wildcard routes such as /static/* are left alone.
func StrictRouteMatch() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "" || strings.Contains(route, "*") {
				return next(c)
			}

			if segments(echo.GetPath(c.Request())) != segments(route) {
				return errs.NewNotFoundError("Route not found", false, nil)
			}
			return next(c)
		}
	}
}

func segments(path string) int {
	return strings.Count(strings.TrimSuffix(path, "/"), "/")
}
