package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/job-board/internal/api/metrics"
)

// Admin enforces the admin access tier. It must run after Auth; the verified
// principal's email is compared against the configured admin email. A
// client-supplied email is never trusted for this check.
func Admin(adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)
			if principal == nil {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required")
			}
			if principal.Email != adminEmail {
				metrics.AuthFailuresTotal.WithLabelValues("not_admin").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}
