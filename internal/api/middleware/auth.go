package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/job-board/internal/api/metrics"
	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/core/ports"
)

// principalKey is the context key under which the resolved Principal is
// stored for downstream handlers.
const principalKey = "principal"

// Auth extracts the bearer token, delegates verification to the token
// verifier, and injects the resolved principal into the request context.
// Every request re-verifies; nothing is cached across requests.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token required")
			}

			principal, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil || principal == nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// Principal returns the principal injected by Auth, or nil when the
// middleware has not run on this request.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
