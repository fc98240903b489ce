package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/job-board/internal/api/metrics"
	"github.com/campusworks/job-board/internal/ratelimit"
)

// RateLimit gates request volume for one route under a (maxRequests, window)
// policy. Buckets are keyed by route plus client identifier so each
// operation's budget is independent. Rejections carry a Retry-After header in
// whole seconds.
func RateLimit(limiter *ratelimit.Limiter, maxRequests int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Method + " " + c.Path() + "|" + clientIdentifier(c)

			decision := limiter.Check(key, maxRequests, window)
			if !decision.Allowed {
				metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
				c.Response().Header().Set("Retry-After", strconv.Itoa(decision.RetryAfterSeconds()))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later.")
			}

			return next(c)
		}
	}
}

// clientIdentifier derives the rate-limit bucket key from the request origin:
// the first forwarded address, the real-IP header, the transport peer, or a
// fallback sentinel when none is available.
func clientIdentifier(c echo.Context) string {
	if fwd := c.Request().Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if ip := c.Request().Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	return "unknown"
}
