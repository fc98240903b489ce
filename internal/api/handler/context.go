package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/job-board/internal/api/middleware"
	"github.com/campusworks/job-board/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call when it is absent (which means the
// middleware did not run on this route).
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
