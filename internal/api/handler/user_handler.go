package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/job-board/internal/api/metrics"
	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/core/ports"
	"github.com/campusworks/job-board/internal/validate"
)

// UserHandler handles the admin moderation endpoints. Both routes sit behind
// the Auth and Admin middleware.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userListResponse struct {
	Users []domain.User `json:"users"`
}

var deleteUserID = validate.UUID()

// List handles GET /api/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

// Delete handles DELETE /api/admin/users?id=. The id must be a well-formed
// UUID; malformed ids are rejected before any store call.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  query     string  true  "User id (UUID)"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /api/admin/users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID required")
	}
	if msg := deleteUserID(id); msg != "" {
		metrics.ValidationFailuresTotal.WithLabelValues(c.Path()).Inc()
		return &domain.ValidationError{Fields: map[string]string{"id": msg}}
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
