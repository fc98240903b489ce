package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/job-board/internal/api/metrics"
	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/core/ports"
)

// JobHandler handles the job listing operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/jobs.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  jobListResponse
// @Failure      429  {object}  map[string]string
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return c.JSON(http.StatusOK, jobListResponse{Jobs: jobs})
}

// Create handles POST /api/jobs. Only employers may post.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON in request body")
	}

	if fields := createJobSchema.Apply(req.payload()); len(fields) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues(c.Path()).Inc()
		return &domain.ValidationError{Fields: fields}
	}

	job, err := h.service.Create(c.Request().Context(), principal, ports.CreateJobInput{
		Title: req.Title,
		Date:  req.Date,
		Pay:   req.Pay,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, jobResponse{Job: job})
}

// Update handles PUT /api/jobs. Owner-only: the store mutation is scoped to
// the caller's employer id.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateJobRequest  true  "Updated job"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/jobs [put]
func (h *JobHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON in request body")
	}

	if fields := updateJobSchema.Apply(req.payload()); len(fields) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues(c.Path()).Inc()
		return &domain.ValidationError{Fields: fields}
	}

	job, err := h.service.Update(c.Request().Context(), principal, ports.UpdateJobInput{
		ID:    req.ID,
		Title: req.Title,
		Date:  req.Date,
		Pay:   req.Pay,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobResponse{Job: job})
}

// Delete handles DELETE /api/jobs?id=. Owner-only, except the admin may
// delete any job.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  query     string  true  "Job id"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/jobs [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Job ID required")
	}

	if err := h.service.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
