package ports

import (
	"context"

	"github.com/campusworks/job-board/internal/core/domain"
)

// CreateJobInput carries a validated job-creation payload.
type CreateJobInput struct {
	Title string
	Date  string
	Pay   string
}

// UpdateJobInput carries a validated job-update payload.
type UpdateJobInput struct {
	ID    string
	Title string
	Date  string
	Pay   string
}

type JobService interface {
	List(ctx context.Context) ([]domain.Job, error)
	// Create requires the principal to hold the Employer role.
	Create(ctx context.Context, principal *domain.Principal, input CreateJobInput) (*domain.Job, error)
	// Update is owner-only: the store mutation is scoped to the principal's id.
	Update(ctx context.Context, principal *domain.Principal, input UpdateJobInput) (*domain.Job, error)
	// Delete is owner-only, except for an admin principal, which may delete
	// any job.
	Delete(ctx context.Context, principal *domain.Principal, id string) error
}
