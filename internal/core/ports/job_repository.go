package ports

import (
	"context"

	"github.com/campusworks/job-board/internal/core/domain"
)

// JobRepository defines the persistence interface for job listings.
//
// Update and Delete take an employerID scope: when non-empty, the store
// mutation is constrained to rows owned by that employer, so a non-owner
// mutating someone else's job matches zero rows and surfaces as
// domain.ErrJobNotFound. The admin deletion path passes an empty scope.
type JobRepository interface {
	// List returns all jobs, newest first.
	List(ctx context.Context) ([]domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job, employerID string) (*domain.Job, error)
	Delete(ctx context.Context, id string, employerID string) error
}
