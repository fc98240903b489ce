package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/core/ports"
)

// JobService implements the job listing operations. Ownership rules live
// here: creation is employer-only, update is owner-only, deletion is
// owner-or-admin.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx)
}

func (s *JobService) Create(ctx context.Context, principal *domain.Principal, input ports.CreateJobInput) (*domain.Job, error) {
	if principal.Role != domain.RoleEmployer {
		return nil, domain.ErrNotEmployer
	}

	job := &domain.Job{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Date:       input.Date,
		Pay:        input.Pay,
		EmployerID: principal.ID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Str("employer_id", principal.ID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("employer_id", principal.ID).Msg("job created")
	return job, nil
}

func (s *JobService) Update(ctx context.Context, principal *domain.Principal, input ports.UpdateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		ID:    input.ID,
		Title: input.Title,
		Date:  input.Date,
		Pay:   input.Pay,
	}

	// The store mutation is scoped to the principal's rows; a non-owner's
	// update matches nothing and surfaces as not found.
	updated, err := s.repo.Update(ctx, job, principal.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", updated.ID).Str("employer_id", principal.ID).Msg("job updated")
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, principal *domain.Principal, id string) error {
	scope := principal.ID
	if principal.IsAdmin() {
		scope = ""
	}

	if err := s.repo.Delete(ctx, id, scope); err != nil {
		return err
	}

	s.logger.Info().Str("job_id", id).Str("deleted_by", principal.ID).Msg("job deleted")
	return nil
}
