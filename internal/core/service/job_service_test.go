package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/core/ports"
)

type stubJobRepo struct {
	jobs map[string]*domain.Job

	// lastScope records the employerID filter the service passed down.
	lastScope string
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) List(_ context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job, employerID string) (*domain.Job, error) {
	r.lastScope = employerID
	existing, ok := r.jobs[job.ID]
	if !ok || (employerID != "" && existing.EmployerID != employerID) {
		return nil, domain.ErrJobNotFound
	}
	existing.Title, existing.Date, existing.Pay = job.Title, job.Date, job.Pay
	clone := *existing
	return &clone, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string, employerID string) error {
	r.lastScope = employerID
	existing, ok := r.jobs[id]
	if !ok || (employerID != "" && existing.EmployerID != employerID) {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

var (
	employer      = &domain.Principal{ID: "emp-1", Email: "emp@example.com", Role: domain.RoleEmployer}
	otherEmployer = &domain.Principal{ID: "emp-2", Email: "emp2@example.com", Role: domain.RoleEmployer}
	student       = &domain.Principal{ID: "stu-1", Email: "stu@example.com", Role: domain.RoleStudent}
	admin         = &domain.Principal{ID: "adm-1", Email: "admin@app.com", Role: domain.RoleAdmin}
)

func TestJobService_Create_EmployerOnly(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	input := ports.CreateJobInput{Title: "Barista", Date: "2024-06-01", Pay: "$15/hr"}

	if _, err := svc.Create(context.Background(), student, input); !errors.Is(err, domain.ErrNotEmployer) {
		t.Fatalf("student: expected ErrNotEmployer, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatalf("no store call expected after role rejection")
	}

	job, err := svc.Create(context.Background(), employer, input)
	if err != nil {
		t.Fatalf("employer create failed: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected generated id")
	}
	if job.EmployerID != employer.ID {
		t.Fatalf("expected employer_id %q, got %q", employer.ID, job.EmployerID)
	}
}

func TestJobService_Update_OwnerScoped(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), employer, ports.CreateJobInput{Title: "Barista", Date: "2024-06-01", Pay: "$15/hr"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input := ports.UpdateJobInput{ID: created.ID, Title: "Senior Barista", Date: "2024-07-01", Pay: "$18/hr"}

	// A different employer's update matches zero rows.
	if _, err := svc.Update(context.Background(), otherEmployer, input); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("non-owner: expected ErrJobNotFound, got %v", err)
	}
	if repo.lastScope != otherEmployer.ID {
		t.Fatalf("store mutation must be scoped to the caller, scope was %q", repo.lastScope)
	}

	updated, err := svc.Update(context.Background(), employer, input)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Senior Barista" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestJobService_Delete_OwnerOrAdmin(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), employer, ports.CreateJobInput{Title: "Barista", Date: "2024-06-01", Pay: "$15/hr"})

	if err := svc.Delete(context.Background(), otherEmployer, created.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("non-owner delete: expected ErrJobNotFound, got %v", err)
	}

	// Admin deletion is unrestricted by ownership.
	if err := svc.Delete(context.Background(), admin, created.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if repo.lastScope != "" {
		t.Fatalf("admin path must be unscoped, scope was %q", repo.lastScope)
	}

	created2, _ := svc.Create(context.Background(), employer, ports.CreateJobInput{Title: "Tutor", Date: "2024-06-02", Pay: "$20/hr"})
	if err := svc.Delete(context.Background(), employer, created2.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if repo.lastScope != employer.ID {
		t.Fatalf("owner path must be scoped, scope was %q", repo.lastScope)
	}
}
