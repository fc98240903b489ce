package ports

import (
	"context"

	"github.com/campusworks/job-board/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
