package ports

import (
	"context"

	"github.com/campusworks/job-board/internal/core/domain"
)

// UserService exposes the admin moderation operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
