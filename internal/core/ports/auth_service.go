package ports

import (
	"context"

	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/validate"
)

// RegisterInput carries a signup request after schema validation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
	// Strength is the advisory password-strength report computed at
	// registration. Nil on login. Never gates submission.
	Strength *validate.Strength
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// EnsureAdmin provisions the configured admin account if it does not
	// exist yet. Called once at startup.
	EnsureAdmin(ctx context.Context) error
}

// TokenVerifier is the consumption boundary to the auth provider: it resolves
// a bearer token into a Principal or fails. Implementations must not cache
// results across requests.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Principal, error)
}
