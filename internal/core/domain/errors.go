package domain

import "errors"

// Sentinel errors for all expected failure categories. Repositories translate
// raw driver errors into these at the persistence boundary; nothing above the
// repository ever inspects a driver error string.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrNotEmployer        = errors.New("only employers can post jobs")
	ErrForbidden          = errors.New("access forbidden")
)

// ValidationError carries the per-field messages produced by a schema run.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
