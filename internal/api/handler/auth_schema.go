package handler

import (
	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/validate"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// registerSchema gates signups: full password policy, self-selectable roles
// only. Fields are evaluated in order; every failing field is reported.
var registerSchema = validate.Schema{
	{Name: "name", Funcs: []validate.Func{validate.String(1, 100)}},
	{Name: "email", Funcs: []validate.Func{validate.Email()}},
	{Name: "password", Funcs: []validate.Func{validate.Password()}},
	{Name: "role", Funcs: []validate.Func{validate.Role()}},
}

func (r registerRequest) payload() map[string]any {
	return map[string]any{
		"name":     r.Name,
		"email":    r.Email,
		"password": r.Password,
		"role":     r.Role,
	}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token            string             `json:"token"`
	User             *domain.User       `json:"user"`
	PasswordStrength *validate.Strength `json:"password_strength,omitempty"`
}
