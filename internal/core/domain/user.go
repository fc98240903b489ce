package domain

import "time"

const (
	RoleStudent  = "Student"
	RoleEmployer = "Employer"
	RoleAdmin    = "Admin"
)

// SignupRoles are the roles a user may pick at registration. Admin is never
// self-selectable; the admin account is provisioned from configuration at
// startup.
var SignupRoles = []string{RoleStudent, RoleEmployer}

// User models a registered account: a student, an employer, or the admin.
// Role is immutable after creation; there is no role-change operation.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the identity resolved from a verified token for the duration
// of a single request. It is recomputed on every request and never cached.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
