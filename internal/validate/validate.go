// Package validate implements the field-validation registry used by the
// request pipeline: small composable predicates, and an ordered schema that
// evaluates them against a JSON payload into a field→message map.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Func checks a single payload value and returns an error message, or ""
// when the value is valid.
type Func func(value any) string

// Field pairs a payload field name with the predicates to run against it.
// Predicates run in order; the first failure wins for that field.
type Field struct {
	Name  string
	Funcs []Func
}

// Schema is an ordered list of fields to validate.
type Schema []Field

// Apply runs every field's predicates against the payload and aggregates the
// first failing message per field. An empty result means the payload is valid.
func (s Schema) Apply(payload map[string]any) map[string]string {
	errs := make(map[string]string)
	for _, f := range s {
		value := payload[f.Name]
		for _, fn := range f.Funcs {
			if msg := fn(value); msg != "" {
				errs[f.Name] = msg
				break
			}
		}
	}
	return errs
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// maxEmailLength is the RFC 5321 address length cap.
const maxEmailLength = 254

// passwordSymbols is the punctuation set accepted as a "special character".
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>?`

// Required rejects absent values and strings that are empty after trimming.
func Required() Func {
	return func(value any) string {
		if value == nil {
			return "This field is required"
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return "This field is required"
		}
		return ""
	}
}

// Email enforces presence, a simple local@domain.tld shape, and the RFC
// address length cap.
func Email() Func {
	return func(value any) string {
		s, _ := value.(string)
		if s == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(s) {
			return "Invalid email format"
		}
		if len(s) > maxEmailLength {
			return "Email is too long"
		}
		return ""
	}
}

// String enforces presence, type, and length bounds.
func String(minLength, maxLength int) Func {
	return func(value any) string {
		if value == nil || value == "" {
			return "This field is required"
		}
		s, ok := value.(string)
		if !ok {
			return "Must be a string"
		}
		if len(s) < minLength {
			return "Must be at least " + strconv.Itoa(minLength) + " characters"
		}
		if len(s) > maxLength {
			return "Must be no more than " + strconv.Itoa(maxLength) + " characters"
		}
		return ""
	}
}

// Password enforces the full strength policy, reporting only the first
// failing rule.
func Password() Func {
	return func(value any) string {
		s, _ := value.(string)
		switch {
		case s == "":
			return "Password is required"
		case len(s) < 8:
			return "Password must be at least 8 characters"
		case !strings.ContainsFunc(s, isUpper):
			return "Password must contain an uppercase letter"
		case !strings.ContainsFunc(s, isLower):
			return "Password must contain a lowercase letter"
		case !strings.ContainsFunc(s, isDigit):
			return "Password must contain a number"
		case !strings.ContainsAny(s, passwordSymbols):
			return "Password must contain a special character"
		}
		return ""
	}
}

// Role enforces membership in the self-selectable signup roles.
func Role() Func {
	return func(value any) string {
		s, _ := value.(string)
		if s == "" {
			return "Role is required"
		}
		if s != "Student" && s != "Employer" {
			return "Role must be either Student or Employer"
		}
		return ""
	}
}

// UUID enforces presence and canonical UUID shape.
func UUID() Func {
	return func(value any) string {
		s, _ := value.(string)
		if s == "" {
			return "This field is required"
		}
		if _, err := uuid.Parse(s); err != nil {
			return "Must be a valid UUID"
		}
		return ""
	}
}

// Date enforces presence and an ISO calendar date (YYYY-MM-DD).
func Date() Func {
	return func(value any) string {
		s, _ := value.(string)
		if s == "" {
			return "This field is required"
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "Must be a valid date (YYYY-MM-DD)"
		}
		return ""
	}
}

// CheckPassword evaluates every password rule and returns all failing
// messages, unlike the Password predicate which short-circuits. Used for the
// advisory strength report.
func CheckPassword(password string) (bool, []string) {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if !strings.ContainsFunc(password, isUpper) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, isLower) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, isDigit) {
		errs = append(errs, "Password must contain at least one number")
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		errs = append(errs, "Password must contain at least one special character")
	}
	return len(errs) == 0, errs
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
