package validate

import "strings"

// Strength is an advisory password-strength report. It never gates
// submission; clients use it to render a strength meter.
type Strength struct {
	Level      string `json:"level"`
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}

var strengthLevels = []Strength{
	{Level: "very-weak", Label: "Very Weak", Percentage: 20},
	{Level: "weak", Label: "Weak", Percentage: 40},
	{Level: "fair", Label: "Fair", Percentage: 60},
	{Level: "good", Label: "Good", Percentage: 80},
	{Level: "strong", Label: "Strong", Percentage: 100},
}

// complexitySymbols is the narrower symbol set counted by the complexity
// bonus, distinct from the full set the pass/fail rules accept.
const complexitySymbols = "!@#$%^&*"

// Score computes the raw 0-8 strength score: one point per length threshold
// (8, 12, 16), one per character class present, and a bonus for combining all
// four classes.
func Score(password string) int {
	score := 0

	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}

	hasLower := strings.ContainsFunc(password, isLower)
	hasUpper := strings.ContainsFunc(password, isUpper)
	hasDigit := strings.ContainsFunc(password, isDigit)
	if hasLower {
		score++
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if strings.ContainsAny(password, passwordSymbols) {
		score++
	}

	if len(password) >= 16 {
		score++
	}
	if hasLower && hasUpper && hasDigit && strings.ContainsAny(password, complexitySymbols) {
		score++
	}

	return score
}

// PasswordStrength buckets the raw score into one of five display levels.
func PasswordStrength(password string) Strength {
	idx := Score(password) / 2
	if idx >= len(strengthLevels) {
		idx = len(strengthLevels) - 1
	}
	return strengthLevels[idx]
}
