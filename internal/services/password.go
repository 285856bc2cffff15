package services

import (
	"strings"
	"unicode"
)

const passwordSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// PasswordCheck is the outcome of a password strength evaluation.
type PasswordCheck struct {
	Valid      bool     `json:"is_valid"`
	Violations []string `json:"errors"`
}

// EvaluatePassword checks a password against the strength rules. All
// rules are evaluated so callers can report every unmet rule at once.
func EvaluatePassword(password string) PasswordCheck {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
		if strings.ContainsRune(passwordSpecialChars, c) {
			hasSpecial = true
		}
	}

	if !hasUpper {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain at least one number")
	}
	if !hasSpecial {
		violations = append(violations, "Password must contain at least one special character")
	}

	return PasswordCheck{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
