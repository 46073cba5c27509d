package auth

import (
	"regexp"
	"strings"
)

const (
	msgInvalidEmail     = "Email is not valid"
	msgPasswordRequired = "Password is required"
)

// one @, no whitespace, at least one dot after the @
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidationResult struct {
	Valid   bool
	Message string
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateLogin reports the first broken rule, email before password.
func ValidateLogin(payload LoginRequest) ValidationResult {
	if payload.Email == "" || !isValidEmail(payload.Email) {
		return ValidationResult{Valid: false, Message: msgInvalidEmail}
	}

	if strings.TrimSpace(payload.Password) == "" {
		return ValidationResult{Valid: false, Message: msgPasswordRequired}
	}

	return ValidationResult{Valid: true}
}
