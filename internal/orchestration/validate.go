package orchestration

import (
	"strings"

	apperrors "github.com/agbru/ghlookup/internal/errors"
)

// MaxUsernameLength is the longest handle the host platform accepts.
const MaxUsernameLength = 39

// Validation messages shown to the user.
const (
	MsgEnterUsername   = "enter a username"
	MsgInvalidUsername = "invalid username"
)

// NormalizeInput trims surrounding whitespace from raw input.
func NormalizeInput(raw string) string {
	return strings.TrimSpace(raw)
}

// ValidateUsername checks the handle shape: 1-39 ASCII letters, digits or
// hyphens, no leading or trailing hyphen and no consecutive hyphens.
// It returns an apperrors.ValidationError describing the first violation.
func ValidateUsername(handle string) error {
	if handle == "" {
		return apperrors.ValidationError{Field: "username", Message: MsgEnterUsername}
	}
	if !isValidHandle(handle) {
		return apperrors.ValidationError{Field: "username", Message: MsgInvalidUsername}
	}
	return nil
}

func isValidHandle(s string) bool {
	if len(s) == 0 || len(s) > MaxUsernameLength {
		return false
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-':
			if s[i-1] == '-' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
