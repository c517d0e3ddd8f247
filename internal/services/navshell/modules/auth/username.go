package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/navshell/internal/services/navshell/platform/errors"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

const maxDisplayNameRunes = 64

var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]{3,32}$`)

// normalizeUsername lowercases and trims a submitted username.
func normalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// validateUsername checks a normalized username for registration.
func validateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return apperrors.EK(apperrors.KindInvalidInput, "error.username_invalid", "username must be 3-32 characters of a-z, 0-9, _ or -")
	}
	if routepath.IsReservedSegment(username) {
		return apperrors.EK(apperrors.KindInvalidInput, "error.username_reserved", "username collides with a reserved route")
	}
	return nil
}

// normalizeDisplayName trims the display name, falling back to username.
func normalizeDisplayName(raw, username string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return username
	}
	if utf8.RuneCountInString(name) > maxDisplayNameRunes {
		name = string([]rune(name)[:maxDisplayNameRunes])
	}
	return name
}
