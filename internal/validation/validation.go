// Package validation holds the pure format predicates shared by all handlers.
package validation

import "regexp"

var (
	// Canonical lowercase UUIDv4: version nibble 4, variant nibble 8-b.
	uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	lowerRe      = regexp.MustCompile(`[a-z]`)
	upperRe      = regexp.MustCompile(`[A-Z]`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	whitespaceRe = regexp.MustCompile(`\s`)
)

// IsUUID reports whether s is a canonical UUIDv4 string.
func IsUUID(s string) bool {
	return uuidRe.MatchString(s)
}

// IsValidUsername reports whether s is between 3 and 36 characters long.
func IsValidUsername(s string) bool {
	return len(s) > 2 && len(s) <= 36
}

// IsValidPassword reports whether s is at least 8 characters long and
// contains a lowercase letter, an uppercase letter and a digit, with no
// whitespace anywhere.
func IsValidPassword(s string) bool {
	return len(s) >= 8 &&
		lowerRe.MatchString(s) &&
		upperRe.MatchString(s) &&
		digitRe.MatchString(s) &&
		!whitespaceRe.MatchString(s)
}
