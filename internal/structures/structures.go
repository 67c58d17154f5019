// Package structures provides functions to parse and validate Slack data
// types: API tokens, timestamps, and the normalised API error envelope.
package structures

import (
	"errors"
	"regexp"
	"strings"
)

// tokenRE is a loose regular expression to match Slack API tokens.
// b - bot, p - legacy user token.
var tokenRE = regexp.MustCompile(`^xox[bp]-[0-9A-Za-z-]+$`)

var (
	// ErrNoToken is returned when the token is an empty string.
	ErrNoToken = errors.New("no user token provided")

	errInvalidToken = errors.New("token must start with xoxp- or xoxb-")
)

// ValidateToken returns an error if the token is empty or does not match a
// recognised token prefix.  It performs no network access.
func ValidateToken(token string) error {
	if token == "" {
		return ErrNoToken
	}
	if !tokenRE.MatchString(token) {
		return errInvalidToken
	}
	return nil
}

// HasTokenPrefix reports whether s carries one of the recognised Slack token
// prefixes.
func HasTokenPrefix(s string) bool {
	return strings.HasPrefix(s, "xoxp-") || strings.HasPrefix(s, "xoxb-")
}
