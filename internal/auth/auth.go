// Package auth resolves the per-call Slack credentials from the hosting
// environment.  Credentials are constructed fresh for every tool call and
// are never cached between calls.
package auth

import (
	"fmt"

	"github.com/rusq/slackmcp/internal/structures"
)

const (
	// UserTokenEnv is the environment variable carrying the user-scoped
	// OAuth token (xoxp-).
	UserTokenEnv = "SLACK_USER_OAUTH_TOKEN"
	// BotTokenEnv is the environment variable carrying the optional
	// bot-scoped token (xoxb-).
	BotTokenEnv = "SLACK_BOT_TOKEN"
)

// Credentials is the per-call bundle of access tokens.  UserToken is
// mandatory; BotToken is optional and unused by the read-only toolset, but
// carried for parity with the app manifest.
type Credentials struct {
	UserToken string
	BotToken  string
}

// FromEnv builds Credentials using the given environment lookup function
// (normally os.Getenv).  It does not validate the tokens; call Validate.
func FromEnv(getenv func(string) string) Credentials {
	return Credentials{
		UserToken: getenv(UserTokenEnv),
		BotToken:  getenv(BotTokenEnv),
	}
}

// Validate ensures that the user token is present and matches a recognised
// token prefix.  No remote call may be attempted with invalid credentials.
func (c Credentials) Validate() error {
	if err := structures.ValidateToken(c.UserToken); err != nil {
		return fmt.Errorf("credential error: %s is invalid: %w", UserTokenEnv, err)
	}
	return nil
}
