// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package client defines the narrow Slack Web API surface that the MCP tools
// consume, and the *slack.Client backed implementation of it.
package client

import (
	"context"
	"net/http"

	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/auth"
)

//go:generate mockgen -destination mock_client/mock_client.go . Slack

// Slack is an interface that defines the methods that a Slack client should
// provide.  It is the fixed external contract of the remote service; each
// tool performs exactly one call on it per invocation.
type Slack interface {
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) (channels []slack.Channel, nextCursor string, err error)
	GetFilesContext(ctx context.Context, params slack.GetFilesParameters) ([]slack.File, *slack.Paging, error)
	GetUserGroupsContext(ctx context.Context, options ...slack.GetUserGroupsOption) ([]slack.UserGroup, error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	ListBookmarks(channelID string) ([]slack.Bookmark, error)
	SearchFilesContext(ctx context.Context, query string, params slack.SearchParameters) (*slack.SearchFiles, error)
	SearchMessagesContext(ctx context.Context, query string, params slack.SearchParameters) (*slack.SearchMessages, error)
}

var _ Slack = (*Client)(nil)

// Client wraps *slack.Client.  All Slack interface methods are promoted from
// the embedded *slack.Client.  A Client is bound to one credential set and
// is constructed fresh for each tool call.
type Client struct {
	*slack.Client
}

type options struct {
	httpClient *http.Client
}

// Option is the Client constructor option.
type Option func(*options)

// WithHTTPClient sets the http client to use for API calls.
func WithHTTPClient(cl *http.Client) Option {
	return func(o *options) {
		o.httpClient = cl
	}
}

// New creates a Client authenticated with the user-scoped token from creds.
// It validates the credentials locally and does not dial the network; the
// first network access happens on the first API call.
func New(creds auth.Credentials, opt ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, fn := range opt {
		fn(&o)
	}
	var slackOpts []slack.Option
	if o.httpClient != nil {
		slackOpts = append(slackOpts, slack.OptionHTTPClient(o.httpClient))
	}
	return &Client{Client: slack.New(creds.UserToken, slackOpts...)}, nil
}

// Wrap wraps a *slack.Client and returns a *Client that implements the Slack
// interface.  Intended for testing.
func Wrap(cl *slack.Client) *Client {
	return &Client{Client: cl}
}
