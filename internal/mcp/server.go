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

package mcp

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/slackmcp/internal/auth"
	"github.com/rusq/slackmcp/internal/client"
)

const (
	serverName    = "slackmcp"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// ConnectFunc builds the Slack client for one tool call.  The server holds
// no client between calls; every invocation dials with freshly resolved
// credentials.
type ConnectFunc func(ctx context.Context, creds auth.Credentials) (client.Slack, error)

// Server wraps an MCP server, the ambient credential source, and the
// per-call connector.
type Server struct {
	mcp     *mcpsrv.MCPServer
	env     func(string) string
	connect ConnectFunc
	logger  *slog.Logger
}

// Option is the Server constructor option.
type Option func(*Server)

// WithLogger sets the logger.  A nil logger falls back to slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		s.logger = lg
	}
}

// WithEnv sets the environment lookup function used to resolve the per-call
// credentials.  Defaults to os.Getenv.
func WithEnv(getenv func(string) string) Option {
	return func(s *Server) {
		if getenv != nil {
			s.env = getenv
		}
	}
}

// WithConnectFunc overrides how the per-call Slack client is constructed.
// Intended for testing.
func WithConnectFunc(fn ConnectFunc) Option {
	return func(s *Server) {
		if fn != nil {
			s.connect = fn
		}
	}
}

// defaultConnect constructs the real API client from the credentials.
func defaultConnect(_ context.Context, creds auth.Credentials) (client.Slack, error) {
	return client.New(creds)
}

// New creates a new MCP server with all tools registered.  It does not start
// listening until one of the Serve* methods is called, and it does not touch
// the network: credentials are resolved and checked per incoming tool call.
func New(opts ...Option) *Server {
	s := &Server{
		env:     os.Getenv,
		connect: defaultConnect,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions()),
	)

	// Register all tools.
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions that describe the toolset to
// the connecting agent.
func instructions() string {
	return `You are connected to a Slack MCP server with read-only access to a workspace.

Available tools allow you to:
- List users, usergroups and channels
- Read message history of public channels, private channels, DMs and group DMs
- List files and channel bookmarks
- Search messages and files, with filters for date range, sender, recipient,
  channel, and content type, scoped per conversation type

All data is read-only.  Timestamps in messages use Slack's format (Unix epoch
as decimal string, e.g. "1609459200.000001"); date filters accept YYYY-MM-DD.
`
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8483".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolUsersRead(),
		s.toolUsergroupsRead(),
		s.toolChannelsRead(),
		s.toolChannelsHistory(),
		s.toolGroupsHistory(),
		s.toolIMHistory(),
		s.toolMPIMHistory(),
		s.toolFilesRead(),
		s.toolBookmarksRead(),
		s.toolLinksRead(),
		s.toolSearchRead(),
		s.toolSearchFiles(),
		s.toolSearchDM(),
		s.toolSearchMPIM(),
		s.toolSearchPrivate(),
		s.toolSearchPublic(),
	}
}
