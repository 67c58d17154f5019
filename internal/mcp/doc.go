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

// Package mcp implements a Model Context Protocol (MCP) server that exposes
// a Slack workspace's read-only data (users, channels, message history,
// files, bookmarks and search) as callable tools.
//
// Every tool goes through the same dispatch pipeline: the raw JSON input is
// decoded and validated against the tool's declared schema, the per-call
// credentials are resolved from the environment and checked locally, the
// handler performs exactly one remote API call, and the result is either
// serialised as JSON or normalised into the single API error envelope.  No
// raw error ever reaches the transport, and no state is shared between
// calls.
//
// The server is read-only: it never writes to the workspace.
//
// Transport: the server supports two transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default); suitable for local
//     agent integration (e.g. Claude Desktop, VS Code Copilot).
//   - http   – Streamable HTTP transport; suitable for remote agents or when
//     multiple concurrent clients are needed.
package mcp
