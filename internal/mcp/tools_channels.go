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

// In this file: channels_read tool definition and handler.

import (
	"context"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/client"
)

const defListLimit = 50

// respMetadata carries the pagination cursor back to the caller.  The cursor
// is surfaced, never followed internally.
type respMetadata struct {
	NextCursor string `json:"next_cursor"`
}

type channelsReadInput struct {
	Cursor string `json:"cursor"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=1000"`
	TeamID string `json:"team_id"`
	Types  string `json:"types"`
}

type channelsReadResult struct {
	Channels         []channelSummary `json:"channels"`
	ResponseMetadata respMetadata     `json:"response_metadata"`
}

func (s *Server) toolChannelsRead() mcpsrv.ServerTool {
	tool := mcplib.NewTool("channels_read",
		mcplib.WithDescription("List the channels (conversations) of the workspace in a trimmed-down format. Returns channel IDs, names, topics and purposes, plus the next pagination cursor."),
		mcplib.WithString("cursor",
			mcplib.Description("Pagination cursor from a previous call"),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Number of channels to return (1-1000, default 50)"),
		),
		mcplib.WithString("team_id",
			mcplib.Description("Team ID to list channels for (Enterprise Grid)"),
		),
		mcplib.WithString("types",
			mcplib.Description("Comma-separated conversation types: public_channel, private_channel, mpim, im (default public_channel)"),
			mcplib.DefaultString("public_channel"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleChannelsRead)}
}

func handleChannelsRead(ctx context.Context, cl client.Slack, input channelsReadInput) (any, error) {
	types := input.Types
	if types == "" {
		types = "public_channel"
	}
	params := &slack.GetConversationsParameters{
		Cursor: input.Cursor,
		Limit:  limitOr(input.Limit, defListLimit),
		TeamID: input.TeamID,
		Types:  splitTypes(types),
	}
	channels, nextCursor, err := cl.GetConversationsContext(ctx, params)
	if err != nil {
		return nil, err
	}
	summaries := make([]channelSummary, 0, len(channels))
	for _, c := range channels {
		summaries = append(summaries, transformChannel(c))
	}
	return channelsReadResult{
		Channels:         summaries,
		ResponseMetadata: respMetadata{NextCursor: nextCursor},
	}, nil
}

// splitTypes splits the comma-separated conversation type list, trimming
// whitespace around each element.
func splitTypes(types string) []string {
	parts := strings.Split(types, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
