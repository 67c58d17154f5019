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

// In this file: the conversation history tools.  All four surfaces (public
// channel, private channel, DM, group DM) are one remote method with the
// same request and response shape, so they share one schema and one handler;
// only the tool name and description differ.

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/structures"
)

const defHistoryLimit = 100

type historyInput struct {
	Channel            string `json:"channel" validate:"required"`
	Cursor             string `json:"cursor"`
	Limit              int    `json:"limit" validate:"omitempty,min=1,max=1000"`
	Oldest             string `json:"oldest"`
	Latest             string `json:"latest"`
	Inclusive          bool   `json:"inclusive"`
	IncludeAllMetadata bool   `json:"include_all_metadata"`
}

type historyResult struct {
	Messages         []messageSummary `json:"messages"`
	HasMore          bool             `json:"has_more"`
	PinCount         int              `json:"pin_count"`
	ResponseMetadata respMetadata     `json:"response_metadata"`
}

// historyTool declares one history tool; the schema is identical across the
// four conversation surfaces.
func (s *Server) historyTool(name, desc string) mcpsrv.ServerTool {
	tool := mcplib.NewTool(name,
		mcplib.WithDescription(desc),
		mcplib.WithString("channel",
			mcplib.Description("The conversation ID to fetch history for (e.g. C01234ABCD, D01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithString("cursor",
			mcplib.Description("Pagination cursor from a previous call"),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Number of messages to return (1-1000, default 100)"),
		),
		mcplib.WithString("oldest",
			mcplib.Description("Start of the time range: a Slack timestamp or a date such as \"2024-01-15\""),
		),
		mcplib.WithString("latest",
			mcplib.Description("End of the time range: a Slack timestamp or a date such as \"2024-01-15\""),
		),
		mcplib.WithBoolean("inclusive",
			mcplib.Description("Include messages with the oldest/latest timestamps"),
		),
		mcplib.WithBoolean("include_all_metadata",
			mcplib.Description("Return all message metadata"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleHistory)}
}

func (s *Server) toolChannelsHistory() mcpsrv.ServerTool {
	return s.historyTool("channels_history",
		"Fetch the message history of a public channel. Timestamps are returned in display format; thread bodies are not included.")
}

func (s *Server) toolGroupsHistory() mcpsrv.ServerTool {
	return s.historyTool("groups_history",
		"Fetch the message history of a private channel.")
}

func (s *Server) toolIMHistory() mcpsrv.ServerTool {
	return s.historyTool("im_history",
		"Fetch the message history of a direct message conversation.")
}

func (s *Server) toolMPIMHistory() mcpsrv.ServerTool {
	return s.historyTool("mpim_history",
		"Fetch the message history of a multi-party direct message conversation.")
}

func handleHistory(ctx context.Context, cl client.Slack, input historyInput) (any, error) {
	params := &slack.GetConversationHistoryParameters{
		ChannelID:          input.Channel,
		Cursor:             input.Cursor,
		Limit:              limitOr(input.Limit, defHistoryLimit),
		Inclusive:          input.Inclusive,
		IncludeAllMetadata: input.IncludeAllMetadata,
	}
	// Unparseable range bounds are omitted rather than sent malformed.
	if ts, ok := structures.ToSlackTS(input.Oldest); ok {
		params.Oldest = ts
	}
	if ts, ok := structures.ToSlackTS(input.Latest); ok {
		params.Latest = ts
	}

	resp, err := cl.GetConversationHistoryContext(ctx, params)
	if err != nil {
		return nil, err
	}
	msgs := make([]messageSummary, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		msgs = append(msgs, transformMessage(m))
	}
	return historyResult{
		Messages:         msgs,
		HasMore:          resp.HasMore,
		PinCount:         resp.PinCount,
		ResponseMetadata: respMetadata{NextCursor: resp.ResponseMetaData.NextCursor},
	}, nil
}
