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

// In this file: files_read and bookmarks_read tool definitions and handlers.

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/structures"
)

const defFilesCount = 100

// ─── files_read ───────────────────────────────────────────────────────────────

type filesReadInput struct {
	Channel string `json:"channel"`
	User    string `json:"user"`
	Count   int    `json:"count" validate:"omitempty,min=1,max=1000"`
	Page    int    `json:"page" validate:"omitempty,min=1"`
	TsFrom  string `json:"ts_from"`
	TsTo    string `json:"ts_to"`
	Types   string `json:"types"`
}

type filesReadResult struct {
	Files  []slack.File `json:"files"`
	Paging slack.Paging `json:"paging"`
}

func (s *Server) toolFilesRead() mcpsrv.ServerTool {
	tool := mcplib.NewTool("files_read",
		mcplib.WithDescription("List the files of the workspace, with optional channel, user, time range and type filters."),
		mcplib.WithString("channel",
			mcplib.Description("Only list files posted in this channel"),
		),
		mcplib.WithString("user",
			mcplib.Description("Only list files uploaded by this user"),
		),
		mcplib.WithNumber("count",
			mcplib.Description("Number of files to return per page (1-1000, default 100)"),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Page number"),
		),
		mcplib.WithString("ts_from",
			mcplib.Description("Only list files created after this timestamp or date"),
		),
		mcplib.WithString("ts_to",
			mcplib.Description("Only list files created before this timestamp or date"),
		),
		mcplib.WithString("types",
			mcplib.Description("Comma-separated file types: images, gdocs, zips, pdfs, etc."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleFilesRead)}
}

func handleFilesRead(ctx context.Context, cl client.Slack, input filesReadInput) (any, error) {
	params := slack.GetFilesParameters{
		Channel: input.Channel,
		User:    input.User,
		Types:   input.Types,
		Count:   limitOr(input.Count, defFilesCount),
		Page:    limitOr(input.Page, 1),
	}
	if secs, ok := structures.EpochSeconds(input.TsFrom); ok {
		params.TimestampFrom = slack.JSONTime(secs)
	}
	if secs, ok := structures.EpochSeconds(input.TsTo); ok {
		params.TimestampTo = slack.JSONTime(secs)
	}

	files, paging, err := cl.GetFilesContext(ctx, params)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []slack.File{}
	}
	res := filesReadResult{Files: files}
	if paging != nil {
		res.Paging = *paging
	}
	return res, nil
}

// ─── bookmarks_read ───────────────────────────────────────────────────────────

type bookmarksReadInput struct {
	ChannelID string `json:"channel_id" validate:"required"`
}

type bookmarksReadResult struct {
	Bookmarks []slack.Bookmark `json:"bookmarks"`
}

func (s *Server) toolBookmarksRead() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bookmarks_read",
		mcplib.WithDescription("List the bookmarks of a channel."),
		mcplib.WithString("channel_id",
			mcplib.Description("The channel ID to list bookmarks for (e.g. C01234ABCD)"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleBookmarksRead)}
}

func handleBookmarksRead(ctx context.Context, cl client.Slack, input bookmarksReadInput) (any, error) {
	bookmarks, err := cl.ListBookmarks(input.ChannelID)
	if err != nil {
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = []slack.Bookmark{}
	}
	return bookmarksReadResult{Bookmarks: bookmarks}, nil
}
