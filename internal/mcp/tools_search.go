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

// In this file: the search tools.  All message search surfaces share one
// filter schema and one execution path; each surface contributes its
// conversation-type scope and optional target on top of the composed query.

import (
	"context"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/query"
	"github.com/rusq/slackmcp/internal/search"
)

// searchInput is the filter set shared by every message search surface.
type searchInput struct {
	Query     string `json:"query" validate:"required"`
	Sort      string `json:"sort" validate:"omitempty,oneof=score timestamp"`
	SortDir   string `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Highlight bool   `json:"highlight"`
	Count     int    `json:"count" validate:"omitempty,min=1,max=100"`
	Page      int    `json:"page" validate:"omitempty,min=1"`

	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	FromUser string `json:"from_user"`
	ToUser   string `json:"to_user"`

	HasLinks  bool `json:"has_links"`
	HasFiles  bool `json:"has_files"`
	HasImages bool `json:"has_images"`
	HasStars  bool `json:"has_stars"`
	HasPins   bool `json:"has_pins"`
}

// modifiers converts the filter fields into query modifiers.  The channel
// modifier belongs to the generic surface only and is added by its handler.
func (in searchInput) modifiers() query.Modifiers {
	return query.Modifiers{
		DateFrom:  in.DateFrom,
		DateTo:    in.DateTo,
		FromUser:  in.FromUser,
		ToUser:    in.ToUser,
		HasLinks:  in.HasLinks,
		HasFiles:  in.HasFiles,
		HasImages: in.HasImages,
		HasStars:  in.HasStars,
		HasPins:   in.HasPins,
	}
}

func (in searchInput) params() search.Parameters {
	return search.Parameters{
		Sort:      in.Sort,
		SortDir:   in.SortDir,
		Highlight: in.Highlight,
		Count:     in.Count,
		Page:      in.Page,
	}
}

// searchToolOptions declares the shared search schema.  extra carries the
// surface-specific fields; the read-only annotation closes the list.
func searchToolOptions(desc string, extra ...mcplib.ToolOption) []mcplib.ToolOption {
	opts := []mcplib.ToolOption{
		mcplib.WithDescription(desc),
		mcplib.WithString("query",
			mcplib.Description("The free-text search query"),
			mcplib.Required(),
		),
		mcplib.WithString("sort",
			mcplib.Description("Sort results by relevance or by time (default score)"),
			mcplib.Enum("score", "timestamp"),
		),
		mcplib.WithString("sort_dir",
			mcplib.Description("Sort direction (default desc)"),
			mcplib.Enum("asc", "desc"),
		),
		mcplib.WithBoolean("highlight",
			mcplib.Description("Mark the matched substrings in the results"),
		),
		mcplib.WithNumber("count",
			mcplib.Description("Number of results per page (1-100, default 20)"),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Page number"),
		),
		mcplib.WithString("date_from",
			mcplib.Description("Only match messages sent after this date (YYYY-MM-DD)"),
		),
		mcplib.WithString("date_to",
			mcplib.Description("Only match messages sent before this date (YYYY-MM-DD)"),
		),
		mcplib.WithString("from_user",
			mcplib.Description("Only match messages sent by this user (name or ID)"),
		),
		mcplib.WithString("to_user",
			mcplib.Description("Only match messages addressed to this user (name or ID)"),
		),
		mcplib.WithBoolean("has_links",
			mcplib.Description("Only match messages containing links"),
		),
		mcplib.WithBoolean("has_files",
			mcplib.Description("Only match messages with file attachments"),
		),
		mcplib.WithBoolean("has_images",
			mcplib.Description("Only match messages with images"),
		),
		mcplib.WithBoolean("has_stars",
			mcplib.Description("Only match starred messages"),
		),
		mcplib.WithBoolean("has_pins",
			mcplib.Description("Only match pinned messages"),
		),
	}
	opts = append(opts, extra...)
	opts = append(opts, mcplib.WithReadOnlyHintAnnotation(true))
	return opts
}

// runMessageSearch composes the final query from the base text, the filter
// modifiers and the surface scope, and executes it.
func runMessageSearch(ctx context.Context, cl client.Slack, in searchInput, m query.Modifiers, scope query.Scope, target string) (any, error) {
	q := scope.Apply(query.Compose(in.Query, m), target)
	return search.New(cl).SearchMessages(ctx, q, in.params())
}

// ─── search_read ──────────────────────────────────────────────────────────────

type searchReadInput struct {
	searchInput
	Channel string `json:"channel"`
}

func (s *Server) toolSearchRead() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_read", searchToolOptions(
		"Search messages across the whole workspace.",
		mcplib.WithString("channel",
			mcplib.Description("Restrict the search to this channel (name or ID)"),
		),
	)...)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleSearchRead)}
}

func handleSearchRead(ctx context.Context, cl client.Slack, input searchReadInput) (any, error) {
	m := input.modifiers()
	m.Channel = input.Channel
	return runMessageSearch(ctx, cl, input.searchInput, m, query.ScopeNone, "")
}

// ─── search_read_im ───────────────────────────────────────────────────────────

type searchDMInput struct {
	searchInput
	DMUser string `json:"dm_user"`
}

func (s *Server) toolSearchDM() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_read_im", searchToolOptions(
		"Search direct messages. Without dm_user the search covers all DMs and excludes channel results.",
		mcplib.WithString("dm_user",
			mcplib.Description("Restrict the search to the DM conversation with this user; omit to search all DMs"),
		),
	)...)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleSearchDM)}
}

func handleSearchDM(ctx context.Context, cl client.Slack, input searchDMInput) (any, error) {
	return runMessageSearch(ctx, cl, input.searchInput, input.modifiers(), query.ScopeDM, input.DMUser)
}

// ─── search_read_mpim ─────────────────────────────────────────────────────────

type searchMPIMInput struct {
	searchInput
	MPIMUsers string `json:"mpim_users"`
}

func (s *Server) toolSearchMPIM() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_read_mpim", searchToolOptions(
		"Search multi-party direct messages (group DMs). A user list narrows intent only; results are restricted to group DMs as a whole.",
		mcplib.WithString("mpim_users",
			mcplib.Description("Comma-separated users of the group DM to search; best effort, not structurally enforced"),
		),
	)...)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleSearchMPIM)}
}

func handleSearchMPIM(ctx context.Context, cl client.Slack, input searchMPIMInput) (any, error) {
	// The user list is accepted but not folded into the query: combining
	// several in:@user modifiers does not reliably select one group DM, so
	// the scope stays a blanket is:mpim.
	return runMessageSearch(ctx, cl, input.searchInput, input.modifiers(), query.ScopeMPIM, input.MPIMUsers)
}

// ─── search_read_private ──────────────────────────────────────────────────────

type searchPrivateInput struct {
	searchInput
	PrivateChannel string `json:"private_channel"`
}

func (s *Server) toolSearchPrivate() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_read_private", searchToolOptions(
		"Search private channels. Without private_channel the search covers all private channels.",
		mcplib.WithString("private_channel",
			mcplib.Description("Restrict the search to this private channel (name or ID)"),
		),
	)...)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleSearchPrivate)}
}

func handleSearchPrivate(ctx context.Context, cl client.Slack, input searchPrivateInput) (any, error) {
	return runMessageSearch(ctx, cl, input.searchInput, input.modifiers(), query.ScopePrivate, input.PrivateChannel)
}

// ─── search_read_public ───────────────────────────────────────────────────────

type searchPublicInput struct {
	searchInput
	PublicChannel string `json:"public_channel"`
}

func (s *Server) toolSearchPublic() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_read_public", searchToolOptions(
		"Search public channels. Without public_channel the search covers all public channels.",
		mcplib.WithString("public_channel",
			mcplib.Description("Restrict the search to this public channel (name or ID)"),
		),
	)...)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleSearchPublic)}
}

func handleSearchPublic(ctx context.Context, cl client.Slack, input searchPublicInput) (any, error) {
	return runMessageSearch(ctx, cl, input.searchInput, input.modifiers(), query.ScopePublic, input.PublicChannel)
}

// ─── search_read_files ────────────────────────────────────────────────────────

type searchFilesInput struct {
	Query    string `json:"query" validate:"required"`
	Sort     string `json:"sort" validate:"omitempty,oneof=score timestamp"`
	SortDir  string `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Count    int    `json:"count" validate:"omitempty,min=1,max=100"`
	Page     int    `json:"page" validate:"omitempty,min=1"`
	Channel  string `json:"channel"`
	FromUser string `json:"from_user"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

func (s *Server) toolSearchFiles() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_read_files",
		mcplib.WithDescription("Search files across the workspace, with channel, uploader and date range filters."),
		mcplib.WithString("query",
			mcplib.Description("The free-text search query"),
			mcplib.Required(),
		),
		mcplib.WithString("sort",
			mcplib.Description("Sort results by relevance or by time (default score)"),
			mcplib.Enum("score", "timestamp"),
		),
		mcplib.WithString("sort_dir",
			mcplib.Description("Sort direction (default desc)"),
			mcplib.Enum("asc", "desc"),
		),
		mcplib.WithNumber("count",
			mcplib.Description("Number of results per page (1-100, default 20)"),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Page number"),
		),
		mcplib.WithString("channel",
			mcplib.Description("Restrict the search to this channel (name or ID)"),
		),
		mcplib.WithString("from_user",
			mcplib.Description("Only match files uploaded by this user (name or ID)"),
		),
		mcplib.WithString("date_from",
			mcplib.Description("Only match files created after this date (YYYY-MM-DD)"),
		),
		mcplib.WithString("date_to",
			mcplib.Description("Only match files created before this date (YYYY-MM-DD)"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleSearchFiles)}
}

func handleSearchFiles(ctx context.Context, cl client.Slack, input searchFilesInput) (any, error) {
	q := query.Compose(input.Query, query.Modifiers{
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		FromUser: input.FromUser,
		Channel:  input.Channel,
	})
	return search.New(cl).SearchFiles(ctx, q, search.Parameters{
		Sort:    input.Sort,
		SortDir: input.SortDir,
		Count:   input.Count,
		Page:    input.Page,
	})
}

// ─── links_read ───────────────────────────────────────────────────────────────

type linksReadInput struct {
	Query     string `json:"query" validate:"required"`
	Sort      string `json:"sort" validate:"omitempty,oneof=score timestamp"`
	SortDir   string `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Highlight bool   `json:"highlight"`
	Count     int    `json:"count" validate:"omitempty,min=1,max=100"`
	Page      int    `json:"page" validate:"omitempty,min=1"`
	In        string `json:"in"`
	From      string `json:"from"`
	Has       string `json:"has"`
}

type linksReadResult struct {
	Messages   []slack.SearchMessage `json:"messages"`
	Query      string                `json:"query"`
	Paging     slack.Paging          `json:"paging"`
	Pagination slack.Pagination      `json:"pagination"`
	Total      int                   `json:"total"`
}

func (s *Server) toolLinksRead() mcpsrv.ServerTool {
	tool := mcplib.NewTool("links_read",
		mcplib.WithDescription("Search messages that contain links. The has: condition is appended to the query automatically unless already present."),
		mcplib.WithString("query",
			mcplib.Description("The free-text search query"),
			mcplib.Required(),
		),
		mcplib.WithString("sort",
			mcplib.Description("Sort results by relevance or by time (default score)"),
			mcplib.Enum("score", "timestamp"),
		),
		mcplib.WithString("sort_dir",
			mcplib.Description("Sort direction (default desc)"),
			mcplib.Enum("asc", "desc"),
		),
		mcplib.WithBoolean("highlight",
			mcplib.Description("Mark the matched substrings in the results"),
		),
		mcplib.WithNumber("count",
			mcplib.Description("Number of results per page (1-100, default 20)"),
		),
		mcplib.WithNumber("page",
			mcplib.Description("Page number"),
		),
		mcplib.WithString("in",
			mcplib.Description("Restrict the search to a channel or user (e.g. #general, @username)"),
		),
		mcplib.WithString("from",
			mcplib.Description("Only match links posted by this user"),
		),
		mcplib.WithString("has",
			mcplib.Description("The content kind to require: link, image, video, etc. (default link)"),
			mcplib.DefaultString("link"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleLinksRead)}
}

func handleLinksRead(ctx context.Context, cl client.Slack, input linksReadInput) (any, error) {
	q := input.Query
	has := input.Has
	if has == "" {
		has = "link"
	}
	if !strings.Contains(q, "has:"+has) {
		q += " has:" + has
	}
	// Targets are passed through verbatim: the caller addresses channels
	// and users with their sigils on this surface.
	if input.In != "" {
		q += " in:" + input.In
	}
	if input.From != "" {
		q += " from:" + input.From
	}
	q = strings.TrimSpace(q)

	res, err := search.New(cl).SearchMessages(ctx, q, search.Parameters{
		Sort:      input.Sort,
		SortDir:   input.SortDir,
		Highlight: input.Highlight,
		Count:     input.Count,
		Page:      input.Page,
	})
	if err != nil {
		return nil, err
	}
	return linksReadResult{
		Messages:   res.Matches,
		Query:      q,
		Paging:     res.Paging,
		Pagination: res.Pagination,
		Total:      res.Total,
	}, nil
}
