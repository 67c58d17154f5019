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

// In this file: users_read and usergroups_read tool definitions and handlers.

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/client"
)

// ─── users_read ───────────────────────────────────────────────────────────────

type usersReadInput struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=1000"`
}

type usersReadResult struct {
	Users      []userSummary `json:"users"`
	TotalCount int           `json:"total_count"`
}

func (s *Server) toolUsersRead() mcpsrv.ServerTool {
	tool := mcplib.NewTool("users_read",
		mcplib.WithDescription("List the members of the workspace. Returns user IDs, display names, and bot flags."),
		mcplib.WithNumber("limit",
			mcplib.Description("Page size used when fetching the member list (1-1000)"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleUsersRead)}
}

func handleUsersRead(ctx context.Context, cl client.Slack, input usersReadInput) (any, error) {
	var opts []slack.GetUsersOption
	if input.Limit > 0 {
		opts = append(opts, slack.GetUsersOptionLimit(input.Limit))
	}
	users, err := cl.GetUsersContext(ctx, opts...)
	if err != nil {
		return nil, err
	}
	summaries := make([]userSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, transformUser(u))
	}
	return usersReadResult{Users: summaries, TotalCount: len(summaries)}, nil
}

// ─── usergroups_read ──────────────────────────────────────────────────────────

type usergroupsReadInput struct {
	IncludeDisabled bool `json:"include_disabled"`
	IncludeCount    bool `json:"include_count"`
	IncludeUsers    bool `json:"include_users"`
}

type usergroupsReadResult struct {
	Usergroups []slack.UserGroup `json:"usergroups"`
}

func (s *Server) toolUsergroupsRead() mcpsrv.ServerTool {
	tool := mcplib.NewTool("usergroups_read",
		mcplib.WithDescription("List the usergroups of the workspace."),
		mcplib.WithBoolean("include_disabled",
			mcplib.Description("Include disabled usergroups"),
		),
		mcplib.WithBoolean("include_count",
			mcplib.Description("Include the member count of each usergroup"),
		),
		mcplib.WithBoolean("include_users",
			mcplib.Description("Include the member list of each usergroup"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: dispatch(s, handleUsergroupsRead)}
}

func handleUsergroupsRead(ctx context.Context, cl client.Slack, input usergroupsReadInput) (any, error) {
	var opts []slack.GetUserGroupsOption
	if input.IncludeDisabled {
		opts = append(opts, slack.GetUserGroupsOptionIncludeDisabled(true))
	}
	if input.IncludeCount {
		opts = append(opts, slack.GetUserGroupsOptionIncludeCount(true))
	}
	if input.IncludeUsers {
		opts = append(opts, slack.GetUserGroupsOptionIncludeUsers(true))
	}
	groups, err := cl.GetUserGroupsContext(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []slack.UserGroup{}
	}
	return usergroupsReadResult{Usergroups: groups}, nil
}
