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

// In this file: projections of the raw API entity shapes into the stable,
// minimal summaries the tools return.  Every projection is total and every
// optional field has a fixed default, so the output does not depend on which
// optional fields the remote schema happened to populate.

import (
	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/structures"
)

const (
	unknownUser    = "Unknown User"
	unknownChannel = "Unknown Channel"
)

// userSummary is a JSON-serialisable summary of a Slack user.
type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsBot bool   `json:"is_bot"`
}

// channelSummary is a JSON-serialisable summary of a Slack channel.
type channelSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Topic   string `json:"topic"`
	Purpose string `json:"purpose"`
}

// messageSummary is a JSON-serialisable summary of a Slack message, with
// timestamps converted to display format.
type messageSummary struct {
	UserID          string `json:"user_id"`
	Text            string `json:"text"`
	Timestamp       string `json:"timestamp"`
	ThreadTimestamp string `json:"thread_timestamp,omitempty"`
	ReplyCount      int    `json:"reply_count"`
}

// transformUser picks the display name through the fixed priority chain:
// real name, then handle, then profile display name.
func transformUser(u slack.User) userSummary {
	name := u.RealName
	if name == "" {
		name = u.Name
	}
	if name == "" {
		name = u.Profile.DisplayName
	}
	if name == "" {
		name = unknownUser
	}
	return userSummary{
		ID:    u.ID,
		Name:  name,
		IsBot: u.IsBot,
	}
}

func transformChannel(c slack.Channel) channelSummary {
	name := c.Name
	if name == "" {
		name = unknownChannel
	}
	return channelSummary{
		ID:      c.ID,
		Name:    name,
		Topic:   c.Topic.Value,
		Purpose: c.Purpose.Value,
	}
}

func transformMessage(m slack.Message) messageSummary {
	userID := m.User
	if userID == "" {
		userID = unknownUser
	}
	return messageSummary{
		UserID:          userID,
		Text:            m.Text,
		Timestamp:       structures.DisplayTS(m.Timestamp),
		ThreadTimestamp: structures.DisplayTS(m.ThreadTimestamp),
		ReplyCount:      m.ReplyCount,
	}
}
