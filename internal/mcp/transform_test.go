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

import (
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
)

func TestTransformUser(t *testing.T) {
	tests := []struct {
		name string
		user slack.User
		want userSummary
	}{
		{
			name: "real name wins",
			user: slack.User{ID: "U1", Name: "adoe", RealName: "Alice Doe"},
			want: userSummary{ID: "U1", Name: "Alice Doe"},
		},
		{
			name: "handle when no real name",
			user: slack.User{ID: "U2", Name: "adoe"},
			want: userSummary{ID: "U2", Name: "adoe"},
		},
		{
			name: "profile display name as last resort",
			user: func() slack.User {
				u := slack.User{ID: "U3"}
				u.Profile.DisplayName = "Al"
				return u
			}(),
			want: userSummary{ID: "U3", Name: "Al"},
		},
		{
			name: "no names at all",
			user: slack.User{ID: "U4"},
			want: userSummary{ID: "U4", Name: "Unknown User"},
		},
		{
			name: "bot flag is carried",
			user: slack.User{ID: "B1", RealName: "Deploy Bot", IsBot: true},
			want: userSummary{ID: "B1", Name: "Deploy Bot", IsBot: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transformUser(tt.user))
		})
	}
}

func TestTransformChannel(t *testing.T) {
	ch := slack.Channel{
		GroupConversation: slack.GroupConversation{
			Conversation: slack.Conversation{ID: "C1"},
			Name:         "general",
			Topic:        slack.Topic{Value: "Company wide"},
			Purpose:      slack.Purpose{Value: "Everything"},
		},
	}
	assert.Equal(t, channelSummary{
		ID: "C1", Name: "general", Topic: "Company wide", Purpose: "Everything",
	}, transformChannel(ch))

	t.Run("nameless channel gets the placeholder", func(t *testing.T) {
		got := transformChannel(slack.Channel{
			GroupConversation: slack.GroupConversation{
				Conversation: slack.Conversation{ID: "D1"},
			},
		})
		assert.Equal(t, "Unknown Channel", got.Name)
	})
}

func TestTransformMessage(t *testing.T) {
	t.Run("timestamps become display format", func(t *testing.T) {
		m := slack.Message{Msg: slack.Msg{
			User:            "U1",
			Text:            "hello",
			Timestamp:       "1577694990.000400",
			ThreadTimestamp: "1577694990.000400",
			ReplyCount:      3,
		}}
		got := transformMessage(m)
		assert.Equal(t, messageSummary{
			UserID:          "U1",
			Text:            "hello",
			Timestamp:       "2019-12-30 08:36:30",
			ThreadTimestamp: "2019-12-30 08:36:30",
			ReplyCount:      3,
		}, got)
	})
	t.Run("no user yields the placeholder", func(t *testing.T) {
		got := transformMessage(slack.Message{Msg: slack.Msg{Text: "system"}})
		assert.Equal(t, "Unknown User", got.UserID)
	})
	t.Run("no thread timestamp stays empty", func(t *testing.T) {
		got := transformMessage(slack.Message{Msg: slack.Msg{Timestamp: "1577694990.000400"}})
		assert.Empty(t, got.ThreadTimestamp)
	})
}
