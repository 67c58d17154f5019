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

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		base string
		m    Modifiers
		want string
	}{
		{
			name: "no modifiers returns base unchanged",
			base: "deployment failed",
			m:    Modifiers{},
			want: "deployment failed",
		},
		{
			name: "single date modifier",
			base: "incident",
			m:    Modifiers{DateFrom: "2024-01-01"},
			want: "incident after:2024-01-01",
		},
		{
			name: "all modifiers in fixed order",
			base: "release",
			m: Modifiers{
				DateFrom: "2024-01-01",
				DateTo:   "2024-02-01",
				FromUser: "alice",
				ToUser:   "bob",
				Channel:  "general",
				HasLinks: true,
				HasFiles: true,
				HasPins:  true,
			},
			want: "release after:2024-01-01 before:2024-02-01 from:@alice to:@bob in:#general has:link has:file has:pin",
		},
		{
			name: "sigils are not doubled",
			m:    Modifiers{FromUser: "@alice", Channel: "#general"},
			base: "q",
			want: "q from:@alice in:#general",
		},
		{
			name: "content flags only",
			base: "roadmap",
			m:    Modifiers{HasImages: true, HasStars: true},
			want: "roadmap has:image has:star",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.base, tt.m)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompose_deterministic(t *testing.T) {
	m := Modifiers{DateFrom: "2024-01-01", FromUser: "alice", HasLinks: true, HasPins: true}
	first := Compose("q", m)
	for range 100 {
		assert.Equal(t, first, Compose("q", m))
	}
}

func TestUserRef(t *testing.T) {
	assert.Equal(t, "@alice", UserRef("alice"))
	assert.Equal(t, "@alice", UserRef("@alice"))
}

func TestChannelRef(t *testing.T) {
	assert.Equal(t, "#general", ChannelRef("general"))
	assert.Equal(t, "#general", ChannelRef("#general"))
}
