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

// Package query builds Slack search query strings from structured filter
// fields.  A query is the free-text base followed by "keyword:value"
// modifiers; the composer is scope-agnostic and shared by every search
// surface, which layers its own conversation-type scoping on top with
// [Scope.Apply].
package query

import "strings"

// Modifiers is the structured filter set that Compose turns into query
// modifiers.  All fields are optional; zero values produce no modifier.
type Modifiers struct {
	DateFrom string // after:<date>
	DateTo   string // before:<date>
	FromUser string // from:@<user>
	ToUser   string // to:@<user>
	Channel  string // in:#<channel>

	HasLinks  bool
	HasFiles  bool
	HasImages bool
	HasStars  bool
	HasPins   bool
}

// Compose appends the modifiers for m to the base free-text query.  Modifier
// order is fixed (date range, sender, recipient, channel, content flags) so
// that identical input always yields an identical string, and each modifier
// is emitted at most once.  The base is returned unchanged when no filter is
// set.  Compose never receives an empty base: the input schema rejects it
// before composition.
func Compose(base string, m Modifiers) string {
	type mod struct {
		ok  bool
		val string
	}
	ordered := []mod{
		{m.DateFrom != "", "after:" + m.DateFrom},
		{m.DateTo != "", "before:" + m.DateTo},
		{m.FromUser != "", "from:" + UserRef(m.FromUser)},
		{m.ToUser != "", "to:" + UserRef(m.ToUser)},
		{m.Channel != "", "in:" + ChannelRef(m.Channel)},
		{m.HasLinks, "has:link"},
		{m.HasFiles, "has:file"},
		{m.HasImages, "has:image"},
		{m.HasStars, "has:star"},
		{m.HasPins, "has:pin"},
	}

	seen := make(map[string]bool, len(ordered))
	var mods []string
	for _, md := range ordered {
		if !md.ok || seen[md.val] {
			continue
		}
		seen[md.val] = true
		mods = append(mods, md.val)
	}
	if len(mods) == 0 {
		return base
	}
	return base + " " + strings.Join(mods, " ")
}

// UserRef prefixes a bare user reference with "@".  A reference already
// carrying the sigil is passed through unchanged.
func UserRef(user string) string {
	if strings.HasPrefix(user, "@") {
		return user
	}
	return "@" + user
}

// ChannelRef prefixes a bare channel reference with "#".  A reference
// already carrying the sigil is passed through unchanged.
func ChannelRef(channel string) string {
	if strings.HasPrefix(channel, "#") {
		return channel
	}
	return "#" + channel
}
