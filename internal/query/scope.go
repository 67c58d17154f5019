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

// In this file: per-surface conversation-type scoping.

// Scope restricts a search to one conversation type.  Each specialised
// search surface applies its scope after composing the filtered query,
// because the precedence between an explicit target and the blanket
// conversation-type restriction differs per surface.
type Scope int

const (
	// ScopeNone adds no implicit restriction (generic search).
	ScopeNone Scope = iota
	// ScopeDM restricts to direct messages.
	ScopeDM
	// ScopeMPIM restricts to multi-party direct messages.
	ScopeMPIM
	// ScopePrivate restricts to private channels.
	ScopePrivate
	// ScopePublic restricts to public channels.
	ScopePublic
)

// Apply appends the scope restriction to the composed query q.  target is
// the surface's explicit target (DM partner or channel); when given it
// supersedes the blanket conversation-type restriction on the DM and channel
// surfaces.  The MPIM surface always restricts with is:mpim: combining
// multiple in:@user modifiers does not reliably select a group conversation,
// so an explicit user list only narrows intent informally.
func (s Scope) Apply(q, target string) string {
	switch s {
	case ScopeDM:
		if target != "" {
			return q + " in:" + UserRef(target)
		}
		// exclude channel-addressed results when searching across all DMs
		return q + " is:dm -in:#*"
	case ScopeMPIM:
		return q + " is:mpim"
	case ScopePrivate:
		if target != "" {
			return q + " in:" + ChannelRef(target)
		}
		return q + " is:private"
	case ScopePublic:
		if target != "" {
			return q + " in:" + ChannelRef(target)
		}
		return q + " is:public"
	}
	return q
}
