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

func TestScope_Apply(t *testing.T) {
	tests := []struct {
		name   string
		scope  Scope
		q      string
		target string
		want   string
	}{
		{"none is a no-op", ScopeNone, "q after:2024-01-01", "", "q after:2024-01-01"},
		{"none ignores target", ScopeNone, "q", "general", "q"},
		{"dm with target", ScopeDM, "q", "alice", "q in:@alice"},
		{"dm with sigil target", ScopeDM, "q", "@alice", "q in:@alice"},
		{"dm without target excludes channels", ScopeDM, "q", "", "q is:dm -in:#*"},
		{"mpim ignores target", ScopeMPIM, "q", "alice,bob", "q is:mpim"},
		{"mpim without target", ScopeMPIM, "q", "", "q is:mpim"},
		{"private with target", ScopePrivate, "q", "secrets", "q in:#secrets"},
		{"private without target", ScopePrivate, "q", "", "q is:private"},
		{"public with target", ScopePublic, "q", "general", "q in:#general"},
		{"public without target", ScopePublic, "q", "", "q is:public"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scope.Apply(tt.q, tt.target))
		})
	}
}
