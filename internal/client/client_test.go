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

package client

import (
	"net/http"
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/slackmcp/internal/auth"
)

func TestNew(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		cl, err := New(auth.Credentials{UserToken: "xoxp-123-abc"})
		require.NoError(t, err)
		assert.NotNil(t, cl)
	})
	t.Run("invalid credentials are rejected locally", func(t *testing.T) {
		cl, err := New(auth.Credentials{UserToken: "garbage"})
		assert.Error(t, err)
		assert.Nil(t, cl)
	})
	t.Run("empty credentials are rejected", func(t *testing.T) {
		cl, err := New(auth.Credentials{})
		assert.Error(t, err)
		assert.Nil(t, cl)
	})
	t.Run("http client option", func(t *testing.T) {
		cl, err := New(auth.Credentials{UserToken: "xoxp-123-abc"}, WithHTTPClient(&http.Client{}))
		require.NoError(t, err)
		assert.NotNil(t, cl)
	})
}

func TestWrap(t *testing.T) {
	cl := Wrap(slack.New("xoxp-123-abc"))
	require.NotNil(t, cl)
	var _ Slack = cl
}
