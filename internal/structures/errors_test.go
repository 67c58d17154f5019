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

package structures

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAPIError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantMessage    string
		wantSlackError string
		wantStatusCode int
	}{
		{
			name:           "slack error response carries the code",
			err:            slack.SlackErrorResponse{Err: "channel_not_found"},
			wantMessage:    "slack api error: channel_not_found",
			wantSlackError: "channel_not_found",
		},
		{
			name:           "wrapped slack error response",
			err:            fmt.Errorf("users: %w", slack.SlackErrorResponse{Err: "invalid_auth"}),
			wantMessage:    "slack api error: invalid_auth",
			wantSlackError: "invalid_auth",
		},
		{
			name:        "generic error is wrapped",
			err:         errors.New("connection refused"),
			wantMessage: "api call failed: connection refused",
		},
		{
			name:        "nil error yields a generic envelope",
			err:         nil,
			wantMessage: "an unknown api error occurred",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsAPIError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantSlackError, got.SlackError)
			assert.Equal(t, tt.wantStatusCode, got.StatusCode)
			assert.Equal(t, tt.wantMessage, got.Error())
		})
	}
	t.Run("status code error carries the status", func(t *testing.T) {
		got := AsAPIError(slack.StatusCodeError{Code: 502, Status: "502 Bad Gateway"})
		require.NotNil(t, got)
		assert.Equal(t, 502, got.StatusCode)
		assert.Contains(t, got.Message, "api call failed")
		assert.Contains(t, got.Message, "502 Bad Gateway")
		assert.Empty(t, got.SlackError)
	})
}

func TestIsSlackResponseError(t *testing.T) {
	assert.True(t, IsSlackResponseError(slack.SlackErrorResponse{Err: "not_found"}, "not_found"))
	assert.True(t, IsSlackResponseError(slack.SlackErrorResponse{Err: "Not_Found"}, "not_found"))
	assert.False(t, IsSlackResponseError(slack.SlackErrorResponse{Err: "not_found"}, "other"))
	assert.False(t, IsSlackResponseError(errors.New("not_found"), "not_found"))
	assert.False(t, IsSlackResponseError(nil, "not_found"))
}
