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

package search

import (
	"context"
	"errors"
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rusq/slackmcp/internal/client/mock_client"
)

func TestService_SearchMessages(t *testing.T) {
	t.Run("defaults are applied to unset parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_client.NewMockSlack(ctrl)

		var got slack.SearchParameters
		m.EXPECT().
			SearchMessagesContext(gomock.Any(), "needle", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p slack.SearchParameters) (*slack.SearchMessages, error) {
				got = p
				return &slack.SearchMessages{}, nil
			})

		_, err := New(m).SearchMessages(t.Context(), "needle", Parameters{})
		require.NoError(t, err)
		assert.Equal(t, DefSort, got.Sort)
		assert.Equal(t, DefSortDir, got.SortDirection)
		assert.Equal(t, DefCount, got.Count)
		assert.Equal(t, DefPage, got.Page)
	})
	t.Run("explicit parameters pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_client.NewMockSlack(ctrl)

		var got slack.SearchParameters
		m.EXPECT().
			SearchMessagesContext(gomock.Any(), "needle", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p slack.SearchParameters) (*slack.SearchMessages, error) {
				got = p
				return &slack.SearchMessages{}, nil
			})

		_, err := New(m).SearchMessages(t.Context(), "needle", Parameters{
			Sort: "timestamp", SortDir: "asc", Highlight: true, Count: 5, Page: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "timestamp", got.Sort)
		assert.Equal(t, "asc", got.SortDirection)
		assert.True(t, got.Highlight)
		assert.Equal(t, 5, got.Count)
		assert.Equal(t, 3, got.Page)
	})
	t.Run("empty response shapes to empty matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_client.NewMockSlack(ctrl)
		m.EXPECT().
			SearchMessagesContext(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&slack.SearchMessages{Total: 0}, nil)

		res, err := New(m).SearchMessages(t.Context(), "nothing", Parameters{})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.NotNil(t, res.Matches)
		assert.Empty(t, res.Matches)
	})
	t.Run("matches and totals are carried over", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_client.NewMockSlack(ctrl)
		m.EXPECT().
			SearchMessagesContext(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&slack.SearchMessages{
				Matches: []slack.SearchMessage{{Text: "found it"}},
				Total:   1,
			}, nil)

		res, err := New(m).SearchMessages(t.Context(), "found", Parameters{})
		require.NoError(t, err)
		require.Len(t, res.Matches, 1)
		assert.Equal(t, "found it", res.Matches[0].Text)
		assert.Equal(t, 1, res.Total)
	})
	t.Run("remote error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_client.NewMockSlack(ctrl)
		wantErr := errors.New("kaboom")
		m.EXPECT().
			SearchMessagesContext(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, wantErr)

		res, err := New(m).SearchMessages(t.Context(), "q", Parameters{})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestService_SearchFiles(t *testing.T) {
	t.Run("defaults and shaping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_client.NewMockSlack(ctrl)

		var got slack.SearchParameters
		m.EXPECT().
			SearchFilesContext(gomock.Any(), "report", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p slack.SearchParameters) (*slack.SearchFiles, error) {
				got = p
				return &slack.SearchFiles{
					Matches: []slack.File{{ID: "F1"}},
					Total:   1,
				}, nil
			})

		res, err := New(m).SearchFiles(t.Context(), "report", Parameters{})
		require.NoError(t, err)
		assert.Equal(t, DefSort, got.Sort)
		assert.Equal(t, DefCount, got.Count)
		require.Len(t, res.Matches, 1)
		assert.Equal(t, "F1", res.Matches[0].ID)
		assert.Equal(t, 1, res.Total)
	})
	t.Run("remote error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mock_client.NewMockSlack(ctrl)
		wantErr := errors.New("search_unavailable")
		m.EXPECT().
			SearchFilesContext(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, wantErr)

		res, err := New(m).SearchFiles(t.Context(), "q", Parameters{})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, wantErr)
	})
}
