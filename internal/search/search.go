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

// Package search is a thin facade over the Slack search API.  A Service is
// bound to one authenticated client; the dispatcher constructs it fresh for
// every search tool call.
package search

import (
	"context"
	"runtime/trace"

	"github.com/rusq/slack"

	"github.com/rusq/slackmcp/internal/client"
)

// Default search parameter values, applied when the caller leaves the field
// unset.
const (
	DefSort    = "score"
	DefSortDir = "desc"
	DefCount   = 20
	DefPage    = 1
)

// Parameters are the paging and ordering options shared by message and file
// search.
type Parameters struct {
	Sort      string
	SortDir   string
	Highlight bool
	Count     int
	Page      int
}

// Service executes search calls on behalf of one credential set.
type Service struct {
	cl client.Slack
}

// New returns a Service bound to cl.
func New(cl client.Slack) *Service {
	return &Service{cl: cl}
}

// Messages is the shaped result of a message search.
type Messages struct {
	Matches    []slack.SearchMessage `json:"matches"`
	Paging     slack.Paging          `json:"paging"`
	Pagination slack.Pagination      `json:"pagination"`
	Total      int                   `json:"total"`
}

// Files is the shaped result of a file search.
type Files struct {
	Matches    []slack.File     `json:"matches"`
	Paging     slack.Paging     `json:"paging"`
	Pagination slack.Pagination `json:"pagination"`
	Total      int              `json:"total"`
}

// SearchMessages runs the composed query against search.messages and shapes
// the result.  Fields the remote response omits default to empty values.
func (s *Service) SearchMessages(ctx context.Context, query string, p Parameters) (*Messages, error) {
	ctx, task := trace.NewTask(ctx, "SearchMessages")
	defer task.End()

	sm, err := s.cl.SearchMessagesContext(ctx, query, searchParams(p))
	if err != nil {
		return nil, err
	}
	res := &Messages{Matches: []slack.SearchMessage{}}
	if sm != nil {
		if sm.Matches != nil {
			res.Matches = sm.Matches
		}
		res.Paging = sm.Paging
		res.Pagination = sm.Pagination
		res.Total = sm.Total
	}
	return res, nil
}

// SearchFiles runs the composed query against search.files and shapes the
// result.
func (s *Service) SearchFiles(ctx context.Context, query string, p Parameters) (*Files, error) {
	ctx, task := trace.NewTask(ctx, "SearchFiles")
	defer task.End()

	sf, err := s.cl.SearchFilesContext(ctx, query, searchParams(p))
	if err != nil {
		return nil, err
	}
	res := &Files{Matches: []slack.File{}}
	if sf != nil {
		if sf.Matches != nil {
			res.Matches = sf.Matches
		}
		res.Paging = sf.Paging
		res.Pagination = sf.Pagination
		res.Total = sf.Total
	}
	return res, nil
}

// searchParams fills the slack search parameters from p, applying defaults
// for unset fields.
func searchParams(p Parameters) slack.SearchParameters {
	sp := slack.SearchParameters{
		Sort:          p.Sort,
		SortDirection: p.SortDir,
		Highlight:     p.Highlight,
		Count:         p.Count,
		Page:          p.Page,
	}
	if sp.Sort == "" {
		sp.Sort = DefSort
	}
	if sp.SortDirection == "" {
		sp.SortDirection = DefSortDir
	}
	if sp.Count == 0 {
		sp.Count = DefCount
	}
	if sp.Page == 0 {
		sp.Page = DefPage
	}
	return sp
}
