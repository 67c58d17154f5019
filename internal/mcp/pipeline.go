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

// In this file: the generic tool dispatch pipeline.  Every tool handler runs
// through dispatch, which owns input decoding, schema validation, credential
// resolution and error normalisation, so the per-tool code is reduced to the
// schema declaration and the single remote call.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/slackmcp/internal/auth"
	"github.com/rusq/slackmcp/internal/client"
	"github.com/rusq/slackmcp/internal/structures"
)

// handlerFunc is the typed tool handler.  It receives the validated input
// and a client bound to the per-call credentials, and performs exactly one
// logical remote operation.
type handlerFunc[T any] func(ctx context.Context, cl client.Slack, input T) (any, error)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// report field names as they appear on the wire
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	lc := en.New()
	trans, _ = ut.New(lc, lc).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("validator translations: %s", err))
	}
}

// dispatch adapts a typed handler into an MCP tool handler.  The sequence
// per call: decode the raw arguments into T, validate T against its declared
// constraints, resolve and check the credentials, connect, invoke.  Both
// validation and credential failures are reported before any network access,
// and any handler failure leaves as the normalised API error envelope; a raw
// error never escapes to the transport.
func dispatch[T any](s *Server, fn handlerFunc[T]) mcpsrv.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var input T
		if err := decodeArgs(req, &input); err != nil {
			return resultErr(fmt.Errorf("malformed arguments: %w", err)), nil
		}
		if err := validateInput(input); err != nil {
			return resultErr(err), nil
		}
		creds := auth.FromEnv(s.env)
		if err := creds.Validate(); err != nil {
			return resultErr(err), nil
		}
		cl, err := s.connect(ctx, creds)
		if err != nil {
			return resultErr(structures.AsAPIError(err)), nil
		}

		s.logger.DebugContext(ctx, "mcp: tool call", "tool", req.Params.Name)

		v, err := fn(ctx, cl, input)
		if err != nil {
			apiErr := structures.AsAPIError(err)
			s.logger.InfoContext(ctx, "mcp: tool call failed",
				"tool", req.Params.Name, "error", apiErr.Message, "slack_error", apiErr.SlackError)
			return resultErr(apiErr), nil
		}
		return resultJSON(v)
	}
}

// decodeArgs unmarshals the call arguments into the typed input value via a
// JSON round trip, so that json tags and number conversions follow the same
// rules as the declared schema.
func decodeArgs(req mcplib.CallToolRequest, v any) error {
	args := req.GetArguments()
	if args == nil {
		return nil
	}
	b, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// validateInput runs the declared struct constraints and flattens any
// violations into one error enumerating each offending field.
func validateInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if errors.As(err, &vErr) {
		msgs := make([]string, 0, len(vErr))
		for _, fe := range vErr {
			msgs = append(msgs, fe.Translate(trans))
		}
		return fmt.Errorf("input validation failed: %s", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("input validation failed: %w", err)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	res, err := mcplib.NewToolResultJSON(v)
	if err != nil {
		return resultErr(fmt.Errorf("serialise: %w", err)), nil
	}
	return res, nil
}

// limitOr returns limit if set, def otherwise.
func limitOr(limit, def int) int {
	if limit == 0 {
		return def
	}
	return limit
}
