package structures

// in this file: the normalised API error envelope.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rusq/slack"
)

// APIError is the only error shape that is allowed to leave the tool
// dispatch pipeline.  Message is always human-readable; SlackError carries
// the application-level error code reported by the API, verbatim, when there
// is one; StatusCode carries the HTTP status for transport-level failures.
type APIError struct {
	Message    string `json:"message"`
	SlackError string `json:"slack_error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError classifies any error returned by a Slack API call into exactly
// one APIError:
//
//  1. an application-level failure ({"ok":false,"error":...}) carries the
//     error code;
//  2. an HTTP-level failure carries the status code;
//  3. any other error is wrapped with its message;
//  4. a nil error (defensive) yields a generic unknown-error envelope.
func AsAPIError(err error) *APIError {
	var ser slack.SlackErrorResponse
	if errors.As(err, &ser) {
		return &APIError{
			Message:    fmt.Sprintf("slack api error: %s", ser.Err),
			SlackError: ser.Err,
		}
	}
	var sce slack.StatusCodeError
	if errors.As(err, &sce) {
		return &APIError{
			Message:    fmt.Sprintf("api call failed: %s", sce.Error()),
			StatusCode: sce.Code,
		}
	}
	if err != nil {
		return &APIError{Message: fmt.Sprintf("api call failed: %s", err.Error())}
	}
	return &APIError{Message: "an unknown api error occurred"}
}

// IsSlackResponseError returns true if the following conditions are met:
// - error is of [slack.SlackErrorResponse] type; AND
// - e.Err field equal to the string s.
// otherwise, returns false.
func IsSlackResponseError(e error, s string) bool {
	var se slack.SlackErrorResponse
	return errors.As(e, &se) && strings.EqualFold(se.Err, s)
}
