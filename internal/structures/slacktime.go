package structures

// in this file: slack timestamp parsing and conversion functions

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// epochRE matches a Slack timestamp: exactly ten integer digits with an
// optional fractional part (e.g. "1577694990" or "1577694990.000400").
var epochRE = regexp.MustCompile(`^\d{10}(\.\d+)?$`)

// dateLayouts are the calendar layouts accepted by ToSlackTS, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ToSlackTS converts a human date string, or a raw epoch-seconds string, into
// the Slack timestamp representation.  An input that already looks like a
// Slack timestamp is returned unchanged.  If the input is empty or cannot be
// parsed, it returns ("", false) and the caller must omit the value rather
// than send it malformed.
func ToSlackTS(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if epochRE.MatchString(s) {
		return s, true
	}
	t, err := parseDate(s)
	if err != nil {
		return "", false
	}
	return FormatSlackTS(t), true
}

// parseDate parses a calendar date or date-time string in UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}

// ParseSlackTS parses the Slack timestamp (i.e. "1577694990.000400") into
// time.Time in UTC.
func ParseSlackTS(timestamp string) (time.Time, error) {
	const (
		base = 10
		bit  = 64
	)
	sSec, sMicro, found := strings.Cut(timestamp, ".")
	if sSec == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var t int64
	var err error
	if !found {
		t, err = strconv.ParseInt(sSec+"000000", base, bit)
	} else {
		t, err = strconv.ParseInt(sSec+sMicro, base, bit)
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(t).UTC(), nil
}

// FormatSlackTS formats the time as a Slack timestamp string with six
// fractional digits.
func FormatSlackTS(ts time.Time) string {
	if ts.IsZero() || ts.Before(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return ""
	}
	hi := ts.Unix()
	lo := ts.UnixMicro() % 1_000_000
	return fmt.Sprintf("%d.%06d", hi, lo)
}

// DisplayTS converts a Slack timestamp into a "2006-01-02 15:04:05" display
// string in UTC.  Empty input yields empty output, and a malformed timestamp
// is returned empty rather than propagating an error.
func DisplayTS(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := ParseSlackTS(ts)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// EpochSeconds converts a human date string or Slack timestamp to whole epoch
// seconds.  Returns (0, false) when the input is empty or unparseable.
func EpochSeconds(s string) (int64, bool) {
	ts, ok := ToSlackTS(s)
	if !ok {
		return 0, false
	}
	t, err := ParseSlackTS(ts)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}
