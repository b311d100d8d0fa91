// Package schedule holds the reminder-time logic: normalizing user-supplied
// duration expressions to minutes and turning a minute offset into an
// absolute timestamp.
package schedule

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when a duration expression carries no
// leading integer at all (e.g. "abc").
var ErrInvalidFormat = errors.New("invalid duration format")

// ParseMinutes normalizes a duration expression to a minute count.
// Numeric inputs pass through unchanged with no unit inference. Strings
// are parsed as a leading decimal integer with an optional unit suffix:
// "m" is minutes, "h" hours, "d" days. A bare number or an unknown
// suffix means minutes; "5x" parses as 5, it is not rejected.
func ParseMinutes(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case string:
		return parseExpr(n)
	default:
		return 0, ErrInvalidFormat
	}
}

func parseExpr(s string) (int64, error) {
	s = strings.TrimSpace(s)
	n, ok := leadingInt(s)
	if !ok {
		return 0, ErrInvalidFormat
	}
	switch {
	case strings.HasSuffix(s, "h"):
		return n * 60, nil
	case strings.HasSuffix(s, "d"):
		return n * 24 * 60, nil
	default:
		// "m", no suffix and unknown suffixes all mean minutes.
		return n, nil
	}
}

// leadingInt reads as many leading digit characters as form a valid
// integer and ignores everything after them.
func leadingInt(s string) (int64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// At returns now shifted forward by the given minute count.
func At(now time.Time, minutes int64) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}

// FormatFor renders a schedule time for human display in emails and
// API responses.
func FormatFor(t time.Time) string {
	return t.Format("Mon Jan 2, 3:04 PM")
}
