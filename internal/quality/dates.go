package quality

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var relativeDatePattern = regexp.MustCompile(`(\d+)\s*(year|month|week|day|hour|minute)s?\s*ago`)

// ParsePublishedDate resolves a publish date string to an absolute date.
// Listing payloads carry relative dates ("2 years ago"); those are resolved
// against now. Absolute formats go through dateparse. The raw string is
// always preserved alongside the parsed value.
func ParsePublishedDate(raw string, now time.Time) (string, *time.Time) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}

	if t := parseRelativeDate(s, now); t != nil {
		return s, t
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		t = t.UTC()
		return s, &t
	}

	return s, nil
}

func parseRelativeDate(s string, now time.Time) *time.Time {
	m := relativeDatePattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return nil
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	var t time.Time
	switch m[2] {
	case "year":
		t = now.AddDate(-amount, 0, 0)
	case "month":
		t = now.AddDate(0, -amount, 0)
	case "week":
		t = now.AddDate(0, 0, -7*amount)
	case "day":
		t = now.AddDate(0, 0, -amount)
	case "hour":
		t = now.Add(-time.Duration(amount) * time.Hour)
	case "minute":
		t = now.Add(-time.Duration(amount) * time.Minute)
	default:
		return nil
	}

	t = t.UTC().Truncate(24 * time.Hour)
	return &t
}
