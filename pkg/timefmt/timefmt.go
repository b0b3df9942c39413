// Package timefmt formats episode durations and publish dates for display.
package timefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
)

// PublishedAtLayout renders "d MMM yy", e.g. "10 mai 21".
const PublishedAtLayout = "2 Jan 06"

// FormatDuration renders a number of seconds as HH:MM:SS.
// Hours are not capped, so 360000 becomes "100:00:00".
// Negative values are rendered as "-" followed by the absolute value.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// ParsePublishedAt parses an ISO-8601 timestamp. Timestamps without an
// offset are read in loc.
func ParsePublishedAt(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if loc == nil {
		loc = time.Local
	}

	t, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", raw, err)
	}
	return t, nil
}

// FormatPublishedAt renders t in loc using pt-BR abbreviated month names.
func FormatPublishedAt(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return strings.ToLower(monday.Format(t.In(loc), PublishedAtLayout, monday.LocalePtBR))
}
