package format

import (
	"fmt"
	"time"
)

// DateStyle selects the month spelling used by Date.
type DateStyle int

const (
	DateShort DateStyle = iota // Jan 2, 2006
	DateLong                   // January 2, 2006
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"Jan 2006",
}

// ParseDate accepts RFC 3339 timestamps, plain dates and "Feb 2026" style
// month stamps.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// Date renders t in US English.
func Date(t time.Time, style DateStyle) string {
	if style == DateLong {
		return t.Format("January 2, 2006")
	}
	return t.Format("Jan 2, 2006")
}

// RelativeTime describes how long before now t was, e.g. "3 days ago".
// Months are 30 days and years 12 months.
func RelativeTime(t, now time.Time) string {
	seconds := int(now.Sub(t) / time.Second)
	if seconds < 60 {
		return "just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return ago(minutes, "minute")
	}
	hours := minutes / 60
	if hours < 24 {
		return ago(hours, "hour")
	}
	days := hours / 24
	if days < 30 {
		return ago(days, "day")
	}
	months := days / 30
	if months < 12 {
		return ago(months, "month")
	}
	return ago(months/12, "year")
}

func ago(n int, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
