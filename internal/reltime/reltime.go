// Package reltime turns absolute timestamps into coarse "N days ago" labels.
package reltime

import (
	"fmt"
	"time"
)

// Unknown is the label for a missing or unparsable timestamp
const Unknown = "unknown"

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse reads an ISO-8601 timestamp. Values without an offset are taken as UTC.
func Parse(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Label formats ts relative to now
func Label(ts string, now time.Time) string {
	t, ok := Parse(ts)
	if !ok {
		return Unknown
	}
	return LabelTime(t, now)
}

// LabelTime formats t relative to now
func LabelTime(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	days := int(diff / (24 * time.Hour))
	if days == 0 {
		hours := int(diff / time.Hour)
		if hours == 0 {
			minutes := int(diff / time.Minute)
			if minutes <= 1 {
				return "just now"
			}
			return fmt.Sprintf("%d minutes ago", minutes)
		}
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "1 week ago"
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 60:
		return "1 month ago"
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	case days < 730:
		return "1 year ago"
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
