package timeutil

import (
	"fmt"
	"time"
)

// Accepted timestamp layouts, tried in order. Layouts without a zone are
// interpreted in the host's local time, matching the local wall-clock
// semantics of the office-hours rule.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp parses a reservation timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
