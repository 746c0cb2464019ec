package shared

import (
	"fmt"
	"time"
)

var dateFormats = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses request dates, accepting RFC3339 timestamps or plain
// YYYY-MM-DD. An empty value parses to the zero time so callers can treat
// optional date fields as unset.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
