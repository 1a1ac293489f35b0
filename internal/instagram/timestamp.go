package instagram

import (
	"regexp"
	"strings"
	"time"
)

var offsetSuffix = regexp.MustCompile(`(Z|[+-]\d{2}:?\d{2})$`)

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseTimestamp drops any UTC offset and reads the wall clock as local time.
// Unparseable input yields the fallback.
func parseTimestamp(raw string, fallback time.Time) time.Time {
	s := offsetSuffix.ReplaceAllString(strings.TrimSpace(raw), "")
	if s == "" {
		return fallback
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return fallback
}
