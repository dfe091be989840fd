package content

import (
	"strings"
	"time"
)

// LongDateLayout renders dates like "January 5, 2024"
const LongDateLayout = "January 2, 2006"

// dateLayouts are tried in order. WordPress "date" fields carry no zone,
// "date_gmt" fields likewise, and other sources send RFC 3339.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses the date formats CMS APIs emit. Zoneless values are UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date string as "January 5, 2024" in the zone it was
// written in. Unparseable input yields "".
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return t.Format(LongDateLayout)
}
