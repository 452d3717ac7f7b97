package report

import "time"

// sodaLayouts covers the timestamp shapes seen across the upstream
// datasets: floating timestamps with and without millis, bare dates,
// and the legacy US format some DOB extracts still use.
var sodaLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// parseDate parses an upstream date string. The second return is false
// for empty or unparseable input; callers drop such records from
// date-ordered views but keep them in totals.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range sodaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// yearOf returns the four-digit year prefix of a date string, or ""
// when the string is too short or not a plausible year.
func yearOf(s string) string {
	if len(s) < 4 {
		return ""
	}
	y := s[:4]
	for i := 0; i < 4; i++ {
		if y[i] < '0' || y[i] > '9' {
			return ""
		}
	}
	return y
}

// firstOf returns the first non-empty value, used to pick a primary
// date field with a fallback.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
