package socrata

import "strconv"

// Record is one raw row as returned by a SODA dataset endpoint. Field
// shapes vary per dataset and any field may be absent; accessors
// substitute zero values so callers never branch on presence.
type Record map[string]any

// Str returns the named field as a string, or "" when absent.
func (r Record) Str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Float returns the named field as a float64, or 0 when absent or
// unparseable. SODA serializes numbers as JSON strings in most
// datasets, so both representations are accepted.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int returns the named field as an int, truncating fractional values.
func (r Record) Int(key string) int {
	return int(r.Float(key))
}
