package report

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2023-06-15T10:30:00.000", true, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"2023-06-15T10:30:00", true, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"2023-06-15", true, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"06/15/2023", true, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
		{"2023-13-45", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := parseDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.True(t, got.Equal(tt.want), tt.in)
		}
	}
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, "2023", yearOf("2023-06-15T00:00:00.000"))
	assert.Equal(t, "2023", yearOf("2023"))
	assert.Equal(t, "", yearOf("23"))
	assert.Equal(t, "", yearOf(""))
	assert.Equal(t, "", yearOf("ABCD-01-01"))
}

func TestFirstOf(t *testing.T) {
	assert.Equal(t, "a", firstOf("a", "b"))
	assert.Equal(t, "b", firstOf("", "b"))
	assert.Equal(t, "", firstOf("", ""))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1K"},
		{12600, "$13K"},
		{999999, "$1000K"},
		{1000000, "$1.0M"},
		{2500000, "$2.5M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(tt.in), "%v", tt.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("", 3))

	// Cuts land on rune boundaries, never mid-sequence.
	assert.Equal(t, "h", truncate("héllo", 2))
	assert.Equal(t, "hé", truncate("héllo", 3))
	assert.True(t, utf8.ValidString(truncate("ACCÈS BÂTIMENT", 7)))
}

func TestStableID(t *testing.T) {
	a := stableID("HPD", "2023-01-01", "no heat")
	b := stableID("HPD", "2023-01-01", "no heat")
	c := stableID("DOB", "2023-01-01", "no heat")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "natural", idOr("natural", "HPD", "x", "y"))
	assert.Equal(t, a, idOr("", "HPD", "2023-01-01", "no heat"))
}
