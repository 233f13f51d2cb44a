package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceWednesday is the fixed "now" used by relative-date tests.
var referenceWednesday = time.Date(2025, time.June, 11, 10, 0, 0, 0, time.UTC)

func TestExtractDateRelative(t *testing.T) {
	require.Equal(t, time.Wednesday, referenceWednesday.Weekday())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"tomorrow", "yarın gelebilirim", "2025-06-12"},
		{"next monday", "pazartesi uygun", "2025-06-16"},
		{"friday this week", "cuma günü", "2025-06-13"},
		{"pazar does not shadow pazartesi", "pazartesi olsun", "2025-06-16"},
		{"sunday", "pazar günü", "2025-06-15"},
		{"no date", "merhaba", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDate(tt.text, referenceWednesday, false))
		})
	}
}

func TestExtractDateSameWeekdayAdvancesFullWeek(t *testing.T) {
	monday := time.Date(2025, time.June, 9, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	assert.Equal(t, "2025-06-16", ExtractDate("pazartesi", monday, false))
}

func TestExtractDateExplicit(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		spoken bool
		want   string
	}{
		{"day month year with slashes", "15/06/2025 uygun mu", false, "2025-06-15"},
		{"day month year with dots", "15.06.2025", false, "2025-06-15"},
		{"year first", "2025-06-15 olsun", false, "2025-06-15"},
		{"invalid calendar date skipped", "31/02/2025", false, ""},
		{"explicit beats weekday", "15/08/2025 cuma", false, "2025-08-15"},
		{"spoken day month", "8 06 diyorum", true, "2025-06-08"},
		{"spoken day month year", "8 06 2026 diyorum", true, "2026-06-08"},
		{"day month without year", "15/06 olur", true, "2025-06-15"},
		{"bare forms ignored for typed text", "8 06 diyorum", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDate(tt.text, referenceWednesday, tt.spoken))
		})
	}
}

func TestCalendarDate(t *testing.T) {
	assert.Equal(t, "2025-02-28", calendarDate("2025", "2", "28"))
	assert.Equal(t, "", calendarDate("2025", "2", "30"))
	assert.Equal(t, "", calendarDate("2025", "13", "1"))
	assert.Equal(t, "", calendarDate("abc", "1", "1"))
}
