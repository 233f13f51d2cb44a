package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

// Business hours for showroom visits; hours outside this window are not
// valid appointment times.
const (
	OpeningHour = 8
	ClosingHour = 18
)

// timePattern pairs a regex with a parser turning its submatches into an
// hour and minute candidate.
type timePattern struct {
	re    *regexp.Regexp
	parse func(match []string) (hour, minute int, ok bool)
}

// timePatterns are tried in order; within a pattern every match is tried and
// candidates outside business hours are discarded so the next pattern gets
// its chance.
var timePatterns = []timePattern{
	{
		// 14:30, 14.30, 14,30
		re: regexp.MustCompile(`\b(\d{1,2})[:.,](\d{2})\b`),
		parse: func(m []string) (int, int, bool) {
			return atoiPair(m[1], m[2])
		},
	},
	{
		// Bare 4-digit run from transcribed speech: 1430
		re: regexp.MustCompile(`\b(\d{4})\b`),
		parse: func(m []string) (int, int, bool) {
			return atoiPair(m[1][:2], m[1][2:])
		},
	},
	{
		// saat 14
		re: regexp.MustCompile(`saat\s*(\d{1,2})\b`),
		parse: func(m []string) (int, int, bool) {
			return atoiPair(m[1], "0")
		},
	},
	{
		// 14 saatte
		re: regexp.MustCompile(`\b(\d{1,2})\s*saat`),
		parse: func(m []string) (int, int, bool) {
			return atoiPair(m[1], "0")
		},
	},
	{
		// 14 buçuk = half past 14
		re: regexp.MustCompile(`\b(\d{1,2})\s*buçuk`),
		parse: func(m []string) (int, int, bool) {
			return atoiPair(m[1], "30")
		},
	},
}

// ExtractTime finds a time of day in lowercased text and normalizes it to
// HH:MM. Candidates outside [08:00, 18:59] are rejected.
func ExtractTime(lower string) string {
	for _, pattern := range timePatterns {
		for _, match := range pattern.re.FindAllStringSubmatch(lower, -1) {
			hour, minute, ok := pattern.parse(match)
			if !ok {
				continue
			}
			if hour < OpeningHour || hour > ClosingHour || minute < 0 || minute > 59 {
				continue
			}
			return fmt.Sprintf("%02d:%02d", hour, minute)
		}
	}
	return ""
}

func atoiPair(hourStr, minuteStr string) (int, int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
