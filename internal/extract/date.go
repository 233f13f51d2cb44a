package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Explicit numeric date forms, day-first unless the year leads.
var (
	dmyDateRE = regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})[./](\d{4})\b`)
	ymdDateRE = regexp.MustCompile(`\b(\d{4})[./-](\d{1,2})[./-](\d{1,2})\b`)
	dmDateRE  = regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})\b`)

	// Speech transcription drops separators, leaving bare digit runs.
	spokenDMYRE = regexp.MustCompile(`\b(\d{1,2})\s+(\d{1,2})\s+(\d{4})\b`)
	spokenDMRE  = regexp.MustCompile(`\b(\d{1,2})\s+(\d{1,2})\b`)
)

// weekdayNames maps Turkish weekday names to weekdays. Order matters:
// "pazartesi" must be probed before its substring "pazar".
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"pazartesi", time.Monday},
	{"salı", time.Tuesday},
	{"çarşamba", time.Wednesday},
	{"perşembe", time.Thursday},
	{"cuma", time.Friday},
	{"cumartesi", time.Saturday},
	{"pazar", time.Sunday},
}

// ExtractDate resolves a date mention in lowercased text to YYYY-MM-DD.
//
// Explicit numeric dates are tried first and validated as real calendar
// dates; invalid candidates are discarded and scanning continues. When
// spoken is true, bare digit forms produced by speech transcription
// ("8 06 2025", "15/06") are also accepted, defaulting to the current year.
// Failing that, "yarın" resolves to the day after now and a weekday name to
// its next occurrence strictly after now (a full week ahead when now already
// falls on that weekday).
func ExtractDate(lower string, now time.Time, spoken bool) string {
	for _, match := range dmyDateRE.FindAllStringSubmatch(lower, -1) {
		if d := calendarDate(match[3], match[2], match[1]); d != "" {
			return d
		}
	}
	for _, match := range ymdDateRE.FindAllStringSubmatch(lower, -1) {
		if d := calendarDate(match[1], match[2], match[3]); d != "" {
			return d
		}
	}
	if spoken {
		year := strconv.Itoa(now.Year())
		for _, match := range dmDateRE.FindAllStringSubmatch(lower, -1) {
			if d := calendarDate(year, match[2], match[1]); d != "" {
				return d
			}
		}
		for _, match := range spokenDMYRE.FindAllStringSubmatch(lower, -1) {
			if d := calendarDate(match[3], match[2], match[1]); d != "" {
				return d
			}
		}
		for _, match := range spokenDMRE.FindAllStringSubmatch(lower, -1) {
			if d := calendarDate(year, match[2], match[1]); d != "" {
				return d
			}
		}
	}

	if strings.Contains(lower, "yarın") {
		return now.AddDate(0, 0, 1).Format(dateLayout)
	}
	for _, wd := range weekdayNames {
		if strings.Contains(lower, wd.name) {
			return nextWeekday(now, wd.day).Format(dateLayout)
		}
	}
	return ""
}

// calendarDate validates year/month/day strings as a real calendar date and
// formats it, or returns "" for malformed candidates.
func calendarDate(yearStr, monthStr, dayStr string) string {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return ""
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return ""
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return ""
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); a changed day
	// means the candidate was not a real date.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return ""
	}
	return date.Format(dateLayout)
}

// nextWeekday returns the next occurrence of target strictly after now.
func nextWeekday(now time.Time, target time.Weekday) time.Time {
	ahead := (int(target) - int(now.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return now.AddDate(0, 0, ahead)
}
