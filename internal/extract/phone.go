package extract

import (
	"regexp"
	"strings"
)

// phonePatterns are tried strictly in priority order; the first candidate
// passing validatePhone short-circuits the rest. Grouped formats (3-3-4 and
// 3-3-2-2 digit clusters) come last so an uninterrupted digit run always wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b05\d{9}\b`),
	regexp.MustCompile(`\b5\d{9}\b`),
	regexp.MustCompile(`\b0\d{10}\b`),
	regexp.MustCompile(`\d{11}`),
	regexp.MustCompile(`\d{10}`),
	regexp.MustCompile(`telefon\D*?(\d{10,11})`),
	regexp.MustCompile(`numara\D*?(\d{10,11})`),
	regexp.MustCompile(`(\d{3})\s*(\d{3})\s*(\d{4})`),
	regexp.MustCompile(`(\d{3})\s*(\d{3})\s*(\d{2})\s*(\d{2})`),
}

var nonDigitRE = regexp.MustCompile(`\D`)

// ExtractPhone finds a Turkish mobile number in text and normalizes it to
// digits only. Returns "" when no candidate passes validation.
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := match[0]
			if len(match) > 1 {
				// Grouped or cue-prefixed pattern: join the digit clusters.
				candidate = strings.Join(match[1:], "")
			}
			digits := nonDigitRE.ReplaceAllString(candidate, "")
			if validatePhone(digits) {
				return digits
			}
		}
	}
	return ""
}

// validatePhone enforces the mobile-number shape: 11 digits starting "05" or
// 10 digits starting "5".
func validatePhone(digits string) bool {
	switch len(digits) {
	case 11:
		return strings.HasPrefix(digits, "05")
	case 10:
		return strings.HasPrefix(digits, "5")
	default:
		return false
	}
}
