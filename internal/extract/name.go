package extract

import (
	"regexp"
	"strings"
)

const turkishLetters = `a-zA-ZçğıöşüÇĞİÖŞÜ`

var (
	// twoLetterWordsRE matches exactly two whitespace-separated alphabetic words.
	twoLetterWordsRE = regexp.MustCompile(`^[` + turkishLetters + `]+\s+[` + turkishLetters + `]+$`)

	// nameCharsRE bounds fallback candidates to letters and spaces only.
	nameCharsRE = regexp.MustCompile(`^[` + turkishLetters + `\s]+$`)

	// nameFallbackPatterns are tried in descending order of confidence:
	// a capitalized two-word sequence, any two-word alphabetic sequence,
	// then cue-word phrases ("isim ...", "ben ...").
	nameFallbackPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-ZÇĞİÖŞÜ][a-zçğıöşü]+\s+[A-ZÇĞİÖŞÜ][a-zçğıöşü]+)`),
		regexp.MustCompile(`([` + turkishLetters + `]+\s+[` + turkishLetters + `]+)`),
		regexp.MustCompile(`isim.*?([` + turkishLetters + `\s]+)`),
		regexp.MustCompile(`ben\s+([` + turkishLetters + `\s]+)`),
	}

	// spokenNameCueRE catches "ben Mehmet Demir" style introductions in
	// longer transcribed utterances.
	spokenNameCueRE = regexp.MustCompile(`(?i)(?:ben|ismim|adım)\s+([` + turkishLetters + `\s]+)`)
)

// ExtractName finds a person's full name in free text, preserving the
// original casing of the input for matching and title-casing the result.
//
// The leading word pair is tried first: if the first two tokens are purely
// alphabetic, at least five characters combined and free of reserved
// vocabulary, they are taken as first plus last name. Otherwise the fallback
// patterns are scanned in order and the first candidate between 3 and 29
// characters passing the same vocabulary exclusion wins.
func ExtractName(text string) string {
	words := strings.Fields(text)
	if len(words) >= 2 {
		pair := words[0] + " " + words[1]
		if len([]rune(pair)) > 4 &&
			twoLetterWordsRE.MatchString(pair) &&
			!containsReservedWord(pair) {
			return titleCase(pair)
		}
	}

	for _, pattern := range nameFallbackPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(match[1])
			if candidate == "" {
				continue
			}
			if n := len([]rune(candidate)); n <= 2 || n >= 30 {
				continue
			}
			if containsReservedWord(candidate) {
				continue
			}
			if !nameCharsRE.MatchString(candidate) {
				continue
			}
			return titleCase(candidate)
		}
	}
	return ""
}

// ExtractSpokenName finds a name in a transcribed voice utterance.
//
// A standalone answer of two or three words, each at least two letters long
// and purely alphabetic, is accepted as-is: callers asked for their name tend
// to reply with exactly that. Longer utterances fall back to introduction cue
// words ("ben ...", "ismim ...", "adım ..."), keeping at most three words.
func ExtractSpokenName(utterance string) string {
	words := strings.Fields(strings.TrimSpace(utterance))

	if len(words) >= 2 && len(words) <= 3 {
		for _, w := range words {
			if len([]rune(w)) < 2 || !alphabeticWord(w) {
				return ""
			}
		}
		return titleCase(strings.Join(words, " "))
	}

	if len(words) > 3 {
		if match := spokenNameCueRE.FindStringSubmatch(utterance); match != nil {
			parts := strings.Fields(strings.TrimSpace(match[1]))
			if len(parts) > 3 {
				parts = parts[:3]
			}
			if len(parts) >= 2 {
				return titleCase(strings.Join(parts, " "))
			}
		}
	}
	return ""
}
