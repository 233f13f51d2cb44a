package extract

import (
	"strings"
	"unicode"
)

// reservedWords is vocabulary that must never be captured as a person's name:
// brand and model names, vehicle categories, weekday names and domain keywords.
var reservedWords = []string{
	"toyota", "honda", "volkswagen", "mercedes",
	"civic", "corolla", "golf",
	"otomobil", "suv", "karavan",
	"randevu", "telefon", "saat", "yarın",
	"pazartesi", "salı", "çarşamba", "perşembe", "cuma", "cumartesi", "pazar",
}

func containsReservedWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range reservedWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// titleCase capitalizes the first letter of every word and lowercases the
// rest, keeping Turkish letters intact.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		for j := range runes {
			if j == 0 {
				runes[j] = unicode.ToUpper(runes[j])
			} else {
				runes[j] = unicode.ToLower(runes[j])
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// alphabeticWord reports whether every rune of w is a letter, ignoring
// apostrophes that speech transcription sometimes inserts.
func alphabeticWord(w string) bool {
	w = strings.ReplaceAll(w, "'", "")
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
