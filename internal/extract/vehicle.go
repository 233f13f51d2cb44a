package extract

import "strings"

// vehicleKeywords maps one category to its surface forms: category synonyms,
// brand and model names, and phonetic spellings heard in transcribed speech.
type vehicleKeywords struct {
	category string
	keywords []string
}

// vehicleTableText matches typed chat messages, where customers tend to name
// concrete models. Slice order is the tie-break between categories.
var vehicleTableText = []vehicleKeywords{
	{VehicleAutomobile, []string{"otomobil", "sedan", "corolla", "civic", "golf", "araba", "binek"}},
	{VehicleSUV, []string{"suv", "rav4", "crv", "cr-v", "es u vi"}},
	{VehicleCamper, []string{"karavan", "california", "marco polo", "kamper", "marco", "polo"}},
}

// vehicleTableVoice matches transcribed speech, where "SUV" arrives as
// "es u vi" or "esuvi" and model names rarely survive transcription.
var vehicleTableVoice = []vehicleKeywords{
	{VehicleAutomobile, []string{"otomobil", "araba", "sedan", "hatchback", "binek"}},
	{VehicleSUV, []string{"suv", "es u vi", "esuvi", "s u v", "sav", "jeep", "crossover"}},
	{VehicleCamper, []string{"karavan", "kamper", "rv", "motorhome"}},
}

// ExtractVehicleType finds a vehicle category in lowercased chat text.
func ExtractVehicleType(lower string) string {
	return matchVehicleTable(lower, vehicleTableText)
}

// ExtractSpokenVehicleType finds a vehicle category in a lowercased voice
// transcript.
func ExtractSpokenVehicleType(lower string) string {
	return matchVehicleTable(lower, vehicleTableVoice)
}

func matchVehicleTable(lower string, table []vehicleKeywords) string {
	for _, entry := range table {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return ""
}
