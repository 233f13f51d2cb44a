package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "leading first and last name",
			text: "Ahmet Yılmaz",
			want: "Ahmet Yılmaz",
		},
		{
			name: "leading pair lowercased gets title-cased",
			text: "mehmet demir randevu almak istiyorum",
			want: "Mehmet Demir",
		},
		{
			name: "vehicle keyword is not a name",
			text: "suv almak istiyorum",
			want: "",
		},
		{
			name: "brand name is not a name",
			text: "Toyota Corolla bakıyorum",
			want: "",
		},
		{
			name: "weekday is not a name",
			text: "pazartesi uygun",
			want: "",
		},
		{
			name: "capitalized pair later in the sentence",
			text: "merhaba, Ayşe Kaya için randevu",
			want: "Ayşe Kaya",
		},
		{
			name: "cue word ben",
			text: "ben zeynep arslan",
			want: "Ben Zeynep",
		},
		{
			name: "single word is not enough",
			text: "Ahmet",
			want: "",
		},
		{
			name: "digits disqualify the pair",
			text: "05321234567 numaram",
			want: "",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractSpokenName(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{
			name:      "two word answer",
			utterance: "Mehmet Demir",
			want:      "Mehmet Demir",
		},
		{
			name:      "three word answer",
			utterance: "ali veli kaya",
			want:      "Ali Veli Kaya",
		},
		{
			name:      "introduction cue in a longer sentence",
			utterance: "merhaba iyi günler ben mehmet demir",
			want:      "Mehmet Demir",
		},
		{
			name:      "single word rejected",
			utterance: "mehmet",
			want:      "",
		},
		{
			name:      "digits rejected",
			utterance: "saat 14",
			want:      "",
		},
		{
			name:      "one-letter token rejected",
			utterance: "a demir",
			want:      "",
		},
		{
			name:      "empty input",
			utterance: "   ",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSpokenName(tt.utterance))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Mehmet Demir", titleCase("MEHMET DEMİR"))
	assert.Equal(t, "Ayşe Kaya", titleCase("ayşe kaya"))
	assert.Equal(t, "", titleCase("  "))
}
