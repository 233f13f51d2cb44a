package voice

import (
	"encoding/xml"
	"fmt"
)

const (
	ttsVoice    = "Polly.Filiz"
	ttsLanguage = "tr-TR"
)

// Say speaks text to the caller.
type Say struct {
	XMLName  xml.Name `xml:"Say"`
	Voice    string   `xml:"voice,attr"`
	Language string   `xml:"language,attr"`
	Text     string   `xml:",chardata"`
}

// Gather listens for the caller's speech and posts the transcription back
// to the webhook.
type Gather struct {
	XMLName       xml.Name `xml:"Gather"`
	Input         string   `xml:"input,attr"`
	Timeout       int      `xml:"timeout,attr"`
	SpeechTimeout int      `xml:"speechTimeout,attr"`
	Language      string   `xml:"language,attr"`
	Action        string   `xml:"action,attr"`
	Method        string   `xml:"method,attr"`
	Say           *Say
}

// TwiML is a Twilio voice response document. Verbs marshal in order, each
// under its own element name.
type TwiML struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any
}

func say(text string) *Say {
	return &Say{Voice: ttsVoice, Language: ttsLanguage, Text: text}
}

// speakAndHangup renders a final line with no further listening.
func speakAndHangup(text string) *TwiML {
	return &TwiML{Verbs: []any{say(text)}}
}

// speakAndListen renders a line followed by a speech gather that posts the
// next utterance to action, and a farewell spoken when the caller stays
// silent through the gather.
func speakAndListen(text, action string) *TwiML {
	return &TwiML{Verbs: []any{
		say(text),
		&Gather{
			Input:         "speech",
			Timeout:       8,
			SpeechTimeout: 4,
			Language:      ttsLanguage,
			Action:        action,
			Method:        "POST",
			Say:           say("Dinliyorum..."),
		},
		say("Sizi duymadım. Aramayı sonlandırıyorum. İyi günler!"),
	}}
}

// Render marshals the document with the XML declaration Twilio expects.
func (t *TwiML) Render() ([]byte, error) {
	body, err := xml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("voice: marshal twiml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
