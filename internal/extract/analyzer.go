package extract

import (
	"strings"
	"time"
)

// Scope selects how much conversation text the analyzer consumes.
type Scope int

const (
	// ScopeHistory analyzes the accumulated user turns of a conversation.
	ScopeHistory Scope = iota
	// ScopeMessage analyzes only the latest turn in isolation.
	ScopeMessage
)

// MergePolicy controls how freshly extracted fields combine with what the
// session already knows.
type MergePolicy int

const (
	// FillMissing keeps every already-known field and only adds new ones.
	FillMissing MergePolicy = iota
	// OverwriteAll discards known fields and recomputes the whole record,
	// used at finalization so earlier off-topic chatter cannot leak into
	// the stored appointment.
	OverwriteAll
)

// Request is one unit of analyzer work.
type Request struct {
	// Turns holds the user's utterances, oldest first. ScopeMessage only
	// consumes the last one.
	Turns    []string
	Existing Info
	Scope    Scope
	Merge    MergePolicy
	// Spoken marks transcribed speech: the name extractor accepts short
	// standalone answers and the date extractor accepts bare digit runs.
	Spoken bool
}

// Analyzer runs every field extractor over one unit of input text.
// The reference clock is injectable so relative dates stay testable.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer resolving relative dates against the wall
// clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewAnalyzerAt creates an analyzer with a fixed reference clock.
func NewAnalyzerAt(now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{now: now}
}

// Analyze extracts appointment fields from the request's text and returns
// the record after applying the merge policy. Extractors for already-known
// fields are skipped under FillMissing, with one exception: the phone is
// always re-scanned, and the merge keeps the first value found.
//
// Extraction never fails: text with no recognizable field content simply
// yields no new fields.
func (a *Analyzer) Analyze(req Request) Info {
	original := collectTurns(req.Turns, req.Scope)
	lower := strings.ToLower(original)

	existing := req.Existing
	if req.Merge == OverwriteAll {
		existing = Info{}
	}

	var found Info
	if existing.Name == "" {
		if req.Spoken {
			found.Name = ExtractSpokenName(original)
		} else {
			found.Name = ExtractName(original)
		}
	}
	found.Phone = ExtractPhone(lower)
	if existing.VehicleType == "" {
		if req.Spoken {
			found.VehicleType = ExtractSpokenVehicleType(lower)
		} else {
			found.VehicleType = ExtractVehicleType(lower)
		}
	}
	if existing.Date == "" {
		found.Date = ExtractDate(lower, a.now(), req.Spoken)
	}
	if existing.Time == "" {
		found.Time = ExtractTime(lower)
	}

	return existing.Merge(found)
}

// collectTurns keeps the original casing; the name extractor depends on it.
func collectTurns(turns []string, scope Scope) string {
	if len(turns) == 0 {
		return ""
	}
	if scope == ScopeMessage {
		return strings.TrimSpace(turns[len(turns)-1])
	}
	return strings.TrimSpace(strings.Join(turns, " "))
}
