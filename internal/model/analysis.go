package model

// Analysis summarizes what the pipeline did with a transcript. Degraded
// and ambiguous decisions are surfaced here so callers can show them to
// end users instead of losing them silently.
type Analysis struct {
	Utterances    int      `json:"utterances"`             // Segmented utterance count
	Candidates    int      `json:"candidates"`             // Sentences above the detection threshold
	Functional    int      `json:"functional"`             // Functional requirement count
	NonFunctional int      `json:"non_functional"`         // Non-functional requirement count
	Informational int      `json:"informational"`          // Informational sentence count
	Stories       int      `json:"stories"`                // Synthesized user story count
	Degraded      int      `json:"degraded"`               // Extractions that fell back to placeholders
	Ambiguous     int      `json:"ambiguous"`              // Classifications that matched no category
	Signals       []Signal `json:"signals,omitempty"`      // Diagnostic signals
}

// Signal is a diagnostic marker with transparent supporting data
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies the type of diagnostic signal
type SignalType string

const (
	SignalCandidateYield  SignalType = "candidate_yield"  // Requirement sentences per utterance
	SignalStoryCoverage   SignalType = "story_coverage"   // Stories per functional requirement
	SignalDegraded        SignalType = "degraded"         // Placeholder extraction occurred
	SignalAmbiguous       SignalType = "ambiguous"        // Keyword rules matched no category
	SignalUnknownSpeakers SignalType = "unknown_speakers" // Speakers not in the attendee list
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)
