package model

// Candidate is a sentence that scored at or above the detection threshold
type Candidate struct {
	Text      string  `json:"text"`                // The sentence text
	Score     float64 `json:"score"`               // Requirement likelihood in [0,1]
	Heuristic string  `json:"heuristic,omitempty"` // Which detection cue matched (e.g., "modal:must")
	Utterance int     `json:"utterance"`           // Index into the segmented utterance list
}

// Kind categorizes the nature of a requirement
type Kind string

const (
	KindFunctional    Kind = "functional"     // A capability the system must provide
	KindNonFunctional Kind = "non_functional" // A quality constraint
	KindInformational Kind = "informational"  // Context that is not a requirement
)

// Subkind refines non-functional requirements by quality attribute
type Subkind string

const (
	SubkindSecurity    Subkind = "security"
	SubkindPerformance Subkind = "performance"
	SubkindUsability   Subkind = "usability"
	SubkindReliability Subkind = "reliability"
	SubkindOther       Subkind = "other"
)

// Default workflow metadata assigned to newly classified requirements
const (
	DefaultStatus   = "Draft"
	DefaultPriority = "Medium"
)

// Requirement is a classified requirement with a stable identifier.
// IDs are sequential per kind (FR001, NFR001, INF001) and deterministic
// for a given input transcript.
type Requirement struct {
	ID            string  `json:"id"`
	Kind          Kind    `json:"kind"`
	Subkind       Subkind `json:"subkind,omitempty"` // Set only for non-functional requirements
	Text          string  `json:"text"`
	Utterance     int     `json:"utterance"`            // Source utterance index
	Score         float64 `json:"score"`                // Detection score carried from the candidate
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	LowConfidence bool    `json:"low_confidence,omitempty"` // No category keyword matched
}
