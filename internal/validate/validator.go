package validate

import (
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Validator checks transcript speakers against an optional attendee
// list supplied by the caller. An empty attendee list disables the
// check; unknown speakers are reported, never rejected.
type Validator struct {
	attendees map[string]bool
}

// NewValidator creates a validator for the given attendee list
func NewValidator(attendees []string) *Validator {
	set := make(map[string]bool, len(attendees))
	for _, a := range attendees {
		set[normalize(a)] = true
	}
	return &Validator{attendees: set}
}

// Result reports which speakers matched the attendee list
type Result struct {
	Known        []string `json:"known,omitempty"`
	Unknown      []string `json:"unknown,omitempty"`
	Unattributed int      `json:"unattributed"` // Utterances with no speaker label
}

// Check validates the speakers of segmented utterances. Speaker order
// is first-appearance order.
func (v *Validator) Check(utterances []model.Utterance) Result {
	var result Result
	seen := make(map[string]bool)

	for _, u := range utterances {
		if u.Speaker == model.UnattributedSpeaker {
			result.Unattributed++
			continue
		}

		key := normalize(u.Speaker)
		if seen[key] {
			continue
		}
		seen[key] = true

		if len(v.attendees) == 0 || v.attendees[key] {
			result.Known = append(result.Known, u.Speaker)
		} else {
			result.Unknown = append(result.Unknown, u.Speaker)
		}
	}
	return result
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
