package synth

import (
	"fmt"
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Synthesizer converts extracted tuples into canonical user stories.
// Only functional requirements with a usable action and object yield a
// story; requirements that fail extraction stay in the document without
// a linked story.
type Synthesizer struct{}

// NewSynthesizer creates a story synthesizer
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize builds a story for the given functional requirement, or
// returns false when the tuple is not usable.
func (s *Synthesizer) Synthesize(req model.Requirement, tuple model.Tuple, seq int) (model.Story, bool) {
	if req.Kind != model.KindFunctional {
		return model.Story{}, false
	}
	if tuple.Degraded || tuple.Action == "" || tuple.Object == "" {
		return model.Story{}, false
	}

	story := model.Story{
		ID:            fmt.Sprintf("US%03d", seq),
		Actor:         tuple.Actor,
		Action:        tuple.Action,
		Object:        tuple.Object,
		Benefit:       tuple.Benefit,
		RequirementID: req.ID,
	}
	story.Text = Sentence(tuple)
	return story, true
}

// Sentence renders the canonical story sentence:
// "As a {actor}, I want to {action} {object}[, so that {benefit}]."
func Sentence(tuple model.Tuple) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As a %s, I want to %s %s", tuple.Actor, tuple.Action, tuple.Object)
	if tuple.Benefit != "" {
		fmt.Fprintf(&b, ", so that %s", tuple.Benefit)
	}
	b.WriteString(".")
	return b.String()
}
