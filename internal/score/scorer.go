package score

import (
	"fmt"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Scorer derives the analysis summary and diagnostic signals for a
// completed pipeline run. Signals carry their inputs and formulas so
// every number in the summary is explainable.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate builds the analysis for one transcript run
func (s *Scorer) Calculate(utterances []model.Utterance, candidates []model.Candidate, requirements []model.Requirement, stories []model.Story, degraded int, unknownSpeakers []string) model.Analysis {
	analysis := model.Analysis{
		Utterances: len(utterances),
		Candidates: len(candidates),
		Stories:    len(stories),
		Degraded:   degraded,
	}

	for _, r := range requirements {
		switch r.Kind {
		case model.KindFunctional:
			analysis.Functional++
		case model.KindNonFunctional:
			analysis.NonFunctional++
		default:
			analysis.Informational++
		}
		if r.LowConfidence {
			analysis.Ambiguous++
		}
	}

	analysis.Signals = append(analysis.Signals, s.candidateYield(len(utterances), len(candidates)))
	analysis.Signals = append(analysis.Signals, s.storyCoverage(analysis.Functional, len(stories)))

	if degraded > 0 {
		analysis.Signals = append(analysis.Signals, model.Signal{
			Type:        model.SignalDegraded,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("%d requirement(s) fell back to a placeholder action", degraded),
			Data:        map[string]interface{}{"degraded": degraded},
		})
	}

	if analysis.Ambiguous > 0 {
		analysis.Signals = append(analysis.Signals, model.Signal{
			Type:        model.SignalAmbiguous,
			Severity:    model.SeverityInfo,
			Description: fmt.Sprintf("%d sentence(s) matched no category and defaulted to informational", analysis.Ambiguous),
			Data:        map[string]interface{}{"ambiguous": analysis.Ambiguous},
		})
	}

	if len(unknownSpeakers) > 0 {
		analysis.Signals = append(analysis.Signals, model.Signal{
			Type:        model.SignalUnknownSpeakers,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("%d speaker(s) not on the attendee list", len(unknownSpeakers)),
			Data:        map[string]interface{}{"speakers": unknownSpeakers},
		})
	}

	return analysis
}

// candidateYield reports how much of the transcript carried requirements
func (s *Scorer) candidateYield(utterances, candidates int) model.Signal {
	if utterances == 0 {
		return model.Signal{
			Type:        model.SignalCandidateYield,
			Severity:    model.SeverityCritical,
			Description: "Empty or unsegmentable transcript",
			Data:        map[string]interface{}{"utterances": 0, "candidates": 0},
		}
	}

	ratio := float64(candidates) / float64(utterances)
	severity := model.SeverityInfo
	if candidates == 0 {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalCandidateYield,
		Severity:    severity,
		Description: fmt.Sprintf("Requirement sentences per utterance: %.2f", ratio),
		Data: map[string]interface{}{
			"utterances": utterances,
			"candidates": candidates,
			"ratio":      ratio,
			"formula":    "candidates / utterances",
		},
	}
}

// storyCoverage reports how many functional requirements produced stories
func (s *Scorer) storyCoverage(functional, stories int) model.Signal {
	if functional == 0 {
		return model.Signal{
			Type:        model.SignalStoryCoverage,
			Severity:    model.SeverityInfo,
			Description: "No functional requirements detected",
			Data:        map[string]interface{}{"functional": 0, "stories": 0},
		}
	}

	ratio := float64(stories) / float64(functional)
	severity := model.SeverityInfo
	if ratio < 0.5 {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalStoryCoverage,
		Severity:    severity,
		Description: fmt.Sprintf("Story coverage: %d/%d functional requirements", stories, functional),
		Data: map[string]interface{}{
			"functional": functional,
			"stories":    stories,
			"ratio":      ratio,
			"formula":    "stories / functional",
		},
	}
}
