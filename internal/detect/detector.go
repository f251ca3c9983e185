package detect

import (
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// DefaultThreshold is the minimum score for a sentence to become a
// requirement candidate. Scores at the threshold are kept: downstream
// classification can still mark a false positive as informational, so
// the detector favors recall over precision.
const DefaultThreshold = 0.5

// Cue weights. A modal/obligation phrase alone is enough to reach the
// default threshold; supporting cues only raise confidence.
const (
	weightModal      = 0.5
	weightImperative = 0.4
	weightDomainNoun = 0.25
)

// Detector scores sentences for requirement-bearing likelihood
type Detector struct {
	threshold   float64
	modals      []string
	imperatives map[string]bool
	domainNouns map[string]bool
}

// NewDetector creates a detector with the default threshold
func NewDetector() *Detector {
	return NewDetectorWithThreshold(DefaultThreshold)
}

// NewDetectorWithThreshold creates a detector with an explicit threshold
func NewDetectorWithThreshold(threshold float64) *Detector {
	return &Detector{
		threshold: threshold,
		// Multi-word obligation phrases first so the heuristic label
		// records the most specific cue that fired.
		modals: []string{
			"we need to", "the system should", "should be able to",
			"must be able to", "need to be able to", "requirement is to",
			"we want to", "it should", "must have", "looking for",
			"have to", "needs to", "need to", "want to",
			"should", "must", "shall", "require",
		},
		imperatives: wordSet(
			"create", "add", "build", "implement", "make", "ensure",
			"provide", "support", "generate", "update", "delete",
			"remove", "view", "manage", "access", "submit", "approve",
			"track", "monitor", "search", "filter", "export", "import",
			"find", "enable", "allow", "send", "display",
		),
		domainNouns: wordSet(
			"system", "feature", "user", "users", "report", "reports",
			"data", "account", "accounts", "dashboard", "page",
			"application", "database", "notification", "interface",
		),
	}
}

// Detect scores each utterance and returns the sentences at or above
// the threshold, deduplicated case-insensitively in input order.
func (d *Detector) Detect(utterances []model.Utterance) []model.Candidate {
	var candidates []model.Candidate
	seen := make(map[string]bool)

	for i, u := range utterances {
		score, heuristic := d.Score(u.Text)
		if score < d.threshold {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(u.Text))
		if seen[key] {
			continue
		}
		seen[key] = true

		candidates = append(candidates, model.Candidate{
			Text:      strings.TrimSpace(u.Text),
			Score:     score,
			Heuristic: heuristic,
			Utterance: i,
		})
	}
	return candidates
}

// Score computes the requirement likelihood for a single sentence and
// the heuristic label of the first cue that fired.
func (d *Detector) Score(text string) (float64, string) {
	lower := strings.ToLower(text)
	words := tokenize(lower)
	if len(words) == 0 {
		return 0, ""
	}

	score := 0.0
	heuristic := ""

	for _, modal := range d.modals {
		if containsPhrase(lower, words, modal) {
			score += weightModal
			heuristic = "modal:" + modal
			break
		}
	}

	if d.imperatives[words[0]] {
		score += weightImperative
		if heuristic == "" {
			heuristic = "imperative:" + words[0]
		}
	}

	for _, w := range words {
		if d.domainNouns[w] {
			score += weightDomainNoun
			if heuristic == "" {
				heuristic = "domain:" + w
			}
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score, heuristic
}

// tokenize lowers and strips punctuation from sentence words
func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, ".,;:!?\"'()[]")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// containsPhrase matches multi-word phrases by substring and single
// words by whole-word comparison, so "must" does not fire on "mustard".
func containsPhrase(lower string, words []string, phrase string) bool {
	if strings.Contains(phrase, " ") {
		return strings.Contains(lower, phrase)
	}
	for _, w := range words {
		if w == phrase {
			return true
		}
	}
	return false
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
