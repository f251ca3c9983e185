package classify

import (
	"fmt"
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// rule is one category in the classification dispatch table. Rules are
// evaluated in declaration order, which encodes the precedence policy:
// non-functional categories before functional (quality constraints are
// more specific), and subkinds in fixed priority
// Security > Performance > Usability > Reliability > Other.
type rule struct {
	kind     model.Kind
	subkind  model.Subkind
	keywords []string
}

// Classifier assigns each candidate a requirement kind and a stable,
// sequential identifier (FR001, NFR001, INF001).
type Classifier struct {
	rules []rule
}

// NewClassifier creates a classifier with the built-in category tables
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{
				kind:    model.KindNonFunctional,
				subkind: model.SubkindSecurity,
				keywords: []string{
					"encrypted", "encryption", "security", "secure",
					"authentication", "authorization", "access control",
					"role-based", "audit trail", "password", "permission",
				},
			},
			{
				kind:    model.KindNonFunctional,
				subkind: model.SubkindPerformance,
				keywords: []string{
					"response time", "performance", "latency", "throughput",
					"concurrent", "scalable", "scalability", "load time",
				},
			},
			{
				kind:    model.KindNonFunctional,
				subkind: model.SubkindUsability,
				keywords: []string{
					"usability", "user-friendly", "easy to use", "intuitive",
					"accessibility", "user experience",
				},
			},
			{
				kind:    model.KindNonFunctional,
				subkind: model.SubkindReliability,
				keywords: []string{
					"uptime", "availability", "reliability", "reliable",
					"backup", "recovery", "downtime", "fault",
				},
			},
			{
				kind:    model.KindNonFunctional,
				subkind: model.SubkindOther,
				keywords: []string{
					"compliance", "compliant", "regulation", "maintainable",
					"maintainability", "portable", "localization",
				},
			},
			{
				kind: model.KindFunctional,
				keywords: []string{
					"allow users to", "be able to", "allow", "enable",
					"generate", "implement", "create", "add", "update",
					"delete", "remove", "view", "manage", "access", "submit",
					"approve", "track", "monitor", "search", "filter",
					"export", "import", "find", "support", "send", "receive",
					"notify", "display", "upload", "download", "login",
					"log in", "register",
				},
			},
		},
	}
}

// Classify maps candidates to classified requirements in input order.
// Candidates matching no category default to informational and are
// flagged low-confidence rather than dropped.
func (c *Classifier) Classify(candidates []model.Candidate) []model.Requirement {
	counters := make(map[model.Kind]int)
	var requirements []model.Requirement

	for _, cand := range candidates {
		kind, subkind, matched := c.classifyText(cand.Text)

		counters[kind]++
		req := model.Requirement{
			ID:            formatID(kind, counters[kind]),
			Kind:          kind,
			Subkind:       subkind,
			Text:          cand.Text,
			Utterance:     cand.Utterance,
			Score:         cand.Score,
			Status:        model.DefaultStatus,
			Priority:      model.DefaultPriority,
			LowConfidence: !matched,
		}
		requirements = append(requirements, req)
	}
	return requirements
}

// classifyText runs the dispatch table over one sentence. The boolean
// reports whether any category keyword matched.
func (c *Classifier) classifyText(text string) (model.Kind, model.Subkind, bool) {
	lower := strings.ToLower(text)
	words := splitWords(lower)

	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if matchKeyword(lower, words, kw) {
				return r.kind, r.subkind, true
			}
		}
	}
	return model.KindInformational, "", false
}

// formatID renders an identifier in the per-kind namespace, zero-padded
// to three digits.
func formatID(kind model.Kind, n int) string {
	switch kind {
	case model.KindFunctional:
		return fmt.Sprintf("FR%03d", n)
	case model.KindNonFunctional:
		return fmt.Sprintf("NFR%03d", n)
	default:
		return fmt.Sprintf("INF%03d", n)
	}
}

// matchKeyword matches multi-word keywords by substring and single
// words by whole-word comparison.
func matchKeyword(lower string, words []string, keyword string) bool {
	if strings.Contains(keyword, " ") || strings.Contains(keyword, "-") {
		return strings.Contains(lower, keyword)
	}
	for _, w := range words {
		if w == keyword {
			return true
		}
	}
	return false
}

func splitWords(lower string) []string {
	fields := strings.Fields(lower)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := strings.Trim(f, ".,;:!?\"'()[]"); w != "" {
			words = append(words, w)
		}
	}
	return words
}
