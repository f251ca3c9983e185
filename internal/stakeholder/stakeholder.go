package stakeholder

import (
	"regexp"
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// rolePatterns match role mentions in transcript text. Optional leading
// word captures qualified roles like "project manager".
var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\w+\s+)?manager\b`),
	regexp.MustCompile(`(?i)\b(\w+\s+)?director\b`),
	regexp.MustCompile(`(?i)\b(\w+\s+)?lead\b`),
	regexp.MustCompile(`(?i)\b(\w+\s+)?team\b`),
	regexp.MustCompile(`(?i)\bproduct owner\b`),
	regexp.MustCompile(`(?i)\bbusiness analyst\b`),
	regexp.MustCompile(`(?i)\bdeveloper\b`),
	regexp.MustCompile(`(?i)\btester\b`),
}

// Extract returns the stakeholders mentioned in or speaking during a
// transcript: speaker labels plus role mentions in the utterance text.
// Results are title-cased, deduplicated, and ordered by first
// appearance.
func Extract(utterances []model.Utterance) []string {
	seen := make(map[string]bool)
	var stakeholders []string

	add := func(name string) {
		name = titleCase(strings.TrimSpace(name))
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			stakeholders = append(stakeholders, name)
		}
	}

	for _, u := range utterances {
		if u.Speaker != model.UnattributedSpeaker {
			add(u.Speaker)
		}
	}
	for _, u := range utterances {
		for _, re := range rolePatterns {
			for _, m := range re.FindAllString(u.Text, -1) {
				add(m)
			}
		}
	}

	return stakeholders
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
