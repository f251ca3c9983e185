package llm

import (
	"context"
	"fmt"
	"regexp"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Summarizer generates an optional executive summary for an assembled
// document. It runs after assembly and never mutates the document
// sections; its output is attached separately. With StrictIDs enabled,
// references to IDs that do not exist in the document are flagged as
// warnings so hallucinated requirements are visible to the caller.
type Summarizer struct {
	provider Provider
	limiter  *Limiter
	config   Config
}

// NewSummarizer creates a summarizer for the configured provider.
// Returns an error when the provider name is unknown or misconfigured.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{
		provider: provider,
		limiter:  NewLimiter(config.RateLimit, 1),
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces the LLM summary for a document
func (s *Summarizer) GenerateSummary(ctx context.Context, doc *model.Document) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	allowed := documentIDs(doc)

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Document:   doc,
		AllowedIDs: allowed,
		Model:      s.config.Model,
		MaxTokens:  s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	summary := &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		StrictIDs: s.config.StrictIDs,
		SummaryMD: resp.Summary,
	}

	if s.config.StrictIDs {
		summary.Warnings = unknownIDs(resp.CitedIDs, allowed)
	}
	return summary, nil
}

// idRe matches requirement and story identifiers in generated text
var idRe = regexp.MustCompile(`\b(?:FR|NFR|INF|US)\d{3}\b`)

// extractIDs returns the unique IDs referenced in generated text
func extractIDs(text string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, id := range idRe.FindAllString(text, -1) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// documentIDs collects every requirement and story ID in the document
func documentIDs(doc *model.Document) []string {
	var ids []string
	for _, r := range doc.Functional {
		ids = append(ids, r.ID)
	}
	for _, r := range doc.NonFunctional {
		ids = append(ids, r.ID)
	}
	for _, st := range doc.Stories {
		ids = append(ids, st.ID)
	}
	return ids
}

// unknownIDs reports cited IDs that are not in the allowlist
func unknownIDs(cited, allowed []string) []string {
	allowedSet := make(map[string]bool, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = true
	}

	var warnings []string
	for _, id := range cited {
		if !allowedSet[id] {
			warnings = append(warnings, fmt.Sprintf("summary references unknown ID %s", id))
		}
	}
	return warnings
}
