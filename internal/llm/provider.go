package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates an executive summary of the document
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for summary generation
type SummarizeRequest struct {
	// Document is the assembled BRD to summarize
	Document *model.Document

	// AllowedIDs is the strict allowlist of requirement/story IDs the
	// model may reference. References outside this list are flagged.
	AllowedIDs []string

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the generated summary
type SummarizeResponse struct {
	Summary    string   // Markdown summary text
	CitedIDs   []string // IDs the model actually referenced
	Model      string   // Model that generated the response
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider   string // "openai", "ollama", "" (disabled)
	Model      string
	APIKey     string
	BaseURL    string // Custom endpoint (e.g., Ollama)
	Timeout    int     // Seconds
	StrictIDs  bool    // Enforce the ID allowlist
	MaxTokens  int
	RateLimit  float64 // Requests per second across batch workers; <=0 disables
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults with the summarizer disabled
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		StrictIDs: true,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		StrictIDs: mc.StrictIDs,
		MaxTokens: mc.MaxTokens,
		RateLimit: mc.RateLimit,
	}
}

// BuildPrompt constructs the default summarization prompt. The model is
// constrained to the requirement and story IDs actually present in the
// document so the summary stays grounded in extracted content.
func BuildPrompt(doc *model.Document, allowedIDs []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are writing the executive summary for a Business Requirements Document that was extracted automatically from a meeting transcript.

RULES:
1. You may ONLY reference requirement and story IDs from this list:
%s
2. Do not invent requirements, stakeholders, or commitments that are not in the document.
3. If a section is empty, say so plainly instead of padding.
4. Keep the summary under four paragraphs of Markdown.

Document contents:
`, indentIDs(allowedIDs))

	writeSection(&b, "Functional requirements", doc.Functional)
	writeSection(&b, "Non-functional requirements", doc.NonFunctional)

	if len(doc.Stories) > 0 {
		b.WriteString("\nUser stories:\n")
		for _, st := range doc.Stories {
			fmt.Fprintf(&b, "- %s: %s\n", st.ID, st.Text)
		}
	}
	if len(doc.Stakeholders) > 0 {
		fmt.Fprintf(&b, "\nStakeholders: %s\n", strings.Join(doc.Stakeholders, ", "))
	}

	return b.String()
}

func writeSection(b *strings.Builder, label string, reqs []model.Requirement) {
	if len(reqs) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", label)
	for _, r := range reqs {
		fmt.Fprintf(b, "- %s: %s\n", r.ID, r.Text)
	}
}

func indentIDs(ids []string) string {
	if len(ids) == 0 {
		return "   (none)"
	}
	return "   " + strings.Join(ids, ", ")
}
