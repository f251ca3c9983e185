package model

import "time"

// FrontMatter is caller-supplied document metadata. The pipeline never
// generates any of these fields; empty fields render with defaults.
type FrontMatter struct {
	Title            string   `json:"title,omitempty" yaml:"title"`
	Project          string   `json:"project,omitempty" yaml:"project"`
	Author           string   `json:"author,omitempty" yaml:"author"`
	Version          string   `json:"version,omitempty" yaml:"version"`
	Date             string   `json:"date,omitempty" yaml:"date"` // YYYY-MM-DD; today when empty
	ExecutiveSummary string   `json:"executive_summary,omitempty" yaml:"executive_summary"`
	Objectives       []string `json:"objectives,omitempty" yaml:"objectives"`
	InScope          []string `json:"in_scope,omitempty" yaml:"in_scope"`
	OutScope         []string `json:"out_scope,omitempty" yaml:"out_scope"`
	Assumptions      []string `json:"assumptions,omitempty" yaml:"assumptions"`
	Dependencies     []string `json:"dependencies,omitempty" yaml:"dependencies"`
}

// Document is the assembled Business Requirements Document. Section order
// is fixed: functional requirements, non-functional requirements, user
// stories, acceptance criteria. The assembler owns this structure; no
// other component mutates it after assembly.
type Document struct {
	Front         FrontMatter   `json:"front_matter"`
	Functional    []Requirement `json:"functional_requirements"`
	NonFunctional []Requirement `json:"non_functional_requirements"`
	Informational []Requirement `json:"informational,omitempty"`
	Stories       []Story       `json:"user_stories"`
	Criteria      []Criterion   `json:"acceptance_criteria"`
	Stakeholders  []string      `json:"stakeholders,omitempty"`
	GeneratedAt   time.Time     `json:"generated_at"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional, never affects the sections above
}

// LLMSummary contains an optional LLM-generated executive summary.
// It is produced after assembly and never feeds back into the pipeline.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	StrictIDs bool     `json:"strict_ids"` // Whether ID grounding enforcement was enabled
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"` // References to IDs not present in the document
}
