package assemble

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Renderer writes assembled documents to JSON and Markdown, and prints
// a short summary to stdout.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the document as indented JSON
func (r *Renderer) RenderJSON(doc *model.Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the document as a Markdown BRD
func (r *Renderer) RenderMarkdown(doc *model.Document, path string) error {
	md := r.Markdown(doc)
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// Markdown renders the full BRD. Section order is fixed: functional
// requirements, non-functional requirements, user stories, acceptance
// criteria.
func (r *Renderer) Markdown(doc *model.Document) string {
	var b strings.Builder

	title := doc.Front.Title
	if title == "" {
		title = "Business Requirements Document (BRD)"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Document Version:** %s  \n", doc.Front.Version)
	fmt.Fprintf(&b, "**Date:** %s  \n", doc.Front.Date)
	if doc.Front.Author != "" {
		fmt.Fprintf(&b, "**Author:** %s  \n", doc.Front.Author)
	}
	if doc.Front.Project != "" {
		fmt.Fprintf(&b, "**Project:** %s  \n", doc.Front.Project)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## 1. Executive Summary\n\n")
	if doc.Front.ExecutiveSummary != "" {
		b.WriteString(doc.Front.ExecutiveSummary + "\n\n")
	} else {
		b.WriteString("This document outlines the business requirements extracted from the meeting transcript.\n\n")
	}

	b.WriteString("## 2. Business Objectives\n\n")
	writeList(&b, doc.Front.Objectives, "[Objectives to be provided]")

	b.WriteString("## 3. Scope\n\n### In Scope\n\n")
	writeList(&b, doc.Front.InScope, "[Scope to be defined]")
	b.WriteString("### Out of Scope\n\n")
	writeList(&b, doc.Front.OutScope, "[Out-of-scope items to be defined]")

	b.WriteString("## 4. Functional Requirements\n\n")
	if len(doc.Functional) == 0 {
		b.WriteString("No functional requirements were identified.\n\n")
	} else {
		b.WriteString("| ID | Requirement | Priority | Status |\n")
		b.WriteString("|----|-------------|----------|--------|\n")
		for _, req := range doc.Functional {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", req.ID, escapeCell(req.Text), req.Priority, req.Status)
		}
		b.WriteString("\n")
	}

	b.WriteString("## 5. Non-Functional Requirements\n\n")
	if len(doc.NonFunctional) == 0 {
		b.WriteString("No non-functional requirements were identified.\n\n")
	} else {
		b.WriteString("| ID | Category | Requirement |\n")
		b.WriteString("|----|----------|-------------|\n")
		for _, req := range doc.NonFunctional {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", req.ID, subkindLabel(req.Subkind), escapeCell(req.Text))
		}
		b.WriteString("\n")
	}

	b.WriteString("## 6. User Stories\n\n")
	if len(doc.Stories) == 0 {
		b.WriteString("No user stories were synthesized.\n\n")
	} else {
		for _, st := range doc.Stories {
			fmt.Fprintf(&b, "**%s** (from %s): %s\n\n", st.ID, st.RequirementID, st.Text)
		}
	}

	b.WriteString("## 7. Acceptance Criteria\n\n")
	if len(doc.Criteria) == 0 {
		b.WriteString("No acceptance criteria were generated.\n\n")
	} else {
		for _, crit := range doc.Criteria {
			fmt.Fprintf(&b, "**For %s:**\n\n", crit.StoryID)
			fmt.Fprintf(&b, "- GIVEN %s\n", crit.Given)
			fmt.Fprintf(&b, "- WHEN %s\n", crit.When)
			fmt.Fprintf(&b, "- THEN %s\n", crit.Then)
			for _, and := range crit.And {
				fmt.Fprintf(&b, "- AND %s\n", and)
			}
			b.WriteString("\n")
		}
	}

	if len(doc.Stakeholders) > 0 {
		b.WriteString("## 8. Stakeholders\n\n")
		writeList(&b, doc.Stakeholders, "")
	}

	if len(doc.Front.Assumptions) > 0 || len(doc.Front.Dependencies) > 0 {
		b.WriteString("## 9. Assumptions and Dependencies\n\n### Assumptions\n\n")
		writeList(&b, doc.Front.Assumptions, "[None recorded]")
		b.WriteString("### Dependencies\n\n")
		writeList(&b, doc.Front.Dependencies, "[None recorded]")
	}

	if doc.LLM != nil && doc.LLM.Enabled && doc.LLM.SummaryMD != "" {
		b.WriteString("## Appendix: Generated Summary\n\n")
		b.WriteString(doc.LLM.SummaryMD + "\n\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\n*Generated by reqscribe on %s.*\n", doc.GeneratedAt.Format("2006-01-02"))
	}

	return b.String()
}

// RenderSummary prints a short run summary to stdout
func (r *Renderer) RenderSummary(doc *model.Document, analysis model.Analysis) {
	fmt.Printf("\nRequirements extracted:\n")
	fmt.Printf("  Functional:     %d\n", len(doc.Functional))
	fmt.Printf("  Non-functional: %d\n", len(doc.NonFunctional))
	fmt.Printf("  User stories:   %d\n", len(doc.Stories))
	fmt.Printf("  Criteria:       %d\n", len(doc.Criteria))

	for _, sig := range analysis.Signals {
		if sig.Severity == model.SeverityWarning || sig.Severity == model.SeverityCritical {
			fmt.Printf("  ! %s\n", sig.Description)
		}
	}
}

// idRe matches requirement and story identifiers in rendered output
var idRe = regexp.MustCompile(`\b(?:FR|NFR|US)\d{3}\b`)

// ExtractIDs recovers the unique requirement and story IDs from a
// rendered document, in first-appearance order.
func ExtractIDs(markdown string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, id := range idRe.FindAllString(markdown, -1) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func writeList(b *strings.Builder, items []string, fallback string) {
	if len(items) == 0 {
		if fallback != "" {
			b.WriteString(fallback + "\n\n")
		}
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func escapeCell(text string) string {
	return strings.ReplaceAll(text, "|", "\\|")
}

func subkindLabel(sub model.Subkind) string {
	if sub == "" {
		return "Other"
	}
	return strings.ToUpper(string(sub)[:1]) + string(sub)[1:]
}
