package assemble

import (
	"time"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Assembler aggregates classified requirements, stories, and criteria
// into the final document. Pure aggregation: section order is fixed,
// record order inside each section follows ID order, and nothing is
// transformed.
type Assembler struct{}

// NewAssembler creates a document assembler
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the document from pipeline output and caller-supplied
// front matter. Empty inputs produce an empty but valid document.
func (a *Assembler) Assemble(front model.FrontMatter, requirements []model.Requirement, stories []model.Story, criteria []model.Criterion, stakeholders []string) *model.Document {
	doc := &model.Document{
		Front:        front,
		Stories:      stories,
		Criteria:     criteria,
		Stakeholders: stakeholders,
		GeneratedAt:  time.Now().UTC(),
	}

	if doc.Front.Date == "" {
		doc.Front.Date = doc.GeneratedAt.Format("2006-01-02")
	}
	if doc.Front.Version == "" {
		doc.Front.Version = "1.0"
	}

	for _, r := range requirements {
		switch r.Kind {
		case model.KindFunctional:
			doc.Functional = append(doc.Functional, r)
		case model.KindNonFunctional:
			doc.NonFunctional = append(doc.NonFunctional, r)
		default:
			doc.Informational = append(doc.Informational, r)
		}
	}
	return doc
}
