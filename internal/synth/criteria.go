package synth

import (
	"fmt"

	"github.com/reqscribe/reqscribe/internal/model"
)

// CriteriaGenerator derives one Given/When/Then criterion per story.
// Generation is fully deterministic: the same tuple always produces the
// same criterion.
type CriteriaGenerator struct{}

// NewCriteriaGenerator creates a criteria generator
func NewCriteriaGenerator() *CriteriaGenerator {
	return &CriteriaGenerator{}
}

// Action families that get supplemental And clauses
var (
	creationVerbs = map[string]bool{"create": true, "add": true, "submit": true, "register": true, "upload": true}
	mutationVerbs = map[string]bool{"update": true, "edit": true, "modify": true, "assign": true}
	deletionVerbs = map[string]bool{"delete": true, "remove": true, "archive": true}
)

// Generate builds the acceptance criterion for a story
func (g *CriteriaGenerator) Generate(story model.Story) model.Criterion {
	crit := model.Criterion{
		StoryID: story.ID,
		Given:   fmt.Sprintf("the %s feature is available", story.Action),
		When:    fmt.Sprintf("the %s attempts to %s %s", story.Actor, story.Action, story.Object),
		Then:    fmt.Sprintf("the system should successfully %s %s", story.Action, story.Object),
	}

	switch {
	case creationVerbs[story.Action]:
		crit.And = []string{
			"all required fields must be validated",
			"a success message should be displayed",
		}
	case mutationVerbs[story.Action]:
		crit.And = []string{
			"changes should be persisted",
			"the audit trail should be updated",
		}
	case deletionVerbs[story.Action]:
		crit.And = []string{
			"a confirmation dialog should be shown",
			"related data should be handled appropriately",
		}
	}

	return crit
}
