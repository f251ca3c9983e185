package model

// Tuple is the actor/action/object/benefit extraction from a requirement
// sentence. Actor falls back to "user" when no role noun is present;
// Action falls back to a generic placeholder when no verb phrase is found.
// Both fallbacks are deliberate degraded modes, not errors.
type Tuple struct {
	Actor    string `json:"actor"`
	Action   string `json:"action"`
	Object   string `json:"object,omitempty"`
	Benefit  string `json:"benefit,omitempty"`
	Degraded bool   `json:"degraded,omitempty"` // Placeholder action was used
}

// PlaceholderAction is used when no clear verb phrase can be extracted
const PlaceholderAction = "perform the described action"

// DefaultActor is used when no role noun appears in the sentence
const DefaultActor = "user"

// Story is a synthesized user story linked to a functional requirement
type Story struct {
	ID            string `json:"id"` // US001, US002, ...
	Actor         string `json:"actor"`
	Action        string `json:"action"`
	Object        string `json:"object"`
	Benefit       string `json:"benefit,omitempty"`
	Text          string `json:"text"`           // Canonical "As a {actor}, I want to ..." sentence
	RequirementID string `json:"requirement_id"` // Always a functional requirement ID
}

// Criterion is the Given/When/Then acceptance criterion for a story.
// Exactly one criterion exists per story. The And clauses are
// supplemental checks derived from the action family (create, update,
// delete); the core triple never depends on them.
type Criterion struct {
	StoryID string   `json:"story_id"`
	Given   string   `json:"given"`
	When    string   `json:"when"`
	Then    string   `json:"then"`
	And     []string `json:"and,omitempty"`
}
