package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/reqscribe/reqscribe/internal/model"
)

const meetingTranscript = `Alice: Good morning everyone, thanks for joining the requirements session.
Bob: Managers must be able to find specific user accounts quickly using various filters.
Alice: The system should allow users to update their profile so that their information stays current.
Carol: All data must be encrypted at rest and in transit.
Bob: Response time should stay under two seconds for the search page.
Alice: The budget discussion moved to next quarter.
`

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func TestAnalyze_FullTranscript(t *testing.T) {
	p := NewPipeline(testConfig())

	result, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	doc := result.Document
	if len(doc.Functional) != 2 {
		t.Fatalf("Functional = %d, want 2: %+v", len(doc.Functional), doc.Functional)
	}
	if doc.Functional[0].ID != "FR001" || doc.Functional[1].ID != "FR002" {
		t.Errorf("Functional IDs = %s, %s", doc.Functional[0].ID, doc.Functional[1].ID)
	}
	if len(doc.NonFunctional) != 2 {
		t.Fatalf("NonFunctional = %d, want 2: %+v", len(doc.NonFunctional), doc.NonFunctional)
	}
	if doc.NonFunctional[0].Subkind != model.SubkindSecurity {
		t.Errorf("NFR001 subkind = %q, want security", doc.NonFunctional[0].Subkind)
	}
	if doc.NonFunctional[1].Subkind != model.SubkindPerformance {
		t.Errorf("NFR002 subkind = %q, want performance", doc.NonFunctional[1].Subkind)
	}
}

func TestAnalyze_StoriesLinkToRequirements(t *testing.T) {
	p := NewPipeline(testConfig())

	result, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	doc := result.Document
	if len(doc.Stories) == 0 {
		t.Fatalf("Expected user stories")
	}
	if len(doc.Stories) > len(doc.Functional) {
		t.Errorf("More stories (%d) than functional requirements (%d)", len(doc.Stories), len(doc.Functional))
	}

	frIDs := make(map[string]bool)
	for _, r := range doc.Functional {
		frIDs[r.ID] = true
	}
	for _, st := range doc.Stories {
		if !frIDs[st.RequirementID] {
			t.Errorf("Story %s references unknown requirement %s", st.ID, st.RequirementID)
		}
	}

	if len(doc.Criteria) != len(doc.Stories) {
		t.Errorf("Criteria = %d, want one per story (%d)", len(doc.Criteria), len(doc.Stories))
	}
	for i, crit := range doc.Criteria {
		if crit.StoryID != doc.Stories[i].ID {
			t.Errorf("Criterion %d linked to %s, want %s", i, crit.StoryID, doc.Stories[i].ID)
		}
	}
}

func TestAnalyze_StoryContent(t *testing.T) {
	p := NewPipeline(testConfig())

	result, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var found bool
	for _, st := range result.Document.Stories {
		if st.Actor == "manager" && st.Action == "find" {
			found = true
			if st.Object != "specific user accounts" {
				t.Errorf("Object = %q, want specific user accounts", st.Object)
			}
		}
	}
	if !found {
		t.Errorf("Missing manager/find story: %+v", result.Document.Stories)
	}
}

func TestAnalyze_StakeholdersFromSpeakers(t *testing.T) {
	p := NewPipeline(testConfig())

	result, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	got := strings.Join(result.Document.Stakeholders, ",")
	for _, want := range []string{"Alice", "Bob", "Carol"} {
		if !strings.Contains(got, want) {
			t.Errorf("Stakeholders missing %s: %v", want, result.Document.Stakeholders)
		}
	}
}

func TestAnalyze_EmptyTranscript(t *testing.T) {
	p := NewPipeline(testConfig())

	result, err := p.Analyze(context.Background(), "", model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze should not fail on empty input: %v", err)
	}

	doc := result.Document
	if len(doc.Functional)+len(doc.NonFunctional)+len(doc.Informational) != 0 {
		t.Errorf("Expected an empty document")
	}

	critical := false
	for _, sig := range result.Analysis.Signals {
		if sig.Severity == model.SeverityCritical {
			critical = true
		}
	}
	if !critical {
		t.Errorf("Expected a critical signal for an empty transcript")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	p := NewPipeline(testConfig())

	a, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	b, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(a.Document.Functional) != len(b.Document.Functional) {
		t.Fatalf("Runs disagree on functional count")
	}
	for i := range a.Document.Functional {
		if a.Document.Functional[i].ID != b.Document.Functional[i].ID ||
			a.Document.Functional[i].Text != b.Document.Functional[i].Text {
			t.Errorf("Requirement %d differs between runs", i)
		}
	}
	for i := range a.Document.Stories {
		if a.Document.Stories[i].Text != b.Document.Stories[i].Text {
			t.Errorf("Story %d differs between runs", i)
		}
	}
}

func TestAnalyze_CacheHit(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()
	p := NewPipeline(cfg)

	first, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if first.CacheHit {
		t.Errorf("First run should not be a cache hit")
	}

	second, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !second.CacheHit {
		t.Errorf("Second run should be a cache hit")
	}
	if len(second.Document.Functional) != len(first.Document.Functional) {
		t.Errorf("Cached result differs from computed result")
	}
}

func TestAnalyze_AttendeeValidation(t *testing.T) {
	cfg := testConfig()
	cfg.Input.Attendees = []string{"Alice", "Bob"}
	p := NewPipeline(cfg)

	result, err := p.Analyze(context.Background(), meetingTranscript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(result.Speakers.Unknown) != 1 || result.Speakers.Unknown[0] != "Carol" {
		t.Errorf("Unknown = %v, want [Carol]", result.Speakers.Unknown)
	}

	var flagged bool
	for _, sig := range result.Analysis.Signals {
		if sig.Type == model.SignalUnknownSpeakers {
			flagged = true
		}
	}
	if !flagged {
		t.Errorf("Expected an unknown speaker signal")
	}
}

func TestAnalyze_DegradedFunctionalHasNoStory(t *testing.T) {
	p := NewPipeline(testConfig())

	// Functional by keyword, but the predicate has no extractable verb
	transcript := "Alice: The dashboard view must be available to everyone.\n"
	result, err := p.Analyze(context.Background(), transcript, model.FrontMatter{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(result.Document.Functional) != 1 {
		t.Fatalf("Functional = %d, want 1: %+v", len(result.Document.Functional), result.Document)
	}
	if len(result.Document.Stories) != 0 {
		t.Errorf("Degraded extraction should not yield a story: %+v", result.Document.Stories)
	}
	if result.Analysis.Degraded != 1 {
		t.Errorf("Degraded = %d, want 1", result.Analysis.Degraded)
	}
}

func TestAnalyzeFile_DerivesTitle(t *testing.T) {
	p := NewPipeline(testConfig())

	dir := t.TempDir()
	path := dir + "/kickoff-meeting.txt"
	if err := writeFile(path, meetingTranscript); err != nil {
		t.Fatalf("write: %v", err)
	}

	result, err := p.AnalyzeFile(context.Background(), path, model.FrontMatter{})
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if result.Document.Front.Title != "BRD: kickoff-meeting" {
		t.Errorf("Title = %q", result.Document.Front.Title)
	}
}
