package segment

import (
	"strings"
	"testing"

	"github.com/reqscribe/reqscribe/internal/model"
)

func TestSegmenter_SpeakerLabels(t *testing.T) {
	s := NewSegmenter()

	transcript := `Alice: We need to build a reporting dashboard. It should be fast and simple.
Bob: Sounds good to me.`

	utterances := s.Segment(transcript)

	if len(utterances) != 3 {
		t.Fatalf("Expected 3 utterances, got %d", len(utterances))
	}

	if utterances[0].Speaker != "Alice" {
		t.Errorf("Expected speaker 'Alice', got '%s'", utterances[0].Speaker)
	}
	if utterances[1].Speaker != "Alice" {
		t.Errorf("Expected second sentence attributed to 'Alice', got '%s'", utterances[1].Speaker)
	}
	if utterances[2].Speaker != "Bob" {
		t.Errorf("Expected speaker 'Bob', got '%s'", utterances[2].Speaker)
	}

	if !strings.Contains(utterances[0].Text, "reporting dashboard") {
		t.Errorf("Unexpected first sentence: %s", utterances[0].Text)
	}
}

func TestSegmenter_OrderIsConversationOrder(t *testing.T) {
	s := NewSegmenter()

	transcript := `Alice: First we discuss the budget. Then we review the timeline.
Bob: After that we assign the work items.`

	utterances := s.Segment(transcript)

	for i, u := range utterances {
		if u.Order != i {
			t.Errorf("Expected order %d, got %d for %q", i, u.Order, u.Text)
		}
	}
}

func TestSegmenter_MultiLineSpeakerBlock(t *testing.T) {
	s := NewSegmenter()

	transcript := `Alice: We need to export monthly reports
and share them with the finance team.
Bob: Understood, noted for later.`

	utterances := s.Segment(transcript)

	if len(utterances) != 2 {
		t.Fatalf("Expected 2 utterances, got %d", len(utterances))
	}
	if !strings.Contains(utterances[0].Text, "finance team") {
		t.Errorf("Continuation line not joined into Alice's utterance: %q", utterances[0].Text)
	}
}

func TestSegmenter_NoSpeakerConvention(t *testing.T) {
	s := NewSegmenter()

	transcript := "The team met to plan the release.\n\nEveryone agreed on the scope of work."

	utterances := s.Segment(transcript)

	if len(utterances) != 2 {
		t.Fatalf("Expected 2 utterances, got %d", len(utterances))
	}
	for _, u := range utterances {
		if u.Speaker != model.UnattributedSpeaker {
			t.Errorf("Expected unattributed speaker, got '%s'", u.Speaker)
		}
	}
}

func TestSegmenter_EmptyInput(t *testing.T) {
	s := NewSegmenter()

	for _, input := range []string{"", "   ", "\n\n\n"} {
		utterances := s.Segment(input)
		if len(utterances) != 0 {
			t.Errorf("Expected 0 utterances for %q, got %d", input, len(utterances))
		}
	}
}

func TestSegmenter_DecimalNumbersDoNotSplit(t *testing.T) {
	s := NewSegmenter()

	utterances := s.Segment("Alice: Response time must stay under 1.5 seconds for every page.")

	if len(utterances) != 1 {
		t.Fatalf("Expected 1 utterance, got %d", len(utterances))
	}
	if !strings.Contains(utterances[0].Text, "1.5 seconds") {
		t.Errorf("Decimal split the sentence: %q", utterances[0].Text)
	}
}

func TestSegmenter_LengthFiltering(t *testing.T) {
	s := NewSegmenterWithLimits(10, 80)

	transcript := "Alice: Ok. This sentence is comfortably inside the configured bounds. " +
		strings.Repeat("This sentence keeps repeating itself to exceed the maximum length. ", 3)

	utterances := s.Segment(transcript)

	for _, u := range utterances {
		if len(u.Text) < 10 || len(u.Text) > 80 {
			t.Errorf("Sentence outside bounds (%d chars): %q", len(u.Text), u.Text)
		}
	}
}

func TestSegmenter_TrailingSentenceWithoutTerminator(t *testing.T) {
	s := NewSegmenter()

	utterances := s.Segment("Alice: We should add an audit log for deletions")

	if len(utterances) != 1 {
		t.Fatalf("Expected 1 utterance, got %d", len(utterances))
	}
}
