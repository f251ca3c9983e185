package stakeholder

import (
	"reflect"
	"testing"

	"github.com/reqscribe/reqscribe/internal/model"
)

func TestExtract_SpeakersAndRoles(t *testing.T) {
	utterances := []model.Utterance{
		{Speaker: "Alice", Text: "The project manager wants weekly reports.", Order: 0},
		{Speaker: "Bob", Text: "I will check with the product owner.", Order: 1},
	}

	got := Extract(utterances)
	want := []string{"Alice", "Bob", "Project Manager", "Product Owner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_Deduplication(t *testing.T) {
	utterances := []model.Utterance{
		{Speaker: "Alice", Text: "The support team is overloaded.", Order: 0},
		{Speaker: "alice", Text: "The Support Team needs another hire.", Order: 1},
	}

	got := Extract(utterances)
	want := []string{"Alice", "Support Team"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_SkipsUnattributed(t *testing.T) {
	utterances := []model.Utterance{
		{Speaker: model.UnattributedSpeaker, Text: "Nothing role related here.", Order: 0},
	}

	if got := Extract(utterances); len(got) != 0 {
		t.Errorf("Extract = %v, want empty", got)
	}
}

func TestExtract_SpeakersBeforeRoleMentions(t *testing.T) {
	utterances := []model.Utterance{
		{Speaker: "Dana", Text: "The business analyst drafted the spreadsheet.", Order: 0},
	}

	got := Extract(utterances)
	if len(got) != 2 || got[0] != "Dana" {
		t.Errorf("Expected speaker first, got %v", got)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	if got := Extract(nil); len(got) != 0 {
		t.Errorf("Extract = %v, want empty", got)
	}
}
