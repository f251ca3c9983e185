package segment

import (
	"regexp"
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Segmenter splits raw transcript text into ordered, speaker-attributed
// utterances. It never fails on malformed input: when no speaker
// convention is detected, each paragraph becomes a single unattributed
// utterance.
type Segmenter struct {
	minLen int
	maxLen int
}

// NewSegmenter creates a segmenter with default sentence length bounds
func NewSegmenter() *Segmenter {
	return NewSegmenterWithLimits(10, 500)
}

// NewSegmenterWithLimits creates a segmenter with explicit sentence
// length bounds. Sentences outside the bounds are skipped.
func NewSegmenterWithLimits(minLen, maxLen int) *Segmenter {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen <= 0 {
		maxLen = 500
	}
	return &Segmenter{minLen: minLen, maxLen: maxLen}
}

// speakerLabelRe matches a "Name:" prefix at line start. The label is
// limited to a few words so list items like "Note: ..." still match but
// URLs and timestamps do not.
var speakerLabelRe = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 .'_-]{0,39}?)\s*:\s+(\S.*)$`)

// block is a run of text attributed to one speaker
type block struct {
	speaker string
	text    string
}

// Segment splits transcript text into ordered utterances. HTML exports
// are detected and reduced to visible text first.
func (s *Segmenter) Segment(text string) []model.Utterance {
	if LooksLikeHTML(text) {
		text = VisibleText(text)
	}

	blocks := splitSpeakerBlocks(text)

	var utterances []model.Utterance
	order := 0
	for _, b := range blocks {
		for _, sentence := range s.splitSentences(b.text) {
			utterances = append(utterances, model.Utterance{
				Speaker: b.speaker,
				Text:    sentence,
				Order:   order,
			})
			order++
		}
	}
	return utterances
}

// splitSpeakerBlocks groups lines into per-speaker blocks. A labeled line
// starts a new block; unlabeled lines continue the current one. When the
// transcript has no labels at all, each paragraph becomes an
// unattributed block.
func splitSpeakerBlocks(text string) []block {
	lines := strings.Split(text, "\n")

	hasLabels := false
	for _, line := range lines {
		if speakerLabelRe.MatchString(line) {
			hasLabels = true
			break
		}
	}

	if !hasLabels {
		return paragraphBlocks(text)
	}

	var blocks []block
	var current *block
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := speakerLabelRe.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{})
			current = &blocks[len(blocks)-1]
			current.speaker = strings.TrimSpace(m[1])
			current.text = m[2]
			continue
		}

		// Continuation line before any label is attributed to nobody
		if current == nil {
			blocks = append(blocks, block{speaker: model.UnattributedSpeaker})
			current = &blocks[len(blocks)-1]
		}
		if current.text != "" {
			current.text += " "
		}
		current.text += trimmed
	}
	return blocks
}

// paragraphBlocks splits label-free text on blank lines
func paragraphBlocks(text string) []block {
	var blocks []block
	for _, para := range strings.Split(text, "\n\n") {
		joined := strings.Join(strings.Fields(para), " ")
		if joined == "" {
			continue
		}
		blocks = append(blocks, block{speaker: model.UnattributedSpeaker, text: joined})
	}
	return blocks
}

// splitSentences splits a speaker block into sentences on terminator
// punctuation. A terminator only ends a sentence when followed by a
// space or end of text, so "1.5 seconds" stays intact.
func (s *Segmenter) splitSentences(text string) []string {
	text = strings.Join(strings.Fields(text), " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			atEnd := i+1 >= len(runes)
			followedBySpace := !atEnd && runes[i+1] == ' '
			if atEnd || followedBySpace {
				s.keep(&sentences, current.String())
				current.Reset()
			}
		}
	}
	s.keep(&sentences, current.String())

	return sentences
}

func (s *Segmenter) keep(sentences *[]string, raw string) {
	sentence := strings.TrimSpace(raw)
	if len(sentence) >= s.minLen && len(sentence) <= s.maxLen {
		*sentences = append(*sentences, sentence)
	}
}
