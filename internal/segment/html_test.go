package segment

import (
	"strings"
	"testing"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"doctype", "<!DOCTYPE html><html><body>x</body></html>", true},
		{"html tag", "<html><body>x</body></html>", true},
		{"body only", "<div><body>x</body></div>", true},
		{"plain text", "Alice: We need to export reports.", false},
		{"angle brackets in prose", "The value must be < 100 items.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeHTML(tt.input); got != tt.want {
				t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleText_SkipsInvisibleElements(t *testing.T) {
	html := `
	<html>
	<head>
		<script>var note = "Alice: we must delete everything";</script>
		<style>body { color: red; }</style>
	</head>
	<body>
		<p>Alice: We need to export monthly reports.</p>
		<noscript>Noscript content</noscript>
		<p>Bob: All data must be encrypted.</p>
	</body>
	</html>
	`

	text := VisibleText(html)

	if !strings.Contains(text, "export monthly reports") {
		t.Error("Expected visible paragraph text to be extracted")
	}
	if !strings.Contains(text, "must be encrypted") {
		t.Error("Expected second paragraph to be extracted")
	}
	if strings.Contains(text, "delete everything") {
		t.Error("Should not extract script content")
	}
	if strings.Contains(text, "color: red") {
		t.Error("Should not extract style content")
	}
	if strings.Contains(text, "Noscript content") {
		t.Error("Should not extract noscript content")
	}
}

func TestSegmenter_HTMLTranscript(t *testing.T) {
	s := NewSegmenter()

	html := `<html><body>
	<p>Alice: We need to export monthly reports.</p>
	<p>Bob: All data must be encrypted.</p>
	</body></html>`

	utterances := s.Segment(html)

	if len(utterances) != 2 {
		t.Fatalf("Expected 2 utterances, got %d", len(utterances))
	}
	if utterances[0].Speaker != "Alice" || utterances[1].Speaker != "Bob" {
		t.Errorf("Speaker labels lost in HTML conversion: %+v", utterances)
	}
}
