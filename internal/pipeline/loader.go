package pipeline

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Loader reads transcript files with a size bound. Transcripts are
// plain UTF-8 text or HTML exports; the segmenter handles both.
type Loader struct {
	maxBytes int64
}

// NewLoader creates a loader with the given size bound
func NewLoader(maxBytes int64) *Loader {
	if maxBytes <= 0 {
		maxBytes = 4_000_000
	}
	return &Loader{maxBytes: maxBytes}
}

// Load reads a transcript file
func (l *Loader) Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat transcript: %w", err)
	}
	if info.Size() > l.maxBytes {
		return "", fmt.Errorf("transcript %s exceeds size limit (%d > %d bytes)", path, info.Size(), l.maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("transcript %s is not valid UTF-8", path)
	}
	return string(data), nil
}

// LoadFrontMatter reads caller-supplied document metadata from a YAML
// file. An empty path returns empty front matter.
func LoadFrontMatter(path string) (model.FrontMatter, error) {
	var front model.FrontMatter
	if path == "" {
		return front, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return front, fmt.Errorf("read front matter: %w", err)
	}
	if err := yaml.Unmarshal(data, &front); err != nil {
		return front, fmt.Errorf("parse front matter: %w", err)
	}
	return front, nil
}
