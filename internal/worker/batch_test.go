package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/reqscribe/reqscribe/internal/model"
	"github.com/reqscribe/reqscribe/internal/pipeline"
)

type fakeAnalyzer struct {
	mu     sync.Mutex
	calls  []string
	titles []string
	failOn string
}

func (f *fakeAnalyzer) AnalyzeFile(ctx context.Context, path string, front model.FrontMatter) (*pipeline.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, path)
	f.titles = append(f.titles, front.Title)
	f.mu.Unlock()

	if path == f.failOn {
		return nil, errors.New("unreadable transcript")
	}
	return &pipeline.Result{Document: &model.Document{}}, nil
}

func TestProcessPaths_AnalyzesEveryFile(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	b := NewBatchProcessor(analyzer, 2)

	paths := []string{"a.txt", "b.txt", "c.txt"}
	results := b.ProcessPaths(context.Background(), paths, model.FrontMatter{})

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("Unexpected error for %s: %v", r.Path, r.Error)
		}
		if r.Result == nil {
			t.Errorf("Missing result for %s", r.Path)
		}
	}

	analyzer.mu.Lock()
	defer analyzer.mu.Unlock()
	if len(analyzer.calls) != 3 {
		t.Errorf("Analyzer called %d times, want 3", len(analyzer.calls))
	}
}

func TestProcessPaths_ErrorsDoNotAbortBatch(t *testing.T) {
	analyzer := &fakeAnalyzer{failOn: "bad.txt"}
	b := NewBatchProcessor(analyzer, 2)

	results := b.ProcessPaths(context.Background(), []string{"good.txt", "bad.txt"}, model.FrontMatter{})

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
			if r.Path != "bad.txt" {
				t.Errorf("Wrong path failed: %s", r.Path)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestProcessPaths_TitleClearedPerFile(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	b := NewBatchProcessor(analyzer, 1)

	front := model.FrontMatter{Title: "Shared Title", Author: "J. Rivera"}
	b.ProcessPaths(context.Background(), []string{"a.txt"}, front)

	analyzer.mu.Lock()
	defer analyzer.mu.Unlock()
	if analyzer.titles[0] != "" {
		t.Errorf("Title should be cleared so each file derives its own, got %q", analyzer.titles[0])
	}
}

func TestProcessPaths_EmptyInput(t *testing.T) {
	b := NewBatchProcessor(&fakeAnalyzer{}, 2)

	results := b.ProcessPaths(context.Background(), nil, model.FrontMatter{})
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	content := `# weekly transcripts
a.txt

b.txt
a.txt
  c.txt
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	paths, err := ReadPathsFromFile(path)
	if err != nil {
		t.Fatalf("ReadPathsFromFile: %v", err)
	}
	want := []string{"a.txt", "b.txt", "c.txt"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Errorf("Expected error for missing list file")
	}
}
