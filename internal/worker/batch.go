package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
	"github.com/reqscribe/reqscribe/internal/pipeline"
)

// Analyzer analyzes a single transcript file
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string, front model.FrontMatter) (*pipeline.Result, error)
}

// AnalyzeJob analyzes one transcript
type AnalyzeJob struct {
	Path     string
	Front    model.FrontMatter
	Analyzer Analyzer
}

// Execute runs the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.AnalyzeFile(ctx, j.Path, j.Front)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}
	return &AnalyzeResult{Path: j.Path, Result: result}
}

// AnalyzeResult is the outcome of one transcript analysis
type AnalyzeResult struct {
	Path   string
	Result *pipeline.Result
	Error  error
}

// GetError returns the error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple transcripts concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given transcript files concurrently. The
// same front matter is applied to every document except the title,
// which defaults per file.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, front model.FrontMatter) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolWithQueue(b.concurrency, len(paths))
	pool.Start()

	for _, path := range paths {
		perFile := front
		perFile.Title = "" // Derived from the file name
		pool.Submit(&AnalyzeJob{
			Path:     path,
			Front:    perFile,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}
	return analyzeResults
}

// ProcessFile reads transcript paths from a list file and analyzes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string, front model.FrontMatter) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read transcript list: %w", err)
	}
	return b.ProcessPaths(ctx, paths, front), nil
}

// ReadPathsFromFile reads transcript paths from a file, one per line.
// Blank lines and # comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
