package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/reqscribe/reqscribe/internal/pipeline"
	"github.com/reqscribe/reqscribe/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Analyze multiple transcripts from a list file in parallel",
	Long: `Batch processes multiple transcripts concurrently:
- Read transcript paths from the list file (one per line, # comments)
- Analyze transcripts in parallel with a configurable worker count
- Write one BRD (JSON and Markdown) per transcript to the output directory

Example:
  reqscribe batch transcripts.txt
  reqscribe batch transcripts.txt --concurrency 8 --output-dir ./brds
  reqscribe batch transcripts.txt --meta project.yaml --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./reqscribe-brds", "output directory for documents")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringVar(&metaFile, "meta", "", "YAML file with shared document front matter")
	batchCmd.Flags().StringSliceVar(&attendees, "attendees", nil, "attendee names for speaker validation")
	batchCmd.Flags().Float64Var(&threshold, "threshold", 0.5, "requirement detection threshold (0-1)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM executive summary generation")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	front, err := pipeline.LoadFrontMatter(metaFile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	start := time.Now()
	results, err := processor.ProcessFile(ctx, listPath, front)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	succeeded, failed := 0, 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Path, r.Error)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")

		if err := p.RenderResult(r.Result, jsonPath, mdPath, false); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: render: %v\n", r.Path, err)
			continue
		}
		succeeded++

		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: %d requirements, %d stories\n",
				r.Path,
				r.Result.Analysis.Functional+r.Result.Analysis.NonFunctional,
				r.Result.Analysis.Stories)
		}
	}

	fmt.Printf("\nProcessed %d transcripts in %s: %d succeeded, %d failed\n",
		len(results), time.Since(start).Truncate(time.Millisecond), succeeded, failed)

	if failed > 0 {
		return fmt.Errorf("%d transcript(s) failed", failed)
	}
	return nil
}
