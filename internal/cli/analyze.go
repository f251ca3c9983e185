package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reqscribe/reqscribe/internal/model"
	"github.com/reqscribe/reqscribe/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	metaFile    string
	attendees   []string
	threshold   float64
	timeout     time.Duration
	maxBytes    int64
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript-file>",
	Short: "Analyze a transcript and generate a BRD",
	Long: `Analyze extracts requirements from a single meeting transcript:
- Segment the transcript into speaker-attributed utterances
- Detect and classify requirement sentences
- Synthesize user stories and acceptance criteria
- Assemble a Business Requirements Document

Example:
  reqscribe analyze meeting.txt
  reqscribe analyze meeting.txt --json brd.json --md brd.md
  reqscribe analyze meeting.txt --meta project.yaml --attendees "Alice,Bob"
  reqscribe analyze meeting.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "brd.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")

	// Input flags
	analyzeCmd.Flags().StringVar(&metaFile, "meta", "", "YAML file with document front matter (title, author, scope)")
	analyzeCmd.Flags().StringSliceVar(&attendees, "attendees", nil, "attendee names for speaker validation")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 4_000_000, "max transcript size to read")

	// Pipeline flags
	analyzeCmd.Flags().Float64Var(&threshold, "threshold", 0.5, "requirement detection threshold (0-1)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout (matters only with --llm)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh analysis)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM executive summary generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	front, err := pipeline.LoadFrontMatter(metaFile)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Threshold: %.2f\n", cfg.Pipeline.DetectionThreshold)
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	result, err := p.AnalyzeFile(ctx, path, front)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		if result.CacheHit {
			fmt.Fprintln(os.Stderr, "✓ Served from cache")
		}
		fmt.Fprintf(os.Stderr, "✓ Segmented %d utterances\n", result.Analysis.Utterances)
		fmt.Fprintf(os.Stderr, "✓ Detected %d requirement candidates\n", result.Analysis.Candidates)
		fmt.Fprintf(os.Stderr, "✓ Classified %d functional, %d non-functional\n",
			result.Analysis.Functional, result.Analysis.NonFunctional)
		fmt.Fprintf(os.Stderr, "✓ Synthesized %d user stories\n", result.Analysis.Stories)
		if doc := result.Document; doc.LLM != nil && doc.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated summary using %s/%s\n", doc.LLM.Provider, doc.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderResult(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// buildConfig merges defaults with flag values shared by analyze and batch
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Pipeline.DetectionThreshold = threshold
	cfg.Input.MaxBytes = maxBytes
	cfg.Input.Attendees = attendees
	cfg.Cache.Enabled = !noCache
	if cfg.Cache.Enabled && cfg.Cache.Dir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(base, "reqscribe")
		}
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.StrictIDs = true

		switch strings.ToLower(llmProvider) {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}
	return cfg, nil
}
