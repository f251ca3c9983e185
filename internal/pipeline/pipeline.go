package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reqscribe/reqscribe/internal/assemble"
	"github.com/reqscribe/reqscribe/internal/cache"
	"github.com/reqscribe/reqscribe/internal/classify"
	"github.com/reqscribe/reqscribe/internal/detect"
	"github.com/reqscribe/reqscribe/internal/extract"
	"github.com/reqscribe/reqscribe/internal/llm"
	"github.com/reqscribe/reqscribe/internal/model"
	"github.com/reqscribe/reqscribe/internal/score"
	"github.com/reqscribe/reqscribe/internal/segment"
	"github.com/reqscribe/reqscribe/internal/stakeholder"
	"github.com/reqscribe/reqscribe/internal/synth"
	"github.com/reqscribe/reqscribe/internal/validate"
)

// Pipeline orchestrates the complete transcript-to-BRD transformation.
// Data flows strictly forward through the stages; no stage holds
// cross-invocation state, so one pipeline may analyze multiple
// transcripts concurrently.
type Pipeline struct {
	loader      *Loader
	segmenter   *segment.Segmenter
	detector    *detect.Detector
	classifier  *classify.Classifier
	extractor   *extract.Extractor
	synthesizer *synth.Synthesizer
	criteria    *synth.CriteriaGenerator
	assembler   *assemble.Assembler
	renderer    *assemble.Renderer
	scorer      *score.Scorer
	validator   *validate.Validator
	summarizer  *llm.Summarizer // nil when disabled
	results     cache.Cache     // nil when caching disabled
	config      *model.Config
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			results = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			results = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
	}

	return &Pipeline{
		loader:      NewLoader(cfg.Input.MaxBytes),
		segmenter:   segment.NewSegmenterWithLimits(cfg.Pipeline.MinSentenceLen, cfg.Pipeline.MaxSentenceLen),
		detector:    detect.NewDetectorWithThreshold(cfg.Pipeline.DetectionThreshold),
		classifier:  classify.NewClassifier(),
		extractor:   extract.NewExtractor(),
		synthesizer: synth.NewSynthesizer(),
		criteria:    synth.NewCriteriaGenerator(),
		assembler:   assemble.NewAssembler(),
		renderer:    assemble.NewRenderer(cfg.Output.IncludeFooter),
		scorer:      score.NewScorer(),
		validator:   validate.NewValidator(cfg.Input.Attendees),
		summarizer:  summarizer,
		results:     results,
		config:      cfg,
	}
}

// Result contains the complete analysis output for one transcript
type Result struct {
	Document *model.Document `json:"document"`
	Analysis model.Analysis  `json:"analysis"`
	Speakers validate.Result `json:"speakers"`
	CacheHit bool            `json:"-"`
}

// Analyze runs the full pipeline on raw transcript text. It never hard
// fails on malformed input: an empty or unsegmentable transcript yields
// an empty document.
func (p *Pipeline) Analyze(ctx context.Context, transcript string, front model.FrontMatter) (*Result, error) {
	key := cache.Key(transcript, p.fingerprint())
	if p.results != nil {
		if data, found := p.results.Get(key); found {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.CacheHit = true
				return &cached, nil
			}
			// Corrupt entry: drop it and recompute
			_ = p.results.Delete(key)
		}
	}

	utterances := p.segmenter.Segment(transcript)
	candidates := p.detector.Detect(utterances)
	requirements := p.classifier.Classify(candidates)

	var stories []model.Story
	var criteria []model.Criterion
	degraded := 0
	for _, req := range requirements {
		if req.Kind != model.KindFunctional {
			continue
		}
		tuple := p.extractor.Extract(req.Text)
		if tuple.Degraded {
			degraded++
		}
		if story, ok := p.synthesizer.Synthesize(req, tuple, len(stories)+1); ok {
			stories = append(stories, story)
			criteria = append(criteria, p.criteria.Generate(story))
		}
	}

	stakeholders := stakeholder.Extract(utterances)
	speakers := p.validator.Check(utterances)

	doc := p.assembler.Assemble(front, requirements, stories, criteria, stakeholders)
	analysis := p.scorer.Calculate(utterances, candidates, requirements, stories, degraded, speakers.Unknown)

	// Summary generation runs after assembly and never affects the
	// extracted sections; failure downgrades to a warning.
	if p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			doc.LLM = summary
		}
	}

	result := &Result{
		Document: doc,
		Analysis: analysis,
		Speakers: speakers,
	}

	if p.results != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = p.results.Set(key, data, 0)
		}
	}
	return result, nil
}

// AnalyzeFile loads a transcript file and runs the pipeline on it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string, front model.FrontMatter) (*Result, error) {
	transcript, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	if front.Title == "" {
		base := filepath.Base(path)
		front.Title = "BRD: " + base[:len(base)-len(filepath.Ext(base))]
	}
	return p.Analyze(ctx, transcript, front)
}

// RenderResult writes the document to the requested outputs and prints
// a summary to stdout.
func (p *Pipeline) RenderResult(result *Result, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result.Document, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result.Document, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result.Document, result.Analysis)
	return nil
}

// fingerprint captures every setting that changes pipeline output, so
// cached results are never served across incompatible configurations.
func (p *Pipeline) fingerprint() string {
	return fmt.Sprintf("t=%.2f;min=%d;max=%d;llm=%s/%s;att=%v",
		p.config.Pipeline.DetectionThreshold,
		p.config.Pipeline.MinSentenceLen,
		p.config.Pipeline.MaxSentenceLen,
		p.config.LLM.Provider,
		p.config.LLM.Model,
		p.config.Input.Attendees,
	)
}
