package model

import "time"

// Config holds the complete reqscribe configuration
type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline" mapstructure:"pipeline"`
	Input       InputConfig       `yaml:"input" mapstructure:"input"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// PipelineConfig tunes the extraction stages
type PipelineConfig struct {
	DetectionThreshold float64 `yaml:"detection_threshold" mapstructure:"detection_threshold"` // Keep sentences scoring at or above this
	MinSentenceLen     int     `yaml:"min_sentence_len" mapstructure:"min_sentence_len"`       // Shorter sentences are skipped
	MaxSentenceLen     int     `yaml:"max_sentence_len" mapstructure:"max_sentence_len"`       // Longer sentences are skipped
}

// InputConfig bounds transcript ingestion
type InputConfig struct {
	MaxBytes  int64    `yaml:"max_bytes" mapstructure:"max_bytes"` // Max transcript file size
	Attendees []string `yaml:"attendees" mapstructure:"attendees"` // Optional speaker allowlist for validation
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// CacheConfig controls result caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // Disk cache directory; empty disables the disk layer
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // Parallel transcript analyses in batch mode
}

// LLMConfig controls the optional executive summary generation
type LLMConfig struct {
	Provider  string  `yaml:"provider" mapstructure:"provider"` // "openai", "ollama", "" (disabled)
	Model     string  `yaml:"model" mapstructure:"model"`
	APIKey    string  `yaml:"-" mapstructure:"-"` // From environment only, never persisted
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int     `yaml:"timeout" mapstructure:"timeout"` // Seconds
	StrictIDs bool    `yaml:"strict_ids" mapstructure:"strict_ids"`
	MaxTokens int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // Requests per second in batch mode
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			DetectionThreshold: 0.5,
			MinSentenceLen:     10,
			MaxSentenceLen:     500,
		},
		Input: InputConfig{
			MaxBytes: 4_000_000,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			StrictIDs: true,
			MaxTokens: 1000,
			RateLimit: 1,
		},
	}
}
