package model

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig configures the web source reader
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	InsecureTLS       bool          `yaml:"insecure_tls"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	HTTPProxy         string        `yaml:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy"`
}

// CacheConfig configures the fetched-page cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls parallel source reading. Record building is
// always sequential: the dedup set and ID issue stay with a single owner.
type ConcurrencyConfig struct {
	SourceWorkers int `yaml:"source_workers"`
}

// LLMConfig configures the style-profile generator. The API key is taken
// from the environment, never from a config file.
type LLMConfig struct {
	APIKey    string        `yaml:"-"`
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:           20 * time.Second,
			UserAgent:         "StyleRules/0.1 (+https://github.com/okafor/stylerules)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			SourceWorkers: 1,
		},
		LLM: LLMConfig{
			BaseURL:   "https://api.groq.com/openai/v1",
			Model:     "llama-3.1-8b-instant",
			MaxTokens: 500,
			Timeout:   30 * time.Second,
		},
		Output: OutputConfig{},
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stylerules-cache"
	}
	return home + "/.stylerules/cache"
}

// Sources is the ordered input configuration: hypertext URLs first,
// then local document paths.
type Sources struct {
	URLs  []string `yaml:"urls"`
	Files []string `yaml:"files"`
}

// Count returns the total number of configured sources
func (s *Sources) Count() int {
	return len(s.URLs) + len(s.Files)
}

// LoadSources reads a YAML sources file
func LoadSources(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var srcs Sources
	if err := yaml.Unmarshal(data, &srcs); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	return &srcs, nil
}
