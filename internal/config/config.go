package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"hitsum/internal/hits"
)

// SummarizerConfig selects the ranking implementation and its limits.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	Iterations   int    `yaml:"iterations"`
	TopSentences int    `yaml:"top_sentences"`
	TopTokens    int    `yaml:"top_tokens"`
}

// ChunkerConfig configures how documents are split into ranking units.
type ChunkerConfig struct {
	Type              string `yaml:"type"`
	SentencesPerChunk int    `yaml:"sentences_per_chunk"`
	OverlapSentences  int    `yaml:"overlap_sentences"`
}

// TokenizerConfig configures token extraction.
type TokenizerConfig struct {
	Lowercase bool `yaml:"lowercase"`
	Stopwords bool `yaml:"stopwords"`
	MinLength int  `yaml:"min_length"`
}

// ServiceConfig controls how documents are batched.
type ServiceConfig struct {
	Workers int  `yaml:"workers"`
	Merge   bool `yaml:"merge"`
}

// S3Config contains connection details for s3:// inputs.
type S3Config struct {
	Endpoint     string `yaml:"endpoint"`
	Region       string `yaml:"region"`
	AccessKeyEnv string `yaml:"access_key_env"`
	SecretKeyEnv string `yaml:"secret_key_env"`
	Secure       bool   `yaml:"secure"`
}

// SourceConfig configures where documents are read from.
type SourceConfig struct {
	S3 *S3Config `yaml:"s3,omitempty"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Chunker    ChunkerConfig    `yaml:"chunker"`
	Tokenizer  TokenizerConfig  `yaml:"tokenizer"`
	Service    ServiceConfig    `yaml:"service"`
	Source     SourceConfig     `yaml:"source"`
	Log        LogConfig        `yaml:"log"`
	Output     OutputConfig     `yaml:"output"`
}

// Ranking returns the core ranking configuration.
func (c *AppConfig) Ranking() hits.Config {
	return hits.Config{
		Iterations:   c.Summarizer.Iterations,
		TopSentences: c.Summarizer.TopSentences,
		TopTokens:    c.Summarizer.TopTokens,
	}
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Keys missing from the file keep their default value.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./hitsum.yaml first, then ~/.config/hitsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/hitsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "hitsum.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides config values with HITSUM_* environment variables.
func (c *AppConfig) ApplyEnv() {
	c.Summarizer.Type = getEnv("HITSUM_SUMMARIZER", c.Summarizer.Type)
	c.Summarizer.Iterations = getEnvInt("HITSUM_ITERATIONS", c.Summarizer.Iterations)
	c.Summarizer.TopSentences = getEnvInt("HITSUM_TOP_SENTENCES", c.Summarizer.TopSentences)
	c.Summarizer.TopTokens = getEnvInt("HITSUM_TOP_TOKENS", c.Summarizer.TopTokens)
	c.Service.Workers = getEnvInt("HITSUM_WORKERS", c.Service.Workers)
	c.Log.Level = getEnv("HITSUM_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("HITSUM_LOG_FORMAT", c.Log.Format)
	c.Output.Format = getEnv("HITSUM_OUTPUT_FORMAT", c.Output.Format)
	if endpoint := getEnv("HITSUM_S3_ENDPOINT", ""); endpoint != "" {
		if c.Source.S3 == nil {
			c.Source.S3 = defaultS3Config()
		}
		c.Source.S3.Endpoint = endpoint
	}
}

// Validate reports the first setting that cannot be used.
func (c *AppConfig) Validate() error {
	switch c.Summarizer.Type {
	case "hits", "frequency":
	default:
		return fmt.Errorf("unknown summarizer: %q", c.Summarizer.Type)
	}
	if err := c.Ranking().Validate(); err != nil {
		return err
	}
	if c.Chunker.Type != "sentence" {
		return fmt.Errorf("unknown chunker: %q", c.Chunker.Type)
	}
	if c.Chunker.SentencesPerChunk < 1 {
		return fmt.Errorf("chunker.sentences_per_chunk must be at least 1, got %d", c.Chunker.SentencesPerChunk)
	}
	if c.Chunker.OverlapSentences < 0 || c.Chunker.OverlapSentences >= c.Chunker.SentencesPerChunk {
		return fmt.Errorf("chunker.overlap_sentences must be in [0, %d), got %d", c.Chunker.SentencesPerChunk, c.Chunker.OverlapSentences)
	}
	if c.Tokenizer.MinLength < 0 {
		return fmt.Errorf("tokenizer.min_length must be non-negative, got %d", c.Tokenizer.MinLength)
	}
	if c.Service.Workers < 1 {
		return fmt.Errorf("service.workers must be at least 1, got %d", c.Service.Workers)
	}
	if c.Source.S3 != nil && c.Source.S3.Endpoint == "" {
		return errors.New("source.s3.endpoint is required")
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format: %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hitsum", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	ranking := hits.DefaultConfig()
	return &AppConfig{
		Summarizer: SummarizerConfig{
			Type:         "hits",
			Iterations:   ranking.Iterations,
			TopSentences: ranking.TopSentences,
			TopTokens:    ranking.TopTokens,
		},
		Chunker:   ChunkerConfig{Type: "sentence", SentencesPerChunk: 1, OverlapSentences: 0},
		Tokenizer: TokenizerConfig{Lowercase: true, Stopwords: true, MinLength: 1},
		Service:   ServiceConfig{Workers: 4},
		Log:       LogConfig{Level: "info", Format: "text"},
		Output:    OutputConfig{Format: "text"},
	}
}

func defaultS3Config() *S3Config {
	return &S3Config{
		AccessKeyEnv: "AWS_ACCESS_KEY_ID",
		SecretKeyEnv: "AWS_SECRET_ACCESS_KEY",
		Secure:       true,
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Source.S3 != nil {
		if cfg.Source.S3.AccessKeyEnv == "" {
			cfg.Source.S3.AccessKeyEnv = "AWS_ACCESS_KEY_ID"
		}
		if cfg.Source.S3.SecretKeyEnv == "" {
			cfg.Source.S3.SecretKeyEnv = "AWS_SECRET_ACCESS_KEY"
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
