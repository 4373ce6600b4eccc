package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitsum/internal/hits"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hitsum.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, hits.DefaultConfig(), cfg.Ranking())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, "\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, `
summarizer:
  top_sentences: 0
  top_tokens: -1
chunker:
  sentences_per_chunk: 3
  overlap_sentences: 1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hits", cfg.Summarizer.Type)
	assert.Equal(t, 10, cfg.Summarizer.Iterations)
	assert.Equal(t, 0, cfg.Summarizer.TopSentences)
	assert.Equal(t, hits.Unlimited, cfg.Summarizer.TopTokens)
	assert.Equal(t, 3, cfg.Chunker.SentencesPerChunk)
	assert.Equal(t, 1, cfg.Chunker.OverlapSentences)
	assert.True(t, cfg.Tokenizer.Stopwords)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_S3Defaults(t *testing.T) {
	cfg, err := Load(writeFile(t, `
source:
  s3:
    endpoint: localhost:9000
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Source.S3)
	assert.Equal(t, "AWS_ACCESS_KEY_ID", cfg.Source.S3.AccessKeyEnv)
	assert.Equal(t, "AWS_SECRET_ACCESS_KEY", cfg.Source.S3.SecretKeyEnv)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeFile(t, "summarizer: [unclosed"))
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Summarizer.Type = "frequency"
	cfg.Summarizer.TopSentences = hits.Unlimited
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HITSUM_ITERATIONS", "25")
	t.Setenv("HITSUM_TOP_SENTENCES", "-1")
	t.Setenv("HITSUM_TOP_TOKENS", "not-a-number")
	t.Setenv("HITSUM_LOG_LEVEL", "debug")
	t.Setenv("HITSUM_S3_ENDPOINT", "minio:9000")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, 25, cfg.Summarizer.Iterations)
	assert.Equal(t, -1, cfg.Summarizer.TopSentences)
	assert.Equal(t, 20, cfg.Summarizer.TopTokens)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NotNil(t, cfg.Source.S3)
	assert.Equal(t, "minio:9000", cfg.Source.S3.Endpoint)
	assert.True(t, cfg.Source.S3.Secure)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		ok     bool
		want   error
	}{
		{name: "defaults", mutate: func(*AppConfig) {}, ok: true},
		{name: "frequency", mutate: func(c *AppConfig) { c.Summarizer.Type = "frequency" }, ok: true},
		{name: "unknown summarizer", mutate: func(c *AppConfig) { c.Summarizer.Type = "lexrank" }},
		{name: "negative iterations", mutate: func(c *AppConfig) { c.Summarizer.Iterations = -1 }, want: hits.ErrNegativeIterations},
		{name: "bad sentence limit", mutate: func(c *AppConfig) { c.Summarizer.TopSentences = -2 }, want: hits.ErrInvalidLimit},
		{name: "unknown chunker", mutate: func(c *AppConfig) { c.Chunker.Type = "paragraph" }},
		{name: "zero chunk size", mutate: func(c *AppConfig) { c.Chunker.SentencesPerChunk = 0 }},
		{name: "overlap too large", mutate: func(c *AppConfig) { c.Chunker.OverlapSentences = 1 }},
		{name: "negative min length", mutate: func(c *AppConfig) { c.Tokenizer.MinLength = -1 }},
		{name: "no workers", mutate: func(c *AppConfig) { c.Service.Workers = 0 }},
		{name: "s3 without endpoint", mutate: func(c *AppConfig) { c.Source.S3 = &S3Config{} }},
		{name: "output format", mutate: func(c *AppConfig) { c.Output.Format = "xml" }},
		{name: "log format", mutate: func(c *AppConfig) { c.Log.Format = "logfmt" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			switch {
			case tt.ok:
				assert.NoError(t, err)
			case tt.want != nil:
				assert.ErrorIs(t, err, tt.want)
			default:
				assert.Error(t, err)
			}
		})
	}
}
