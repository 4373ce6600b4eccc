package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitsum/internal/chunker"
	"hitsum/internal/domain"
	"hitsum/internal/hits"
	"hitsum/internal/logging"
	"hitsum/internal/source"
	"hitsum/internal/summarizer"
	"hitsum/internal/tokenizer"
)

var _ domain.SummaryService = (*SummaryServiceImpl)(nil)

type failingSummarizer struct{}

func (failingSummarizer) Name() string { return "failing" }

func (failingSummarizer) Summarize(context.Context, []hits.Sentence) (hits.Summary, error) {
	return hits.Summary{}, errors.New("boom")
}

func newService(t *testing.T, opts Options) *SummaryServiceImpl {
	t.Helper()
	sum, err := summarizer.NewHITSSummarizer(hits.Config{Iterations: 10, TopSentences: 2, TopTokens: 3})
	require.NoError(t, err)
	return NewSummaryService(source.New(), chunker.NewSentenceChunker(1, 0, tokenizer.Default()), sum, opts)
}

func writeDocs(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const (
	petsText = "Cats chase mice. Dogs chase cats. Birds sing."
	foodText = "Bread needs flour. Cake needs flour and sugar. Tea is hot."
)

func TestSummarizeDocuments(t *testing.T) {
	dir := writeDocs(t, map[string]string{"pets.txt": petsText, "food.txt": foodText, "skip.md": "ignored"})
	svc := newService(t, Options{Workers: 2})

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "text", &logs))

	reports, err := svc.SummarizeDocuments(ctx, []string{filepath.Join(dir, "pets.txt"), filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, filepath.Join(dir, "pets.txt"), reports[0].Document)
	assert.Equal(t, filepath.Join(dir, "food.txt"), reports[1].Document)
	assert.Equal(t, filepath.Join(dir, "pets.txt"), reports[2].Document)

	pets := reports[0].Summary
	assert.Len(t, pets.Sentences, 2)
	assert.NotContains(t, pets.SentenceKeys(), "Birds sing.")
	assert.Equal(t, []string{"cats", "chase", "mice"}, pets.TokenStrings())
	assert.Equal(t, pets, reports[2].Summary)

	food := reports[1].Summary
	// "needs" and "flour" share both sentences; first appearance breaks the tie.
	assert.Equal(t, []string{"needs", "flour"}, food.TokenStrings()[:2])
	assert.Equal(t, "Cake needs flour and sugar.", food.SentenceKeys()[0])

	assert.Contains(t, logs.String(), "summarized document")
}

func TestSummarizeDocuments_Merge(t *testing.T) {
	dir := writeDocs(t, map[string]string{"a.txt": petsText, "b.txt": "Dogs chase cats. Cats sleep."})
	svc := newService(t, Options{Workers: 1, Merge: true})

	reports, err := svc.SummarizeDocuments(context.Background(), []string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	// "Dogs chase cats." appears in both documents and is counted once.
	assert.Equal(t, 4, reports[0].Summary.SentenceCount)
}

func TestSummarizeDocuments_NoDocuments(t *testing.T) {
	dir := writeDocs(t, map[string]string{"notes.md": "x"})
	_, err := newService(t, Options{}).SummarizeDocuments(context.Background(), []string{filepath.Join(dir, "*")})
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestSummarizeDocuments_MissingFile(t *testing.T) {
	_, err := newService(t, Options{}).SummarizeDocuments(context.Background(), []string{filepath.Join(t.TempDir(), "gone.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummarizeDocuments_SummarizerError(t *testing.T) {
	dir := writeDocs(t, map[string]string{"a.txt": petsText})
	svc := NewSummaryService(source.New(), chunker.NewSentenceChunker(1, 0, tokenizer.Default()), failingSummarizer{}, Options{Workers: 4})

	_, err := svc.SummarizeDocuments(context.Background(), []string{filepath.Join(dir, "a.txt")})
	assert.ErrorContains(t, err, "boom")
}

func TestSummarizeText(t *testing.T) {
	svc := newService(t, Options{})

	report, err := svc.SummarizeText(context.Background(), "inline", petsText)
	require.NoError(t, err)
	assert.Equal(t, "inline", report.Document)
	assert.Equal(t, 3, report.Summary.SentenceCount)

	empty, err := svc.SummarizeText(context.Background(), "empty", "")
	require.NoError(t, err)
	assert.Empty(t, empty.Summary.Sentences)
	assert.Empty(t, empty.Summary.Tokens)
}

func TestHashString(t *testing.T) {
	assert.Len(t, hashString("a"), 16)
	assert.Equal(t, hashString("a"), hashString("a"))
	assert.NotEqual(t, hashString("a"), hashString("b"))
}
