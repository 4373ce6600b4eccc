package domain

import (
	"context"
	"io"

	"hitsum/internal/hits"
)

// Document represents a single text input loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Report is the ranked output for one batch of sentences.
type Report struct {
	Document string       `json:"document" yaml:"document"`
	Summary  hits.Summary `json:"summary" yaml:"summary"`
}

// Chunker splits documents into keyed, tokenized sentences.
type Chunker interface {
	Chunk(document Document) ([]hits.Sentence, error)
}

// Summarizer ranks one batch of sentences.
type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, sentences []hits.Sentence) (hits.Summary, error)
}

// Source resolves input references and opens them for reading.
type Source interface {
	Resolve(ctx context.Context, inputs []string) ([]string, error)
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// SummaryService defines the operations exposed by the application core.
type SummaryService interface {
	SummarizeDocuments(ctx context.Context, inputs []string) ([]Report, error)
	SummarizeText(ctx context.Context, name, text string) (Report, error)
}
