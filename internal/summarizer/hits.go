package summarizer

import (
	"context"
	"log/slog"

	"hitsum/internal/hits"
	"hitsum/internal/logging"
)

// HITSSummarizer ranks sentences by hub score and tokens by authority score.
type HITSSummarizer struct {
	cfg hits.Config
}

// NewHITSSummarizer creates a summarizer with a validated configuration.
func NewHITSSummarizer(cfg hits.Config) (*HITSSummarizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HITSSummarizer{cfg: cfg}, nil
}

// Name returns the identifier of this summarizer implementation.
func (s *HITSSummarizer) Name() string { return "hits" }

// Summarize runs one ranking batch. Cancellation is only observed before
// the batch starts; the computation itself does not block.
func (s *HITSSummarizer) Summarize(ctx context.Context, sentences []hits.Sentence) (hits.Summary, error) {
	if err := ctx.Err(); err != nil {
		return hits.Summary{}, err
	}
	summary, err := hits.Summarize(sentences, s.cfg)
	if err != nil {
		return hits.Summary{}, err
	}
	logging.FromContext(ctx).DebugContext(ctx, "hits ranking completed",
		slog.Int("sentences", summary.SentenceCount),
		slog.Int("vocabulary", summary.VocabularySize),
		slog.Int("iterations", summary.Iterations),
	)
	return summary, nil
}
