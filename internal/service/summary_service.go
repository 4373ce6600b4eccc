package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"hitsum/internal/domain"
	"hitsum/internal/hits"
	"hitsum/internal/logging"
)

// ErrNoDocuments is returned when the inputs resolve to nothing.
var ErrNoDocuments = errors.New("no text documents found")

// Options controls batching.
type Options struct {
	// Workers bounds how many documents are ranked at once.
	Workers int
	// Merge ranks all documents as a single batch.
	Merge bool
}

// SummaryServiceImpl loads documents, splits them into sentences and ranks
// each batch independently.
type SummaryServiceImpl struct {
	source     domain.Source
	chunker    domain.Chunker
	summarizer domain.Summarizer
	opts       Options
}

// NewSummaryService wires the pipeline components together.
func NewSummaryService(source domain.Source, chunker domain.Chunker, summarizer domain.Summarizer, opts Options) *SummaryServiceImpl {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &SummaryServiceImpl{source: source, chunker: chunker, summarizer: summarizer, opts: opts}
}

// SummarizeDocuments returns one report per resolved document, in input
// order, or a single merged report when Merge is set.
func (s *SummaryServiceImpl) SummarizeDocuments(ctx context.Context, inputs []string) ([]domain.Report, error) {
	refs, err := s.source.Resolve(ctx, inputs)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, ErrNoDocuments
	}
	logger := logging.FromContext(ctx)
	logger.InfoContext(ctx, "resolved documents",
		slog.Int("count", len(refs)),
		slog.String("summarizer", s.summarizer.Name()),
	)

	if s.opts.Merge {
		report, err := s.summarizeMerged(ctx, refs)
		if err != nil {
			return nil, err
		}
		return []domain.Report{report}, nil
	}

	reports := make([]domain.Report, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, ref := range refs {
		g.Go(func() error {
			doc, err := s.load(gctx, ref)
			if err != nil {
				return err
			}
			sentences, err := s.chunker.Chunk(doc)
			if err != nil {
				return fmt.Errorf("chunk %s: %w", ref, err)
			}
			report, err := s.rank(gctx, doc.Path, doc.ID, sentences)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// SummarizeText ranks the sentences of an in-memory text.
func (s *SummaryServiceImpl) SummarizeText(ctx context.Context, name, text string) (domain.Report, error) {
	doc := domain.Document{ID: hashString(name), Path: name, Content: text}
	sentences, err := s.chunker.Chunk(doc)
	if err != nil {
		return domain.Report{}, fmt.Errorf("chunk %s: %w", name, err)
	}
	return s.rank(ctx, name, doc.ID, sentences)
}

// summarizeMerged keeps every document's sentences in input order and
// drops a sentence key already contributed by an earlier document.
func (s *SummaryServiceImpl) summarizeMerged(ctx context.Context, refs []string) (domain.Report, error) {
	var all []hits.Sentence
	seen := make(map[string]struct{})
	for _, ref := range refs {
		doc, err := s.load(ctx, ref)
		if err != nil {
			return domain.Report{}, err
		}
		sentences, err := s.chunker.Chunk(doc)
		if err != nil {
			return domain.Report{}, fmt.Errorf("chunk %s: %w", ref, err)
		}
		for _, sent := range sentences {
			if _, dup := seen[sent.Key]; dup {
				continue
			}
			seen[sent.Key] = struct{}{}
			all = append(all, sent)
		}
	}
	name := strings.Join(refs, ", ")
	return s.rank(ctx, name, hashString(name), all)
}

func (s *SummaryServiceImpl) load(ctx context.Context, ref string) (domain.Document, error) {
	rc, err := s.source.Open(ctx, ref)
	if err != nil {
		return domain.Document{}, fmt.Errorf("open %s: %w", ref, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", ref, err)
	}
	return domain.Document{ID: hashString(ref), Path: ref, Content: string(data)}, nil
}

func (s *SummaryServiceImpl) rank(ctx context.Context, name, id string, sentences []hits.Sentence) (domain.Report, error) {
	summary, err := s.summarizer.Summarize(ctx, sentences)
	if err != nil {
		return domain.Report{}, fmt.Errorf("summarize %s: %w", name, err)
	}
	logging.FromContext(ctx).InfoContext(ctx, "summarized document",
		slog.String("document", name),
		slog.String("id", id),
		slog.Int("sentences", summary.SentenceCount),
		slog.Int("vocabulary", summary.VocabularySize),
	)
	return domain.Report{Document: name, Summary: summary}, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
