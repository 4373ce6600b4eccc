package summarizer

import (
	"context"
	"math"

	"hitsum/internal/hits"
)

// FrequencySummarizer ranks sentences by normalized token frequency. It is
// a baseline to compare the HITS ranking against.
type FrequencySummarizer struct {
	topSentences int
	topTokens    int
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer(topSentences, topTokens int) (*FrequencySummarizer, error) {
	if topSentences < hits.Unlimited || topTokens < hits.Unlimited {
		return nil, hits.ErrInvalidLimit
	}
	return &FrequencySummarizer{topSentences: topSentences, topTokens: topTokens}, nil
}

// Name returns the identifier of this summarizer implementation.
func (s *FrequencySummarizer) Name() string { return "frequency" }

// Summarize scores each sentence by the sum of its tokens' frequencies
// (scaled so the most frequent token is 1) divided by the square root of
// its length. Tokens are ranked by raw frequency.
func (s *FrequencySummarizer) Summarize(ctx context.Context, sentences []hits.Sentence) (hits.Summary, error) {
	if err := ctx.Err(); err != nil {
		return hits.Summary{}, err
	}
	vocab := hits.BuildVocabulary(sentences)
	freq := make([]float64, vocab.Len())
	for _, sent := range sentences {
		for _, tok := range sent.Tokens {
			j, _ := vocab.Index(tok)
			freq[j]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	keys := make([]string, len(sentences))
	scores := make([]float64, len(sentences))
	for i, sent := range sentences {
		keys[i] = sent.Key
		sscore := 0.0
		for _, tok := range sent.Tokens {
			j, _ := vocab.Index(tok)
			sscore += freq[j] / maxF
		}
		// Normalize by sentence length to avoid bias
		if l := float64(len(sent.Tokens)); l > 0 {
			sscore /= math.Sqrt(l)
		}
		scores[i] = sscore
	}
	top, err := hits.Select(keys, scores, s.topSentences)
	if err != nil {
		return hits.Summary{}, err
	}
	words, err := hits.Select(vocab.Terms(), freq, s.topTokens)
	if err != nil {
		return hits.Summary{}, err
	}
	return hits.Summary{
		Sentences:      top,
		Tokens:         words,
		SentenceCount:  len(sentences),
		VocabularySize: vocab.Len(),
	}, nil
}
