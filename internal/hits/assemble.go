package hits

import "fmt"

// Summary is the result of one ranking run.
type Summary struct {
	Sentences      []Ranked `json:"sentences" yaml:"sentences"`
	Tokens         []Ranked `json:"tokens" yaml:"tokens"`
	SentenceCount  int      `json:"sentence_count" yaml:"sentence_count"`
	VocabularySize int      `json:"vocabulary_size" yaml:"vocabulary_size"`
	Iterations     int      `json:"iterations" yaml:"iterations"`
}

// SentenceKeys returns the ranked sentence keys.
func (s Summary) SentenceKeys() []string { return Labels(s.Sentences) }

// TokenStrings returns the ranked vocabulary.
func (s Summary) TokenStrings() []string { return Labels(s.Tokens) }

// Assemble ranks sentence keys by hub score and tokens by authority score,
// truncating each list to the configured limit.
func Assemble(sentences []Sentence, vocab *Vocabulary, scores Scores, cfg Config) (Summary, error) {
	keys := make([]string, len(sentences))
	for i, s := range sentences {
		keys[i] = s.Key
	}
	top, err := Select(keys, scores.Hub, cfg.TopSentences)
	if err != nil {
		return Summary{}, fmt.Errorf("rank sentences: %w", err)
	}
	words, err := Select(vocab.Terms(), scores.Authority, cfg.TopTokens)
	if err != nil {
		return Summary{}, fmt.Errorf("rank tokens: %w", err)
	}
	return Summary{
		Sentences:      top,
		Tokens:         words,
		SentenceCount:  len(sentences),
		VocabularySize: vocab.Len(),
		Iterations:     cfg.Iterations,
	}, nil
}
