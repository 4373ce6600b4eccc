// Package hits ranks sentences and tokens by mutual reinforcement.
//
// A batch of tokenized sentences is turned into a binary sentence×token
// incidence matrix. Power iteration then produces a hub score per sentence
// and an authority score per token: a sentence scores high when it contains
// high-authority tokens, and a token scores high when it appears in
// high-hub sentences. The top sentences form an extractive summary and the
// top tokens a ranked vocabulary.
//
// Everything in this package is pure and synchronous. Each call to
// Summarize builds its own vocabulary, matrix and score vectors; nothing is
// retained between calls, so a Config value may be shared freely.
package hits

// Unlimited disables truncation in the selector.
const Unlimited = -1

const (
	defaultIterations   = 10
	defaultTopSentences = 6
	defaultTopTokens    = 20
)

// Sentence is a key (the sentence text or an id) with its ordered tokens.
type Sentence struct {
	Key    string
	Tokens []string
}

// Config controls the ranking run.
type Config struct {
	// Iterations is the number of power-iteration rounds.
	Iterations int
	// TopSentences caps the summary length; Unlimited returns all sentences.
	TopSentences int
	// TopTokens caps the ranked vocabulary; Unlimited returns all tokens.
	TopTokens int
}

// DefaultConfig returns 10 iterations, 6 sentences and 20 tokens.
func DefaultConfig() Config {
	return Config{
		Iterations:   defaultIterations,
		TopSentences: defaultTopSentences,
		TopTokens:    defaultTopTokens,
	}
}

// Validate reports whether the configuration can be used for a run.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return ErrNegativeIterations
	}
	if c.TopSentences < Unlimited || c.TopTokens < Unlimited {
		return ErrInvalidLimit
	}
	return nil
}

// Summarize ranks the sentences and returns the top sentence keys and
// tokens. It has no side effects.
func Summarize(sentences []Sentence, cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	vocab := BuildVocabulary(sentences)
	m, err := BuildMatrix(sentences, vocab)
	if err != nil {
		return Summary{}, err
	}
	scores, err := PowerIterate(m, cfg.Iterations)
	if err != nil {
		return Summary{}, err
	}
	return Assemble(sentences, vocab, scores, cfg)
}
