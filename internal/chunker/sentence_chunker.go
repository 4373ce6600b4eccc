package chunker

import (
	"regexp"
	"strings"

	"hitsum/internal/domain"
	"hitsum/internal/hits"
)

// Tokenizer turns a piece of text into ranking tokens.
type Tokenizer interface {
	Tokens(text string) []string
}

// SentenceChunker splits text into sentence windows with overlap and
// tokenizes each window. With one sentence per chunk and no overlap every
// sentence is its own ranking unit.
type SentenceChunker struct {
	sentencesPerChunk int
	overlapSentences  int
	splitter          *regexp.Regexp
	tokenizer         Tokenizer
}

// NewSentenceChunker creates a chunker. Non-positive sizes fall back to one
// sentence per chunk; overlap is clamped to [0, sentencesPerChunk).
func NewSentenceChunker(sentencesPerChunk, overlapSentences int, tokenizer Tokenizer) *SentenceChunker {
	if sentencesPerChunk <= 0 {
		sentencesPerChunk = 1
	}
	if overlapSentences < 0 {
		overlapSentences = 0
	}
	if overlapSentences >= sentencesPerChunk {
		overlapSentences = sentencesPerChunk - 1
	}
	return &SentenceChunker{
		sentencesPerChunk: sentencesPerChunk,
		overlapSentences:  overlapSentences,
		splitter:          regexp.MustCompile(`[^.!?]+(?:[.!?]+|$)`),
		tokenizer:         tokenizer,
	}
}

// Sentences splits text into trimmed, non-empty sentences. A trailing
// fragment without terminal punctuation is kept.
func (c *SentenceChunker) Sentences(text string) []string {
	raw := c.splitter.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" || strings.Trim(s, ".!?") == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Chunk returns the document's sentence windows in order. A window whose
// text repeats an earlier one keeps the earlier position.
func (c *SentenceChunker) Chunk(document domain.Document) ([]hits.Sentence, error) {
	sentences := c.Sentences(document.Content)
	if len(sentences) == 0 {
		return nil, nil
	}
	var chunks []hits.Sentence
	seen := make(map[string]struct{})
	i := 0
	for i < len(sentences) {
		end := i + c.sentencesPerChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		text := strings.Join(sentences[i:end], " ")
		if _, dup := seen[text]; !dup {
			seen[text] = struct{}{}
			chunks = append(chunks, hits.Sentence{Key: text, Tokens: c.tokenizer.Tokens(text)})
		}
		if end == len(sentences) {
			break
		}
		i = end - c.overlapSentences
	}
	return chunks, nil
}
