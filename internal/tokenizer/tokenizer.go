package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Options configures token extraction.
type Options struct {
	Lowercase bool
	Stopwords bool
	MinLength int
}

// Tokenizer extracts words made of unicode letters, with optional
// lowercasing, stopword removal and a minimum rune length.
type Tokenizer struct {
	opts      Options
	stopwords map[string]struct{}
}

// New creates a tokenizer with the given options.
func New(opts Options) *Tokenizer {
	t := &Tokenizer{opts: opts}
	if opts.Stopwords {
		t.stopwords = defaultStopwords()
	}
	return t
}

// Default lowercases and drops English stopwords.
func Default() *Tokenizer {
	return New(Options{Lowercase: true, Stopwords: true, MinLength: 1})
}

// Tokens returns the words of text in order of appearance.
func (t *Tokenizer) Tokens(text string) []string {
	if t.opts.Lowercase {
		text = strings.ToLower(text)
	}
	raw := wordPattern.FindAllString(text, -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, w := range raw {
		if utf8.RuneCountInString(w) < t.opts.MinLength {
			continue
		}
		if _, isStop := t.stopwords[strings.ToLower(w)]; isStop {
			continue
		}
		out = append(out, w)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
