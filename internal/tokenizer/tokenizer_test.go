package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  Options
		input string
		want  []string
	}{
		{name: "empty", opts: Options{}, input: "", want: nil},
		{name: "punctuation only", opts: Options{}, input: "... 42 !!", want: nil},
		{
			name:  "default pipeline",
			opts:  Options{Lowercase: true, Stopwords: true, MinLength: 1},
			input: "The Cat sat on the mat.",
			want:  []string{"cat", "sat", "mat"},
		},
		{
			name:  "keeps case when asked",
			opts:  Options{},
			input: "Go is fun",
			want:  []string{"Go", "is", "fun"},
		},
		{
			name:  "stopwords are case insensitive",
			opts:  Options{Stopwords: true},
			input: "The Go gopher",
			want:  []string{"Go", "gopher"},
		},
		{
			name:  "apostrophes stay inside words",
			opts:  Options{Lowercase: true},
			input: "Don't panic, it's fine",
			want:  []string{"don't", "panic", "it's", "fine"},
		},
		{
			name:  "min length in runes",
			opts:  Options{MinLength: 3},
			input: "ab çöğ xy über",
			want:  []string{"çöğ", "über"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, New(tt.opts).Tokens(tt.input))
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, []string{"quick", "brown", "fox"}, Default().Tokens("A quick brown fox"))
}
