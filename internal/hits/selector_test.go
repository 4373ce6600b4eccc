package hits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "c", "d", "e"}
	scores := []float64{0.2, 0.9, 0.2, 0.5, 0.2}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "unlimited", limit: Unlimited, want: []string{"b", "d", "a", "c", "e"}},
		{name: "zero", limit: 0, want: []string{}},
		{name: "truncate inside ties", limit: 3, want: []string{"b", "d", "a"}},
		{name: "limit above length", limit: 50, want: []string{"b", "d", "a", "c", "e"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Select(labels, scores, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Labels(got))
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
			}
		})
	}
}

func TestSelect_StableOnLargeTies(t *testing.T) {
	// Enough equal elements to leave insertion-sort territory.
	n := 200
	labels := make([]string, n)
	scores := make([]float64, n)
	for i := range labels {
		labels[i] = string(rune('A'+i%26)) + string(rune('a'+i/26))
		scores[i] = float64(i % 3)
	}
	got, err := Select(labels, scores, Unlimited)
	require.NoError(t, err)

	pos := make(map[string]int, n)
	for i, l := range labels {
		pos[l] = i
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score == got[i].Score {
			assert.Less(t, pos[got[i-1].Label], pos[got[i].Label])
		}
	}
}

func TestSelect_DoesNotModifyInput(t *testing.T) {
	labels := []string{"x", "y"}
	scores := []float64{0.1, 0.7}
	_, err := Select(labels, scores, Unlimited)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, labels)
	assert.Equal(t, []float64{0.1, 0.7}, scores)
}

func TestSelect_Errors(t *testing.T) {
	_, err := Select([]string{"a"}, []float64{1, 2}, Unlimited)
	var dim *DimensionError
	assert.ErrorAs(t, err, &dim)

	_, err = Select([]string{"a"}, []float64{1}, -2)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestSelect_Empty(t *testing.T) {
	got, err := Select(nil, nil, 6)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssemble(t *testing.T) {
	in := exampleSentences()
	vocab := BuildVocabulary(in)
	scores := Scores{
		Hub:       []float64{0.1, 0.3, 0.3},
		Authority: []float64{0, 1, 0, 2, 0},
	}
	s, err := Assemble(in, vocab, scores, Config{Iterations: 3, TopSentences: 2, TopTokens: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third"}, s.SentenceKeys())
	assert.Equal(t, []string{"b", "e", "a"}, s.TokenStrings())
	assert.Equal(t, 3, s.Iterations)

	_, err = Assemble(in, vocab, Scores{Hub: []float64{1}}, DefaultConfig())
	var dim *DimensionError
	assert.ErrorAs(t, err, &dim)
}
