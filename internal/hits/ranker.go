package hits

import "gonum.org/v1/gonum/floats"

// Scores holds one hub score per sentence and one authority score per token.
type Scores struct {
	Hub       []float64
	Authority []float64
}

// PowerIterate runs exactly iterations rounds of
//
//	hub       = normalize(M · authority)
//	authority = normalize(Mᵗ · hub)
//
// starting from all-ones vectors. With zero iterations the all-ones pair is
// returned unnormalized. There is no convergence test: disconnected or
// periodic structures may oscillate between rounds.
//
// A vector whose L2 norm is exactly zero is left as is instead of being
// divided, so empty rows or columns never produce NaN.
func PowerIterate(m *Matrix, iterations int) (Scores, error) {
	if iterations < 0 {
		return Scores{}, ErrNegativeIterations
	}
	hub := ones(m.Rows())
	authority := ones(m.Cols())
	for k := 0; k < iterations; k++ {
		if err := m.MulVec(hub, authority); err != nil {
			return Scores{}, err
		}
		normalize(hub)
		if err := m.MulTransVec(authority, hub); err != nil {
			return Scores{}, err
		}
		normalize(authority)
	}
	return Scores{Hub: hub, Authority: authority}, nil
}

// normalize scales v to unit L2 norm in place. It returns false and leaves
// v untouched when the norm is zero.
func normalize(v []float64) bool {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return false
	}
	floats.Scale(1/norm, v)
	return true
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
