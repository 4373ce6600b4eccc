package hits

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Matrix is a binary sentence×token incidence matrix in compressed sparse
// row form. Only the positions of ones are stored. Rows hold strictly
// increasing column indices. A Matrix is never modified after construction.
type Matrix struct {
	rows   int
	cols   int
	rowPtr []int
	colIdx []int
}

// BuildMatrix sets M[i][j] = 1 for every token j of sentence i. Repeated
// tokens within a sentence do not add weight.
func BuildMatrix(sentences []Sentence, vocab *Vocabulary) (*Matrix, error) {
	m := &Matrix{
		rows:   len(sentences),
		cols:   vocab.Len(),
		rowPtr: make([]int, 1, len(sentences)+1),
	}
	row := roaring.New()
	for i, s := range sentences {
		row.Clear()
		for _, tok := range s.Tokens {
			j, ok := vocab.Index(tok)
			if !ok {
				return nil, fmt.Errorf("sentence %d: %q: %w", i, tok, ErrUnknownToken)
			}
			row.Add(uint32(j))
		}
		m.appendRow(row)
	}
	return m, nil
}

// NewMatrix builds a matrix with the given column count from explicit
// per-row column lists. Duplicates within a row collapse to a single one.
func NewMatrix(cols int, rows [][]int) (*Matrix, error) {
	if cols < 0 {
		return nil, &DimensionError{What: "column count", Expected: 0, Actual: cols}
	}
	m := &Matrix{
		rows:   len(rows),
		cols:   cols,
		rowPtr: make([]int, 1, len(rows)+1),
	}
	row := roaring.New()
	for _, r := range rows {
		row.Clear()
		for _, j := range r {
			if j < 0 || j >= cols {
				return nil, &DimensionError{What: "column index bound", Expected: cols, Actual: j}
			}
			row.Add(uint32(j))
		}
		m.appendRow(row)
	}
	return m, nil
}

func (m *Matrix) appendRow(row *roaring.Bitmap) {
	it := row.Iterator()
	for it.HasNext() {
		m.colIdx = append(m.colIdx, int(it.Next()))
	}
	m.rowPtr = append(m.rowPtr, len(m.colIdx))
}

// Rows is the number of sentences.
func (m *Matrix) Rows() int { return m.rows }

// Cols is the vocabulary size.
func (m *Matrix) Cols() int { return m.cols }

// NNZ is the number of ones.
func (m *Matrix) NNZ() int { return len(m.colIdx) }

// Row returns the columns set in row i. The slice must not be modified.
func (m *Matrix) Row(i int) []int {
	return m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]:m.rowPtr[i+1]]
}

// At reports whether M[i][j] is one.
func (m *Matrix) At(i, j int) bool {
	for _, c := range m.Row(i) {
		if c == j {
			return true
		}
		if c > j {
			break
		}
	}
	return false
}

// MulVec sets dst = M·x.
func (m *Matrix) MulVec(dst, x []float64) error {
	if len(x) != m.cols {
		return &DimensionError{What: "input vector length", Expected: m.cols, Actual: len(x)}
	}
	if len(dst) != m.rows {
		return &DimensionError{What: "output vector length", Expected: m.rows, Actual: len(dst)}
	}
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for _, j := range m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]] {
			sum += x[j]
		}
		dst[i] = sum
	}
	return nil
}

// MulTransVec sets dst = Mᵗ·x. Rows are scattered in order, so every column
// sum accumulates its terms in increasing row order.
func (m *Matrix) MulTransVec(dst, x []float64) error {
	if len(x) != m.rows {
		return &DimensionError{What: "input vector length", Expected: m.rows, Actual: len(x)}
	}
	if len(dst) != m.cols {
		return &DimensionError{What: "output vector length", Expected: m.cols, Actual: len(dst)}
	}
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < m.rows; i++ {
		xi := x[i]
		for _, j := range m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]] {
			dst[j] += xi
		}
	}
	return nil
}
