package hits

import (
	"cmp"
	"slices"
)

// Ranked is a label with the score it was ranked by.
type Ranked struct {
	Label string  `json:"label" yaml:"label"`
	Score float64 `json:"score" yaml:"score"`
}

// Select pairs labels with scores, orders them by descending score and keeps
// the first limit entries (all of them for Unlimited). The sort is stable:
// equal scores keep their input order.
func Select(labels []string, scores []float64, limit int) ([]Ranked, error) {
	if len(labels) != len(scores) {
		return nil, &DimensionError{What: "label count", Expected: len(scores), Actual: len(labels)}
	}
	if limit < Unlimited {
		return nil, ErrInvalidLimit
	}
	ranked := make([]Ranked, len(labels))
	for i := range labels {
		ranked[i] = Ranked{Label: labels[i], Score: scores[i]}
	}
	slices.SortStableFunc(ranked, cmpRankedDesc)
	if limit != Unlimited && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func cmpRankedDesc(a, b Ranked) int {
	return cmp.Compare(b.Score, a.Score)
}

// Labels returns the labels of r in order.
func Labels(r []Ranked) []string {
	out := make([]string, len(r))
	for i := range r {
		out[i] = r[i].Label
	}
	return out
}
