package collection

import (
	"reflect"

	"github.com/grokify/go-metametric/assignment"
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
)

// setMatching implements SetMatching: the metric derived from matching
// two collections treated as sets/multisets, under a matching-cardinality
// constraint.
type setMatching struct {
	inner metric.Metric
	kind  constraint.Kind
}

// SetMatching returns the metric for a collection type compared as a
// set/multiset: elements are paired under kind, scored by inner, and the
// collection's score is the total of the selected pairing.
func SetMatching(inner metric.Metric, kind constraint.Kind) metric.Metric {
	return &setMatching{inner: inner, kind: kind}
}

func (m *setMatching) Compute(xv, yv any) (float64, matching.Matching) {
	x, y := asSlice(xv), asSlice(yv)
	if len(x) == 0 && len(y) == 0 {
		return 1, matching.Single(rootMatch(xv, yv, 1))
	}
	if len(x) == 0 || len(y) == 0 {
		return 0, matching.Empty()
	}
	if metric.IsDiscrete(m.inner) && m.kind == constraint.OneToOne {
		score, pairs := multisetIntersection(x, y)
		return score, matchingFromPairs(xv, yv, x, y, score, pairs)
	}
	gram := gramMatrix(m.inner, x, y)
	var score float64
	var pairs []assignment.Pair
	switch m.kind {
	case constraint.OneToOne:
		score, pairs = assignment.MaxMatching(gram)
	case constraint.OneToMany:
		score, pairs = assignment.ColumnArgmax(gram)
	case constraint.ManyToOne:
		score, pairs = assignment.RowArgmax(gram)
	case constraint.ManyToMany:
		score, pairs = assignment.SumAll(gram)
	}
	return score, matchingFromPairs(xv, yv, x, y, score, pairs)
}

func (m *setMatching) ScoreSelf(xv any) float64 {
	x := asSlice(xv)
	if len(x) == 0 {
		return 1
	}
	switch m.kind {
	case constraint.ManyToMany:
		return sumMatrix(gramMatrix(m.inner, x, x))
	case constraint.OneToOne:
		total := 0.0
		for _, u := range x {
			total += m.inner.ScoreSelf(u)
		}
		return total
	default:
		return metric.Score(m, xv, xv)
	}
}

// multisetIntersection counts the Discrete multiset intersection of x
// and y (the fast path used when inner is Discrete and kind is 1:1): it
// greedily pairs each x[i] with the first not-yet-used y[j] it is equal
// to, which reproduces the same count as a Counter intersection while
// also recording which original indices were paired.
func multisetIntersection(x, y []any) (float64, []assignment.Pair) {
	usedY := make([]bool, len(y))
	var pairs []assignment.Pair
	for i, u := range x {
		for j, v := range y {
			if usedY[j] {
				continue
			}
			if reflect.DeepEqual(u, v) {
				usedY[j] = true
				pairs = append(pairs, assignment.Pair{Row: i, Col: j, Score: 1})
				break
			}
		}
	}
	return float64(len(pairs)), pairs
}
