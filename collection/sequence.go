package collection

import (
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
)

// sequenceMatching implements SequenceMatching: the metric derived from
// aligning two ordered sequences via a dynamic-programming recurrence
// akin to weighted LCS/edit alignment, under a matching-cardinality
// constraint that controls whether an element can align to more than
// one element on the other side.
type sequenceMatching struct {
	inner metric.Metric
	kind  constraint.Kind
}

// SequenceMatching returns the metric for an ordered-sequence type: the
// same element-wise scoring as SetMatching, but alignment must respect
// sequence order (no crossing pairs).
//
// The returned metric's witness is always empty: the DP recurrence only
// tracks the optimal score at each table cell, not which choice produced
// it, so recovering an explicit alignment would need a second backward
// pass this metric does not perform. Matches the original implementation,
// which leaves this as a known gap.
func SequenceMatching(inner metric.Metric, kind constraint.Kind) metric.Metric {
	return &sequenceMatching{inner: inner, kind: kind}
}

func (m *sequenceMatching) Compute(xv, yv any) (float64, matching.Matching) {
	x, y := asSlice(xv), asSlice(yv)
	g := gramMatrix(m.inner, x, y)
	nx, ny := len(x), len(y)
	f := make([][]float64, nx+1)
	for i := range f {
		f[i] = make([]float64, ny+1)
	}
	for i := 1; i <= nx; i++ {
		for j := 1; j <= ny; j++ {
			cell := g[i-1][j-1]
			best := max3(f[i-1][j-1]+cell, f[i-1][j], f[i][j-1])
			switch m.kind {
			case constraint.OneToMany:
				best = max2(best, f[i][j-1]+cell)
			case constraint.ManyToOne:
				best = max2(best, f[i-1][j]+cell)
			case constraint.ManyToMany:
				best = max2(best, f[i][j-1]+cell)
				best = max2(best, f[i-1][j]+cell)
			}
			f[i][j] = best
		}
	}
	return f[nx][ny], matching.Empty()
}

func (m *sequenceMatching) ScoreSelf(xv any) float64 {
	x := asSlice(xv)
	if m.kind == constraint.OneToOne {
		total := 0.0
		for _, u := range x {
			total += m.inner.ScoreSelf(u)
		}
		return total
	}
	return metric.Score(m, xv, xv)
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c float64) float64 {
	return max2(max2(a, b), c)
}
