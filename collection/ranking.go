package collection

import (
	"github.com/grokify/go-metametric/assignment"
	"github.com/grokify/go-metametric/metric"
)

// WeightedItem pairs a ranked value with a weight applied to its
// contribution to the ranking score — not the value's own rank score,
// but an external importance weight (e.g. an IDF weight, a relevance
// grade).
type WeightedItem struct {
	Value  any
	Weight float64
}

// WeightedRankingMetric scores a descending-order ranking of weighted
// items against a reference ranking: at every cutoff k, it reports the
// running total score achievable using only the first k predicted
// items. Feeds the precision@k/recall@k/ranking_ap normalizers (see
// package normalize), which expect a triple of such cumulative-sum
// vectors (score_xy, score_xx, score_yy).
//
// Like SequenceMatching, this metric's witness is always empty: the
// original implementation does not reconstruct one for ranking metrics
// either.
type WeightedRankingMetric struct {
	Inner metric.Metric
	MaxK  int
}

// NewWeightedRankingMetric returns a WeightedRankingMetric scoring up to
// maxK predicted items.
func NewWeightedRankingMetric(inner metric.Metric, maxK int) *WeightedRankingMetric {
	return &WeightedRankingMetric{Inner: inner, MaxK: maxK}
}

// Compute returns the cumulative score-at-cutoff-k vector (length MaxK,
// padded by repeating the last computed value) for ranking x against
// reference y.
func (m *WeightedRankingMetric) Compute(x, y []WeightedItem) []float64 {
	xTrunc := x
	if len(xTrunc) > m.MaxK {
		xTrunc = xTrunc[:m.MaxK]
	}
	out := make([]float64, m.MaxK)

	if metric.IsDiscrete(m.Inner) {
		yWeight := make(map[any]float64, len(y))
		for _, item := range y {
			yWeight[item.Value] = item.Weight
		}
		sum := 0.0
		for k := 0; k < m.MaxK; k++ {
			if k < len(xTrunc) {
				u := xTrunc[k]
				sum += yWeight[u.Value] * u.Weight
			}
			out[k] = sum
		}
		return out
	}

	xs := make([]any, len(xTrunc))
	xw := make([]float64, len(xTrunc))
	for i, u := range xTrunc {
		xs[i] = u.Value
		xw[i] = u.Weight
	}
	ys := make([]any, len(y))
	yw := make([]float64, len(y))
	for j, v := range y {
		ys[j] = v.Value
		yw[j] = v.Weight
	}
	gram := gramMatrix(m.Inner, xs, ys)
	for i := range gram {
		for j := range gram[i] {
			gram[i][j] *= xw[i] * yw[j]
		}
	}

	k := 0
	assignment.IterativeMaxMatching(gram, func(s assignment.Step) bool {
		if k < m.MaxK {
			out[k] = s.Total
		}
		k++
		return k < m.MaxK
	})
	// Pad from len(xTrunc) onward by repeating the score at len(xTrunc)-1,
	// matching the original's match_sum[x_trunc_len:] = match_sum[x_trunc_len - 1]:
	// when y is shorter than xTrunc, the alternating tree yields fewer than
	// len(xTrunc) steps and anything between the last yielded step and
	// len(xTrunc)-1 stays at its zero-initialized value, same as upstream.
	if n := len(xTrunc); n > 0 && n <= m.MaxK {
		for k := n; k < m.MaxK; k++ {
			out[k] = out[n-1]
		}
	}
	return out
}

// ScoreSelf returns the cumulative self-score vector for x.
func (m *WeightedRankingMetric) ScoreSelf(x []WeightedItem) []float64 {
	xTrunc := x
	if len(xTrunc) > m.MaxK {
		xTrunc = xTrunc[:m.MaxK]
	}
	out := make([]float64, m.MaxK)
	sum := 0.0
	last := 0.0
	for k := 0; k < m.MaxK; k++ {
		if k < len(xTrunc) {
			u := xTrunc[k]
			sum += m.Inner.ScoreSelf(u.Value) * u.Weight * u.Weight
			last = sum
		}
		out[k] = last
	}
	return out
}

// RankingMetric is WeightedRankingMetric with every item's weight fixed
// at 1 — the unweighted ranking metric.
type RankingMetric struct {
	weighted *WeightedRankingMetric
}

// NewRankingMetric returns an unweighted ranking metric over up to maxK
// items.
func NewRankingMetric(inner metric.Metric, maxK int) *RankingMetric {
	return &RankingMetric{weighted: NewWeightedRankingMetric(inner, maxK)}
}

func unitWeighted(xs []any) []WeightedItem {
	out := make([]WeightedItem, len(xs))
	for i, v := range xs {
		out[i] = WeightedItem{Value: v, Weight: 1}
	}
	return out
}

// Compute returns the cumulative score-at-cutoff-k vector for ranking x
// against reference y, both plain (unweighted) value slices.
func (m *RankingMetric) Compute(x, y []any) []float64 {
	return m.weighted.Compute(unitWeighted(x), unitWeighted(y))
}

// ScoreSelf returns the cumulative self-score vector for x.
func (m *RankingMetric) ScoreSelf(x []any) []float64 {
	return m.weighted.ScoreSelf(unitWeighted(x))
}
