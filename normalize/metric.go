package normalize

import (
	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/metricpath"
)

// NormalizedMetric wraps an inner metric so that Compute's score is run
// through a Scalar normalizer; this keeps a normalized score a Metric in
// its own right; ScoreSelf is always 1 since a normalized score is
// already self-bounded.
type NormalizedMetric struct {
	Inner      metric.Metric
	Normalizer Scalar
}

// Normalize returns the metric for inner normalized by n.
func Normalize(inner metric.Metric, n Scalar) metric.Metric {
	return &NormalizedMetric{Inner: inner, Normalizer: n}
}

func (m *NormalizedMetric) Compute(x, y any) (float64, matching.Matching) {
	sxy, innerMatching := m.Inner.Compute(x, y)
	sxx := m.Inner.ScoreSelf(x)
	syy := m.Inner.ScoreSelf(y)
	normalized := m.Normalizer.Normalize(sxy, sxx, syy)

	out := innerMatching.MapPaths(func(p metricpath.Path) metricpath.Path { return p })
	result := matching.FromFunc(func(yield func(matching.Match) bool) {
		emittedRoot := false
		out.Each(func(mt matching.Match) bool {
			if mt.PredPath.IsRoot() && mt.RefPath.IsRoot() {
				if emittedRoot {
					return true
				}
				emittedRoot = true
				return yield(matching.Match{Score: normalized, Pred: x, Ref: y})
			}
			return yield(mt)
		})
	})
	return normalized, result
}

func (m *NormalizedMetric) ScoreSelf(any) float64 { return 1 }
