package collection

import (
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/graphutil"
	"github.com/grokify/go-metametric/ilp"
	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
)

// graphMatching implements GraphMatching: the metric derived from
// matching the nodes of two graphs (trees, DAGs, or general graphs),
// with a monotonicity constraint that forbids selecting two node pairs
// whose reachability relationship disagrees between the two graphs.
type graphMatching struct {
	inner metric.Metric
	kind  constraint.Kind
}

// GraphMatching returns the metric for a graph-shaped type: node pairs
// are scored by inner and selected by ILP under kind's cardinality plus
// a reachability-monotonicity constraint.
func GraphMatching(inner metric.Metric, kind constraint.Kind) metric.Metric {
	return &graphMatching{inner: inner, kind: kind}
}

func (m *graphMatching) Compute(xv, yv any) (float64, matching.Matching) {
	xg := xv.(graphutil.Graph[any])
	yg := yv.(graphutil.Graph[any])
	xNodes := xg.Nodes()
	yNodes := yg.Nodes()
	gram := gramMatrix(m.inner, xNodes, yNodes)
	xReach := graphutil.ReachabilityMatrix[any](xg)
	yReach := graphutil.ReachabilityMatrix[any](yg)

	problem := ilp.NewMatchingProblem(gram, 0, 0)
	problem.AddMatchingConstraint(m.kind)
	problem.AddMonotonicityConstraint(xReach, yReach)
	score, selected, err := problem.Solve()
	if err != nil {
		return 0, matching.Empty()
	}
	return score, matchingFromSelected(xv, yv, xNodes, yNodes, score, selected)
}

func (m *graphMatching) ScoreSelf(xv any) float64 {
	if m.kind == constraint.ManyToMany {
		xg := xv.(graphutil.Graph[any])
		return sumMatrix(gramMatrix(m.inner, xg.Nodes(), xg.Nodes()))
	}
	return metric.Score(m, xv, xv)
}
