// Package collection implements the collection-shaped metric combinators
// (C6): SetMatching, SequenceMatching, GraphMatching, and
// LatentSetMatching. All four compose an inner metric.Metric over the
// elements of a collection with a matching-cardinality constraint,
// dispatching to the assignment solver (C4) or the ILP solver (C5)
// depending on shape and constraint.
package collection

import (
	"github.com/grokify/go-metametric/assignment"
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/ilp"
	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/metricpath"
)

func rootMatch(x, y any, score float64) matching.Match {
	return matching.Match{Score: score, Pred: x, Ref: y}
}

// matchingFromPairs builds the flat witness Matching for a collection
// match: a root match between rootX and rootY at the collection's own
// score, plus one match per selected (i, j, score) pair indexing into xs
// and ys, each path-prefixed by its own index on its own side (the pred
// and ref sides are independently indexed, so this cannot be expressed
// as a single MapPaths prefix the way Product's same-named field
// prefixing is).
func matchingFromPairs(rootX, rootY any, xs, ys []any, rootScore float64, pairs []assignment.Pair) matching.Matching {
	ms := make([]matching.Match, 0, len(pairs)+1)
	ms = append(ms, rootMatch(rootX, rootY, rootScore))
	for _, p := range pairs {
		ms = append(ms, matching.Match{
			PredPath: metricpath.Root().Append(metricpath.Index(p.Row)),
			Pred:     xs[p.Row],
			RefPath:  metricpath.Root().Append(metricpath.Index(p.Col)),
			Ref:      ys[p.Col],
			Score:    p.Score,
		})
	}
	return matching.Of(ms)
}

func gramMatrix(m metric.Metric, x, y []any) [][]float64 {
	return metric.GramMatrix(m, x, y)
}

func sumMatrix(g [][]float64) float64 {
	total := 0.0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// matchingFromSelected is matchingFromPairs's counterpart for ILP
// results, where selected pairs are reported as ilp.Selected (I, J,
// Score) rather than assignment.Pair (Row, Col, Score).
func matchingFromSelected(rootX, rootY any, xs, ys []any, rootScore float64, selected []ilp.Selected) matching.Matching {
	pairs := make([]assignment.Pair, len(selected))
	for i, s := range selected {
		pairs[i] = assignment.Pair{Row: s.I, Col: s.J, Score: s.Score}
	}
	return matchingFromPairs(rootX, rootY, xs, ys, rootScore, pairs)
}
