package collection

import (
	"reflect"

	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/ilp"
	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
)

// FieldBinding names one (a, b) field pair on a candidate item pair
// whose values are both latent Variables: matching the item forces
// binding the variables. The variablesOf function passed to
// LatentSetMatching extracts the Variable values inside an item; the one
// package derive supplies walks nested records/collections recursively,
// matching the original implementation's `_all_variables` walk.
type FieldBinding struct {
	A, B any
}

// latentSetMatching implements LatentSetMatching: SetMatching extended
// with an ILP variable-binding constraint over latent Variables embedded
// in the compared items.
type latentSetMatching struct {
	inner       metric.Metric
	kind        constraint.Kind
	variablesOf func(item any) []any
	bindingsOf  func(a, b any) []FieldBinding
}

// LatentSetMatching returns the metric for a collection of record items
// that carry latent Variable-typed fields: item pairing and variable
// binding are solved jointly by ILP so that matching two items forces
// their shared variables to bind to each other. variablesOf extracts
// every Variable reachable from one item; bindingsOf returns, for one
// candidate item pair, the Variable field pairs that must bind together
// if the items are matched.
func LatentSetMatching(inner metric.Metric, kind constraint.Kind, variablesOf func(any) []any, bindingsOf func(a, b any) []FieldBinding) metric.Metric {
	return &latentSetMatching{inner: inner, kind: kind, variablesOf: variablesOf, bindingsOf: bindingsOf}
}

func (m *latentSetMatching) Compute(xv, yv any) (float64, matching.Matching) {
	x, y := asSlice(xv), asSlice(yv)
	if len(x) == 0 && len(y) == 0 {
		return 1, matching.Single(rootMatch(xv, yv, 1))
	}
	if len(x) == 0 || len(y) == 0 {
		return 0, matching.Empty()
	}

	xVars := uniqueVariables(x, m.variablesOf)
	yVars := uniqueVariables(y, m.variablesOf)

	gram := gramMatrix(m.inner, x, y)
	problem := ilp.NewMatchingProblem(gram, len(xVars), len(yVars))
	problem.AddMatchingConstraint(m.kind)
	problem.AddVariableMatchingConstraint()

	var bindings []ilp.LatentBinding
	for i, a := range x {
		for j, b := range y {
			if gram[i][j] <= 0 {
				continue
			}
			for _, fb := range m.bindingsOf(a, b) {
				p := indexOfVariable(xVars, fb.A)
				q := indexOfVariable(yVars, fb.B)
				if p >= 0 && q >= 0 {
					bindings = append(bindings, ilp.LatentBinding{I: i, J: j, P: p, Q: q})
				}
			}
		}
	}
	problem.AddLatentVariableConstraint(bindings)

	score, selected, err := problem.Solve()
	if err != nil {
		return 0, matching.Empty()
	}
	return score, matchingFromSelected(xv, yv, x, y, score, selected)
}

func (m *latentSetMatching) ScoreSelf(xv any) float64 {
	inner := &setMatching{inner: m.inner, kind: m.kind}
	return inner.ScoreSelf(xv)
}

func uniqueVariables(items []any, variablesOf func(any) []any) []any {
	var out []any
	for _, item := range items {
		for _, v := range variablesOf(item) {
			if indexOfVariable(out, v) < 0 {
				out = append(out, v)
			}
		}
	}
	return out
}

func indexOfVariable(vars []any, v any) int {
	for i, u := range vars {
		if reflect.DeepEqual(u, v) {
			return i
		}
	}
	return -1
}
