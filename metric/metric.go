// Package metric implements the metric algebra (C2): the Metric
// capability plus the combinators that compose metrics by structure —
// FromFunc, Contramap, Discrete, Product and Union. Collection-shaped
// combinators (set/sequence/graph/latent matching) live in package
// collection, which composes on top of this one.
package metric

import (
	"reflect"

	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metricpath"
)

// Metric is the central capability of the kernel: anything that can
// score two objects of the same shape and produce a matching witness,
// and score an object against itself (sometimes via a fast path).
// Metric values are built once from a type description and reused across
// many evaluations; they are immutable and reentrant.
type Metric interface {
	// Compute scores x against y and returns the matching witness
	// produced along the way.
	Compute(x, y any) (float64, matching.Matching)
	// ScoreSelf scores x against itself. In many cases there is a faster
	// way to compute this than the general pair case (e.g. Discrete
	// always returns 1); score_self(x) must still equal
	// Compute(x, x) for a fresh call.
	ScoreSelf(x any) float64
}

// Score is a convenience that runs Compute and discards the witness.
func Score(m Metric, x, y any) float64 {
	s, _ := m.Compute(x, y)
	return s
}

// GramMatrix computes the dense |xs| x |ys| table of pairwise scores.
func GramMatrix(m Metric, xs, ys []any) [][]float64 {
	out := make([][]float64, len(xs))
	for i, x := range xs {
		row := make([]float64, len(ys))
		for j, y := range ys {
			row[j] = Score(m, x, y)
		}
		out[i] = row
	}
	return out
}

// fromFunction wraps a binary user function as a Metric: Compute returns
// (f(x,y), a single match at the root); ScoreSelf falls back to f(x,x).
type fromFunction struct {
	f func(x, y any) float64
}

// FromFunction wraps a binary user function f(x, y) -> non-negative real
// as a Metric.
func FromFunction(f func(x, y any) float64) Metric {
	return &fromFunction{f: f}
}

func (m *fromFunction) Compute(x, y any) (float64, matching.Matching) {
	s := m.f(x, y)
	return s, matching.Single(matching.Match{Score: s, Pred: x, Ref: y})
}

func (m *fromFunction) ScoreSelf(x any) float64 {
	return m.f(x, x)
}

// contramapped wraps an inner metric, preprocessing each side with a
// function before delegating.
type contramapped struct {
	inner Metric
	fPred func(any) any
	fRef  func(any) any
}

// Contramap returns a metric that preprocesses the predicted side with
// fPred and the reference side with fRef before delegating to inner. Use
// Contramap1 when the same function applies to both sides.
func Contramap(inner Metric, fPred, fRef func(any) any) Metric {
	return &contramapped{inner: inner, fPred: fPred, fRef: fRef}
}

// Contramap1 is Contramap with a single preprocessing function applied
// symmetrically to both sides, the common case.
func Contramap1(inner Metric, f func(any) any) Metric {
	return Contramap(inner, f, f)
}

func (m *contramapped) Compute(x, y any) (float64, matching.Matching) {
	return m.inner.Compute(m.fPred(x), m.fRef(y))
}

func (m *contramapped) ScoreSelf(x any) float64 {
	return m.inner.ScoreSelf(m.fPred(x))
}

// discrete is a metric over a type with equality: 1 if equal, else 0.
type discrete struct{}

// Discrete returns the metric for a type with equality: Compute(x, y) is
// 1 if x == y (via reflect.DeepEqual, so it also covers non-comparable
// but equality-defined shapes such as slices/maps used as map-backed
// sets), else 0. ScoreSelf is always 1.
func Discrete() Metric {
	return discrete{}
}

func (discrete) Compute(x, y any) (float64, matching.Matching) {
	if reflect.DeepEqual(x, y) {
		return 1, matching.Single(matching.Match{Score: 1, Pred: x, Ref: y})
	}
	return 0, matching.Empty()
}

func (discrete) ScoreSelf(any) float64 { return 1 }

// IsDiscrete reports whether m is itself the Discrete metric; a metric
// that wraps Discrete (for example through Contramap) is not recognized.
// Used by collection.SetMatching to pick the multiset-intersection fast
// path.
func IsDiscrete(m Metric) bool {
	_, ok := m.(discrete)
	return ok
}

// FieldMetric names one field of a Product metric together with the
// metric used to score it.
type FieldMetric struct {
	Name   string
	Metric Metric
	Get    func(any) any
}

// product implements ProductMetric: multiplicative combination of
// per-field metrics on a record type.
type product struct {
	fields []FieldMetric
}

// Product returns the metric for a record-like (named-field) type: the
// product of each field's metric, with sub-matches path-prefixed by the
// field name. The field set is fixed at construction; an absent or
// zero-scoring field zeros the whole product (this is an intentional AND
// semantics, not an average).
func Product(fields ...FieldMetric) Metric {
	return &product{fields: fields}
}

func (m *product) Compute(x, y any) (float64, matching.Matching) {
	total := 1.0
	subs := make([]matching.Matching, 0, len(m.fields)+1)
	for _, f := range m.fields {
		fx, fy := f.Get(x), f.Get(y)
		s, sub := f.Metric.Compute(fx, fy)
		total *= s
		name := f.Name
		subs = append(subs, sub.MapPaths(func(p metricpath.Path) metricpath.Path {
			return p.PrependName(name)
		}))
	}
	root := matching.Match{Score: total, Pred: x, Ref: y}
	return total, matching.Concat(append([]matching.Matching{matching.Single(root)}, subs...)...)
}

func (m *product) ScoreSelf(x any) float64 {
	total := 1.0
	for _, f := range m.fields {
		total *= f.Metric.ScoreSelf(f.Get(x))
	}
	return total
}

// CaseMetric names one case of a Union metric: the discriminator tag and
// the metric used when both sides carry that tag.
type CaseMetric struct {
	Tag    any
	Metric Metric
}

// union implements UnionMetric: a runtime type/tag discriminator on x and
// y; mismatched tags score 0, matching tags delegate.
type union struct {
	cases map[any]Metric
	tagOf func(any) any
}

// Union returns the metric for a tagged union of case types: tagOf
// extracts the discriminator (commonly the dynamic type via
// reflect.TypeOf, or an explicit tag field), and cases lists the metric
// used for each known tag.
func Union(tagOf func(any) any, cases []CaseMetric) Metric {
	m := make(map[any]Metric, len(cases))
	for _, c := range cases {
		m[c.Tag] = c.Metric
	}
	return &union{cases: m, tagOf: tagOf}
}

func (m *union) Compute(x, y any) (float64, matching.Matching) {
	xt, yt := m.tagOf(x), m.tagOf(y)
	if xt != yt {
		return 0, matching.Empty()
	}
	inner, ok := m.cases[xt]
	if !ok {
		return 0, matching.Empty()
	}
	return inner.Compute(x, y)
}

func (m *union) ScoreSelf(any) float64 { return 1 }
