package aggregate

import "github.com/grokify/go-metametric/normalize"

// Reduction is a pure, stateless function from a SingleMetricState's
// accumulated sample stream to a name→number summary.
type Reduction interface {
	Reduce(state *SingleMetricState) map[string]float64
}

// MicroAverage sums score_xy, score_xx and score_yy across every sample
// first, then applies each normalizer once to the totals — precision and
// recall computed over the pooled totals rather than averaged per-sample.
type MicroAverage struct {
	Normalizers []normalize.Scalar
}

// Reduce implements Reduction.
func (r MicroAverage) Reduce(state *SingleMetricState) map[string]float64 {
	sxy, sxx, syy := state.Totals()
	out := make(map[string]float64, len(r.Normalizers))
	for _, n := range r.Normalizers {
		out[n.Name()] = n.Normalize(sxy, sxx, syy)
	}
	return out
}

// MacroAverage applies every normalizer to each sample's own triple, then
// averages each normalizer's values across samples.
type MacroAverage struct {
	Normalizers []normalize.Scalar
}

// Reduce implements Reduction.
func (r MacroAverage) Reduce(state *SingleMetricState) map[string]float64 {
	out := make(map[string]float64, len(r.Normalizers))
	n := state.Len()
	if n == 0 {
		for _, nz := range r.Normalizers {
			out[nz.Name()] = 0
		}
		return out
	}
	for _, nz := range r.Normalizers {
		var sum float64
		for i := 0; i < n; i++ {
			sxy, sxx, syy := state.Sample(i)
			sum += nz.Normalize(sxy, sxx, syy)
		}
		out[nz.Name()] = sum / float64(n)
	}
	return out
}

// MultipleReductions runs every named sub-reduction against the same
// state and concatenates their output keys, prefixing each with its map
// key joined by ".". The "" key is emitted bare, unprefixed.
type MultipleReductions map[string]Reduction

// Reduce implements Reduction.
func (r MultipleReductions) Reduce(state *SingleMetricState) map[string]float64 {
	out := make(map[string]float64)
	for prefix, sub := range r {
		for k, v := range sub.Reduce(state) {
			out[joinKey(prefix, k)] = v
		}
	}
	return out
}

// ReductionWithExtra computes r's result, then merges in whatever f
// derives from that result (e.g. a combined score computed from several
// of r's named outputs).
type ReductionWithExtra struct {
	Reduction Reduction
	Extra     func(result map[string]float64) map[string]float64
}

// Reduce implements Reduction.
func (r ReductionWithExtra) Reduce(state *SingleMetricState) map[string]float64 {
	out := r.Reduction.Reduce(state)
	merged := make(map[string]float64, len(out))
	for k, v := range out {
		merged[k] = v
	}
	for k, v := range r.Extra(out) {
		merged[k] = v
	}
	return merged
}

func joinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
