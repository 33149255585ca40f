// Package aggregate implements the aggregator and reduction layer (C8):
// SingleMetricState accumulates a per-sample score-triple stream;
// Reduction turns that stream into a name→number summary; Aggregator
// composes a Metric with a Reduction (and, via MultipleMetricFamilies,
// composes whole aggregators) into the single update/reset/compute
// surface a caller drives per evaluation run.
package aggregate

import (
	"github.com/google/uuid"

	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/mmerr"
)

// SingleMetricState is the running per-sample record of one evaluation
// stream: three parallel sequences holding, for each call to
// UpdateSingle, score_self(pred), score_self(ref) and compute(pred, ref)
// respectively. The three sequences always have equal length.
type SingleMetricState struct {
	metric metric.Metric
	sxy    []float64
	sxx    []float64
	syy    []float64
}

// NewSingleMetricState returns an empty state scored by m.
func NewSingleMetricState(m metric.Metric) *SingleMetricState {
	return &SingleMetricState{metric: m}
}

// Len reports the number of samples accumulated so far.
func (s *SingleMetricState) Len() int { return len(s.sxy) }

// Reset discards every accumulated sample.
func (s *SingleMetricState) Reset() {
	s.sxy, s.sxx, s.syy = nil, nil, nil
}

// UpdateSingle scores pred against ref and appends the resulting triple.
// If hooks is non-empty, the matching witness is run through them with a
// freshly minted data ID so a caller's hook can correlate every match
// emitted by this one call.
func (s *SingleMetricState) UpdateSingle(pred, ref any, hooks []matching.Selector) {
	sxx := s.metric.ScoreSelf(pred)
	syy := s.metric.ScoreSelf(ref)
	sxy, m := s.metric.Compute(pred, ref)
	if len(hooks) > 0 {
		m.RunWithHooks(hooks, uuid.New())
	}
	s.sxx = append(s.sxx, sxx)
	s.syy = append(s.syy, syy)
	s.sxy = append(s.sxy, sxy)
}

// UpdateBatch is UpdateSingle over zipped preds/refs; preds and refs must
// have equal length or this returns an error satisfying
// errors.Is(err, mmerr.ErrLengthMismatch).
func (s *SingleMetricState) UpdateBatch(preds, refs []any, hooks []matching.Selector) error {
	if len(preds) != len(refs) {
		return mmerr.ErrLengthMismatch
	}
	for i := range preds {
		s.UpdateSingle(preds[i], refs[i], hooks)
	}
	return nil
}

// Sample returns the (sxy, sxx, syy) triple recorded for the i-th call to
// UpdateSingle/UpdateBatch.
func (s *SingleMetricState) Sample(i int) (sxy, sxx, syy float64) {
	return s.sxy[i], s.sxx[i], s.syy[i]
}

// Totals returns (ΣSxy, ΣSxx, ΣSyy) across every accumulated sample.
func (s *SingleMetricState) Totals() (sxy, sxx, syy float64) {
	for i := range s.sxy {
		sxy += s.sxy[i]
		sxx += s.sxx[i]
		syy += s.syy[i]
	}
	return
}
