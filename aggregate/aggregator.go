package aggregate

import (
	"context"

	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/grokify/go-metametric/matching"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/mmerr"
)

// Aggregator owns one or more MetricStates and a Reduction over them:
// update_single/update_batch accumulate samples, reset discards them, and
// compute runs the reduction(s). MetricFamily, MultipleMetricFamilies and
// SuiteWithExtra are the three ways a MetricSuite builds one.
type Aggregator interface {
	UpdateSingle(pred, ref any, hooks []matching.Selector) error
	UpdateBatch(preds, refs []any, hooks []matching.Selector) error
	Reset()
	Compute() map[string]float64
}

// metricFamily is an Aggregator over a single Metric and Reduction pair —
// the leaf case of a MetricSuite.
type metricFamily struct {
	state     *SingleMetricState
	reduction Reduction
	histogram otelmetric.Float64Histogram
}

// MetricFamily returns an Aggregator for one metric/reduction pair. A
// WithMeter option, if given, records each sample's raw score_xy into an
// OTel histogram as it is accumulated — a no-op unless supplied.
func MetricFamily(m metric.Metric, r Reduction, opts ...Option) Aggregator {
	f := &metricFamily{state: NewSingleMetricState(m), reduction: r}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *metricFamily) UpdateSingle(pred, ref any, hooks []matching.Selector) error {
	before := f.state.Len()
	f.state.UpdateSingle(pred, ref, hooks)
	if f.histogram != nil {
		sxy, _, _ := f.state.Sample(before)
		f.histogram.Record(context.Background(), sxy)
	}
	return nil
}

func (f *metricFamily) UpdateBatch(preds, refs []any, hooks []matching.Selector) error {
	if len(preds) != len(refs) {
		return mmerr.ErrLengthMismatch
	}
	for i := range preds {
		if err := f.UpdateSingle(preds[i], refs[i], hooks); err != nil {
			return err
		}
	}
	return nil
}

func (f *metricFamily) Reset() { f.state.Reset() }

func (f *metricFamily) Compute() map[string]float64 { return f.reduction.Reduce(f.state) }

// multipleMetricFamilies routes update/reset/compute across several named
// sub-aggregators, each scoring the same (pred, ref) pair independently.
type multipleMetricFamilies map[string]Aggregator

// MultipleMetricFamilies returns an Aggregator that fans every update out
// to each named sub-aggregator and, on Compute, concatenates their
// results with "name."-prefixed keys.
func MultipleMetricFamilies(subs map[string]Aggregator) Aggregator {
	return multipleMetricFamilies(subs)
}

func (a multipleMetricFamilies) UpdateSingle(pred, ref any, hooks []matching.Selector) error {
	for _, sub := range a {
		if err := sub.UpdateSingle(pred, ref, hooks); err != nil {
			return err
		}
	}
	return nil
}

func (a multipleMetricFamilies) UpdateBatch(preds, refs []any, hooks []matching.Selector) error {
	for _, sub := range a {
		if err := sub.UpdateBatch(preds, refs, hooks); err != nil {
			return err
		}
	}
	return nil
}

func (a multipleMetricFamilies) Reset() {
	for _, sub := range a {
		sub.Reset()
	}
}

func (a multipleMetricFamilies) Compute() map[string]float64 {
	out := make(map[string]float64)
	for name, sub := range a {
		for k, v := range sub.Compute() {
			out[joinKey(name, k)] = v
		}
	}
	return out
}

// suiteWithExtra wraps an Aggregator, merging an extra closure's output
// (computed from the wrapped aggregator's own Compute result) into every
// Compute call.
type suiteWithExtra struct {
	inner Aggregator
	extra func(map[string]float64) map[string]float64
}

// SuiteWithExtra returns an Aggregator that delegates update/reset to
// inner, and on Compute merges extra(innerResult) into inner's result.
func SuiteWithExtra(inner Aggregator, extra func(map[string]float64) map[string]float64) Aggregator {
	return &suiteWithExtra{inner: inner, extra: extra}
}

func (a *suiteWithExtra) UpdateSingle(pred, ref any, hooks []matching.Selector) error {
	return a.inner.UpdateSingle(pred, ref, hooks)
}

func (a *suiteWithExtra) UpdateBatch(preds, refs []any, hooks []matching.Selector) error {
	return a.inner.UpdateBatch(preds, refs, hooks)
}

func (a *suiteWithExtra) Reset() { a.inner.Reset() }

func (a *suiteWithExtra) Compute() map[string]float64 {
	out := a.inner.Compute()
	merged := make(map[string]float64, len(out))
	for k, v := range out {
		merged[k] = v
	}
	for k, v := range a.extra(out) {
		merged[k] = v
	}
	return merged
}
