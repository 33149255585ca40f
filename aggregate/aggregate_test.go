package aggregate

import (
	"math"
	"testing"

	"github.com/grokify/go-metametric/collection"
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/mmerr"
	"github.com/grokify/go-metametric/normalize"
)

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func ints(vs ...int) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

var scalarFamily = []normalize.Scalar{
	normalize.Precision(), normalize.Recall(),
	normalize.NewFScore(1), normalize.NewFScore(0.5), normalize.NewFScore(2),
}

func TestMicroMacroAverageMultisetScenario(t *testing.T) {
	m := collection.SetMatching(metric.Discrete(), constraint.OneToOne)
	state := NewSingleMetricState(m)

	preds := [][]any{ints(0, 1), ints(2), ints(1, 2)}
	refs := [][]any{ints(0, 1, 2, 3), ints(2, 3), ints(1, 2, 3)}
	for i := range preds {
		state.UpdateSingle(preds[i], refs[i], nil)
	}

	micro := MicroAverage{Normalizers: scalarFamily}.Reduce(state)
	wantMicro := map[string]float64{
		"precision": 1.0,
		"recall":    5.0 / 9.0,
		"f1":        0.7142857,
		"f0.5":      0.8620690,
		"f2":        0.6097561,
	}
	for k, want := range wantMicro {
		if got := micro[k]; !approxEqual(got, want) {
			t.Errorf("micro[%s] = %v, want %v", k, got, want)
		}
	}

	macro := MacroAverage{Normalizers: scalarFamily}.Reduce(state)
	if !approxEqual(macro["precision"], micro["precision"]) || !approxEqual(macro["recall"], micro["recall"]) {
		t.Errorf("macro = %v, want ~= micro (symmetric sample counts) %v", macro, micro)
	}
}

func TestUpdateBatchLengthMismatch(t *testing.T) {
	state := NewSingleMetricState(metric.Discrete())
	err := state.UpdateBatch(ints(1, 2), ints(1), nil)
	if err == nil || err != mmerr.ErrLengthMismatch {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestMultipleReductionsPrefixesKeys(t *testing.T) {
	m := collection.SetMatching(metric.Discrete(), constraint.OneToOne)
	state := NewSingleMetricState(m)
	state.UpdateSingle(ints(0, 1), ints(0, 1, 2, 3), nil)

	red := MultipleReductions{
		"micro": MicroAverage{Normalizers: []normalize.Scalar{normalize.Precision()}},
		"":      MicroAverage{Normalizers: []normalize.Scalar{normalize.Recall()}},
	}
	out := red.Reduce(state)
	if _, ok := out["micro.precision"]; !ok {
		t.Errorf("expected prefixed key micro.precision in %v", out)
	}
	if _, ok := out["recall"]; !ok {
		t.Errorf("expected bare key recall (empty prefix) in %v", out)
	}
}

func TestMetricFamilyAggregatorRoundTrip(t *testing.T) {
	m := collection.SetMatching(metric.Discrete(), constraint.OneToOne)
	agg := MetricFamily(m, MicroAverage{Normalizers: []normalize.Scalar{normalize.Precision()}})

	if err := agg.UpdateBatch(
		[]any{ints(0, 1), ints(2)},
		[]any{ints(0, 1, 2, 3), ints(2, 3)},
		nil,
	); err != nil {
		t.Fatalf("UpdateBatch: %v", err)
	}
	out := agg.Compute()
	if !approxEqual(out["precision"], 1.0) {
		t.Errorf("precision = %v, want 1.0", out["precision"])
	}
	agg.Reset()
	out = agg.Compute()
	if got := out["precision"]; !math.IsNaN(got) {
		t.Errorf("after Reset, precision = %v, want NaN (0/0 over an empty state)", got)
	}
}

func TestMultipleMetricFamiliesAndSuiteWithExtra(t *testing.T) {
	m := collection.SetMatching(metric.Discrete(), constraint.OneToOne)
	precisionAgg := MetricFamily(m, MicroAverage{Normalizers: []normalize.Scalar{normalize.Precision()}})
	recallAgg := MetricFamily(m, MicroAverage{Normalizers: []normalize.Scalar{normalize.Recall()}})
	suite := MultipleMetricFamilies(map[string]Aggregator{
		"p": precisionAgg,
		"r": recallAgg,
	})
	withExtra := SuiteWithExtra(suite, func(result map[string]float64) map[string]float64 {
		return map[string]float64{"combined": result["p.precision"] + result["r.recall"]}
	})

	if err := withExtra.UpdateSingle(ints(0, 1), ints(0, 1, 2, 3), nil); err != nil {
		t.Fatalf("UpdateSingle: %v", err)
	}
	out := withExtra.Compute()
	if !approxEqual(out["p.precision"], 1.0) {
		t.Errorf("p.precision = %v, want 1.0", out["p.precision"])
	}
	if !approxEqual(out["r.recall"], 0.5) {
		t.Errorf("r.recall = %v, want 0.5", out["r.recall"])
	}
	if !approxEqual(out["combined"], 1.5) {
		t.Errorf("combined = %v, want 1.5", out["combined"])
	}
}
