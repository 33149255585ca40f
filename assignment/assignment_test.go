package assignment

import "testing"

func TestMaxMatchingSquare(t *testing.T) {
	cost := [][]float64{
		{1, 2},
		{3, 1},
	}
	total, matches := MaxMatching(cost)
	if total != 5 {
		t.Errorf("total = %v, want 5 (match (0,1)+(1,0): 2+3)", total)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
}

func TestMaxMatchingTransposeWhenTaller(t *testing.T) {
	cost := [][]float64{
		{5},
		{1},
		{3},
	}
	total, matches := MaxMatching(cost)
	if total != 5 {
		t.Errorf("total = %v, want 5 (best row picked)", total)
	}
	if len(matches) != 1 || matches[0].Row != 0 || matches[0].Col != 0 {
		t.Errorf("matches = %v, want [(0,0,5)]", matches)
	}
}

func TestIterativeMaxMatchingMonotoneAndFinalEqualsOneShot(t *testing.T) {
	cost := [][]float64{
		{4, 1, 0},
		{2, 3, 1},
		{0, 2, 5},
	}
	var steps []Step
	IterativeMaxMatching(cost, func(s Step) bool {
		steps = append(steps, s)
		return true
	})
	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].Total < steps[i-1].Total-1e-9 {
			t.Errorf("step %d total %v should be >= step %d total %v", i, steps[i].Total, i-1, steps[i-1].Total)
		}
	}
	wantTotal, _ := MaxMatching(cost)
	last := steps[len(steps)-1]
	if last.Total != wantTotal {
		t.Errorf("final iterative total = %v, want %v (one-shot total)", last.Total, wantTotal)
	}
}

func TestColumnArgmaxRowArgmaxSumAll(t *testing.T) {
	cost := [][]float64{
		{1, 4},
		{3, 2},
	}
	ctotal, cmatches := ColumnArgmax(cost)
	if ctotal != 4+3 {
		t.Errorf("ColumnArgmax total = %v, want 7", ctotal)
	}
	if len(cmatches) != 2 {
		t.Errorf("ColumnArgmax matches = %v, want 2 entries (one per column)", cmatches)
	}

	rtotal, rmatches := RowArgmax(cost)
	if rtotal != 4+3 {
		t.Errorf("RowArgmax total = %v, want 7", rtotal)
	}
	if len(rmatches) != 2 {
		t.Errorf("RowArgmax matches = %v, want 2 entries (one per row)", rmatches)
	}

	stotal, smatches := SumAll(cost)
	if stotal != 10 {
		t.Errorf("SumAll total = %v, want 10", stotal)
	}
	if len(smatches) != 4 {
		t.Errorf("SumAll matches = %v, want 4 entries", smatches)
	}
}
