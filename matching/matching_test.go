package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/grokify/go-metametric/metricpath"
)

func TestRunWithHooksEmissionOrder(t *testing.T) {
	m := Of([]Match{
		{PredPath: metricpath.Root().Append(metricpath.Index(0)), Score: 1},
		{PredPath: metricpath.Root().Append(metricpath.Index(1)), Score: 2},
	})
	var seen []float64
	selector := Selector{
		Path: metricpath.Root().Append(metricpath.Index(metricpath.Wildcard)),
		Hook: func(_ uuid.UUID, _ metricpath.Path, _ any, _ metricpath.Path, _ any, score float64) {
			seen = append(seen, score)
		},
	}
	m.RunWithHooks([]Selector{selector}, uuid.New())
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("seen = %v, want [1 2] in emission order", seen)
	}
}

func TestHooksAdvance(t *testing.T) {
	h := NewHooks([]Selector{
		{Path: metricpath.Root().Append(metricpath.Name("a")).Append(metricpath.Name("b"))},
	})
	advanced := h.Advance(metricpath.Name("a"))
	if advanced.Empty() {
		t.Fatal("advancing past 'a' should leave one selector")
	}
	if advanced.Selectors()[0].Path.String() != "b" {
		t.Errorf("remaining path = %q, want %q", advanced.Selectors()[0].Path.String(), "b")
	}
	mismatched := h.Advance(metricpath.Name("z"))
	if !mismatched.Empty() {
		t.Error("advancing past a non-matching step should drop the selector")
	}
}

func TestMatchingSliceConcat(t *testing.T) {
	a := Single(Match{Score: 1})
	b := Single(Match{Score: 2})
	got := Concat(a, b).Slice()
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
}
