package metametric

import (
	"testing"

	"github.com/grokify/go-metametric/collection"
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/normalize"
)

// mention and entity reproduce the shapes from original_source's
// metametric.structures.ie (Mention, Entity) for the coreference worked
// example in spec.md §8 scenario 3, drawn from
// https://aclanthology.org/P14-2006.pdf.
type mention struct {
	Left, Right int
}

type entity struct {
	Mentions []mention
}

func mentionSet(ms []mention) map[mention]bool {
	set := make(map[mention]bool, len(ms))
	for _, m := range ms {
		set[m] = true
	}
	return set
}

// mucLink is the MUC "common links" metric between two entities: the
// number of shared mentions minus one, floored at zero (an entity with a
// single shared mention contributes no link).
func mucLink(x, y any) float64 {
	ex, ey := x.(entity), y.(entity)
	sx, sy := mentionSet(ex.Mentions), mentionSet(ey.Mentions)
	shared := 0
	for m := range sx {
		if sy[m] {
			shared++
		}
	}
	common := shared - 1
	if common < 0 {
		common = 0
	}
	return float64(common)
}

func entitiesToAny(es []entity) []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// TestMUCCoreferenceScenario reproduces spec.md §8 scenario 3: MUC scored
// between predicted clusters of sizes {2,2,4} and reference clusters of
// sizes {3,4} sharing 9 documented mentions, via
// SetMatching(mucLink, ManyToMany) over the two entity lists.
func TestMUCCoreferenceScenario(t *testing.T) {
	a := mention{0, 1}
	b := mention{2, 3}
	c := mention{4, 5}
	d := mention{6, 7}
	e := mention{8, 9}
	f := mention{10, 11}
	g := mention{12, 13}
	h := mention{14, 15}
	i := mention{16, 17}
	_ = e // mention e appears only on the reference side, in {d,e,f,g}

	pred := entitiesToAny([]entity{
		{Mentions: []mention{a, b}},
		{Mentions: []mention{c, d}},
		{Mentions: []mention{f, g, h, i}},
	})
	ref := entitiesToAny([]entity{
		{Mentions: []mention{a, b, c}},
		{Mentions: []mention{d, e, f, g}},
	})

	muc := collection.SetMatching(metric.FromFunction(mucLink), constraint.ManyToMany)

	sxy, _ := muc.Compute(pred, ref)
	sxx := muc.ScoreSelf(pred)
	syy := muc.ScoreSelf(ref)

	if sxy != 2 {
		t.Fatalf("score_xy = %v, want 2", sxy)
	}
	if sxx != 5 {
		t.Fatalf("score_xx (pred self) = %v, want 5", sxx)
	}
	if syy != 5 {
		t.Fatalf("score_yy (ref self) = %v, want 5", syy)
	}

	precision := normalize.Precision().Normalize(sxy, sxx, syy)
	recall := normalize.Recall().Normalize(sxy, sxx, syy)
	if precision != 0.4 {
		t.Errorf("MUC precision = %v, want 0.4", precision)
	}
	if recall != 0.4 {
		t.Errorf("MUC recall = %v, want 0.4", recall)
	}
}
