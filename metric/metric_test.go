package metric

import (
	"testing"

	"github.com/grokify/go-metametric/matching"
)

func TestFromFunction(t *testing.T) {
	m := FromFunction(func(x, y any) float64 {
		return float64(x.(int) + y.(int))
	})
	if got := Score(m, 2, 3); got != 5 {
		t.Errorf("Score = %v, want 5", got)
	}
	if got := m.ScoreSelf(2); got != 4 {
		t.Errorf("ScoreSelf = %v, want 4", got)
	}
	_, sub := m.Compute(2, 3)
	matches := sub.Slice()
	if len(matches) != 1 || matches[0].Score != 5 {
		t.Errorf("matches = %v, want a single match scoring 5", matches)
	}
}

func TestContramap(t *testing.T) {
	inner := Discrete()
	m := Contramap1(inner, func(v any) any { return v.(string) + "!" })
	if got := Score(m, "a", "a"); got != 1 {
		t.Errorf("Score(a,a) = %v, want 1", got)
	}
	if got := Score(m, "a", "b"); got != 0 {
		t.Errorf("Score(a,b) = %v, want 0", got)
	}
}

func TestDiscrete(t *testing.T) {
	m := Discrete()
	if !IsDiscrete(m) {
		t.Error("IsDiscrete(Discrete()) should be true")
	}
	if got := Score(m, []int{1, 2}, []int{1, 2}); got != 1 {
		t.Errorf("Score on equal slices = %v, want 1", got)
	}
	if got := Score(m, []int{1, 2}, []int{1, 3}); got != 0 {
		t.Errorf("Score on unequal slices = %v, want 0", got)
	}
	if got := m.ScoreSelf("x"); got != 1 {
		t.Errorf("ScoreSelf = %v, want 1", got)
	}
}

type pair struct {
	A, B int
}

func TestProductMultipliesAndPrefixesPaths(t *testing.T) {
	m := Product(
		FieldMetric{Name: "a", Metric: Discrete(), Get: func(v any) any { return v.(pair).A }},
		FieldMetric{Name: "b", Metric: Discrete(), Get: func(v any) any { return v.(pair).B }},
	)
	x := pair{A: 1, B: 2}
	y := pair{A: 1, B: 3}
	if got := Score(m, x, y); got != 0 {
		t.Errorf("Score = %v, want 0 (b field mismatches)", got)
	}
	_, sub := m.Compute(x, x)
	var sawA, sawB bool
	sub.Each(func(match matching.Match) bool {
		switch match.PredPath.String() {
		case "a":
			sawA = true
		case "b":
			sawB = true
		}
		return true
	})
	if !sawA || !sawB {
		t.Errorf("expected sub-matches prefixed with field names a and b, got %v", sub.Slice())
	}
	if got := m.ScoreSelf(x); got != 1 {
		t.Errorf("ScoreSelf(x) = %v, want 1", got)
	}
}

type circle struct{ r int }
type square struct{ s int }

func TestUnionTagMismatchScoresZero(t *testing.T) {
	tagOf := func(v any) any {
		switch v.(type) {
		case circle:
			return "circle"
		case square:
			return "square"
		default:
			return nil
		}
	}
	m := Union(tagOf, []CaseMetric{
		{Tag: "circle", Metric: Contramap1(Discrete(), func(v any) any { return v.(circle).r })},
		{Tag: "square", Metric: Contramap1(Discrete(), func(v any) any { return v.(square).s })},
	})
	if got := Score(m, circle{r: 1}, square{s: 1}); got != 0 {
		t.Errorf("Score across mismatched cases = %v, want 0", got)
	}
	if got := Score(m, circle{r: 1}, circle{r: 1}); got != 1 {
		t.Errorf("Score within matching case = %v, want 1", got)
	}
	if got := m.ScoreSelf(circle{r: 1}); got != 1 {
		t.Errorf("ScoreSelf = %v, want 1", got)
	}
}
