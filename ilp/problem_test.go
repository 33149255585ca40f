package ilp

import (
	"testing"

	"github.com/grokify/go-metametric/constraint"
)

func TestOneToOneMatchingConstraintPicksAssignment(t *testing.T) {
	gram := [][]float64{
		{1, 3},
		{4, 1},
	}
	p := NewMatchingProblem(gram, 0, 0)
	p.AddMatchingConstraint(constraint.OneToOne)
	obj, selected, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if obj != 7 {
		t.Errorf("obj = %v, want 7 (pick (0,1)=3 and (1,0)=4)", obj)
	}
	if len(selected) != 2 {
		t.Errorf("selected = %v, want 2 pairs", selected)
	}
}

func TestManyToManyHasNoCardinalityConstraint(t *testing.T) {
	gram := [][]float64{
		{1, 1},
		{1, 1},
	}
	p := NewMatchingProblem(gram, 0, 0)
	p.AddMatchingConstraint(constraint.ManyToMany)
	obj, selected, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if obj != 4 {
		t.Errorf("obj = %v, want 4 (every cell selected)", obj)
	}
	if len(selected) != 4 {
		t.Errorf("selected = %v, want all 4 pairs", selected)
	}
}

func TestOneToManyConstrainsColumnsOnly(t *testing.T) {
	gram := [][]float64{
		{1, 1},
		{1, 1},
		{1, 1},
	}
	p := NewMatchingProblem(gram, 0, 0)
	p.AddMatchingConstraint(constraint.OneToMany)
	_, selected, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(selected) != 2 {
		t.Errorf("selected = %v, want exactly 2 pairs (one per column)", selected)
	}
}

func TestLatentVariableConstraintForcesBinding(t *testing.T) {
	gram := [][]float64{{1}}
	p := NewMatchingProblem(gram, 1, 1)
	p.AddLatentVariableConstraint([]LatentBinding{{I: 0, J: 0, P: 0, Q: 0}})
	obj, selected, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if obj != 1 || len(selected) != 1 {
		t.Errorf("obj=%v selected=%v, want obj=1 and item pair (0,0) selected", obj, selected)
	}
}

func TestMonotonicityConstraintForbidsInconsistentPairs(t *testing.T) {
	gram := [][]float64{
		{1, 1},
		{1, 1},
	}
	xReach := [][]bool{{false, true}, {false, false}}
	yReach := [][]bool{{false, false}, {true, false}}
	p := NewMatchingProblem(gram, 0, 0)
	p.AddMonotonicityConstraint(xReach, yReach)
	_, selected, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	for _, a := range selected {
		for _, b := range selected {
			if a == b {
				continue
			}
			if xReach[a.I][b.I] != yReach[a.J][b.J] {
				t.Errorf("selected pairs %v and %v violate monotonicity", a, b)
			}
		}
	}
}
