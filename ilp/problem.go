// Package ilp implements the 0/1 integer-linear-program solver
// interface (C5): a MatchingProblem builder that assembles the
// matching/variable-matching/monotonicity/latent-variable constraint
// blocks described by the matching-kernel's collection matchers, and a
// branch-and-bound backend that solves the resulting problem. The
// backend is the only part of this package that knows how to solve an
// ILP; everything above it only ever adds constraints and reads back
// (objective, selected pairs).
package ilp

import (
	"github.com/go-faster/errors"
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/mmerr"
	"gonum.org/v1/gonum/mat"
)

// Constraint is one row of the ≤ system: Σ Coeffs[k]·x[k] ≤ UB.
type Constraint struct {
	Coeffs map[int]float64
	UB     float64
}

// MatchingProblem is the 0/1 ILP for matching two collections X and Y,
// optionally with attached variable collections X_var/Y_var, laid out as
// described in spec.md §4.5: the t-block (one 0/1 variable per (i,j)
// item pair) followed by the s-block (one 0/1 variable per (p,q)
// variable pair).
type MatchingProblem struct {
	NX, NY         int
	NXVars, NYVars int
	Gram           *mat.Dense

	constraints []Constraint
}

// NewMatchingProblem builds a problem over the gram matrix G (|X| by
// |Y|, G[i][j] = score of matching x[i] with y[j]) with nXVars/nYVars
// latent-variable slots (0 if the item type carries no Variable fields).
func NewMatchingProblem(gram [][]float64, nXVars, nYVars int) *MatchingProblem {
	nx := len(gram)
	ny := 0
	if nx > 0 {
		ny = len(gram[0])
	}
	g := mat.NewDense(nx, ny, nil)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			g.Set(i, j, gram[i][j])
		}
	}
	return &MatchingProblem{NX: nx, NY: ny, NXVars: nXVars, NYVars: nYVars, Gram: g}
}

// indexPair returns the t-block variable index for item pair (i, j).
func (p *MatchingProblem) indexPair(i, j int) int { return i*p.NY + j }

// indexVarPair returns the s-block variable index for variable pair
// (i, j).
func (p *MatchingProblem) indexVarPair(i, j int) int {
	return p.NX*p.NY + i*p.NYVars + j
}

// nVars is the total 0/1 decision-variable count (t-block + s-block).
func (p *MatchingProblem) nVars() int { return p.NX*p.NY + p.NXVars*p.NYVars }

// AddMatchingConstraint adds the per-kind matching-cardinality
// constraint on the t-block: 1:1 constrains both rows and columns, 1:*
// constrains columns only, *:1 constrains rows only, *:* adds nothing.
func (p *MatchingProblem) AddMatchingConstraint(kind constraint.Kind) {
	switch kind {
	case constraint.OneToOne:
		p.addRowConstraints()
		p.addColConstraints()
	case constraint.OneToMany:
		p.addColConstraints()
	case constraint.ManyToOne:
		p.addRowConstraints()
	case constraint.ManyToMany:
		// no constraint
	}
}

func (p *MatchingProblem) addRowConstraints() {
	for i := 0; i < p.NX; i++ {
		c := Constraint{Coeffs: map[int]float64{}, UB: 1}
		for j := 0; j < p.NY; j++ {
			c.Coeffs[p.indexPair(i, j)] = 1
		}
		p.constraints = append(p.constraints, c)
	}
}

func (p *MatchingProblem) addColConstraints() {
	for j := 0; j < p.NY; j++ {
		c := Constraint{Coeffs: map[int]float64{}, UB: 1}
		for i := 0; i < p.NX; i++ {
			c.Coeffs[p.indexPair(i, j)] = 1
		}
		p.constraints = append(p.constraints, c)
	}
}

// AddVariableMatchingConstraint adds the always-1:1 constraint on the
// s-block: no-op when either variable set is empty.
func (p *MatchingProblem) AddVariableMatchingConstraint() {
	if p.NXVars == 0 || p.NYVars == 0 {
		return
	}
	for i := 0; i < p.NXVars; i++ {
		c := Constraint{Coeffs: map[int]float64{}, UB: 1}
		for j := 0; j < p.NYVars; j++ {
			c.Coeffs[p.indexVarPair(i, j)] = 1
		}
		p.constraints = append(p.constraints, c)
	}
	for j := 0; j < p.NYVars; j++ {
		c := Constraint{Coeffs: map[int]float64{}, UB: 1}
		for i := 0; i < p.NXVars; i++ {
			c.Coeffs[p.indexVarPair(i, j)] = 1
		}
		p.constraints = append(p.constraints, c)
	}
}

// AddMonotonicityConstraint forbids simultaneous selection of two
// reachability-inconsistent candidate pairs: given reachability matrices
// xReach[u][u'] and yReach[v][v'] over X and Y respectively, for every
// two candidate pairs (u0,v0), (u1,v1) with positive gram score where
// xReach[u0][u1] != yReach[v0][v1], add t[u0,v0] + t[u1,v1] <= 1.
func (p *MatchingProblem) AddMonotonicityConstraint(xReach, yReach [][]bool) {
	var candidates [][2]int
	for u := 0; u < p.NX; u++ {
		for v := 0; v < p.NY; v++ {
			if p.Gram.At(u, v) > 0 {
				candidates = append(candidates, [2]int{u, v})
			}
		}
	}
	for _, c0 := range candidates {
		for _, c1 := range candidates {
			u0, v0 := c0[0], c0[1]
			u1, v1 := c1[0], c1[1]
			if xReach[u0][u1] != yReach[v0][v1] {
				p.constraints = append(p.constraints, Constraint{
					Coeffs: map[int]float64{
						p.indexPair(u0, v0): 1,
						p.indexPair(u1, v1): 1,
					},
					UB: 1,
				})
			}
		}
	}
}

// LatentBinding names one "matching item i,j forces binding variable
// p,q" relationship: whenever t[i,j] is selected, s[p,q] must be too.
type LatentBinding struct {
	I, J int
	P, Q int
}

// AddLatentVariableConstraint adds, for each binding b, the constraint
// t[b.I,b.J] - s[b.P,b.Q] <= 0. Callers (the record-type deriver) supply
// one binding per (item pair with positive gram score, variable-typed
// field shared by both sides).
func (p *MatchingProblem) AddLatentVariableConstraint(bindings []LatentBinding) {
	for _, b := range bindings {
		p.constraints = append(p.constraints, Constraint{
			Coeffs: map[int]float64{
				p.indexPair(b.I, b.J):    1,
				p.indexVarPair(b.P, b.Q): -1,
			},
			UB: 0,
		})
	}
}

// Selected is one chosen item pair in the optimal solution.
type Selected struct {
	I, J  int
	Score float64
}

// maxBranchAndBoundVars bounds the problem size this backend will
// attempt: branch-and-bound here has no LP-relaxation bound, only the
// weaker ignore-constraints bound, so worst-case behavior is
// exponential in variable count. Collections handled by this kernel are
// expected to be small (single-digit to low-hundreds of elements per
// side); beyond this bound the problem is reported as a solver failure
// rather than left to run unbounded.
const maxBranchAndBoundVars = 10000

// Solve finds the assignment of the t-block that maximizes
// Σ G[i,j]·t[i,j] subject to every constraint added so far, and returns
// the objective value plus the selected item pairs.
func (p *MatchingProblem) Solve() (float64, []Selected, error) {
	if p.nVars() > maxBranchAndBoundVars {
		return 0, nil, errors.Wrap(mmerr.ErrSolverFailure, "matching problem too large for the branch-and-bound backend")
	}
	objective := make([]float64, p.nVars())
	for i := 0; i < p.NX; i++ {
		for j := 0; j < p.NY; j++ {
			objective[p.indexPair(i, j)] = p.Gram.At(i, j)
		}
	}
	assignment, obj := solveBinaryLP(objective, p.constraints)
	var selected []Selected
	for i := 0; i < p.NX; i++ {
		for j := 0; j < p.NY; j++ {
			if assignment[p.indexPair(i, j)] {
				selected = append(selected, Selected{I: i, J: j, Score: p.Gram.At(i, j)})
			}
		}
	}
	return obj, selected, nil
}
