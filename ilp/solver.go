package ilp

import "sort"

// solveBinaryLP maximizes Σ objective[k]·x[k] over x ∈ {0,1}^n subject to
// every constraint (Σ Coeffs[k]·x[k] ≤ UB). It is a depth-first
// branch-and-bound: at each node, fix the next unassigned variable to 1
// then 0, pruning a branch once its fractional relaxation bound (sum of
// remaining positive-coefficient variables, ignoring constraints) cannot
// beat the best integral solution found so far. The all-zero assignment
// is always feasible, so the search never reports infeasibility for a
// well-formed matching problem.
func solveBinaryLP(objective []float64, constraints []Constraint) ([]bool, float64) {
	n := len(objective)
	if n == 0 {
		return nil, 0
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return objective[order[a]] > objective[order[b]] })

	best := make([]bool, n)
	bestVal := 0.0

	assigned := make([]int8, n) // -1 unset, 0, 1
	for i := range assigned {
		assigned[i] = -1
	}

	remainingUpperBound := func(from int) float64 {
		sum := 0.0
		for k := from; k < n; k++ {
			v := objective[order[k]]
			if v > 0 {
				sum += v
			}
		}
		return sum
	}

	// feasible reports whether some completion of the still-unassigned
	// variables could keep every constraint within its upper bound. For
	// each constraint it computes the smallest LHS any completion can
	// reach: fixed-1 variables contribute their coefficient, fixed-0
	// variables contribute nothing, and unassigned variables contribute
	// their coefficient only if negative (since a negative-coefficient
	// variable can always be set to 1 later to pull the sum down, and a
	// positive-coefficient one can always be left at 0). If even that
	// best case exceeds UB, no completion can satisfy the constraint.
	feasible := func() bool {
		for _, c := range constraints {
			sum := 0.0
			for v, coeff := range c.Coeffs {
				switch {
				case assigned[v] == 1:
					sum += coeff
				case assigned[v] == -1 && coeff < 0:
					sum += coeff
				}
			}
			if sum > c.UB+1e-9 {
				return false
			}
		}
		return true
	}

	var currentVal float64
	var dfs func(depth int)
	dfs = func(depth int) {
		if depth == n {
			if currentVal > bestVal {
				bestVal = currentVal
				copy(best, boolsFromAssigned(assigned))
			}
			return
		}
		if currentVal+remainingUpperBound(depth) <= bestVal {
			return
		}
		v := order[depth]

		assigned[v] = 1
		currentVal += objective[v]
		if feasible() {
			dfs(depth + 1)
		}
		currentVal -= objective[v]

		assigned[v] = 0
		if feasible() {
			dfs(depth + 1)
		}
		assigned[v] = -1
	}
	dfs(0)

	return best, bestVal
}

func boolsFromAssigned(assigned []int8) []bool {
	out := make([]bool, len(assigned))
	for i, v := range assigned {
		out[i] = v == 1
	}
	return out
}
