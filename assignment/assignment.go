// Package assignment implements maximum-weight bipartite assignment
// (C4): the Hungarian algorithm with dual potentials, exposed both as a
// one-shot solver and as a lazy, row-by-row iterator that yields the
// best matching achievable using only the rows seen so far — the shape
// needed by ranking metrics, which want a running score at every
// prefix length k rather than only the final one.
package assignment

import "math"

// Pair is one matched (row, col) index pair in the original, untransposed
// cost matrix's coordinate space, together with its score.
type Pair struct {
	Row, Col int
	Score    float64
}

// Step is the maximum-weight matching achievable using rows 0..i of the
// cost matrix (columns 0..i when the matrix has more rows than columns,
// since the solver then iterates over the shorter dimension), produced
// after that row or column has been added to the alternating tree.
type Step struct {
	Total   float64
	Matches []Pair
}

// MaxMatching solves the full maximum-weight bipartite assignment over
// cost (an nx by ny matrix of non-negative similarity scores) and
// returns the final total score and the chosen pairs.
func MaxMatching(cost [][]float64) (float64, []Pair) {
	var last Step
	IterativeMaxMatching(cost, func(s Step) bool {
		last = s
		return true
	})
	return last.Total, last.Matches
}

// IterativeMaxMatching runs the Hungarian algorithm one row at a time,
// calling yield with the running maximum-weight matching after every
// row is processed. Iteration stops early if yield returns false. The
// algorithm internally transposes when nx > ny so the alternating tree
// is always built over the shorter dimension; Step.Matches are always
// reported in the original (row, col) coordinate space of cost.
func IterativeMaxMatching(cost [][]float64, yield func(Step) bool) {
	nx := len(cost)
	if nx == 0 {
		return
	}
	ny := len(cost[0])
	if ny == 0 {
		return
	}

	w := cost
	transposed := false
	if nx > ny {
		w = transpose(cost)
		nx, ny = ny, nx
		transposed = true
	}

	const rootCol = -1

	u := make([]float64, nx)
	v := make([]float64, ny)
	pred := make([]int, ny)
	for j := range pred {
		pred[j] = -1
	}

	for i := 0; i < nx; i++ {
		j0 := rootCol
		minv := make([]float64, ny)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		used := make([]bool, ny)
		way := make([]int, ny)
		for j := range way {
			way[j] = -2
		}

		for {
			var i0 int
			if j0 == rootCol {
				i0 = i
			} else {
				i0 = pred[j0]
			}

			var j1 int
			delta := math.Inf(1)
			for j := 0; j < ny; j++ {
				if used[j] {
					continue
				}
				cur := -w[i0][j] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j < ny; j++ {
				if used[j] {
					v[j] -= delta
					if pred[j] != -1 {
						u[pred[j]] += delta
					}
				} else {
					minv[j] -= delta
				}
			}
			u[i] += delta

			j0 = j1
			if pred[j0] == -1 {
				break
			}
			used[j0] = true
		}

		for {
			jPrev := way[j0]
			var iPrev int
			if jPrev == rootCol {
				iPrev = i
			} else {
				iPrev = pred[jPrev]
			}
			pred[j0] = iPrev
			j0 = jPrev
			if j0 == rootCol {
				break
			}
		}

		total := 0.0
		var matches []Pair
		for j := 0; j < ny; j++ {
			r := pred[j]
			if r == -1 {
				continue
			}
			row, col := r, j
			if transposed {
				row, col = j, r
			}
			s := cost[row][col]
			matches = append(matches, Pair{Row: row, Col: col, Score: s})
			total += s
		}
		if !yield(Step{Total: total, Matches: matches}) {
			return
		}
	}
}

func transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}
