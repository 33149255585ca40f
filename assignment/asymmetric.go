package assignment

// ColumnArgmax implements the one-to-many match: every column picks its
// best (argmax) row, independent of the others, ties broken by lowest
// row index.
func ColumnArgmax(cost [][]float64) (float64, []Pair) {
	if len(cost) == 0 || len(cost[0]) == 0 {
		return 0, nil
	}
	ny := len(cost[0])
	total := 0.0
	var matches []Pair
	for j := 0; j < ny; j++ {
		bestI, bestS := 0, cost[0][j]
		for i := 1; i < len(cost); i++ {
			if cost[i][j] > bestS {
				bestS, bestI = cost[i][j], i
			}
		}
		matches = append(matches, Pair{Row: bestI, Col: j, Score: bestS})
		total += bestS
	}
	return total, matches
}

// RowArgmax implements the many-to-one match: every row picks its best
// (argmax) column, ties broken by lowest column index.
func RowArgmax(cost [][]float64) (float64, []Pair) {
	if len(cost) == 0 || len(cost[0]) == 0 {
		return 0, nil
	}
	total := 0.0
	var matches []Pair
	for i, row := range cost {
		bestJ, bestS := 0, row[0]
		for j := 1; j < len(row); j++ {
			if row[j] > bestS {
				bestS, bestJ = row[j], j
			}
		}
		matches = append(matches, Pair{Row: i, Col: bestJ, Score: bestS})
		total += bestS
	}
	return total, matches
}

// SumAll implements the many-to-many match: every cell is selected, and
// the total is the sum of the whole cost matrix.
func SumAll(cost [][]float64) (float64, []Pair) {
	total := 0.0
	var matches []Pair
	for i, row := range cost {
		for j, s := range row {
			matches = append(matches, Pair{Row: i, Col: j, Score: s})
			total += s
		}
	}
	return total, matches
}
