package advanced

import "math"

// Matrix is an implicit matrix of values. Entries are computed on demand, so
// a search that only touches O(rows+cols) entries never pays for the rest.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) float64
}

// A pending piece of the search: rows [rowLo, rowHi) whose best columns are
// known to lie in [colMin, colMax].
type searchJob struct {
	rowLo, rowHi   int
	colMin, colMax int
}

// MonotoneMax finds the column holding the maximum of every row. The matrix
// must be totally monotone: the best column of a row is never left of the
// best column of any row above it. That lets each row's search window be
// bounded by the answers of its neighbors, so only the middle row of every
// range is scanned in full.
//
// Ties go to the leftmost column. Every row gets -1 if there are no columns.
func MonotoneMax(m Matrix) []int {
	numRows, numCols := m.Rows(), m.Cols()
	result := make([]int, numRows)
	if numCols == 0 {
		for i := range result {
			result[i] = -1
		}
		return result
	}
	if numRows == 0 {
		return result
	}

	stack := []searchJob{{0, numRows, 0, numCols - 1}}
	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if job.rowLo >= job.rowHi {
			continue
		}

		row := job.rowLo + (job.rowHi-job.rowLo)/2
		bestCol := job.colMin
		bestVal := math.Inf(-1)
		for col := job.colMin; col <= job.colMax; col++ {
			if val := m.At(row, col); val > bestVal {
				bestVal = val
				bestCol = col
			}
		}
		result[row] = bestCol

		// Rows below the middle can only move right, rows above only left. Push
		// the lower half first so the upper half is resolved first.
		stack = append(stack,
			searchJob{row + 1, job.rowHi, bestCol, job.colMax},
			searchJob{job.rowLo, row, job.colMin, bestCol},
		)
	}
	return result
}
