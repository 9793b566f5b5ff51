// Package density computes fill ratios over rows and columns of a cell
// grid. These ratios drive region detection and confidence scoring; the
// functions are pure and total over any input.
package density

import "gridlift/pkg/contracts/domain"

// Row returns the fraction of non-empty cells in the row, 0 for a
// zero-width row.
func Row(row []domain.Cell) float64 {
	if len(row) == 0 {
		return 0
	}
	nonEmpty := 0
	for _, c := range row {
		if !c.IsEmpty() {
			nonEmpty++
		}
	}
	return float64(nonEmpty) / float64(len(row))
}

// Col returns the fraction of non-empty cells in the column slice, 0 for
// an empty slice.
func Col(col []domain.Cell) float64 {
	return Row(col)
}

// GridCol returns the density of column idx restricted to grid rows
// [rowStart, rowEnd] inclusive. Rows shorter than idx contribute null
// markers.
func GridCol(grid domain.Grid, idx, rowStart, rowEnd int) float64 {
	if rowStart < 0 {
		rowStart = 0
	}
	if rowEnd >= len(grid) {
		rowEnd = len(grid) - 1
	}
	if rowStart > rowEnd {
		return 0
	}
	total := rowEnd - rowStart + 1
	nonEmpty := 0
	for r := rowStart; r <= rowEnd; r++ {
		if idx < len(grid[r]) && !grid[r][idx].IsEmpty() {
			nonEmpty++
		}
	}
	return float64(nonEmpty) / float64(total)
}
