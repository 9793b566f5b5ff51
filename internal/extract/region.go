package extract

import (
	"gridlift/internal/density"
	"gridlift/pkg/contracts/domain"
)

// Default thresholds for region detection. Header and data rows are
// usually denser than occasional sparse attribute columns, hence the two
// different values. Empirically chosen; override via Options.
const (
	DefaultRowThreshold = 0.4
	DefaultColThreshold = 0.3
	DefaultGapTolerance = 2
)

// FindDenseRegion scans rows top to bottom for the contiguous band whose
// per-row density meets threshold. Up to maxGap consecutive rows below
// threshold are tolerated inside the band; end is the last row that met
// the threshold before the gap limit was exceeded. ok is false when no
// row meets the threshold at all.
func FindDenseRegion(grid domain.Grid, threshold float64, maxGap int) (start, end int, ok bool) {
	if grid.Empty() {
		return 0, 0, false
	}

	start = -1
	for i := range grid {
		if density.Row(grid[i]) >= threshold {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}

	end = start
	gap := 0
	for i := start; i < len(grid); i++ {
		if density.Row(grid[i]) >= threshold {
			end = i
			gap = 0
			continue
		}
		gap++
		if gap > maxGap {
			break
		}
	}

	return start, end, true
}

// FindDenseColumns returns the columns whose density within rows
// [rowStart, rowEnd] inclusive meets threshold, in left-to-right order.
// Returns nil for an empty grid or an inverted range.
func FindDenseColumns(grid domain.Grid, rowStart, rowEnd int, threshold float64) []int {
	if grid.Empty() || rowStart > rowEnd {
		return nil
	}

	var cols []int
	for c := 0; c < grid.ColCount(); c++ {
		if density.GridCol(grid, c, rowStart, rowEnd) >= threshold {
			cols = append(cols, c)
		}
	}
	return cols
}
