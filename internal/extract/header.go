package extract

import (
	"regexp"
	"strconv"
	"strings"

	"gridlift/pkg/contracts/domain"
)

var (
	// idPattern matches sample-style identifiers such as SAMP-001.
	idPattern = regexp.MustCompile(`^[A-Z]{2,}-\d+$`)
	// numericPattern matches values built only from digits and signs.
	numericPattern = regexp.MustCompile(`^[\d\.\-\+]+$`)
)

// isHeaderCell reports whether a cell looks like a column header:
// non-empty, not a pure numeric pattern, longer than one character.
func isHeaderCell(c domain.Cell) bool {
	if c.IsEmpty() {
		return false
	}
	s := strings.TrimSpace(c.Text())
	if numericPattern.MatchString(s) {
		return false
	}
	return len(s) > 1
}

// isDataCell reports whether a cell looks like table data: an ID pattern
// or a pure number.
func isDataCell(c domain.Cell) bool {
	if c.IsEmpty() {
		return false
	}
	s := strings.TrimSpace(c.Text())
	return idPattern.MatchString(s) || numericPattern.MatchString(s)
}

// cellInt parses a cell as an integer by way of float truncation, the
// way spreadsheet row numbers round-trip ("3", "3.0" both yield 3).
func cellInt(c domain.Cell) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Text()), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// looksLikeRowNumbers reports whether column col over rows
// [rowStart, rowEnd] is a row-number artifact: at least 3 parseable
// values, every non-empty cell an integer, and at least 70% of them
// sitting exactly at firstValue + position.
func looksLikeRowNumbers(grid domain.Grid, col, rowStart, rowEnd int) bool {
	var values []int
	for r := rowStart; r <= rowEnd && r < len(grid); r++ {
		if col >= len(grid[r]) {
			continue
		}
		c := grid[r][col]
		if c.IsEmpty() {
			continue
		}
		v, ok := cellInt(c)
		if !ok {
			return false
		}
		values = append(values, v)
	}

	if len(values) < 3 {
		return false
	}

	first := values[0]
	sequential := 0
	for i, v := range values {
		if v == first+i {
			sequential++
		}
	}
	return float64(sequential)/float64(len(values)) >= 0.7
}

// Weights for the header-likeness score. Empirically chosen, tunable only
// here; a strict greater-than comparison keeps the earliest maximum.
const (
	headerRatioWeight  = 0.4
	uniqueRatioWeight  = 0.2
	dataFollowsBonus   = 0.4
	densityBonusWeight = 0.2
	dataRowCutoff      = 0.3
	dataFollowsCutoff  = 0.2
)

// DetectHeaderRow scores every row in [searchStart, searchEnd] for
// header-likeness and returns the best one. Rows with fewer than two
// non-empty cells, or with more than 30% data-like cells, are skipped as
// data rows. ok is false when every candidate was skipped.
func DetectHeaderRow(grid domain.Grid, searchStart, searchEnd int) (row int, ok bool) {
	if grid.Empty() {
		return 0, false
	}

	best := -1
	bestScore := -1.0

	for r := searchStart; r <= searchEnd && r < len(grid); r++ {
		var nonEmpty []domain.Cell
		for _, c := range grid[r] {
			if !c.IsEmpty() {
				nonEmpty = append(nonEmpty, c)
			}
		}
		if len(nonEmpty) < 2 {
			continue
		}

		dataLike := 0
		for _, c := range nonEmpty {
			if isDataCell(c) {
				dataLike++
			}
		}
		if float64(dataLike)/float64(len(nonEmpty)) > dataRowCutoff {
			continue
		}

		headerLike := 0
		for _, c := range nonEmpty {
			if isHeaderCell(c) {
				headerLike++
			}
		}
		headerRatio := float64(headerLike) / float64(len(nonEmpty))

		// Headers usually carry unique column names.
		distinct := make(map[string]struct{}, len(nonEmpty))
		for _, c := range nonEmpty {
			distinct[strings.ToLower(strings.TrimSpace(c.Text()))] = struct{}{}
		}
		uniqueRatio := float64(len(distinct)) / float64(len(nonEmpty))

		bonus := 0.0
		if r+1 < len(grid) {
			nextNonEmpty, nextData := 0, 0
			for _, c := range grid[r+1] {
				if c.IsEmpty() {
					continue
				}
				nextNonEmpty++
				if isDataCell(c) {
					nextData++
				}
			}
			if nextNonEmpty > 0 && float64(nextData)/float64(nextNonEmpty) > dataFollowsCutoff {
				bonus = dataFollowsBonus
			}
		}

		densityBonus := float64(len(nonEmpty)) / float64(len(grid[r])) * densityBonusWeight

		score := headerRatio*headerRatioWeight + uniqueRatio*uniqueRatioWeight + bonus + densityBonus
		if score > bestScore {
			bestScore = score
			best = r
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}
