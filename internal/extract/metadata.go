package extract

import (
	"regexp"
	"strings"

	"gridlift/pkg/contracts/domain"
)

var (
	colonPattern  = regexp.MustCompile(`^([^:]+):\s*(.+)$`)
	equalsPattern = regexp.MustCompile(`^([^=]+)=\s*(.+)$`)
)

// isRowNumberArtifact reports whether a leading-column cell is a stray
// row number carried in from the source file: an integer in [0,1000].
func isRowNumberArtifact(c domain.Cell) bool {
	v, ok := cellInt(c)
	return ok && v >= 0 && v <= 1000
}

// contextCell is a non-empty cell kept during metadata/footer scanning,
// remembered with its original column position.
type contextCell struct {
	col  int
	cell domain.Cell
}

// contextCells returns the row's non-empty cells, dropping a leading
// row-number artifact.
func contextCells(row []domain.Cell) []contextCell {
	var out []contextCell
	for i, c := range row {
		if c.IsEmpty() {
			continue
		}
		if i == 0 && isRowNumberArtifact(c) {
			continue
		}
		out = append(out, contextCell{col: i, cell: c})
	}
	return out
}

// validKey reports whether a candidate metadata key looks like a label
// rather than a number.
func validKey(key string) bool {
	return !numericPattern.MatchString(key) && len(key) > 1
}

// Metadata scrapes key/value pairs from grid rows above endRow
// (exclusive). Three layouts are recognized, tried in order per row:
//
//   - a single cell holding "Key: Value" or "Key = Value"
//   - a key cell and a value cell within two column positions
//   - an even run of four or more cells treated as consecutive pairs
//
// Later occurrences of a key overwrite earlier values; iteration order
// of the result follows first insertion.
func Metadata(grid domain.Grid, endRow int) *domain.Metadata {
	meta := domain.NewMetadata()

	for r := 0; r < endRow && r < len(grid); r++ {
		cells := contextCells(grid[r])
		if len(cells) == 0 {
			continue
		}

		if len(cells) == 1 {
			s := strings.TrimSpace(cells[0].cell.Text())
			if m := colonPattern.FindStringSubmatch(s); m != nil {
				meta.Set(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
				continue
			}
			if m := equalsPattern.FindStringSubmatch(s); m != nil {
				meta.Set(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
				continue
			}
		}

		if len(cells) == 2 {
			first, second := cells[0], cells[1]
			if second.col-first.col <= 2 {
				key := strings.TrimSpace(first.cell.Text())
				if validKey(key) {
					meta.Set(key, strings.TrimSpace(second.cell.Text()))
					continue
				}
			}
		}

		if len(cells) >= 4 && len(cells)%2 == 0 {
			for i := 0; i+1 < len(cells); i += 2 {
				key := strings.TrimSpace(cells[i].cell.Text())
				if validKey(key) {
					meta.Set(key, strings.TrimSpace(cells[i+1].cell.Text()))
				}
			}
		}
	}

	return meta
}

// Footer collects the text of every non-empty row from startRow to the
// end of the grid. Leading row-number artifacts are dropped and the
// remaining cells joined with single spaces; rows left empty after
// filtering are skipped.
func Footer(grid domain.Grid, startRow int) []string {
	var footer []string

	if startRow < 0 {
		startRow = 0
	}
	for r := startRow; r < len(grid); r++ {
		cells := contextCells(grid[r])
		if len(cells) == 0 {
			continue
		}
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = strings.TrimSpace(c.cell.Text())
		}
		footer = append(footer, strings.Join(parts, " "))
	}

	return footer
}
