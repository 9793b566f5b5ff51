package extract

import (
	"strings"

	"gridlift/internal/density"
	"gridlift/pkg/contracts/domain"
)

// confidenceScore rates extraction quality in [0,1]. Each warning costs
// 0.1; sparse core rows scale the score down; extracting a sliver of the
// grid costs 0.2 while covering most of it earns 0.1; a core named mostly
// by placeholders costs 0.15.
func confidenceScore(grid domain.Grid, core domain.Table, warnings []string) float64 {
	score := 1.0

	score -= float64(len(warnings)) * 0.1

	if !core.Empty() {
		sum := 0.0
		for _, row := range core.Rows {
			sum += density.Row(row)
		}
		avg := sum / float64(len(core.Rows))
		score *= 0.5 + avg*0.5
	}

	if len(grid) > 0 {
		ratio := float64(core.RowCount()) / float64(len(grid))
		if ratio < 0.1 {
			score -= 0.2
		} else if ratio > 0.8 {
			score += 0.1
		}
	}

	if len(core.Columns) > 0 {
		placeholders := 0
		for _, name := range core.Columns {
			if strings.HasPrefix(name, "col_") {
				placeholders++
			}
		}
		if float64(placeholders)/float64(len(core.Columns)) > 0.5 {
			score -= 0.15
		}
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
