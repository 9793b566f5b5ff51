package ingest

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"gridlift/pkg/contracts/domain"
)

// Sheet is one decoded worksheet: its name and the rectangular grid of
// its cells.
type Sheet struct {
	Name string
	Grid domain.Grid
}

// ReadWorkbook decodes every sheet of an Excel workbook into a grid. A
// sheet that fails to decode is skipped with a warning so the remaining
// sheets still come through; opening the file itself failing is an
// error.
func ReadWorkbook(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			slog.Warn("skipping unreadable sheet",
				slog.String("file", path),
				slog.String("sheet", name),
				slog.Any("error", &SheetError{Source: path, Sheet: name, Err: err}))
			continue
		}
		sheets = append(sheets, Sheet{Name: name, Grid: gridFromStrings(rows)})
	}

	return sheets, nil
}

// gridFromStrings converts raw string rows to a rectangular cell grid,
// padding ragged rows to the widest row's width.
func gridFromStrings(rows [][]string) domain.Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(domain.Grid, len(rows))
	for r, row := range rows {
		cells := make([]domain.Cell, width)
		for c := 0; c < width; c++ {
			if c < len(row) && row[c] != "" {
				cells[c] = domain.String(row[c])
			} else {
				cells[c] = domain.Empty()
			}
		}
		grid[r] = cells
	}
	return grid
}
