package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"gridlift/pkg/contracts/domain"
)

// Options tunes the extraction heuristics. The thresholds are empirical
// constants; the defaults match what works on typical lab and report
// spreadsheets.
type Options struct {
	// RowThreshold is the minimum row density for the dense region.
	RowThreshold float64
	// ColThreshold is the minimum column density within the data band.
	ColThreshold float64
	// GapTolerance is how many consecutive sparse rows the region scan
	// absorbs before stopping.
	GapTolerance int
	// HeaderSearchWindow bounds how far below the region start the
	// header scan looks.
	HeaderSearchWindow int
}

// DefaultOptions returns the standard extraction thresholds.
func DefaultOptions() Options {
	return Options{
		RowThreshold:       DefaultRowThreshold,
		ColThreshold:       DefaultColThreshold,
		GapTolerance:       DefaultGapTolerance,
		HeaderSearchWindow: 3,
	}
}

// Extractor runs core-data extraction over grids.
type Extractor struct {
	logger *slog.Logger
	opts   Options
}

// NewExtractor creates an extractor. A nil logger falls back to
// slog.Default(); zero-valued options fall back to the defaults.
func NewExtractor(logger *slog.Logger, opts Options) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	def := DefaultOptions()
	if opts.RowThreshold == 0 {
		opts.RowThreshold = def.RowThreshold
	}
	if opts.ColThreshold == 0 {
		opts.ColThreshold = def.ColThreshold
	}
	if opts.GapTolerance == 0 {
		opts.GapTolerance = def.GapTolerance
	}
	if opts.HeaderSearchWindow == 0 {
		opts.HeaderSearchWindow = def.HeaderSearchWindow
	}
	return &Extractor{logger: logger, opts: opts}
}

// CoreData extracts the core table from grid using default options.
func CoreData(grid domain.Grid) domain.ExtractedData {
	return NewExtractor(nil, DefaultOptions()).CoreData(grid)
}

// CoreData analyzes the grid, separates the main data table from
// metadata headers and footer rows, and returns the populated result.
// Degraded inputs never fail: the extractor falls back and records
// warnings, and the confidence score reflects the quality instead.
func (e *Extractor) CoreData(grid domain.Grid) domain.ExtractedData {
	var warnings []string

	if grid.Empty() {
		return domain.ExtractedData{
			Core:     domain.Table{},
			Metadata: domain.NewMetadata(),
			Warnings: []string{"Empty grid provided"},
		}
	}

	denseStart, denseEnd, found := FindDenseRegion(grid, e.opts.RowThreshold, e.opts.GapTolerance)
	if !found {
		warnings = append(warnings, "No dense region found; returning entire grid")
		return domain.ExtractedData{
			Core:       wholeGridTable(grid),
			Metadata:   domain.NewMetadata(),
			Confidence: 0.3,
			Warnings:   warnings,
		}
	}
	e.logger.Debug("dense region located",
		slog.Int("start", denseStart),
		slog.Int("end", denseEnd))

	searchEnd := denseStart + e.opts.HeaderSearchWindow
	if searchEnd > denseEnd {
		searchEnd = denseEnd
	}
	headerRow, hasHeader := DetectHeaderRow(grid, denseStart, searchEnd)
	if !hasHeader {
		headerRow = denseStart
		warnings = append(warnings, "Could not detect header row; using first dense row")
	}
	e.logger.Debug("header row selected",
		slog.Int("row", headerRow),
		slog.Bool("detected", hasHeader))

	// Column search starts below the header unless the region is a
	// single row.
	colSearchStart := headerRow
	if headerRow < denseEnd {
		colSearchStart = headerRow + 1
	}
	denseCols := FindDenseColumns(grid, colSearchStart, denseEnd, e.opts.ColThreshold)
	if len(denseCols) == 0 {
		denseCols = allColumns(grid, 0)
		warnings = append(warnings, "No dense columns found; using all columns")
	}

	if len(denseCols) > 0 && looksLikeRowNumbers(grid, denseCols[0], colSearchStart, denseEnd) {
		e.logger.Debug("dropping row-number column", slog.Int("column", denseCols[0]))
		denseCols = denseCols[1:]
		if len(denseCols) == 0 {
			denseCols = allColumns(grid, 1)
		}
	}

	metadata := Metadata(grid, headerRow)

	var footer []string
	if denseEnd+1 < len(grid) {
		footer = Footer(grid, denseEnd+1)
	}

	names := headerNames(grid[headerRow], denseCols)

	// The core holds the rows after the header; the header itself is
	// never part of it.
	dataStart := headerRow + 1
	var rows [][]domain.Cell
	for r := dataStart; r <= denseEnd && r < len(grid); r++ {
		row := make([]domain.Cell, len(denseCols))
		for i, c := range denseCols {
			if c < len(grid[r]) {
				row[i] = grid[r][c]
			} else {
				row[i] = domain.Empty()
			}
		}
		rows = append(rows, row)
	}
	core := domain.Table{Columns: names, Rows: rows}

	confidence := confidenceScore(grid, core, warnings)

	e.logger.Debug("extraction complete",
		slog.Int("rows", core.RowCount()),
		slog.Int("columns", core.ColCount()),
		slog.Int("metadata_keys", metadata.Len()),
		slog.Float64("confidence", confidence))

	return domain.ExtractedData{
		Core:       core,
		Metadata:   metadata,
		HeaderRow:  headerRow,
		HasHeader:  true,
		DataRange:  domain.DataRange{Start: dataStart, End: denseEnd},
		Footer:     footer,
		Confidence: confidence,
		Warnings:   warnings,
	}
}

// allColumns returns column indices [from, width).
func allColumns(grid domain.Grid, from int) []int {
	width := grid.ColCount()
	var cols []int
	for c := from; c < width; c++ {
		cols = append(cols, c)
	}
	return cols
}

// placeholderName is the positional name given to unlabeled columns.
func placeholderName(i int) string {
	return fmt.Sprintf("col_%d", i)
}

// headerNames builds column names from the header row cells at the
// selected positions. Empty header cells become positional placeholders
// and collisions get a running occurrence suffix.
func headerNames(header []domain.Cell, cols []int) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		var cell domain.Cell
		if c < len(header) {
			cell = header[c]
		}
		if cell.IsEmpty() {
			names[i] = placeholderName(i)
		} else {
			names[i] = strings.TrimSpace(cell.Text())
		}
	}
	return dedupeNames(names)
}

// dedupeNames suffixes repeated names with their occurrence count in
// encounter order: name, name_1, name_2, ...
func dedupeNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, n := range names {
		if count, ok := seen[n]; ok {
			seen[n] = count + 1
			out[i] = fmt.Sprintf("%s_%d", n, count+1)
		} else {
			seen[n] = 0
			out[i] = n
		}
	}
	return out
}

// wholeGridTable wraps the full grid as a table with placeholder column
// names, used when no dense region exists.
func wholeGridTable(grid domain.Grid) domain.Table {
	names := make([]string, grid.ColCount())
	for i := range names {
		names[i] = placeholderName(i)
	}
	rows := make([][]domain.Cell, len(grid))
	for r, row := range grid {
		rows[r] = make([]domain.Cell, len(row))
		copy(rows[r], row)
	}
	return domain.Table{Columns: names, Rows: rows}
}
