package domain

// Grid is a rectangular sheet of cells as delivered by the ingestion
// boundary: every row has the same width, and rows and columns are
// addressed by zero-based position only. Ragged input must be
// rectangularized by the parser before it reaches the pipeline.
type Grid [][]Cell

// RowCount returns the number of rows in the grid.
func (g Grid) RowCount() int {
	return len(g)
}

// ColCount returns the grid width, 0 for an empty grid.
func (g Grid) ColCount() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Empty reports whether the grid has no rows.
func (g Grid) Empty() bool {
	return len(g) == 0
}

// Table is a rectangular data table with named columns and ordered rows.
// Index optionally carries per-row numbering from the table's source; a
// nil Index means rows are numbered contiguously from zero.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
	Index   []int    `json:"index,omitempty"`
}

// NewTable returns an empty table with the given column names.
func NewTable(columns []string) Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return Table{Columns: cols}
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t Table) ColCount() int {
	return len(t.Columns)
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Col returns the cells of column i in row order. Rows shorter than the
// column count contribute null markers. Returns nil if i is out of range.
func (t Table) Col(i int) []Cell {
	if i < 0 || i >= len(t.Columns) {
		return nil
	}
	col := make([]Cell, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			col[r] = row[i]
		} else {
			col[r] = Empty()
		}
	}
	return col
}

// ColumnIndex returns the position of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy. Every transform in the pipeline operates on
// clones so prior versions are never mutated in place.
func (t Table) Clone() Table {
	out := Table{Columns: make([]string, len(t.Columns))}
	copy(out.Columns, t.Columns)
	out.Rows = make([][]Cell, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = make([]Cell, len(row))
		copy(out.Rows[i], row)
	}
	if t.Index != nil {
		out.Index = make([]int, len(t.Index))
		copy(out.Index, t.Index)
	}
	return out
}
