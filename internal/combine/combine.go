// Package combine merges several extracted tables into one, optionally
// tagging provenance and surfacing selected metadata values as columns.
package combine

import (
	"errors"

	"gridlift/pkg/contracts/domain"
)

// SourceColumn is the provenance column added when AddSource is set.
const SourceColumn = "_source"

// ErrMetadataRequired is returned when metadata columns are requested
// but no metadata map was supplied. This is a hard precondition:
// combination must not silently produce an incomplete table.
var ErrMetadataRequired = errors.New("include metadata requested but no metadata map provided")

// Options configures table combination.
type Options struct {
	// AddSource adds a _source column holding each row's table name.
	AddSource bool
	// IgnoreIndex renumbers output rows contiguously from zero instead
	// of preserving each table's own row numbering.
	IgnoreIndex bool
	// Metadata maps table names to their extracted metadata.
	Metadata map[string]*domain.Metadata
	// IncludeMetadata lists metadata keys to surface as _<key> columns.
	IncludeMetadata []string
}

// DefaultOptions matches the common combination call: no provenance
// column, contiguous output numbering.
func DefaultOptions() Options {
	return Options{IgnoreIndex: true}
}

// Tables concatenates the named tables in map order. The output columns
// are the union of input columns in first-appearance order; tables
// lacking a column contribute null markers for it.
func Tables(named *domain.NamedTables, opts Options) (domain.Table, error) {
	if len(opts.IncludeMetadata) > 0 && opts.Metadata == nil {
		return domain.Table{}, ErrMetadataRequired
	}
	if named == nil || named.Len() == 0 {
		return domain.Table{}, nil
	}

	frames := make([]domain.Table, 0, named.Len())
	for _, name := range named.Names() {
		t, _ := named.Get(name)
		frame := t.Clone()

		if opts.AddSource {
			frame = withColumn(frame, SourceColumn, domain.String(name))
		}

		for _, key := range opts.IncludeMetadata {
			value := domain.Empty()
			if meta, ok := opts.Metadata[name]; ok && meta != nil {
				if v, found := meta.Get(key); found {
					value = domain.String(v)
				}
			}
			frame = withColumn(frame, "_"+key, value)
		}

		frames = append(frames, frame)
	}

	return concat(frames, opts.IgnoreIndex), nil
}

// withColumn appends a column filled with the same value for every row.
func withColumn(t domain.Table, name string, value domain.Cell) domain.Table {
	t.Columns = append(t.Columns, name)
	for i, row := range t.Rows {
		t.Rows[i] = append(row, value)
	}
	return t
}

// concat stacks the frames row-wise over the union of their columns.
func concat(frames []domain.Table, ignoreIndex bool) domain.Table {
	var columns []string
	colPos := make(map[string]int)
	for _, f := range frames {
		for _, c := range f.Columns {
			if _, ok := colPos[c]; !ok {
				colPos[c] = len(columns)
				columns = append(columns, c)
			}
		}
	}

	out := domain.Table{Columns: columns}
	for _, f := range frames {
		// Per-frame mapping of output position to source position;
		// within a frame the first column of a given name wins.
		src := make([]int, len(columns))
		for i := range src {
			src[i] = -1
		}
		for i, c := range f.Columns {
			if pos := colPos[c]; src[pos] == -1 {
				src[pos] = i
			}
		}

		for r, row := range f.Rows {
			newRow := make([]domain.Cell, len(columns))
			for i, s := range src {
				if s >= 0 && s < len(row) {
					newRow[i] = row[s]
				} else {
					newRow[i] = domain.Empty()
				}
			}
			out.Rows = append(out.Rows, newRow)

			if !ignoreIndex {
				idx := r
				if f.Index != nil && r < len(f.Index) {
					idx = f.Index[r]
				}
				out.Index = append(out.Index, idx)
			}
		}
	}

	return out
}
