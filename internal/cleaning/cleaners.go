package cleaning

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gridlift/pkg/contracts/domain"
)

// Cleaner is a single table transform. Apply returns a new table and
// never mutates its input; source carries the originating file or sheet
// name for cleaners that care about provenance.
type Cleaner interface {
	ID() string
	Apply(t domain.Table, source string) (domain.Table, error)
}

// Func adapts a plain function to the Cleaner interface.
type Func struct {
	Name string
	Fn   func(t domain.Table, source string) (domain.Table, error)
}

// ID returns the cleaner name.
func (f Func) ID() string {
	return f.Name
}

// Apply runs the wrapped function.
func (f Func) Apply(t domain.Table, source string) (domain.Table, error) {
	return f.Fn(t, source)
}

// Built-in cleaner IDs.
const (
	IDNormalizeColumns = "normalize_columns"
	IDStripWhitespace  = "strip_whitespace"
	IDDropEmptyRows    = "drop_empty_rows"
	IDDropEmptyCols    = "drop_empty_cols"
	IDStandardizeNA    = "standardize_na"
	IDDeduplicate      = "deduplicate"
	IDInferTypes       = "infer_types"
)

// StripOptions configures NewStripWhitespace.
type StripOptions struct {
	// NormalizeInner additionally collapses internal whitespace runs to
	// a single space.
	NormalizeInner bool
}

// NewStripWhitespace returns a cleaner that trims leading and trailing
// whitespace from string cells.
func NewStripWhitespace(opts StripOptions) Cleaner {
	return Func{Name: IDStripWhitespace, Fn: func(t domain.Table, _ string) (domain.Table, error) {
		out := t.Clone()
		for _, row := range out.Rows {
			for i, c := range row {
				if c.Kind != domain.KindString {
					continue
				}
				if opts.NormalizeInner {
					row[i] = domain.String(strings.Join(strings.Fields(c.Str), " "))
				} else {
					row[i] = domain.String(strings.TrimSpace(c.Str))
				}
			}
		}
		return out, nil
	}}
}

// StripWhitespace returns the default edge-trimming cleaner.
func StripWhitespace() Cleaner {
	return NewStripWhitespace(StripOptions{})
}

// DropEmptyRows returns a cleaner that removes rows where every cell is
// empty, preserving order and reindexing contiguously.
func DropEmptyRows() Cleaner {
	return Func{Name: IDDropEmptyRows, Fn: func(t domain.Table, _ string) (domain.Table, error) {
		out := t.Clone()
		kept := out.Rows[:0]
		for _, row := range out.Rows {
			for _, c := range row {
				if !c.IsEmpty() {
					kept = append(kept, row)
					break
				}
			}
		}
		out.Rows = kept
		out.Index = nil
		return out, nil
	}}
}

// DropEmptyCols returns a cleaner that removes columns where every cell
// is empty.
func DropEmptyCols() Cleaner {
	return Func{Name: IDDropEmptyCols, Fn: func(t domain.Table, _ string) (domain.Table, error) {
		src := t.Clone()
		var keep []int
		for c := range src.Columns {
			for _, row := range src.Rows {
				if c < len(row) && !row[c].IsEmpty() {
					keep = append(keep, c)
					break
				}
			}
		}
		out := domain.Table{Columns: make([]string, len(keep)), Index: src.Index}
		for i, c := range keep {
			out.Columns[i] = src.Columns[c]
		}
		out.Rows = make([][]domain.Cell, len(src.Rows))
		for r, row := range src.Rows {
			newRow := make([]domain.Cell, len(keep))
			for i, c := range keep {
				if c < len(row) {
					newRow[i] = row[c]
				} else {
					newRow[i] = domain.Empty()
				}
			}
			out.Rows[r] = newRow
		}
		return out, nil
	}}
}

// naTokens is the fixed set of string spellings standardized to the null
// marker. Matching is exact on the trimmed value, not case-folded.
var naTokens = map[string]struct{}{
	"n/a": {}, "na": {}, "N/A": {}, "NA": {}, "-": {},
	"null": {}, "NULL": {}, "None": {}, "none": {}, "": {},
}

// StandardizeNA returns a cleaner that rewrites string cells holding a
// known NA spelling to the null marker. All other values pass through
// untouched.
func StandardizeNA() Cleaner {
	return Func{Name: IDStandardizeNA, Fn: func(t domain.Table, _ string) (domain.Table, error) {
		out := t.Clone()
		for _, row := range out.Rows {
			for i, c := range row {
				if c.Kind != domain.KindString {
					continue
				}
				if _, ok := naTokens[strings.TrimSpace(c.Str)]; ok {
					row[i] = domain.Empty()
				}
			}
		}
		return out, nil
	}}
}

// Deduplicate returns a cleaner that removes exact duplicate rows,
// keeping the first occurrence and reindexing.
func Deduplicate() Cleaner {
	return Func{Name: IDDeduplicate, Fn: func(t domain.Table, _ string) (domain.Table, error) {
		out := t.Clone()
		seen := make(map[string]struct{}, len(out.Rows))
		kept := out.Rows[:0]
		for _, row := range out.Rows {
			key := rowKey(row)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, row)
		}
		out.Rows = kept
		out.Index = nil
		return out, nil
	}}
}

// rowKey serializes a row for duplicate detection, keeping value kinds
// distinct so String("1") and Number(1) never collide.
func rowKey(row []domain.Cell) string {
	var b strings.Builder
	for _, c := range row {
		fmt.Fprintf(&b, "%d\x1f%s\x1e", c.Kind, c.Text())
	}
	return b.String()
}

// inferTimeLayouts are tried in order during datetime coercion.
var inferTimeLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"02-Jan-2006",
	time.RFC3339,
}

// InferTypes returns a cleaner that coerces string columns to numeric or
// datetime when at least half of the non-empty values convert. Failed
// conversions in a converted column become null markers; columns below
// the threshold are left as strings.
func InferTypes() Cleaner {
	return Func{Name: IDInferTypes, Fn: func(t domain.Table, _ string) (domain.Table, error) {
		out := t.Clone()
		for c := range out.Columns {
			if !stringColumn(out, c) {
				continue
			}
			if coerceNumeric(out, c) {
				continue
			}
			coerceTime(out, c)
		}
		return out, nil
	}}
}

// stringColumn reports whether column c holds only strings among its
// non-empty cells, with at least one such cell.
func stringColumn(t domain.Table, c int) bool {
	hasString := false
	for _, row := range t.Rows {
		if c >= len(row) || row[c].IsEmpty() {
			continue
		}
		if row[c].Kind != domain.KindString {
			return false
		}
		hasString = true
	}
	return hasString
}

// coerceNumeric converts column c to numbers when at least 50% of the
// non-empty values parse. Reports whether the conversion happened.
func coerceNumeric(t domain.Table, c int) bool {
	nonEmpty, parsed := 0, 0
	for _, row := range t.Rows {
		if c >= len(row) || row[c].IsEmpty() {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(strings.TrimSpace(row[c].Str), 64); err == nil {
			parsed++
		}
	}
	if nonEmpty == 0 || float64(parsed)/float64(nonEmpty) < 0.5 {
		return false
	}
	for _, row := range t.Rows {
		if c >= len(row) || row[c].IsEmpty() {
			continue
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(row[c].Str), 64); err == nil {
			row[c] = domain.Number(f)
		} else {
			row[c] = domain.Empty()
		}
	}
	return true
}

// coerceTime converts column c to timestamps when at least 50% of the
// non-empty values parse with any known layout.
func coerceTime(t domain.Table, c int) bool {
	nonEmpty, parsed := 0, 0
	for _, row := range t.Rows {
		if c >= len(row) || row[c].IsEmpty() {
			continue
		}
		nonEmpty++
		if _, ok := parseTime(row[c].Str); ok {
			parsed++
		}
	}
	if nonEmpty == 0 || float64(parsed)/float64(nonEmpty) < 0.5 {
		return false
	}
	for _, row := range t.Rows {
		if c >= len(row) || row[c].IsEmpty() {
			continue
		}
		if ts, ok := parseTime(row[c].Str); ok {
			row[c] = domain.Timestamp(ts)
		} else {
			row[c] = domain.Empty()
		}
	}
	return true
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range inferTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Apply folds the cleaners over the table in order, each consuming the
// previous output. The first failing cleaner aborts with its error; the
// caller decides whether to fall back to the uncleaned table.
func Apply(t domain.Table, cleaners []Cleaner, source string) (domain.Table, error) {
	out := t.Clone()
	for _, c := range cleaners {
		next, err := c.Apply(out, source)
		if err != nil {
			return domain.Table{}, fmt.Errorf("cleaner %s: %w", c.ID(), err)
		}
		out = next
	}
	return out, nil
}
