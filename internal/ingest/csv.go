package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV decodes a delimited file into a rectangular grid. Rows may be
// ragged in the input; the grid is padded to the widest row.
func ReadCSV(path string) (sheet Sheet, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Sheet{Name: name, Grid: gridFromStrings(records)}, nil
}

// ReadFile decodes any supported input file into its sheets: one per
// worksheet for workbooks, exactly one for delimited files.
func ReadFile(path string) ([]Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadWorkbook(path)
	case ".csv":
		sheet, err := ReadCSV(path)
		if err != nil {
			return nil, err
		}
		return []Sheet{sheet}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
