package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gridlift/pkg/contracts/domain"
)

// CSVWriter writes pipeline tables as CSV files.
type CSVWriter struct {
	baseDir string
}

// NewCSVWriter creates a writer rooted at baseDir; relative output paths
// resolve against it.
func NewCSVWriter(baseDir string) *CSVWriter {
	return &CSVWriter{baseDir: baseDir}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	// BOMPrefix prepends a UTF-8 BOM so Excel opens the file correctly.
	BOMPrefix bool
	// IncludeIndex adds a leading column with each row's index.
	IncludeIndex bool
}

// WriteTable writes a table to filePath with the given options.
func (w *CSVWriter) WriteTable(filePath string, t domain.Table, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	slog.Info("Writing CSV file",
		slog.String("path", fullPath),
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", t.ColCount()))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := t.Columns
	if options.IncludeIndex {
		header = append([]string{""}, t.Columns...)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, row := range t.Rows {
		record := make([]string, 0, len(row)+1)
		if options.IncludeIndex {
			record = append(record, strconv.Itoa(rowIndex(t, i)))
		}
		for _, c := range row {
			record = append(record, c.Text())
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// rowIndex returns the row's carried index, or its position when the
// table is numbered contiguously.
func rowIndex(t domain.Table, i int) int {
	if t.Index != nil && i < len(t.Index) {
		return t.Index[i]
	}
	return i
}

func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.baseDir == "" {
		return filePath
	}
	return filepath.Join(w.baseDir, filePath)
}
