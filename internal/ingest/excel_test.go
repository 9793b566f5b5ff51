package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Results": {
			{"Sample ID", "Result"},
			{"SAMP-001", 12.5},
		},
	})

	sheets, err := ReadWorkbook(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "Results", sheets[0].Name)

	grid := sheets[0].Grid
	require.Equal(t, 2, grid.RowCount())
	assert.Equal(t, "Sample ID", grid[0][0].Str)
	assert.Equal(t, "12.5", grid[1][1].Str)
}

func TestReadWorkbookMissingFile(t *testing.T) {
	_, err := ReadWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestReadFileWorkbook(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Only": {{"x"}},
	})

	sheets, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "Only", sheets[0].Name)
}
