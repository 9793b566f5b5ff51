package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridlift/pkg/contracts/domain"
)

func strRow(vals ...string) []domain.Cell {
	out := make([]domain.Cell, len(vals))
	for i, v := range vals {
		if v == "" {
			out[i] = domain.Empty()
		} else {
			out[i] = domain.String(v)
		}
	}
	return out
}

func twoTables() *domain.NamedTables {
	named := domain.NewNamedTables()
	named.Set("a.csv", domain.Table{
		Columns: []string{"sample_id", "result"},
		Rows: [][]domain.Cell{
			strRow("SAMP-001", "12.5"),
			strRow("SAMP-002", "7.1"),
		},
	})
	named.Set("b.csv", domain.Table{
		Columns: []string{"sample_id", "result"},
		Rows: [][]domain.Cell{
			strRow("SAMP-101", "9.9"),
		},
	})
	return named
}

func TestTables(t *testing.T) {
	t.Run("stacks rows in name order", func(t *testing.T) {
		got, err := Tables(twoTables(), DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, []string{"sample_id", "result"}, got.Columns)
		require.Equal(t, 3, got.RowCount())
		assert.Equal(t, "SAMP-001", got.Rows[0][0].Str)
		assert.Equal(t, "SAMP-101", got.Rows[2][0].Str)
		assert.Nil(t, got.Index)
	})

	t.Run("source column tags provenance", func(t *testing.T) {
		opts := DefaultOptions()
		opts.AddSource = true
		got, err := Tables(twoTables(), opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"sample_id", "result", SourceColumn}, got.Columns)
		assert.Equal(t, "a.csv", got.Rows[0][2].Str)
		assert.Equal(t, "a.csv", got.Rows[1][2].Str)
		assert.Equal(t, "b.csv", got.Rows[2][2].Str)
	})

	t.Run("column union with null fill", func(t *testing.T) {
		named := domain.NewNamedTables()
		named.Set("a", domain.Table{
			Columns: []string{"x", "y"},
			Rows:    [][]domain.Cell{strRow("1", "2")},
		})
		named.Set("b", domain.Table{
			Columns: []string{"y", "z"},
			Rows:    [][]domain.Cell{strRow("3", "4")},
		})

		got, err := Tables(named, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y", "z"}, got.Columns)
		require.Equal(t, 2, got.RowCount())
		assert.True(t, got.Rows[0][2].IsEmpty())
		assert.True(t, got.Rows[1][0].IsEmpty())
		assert.Equal(t, "3", got.Rows[1][1].Str)
	})

	t.Run("metadata surfaced as columns", func(t *testing.T) {
		metaA := domain.NewMetadata()
		metaA.Set("Report Date", "2024-01-15")

		opts := DefaultOptions()
		opts.IncludeMetadata = []string{"Report Date"}
		opts.Metadata = map[string]*domain.Metadata{"a.csv": metaA}

		got, err := Tables(twoTables(), opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"sample_id", "result", "_Report Date"}, got.Columns)
		assert.Equal(t, "2024-01-15", got.Rows[0][2].Str)
		// b.csv has no metadata entry, its rows get null markers.
		assert.True(t, got.Rows[2][2].IsEmpty())
	})

	t.Run("metadata requested without map", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeMetadata = []string{"Report Date"}
		_, err := Tables(twoTables(), opts)
		assert.ErrorIs(t, err, ErrMetadataRequired)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := Tables(domain.NewNamedTables(), DefaultOptions())
		require.NoError(t, err)
		assert.True(t, got.Empty())

		got, err = Tables(nil, DefaultOptions())
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})

	t.Run("preserved index", func(t *testing.T) {
		named := domain.NewNamedTables()
		named.Set("a", domain.Table{
			Columns: []string{"x"},
			Rows:    [][]domain.Cell{strRow("1"), strRow("2")},
			Index:   []int{5, 9},
		})
		named.Set("b", domain.Table{
			Columns: []string{"x"},
			Rows:    [][]domain.Cell{strRow("3")},
		})

		opts := Options{IgnoreIndex: false}
		got, err := Tables(named, opts)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 9, 0}, got.Index)
	})

	t.Run("input tables untouched", func(t *testing.T) {
		named := twoTables()
		opts := DefaultOptions()
		opts.AddSource = true
		_, err := Tables(named, opts)
		require.NoError(t, err)
		a, _ := named.Get("a.csv")
		assert.Equal(t, []string{"sample_id", "result"}, a.Columns)
		assert.Len(t, a.Rows[0], 2)
	})
}
