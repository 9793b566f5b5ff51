package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridlift/pkg/contracts/domain"
)

func TestIsHeaderCell(t *testing.T) {
	tests := []struct {
		name string
		cell domain.Cell
		want bool
	}{
		{name: "word", cell: domain.String("Sample ID"), want: true},
		{name: "empty", cell: domain.Empty(), want: false},
		{name: "whitespace only", cell: domain.String("   "), want: false},
		{name: "pure number", cell: domain.String("12.5"), want: false},
		{name: "negative number", cell: domain.String("-3"), want: false},
		{name: "single character", cell: domain.String("#"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeaderCell(tt.cell))
		})
	}
}

func TestIsDataCell(t *testing.T) {
	tests := []struct {
		name string
		cell domain.Cell
		want bool
	}{
		{name: "identifier", cell: domain.String("SAMP-001"), want: true},
		{name: "number", cell: domain.String("12.5"), want: true},
		{name: "signed number", cell: domain.String("+3"), want: true},
		{name: "word", cell: domain.String("Blood"), want: false},
		{name: "lowercase identifier", cell: domain.String("samp-001"), want: false},
		{name: "empty", cell: domain.Empty(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDataCell(tt.cell))
		})
	}
}

func TestLooksLikeRowNumbers(t *testing.T) {
	tests := []struct {
		name string
		grid domain.Grid
		want bool
	}{
		{
			name: "sequential from one",
			grid: domain.Grid{row("1"), row("2"), row("3"), row("4")},
			want: true,
		},
		{
			name: "sequential from arbitrary start",
			grid: domain.Grid{row("10"), row("11"), row("12")},
			want: true,
		},
		{
			name: "float-formatted integers",
			grid: domain.Grid{row("1.0"), row("2.0"), row("3.0")},
			want: true,
		},
		{
			name: "gaps still sequential by position",
			grid: domain.Grid{row("1"), row(""), row("2"), row("3"), row("4")},
			want: true,
		},
		{
			name: "too few values",
			grid: domain.Grid{row("1"), row("2")},
			want: false,
		},
		{
			name: "non-numeric value",
			grid: domain.Grid{row("1"), row("2"), row("SAMP-003"), row("4")},
			want: false,
		},
		{
			name: "measurements not row numbers",
			grid: domain.Grid{row("12"), row("47"), row("3"), row("88"), row("15")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeRowNumbers(tt.grid, 0, 0, len(tt.grid)-1))
		})
	}
}

func TestDetectHeaderRow(t *testing.T) {
	tests := []struct {
		name    string
		grid    domain.Grid
		wantRow int
		wantOK  bool
	}{
		{
			name:   "empty grid",
			grid:   nil,
			wantOK: false,
		},
		{
			name: "header above data",
			grid: domain.Grid{
				row("Sample ID", "Test Type", "Result"),
				row("SAMP-001", "Blood", "12.5"),
				row("SAMP-002", "Urine", "7.1"),
			},
			wantRow: 0, wantOK: true,
		},
		{
			name: "sparse title skipped",
			grid: domain.Grid{
				row("Quarterly Report", "", ""),
				row("Sample ID", "Test Type", "Result"),
				row("SAMP-001", "Blood", "12.5"),
			},
			wantRow: 1, wantOK: true,
		},
		{
			name: "all rows data-like",
			grid: domain.Grid{
				row("SAMP-001", "12.5", "3"),
				row("SAMP-002", "7.1", "4"),
			},
			wantOK: false,
		},
		{
			name: "tie keeps earliest row",
			grid: domain.Grid{
				row("Alpha", "Beta", "Gamma"),
				row("Alpha", "Beta", "Gamma"),
				row("Delta", "Epsilon", "Zeta"),
			},
			wantRow: 0, wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectHeaderRow(tt.grid, 0, len(tt.grid)-1)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRow, got)
			}
		})
	}
}
