package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridlift/pkg/contracts/domain"
)

func TestMetadata(t *testing.T) {
	tests := []struct {
		name   string
		grid   domain.Grid
		endRow int
		want   map[string]string
		order  []string
	}{
		{
			name: "colon pairs in single cells",
			grid: domain.Grid{
				row("Report Date: 2024-01-15"),
				row("Generated By: Lab System v2.1"),
			},
			endRow: 2,
			want: map[string]string{
				"Report Date":  "2024-01-15",
				"Generated By": "Lab System v2.1",
			},
			order: []string{"Report Date", "Generated By"},
		},
		{
			name: "equals pair in single cell",
			grid: domain.Grid{
				row("Version= 2.1"),
			},
			endRow: 1,
			want:   map[string]string{"Version": "2.1"},
			order:  []string{"Version"},
		},
		{
			name: "adjacent key value cells",
			grid: domain.Grid{
				row("", "Operator", "Jane"),
			},
			endRow: 1,
			want:   map[string]string{"Operator": "Jane"},
			order:  []string{"Operator"},
		},
		{
			name: "key value cells too far apart",
			grid: domain.Grid{
				row("Operator", "", "", "", "Jane"),
			},
			endRow: 1,
			want:   map[string]string{},
		},
		{
			name: "even run of pairs",
			grid: domain.Grid{
				row("Operator", "Jane", "Shift", "Night"),
			},
			endRow: 1,
			want:   map[string]string{"Operator": "Jane", "Shift": "Night"},
			order:  []string{"Operator", "Shift"},
		},
		{
			name: "numeric key rejected",
			grid: domain.Grid{
				row("", "42", "Jane"),
			},
			endRow: 1,
			want:   map[string]string{},
		},
		{
			name: "leading row number dropped before pairing",
			grid: domain.Grid{
				row("3", "Operator", "Jane"),
			},
			endRow: 1,
			want:   map[string]string{"Operator": "Jane"},
			order:  []string{"Operator"},
		},
		{
			name: "later value wins keeps position",
			grid: domain.Grid{
				row("Operator: Jane"),
				row("Shift: Night"),
				row("Operator: Bob"),
			},
			endRow: 3,
			want:   map[string]string{"Operator": "Bob", "Shift": "Night"},
			order:  []string{"Operator", "Shift"},
		},
		{
			name: "rows at or past endRow ignored",
			grid: domain.Grid{
				row("Operator: Jane"),
				row("Shift: Night"),
			},
			endRow: 1,
			want:   map[string]string{"Operator": "Jane"},
			order:  []string{"Operator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Metadata(tt.grid, tt.endRow)
			require.Equal(t, len(tt.want), meta.Len())
			for k, v := range tt.want {
				got, ok := meta.Get(k)
				require.True(t, ok, "missing key %q", k)
				assert.Equal(t, v, got)
			}
			if tt.order != nil {
				assert.Equal(t, tt.order, meta.Keys())
			}
		})
	}
}

func TestFooter(t *testing.T) {
	grid := domain.Grid{
		row("", "Reviewed by QA", "", "2024-01-20"),
		row("", "", "", ""),
		row("9", "End of report", "", ""),
	}

	tests := []struct {
		name     string
		startRow int
		want     []string
	}{
		{name: "joins cells and drops row numbers", startRow: 0, want: []string{"Reviewed by QA 2024-01-20", "End of report"}},
		{name: "mid grid start", startRow: 2, want: []string{"End of report"}},
		{name: "negative start clamped", startRow: -3, want: []string{"Reviewed by QA 2024-01-20", "End of report"}},
		{name: "past end", startRow: 10, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Footer(grid, tt.startRow))
		})
	}
}
