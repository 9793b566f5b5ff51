package domain

import (
	"strconv"
	"strings"
	"time"
)

// CellKind identifies the value variant held by a Cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

// String returns a human-readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Cell is a tagged union over the value types a grid cell may hold.
// Only the field matching Kind is meaningful.
type Cell struct {
	Kind CellKind  `json:"kind"`
	Str  string    `json:"str,omitempty"`
	Num  float64   `json:"num,omitempty"`
	Bool bool      `json:"bool,omitempty"`
	Time time.Time `json:"time,omitempty"`
}

// Empty returns the null marker cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// String returns a string cell holding s verbatim.
func String(s string) Cell {
	return Cell{Kind: KindString, Str: s}
}

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{Kind: KindNumber, Num: f}
}

// Boolean returns a boolean cell.
func Boolean(b bool) Cell {
	return Cell{Kind: KindBool, Bool: b}
}

// Timestamp returns a date/time cell.
func Timestamp(t time.Time) Cell {
	return Cell{Kind: KindTime, Time: t}
}

// IsEmpty reports whether the cell is a null marker or a string that is
// empty after trimming. This is the single emptiness definition used by
// every density, extraction, and cleaning computation.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case KindEmpty:
		return true
	case KindString:
		return strings.TrimSpace(c.Str) == ""
	default:
		return false
	}
}

// Text returns the canonical string form of the cell value. Empty cells
// render as "". Callers that need trimmed text trim the result themselves.
func (c Cell) Text() string {
	switch c.Kind {
	case KindString:
		return c.Str
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindTime:
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Equal reports exact value equality between two cells.
func (c Cell) Equal(o Cell) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case KindEmpty:
		return true
	case KindString:
		return c.Str == o.Str
	case KindNumber:
		return c.Num == o.Num
	case KindBool:
		return c.Bool == o.Bool
	case KindTime:
		return c.Time.Equal(o.Time)
	default:
		return false
	}
}
