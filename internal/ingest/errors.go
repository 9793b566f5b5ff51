package ingest

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates the input file extension is not one the
// boundary can decode.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// SheetError reports a failure decoding one sheet of a workbook. Other
// sheets of the same file are unaffected.
type SheetError struct {
	Source string
	Sheet  string
	Err    error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("reading sheet %q of %s: %v", e.Sheet, e.Source, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
