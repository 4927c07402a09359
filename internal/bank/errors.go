package bank

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("question id not found")
	ErrOutOfRange     = errors.New("question index out of range")
	ErrInvalidChoice  = errors.New("choice must be an integer between 1 and 4")
	ErrSourceNotFound = errors.New("quiz file not found")
	ErrNoSources      = errors.New("no quiz files in data directory")
)

// SchemaError reports required columns missing from a source header. No row
// is validated when the schema itself is broken.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// RowError reports the first validation failure on a data row. Row is
// 1-based, counting data rows only (the header is row 0).
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
