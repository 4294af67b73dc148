package output

import "io"

// Table is an ordered result table produced by a report.
//
// Columns fixes the output column order; each row holds one value per
// column, positionally.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a result table in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(table Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
