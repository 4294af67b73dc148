// Package output provides formatters for writing report results.
//
// This package defines the Formatter interface and implementations for
// common output formats. All formatters consume a Table: an ordered list of
// column names plus positional rows, so every format preserves the report's
// declared column order.
//
// # Supported Formats
//
//   - JSON Lines: one JSON object per row (suitable for streaming)
//   - CSV: comma-separated values with header row
//   - Table: aligned plain-text table for terminals
//
// # Basic Usage
//
// Using the JSON formatter:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
//
// Writing CSV to a buffer instead:
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(&buf)
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
//	csvString := buf.String()
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(table Table) error
//	    SetOutput(w io.Writer)
//	}
//
// # Type Handling
//
// Strings, integers, floats and booleans are written directly; nil values
// become empty cells in CSV and table output and null in JSON. The CSV
// formatter prefixes values that could be interpreted as spreadsheet
// formulas.
package output
