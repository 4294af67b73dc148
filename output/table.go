package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter outputs result tables as aligned plain-text tables
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new plain-text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the table with a header row and column alignment.
//
// An empty table renders nothing, matching the CSV formatter's behavior.
func (t *TableFormatter) Format(table Table) error {
	if len(table.Rows) == 0 {
		return nil
	}

	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(table.Columns)
	tw.SetAutoFormatHeaders(false)

	for _, row := range table.Rows {
		record := make([]string, len(table.Columns))
		for i := range table.Columns {
			if i < len(row) {
				record[i] = formatValue(row[i])
			}
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}
