package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs result tables as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the table as JSON Lines (one JSON object per row)
func (j *JSONFormatter) Format(table Table) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range table.Rows {
		obj := make(map[string]interface{}, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(row) {
				obj[col] = row[i]
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
