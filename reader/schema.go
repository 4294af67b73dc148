package reader

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// SchemaInfo represents metadata about a single column in a parquet file.
type SchemaInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
}

// ExtractSchemaInfo extracts column metadata from a parquet file.
//
// Login tables are flat, so only leaf fields are reported; nested fields use
// dot notation (e.g. "meta.source").
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	reader, err := NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = reader.Close() }()

	var infos []SchemaInfo
	for _, field := range reader.Schema().Fields() {
		infos = append(infos, fieldInfo(field, "")...)
	}

	return infos, nil
}

// fieldInfo recursively extracts schema information from a field.
func fieldInfo(field parquet.Field, prefix string) []SchemaInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	children := field.Fields()
	if len(children) > 0 {
		// Group/struct field: report only the leaves.
		var infos []SchemaInfo
		for _, child := range children {
			infos = append(infos, fieldInfo(child, name)...)
		}
		return infos
	}

	return []SchemaInfo{{
		Name:     name,
		Type:     fieldType(field),
		Optional: field.Optional(),
	}}
}

// fieldType returns a user-friendly type name for a parquet field.
func fieldType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	// Logical type is more specific when present.
	if logicalType := field.Type().LogicalType(); logicalType != nil {
		switch logicalType.String() {
		case "STRING", "UTF8":
			return "STRING"
		case "DATE":
			return "DATE"
		case "TIME":
			return "TIME"
		case "TIMESTAMP":
			return "TIMESTAMP"
		case "DECIMAL":
			return "DECIMAL"
		case "JSON":
			return "JSON"
		}
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}
