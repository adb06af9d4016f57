package reader

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabview/record"
)

// ColumnInfo describes one leaf column of a Parquet file
type ColumnInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Kind         string `json:"kind"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
}

// Record returns the column description as a record, for printing with
// the output formatters
func (c ColumnInfo) Record() record.Record {
	return record.New(
		record.F("name", record.Text(c.Name)),
		record.F("type", record.Text(c.Type)),
		record.F("physical_type", record.Text(c.PhysicalType)),
		record.F("logical_type", record.Text(c.LogicalType)),
		record.F("kind", record.Text(c.Kind)),
		record.F("optional", record.Bool(c.Optional)),
		record.F("repeated", record.Bool(c.Repeated)),
	)
}

// ExtractSchemaInfo describes every leaf column of a Parquet file.
//
// Nested fields use dot notation (e.g. "address.street"); Kind is the
// record kind the column's values load as.
func ExtractSchemaInfo(path string) ([]ColumnInfo, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var infos []ColumnInfo
	for _, field := range r.Schema().Fields() {
		infos = appendColumnInfo(infos, field, "", false)
	}
	return infos, nil
}

// appendColumnInfo walks a field, propagating the repeated flag of parent
// groups to their leaves.
func appendColumnInfo(infos []ColumnInfo, field parquet.Field, prefix string, parentRepeated bool) []ColumnInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		for _, child := range children {
			infos = appendColumnInfo(infos, child, name, repeated)
		}
		return infos
	}

	userType := getUserFriendlyType(field)
	return append(infos, ColumnInfo{
		Name:         name,
		Type:         userType,
		PhysicalType: getPhysicalType(field),
		LogicalType:  getLogicalType(field),
		Kind:         kindOf(userType, prefix != "" || repeated).String(),
		Optional:     field.Optional(),
		Repeated:     repeated,
	})
}

// kindOf maps a column type onto the record kind its values load as.
// Nested and repeated values are rendered as text.
func kindOf(userType string, nested bool) record.Kind {
	if nested {
		return record.KindText
	}
	switch userType {
	case "BOOLEAN":
		return record.KindBool
	case "INT32", "INT64", "INT96":
		return record.KindInt
	case "FLOAT32", "FLOAT64":
		return record.KindFloat
	case "DATE":
		return record.KindDate
	default:
		return record.KindText
	}
}

var physicalTypeNames = map[parquet.Kind]string{
	parquet.Boolean:           "BOOLEAN",
	parquet.Int32:             "INT32",
	parquet.Int64:             "INT64",
	parquet.Int96:             "INT96",
	parquet.Float:             "FLOAT",
	parquet.Double:            "DOUBLE",
	parquet.ByteArray:         "BYTE_ARRAY",
	parquet.FixedLenByteArray: "FIXED_LEN_BYTE_ARRAY",
}

// getPhysicalType returns the physical type name of a Parquet field.
func getPhysicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}
	if name, ok := physicalTypeNames[field.Type().Kind()]; ok {
		return name
	}
	return "UNKNOWN"
}

// getLogicalType returns the logical type name of a Parquet field.
func getLogicalType(field parquet.Field) string {
	if field.Type() == nil {
		return ""
	}
	if lt := field.Type().LogicalType(); lt != nil {
		return lt.String()
	}
	return ""
}

// getUserFriendlyType returns a simplified type name for a Parquet field,
// preferring the logical type when it is more specific.
func getUserFriendlyType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch lt := getLogicalType(field); lt {
	case "STRING", "UTF8":
		return "STRING"
	case "ENUM", "UUID", "DATE", "TIME", "TIMESTAMP", "DECIMAL", "JSON", "BSON":
		return lt
	}

	switch kind := field.Type().Kind(); kind {
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	default:
		if name, ok := physicalTypeNames[kind]; ok {
			return name
		}
		return "UNKNOWN"
	}
}

// String implements fmt.Stringer for debugging output
func (c ColumnInfo) String() string {
	return fmt.Sprintf("%s %s (%s)", c.Name, c.Type, c.Kind)
}
