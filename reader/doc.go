// Package reader loads record sets from Apache Parquet and JSON lines files.
//
// Rows are returned as record.Record values with a stable field order: the
// Parquet schema order, or the key order of each JSON object.
//
// # Basic Usage
//
// Reading a single parquet file:
//
//	reader, err := reader.NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//
//	records, err := reader.ReadAll()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Picking the reader from the file name:
//
//	records, err := reader.Load("users.jsonl")
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	records, err := reader.ReadMultipleFiles("data/*.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Each record ends with a "_file" field holding the source file path
//	for _, r := range records {
//	    f, _ := r.Get("_file")
//	    fmt.Println(f)
//	}
//
// # Schema Introspection
//
//	columns, err := reader.ExtractSchemaInfo("data.parquet")
//	for _, c := range columns {
//	    fmt.Printf("%s: %s\n", c.Name, c.Type)
//	}
//
// # Resource Management
//
// Always call Close() when done reading to release file handles. It is
// safe to call Close more than once.
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader
