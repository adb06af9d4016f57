package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabview/record"
)

// FileColumn is the column added to every record by ReadMultipleFiles
const FileColumn = "_file"

// maxFiles bounds how many files a glob pattern may expand to
const maxFiles = 1000

// Reader reads parquet files and returns rows as records.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	reader, err := NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Columns returns the top-level column names in schema order
func (r *Reader) Columns() []string {
	fields := r.pqFile.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return names
}

// ReadAll reads all rows from the parquet file into memory.
//
// Records keep the schema's column order. DATE columns are rendered as
// 2006-01-02 dates. The entire file is loaded into memory, so this method
// may not be suitable for very large files.
func (r *Reader) ReadAll() ([]record.Record, error) {
	columns := r.Columns()
	dateColumns := make(map[string]bool)
	for _, f := range r.pqFile.Schema().Fields() {
		if len(f.Fields()) == 0 && getUserFriendlyType(f) == "DATE" {
			dateColumns[f.Name()] = true
		}
	}

	records := make([]record.Record, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for name := range dateColumns {
			row[name] = epochDays(row[name])
		}
		records = append(records, record.FromMap(row, columns))
	}

	return records, nil
}

// epochDays converts a DATE column value (days since 1970-01-01) into a
// record date. Other values are returned unchanged.
func epochDays(v interface{}) interface{} {
	var days int64
	switch d := v.(type) {
	case int32:
		days = int64(d)
	case int64:
		days = d
	default:
		return v
	}
	return record.Date(time.Unix(days*86400, 0).UTC().Format(time.DateOnly))
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the parquet reader and releases associated resources.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// ReadFile reads every record of a single parquet file
func ReadFile(path string) ([]record.Record, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}

// IsGlob reports whether a path contains glob wildcards
func IsGlob(path string) bool {
	return strings.ContainsAny(path, "*?[]{}")
}

// ReadMultipleFiles reads all records from parquet files matching a glob pattern.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// Examples:
//   - "data/*.parquet" - all parquet files in data directory
//   - "data/2024-*.parquet" - parquet files starting with 2024- in data directory
//
// For a glob, each record gets a trailing "_file" field with its source
// path. A plain path is read as a single file without that field.
func ReadMultipleFiles(pattern string) ([]record.Record, error) {
	if !IsGlob(pattern) {
		return ReadFile(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	// Limit number of files to prevent resource exhaustion
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var all []record.Record
	for _, filePath := range matches {
		records, err := ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		for _, r := range records {
			fields := make([]record.Field, 0, r.Len()+1)
			for _, name := range r.Fields() {
				v, _ := r.Get(name)
				fields = append(fields, record.F(name, v))
			}
			fields = append(fields, record.F(FileColumn, record.Text(filePath)))
			all = append(all, record.New(fields...))
		}
	}

	return all, nil
}
