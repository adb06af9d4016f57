package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

// salesRow mirrors the sales table used across the tests
type salesRow struct {
	ID           int64   `parquet:"id"`
	Name         string  `parquet:"name"`
	Sales        float64 `parquet:"sales"`
	Region       string  `parquet:"region"`
	Transactions int32   `parquet:"transactions"`
	IsActive     bool    `parquet:"isActive"`
}

// writeParquet writes rows to dir/filename and returns the path
func writeParquet[T any](t *testing.T, dir, filename string, rows []T) string {
	t.Helper()
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

func sampleRows() []salesRow {
	return []salesRow{
		{ID: 1, Name: "User1", Sales: 6000, Region: "North", Transactions: 12, IsActive: true},
		{ID: 2, Name: "User2", Sales: 3000.5, Region: "South", Transactions: 40, IsActive: false},
		{ID: 3, Name: "User3", Sales: 9000, Region: "North", Transactions: 7, IsActive: true},
	}
}
