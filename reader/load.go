package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/tabview/record"
)

// ErrUnknownInput is returned by Load for an unrecognised file extension
var ErrUnknownInput = errors.New("unknown input format")

// Load reads a record set from path, choosing the reader by extension:
// .parquet files and glob patterns go through ReadMultipleFiles,
// .jsonl/.ndjson/.json through ReadJSONLinesFile.
func Load(path string) ([]record.Record, error) {
	if IsGlob(path) {
		return ReadMultipleFiles(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet", ".pq":
		return ReadFile(path)
	case ".jsonl", ".ndjson", ".json":
		return ReadJSONLinesFile(path)
	default:
		return nil, fmt.Errorf("%w: %q (want .parquet, .jsonl, .ndjson or .json)", ErrUnknownInput, path)
	}
}

// LoadDataset reads a record set and tags it with a fresh revision
func LoadDataset(path string) (record.Dataset, error) {
	records, err := Load(path)
	if err != nil {
		return record.Dataset{}, err
	}
	return record.NewDataset(records), nil
}
