package reader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vegasq/tabview/record"
)

// ErrNotObject is returned when a JSON line is not an object
var ErrNotObject = errors.New("expected a JSON object")

// ReadJSONLines reads one JSON object per line.
//
// Key order is preserved. Whole numbers load as integers and other numbers
// as decimals; nested arrays and objects are kept as their compact JSON
// text. Blank lines are skipped.
func ReadJSONLines(r io.Reader) ([]record.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []record.Record
	for n := 1; ; n++ {
		rec, err := decodeObject(dec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadJSONLinesFile reads a JSON lines file
func ReadJSONLinesFile(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadJSONLines(f)
}

// decodeObject reads the next top-level object from the stream. io.EOF is
// returned only when the stream ends before an object starts.
func decodeObject(dec *json.Decoder) (record.Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return record.Record{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return record.Record{}, fmt.Errorf("%w, got %v", ErrNotObject, tok)
	}

	rec, err := decodeFields(dec)
	if errors.Is(err, io.EOF) {
		return record.Record{}, io.ErrUnexpectedEOF
	}
	return rec, err
}

// decodeFields reads the members of an object up to its closing brace
func decodeFields(dec *json.Decoder) (record.Record, error) {
	var fields []record.Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return record.Record{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return record.Record{}, fmt.Errorf("invalid object key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return record.Record{}, fmt.Errorf("field %q: %w", key, err)
		}
		v, err := decodeValue(raw)
		if err != nil {
			return record.Record{}, fmt.Errorf("field %q: %w", key, err)
		}
		fields = append(fields, record.F(key, v))
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return record.Record{}, err
	}
	return record.New(fields...), nil
}

// decodeValue converts a raw JSON value into a record value
func decodeValue(raw json.RawMessage) (record.Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return record.Value{}, err
		}
		return record.Text(buf.String()), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return record.Value{}, err
	}
	return record.ValueOf(v), nil
}
