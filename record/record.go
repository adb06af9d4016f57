package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Field is a single named value
type Field struct {
	Name  string
	Value Value
}

// F is shorthand for building a Field
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// Record is one row of tabular data: field names in insertion order mapped
// to tagged values.
type Record struct {
	names  []string
	values map[string]Value
}

// New builds a record from fields. A repeated name keeps its first
// position and takes the last value.
func New(fields ...Field) Record {
	r := Record{
		names:  make([]string, 0, len(fields)),
		values: make(map[string]Value, len(fields)),
	}
	for _, f := range fields {
		if _, exists := r.values[f.Name]; !exists {
			r.names = append(r.names, f.Name)
		}
		r.values[f.Name] = f.Value
	}
	return r
}

// FromMap converts a generic row into a record.
//
// Fields listed in order come first, in that order; any remaining keys of
// row follow in sorted order so the result is deterministic. Go scalar
// types are mapped onto value kinds; time.Time becomes a date formatted as
// 2006-01-02 and anything else is rendered as text.
func FromMap(row map[string]interface{}, order []string) Record {
	fields := make([]Field, 0, len(row))
	seen := make(map[string]bool, len(row))
	for _, name := range order {
		v, ok := row[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		fields = append(fields, F(name, ValueOf(v)))
	}

	rest := make([]string, 0)
	for name := range row {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		fields = append(fields, F(name, ValueOf(row[name])))
	}

	return New(fields...)
}

// ValueOf maps a Go value onto a tagged Value
func ValueOf(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return Text("")
	case Value:
		return val
	case string:
		return Text(val)
	case []byte:
		return Text(string(val))
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint:
		return Int(int64(val))
	case uint8:
		return Int(int64(val))
	case uint16:
		return Int(int64(val))
	case uint32:
		return Int(int64(val))
	case uint64:
		return Int(int64(val))
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Int(i)
		}
		if f, err := val.Float64(); err == nil {
			return Float(f)
		}
		return Text(val.String())
	case time.Time:
		return Date(val.Format(time.DateOnly))
	default:
		return Text(fmt.Sprintf("%v", val))
	}
}

// Fields returns the field names in order. The slice must not be modified.
func (r Record) Fields() []string {
	return r.names
}

// Len returns the number of fields
func (r Record) Len() int {
	return len(r.names)
}

// Get returns the value of a field.
//
// The exact name is tried first; failing that the first field whose name
// matches case-insensitively is returned.
func (r Record) Get(name string) (Value, bool) {
	if v, ok := r.values[name]; ok {
		return v, true
	}
	for _, n := range r.names {
		if strings.EqualFold(n, name) {
			return r.values[n], true
		}
	}
	return Value{}, false
}

// Values returns the values in field order
func (r Record) Values() []Value {
	vals := make([]Value, len(r.names))
	for i, n := range r.names {
		vals[i] = r.values[n]
	}
	return vals
}

// Map returns the record as a generic row
func (r Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.names))
	for _, n := range r.names {
		m[n] = r.values[n].Interface()
	}
	return m
}

// MarshalJSON encodes the record as a JSON object keeping field order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		v := r.values[n]
		var val []byte
		if v.kind == KindFloat && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
			// not representable in JSON
			val = []byte("null")
		} else {
			val, err = json.Marshal(v.Interface())
		}
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", n, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the record as name=value pairs
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range r.names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(r.values[n].String())
	}
	b.WriteByte('}')
	return b.String()
}
