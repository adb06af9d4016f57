package record

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type tag of a Value
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value is a tagged field value. The zero Value is empty text.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

// Int returns an integer value
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a decimal value
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Text returns a text value
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Bool returns a boolean value
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Date returns a date value holding an already formatted date string.
func Date(formatted string) Value { return Value{kind: KindDate, s: formatted} }

// Kind returns the type tag
func (v Value) Kind() Kind { return v.kind }

// IsNumeric reports whether the value is an integer or a decimal
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// String returns the canonical text rendering of the value.
//
// Decimals use the shortest representation that round-trips and avoid
// exponent notation below 1e21, so 6000.5 renders as "6000.5" and
// 100000000.0 as "100000000".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Number returns the value as a float64. Text and dates are parsed as
// decimal numbers; booleans, NaN, infinities and unparsable text report
// false.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
	case KindBool:
		return 0, false
	default:
		return ParseNumber(v.s)
	}
}

// Interface returns the natural Go representation of the value
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return v.s
	}
}

// ParseNumber parses s as a decimal number after trimming surrounding
// whitespace. Only digits, sign, decimal point and exponent are accepted:
// infinities, NaN, hex floats and out-of-range input report false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.IndexFunc(s, notDecimal) >= 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	case math.Abs(f) < 1e21 && math.Abs(f) >= 1e-6:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// Compare compares two values and returns:
// -1 if a < b
//
//	0 if a == b
//
// +1 if a > b
//
// Numbers compare numerically (integers and decimals mix), text and dates
// compare ordinally and booleans order false before true. Values of
// unrelated kinds are ordered by kind so the result is always total.
func Compare(a, b Value) int {
	if a.IsNumeric() && b.IsNumeric() {
		if a.kind == KindInt && b.kind == KindInt {
			return cmpOrdered(a.i, b.i)
		}
		af, _ := a.Number()
		bf, _ := b.Number()
		return cmpOrdered(af, bf)
	}

	if a.kind != b.kind {
		textual := func(k Kind) bool { return k == KindText || k == KindDate }
		if !textual(a.kind) || !textual(b.kind) {
			return cmpOrdered(a.kind, b.kind)
		}
	}

	switch a.kind {
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	default:
		return strings.Compare(a.s, b.s)
	}
}

func cmpOrdered[T int64 | float64 | Kind](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
