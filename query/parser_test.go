package query

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Terms
	}{
		{
			name:  "empty query",
			query: "",
			want:  Terms{},
		},
		{
			name:  "whitespace only",
			query: "  \t\n ",
			want:  Terms{},
		},
		{
			name:  "equality",
			query: "region:North",
			want:  Terms{{Kind: TermEqual, Field: "region", Operand: "North"}},
		},
		{
			name:  "greater than",
			query: "sales>5000",
			want:  Terms{{Kind: TermGreater, Field: "sales", Operand: "5000"}},
		},
		{
			name:  "less than",
			query: "transactions<10.5",
			want:  Terms{{Kind: TermLess, Field: "transactions", Operand: "10.5"}},
		},
		{
			name:  "free text",
			query: "user1",
			want:  Terms{{Kind: TermFreeText, Operand: "user1"}},
		},
		{
			name:  "mixed terms keep order",
			query: "region:North  sales>5000\tactive",
			want: Terms{
				{Kind: TermEqual, Field: "region", Operand: "North"},
				{Kind: TermGreater, Field: "sales", Operand: "5000"},
				{Kind: TermFreeText, Operand: "active"},
			},
		},
		{
			name:  "colon wins over earlier greater-than",
			query: "a>b:c",
			want:  Terms{{Kind: TermEqual, Field: "a>b", Operand: "c"}},
		},
		{
			name:  "colon wins over later comparison",
			query: "note:x>5",
			want:  Terms{{Kind: TermEqual, Field: "note", Operand: "x>5"}},
		},
		{
			name:  "greater-than wins over less-than",
			query: "a<b>c",
			want:  Terms{{Kind: TermGreater, Field: "a<b", Operand: "c"}},
		},
		{
			name:  "split at first colon",
			query: "time:10:30",
			want:  Terms{{Kind: TermEqual, Field: "time", Operand: "10:30"}},
		},
		{
			name:  "empty operand",
			query: "region:",
			want:  Terms{{Kind: TermEqual, Field: "region", Operand: ""}},
		},
		{
			name:  "empty field",
			query: ">5",
			want:  Terms{{Kind: TermGreater, Field: "", Operand: "5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.query, got, tt.want)
			}
		})
	}
}

func TestTerms_String(t *testing.T) {
	queries := []string{
		"region:North sales>5000",
		"a<b>c free",
		"region: x",
	}

	for _, q := range queries {
		if got := Parse(q).String(); got != q {
			t.Errorf("Parse(%q).String() = %q", q, got)
		}
	}
}

func TestTerms_Fields(t *testing.T) {
	terms := Parse("region:North sales>1 region:N text sales<9 id:3")
	want := []string{"region", "sales", "id"}
	if got := terms.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{name: "valid", query: "region:North sales>5000"},
		{name: "empty", query: ""},
		{
			name:    "too long",
			query:   strings.Repeat("a", MaxQueryLength+1),
			wantErr: ErrQueryTooLong,
		},
		{
			name:    "too many terms",
			query:   strings.Repeat("x ", MaxTerms+1),
			wantErr: ErrTooManyTerms,
		},
		{
			name:    "field name too long",
			query:   strings.Repeat("f", MaxFieldNameLength+1) + ":v",
			wantErr: ErrFieldNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrict(tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrict() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, Parse(tt.query)) {
				t.Errorf("ParseStrict() = %v, want same as Parse", got)
			}
		})
	}
}
