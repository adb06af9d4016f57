// Package record defines the row model shared by the query, view and output
// packages.
//
// A Record is an ordered list of named fields, each holding a tagged Value
// (integer, decimal, text, boolean or formatted date). Records in a set are
// expected to share the same field names; Validate checks that invariant
// together with the uniqueness of an identifier field.
//
// Every Value has a canonical text rendering which is what the query
// language matches against and what the exporters write:
//
//	r := record.New(
//	    record.F("id", record.Int(1)),
//	    record.F("region", record.Text("North")),
//	    record.F("sales", record.Float(6000.5)),
//	)
//	v, _ := r.Get("sales")
//	fmt.Println(v) // 6000.5
//
// Records are treated as immutable once built. Every derived view in this
// module is a new slice of the same Record values.
package record
