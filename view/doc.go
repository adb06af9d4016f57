// Package view builds the derived views of a record set: ordered,
// paginated and aggregated projections driven by a caller-owned Config.
//
// Every function here is pure. Inputs are never modified and every result is
// a fresh slice, so callers can memoize on the input tuple; Memo does that
// for the common (dataset revision, query, sort) and (…, page) keys.
//
// # Pipeline
//
//	cfg := view.DefaultConfig().WithQuery("region:North sales>5000")
//	v, err := view.Build(records, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Summary()) // Showing 2 of 2 entries
//
// Build runs parse → filter → sort → paginate. GroupCount and Series work on
// the filtered set independently of pagination:
//
//	counts := view.GroupCount(v.Filtered, "region")
//	points := view.Series(v.Ordered, "name", "sales", 10)
package view
