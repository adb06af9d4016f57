package view

import "github.com/vegasq/tabview/record"

// TotalPages returns ceil(count / rowsPerPage), never less than 1.
// A non-positive rowsPerPage yields 1.
func TotalPages(count, rowsPerPage int) int {
	if rowsPerPage <= 0 || count <= 0 {
		return 1
	}
	return (count + rowsPerPage - 1) / rowsPerPage
}

// Paginate returns the records on page (1-based) and the total page count.
//
// The slice starts at (page-1)*rowsPerPage and is clipped to the input. A
// page past the end, or non-positive page or rowsPerPage, yields an empty
// slice. The result is a new slice.
func Paginate(records []record.Record, page, rowsPerPage int) ([]record.Record, int) {
	total := TotalPages(len(records), rowsPerPage)
	if page < 1 || rowsPerPage < 1 {
		return []record.Record{}, total
	}

	// page is bounded before multiplying so huge values cannot overflow
	if page > total {
		return []record.Record{}, total
	}

	start := (page - 1) * rowsPerPage
	end := start + rowsPerPage
	if end > len(records) {
		end = len(records)
	}
	if start >= end {
		return []record.Record{}, total
	}

	out := make([]record.Record, end-start)
	copy(out, records[start:end])
	return out, total
}

// ClampPage clamps page into [1, totalPages]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
