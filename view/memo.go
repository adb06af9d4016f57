package view

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vegasq/tabview/query"
	"github.com/vegasq/tabview/record"
)

// DefaultMemoSize is the number of entries kept per cache level
const DefaultMemoSize = 128

type orderKey struct {
	revision  string
	query     string
	sortField string
	direction Direction
}

type pageKey struct {
	orderKey
	page        int
	rowsPerPage int
}

type orderEntry struct {
	terms    query.Terms
	filtered []record.Record
	ordered  []record.Record
}

type pageEntry struct {
	rows       []record.Record
	totalPages int
}

// MemoStats counts cache lookups
type MemoStats struct {
	OrderHits   uint64
	OrderMisses uint64
	PageHits    uint64
	PageMisses  uint64
}

// Memo memoizes Build for immutable datasets.
//
// The filtered and ordered sets are cached by (revision, query, sort field,
// direction); page slices additionally by (page, rows per page), so paging
// through a result never refilters. Results are shared between callers and
// must be treated as read-only. Memo is safe for concurrent use.
type Memo struct {
	orders *lru.Cache[orderKey, *orderEntry]
	pages  *lru.Cache[pageKey, *pageEntry]

	orderHits, orderMisses atomic.Uint64
	pageHits, pageMisses   atomic.Uint64
}

// NewMemo creates a memo keeping up to size entries per cache level
func NewMemo(size int) (*Memo, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}

	orders, err := lru.New[orderKey, *orderEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create order cache: %w", err)
	}
	pages, err := lru.New[pageKey, *pageEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	return &Memo{orders: orders, pages: pages}, nil
}

// Build is view.Build for a dataset, served from cache when possible
func (m *Memo) Build(ds record.Dataset, cfg Config) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := orderKey{
		revision:  ds.Revision,
		query:     cfg.Query,
		sortField: cfg.SortField,
		direction: cfg.Direction,
	}

	order, hit := m.orders.Get(key)
	if hit {
		m.orderHits.Add(1)
	} else {
		m.orderMisses.Add(1)
		terms, filtered, ordered := Order(ds.Records, cfg)
		order = &orderEntry{terms: terms, filtered: filtered, ordered: ordered}
		m.orders.Add(key, order)
	}

	pk := pageKey{orderKey: key, page: cfg.Page, rowsPerPage: cfg.RowsPerPage}
	page, hit := m.pages.Get(pk)
	if hit {
		m.pageHits.Add(1)
	} else {
		m.pageMisses.Add(1)
		rows, total := Paginate(order.ordered, cfg.Page, cfg.RowsPerPage)
		page = &pageEntry{rows: rows, totalPages: total}
		m.pages.Add(pk, page)
	}

	return &View{
		Config:     cfg,
		Terms:      order.terms,
		Filtered:   order.filtered,
		Ordered:    order.ordered,
		Rows:       page.rows,
		TotalPages: page.totalPages,
	}, nil
}

// Purge drops every cached entry
func (m *Memo) Purge() {
	m.orders.Purge()
	m.pages.Purge()
}

// Stats returns the lookup counters
func (m *Memo) Stats() MemoStats {
	return MemoStats{
		OrderHits:   m.orderHits.Load(),
		OrderMisses: m.orderMisses.Load(),
		PageHits:    m.pageHits.Load(),
		PageMisses:  m.pageMisses.Load(),
	}
}
