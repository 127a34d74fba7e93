package query

// DefaultPageSize applies when a view does not set its own page size.
const DefaultPageSize = 20

// Page is one slice of a filtered snapshot plus its navigation state.
type Page[T any] struct {
	Items       []T
	Page        int
	PageSize    int
	PageCount   int
	Total       int
	HasNext     bool
	HasPrevious bool
}

// PageCount returns ceil(total/pageSize), zero for an empty set.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return 1 + (total-1)/pageSize
}

// ClampPage bounds n into [1, max(pageCount, 1)].
func ClampPage(n, pageCount int) int {
	upper := pageCount
	if upper < 1 {
		upper = 1
	}
	if n < 1 {
		return 1
	}
	if n > upper {
		return upper
	}
	return n
}

// Paginate returns the requested page. The page number is not clamped: a page
// past the end yields an empty slice.
func Paginate[T any](records []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(records)
	count := PageCount(total, pageSize)

	items := []T{}
	// Bound the page before multiplying so huge page numbers cannot overflow.
	if page >= 1 && page <= count {
		start := (page - 1) * pageSize
		end := start + pageSize
		if end > total {
			end = total
		}
		items = records[start:end]
	}

	return Page[T]{
		Items:       items,
		Page:        page,
		PageSize:    pageSize,
		PageCount:   count,
		Total:       total,
		HasNext:     page < count,
		HasPrevious: page > 1,
	}
}
