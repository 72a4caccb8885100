// Package pagination computes page-existence without cursors.
//
// Two strategies are exposed and must agree for the same window:
//
//   - count-based: issue a separate COUNT for the full filter, then
//     HasNextCount(total, skipped, returned).
//   - overfetch-based: fetch pageSize+1 rows, HasNextOverfetch(returned,
//     pageSize), then Trim the extra row before returning. Used where the
//     rows come back through a nested relation query and a second COUNT
//     would be wasteful.
package pagination

// HasNextCount reports whether more rows exist beyond the current window,
// given the total matching the filter and how many were skipped/returned.
func HasNextCount(total, skipped, returned int) bool {
	return total > skipped+returned
}

// HasNextOverfetch reports whether more rows exist when the query fetched
// up to pageSize+1 rows.
func HasNextOverfetch(returned, pageSize int) bool {
	return returned > pageSize
}

// Trim cuts an overfetched result back down to pageSize.
func Trim[T any](items []T, pageSize int) []T {
	if len(items) > pageSize {
		return items[:pageSize]
	}
	return items
}

// Offset returns the number of rows to skip for a 1-based page number.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
