package pagination

// Clamp normalizes a requested page size: non-positive values fall back to
// def, values above max are capped at max.
func Clamp(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// Trim applies the fetch-one-extra convention: items were fetched with
// limit+1, so a slice longer than limit means another page exists. Returns
// the page-sized slice and whether more rows remain.
func Trim[T any](items []T, limit int) ([]T, bool) {
	if len(items) > limit {
		return items[:limit], true
	}
	return items, false
}

// Window slices one page worth of items (plus the extra lookahead element)
// out of a fully materialized list, for sources that cannot push the offset
// into the query itself.
func Window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit + 1
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
