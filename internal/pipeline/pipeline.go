// Package pipeline holds the query core shared by the list endpoints:
// predicate filtering, stable single-key sorting, and bounded pagination.
// Every step operates on copies; callers keep the pre-pagination set for
// aggregation.
package pipeline

import "sort"

// Predicate decides whether an item survives filtering.
type Predicate[T any] func(T) bool

// Filter returns the items satisfying every predicate. Predicates combine
// with logical AND; an empty predicate list keeps everything. The input
// slice is never modified.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// SortBy orders items in place by the compare function, stably: equal items
// keep their source order in both directions, so reversing the direction
// reverses the output exactly for strict orderings.
func SortBy[T any](items []T, compare func(a, b T) int, descending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		c := compare(items[i], items[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
}

// ClampLimit resolves a requested page size against a fallback and a hard
// maximum. Zero or negative requests yield the fallback.
func ClampLimit(requested, fallback, max int) int {
	limit := requested
	if limit <= 0 {
		limit = fallback
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}

// Truncate bounds the slice to at most limit items. It returns the input
// when it already fits.
func Truncate[T any](items []T, limit int) []T {
	if limit < 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
