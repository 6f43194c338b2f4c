package ledger

import (
	"sort"
	"time"
)

// Record is what the controller needs from a stored transaction.
type Record interface {
	// Key identifies the record within its collection.
	Key() string
	// SortTime is the creation time or date used for newest-first ordering.
	SortTime() time.Time
}

// Page is one page of records plus the paging metadata reported by a store.
// Number is zero-based.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
}

// TotalPages is ceil(count / size). It is zero for an empty collection.
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// SortAndPage orders a copy of records newest first and returns the slice
// [page*size, page*size+size). Equal sort times keep their input order. The
// input is not modified. A page past the end yields an empty slice.
func SortAndPage[T Record](records []T, page, size int) []T {
	sorted := SortNewestFirst(records)
	if size <= 0 || page < 0 {
		return []T{}
	}
	start := page * size
	if start >= len(sorted) {
		return []T{}
	}
	end := start + size
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end:end]
}

// SortNewestFirst returns a stable, newest-first copy of records.
func SortNewestFirst[T Record](records []T) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortTime().After(sorted[j].SortTime())
	})
	return sorted
}
