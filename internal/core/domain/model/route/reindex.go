package route

import (
	"cmp"
	"slices"
)

// Reindex compacts the slots of one weekday so their indices become exactly
// 0..len-1 while keeping their relative order. It returns the slots whose
// index changed, in ascending new index, which is a safe order to persist
// against a unique (weekday, index) constraint because compaction only ever
// lowers an index.
func Reindex(routes []*Route) []*Route {
	ordered := slices.Clone(routes)
	slices.SortStableFunc(ordered, func(a, b *Route) int {
		return cmp.Compare(a.index, b.index)
	})

	var moved []*Route
	for i, r := range ordered {
		if r.index == i {
			continue
		}
		r.moveIndex(i)
		moved = append(moved, r)
	}
	return moved
}
