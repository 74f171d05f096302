package schedule

import "fmt"

// InsertAt returns list with len(indices) copies of item inserted at the
// given (non-decreasing) positions — component C2. The j-th inserted copy
// lands immediately before the first indices[j] items of the original list
// that have not already been pushed back by an earlier insertion, i.e.
// insertions accumulate left to right:
//
//	InsertAt([a,b,c], []int{1,1,3}, x) == [a, x, x, b, c, x]
//
// Preconditions: indices is non-empty, non-decreasing, and every entry lies
// in [0, len(list)]. Violating any of these panics with a ContractViolation
// (see doc.go, "Errors") — these are not recoverable results, they are bugs
// in the caller.
func InsertAt[T comparable](list []T, indices []int, item T) []T {
	if len(indices) == 0 {
		fail(ErrIndicesEmpty, "InsertAt requires at least one insertion index")
	}

	out := make([]T, 0, len(list)+len(indices))
	prev := 0
	for i, idx := range indices {
		if idx < 0 || idx > len(list) {
			fail(ErrIndexOutOfRange, fmt.Sprintf("InsertAt: index %d at position %d out of [0,%d]", idx, i, len(list)))
		}
		if idx < prev {
			fail(ErrIndicesNotAscending, fmt.Sprintf("InsertAt: index %d at position %d precedes %d", idx, i, prev))
		}

		out = append(out, list[prev:idx]...)
		out = append(out, item)
		prev = idx
	}
	out = append(out, list[prev:]...)

	return out
}

// removeAll returns a copy of list with every occurrence of item removed,
// restricted to positions at index >= from (used to respect a frozen prefix;
// see Part E of SPEC_FULL.md for why removal is bounded this way). It also
// reports how many occurrences were removed.
func removeAll[T comparable](list []T, item T, from int) ([]T, int) {
	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	removed := 0
	for _, v := range list[from:] {
		if v == item {
			removed++
			continue
		}
		out = append(out, v)
	}

	return out, removed
}

// occurrencesFrom returns the ascending indices (relative to the full list)
// at which item occurs in list, restricted to positions >= from.
func occurrencesFrom[T comparable](list []T, item T, from int) []int {
	var occs []int
	for i := from; i < len(list); i++ {
		if list[i] == item {
			occs = append(occs, i)
		}
	}

	return occs
}
