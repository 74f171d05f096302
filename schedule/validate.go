package schedule

import "fmt"

// validateShape enforces invariant 1 and 2 from spec.md §3: row/start-index
// counts agree and every start index is within [0, len(row)]. Shared by the
// swap enumerator (C3) and the search driver (C6) so both panic the same way
// on malformed input instead of drifting.
func validateShape[T comparable](rows []Sequence[T], startIndices []int) {
	if len(rows) != len(startIndices) {
		fail(ErrRowStartMismatch, fmt.Sprintf("%d rows vs %d start indices", len(rows), len(startIndices)))
	}
	for r, start := range startIndices {
		if start < 0 || start > len(rows[r]) {
			fail(ErrStartOutOfRange, fmt.Sprintf("row %d: start %d out of [0,%d]", r, start, len(rows[r])))
		}
	}
}
