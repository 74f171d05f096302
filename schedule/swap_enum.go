// Package schedule - swap enumerator (component C3).
//
// EnumerateSwaps walks a Schedule and yields every distinct candidate 2-opt
// swap exactly once: for each distinct item (scanned in row-major order
// starting at each row's frozen-prefix boundary), every legal destination row
// and every legal insertion-position multiset, as produced by C1
// (EnumerateInsertions).
package schedule

import "iter"

// EnumerateSwaps lazily yields every (item, fromRow, toRow, insertionIndices)
// tuple satisfying the rules in spec.md §4.3, each exactly once:
//
//  1. Distinct items are discovered by a single row-major scan over mutable
//     positions (index >= startIndices[row]); the first row/position at
//     which an item is seen becomes its fromRow.
//  2. occs is the set of positions >= startIndices[fromRow] at which the
//     item occurs in row[fromRow] (see "Open question resolution" in
//     SPEC_FULL.md part E: occurrences below the frozen boundary are never
//     counted, which keeps this enumerator and the swap applicator (C5) in
//     lockstep and makes the frozen-prefix invariant unconditional rather
//     than dependent on a downstream filter).
//  3. A single-occurrence item is only proposed for intra-row moves; an
//     item occurring more than once may move to any row.
//  4. For each candidate destination row, insertion index lists of length
//     len(occs) are drawn from EnumerateInsertions over that row's mutable
//     span (shrunk by len(occs) when the destination is the source row).
//  5. The intra-row identity swap (reinserting the item exactly where it
//     already was) is suppressed.
func EnumerateSwaps[T comparable](sched Schedule[T], startIndices []int) iter.Seq[Swap[T]] {
	validateShape(sched.Rows, startIndices)

	return func(yield func(Swap[T]) bool) {
		seen := make(map[T]bool)

		for fromRow, row := range sched.Rows {
			start := startIndices[fromRow]
			for j := start; j < len(row); j++ {
				item := row[j]
				if seen[item] {
					continue
				}
				seen[item] = true

				occs := occurrencesFrom(row, item, start)
				count := len(occs)

				var toRows []int
				if count == 1 {
					toRows = []int{fromRow}
				} else {
					toRows = make([]int, len(sched.Rows))
					for i := range toRows {
						toRows[i] = i
					}
				}

				idOccs := make([]int, count)
				for i, o := range occs {
					idOccs[i] = o - i
				}

				for _, toRow := range toRows {
					rowSize := len(sched.Rows[toRow])
					if toRow == fromRow {
						rowSize -= count
					}

					for idx := range EnumerateInsertions(count, rowSize, startIndices[toRow]) {
						if toRow == fromRow && intSliceEqual(idx, idOccs) {
							continue
						}
						if !yield(Swap[T]{
							Item:             item,
							FromRow:          fromRow,
							ToRow:            toRow,
							InsertionIndices: idx,
						}) {
							return
						}
					}
				}
			}
		}
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// countSwaps counts the swaps EnumerateSwaps would yield, without
// materializing them. Exercised directly by tests asserting the formula in
// spec.md §8 ("implementations assert this count on small cases") and kept
// as a real function (SPEC_FULL.md D.1) rather than a prose claim.
func countSwaps[T comparable](sched Schedule[T], startIndices []int) int {
	n := 0
	for range EnumerateSwaps(sched, startIndices) {
		n++
	}

	return n
}
