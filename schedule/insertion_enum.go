// Package schedule - insertion-position enumerator (component C1).
//
// EnumerateInsertions lists, in canonical lexicographically-ascending order,
// every way to choose k insertion positions (with repetition) from the n+1
// slots starting at a given offset. It backs the swap enumerator (C3), which
// needs "every way to re-insert k copies of an item into a row of size n,
// not touching the frozen prefix".
//
// Design: a single incremental array p[0..k-1], advanced in place and copied
// out on every emission, matching the "maintain p, scan-and-carry" algorithm
// spec.md prescribes rather than materializing the whole multiset up front
// (count grows combinatorially with row size).
package schedule

import "iter"

// multichoose returns C(n+k-1, k), the count of k-multisubsets of an n-set.
// Used both to size EnumerateInsertions' contract and as a tested invariant
// (see insertion_enum_test.go).
func multichoose(n, k int) int {
	if k == 0 {
		return 1
	}
	if n <= 0 {
		return 0
	}

	// C(n+k-1, k) computed iteratively to avoid overflow from large
	// factorials; n and k are small in practice (row sizes), so this is O(k).
	num := 1
	den := 1
	for i := 1; i <= k; i++ {
		num *= n + k - i
		den *= i
	}

	return num / den
}

// EnumerateInsertions lazily yields every non-decreasing length-k index list
// with entries in [start, n], in lexicographically ascending order. The total
// count equals multichoose(n+1-start, k).
//
// Edge cases: k==0 yields exactly one empty emission. start==n yields exactly
// one emission, k copies of n.
//
// Contract: n >= start-1, k >= 0; violating this panics with a
// ContractViolation (EnumerateInsertions is an internal building block, not a
// boundary-facing API, so out-of-contract input here is always a bug in this
// package's own callers).
func EnumerateInsertions(k, n, start int) iter.Seq[[]int] {
	if k < 0 || start > n+1 {
		fail(ErrIndexOutOfRange, "EnumerateInsertions: invalid k/n/start")
	}

	return func(yield func([]int) bool) {
		if k == 0 {
			yield([]int{})

			return
		}

		total := multichoose(n-start+1, k)
		p := make([]int, k)
		for i := range p {
			p[i] = start
		}

		for emitted := 0; emitted < total; emitted++ {
			emit := make([]int, k)
			copy(emit, p)
			if !yield(emit) {
				return
			}
			if emitted == total-1 {
				break
			}

			// Advance: scan left-to-right for the first entry equal to n;
			// bump the entry before it and reset every entry from there on
			// to the bumped value. If no entry equals n, just bump the last.
			carry := -1
			for i := 0; i < k; i++ {
				if p[i] == n {
					carry = i
					break
				}
			}
			if carry == -1 {
				p[k-1]++
				continue
			}
			p[carry-1]++
			for i := carry - 1; i < k; i++ {
				p[i] = p[carry-1]
			}
		}
	}
}
