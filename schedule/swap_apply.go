// Package schedule - swap applicator (component C5).
//
// applySwap builds the candidate schedule a Swap describes and decides
// whether to accept it, per spec.md §4.5. It is the only place in this
// package that mutates per-row costs and the running objective, and, apart
// from newState's initial per-row costs (search.go), the only place that
// calls into the Evaluator (always through the cost cache, C4).
package schedule

// state is the search driver's working snapshot: a Schedule paired with the
// per-row frozen-prefix boundaries, cached per-row costs, and the running
// objective (spec.md §3's "Schedule... Paired one-to-one with... Start
// indices... Per-row costs... Objective").
type state[T comparable] struct {
	sched        Schedule[T]
	startIndices []int
	rowCosts     []float64
	objective    float64
}

// rowEqual reports whether two sequences hold the same items in the same
// order.
func rowEqual[T comparable](a, b Sequence[T]) bool {
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

// fitsTarget reports whether indices is a valid InsertAt argument against a
// target list of length limit: non-empty, non-decreasing, every entry in
// [0, limit]. A Swap enumerated against one pass-start schedule can still
// fail this once an earlier commit in the same pass has shrunk or reordered
// its target row (see the staleness note on applySwap) — applySwap calls
// this before InsertAt specifically to turn that case into a rejection
// instead of letting InsertAt panic.
func fitsTarget(indices []int, limit int) bool {
	if len(indices) == 0 {
		return false
	}
	prev := 0
	for i, idx := range indices {
		if idx < 0 || idx > limit {
			return false
		}
		if i > 0 && idx < prev {
			return false
		}
		prev = idx
	}

	return true
}

// applySwap computes the candidate schedule sw describes and returns it only
// if the resulting change in objective is strictly less than threshold (and
// the swap is not a no-op: spec.md §3 invariant 4). The second return value
// reports acceptance; on rejection the input state is returned unchanged.
//
// sw.Item's occurrence count at/after FromRow's frozen-prefix boundary is
// expected to equal len(sw.InsertionIndices), and sw.InsertionIndices is
// expected to fit the row it targets — both true whenever sw came straight
// out of EnumerateSwaps against st.sched. Either can legitimately go stale
// within a single BFS pass (spec.md §4.6: the pass scans a candidate list
// taken against the schedule as it stood at the start of the pass, then
// commits every accepted improvement in place as it goes, so a later
// candidate in that same list may describe an item an earlier commit already
// moved, or name insertion positions a shrunk row no longer has). A stale
// swap — wrong occurrence count (ErrOccurrenceCountMismatch), missing item
// (ErrItemNotFound), or out-of-range/non-ascending indices
// (ErrStaleInsertionIndices) — is rejected here exactly like a not-improving
// one, rather than treated as caller misuse (SPEC_FULL.md Part E, "Stale
// swaps are rejections, not contract violations") — ContractViolation stays
// reserved for shape problems a caller controls directly (InsertAt,
// EnumerateSwaps, validateShape).
//
// Evaluator errors are propagated unchanged and the state is left untouched.
func applySwap[T comparable, C any](cache *costCache[T], ctx C, eval Evaluator[T, C], st state[T], sw Swap[T], threshold float64) (state[T], bool, error) {
	if sw.FromRow == sw.ToRow {
		return applyIntraRow(cache, ctx, eval, st, sw, threshold)
	}

	return applyInterRow(cache, ctx, eval, st, sw, threshold)
}

func applyIntraRow[T comparable, C any](cache *costCache[T], ctx C, eval Evaluator[T, C], st state[T], sw Swap[T], threshold float64) (state[T], bool, error) {
	row := st.sched.Rows[sw.FromRow]
	start := st.startIndices[sw.FromRow]

	removed, count := removeAll(row, sw.Item, start)
	if count == 0 || count != len(sw.InsertionIndices) {
		return st, false, nil
	}
	if !fitsTarget(sw.InsertionIndices, len(removed)) {
		return st, false, nil
	}

	newRow := InsertAt(removed, sw.InsertionIndices, sw.Item)
	if rowEqual(newRow, row) {
		return st, false, nil
	}

	newCost, err := evalCached(cache, ctx, eval, sw.FromRow, newRow)
	if err != nil {
		return st, false, err
	}

	delta := newCost - st.rowCosts[sw.FromRow]
	if !(delta < threshold) {
		return st, false, nil
	}

	next := st.sched.clone()
	next.Rows[sw.FromRow] = newRow
	rowCosts := append([]float64(nil), st.rowCosts...)
	rowCosts[sw.FromRow] = newCost

	return state[T]{
		sched:        next,
		startIndices: st.startIndices,
		rowCosts:     rowCosts,
		objective:    st.objective + delta,
	}, true, nil
}

func applyInterRow[T comparable, C any](cache *costCache[T], ctx C, eval Evaluator[T, C], st state[T], sw Swap[T], threshold float64) (state[T], bool, error) {
	fromStart := st.startIndices[sw.FromRow]
	fromRow := st.sched.Rows[sw.FromRow]
	toRow := st.sched.Rows[sw.ToRow]

	newFrom, count := removeAll(fromRow, sw.Item, fromStart)
	if count == 0 || count != len(sw.InsertionIndices) {
		return st, false, nil
	}
	if !fitsTarget(sw.InsertionIndices, len(toRow)) {
		return st, false, nil
	}

	newTo := InsertAt(toRow, sw.InsertionIndices, sw.Item)

	newCostFrom, err := evalCached(cache, ctx, eval, sw.FromRow, newFrom)
	if err != nil {
		return st, false, err
	}
	newCostTo, err := evalCached(cache, ctx, eval, sw.ToRow, newTo)
	if err != nil {
		return st, false, err
	}

	deltaA := newCostFrom - st.rowCosts[sw.FromRow]
	deltaB := newCostTo - st.rowCosts[sw.ToRow]
	if !(deltaA+deltaB < threshold) {
		return st, false, nil
	}

	next := st.sched.clone()
	next.Rows[sw.FromRow] = newFrom
	next.Rows[sw.ToRow] = newTo
	rowCosts := append([]float64(nil), st.rowCosts...)
	rowCosts[sw.FromRow] = newCostFrom
	rowCosts[sw.ToRow] = newCostTo

	return state[T]{
		sched:        next,
		startIndices: st.startIndices,
		rowCosts:     rowCosts,
		objective:    st.objective + deltaA + deltaB,
	}, true, nil
}
