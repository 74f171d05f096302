package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// rowLenCost scores a row by its length minus 1 for every position i where
// the item equals "X" and i is odd — just enough structure to make
// intra-row reordering change the cost deterministically in tests.
func rowLenCost(ctx int, row int, seq Sequence[string]) (float64, error) {
	cost := float64(len(seq))
	for i, v := range seq {
		if v == "X" && i%2 == 1 {
			cost -= 1
		}
	}

	return cost, nil
}

func TestApplySwap_IntraRow_AcceptsImprovingMove(t *testing.T) {
	cache := newCostCache[string](8)
	sched := Schedule[string]{Rows: []Sequence[string]{{"X", "A", "B"}}}
	st, err := newState[string, int](cache, 0, rowLenCost, sched, []int{0})
	require.NoError(t, err)

	sw := Swap[string]{Item: "X", FromRow: 0, ToRow: 0, InsertionIndices: []int{1}}
	next, accepted, err := applySwap(cache, 0, rowLenCost, st, sw, 0)
	require.NoError(t, err)
	require.True(t, accepted, "expected the move to X landing on an odd index to be accepted")
	require.Equal(t, []string{"A", "X", "B"}, next.sched.Rows[0])
	require.Equal(t, st.objective-1, next.objective)
}

func TestApplySwap_RejectsNoOpIdentityMove(t *testing.T) {
	cache := newCostCache[string](8)
	sched := Schedule[string]{Rows: []Sequence[string]{{"A", "X", "B"}}}
	st, err := newState[string, int](cache, 0, rowLenCost, sched, []int{0})
	require.NoError(t, err)

	sw := Swap[string]{Item: "X", FromRow: 0, ToRow: 0, InsertionIndices: []int{1}}
	_, accepted, err := applySwap(cache, 0, rowLenCost, st, sw, 0)
	require.NoError(t, err)
	require.False(t, accepted, "identity swap must never be accepted")
}

func TestApplySwap_StaleSwap_OccurrenceCountMismatchRejectedNotPanicked(t *testing.T) {
	cache := newCostCache[string](8)
	sched := Schedule[string]{Rows: []Sequence[string]{{"A", "X", "B"}}}
	st, err := newState[string, int](cache, 0, rowLenCost, sched, []int{0})
	require.NoError(t, err)

	// A swap describing an item/occurrence shape the current row no longer has.
	stale := Swap[string]{Item: "X", FromRow: 0, ToRow: 0, InsertionIndices: []int{0, 1}}
	next, accepted, err := applySwap(cache, 0, rowLenCost, st, stale, 0)
	require.NoError(t, err, "stale swap must not return an error")
	require.False(t, accepted, "stale swap must not be accepted")
	require.Equal(t, st.objective, next.objective, "rejected stale swap must leave state untouched")
}

// TestApplySwap_StaleSwap_OutOfRangeIntraRowIndicesRejectedNotPanicked covers
// the gap a prior review found: a swap whose occurrence count still matches
// len(InsertionIndices) (so the count check alone would let it through) but
// whose indices no longer fit the row because an earlier commit in the same
// pass shrank it. Without the fitsTarget guard in applyIntraRow, this panics
// inside InsertAt instead of being rejected like any other stale swap.
func TestApplySwap_StaleSwap_OutOfRangeIntraRowIndicesRejectedNotPanicked(t *testing.T) {
	cache := newCostCache[string](8)
	// As if an earlier swap in the same pass already moved everything else
	// out of this row, leaving only the item the stale candidate targets.
	sched := Schedule[string]{Rows: []Sequence[string]{{"X"}}}
	st, err := newState[string, int](cache, 0, rowLenCost, sched, []int{0})
	require.NoError(t, err)

	// Computed back when the row still had X at index 1; removing X now
	// leaves an empty row, so index 1 is out of [0, 0].
	stale := Swap[string]{Item: "X", FromRow: 0, ToRow: 0, InsertionIndices: []int{1}}
	next, accepted, err := applySwap(cache, 0, rowLenCost, st, stale, 0)
	require.NoError(t, err, "out-of-range stale swap must not return an error")
	require.False(t, accepted, "out-of-range stale swap must not be accepted")
	require.Equal(t, st.objective, next.objective, "rejected stale swap must leave state untouched")
}

// TestApplySwap_StaleSwap_OutOfRangeInterRowIndicesRejectedNotPanicked is the
// inter-row counterpart: the source occurrence is still valid, but the
// destination row has shrunk since the candidate was enumerated.
func TestApplySwap_StaleSwap_OutOfRangeInterRowIndicesRejectedNotPanicked(t *testing.T) {
	cache := newCostCache[string](8)
	sched := Schedule[string]{Rows: []Sequence[string]{
		{"Z", "A"},
		{},
	}}
	st, err := newState[string, int](cache, 0, rowLenCost, sched, []int{0, 0})
	require.NoError(t, err)

	// Computed back when row 1 was larger; it has since shrunk to empty, so
	// index 1 is out of [0, 0].
	stale := Swap[string]{Item: "Z", FromRow: 0, ToRow: 1, InsertionIndices: []int{1}}
	next, accepted, err := applySwap(cache, 0, rowLenCost, st, stale, 1000)
	require.NoError(t, err, "out-of-range stale swap must not return an error")
	require.False(t, accepted, "out-of-range stale swap must not be accepted")
	require.Equal(t, st.objective, next.objective, "rejected stale swap must leave state untouched")
}

func TestApplySwap_InterRow_MovesItemAndUpdatesBothCosts(t *testing.T) {
	cache := newCostCache[string](8)
	sched := Schedule[string]{Rows: []Sequence[string]{
		{"A", "X"},
		{"B"},
	}}
	st, err := newState[string, int](cache, 0, rowLenCost, sched, []int{0, 0})
	require.NoError(t, err)

	sw := Swap[string]{Item: "X", FromRow: 0, ToRow: 1, InsertionIndices: []int{1}}
	next, accepted, err := applySwap(cache, 0, rowLenCost, st, sw, 1000)
	require.NoError(t, err)
	require.True(t, accepted, "expected acceptance under a permissive threshold")
	require.Equal(t, []string{"A"}, next.sched.Rows[0])
	require.Equal(t, []string{"B", "X"}, next.sched.Rows[1])
	// [A] costs 1; [B X] costs 2 - 1 = 1 (X at odd index 1).
	require.Equal(t, []float64{1, 1}, next.rowCosts)
	require.Equal(t, 2.0, next.objective)
}

func TestApplySwap_EvaluatorErrorLeavesStateUntouched(t *testing.T) {
	cache := newCostCache[string](8)
	sched := Schedule[string]{Rows: []Sequence[string]{{"A", "X", "B"}}}
	st, err := newState[string, int](cache, 0, rowLenCost, sched, []int{0})
	require.NoError(t, err)

	failing := func(ctx int, row int, seq Sequence[string]) (float64, error) {
		return 0, errTestEval
	}
	sw := Swap[string]{Item: "X", FromRow: 0, ToRow: 0, InsertionIndices: []int{2}}
	next, accepted, err := applySwap(cache, 0, failing, st, sw, 0)
	require.Error(t, err, "expected evaluator error to propagate")
	require.False(t, accepted, "must not accept on evaluator error")
	require.Equal(t, st.objective, next.objective, "state must be unchanged on evaluator error")
}

func TestObjective_SumsRowCosts(t *testing.T) {
	require.Equal(t, 3.0, objective([]float64{1, 2.5, -0.5}))
}
