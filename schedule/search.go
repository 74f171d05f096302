// Package schedule - search driver (component C6).
//
// BFSOpt2 and DFSOpt2 are the two entry points this package exposes: a
// deterministic best-effort-within-pass policy and a seeded stochastic
// first-improvement policy, both iterating C3's swap enumerator against C5's
// swap applicator until a full pass accepts nothing (a local optimum).
//
// Neither policy ever searches outside the frozen-prefix boundaries supplied
// by the caller, and neither ever returns a partial result: cancellation and
// Evaluator errors abort the call with the input schedule discarded, per
// spec.md §7.
package schedule

import (
	"math/rand"

	"go.uber.org/zap"
)

// newState validates shape, then seeds the cost cache with every row's
// initial cost (spec.md §4.6, "before the first pass"). The supplied cache
// is populated in place and reused for the whole search call.
func newState[T comparable, C any](cache *costCache[T], ctx C, eval Evaluator[T, C], sched Schedule[T], startIndices []int) (state[T], error) {
	validateShape(sched.Rows, startIndices)

	rowCosts := make([]float64, len(sched.Rows))
	for i, row := range sched.Rows {
		cost, err := evalCached(cache, ctx, eval, i, row)
		if err != nil {
			return state[T]{}, err
		}
		rowCosts[i] = cost
	}

	return state[T]{
		sched:        sched.clone(),
		startIndices: startIndices,
		rowCosts:     rowCosts,
		objective:    objective(rowCosts),
	}, nil
}

// BFSOpt2 runs the deterministic best-improvement search (spec.md §6,
// "Policy: deterministic best-improvement BFS"). Each pass enumerates every
// candidate swap against the schedule as it stood at the start of the pass
// (component C3) and commits every improving swap it meets along the way, in
// enumeration order, continuing the same pass rather than restarting it. A
// pass that accepts nothing is a local optimum and BFSOpt2 returns.
//
// ctx is the caller's opaque Evaluator context (distinct from
// SearchOptions.Ctx, which is a Go context.Context used only for
// cancellation).
func BFSOpt2[T comparable, C any](sched Schedule[T], startIndices []int, ctx C, eval Evaluator[T, C], opts ...Option[T]) (Schedule[T], error) {
	o := resolveOptions[T](opts)
	cache := newCostCache[T](o.CacheCapacity)

	st, err := newState(cache, ctx, eval, sched, startIndices)
	if err != nil {
		return Schedule[T]{}, err
	}

	log := o.Logger
	pass := 0
	for {
		if err := o.Ctx.Err(); err != nil {
			return Schedule[T]{}, ErrCancelled
		}

		pass++
		improved := false
		swapsSeen := 0

		for sw := range EnumerateSwaps(st.sched, st.startIndices) {
			if err := o.Ctx.Err(); err != nil {
				return Schedule[T]{}, ErrCancelled
			}
			swapsSeen++

			next, accepted, err := applySwap(cache, ctx, eval, st, sw, 0)
			if err != nil {
				return Schedule[T]{}, err
			}
			if !accepted {
				continue
			}

			st = next
			improved = true
			if o.Listener != nil {
				o.Listener(st.sched, st.objective)
			}
			log.Debug("bfs: accepted swap",
				zap.Int("pass", pass),
				zap.Int("from_row", sw.FromRow),
				zap.Int("to_row", sw.ToRow),
				zap.Float64("objective", st.objective),
			)
		}

		log.Debug("bfs: pass complete",
			zap.Int("pass", pass),
			zap.Int("swaps_seen", swapsSeen),
			zap.Bool("improved", improved),
			zap.Float64("objective", st.objective),
		)
		if !improved {
			return st.sched, nil
		}
	}
}

// DFSOpt2 runs the stochastic first-improvement search (spec.md §6, "Policy:
// seeded stochastic first-improvement DFS"). Each pass materializes every
// candidate swap against the schedule as it stood at the start of the pass,
// shuffles the list with rng (Fisher-Yates, component "PRNG adapter"), then
// applies swaps in the shuffled order and commits and restarts the pass the
// moment one is accepted. A pass that completes with no acceptance is a local
// optimum and DFSOpt2 returns.
//
// rng seeds the per-pass shuffle; a nil rng uses NewRNG(0) (deterministic,
// reproducible across calls that also pass nil).
func DFSOpt2[T comparable, C any](sched Schedule[T], startIndices []int, ctx C, eval Evaluator[T, C], rng *rand.Rand, opts ...Option[T]) (Schedule[T], error) {
	o := resolveOptions[T](opts)
	cache := newCostCache[T](o.CacheCapacity)

	st, err := newState(cache, ctx, eval, sched, startIndices)
	if err != nil {
		return Schedule[T]{}, err
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	log := o.Logger
	pass := 0
	for {
		if err := o.Ctx.Err(); err != nil {
			return Schedule[T]{}, ErrCancelled
		}
		pass++

		var swaps []Swap[T]
		for sw := range EnumerateSwaps(st.sched, st.startIndices) {
			swaps = append(swaps, sw)
		}
		shuffleSwaps(swaps, rng)

		accepted := false
		for _, sw := range swaps {
			if err := o.Ctx.Err(); err != nil {
				return Schedule[T]{}, ErrCancelled
			}

			next, ok, err := applySwap(cache, ctx, eval, st, sw, 0)
			if err != nil {
				return Schedule[T]{}, err
			}
			if !ok {
				continue
			}

			st = next
			accepted = true
			if o.Listener != nil {
				o.Listener(st.sched, st.objective)
			}
			log.Debug("dfs: accepted swap",
				zap.Int("pass", pass),
				zap.Int("from_row", sw.FromRow),
				zap.Int("to_row", sw.ToRow),
				zap.Float64("objective", st.objective),
			)
			break
		}

		log.Debug("dfs: pass complete",
			zap.Int("pass", pass),
			zap.Int("candidates", len(swaps)),
			zap.Bool("accepted", accepted),
			zap.Float64("objective", st.objective),
		)
		if !accepted {
			return st.sched, nil
		}
	}
}
