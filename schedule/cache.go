// Package schedule - cost cache (component C4).
//
// costCache memoizes Evaluator results for one search invocation. Per
// spec.md §4.4 it is keyed by sequence alone — lookup(seq) / store(seq,
// value), no row parameter — so that two different rows that happen to hold
// the same sequence of items share one entry instead of paying for the
// Evaluator twice. spec.md §9 calls this out as deliberate: "Keys are whole
// sequences; sharing identical sequences across rows hits the cache." row is
// still threaded through to the Evaluator call itself, but it does not
// participate in memoization: a cached cost is exact only for an Evaluator
// whose result for a given sequence is the same in every row. For an
// Evaluator that also depends on row, the cost first computed for a sequence
// is the one returned for that sequence in any row.
//
// Rather than hand-rolling the container/list + map bookkeeping a bounded LRU
// needs (the approach Krishna8167/tempuscache's cache.go takes for its own,
// unrelated TTL cache), this reaches for the real ecosystem library that does
// exactly this job: hashicorp/golang-lru/v2, the generics-capable evolution
// of the golang-lru dependency already present (indirectly) elsewhere in this
// corpus.
package schedule

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheCapacity is the bounded LRU capacity spec.md §4.4 specifies.
const defaultCacheCapacity = 1000

// costCache is a bounded, strictly-recency-ordered memo of Evaluator results,
// live for exactly one BFSOpt2/DFSOpt2 call and discarded on return (or on
// cancellation — see search.go).
type costCache[T comparable] struct {
	lru *lru.Cache[string, float64]
}

// newCostCache builds a costCache with the given capacity, falling back to
// defaultCacheCapacity when capacity <= 0 (see WithCacheCapacity).
func newCostCache[T comparable](capacity int) *costCache[T] {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}

	c, err := lru.New[string, float64](capacity)
	if err != nil {
		// lru.New only fails for a non-positive size, which the guard above
		// rules out; a failure here is a logic bug in this constructor.
		fail(ErrIndexOutOfRange, fmt.Sprintf("newCostCache: %v", err))
	}

	return &costCache[T]{lru: c}
}

// cacheKey builds a deterministic key for seq alone. This assumes T's %v
// formatting is itself deterministic for equal values — true for the
// ordinary comparable item types (ints, strings, small value structs) this
// engine targets; a caller whose T embeds pointers should not rely on %v
// distinguishing pointer identity from value equality.
func cacheKey[T comparable](seq Sequence[T]) string {
	var b strings.Builder
	for _, item := range seq {
		fmt.Fprintf(&b, "%v\x1f", item)
	}

	return b.String()
}

// lookup returns the cached cost for seq, marking it most-recently-used.
func (c *costCache[T]) lookup(seq Sequence[T]) (float64, bool) {
	return c.lru.Get(cacheKey(seq))
}

// store inserts seq -> value as most-recently-used, evicting the
// least-recently-used entry if the cache is at capacity.
func (c *costCache[T]) store(seq Sequence[T], value float64) {
	c.lru.Add(cacheKey(seq), value)
}

// evalCached mediates every Evaluator call (per spec.md §4.5: "Evaluator
// access is always mediated by C4"). row is passed through to eval but does
// not participate in memoization (see the cache-keying note above). A
// non-nil Evaluator error is returned unchanged and never cached.
func evalCached[T comparable, C any](cache *costCache[T], ctx C, eval Evaluator[T, C], row int, seq Sequence[T]) (float64, error) {
	if v, ok := cache.lookup(seq); ok {
		return v, nil
	}

	v, err := eval(ctx, row, seq)
	if err != nil {
		return 0, err
	}
	cache.store(seq, v)

	return v, nil
}
