// Package schedule provides a 2-opt local search engine for multi-route
// schedules: given several ordered sequences of items (one per vehicle), a
// caller-supplied cost function scoring a single sequence, and a per-sequence
// frozen-prefix boundary, the engine searches the space of 2-opt swaps (moving
// a single distinct item, including every occurrence of it, from one sequence
// to new positions in the same or a different sequence) and returns a locally
// optimal schedule.
//
// Two search policies are exposed:
//
//   - BFSOpt2 — deterministic best-improvement: a full pass enumerates every
//     candidate swap in canonical order and commits every improving swap seen
//     during the pass, repeating until a pass accepts none.
//   - DFSOpt2 — stochastic first-improvement: candidates are shuffled with a
//     caller-seeded PRNG, the first improving swap is committed, and the scan
//     restarts; repeats until a full pass accepts none.
//
// # What & Why
//
// Vehicle routing / job scheduling systems frequently need a cheap, general
// local-search post-pass that does not know anything about the domain beyond
// "score this sequence". schedule treats items as opaque, comparable values
// and the cost function as an arbitrary (but pure) callback, so the same
// engine serves delivery routes, shift rosters, or any other ordered,
// multi-lane assignment problem.
//
// # Determinism & Stability
//
//   - BFSOpt2 is fully deterministic: identical inputs produce identical
//     output, byte for byte.
//   - DFSOpt2 is deterministic given an identically seeded rng argument
//     (see NewRNG).
//   - Evaluator results are memoized in a per-call LRU cache; the cache is
//     discarded when the call returns (see SearchOptions, cache.go).
//
// # Errors (strict sentinels + typed panics)
//
//   - ErrCancelled is returned (not panicked) when the caller's context is
//     cancelled mid-search; see SearchOptions.Ctx.
//   - Contract violations — a caller-supplied shape problem such as a
//     mismatched row/start-index count, an out-of-range or non-ascending
//     insertion index passed directly to InsertAt, or a negative k or a
//     start beyond n+1 passed directly to EnumerateInsertions —
//     are programmer errors: they panic with a ContractViolation value
//     rather than returning an error, per the package's error-handling
//     design. A Swap produced by EnumerateSwaps can legitimately go stale
//     mid-pass once BFSOpt2 starts committing moves against a candidate list
//     taken earlier in the pass: it may no longer name a valid source
//     occurrence, or its InsertionIndices may no longer fit the (possibly
//     shrunk) target row. Every such staleness is rejected like any other
//     non-improving swap by applySwap — never treated as a contract
//     violation, since the caller did nothing wrong (see SPEC_FULL.md Part
//     E, "Stale swaps are rejections, not contract violations").
//   - Evaluator errors are propagated unchanged and are never cached.
//
// # Options
//
//	type SearchOptions struct contains the injected collaborators: Ctx,
//	Listener, Logger, CacheCapacity. Use DefaultSearchOptions() and the With*
//	functional options (WithContext, WithListener, WithLogger,
//	WithCacheCapacity) to override individual fields. DFSOpt2's PRNG is a
//	plain *rand.Rand positional parameter (see NewRNG), not an Option.
//
// See DESIGN.md at the repository root for the grounding of every component
// in this package against its source material.
package schedule
