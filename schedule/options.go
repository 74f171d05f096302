// Package schedule - search configuration (ambient "configuration" concern;
// see SPEC_FULL.md Part B.2).
//
// SearchOptions follows the functional-options shape bfs.Option uses in
// bfs/types.go: a plain struct with documented fields, a DefaultOptions-style
// constructor filling in safe zero-cost defaults, and With* constructors that
// silently ignore nil/invalid input rather than returning an error — the
// cost of a misconfigured option here is a default kicking in, never a
// broken search.
package schedule

import (
	"context"

	"go.uber.org/zap"
)

// SearchOptions holds every collaborator BFSOpt2/DFSOpt2 accept beyond the
// schedule, start indices, context value, and evaluator.
type SearchOptions[T comparable] struct {
	// Ctx, when cancelled, aborts the search at the top of the next per-swap
	// check with ErrCancelled. Defaults to context.Background() (never
	// cancelled).
	Ctx context.Context

	// Listener, if non-nil, is invoked once per accepted swap with the new
	// improving Schedule snapshot and its objective.
	Listener Listener[T]

	// Logger receives structured lifecycle events from the search driver
	// (pass boundaries and acceptances, at Debug level); cancellation is
	// returned as ErrCancelled without a log entry. Defaults to a no-op
	// logger; the algorithmic core (C1-C5) never logs regardless of this
	// setting.
	Logger *zap.Logger

	// CacheCapacity bounds the per-call cost cache (component C4). <= 0
	// selects defaultCacheCapacity (1000, per spec.md §4.4).
	CacheCapacity int
}

// Option configures a SearchOptions value.
type Option[T comparable] func(*SearchOptions[T])

// DefaultSearchOptions returns a SearchOptions with safe defaults: background
// context, no listener, a no-op logger, and the default cache capacity.
func DefaultSearchOptions[T comparable]() SearchOptions[T] {
	return SearchOptions[T]{
		Ctx:           context.Background(),
		Listener:      nil,
		Logger:        zap.NewNop(),
		CacheCapacity: defaultCacheCapacity,
	}
}

// WithContext overrides the cancellation context. A nil ctx is ignored.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *SearchOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithListener registers a callback invoked after each accepted swap.
func WithListener[T comparable](l Listener[T]) Option[T] {
	return func(o *SearchOptions[T]) {
		if l != nil {
			o.Listener = l
		}
	}
}

// WithLogger overrides the structured logger. A nil logger is ignored (the
// existing logger, nop by default, is kept).
func WithLogger[T comparable](log *zap.Logger) Option[T] {
	return func(o *SearchOptions[T]) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithCacheCapacity overrides the cost cache capacity. A non-positive value
// is ignored (the default capacity is kept).
func WithCacheCapacity[T comparable](n int) Option[T] {
	return func(o *SearchOptions[T]) {
		if n > 0 {
			o.CacheCapacity = n
		}
	}
}

// resolveOptions applies opts over DefaultSearchOptions.
func resolveOptions[T comparable](opts []Option[T]) SearchOptions[T] {
	o := DefaultSearchOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
