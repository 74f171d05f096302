package schedule

import "testing"

func TestCostCache_LookupMissThenHit(t *testing.T) {
	c := newCostCache[string](4)

	if _, ok := c.lookup([]string{"a", "b"}); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.store([]string{"a", "b"}, 42)
	got, ok := c.lookup([]string{"a", "b"})
	if !ok || got != 42 {
		t.Fatalf("got (%v,%v), want (42,true)", got, ok)
	}
}

// TestCostCache_SharedAcrossRows locks in spec.md §4.4's literal
// sequence-only key: an identical sequence stored under one row's lookup is
// a hit when looked up again regardless of which row it is later evaluated
// against, per §9's "sharing identical sequences across rows hits the
// cache".
func TestCostCache_SharedAcrossRows(t *testing.T) {
	c := newCostCache[string](4)
	c.store([]string{"a"}, 1)

	v, ok := c.lookup([]string{"a"})
	if !ok || v != 1 {
		t.Fatalf("expected a cache hit shared across rows, got (%v,%v)", v, ok)
	}

	calls := 0
	eval := func(ctx int, row int, seq Sequence[string]) (float64, error) {
		calls++

		return 2, nil
	}
	for _, row := range []int{0, 1} {
		v, err := evalCached(c, 0, eval, row, []string{"a"})
		if err != nil || v != 1 {
			t.Fatalf("row %d: expected cached (1,nil), got (%v,%v)", row, v, err)
		}
	}
	if calls != 0 {
		t.Fatalf("evaluator called %d times, want 0 (every row should hit the cache)", calls)
	}
}

func TestCostCache_NonPositiveCapacityFallsBackToDefault(t *testing.T) {
	c := newCostCache[int](0)
	if c.lru.Len() != 0 {
		t.Fatalf("new cache should be empty")
	}
	// Exercise it enough to confirm it didn't silently cap at 0 (which would
	// make every store a no-op / immediate eviction of itself).
	c.store([]int{1}, 1)
	if _, ok := c.lookup([]int{1}); !ok {
		t.Fatal("capacity<=0 should fall back to defaultCacheCapacity, not 0")
	}
}

func TestEvalCached_CachesSuccessNotError(t *testing.T) {
	c := newCostCache[int](4)
	calls := 0
	eval := func(ctx int, row int, seq Sequence[int]) (float64, error) {
		calls++

		return float64(ctx), nil
	}

	v1, err := evalCached(c, 7, eval, 0, []int{1, 2})
	if err != nil || v1 != 7 {
		t.Fatalf("unexpected (%v,%v)", v1, err)
	}
	v2, err := evalCached(c, 99, eval, 0, []int{1, 2})
	if err != nil || v2 != 7 {
		t.Fatalf("expected cached value 7, got (%v,%v)", v2, err)
	}
	if calls != 1 {
		t.Fatalf("evaluator called %d times, want 1 (second call should hit cache)", calls)
	}
}

func TestEvalCached_ErrorsAreNeverCached(t *testing.T) {
	c := newCostCache[int](4)
	calls := 0
	failing := true
	eval := func(ctx int, row int, seq Sequence[int]) (float64, error) {
		calls++
		if failing {
			return 0, errTestEval
		}

		return 5, nil
	}

	_, err := evalCached(c, 0, eval, 0, []int{1})
	if err == nil {
		t.Fatal("expected evaluator error")
	}

	failing = false
	v, err := evalCached(c, 0, eval, 0, []int{1})
	if err != nil || v != 5 {
		t.Fatalf("expected success on retry, got (%v,%v)", v, err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 evaluator calls (no caching of the error), got %d", calls)
	}
}

var errTestEval = &testEvalError{}

type testEvalError struct{}

func (*testEvalError) Error() string { return "test evaluator error" }
