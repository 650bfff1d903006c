package idgen

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCounterSkipsZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	c := NewCounter(^uint64(0) - 1)
	for i, expected := range []ID{ID(^uint64(0)), 1, 2} {
		if id := c.Generate(); id != expected {
			t.Errorf("test %d: expected ID %d, is %d", i, expected, id)
		}
	}
}

func TestCounterSeeded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	c := NewCounter(100)
	if id := c.Generate(); id != 101 {
		t.Errorf("expected first ID of seeded counter to be 101, is %d", id)
	}
}

func TestDistinctIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	c := NewRandomCounter()
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := c.Generate()
		if id == 0 {
			t.Fatalf("counter returned ID 0 at call %d", i)
		}
		if seen[id] {
			t.Fatalf("counter returned ID %d twice", id)
		}
		seen[id] = true
	}
}

func TestConcurrentIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	c := NewCounter(0)
	const workers, calls = 8, 500
	results := make([][]ID, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				results[w] = append(results[w], c.Generate())
			}
		}(w)
	}
	wg.Wait()
	seen := make(map[ID]bool)
	for _, ids := range results {
		for _, id := range ids {
			if seen[id] {
				t.Fatalf("ID %d generated twice", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != workers*calls {
		t.Errorf("expected %d distinct IDs, have %d", workers*calls, len(seen))
	}
}

func TestSetDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	prev := SetDefault(NewCounter(41))
	defer SetDefault(prev)
	if id := Next(); id != 42 {
		t.Errorf("expected ID from seeded default to be 42, is %d", id)
	}
}
