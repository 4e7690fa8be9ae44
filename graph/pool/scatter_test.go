package pool

import (
	"errors"
	"sync"
	"testing"
)

func TestScatterGatherCoversEveryIndex(t *testing.T) {
	p := New(4, 16)
	defer p.Shutdown()

	const n = 23
	var mu sync.Mutex
	seen := make([]bool, n)
	err := ScatterGather(p, n, 5, func(start, end, idx int) {
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			seen[i] = true
		}
	})
	if err != nil {
		t.Fatalf("ScatterGather returned an error: %v", err)
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d was never covered by any batch", i)
		}
	}
}

func TestScatterGatherRecoversPanicFromOneBatch(t *testing.T) {
	p := New(4, 16)
	defer p.Shutdown()

	var mu sync.Mutex
	count := 0
	err := ScatterGather(p, 10, 2, func(start, end, idx int) {
		mu.Lock()
		count++
		mu.Unlock()
		if idx == 2 {
			panic(errors.New("boom"))
		}
	})
	if err == nil {
		t.Fatal("a panicking batch should surface as a returned error")
	}
	if count != NumBatches(10, 2) {
		t.Fatalf("batches run = %d, want %d (one batch panicking must not stop the rest)", count, NumBatches(10, 2))
	}
}

func TestNumBatchesMatchesScatterGatherArithmetic(t *testing.T) {
	cases := []struct{ n, batchSize, want int }{
		{0, 5, 0},
		{10, 5, 2},
		{11, 5, 3},
		{5, 0, 1},
	}
	for _, c := range cases {
		if got := NumBatches(c.n, c.batchSize); got != c.want {
			t.Fatalf("NumBatches(%d, %d) = %d, want %d", c.n, c.batchSize, got, c.want)
		}
	}
}

func TestScatterGatherZeroItemsIsNoop(t *testing.T) {
	p := New(1, 1)
	defer p.Shutdown()
	called := false
	err := ScatterGather(p, 0, 5, func(start, end, idx int) { called = true })
	if err != nil || called {
		t.Fatal("ScatterGather with n=0 must not invoke fn and must not error")
	}
}
