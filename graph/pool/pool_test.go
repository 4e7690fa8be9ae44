package pool

import (
	"sync/atomic"
	"testing"
)

func TestSubmitRunsOnWorkers(t *testing.T) {
	p := New(4, 16)
	defer p.Shutdown()

	var n int64
	done := make(chan struct{}, 10)
	for i := 0; i < 10; i++ {
		p.Submit(func() {
			atomic.AddInt64(&n, 1)
			done <- struct{}{}
		})
	}
	for i := 0; i < 10; i++ {
		<-done
	}
	if atomic.LoadInt64(&n) != 10 {
		t.Fatalf("tasks run = %d, want 10", n)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	p := New(2, 4)
	p.Shutdown()
	p.Shutdown() // must not panic
}

func TestSubmitAfterShutdownIsNoop(t *testing.T) {
	p := New(1, 1)
	p.Shutdown()
	p.Submit(func() { t.Fatal("a task submitted after Shutdown must not run") })
}

func TestWorkersReportsFixedCount(t *testing.T) {
	p := New(3, 1)
	defer p.Shutdown()
	if p.Workers() != 3 {
		t.Fatalf("Workers() = %d, want 3", p.Workers())
	}
}

func TestNewClampsNonPositiveToOne(t *testing.T) {
	p := New(0, 0)
	defer p.Shutdown()
	if p.Workers() != 1 {
		t.Fatalf("New(0, 0).Workers() = %d, want 1", p.Workers())
	}
}
