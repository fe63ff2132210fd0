package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
)

type testJob struct {
	id      int
	fail    bool
	counter *atomic.Int32
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &testResult{id: j.id, err: fmt.Errorf("job %d failed", j.id)}
	}
	return &testResult{id: j.id}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int32

	pool := NewPool(4)
	pool.Start()
	for i := 0; i < 20; i++ {
		pool.Submit(&testJob{id: i, counter: &counter})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
	if counter.Load() != 20 {
		t.Errorf("Expected 20 executions, got %d", counter.Load())
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	var counter atomic.Int32

	pool := NewPool(2)
	pool.Start()
	pool.Submit(&testJob{id: 0, counter: &counter})
	pool.Submit(&testJob{id: 1, fail: true, counter: &counter})

	failures := 0
	for _, res := range pool.Wait() {
		if res.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	var counter atomic.Int32

	pool := NewPool(0)
	pool.Start()
	pool.Submit(&testJob{id: 0, counter: &counter})

	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_EmptyWait(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	if results := pool.Wait(); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
