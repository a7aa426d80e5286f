package profile

import (
	"context"
	"sync"
)

// job is the unit of work dispatched to a worker. idx preserves submission
// order so results can be re-sequenced after the parallel phase.
type job[T any] struct {
	idx     int
	payload T
}

type jobResult[R any] struct {
	idx   int
	value R
	err   error
}

// workerPool is a fixed-size goroutine pool with a bounded input queue.
// Workers share nothing; each produces an isolated result, so no locking is
// needed beyond the channels themselves.
type workerPool[T, R any] struct {
	queue   chan job[T]
	results chan jobResult[R]
	process func(ctx context.Context, t T) (R, error)
	wg      sync.WaitGroup
}

// newWorkerPool creates and starts a pool with n goroutines and queue
// capacity cap.
func newWorkerPool[T, R any](ctx context.Context, n, cap int, fn func(context.Context, T) (R, error)) *workerPool[T, R] {
	if n < 1 {
		n = 1
	}
	p := &workerPool[T, R]{
		queue:   make(chan job[T], cap),
		results: make(chan jobResult[R], cap),
		process: fn,
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx)
		}()
	}
	return p
}

func (p *workerPool[T, R]) run(ctx context.Context) {
	for {
		select {
		case j, ok := <-p.queue:
			if !ok {
				return
			}
			v, err := p.process(ctx, j.payload)
			p.results <- jobResult[R]{idx: j.idx, value: v, err: err}
		case <-ctx.Done():
			return
		}
	}
}

// submit enqueues a job without blocking (returns false if full). Callers
// size the queue to the job count, so a full queue indicates a bug.
func (p *workerPool[T, R]) submit(idx int, t T) bool {
	select {
	case p.queue <- job[T]{idx: idx, payload: t}:
		return true
	default:
		return false
	}
}

// drain closes the queue, waits for all workers to finish and closes the
// results channel.
func (p *workerPool[T, R]) drain() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
}
