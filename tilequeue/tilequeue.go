// Package tilequeue implements the locked FIFO plus quiescence "gatekeeper"
// of spec §4.4: a generic work queue shared by a fixed pool of workers,
// parameterized by the counting-gatekeeper protocol (Design A). It backs
// both the Mariani-Silver tile queue and the AA pixel queue.
package tilequeue

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Tile is a rectangle of pixel coordinates, spec §3: created once, consumed
// exactly once.
type Tile struct {
	I, J, W, H int
}

// Queue is a locked FIFO of items plus the Design A gatekeeper protocol: a
// worker that finds the queue empty decrements a shared active-worker
// counter; if it reaches zero every worker is idle and the queue closes,
// waking all waiters to a terminate signal. A worker woken by new work
// instead re-increments the counter before resuming, so the queue never
// closes out from under a producer that is still generating work.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	active int
	closed bool
	sem    *semaphore.Weighted
}

// NewQueue builds a queue serving n workers. inFlight, if > 0, bounds how
// many items may be queued at once — a resource-control addition so a
// pathological subdivision cannot grow the queue without limit ahead of
// slow workers; 0 means unbounded.
func NewQueue[T any](n int, inFlight int64) *Queue[T] {
	q := &Queue[T]{active: n}
	q.cond = sync.NewCond(&q.mu)
	if inFlight > 0 {
		q.sem = semaphore.NewWeighted(inFlight)
	}
	return q
}

// Push enqueues an item and wakes one waiter, per spec §4.5 step 5 ("push
// all four [tiles]... and wake waiters").
func (q *Queue[T]) Push(item T) {
	if q.sem != nil {
		_ = q.sem.Acquire(context.Background(), 1)
	}
	q.mu.Lock()
	q.items = append(q.items, item)
	q.cond.Signal()
	q.mu.Unlock()
}

// Pop blocks until an item is available or the gatekeeper declares
// quiescence, in which case it returns ok=false and the caller must exit.
func (q *Queue[T]) Pop() (item T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if len(q.items) > 0 {
			item = q.items[0]
			q.items = q.items[1:]
			if q.sem != nil {
				q.sem.Release(1)
			}
			return item, true
		}
		if q.closed {
			var zero T
			return zero, false
		}
		q.active--
		if q.active == 0 {
			q.closed = true
			q.cond.Broadcast()
			var zero T
			return zero, false
		}
		q.cond.Wait()
		q.active++
	}
}

// Len reports the number of items currently queued. For diagnostics and
// tests only; not part of the termination protocol.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
