// seehuhn.de/go/signature - variable-width signature strokes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package async runs signature models on a background goroutine.
//
// All work for a model is executed in order by a single worker, so that
// the model itself needs no locking.  Callers on other goroutines, for
// example a UI event loop, submit points without waiting for them to be
// rendered.
package async

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrClosed is returned when work is submitted to a closed Queue.
	ErrClosed = errors.New("async: queue closed")

	// ErrCanceled is returned by Queue.Do when the task was removed by
	// Queue.Cancel before it could run.
	ErrCanceled = errors.New("async: task canceled")
)

type task struct {
	fn   func()
	done chan bool // receives true if fn ran, false if dropped; may be nil
}

func (t *task) finish(ran bool) {
	if t.done != nil {
		t.done <- ran
	}
}

// Queue runs functions one at a time on a dedicated goroutine, in the order
// they were submitted.
//
// Queue is safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	pending []*task
	closed  bool

	// wake has capacity 1 and signals the worker that pending changed.
	wake chan struct{}

	wg sync.WaitGroup
}

// NewQueue creates a queue and starts its worker goroutine.
// Call Close to stop the worker.
func NewQueue() *Queue {
	q := &Queue{
		wake: make(chan struct{}, 1),
	}
	q.wg.Add(1)
	go q.worker()
	return q
}

// worker is the main loop of the worker goroutine.
func (q *Queue) worker() {
	defer q.wg.Done()

	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			closed := q.closed
			q.mu.Unlock()
			if closed {
				return
			}
			<-q.wake
			continue
		}
		t := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		t.fn()
		t.finish(true)
	}
}

func (q *Queue) push(t *task) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.pending = append(q.pending, t)
	q.mu.Unlock()

	q.signal()
	return nil
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
		// the worker has not yet consumed the previous signal
	}
}

// Submit queues fn without waiting for it to run.
func (q *Queue) Submit(fn func()) error {
	return q.push(&task{fn: fn})
}

// Do queues fn and waits until it has run.
//
// If ctx is cancelled first, Do returns the context error; fn may still run
// later.  If fn is removed by Cancel, ErrCanceled is returned.
func (q *Queue) Do(ctx context.Context, fn func()) error {
	t := &task{fn: fn, done: make(chan bool, 1)}
	if err := q.push(t); err != nil {
		return err
	}
	select {
	case ran := <-t.done:
		if !ran {
			return ErrCanceled
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel removes all tasks which have not started yet, and returns their
// number.  A task which is currently running is not affected.
func (q *Queue) Cancel() int {
	q.mu.Lock()
	dropped := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, t := range dropped {
		t.finish(false)
	}
	return len(dropped)
}

// Close stops accepting new work, waits until all queued tasks have run,
// and then stops the worker.  Calling Close more than once is safe.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.signal()
	q.wg.Wait()
}
