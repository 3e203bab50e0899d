// Package scheduler runs delayed callbacks that can be cancelled individually or all at once.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Handle is a single scheduled callback.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	// 0 pending, 1 fired, 2 cancelled
	state atomic.Int32
}

// Cancel stops the callback. It reports true only if this call prevented it from running.
func (h *Handle) Cancel() bool {
	if !h.state.CompareAndSwap(0, 2) {
		return false
	}
	h.cancel()
	return true
}

// Done is closed once the callback has run or been cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Fired reports whether the callback ran.
func (h *Handle) Fired() bool {
	return h.state.Load() == 1
}

type Scheduler struct {
	mu      sync.Mutex
	pending map[*Handle]struct{}
	stopped bool
	wg      sync.WaitGroup
}

func New() *Scheduler {
	return &Scheduler{pending: make(map[*Handle]struct{})}
}

// Schedule runs fn after delay on its own goroutine. After Stop the returned
// handle is already cancelled.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *Handle {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		h.state.Store(2)
		cancel()
		close(h.done)
		return h
	}
	s.pending[h] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	go s.watch(ctx, h, delay, fn)
	return h
}

func (s *Scheduler) watch(ctx context.Context, h *Handle, delay time.Duration, fn func()) {
	defer s.wg.Done()
	defer close(h.done)
	defer s.forget(h)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		if h.state.CompareAndSwap(0, 1) {
			fn()
		}
	}
}

func (s *Scheduler) forget(h *Handle) {
	s.mu.Lock()
	delete(s.pending, h)
	s.mu.Unlock()
}

// Pending is the number of callbacks that have neither run nor been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every outstanding callback and waits for running ones to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	handles := make([]*Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}
	s.wg.Wait()
}

// Sleep waits for d using the scheduler, returning early with ctx.Err() when ctx ends first.
func (s *Scheduler) Sleep(ctx context.Context, d time.Duration) error {
	h := s.Schedule(d, func() {})
	select {
	case <-ctx.Done():
		h.Cancel()
		return ctx.Err()
	case <-h.Done():
		if !h.Fired() {
			return context.Canceled
		}
		return nil
	}
}
