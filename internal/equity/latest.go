package equity

import (
	"context"
	"sync"
)

// Latest runs simulations where only the most recent request matters, such
// as recomputing odds each time a pair is revealed. Starting a run cancels
// the one in flight, and a run that was replaced returns ErrSuperseded
// instead of its result.
type Latest struct {
	sim *Simulator

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewLatest wraps sim.
func NewLatest(sim *Simulator) *Latest {
	return &Latest{sim: sim}
}

// Run simulates req after cancelling any earlier run.
func (l *Latest) Run(ctx context.Context, req Request) (Result, error) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()
	defer cancel()

	res, err := l.sim.Simulate(runCtx, req)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return Result{}, ErrSuperseded
	}
	l.cancel = nil
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Cancel stops the run in flight, if any. Its caller gets ErrSuperseded.
func (l *Latest) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
}
