package core

// inflight.go tracks dispatched requests.
//
// Dispatch never blocks on a slot: the number of concurrent requests is
// unbounded. The tracker only counts requests so the run can report
// outcomes and, when configured to, wait for every request to settle via
// WaitForDrain before the process exits.

import (
	"context"
	"sync"
	"time"
)

// drainPollInterval is how often WaitForDrain re-checks the active count.
var drainPollInterval = 50 * time.Millisecond

// InFlight counts requests from dispatch to settlement.
type InFlight struct {
	mu        sync.RWMutex
	started   int
	active    int
	succeeded int
	failed    int
}

// NewInFlight creates an empty tracker.
func NewInFlight() *InFlight {
	return &InFlight{}
}

// Begin records a newly dispatched request.
// The caller MUST call Done exactly once for it.
func (f *InFlight) Begin() {
	f.mu.Lock()
	f.started++
	f.active++
	f.mu.Unlock()
}

// Done records the settlement of a request begun with Begin.
func (f *InFlight) Done(ok bool) {
	f.mu.Lock()
	f.active--
	if ok {
		f.succeeded++
	} else {
		f.failed++
	}
	f.mu.Unlock()
}

// ActiveCount returns the number of requests not yet settled.
func (f *InFlight) ActiveCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.active
}

// WaitForDrain blocks until every begun request settles or ctx is done.
func (f *InFlight) WaitForDrain(ctx context.Context) error {
	if f.ActiveCount() == 0 {
		return nil
	}

	ticker := time.NewTicker(drainPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if f.ActiveCount() == 0 {
				return nil
			}
		}
	}
}

// InFlightStatus is a snapshot of the tracker.
type InFlightStatus struct {
	Started   int `json:"started"`
	Active    int `json:"active"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Status returns the current counts.
func (f *InFlight) Status() InFlightStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return InFlightStatus{
		Started:   f.started,
		Active:    f.active,
		Succeeded: f.succeeded,
		Failed:    f.failed,
	}
}
