package core

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestInFlight_BeginDone(t *testing.T) {
	f := NewInFlight()

	if got := f.ActiveCount(); got != 0 {
		t.Errorf("initial ActiveCount = %d, want 0", got)
	}

	f.Begin()
	f.Begin()
	if got := f.ActiveCount(); got != 2 {
		t.Errorf("after two Begin, ActiveCount = %d, want 2", got)
	}

	f.Done(true)
	f.Done(false)

	status := f.Status()
	want := InFlightStatus{Started: 2, Active: 0, Succeeded: 1, Failed: 1}
	if status != want {
		t.Errorf("Status = %+v, want %+v", status, want)
	}
}

func TestInFlight_WaitForDrain_Empty(t *testing.T) {
	f := NewInFlight()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing in flight: returns immediately even with a dead context.
	if err := f.WaitForDrain(ctx); err != nil {
		t.Errorf("WaitForDrain on empty tracker = %v, want nil", err)
	}
}

func TestInFlight_WaitForDrain(t *testing.T) {
	f := NewInFlight()
	f.Begin()

	go func() {
		time.Sleep(100 * time.Millisecond)
		f.Done(true)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := f.WaitForDrain(ctx); err != nil {
		t.Fatalf("WaitForDrain error = %v", err)
	}
	if got := f.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after drain = %d, want 0", got)
	}
}

func TestInFlight_WaitForDrain_Timeout(t *testing.T) {
	f := NewInFlight()
	f.Begin()
	defer f.Done(true)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := f.WaitForDrain(ctx)
	elapsed := time.Since(start)

	if err != context.DeadlineExceeded {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed < 90*time.Millisecond {
		t.Errorf("returned too fast: %v", elapsed)
	}
}

func TestInFlight_ConcurrentAccess(t *testing.T) {
	const total = 50
	f := NewInFlight()

	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		f.Begin()
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			time.Sleep(time.Millisecond)
			f.Done(i%5 != 0)
		}(i)
	}
	wg.Wait()

	status := f.Status()
	if status.Started != total || status.Active != 0 {
		t.Errorf("Status = %+v, want Started=%d Active=0", status, total)
	}
	if status.Succeeded+status.Failed != total {
		t.Errorf("Succeeded+Failed = %d, want %d", status.Succeeded+status.Failed, total)
	}
	if status.Failed != total/5 {
		t.Errorf("Failed = %d, want %d", status.Failed, total/5)
	}
}
