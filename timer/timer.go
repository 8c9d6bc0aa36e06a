// Package timer implements the cancellable drivers behind simulated
// long-running work: narration pacing, quiz feedback delays, and
// upload spinners.
//
// Both drivers are generation-guarded: Stop invalidates the current
// generation under the mutex, so a pending fire that has not yet run
// observes the stale generation and does nothing. Cancellation and a
// fire can never both take effect.
package timer

import (
	"sync"
	"time"
)

// Driver advances a position one step at a time on a fixed period.
// On reaching the total it stops itself and resets the position to
// zero. Start while running restarts from step zero; Stop while
// stopped is a no-op.
type Driver struct {
	mu      sync.Mutex
	period  time.Duration
	gen     uint64
	pos     int
	total   int
	active  bool
	pending *time.Timer

	// OnStep is called after each advance with the new position
	// (1-based; the final step is not reported, OnDone is).
	OnStep func(pos int)
	// OnDone is called once when the driver reaches the total.
	OnDone func()
}

// NewDriver creates a driver with the given step period.
func NewDriver(period time.Duration) *Driver {
	return &Driver{period: period}
}

// Start begins at step zero and schedules the first advance.
// Any previous run is cancelled first.
func (d *Driver) Start(totalSteps int) {
	d.mu.Lock()
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	if totalSteps <= 0 {
		d.pos = 0
		d.active = false
		d.mu.Unlock()
		return
	}
	d.pos = 0
	d.total = totalSteps
	d.active = true
	gen := d.gen
	d.pending = time.AfterFunc(d.period, func() { d.fire(gen) })
	d.mu.Unlock()
}

// Stop cancels any pending advance. Safe to call when stopped.
func (d *Driver) Stop() {
	d.mu.Lock()
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.active = false
	d.mu.Unlock()
}

// Pos returns the current position (0 when idle).
func (d *Driver) Pos() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pos
}

// Active reports whether the driver is running.
func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

func (d *Driver) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.active {
		d.mu.Unlock()
		return
	}
	d.pos++
	if d.pos >= d.total {
		// terminal auto-stop: back to the initial position
		d.pos = 0
		d.active = false
		d.pending = nil
		done := d.OnDone
		d.mu.Unlock()
		if done != nil {
			done()
		}
		return
	}
	pos := d.pos
	step := d.OnStep
	d.pending = time.AfterFunc(d.period, func() { d.fire(gen) })
	d.mu.Unlock()
	if step != nil {
		step(pos)
	}
}

// Delay runs a callback once after a wait, unless cancelled first.
// Scheduling while a callback is pending replaces it.
type Delay struct {
	mu      sync.Mutex
	gen     uint64
	pending *time.Timer
}

// After schedules fn to run once after wait.
func (d *Delay) After(wait time.Duration, fn func()) {
	d.mu.Lock()
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
	}
	gen := d.gen
	d.pending = time.AfterFunc(wait, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.pending = nil
		d.mu.Unlock()
		fn()
	})
	d.mu.Unlock()
}

// Stop cancels the pending callback, if any. Safe to call when
// nothing is pending.
func (d *Delay) Stop() {
	d.mu.Lock()
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.mu.Unlock()
}

// Pending reports whether a callback is scheduled.
func (d *Delay) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
