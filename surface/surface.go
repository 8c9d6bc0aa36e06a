// Package surface implements the view-state controller for modal and
// detail surfaces.
//
// A Controller tracks which single entity is open. Opening a new
// entity while another is open, closing via any trigger (backdrop,
// escape, close button), and switching directly between entities all
// run the same teardown: every driver owned by the closing surface is
// stopped, then the app's reset hook clears dependent sub-state
// (quiz index, playback cursor, feedback lock).
package surface

// Stoppable is anything teardown can cancel. Both timer drivers
// satisfy it.
type Stoppable interface {
	Stop()
}

// StopFunc adapts a plain function to Stoppable (for external
// capabilities like a speech synthesizer's Cancel).
type StopFunc func()

// Stop calls f.
func (f StopFunc) Stop() { f() }

// Controller is the per-surface state machine: Closed → Open(id) →
// Closed. Transitioning Open(a) → Open(b) is direct but still runs
// the a-teardown first. Controller is meant for the single
// event-dispatch goroutine; it is not safe for concurrent use.
type Controller struct {
	current string
	owned   []Stoppable
	reset   func()
}

// New creates a controller. reset, if non-nil, runs after the owned
// drivers are stopped on every teardown. It must not call back into
// the controller.
func New(reset func()) *Controller {
	return &Controller{reset: reset}
}

// Current returns the open entity ID, or "" when closed.
func (c *Controller) Current() string { return c.current }

// IsOpen reports whether id is the open entity.
func (c *Controller) IsOpen(id string) bool { return c.current != "" && c.current == id }

// Own ties a driver to the open surface; teardown stops it.
// Owning while closed is a no-op (there is no surface to tie to).
func (c *Controller) Own(d Stoppable) {
	if c.current == "" {
		return
	}
	c.owned = append(c.owned, d)
}

// Open makes id the open entity. Any previously open entity is torn
// down first, synchronously, before the new surface is entered.
// Opening the already-open entity is a no-op.
func (c *Controller) Open(id string) {
	if c.current == id {
		return
	}
	if c.current != "" {
		c.teardown()
	}
	c.current = id
}

// Close tears down the open surface. Safe to call when closed.
func (c *Controller) Close() {
	if c.current == "" {
		return
	}
	c.teardown()
	c.current = ""
}

// teardown is the single exit path: stop owned drivers, then reset
// dependent sub-state.
func (c *Controller) teardown() {
	owned := c.owned
	c.owned = nil
	for _, d := range owned {
		d.Stop()
	}
	if c.reset != nil {
		c.reset()
	}
}
