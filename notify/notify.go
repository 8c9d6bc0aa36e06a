// Package notify implements the transient message center used for
// validation errors and capability failures. Messages clear
// themselves after a fixed interval and never block interaction.
package notify

import (
	"sync"
	"time"

	"github.com/elizafairlady/go-appdemos/timer"
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 3 * time.Second

// Center holds at most one visible message. Flashing a new message
// replaces the current one and restarts the clear timer.
type Center struct {
	mu    sync.Mutex
	msg   string
	ttl   time.Duration
	clear timer.Delay

	// OnChange, if set, is called from the clear timer after the
	// message removes itself. It is never invoked from Flash: flashes
	// happen inside action dispatch, and the host repaints when the
	// dispatch returns.
	OnChange func()
}

// New creates a message center. ttl <= 0 uses DefaultTTL.
func New(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Flash shows msg and schedules it to clear. Callers hold their own
// state lock; only the timer-driven clear goes through OnChange.
func (c *Center) Flash(msg string) {
	c.mu.Lock()
	c.msg = msg
	c.mu.Unlock()
	c.clear.After(c.ttl, func() {
		c.mu.Lock()
		c.msg = ""
		change := c.OnChange
		c.mu.Unlock()
		if change != nil {
			change()
		}
	})
}

// Message returns the visible message, or "".
func (c *Center) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.msg
}

// Clear removes the message immediately and cancels the timer.
func (c *Center) Clear() {
	c.clear.Stop()
	c.mu.Lock()
	c.msg = ""
	change := c.OnChange
	c.mu.Unlock()
	if change != nil {
		change()
	}
}
