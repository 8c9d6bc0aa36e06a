// Package host runs an App in-process.
//
// The Host is the authoritative dispatch boundary: every user action
// enters through it, one at a time, and the tree snapshot is
// recomputed from the app's model on demand. Timer-driven changes
// inside an app invalidate the cached tree through Invalidate.
package host

import (
	"sync"

	"github.com/elizafairlady/go-appdemos/proto"
	"github.com/elizafairlady/go-appdemos/view"
)

// Host owns an App and serializes action dispatch.
type Host struct {
	mu   sync.Mutex
	app  view.App
	rev  uint64
	tree *view.Node // cached snapshot

	// Notify is called after the tree has been invalidated.
	// The shell should repaint.
	Notify func()

	// ActionLog records dispatched actions (for debugging).
	// Set to non-nil to enable logging.
	ActionLog []string
}

// New creates a host for the given app.
func New(app view.App) *Host {
	return &Host{app: app}
}

// Rev returns the current revision number.
func (h *Host) Rev() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rev
}

// Tree returns the current tree snapshot, recomputing if necessary.
func (h *Host) Tree() *view.Node {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.tree == nil {
		h.tree = h.app.View()
		h.rev++
	}
	return h.tree
}

// TreeText returns the serialized tree text.
func (h *Host) TreeText() string {
	t := h.Tree()
	h.mu.Lock()
	rev := h.rev
	h.mu.Unlock()
	return view.TreeText(t, rev)
}

// Invalidate drops the cached tree and notifies the shell.
// Apps call this (via their OnChange hook) when a timer callback
// changes state outside an action dispatch.
func (h *Host) Invalidate() {
	h.mu.Lock()
	h.tree = nil
	notify := h.Notify
	h.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// Dispatch processes a semantic action through the app and
// invalidates the tree.
func (h *Host) Dispatch(a *proto.Action) {
	h.mu.Lock()
	if h.ActionLog != nil {
		h.ActionLog = append(h.ActionLog, proto.SerializeAction(a))
	}
	app := h.app
	h.mu.Unlock()

	// Handle runs outside the host lock: app timer callbacks may
	// call Invalidate, which takes the same lock.
	app.Handle(a)

	h.mu.Lock()
	h.tree = nil
	notify := h.Notify
	h.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// Process parses and dispatches an action line.
func (h *Host) Process(line string) error {
	a, err := proto.ParseAction(line)
	if err != nil {
		return err
	}
	h.Dispatch(a)
	return nil
}
