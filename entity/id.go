// Package entity provides the shared primitives the demo apps build
// their models from: unique IDs, emoji reaction buckets, ID-set
// membership, and per-rater scores.
//
// All transition functions are pure in the reducer sense: they return
// the next value and never mutate shared slices in place, so applying
// a toggle twice always restores the exact prior state.
package entity

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var idCounter uint64

// NewID returns a unique entity ID. The ID combines a process-wide
// monotonic counter with random entropy, so two entities created in
// the same instant can never collide.
func NewID() string {
	n := atomic.AddUint64(&idCounter, 1)
	return fmt.Sprintf("%d-%s", n, uuid.NewString()[:8])
}
