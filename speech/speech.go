// Package speech defines the synthesized-speech capability the
// lyric/podcast app narrates with. The platform voice is an external
// collaborator; apps depend only on the Synthesizer interface and
// degrade to a visible notification when it is unavailable.
package speech

import (
	"errors"
	"strings"
	"sync"
)

// ErrUnavailable is returned when no platform voice exists.
var ErrUnavailable = errors.New("speech: no synthesizer available")

// Synthesizer produces an audible reading of text and reports
// sentence boundaries as they are reached.
type Synthesizer interface {
	// Speak starts reading text. onBoundary is called with the
	// zero-based sentence index as each sentence begins; onDone is
	// called once when the reading finishes. Speak returns
	// ErrUnavailable (and calls neither callback) when the platform
	// has no voice.
	Speak(text string, onBoundary func(sentence int), onDone func()) error
	// Cancel stops an in-progress reading. Neither callback fires
	// after Cancel returns. Safe to call when idle.
	Cancel()
}

// Sentences splits text into the sentence units boundaries are
// reported against. Splitting is deliberately simple: '.', '!' and
// '?' end a sentence.
func Sentences(text string) []string {
	var out []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// Null is the no-voice platform: Speak always fails with
// ErrUnavailable.
type Null struct{}

// Speak reports the missing capability.
func (Null) Speak(string, func(int), func()) error { return ErrUnavailable }

// Cancel is a no-op.
func (Null) Cancel() {}

// Fake is a scripted synthesizer for tests. It records the spoken
// text; the test drives boundaries and completion by hand.
type Fake struct {
	mu         sync.Mutex
	spoken     []string
	onBoundary func(int)
	onDone     func()
	active     bool
	cancels    int
}

// Speak records text and arms the callbacks.
func (f *Fake) Speak(text string, onBoundary func(int), onDone func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	f.onBoundary = onBoundary
	f.onDone = onDone
	f.active = true
	return nil
}

// Cancel disarms the callbacks.
func (f *Fake) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = false
	f.onBoundary = nil
	f.onDone = nil
	f.cancels++
}

// Boundary fires the boundary callback for sentence i, if a reading
// is active.
func (f *Fake) Boundary(i int) {
	f.mu.Lock()
	cb := f.onBoundary
	active := f.active
	f.mu.Unlock()
	if active && cb != nil {
		cb(i)
	}
}

// Finish fires the done callback and ends the reading.
func (f *Fake) Finish() {
	f.mu.Lock()
	cb := f.onDone
	active := f.active
	f.active = false
	f.mu.Unlock()
	if active && cb != nil {
		cb()
	}
}

// Spoken returns the texts passed to Speak, in order.
func (f *Fake) Spoken() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spoken...)
}

// Cancels returns how many times Cancel was called.
func (f *Fake) Cancels() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancels
}
