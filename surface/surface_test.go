package surface

import "testing"

type fakeDriver struct{ stops int }

func (f *fakeDriver) Stop() { f.stops++ }

func TestOpenClose(t *testing.T) {
	resets := 0
	c := New(func() { resets++ })

	c.Open("a")
	if c.Current() != "a" {
		t.Fatalf("current = %q, want a", c.Current())
	}
	if resets != 0 {
		t.Errorf("reset ran on first open")
	}

	c.Close()
	if c.Current() != "" {
		t.Errorf("current = %q after close", c.Current())
	}
	if resets != 1 {
		t.Errorf("resets = %d, want 1", resets)
	}
}

func TestSwitchRunsTeardown(t *testing.T) {
	resets := 0
	c := New(func() { resets++ })
	d := &fakeDriver{}

	c.Open("a")
	c.Own(d)
	c.Open("b") // direct switch, no intermediate close
	if c.Current() != "b" {
		t.Fatalf("current = %q, want b", c.Current())
	}
	if d.stops != 1 {
		t.Errorf("driver stops = %d, want 1", d.stops)
	}
	if resets != 1 {
		t.Errorf("resets = %d, want 1", resets)
	}
}

func TestOwnedDriversStopOnlyOnce(t *testing.T) {
	c := New(nil)
	d := &fakeDriver{}
	c.Open("a")
	c.Own(d)
	c.Close()
	c.Close() // second close is a no-op
	if d.stops != 1 {
		t.Errorf("driver stops = %d, want 1", d.stops)
	}
}

func TestOwnWhileClosedIsNoop(t *testing.T) {
	c := New(nil)
	d := &fakeDriver{}
	c.Own(d)
	c.Open("a")
	c.Close()
	if d.stops != 0 {
		t.Errorf("driver owned while closed was stopped")
	}
}

func TestReopenSameIsNoop(t *testing.T) {
	resets := 0
	c := New(func() { resets++ })
	d := &fakeDriver{}
	c.Open("a")
	c.Own(d)
	c.Open("a")
	if d.stops != 0 || resets != 0 {
		t.Errorf("reopen ran teardown: stops=%d resets=%d", d.stops, resets)
	}
}

func TestIsOpen(t *testing.T) {
	c := New(nil)
	if c.IsOpen("") {
		t.Error("IsOpen(\"\") while closed")
	}
	c.Open("a")
	if !c.IsOpen("a") || c.IsOpen("b") {
		t.Error("IsOpen mismatch")
	}
}

func TestStopFunc(t *testing.T) {
	n := 0
	c := New(nil)
	c.Open("a")
	c.Own(StopFunc(func() { n++ }))
	c.Close()
	if n != 1 {
		t.Errorf("StopFunc ran %d times, want 1", n)
	}
}
