package ui

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDebouncerPromotesAfterHold(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(0.8, 100*time.Millisecond, clock.Now)
	d.Reset(0)

	// Candidate appears at full coverage but must hold for 100ms.
	if _, ok := d.Observe(1, 1.0); ok {
		t.Fatal("promoted on first sight")
	}
	clock.Advance(50 * time.Millisecond)
	if _, ok := d.Observe(1, 1.0); ok {
		t.Fatal("promoted before hold elapsed")
	}
	clock.Advance(60 * time.Millisecond)
	idx, ok := d.Observe(1, 1.0)
	if !ok || idx != 1 {
		t.Fatalf("Observe = (%d, %v), want (1, true)", idx, ok)
	}

	// Exactly once per promotion.
	if _, ok := d.Observe(1, 1.0); ok {
		t.Error("promoted the same index twice")
	}
	if d.Dominant() != 1 {
		t.Errorf("Dominant = %d, want 1", d.Dominant())
	}
}

func TestDebouncerIgnoresLowCoverage(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(0.8, 100*time.Millisecond, clock.Now)
	d.Reset(0)

	for i := 0; i < 20; i++ {
		clock.Advance(50 * time.Millisecond)
		if _, ok := d.Observe(1, 0.5); ok {
			t.Fatal("promoted below coverage threshold")
		}
	}

	// Dropping below threshold resets the hold timer.
	d.Observe(1, 0.9)
	clock.Advance(90 * time.Millisecond)
	d.Observe(1, 0.5) // dip
	clock.Advance(20 * time.Millisecond)
	if _, ok := d.Observe(1, 0.9); ok {
		t.Error("hold timer should restart after a coverage dip")
	}
}

func TestDebouncerRapidScrollSkipsIntermediates(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(0.8, 100*time.Millisecond, clock.Now)
	d.Reset(0)

	// Indices 1..3 each flash by for 40ms at full coverage.
	for _, idx := range []int{1, 2, 3} {
		d.Observe(idx, 1.0)
		clock.Advance(40 * time.Millisecond)
	}
	// Index 4 sticks.
	d.Observe(4, 1.0)
	clock.Advance(120 * time.Millisecond)
	idx, ok := d.Observe(4, 1.0)
	if !ok || idx != 4 {
		t.Fatalf("Observe = (%d, %v), want (4, true)", idx, ok)
	}
}

func TestDebouncerNoCandidateIsNoOp(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(0.8, 100*time.Millisecond, clock.Now)
	d.Reset(2)

	clock.Advance(time.Second)
	if _, ok := d.Observe(-1, 1.0); ok {
		t.Error("promoted with no candidate")
	}
	if d.Dominant() != 2 {
		t.Errorf("Dominant = %d, want 2", d.Dominant())
	}
}
