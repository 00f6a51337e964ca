package ui

import "time"

// Debouncer decides when a card has genuinely become "what the user is
// looking at". A candidate index is promoted to dominant only after it
// has covered at least the configured fraction of the viewport for at
// least the configured hold time. At most one index is dominant at a
// time; while no candidate qualifies there is simply no report. Indices
// that flash by during rapid scrolling never get promoted, so the
// tracker never hears about them.
type Debouncer struct {
	threshold float64
	hold      time.Duration
	now       func() time.Time

	candidate int
	since     time.Time
	dominant  int
}

// NewDebouncer creates a debouncer. threshold is the viewport coverage
// fraction (0..1], hold the minimum qualification time. A nil clock
// defaults to time.Now.
func NewDebouncer(threshold float64, hold time.Duration, now func() time.Time) *Debouncer {
	if now == nil {
		now = time.Now
	}
	return &Debouncer{
		threshold: threshold,
		hold:      hold,
		now:       now,
		candidate: -1,
		dominant:  -1,
	}
}

// Reset clears all state and seeds the dominant index, used after a
// feed load when index 0 is showing without any transition.
func (d *Debouncer) Reset(dominant int) {
	d.candidate = -1
	d.dominant = dominant
}

// Dominant returns the current dominant index, -1 for none.
func (d *Debouncer) Dominant() int { return d.dominant }

// Observe is called once per animation frame with the index of the
// card under the cursor and its current viewport coverage. It returns
// the newly promoted dominant index and true exactly once per
// promotion; every other call reports false.
func (d *Debouncer) Observe(index int, coverage float64) (int, bool) {
	if index < 0 || coverage < d.threshold {
		d.candidate = -1
		return 0, false
	}
	if index != d.candidate {
		d.candidate = index
		d.since = d.now()
		return 0, false
	}
	if index == d.dominant {
		return 0, false
	}
	if d.now().Sub(d.since) < d.hold {
		return 0, false
	}
	d.dominant = index
	return index, true
}
