// Package feed holds the view-session and interaction-event engine.
//
// The tracker owns the notion of "current item", measures dwell time per
// view session, and converts dominance transitions and user actions into
// a small, well-ordered stream of interactions. It is single-threaded by
// design: every method is expected to run on the bubbletea update loop,
// which serializes them, so there is no internal locking.
package feed

import (
	"time"

	"github.com/google/uuid"
)

// TrackerConfig configures a Tracker.
type TrackerConfig struct {
	// Recorder receives emitted interactions. Defaults to Discard.
	Recorder Recorder

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// Tracker tracks which item is currently dominant and how long it has
// been looked at. At most one view session is open at a time; each
// session is closed by exactly one interaction (a skip on scroll-away,
// or a like/unlike which also restarts the clock in place).
type Tracker struct {
	rec Recorder
	now func() time.Time

	items        []Item
	currentIndex int
	viewStart    time.Time

	// Like state is keyed by item ID so it survives scrolling away and
	// back within one feed generation. Cleared wholesale on reload.
	likes map[string]bool

	gen      uint64 // generation of the currently displayed feed
	inflight uint64 // generation of the most recent load, 0 = none pending
	loadErr  error
}

// NewTracker creates a tracker with an empty feed.
func NewTracker(cfg TrackerConfig) *Tracker {
	if cfg.Recorder == nil {
		cfg.Recorder = Discard
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Tracker{
		rec:   cfg.Recorder,
		now:   cfg.Now,
		likes: make(map[string]bool),
	}
}

// Len returns the number of items in the current feed.
func (t *Tracker) Len() int { return len(t.items) }

// Items returns the current feed in display order.
func (t *Tracker) Items() []Item { return t.items }

// CurrentIndex returns the index of the dominant item.
func (t *Tracker) CurrentIndex() int { return t.currentIndex }

// Current returns the dominant item, or false if the feed is empty.
func (t *Tracker) Current() (Item, bool) {
	if len(t.items) == 0 {
		return Item{}, false
	}
	return t.items[t.currentIndex], true
}

// ItemAt returns the item at index, or false if out of range.
func (t *Tracker) ItemAt(index int) (Item, bool) {
	if index < 0 || index >= len(t.items) {
		return Item{}, false
	}
	return t.items[index], true
}

// Err returns the error from the most recent failed load, if any.
func (t *Tracker) Err() error { return t.loadErr }

// Loading reports whether a load is in flight.
func (t *Tracker) Loading() bool { return t.inflight != 0 }

// OnDominantItemChanged records that the viewport's dominance computation
// now reports newIndex. Out-of-range indices are ignored (stale callbacks
// from a previous feed generation are expected) and a repeated report is
// a no-op. A real transition emits exactly one skip for the abandoned
// item, covering the dwell since the session's last reset, then restarts
// the clock on the new index.
func (t *Tracker) OnDominantItemChanged(newIndex int) {
	if newIndex < 0 || newIndex >= len(t.items) {
		return
	}
	if newIndex == t.currentIndex {
		return
	}
	now := t.now()
	t.emit(t.items[t.currentIndex].ID, ActionSkip, now)
	t.currentIndex = newIndex
	t.viewStart = now
}

// OnUserAction records a like or unlike on the card at index, using the
// dwell accumulated since the current session's last reset, and restarts
// the clock. The dominant item does not change: a subsequent skip
// measures time since this action, not since the item first appeared.
func (t *Tracker) OnUserAction(index int, action Action) {
	if index < 0 || index >= len(t.items) {
		return
	}
	if action != ActionLike && action != ActionUnlike {
		return
	}
	now := t.now()
	t.emit(t.items[index].ID, action, now)
	t.viewStart = now
}

// Liked reports the like state of the item at index.
func (t *Tracker) Liked(index int) bool {
	if index < 0 || index >= len(t.items) {
		return false
	}
	return t.likes[t.items[index].ID]
}

// ToggleLike flips the like state of the item at index and emits the
// matching interaction. It is the only mutator of like state. Returns
// the new state and whether the toggle applied (false for a bad index).
func (t *Tracker) ToggleLike(index int) (liked bool, ok bool) {
	if index < 0 || index >= len(t.items) {
		return false, false
	}
	id := t.items[index].ID
	liked = !t.likes[id]
	t.likes[id] = liked
	if liked {
		t.OnUserAction(index, ActionLike)
	} else {
		t.OnUserAction(index, ActionUnlike)
	}
	return liked, true
}

// BeginLoad marks a new load in flight and returns its generation.
// A later BeginLoad supersedes this one: results delivered for a stale
// generation are discarded by CompleteLoad, so two racing loads cannot
// corrupt the displayed feed.
func (t *Tracker) BeginLoad() uint64 {
	t.gen++
	t.inflight = t.gen
	return t.gen
}

// CompleteLoad delivers the result of the load tagged gen. Stale
// generations are dropped and the method reports false. On success the
// feed is replaced wholesale and the tracker resets to (index 0, clock
// now, no likes). On failure the feed becomes empty and err is surfaced
// through Err for the UI to render with a retry affordance.
func (t *Tracker) CompleteLoad(gen uint64, items []Item, err error) bool {
	if gen != t.inflight {
		return false
	}
	t.inflight = 0
	if err != nil {
		t.items = nil
		t.currentIndex = 0
		t.likes = make(map[string]bool)
		t.loadErr = err
		return true
	}
	t.items = items
	t.currentIndex = 0
	t.viewStart = t.now()
	t.likes = make(map[string]bool)
	t.loadErr = nil
	return true
}

func (t *Tracker) emit(itemID string, action Action, now time.Time) {
	dwell := now.Sub(t.viewStart)
	if dwell < 0 {
		dwell = 0
	}
	t.rec.Record(Interaction{
		EventID: uuid.NewString(),
		ItemID:  itemID,
		Action:  action,
		Dwell:   dwell,
		At:      now,
	})
}
