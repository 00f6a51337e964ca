package feed

import "time"

// Action is what the user did to end (or punctuate) a view session.
type Action string

const (
	ActionLike   Action = "like"
	ActionSkip   Action = "skip"
	ActionUnlike Action = "unlike"
)

// Interaction is the atomic unit of recorded behavior: one item, one
// action, and the dwell time since the session's last clock reset.
// Interactions are append-only and never revised after emission.
type Interaction struct {
	EventID string
	ItemID  string
	Action  Action
	Dwell   time.Duration
	At      time.Time
}

// Recorder receives interactions from the tracker. Implementations must
// not block: emission is fire-and-forget and the tracker never consults
// a result or retries.
type Recorder interface {
	Record(Interaction)
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(Interaction)

// Record calls f(ev).
func (f RecorderFunc) Record(ev Interaction) { f(ev) }

// Discard drops every interaction. Used when recording is disabled or
// the user is not signed in.
var Discard Recorder = RecorderFunc(func(Interaction) {})
