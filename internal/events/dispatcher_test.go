package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/camdenreyes/loci/internal/feed"
)

// memSink collects appended interactions.
type memSink struct {
	mu     sync.Mutex
	events []feed.Interaction
	err    error
	block  chan struct{} // when non-nil, Append waits on it first
}

func (s *memSink) Append(ev feed.Interaction) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *memSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func event(id string) feed.Interaction {
	return feed.Interaction{EventID: id, ItemID: "spot-1", Action: feed.ActionSkip, At: time.Now()}
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &memSink{}
	d := NewDispatcher(sink, 16)

	for _, id := range []string{"a", "b", "c"} {
		d.Record(event(id))
	}
	d.Close()

	if sink.len() != 3 {
		t.Fatalf("delivered %d events, want 3", sink.len())
	}
	for i, id := range []string{"a", "b", "c"} {
		if sink.events[i].EventID != id {
			t.Errorf("events[%d] = %q, want %q", i, sink.events[i].EventID, id)
		}
	}
	if d.Dropped() != 0 {
		t.Errorf("dropped = %d, want 0", d.Dropped())
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	sink := &memSink{block: release}
	d := NewDispatcher(sink, 1)

	// First event occupies the writer, second fills the buffer, the
	// rest must be dropped without blocking.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Record(event("x"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full queue")
	}

	close(release)
	d.Close()

	if d.Dropped() == 0 {
		t.Error("expected some events to be dropped")
	}
	if got := sink.len() + int(d.Dropped()); got != 5 {
		t.Errorf("delivered+dropped = %d, want 5", got)
	}
}

func TestDispatcherSwallowsSinkErrors(t *testing.T) {
	sink := &memSink{err: errors.New("disk full")}
	d := NewDispatcher(sink, 16)

	d.Record(event("a"))
	d.Close()

	if d.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", d.Dropped())
	}
}

func TestRecordAfterCloseIsSafe(t *testing.T) {
	sink := &memSink{}
	d := NewDispatcher(sink, 16)
	d.Close()
	d.Close() // idempotent

	d.Record(event("late"))
	if d.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", d.Dropped())
	}
	if sink.len() != 0 {
		t.Errorf("delivered %d events, want 0", sink.len())
	}
}
