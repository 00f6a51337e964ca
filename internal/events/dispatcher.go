// Package events delivers interactions to a sink without ever blocking
// the UI loop.
package events

import (
	"sync"
	"sync/atomic"

	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/logging"
)

// Sink is where interactions end up. The store satisfies this.
type Sink interface {
	Append(feed.Interaction) error
}

// DefaultBuffer is the dispatcher queue depth. Scrolling emits at most
// a handful of events per second, so this is generous.
const DefaultBuffer = 256

// Dispatcher queues interactions on a buffered channel and writes them
// from a single background goroutine. Record never blocks: when the
// queue is full the event is dropped and counted, because losing an
// analytics event is acceptable and stalling the scroll is not. Sink
// failures are logged and swallowed, never retried.
type Dispatcher struct {
	sink Sink
	ch   chan feed.Interaction

	mu     sync.RWMutex
	closed bool

	dropped atomic.Int64
	wg      sync.WaitGroup
}

// NewDispatcher starts the background writer. buffer <= 0 selects
// DefaultBuffer.
func NewDispatcher(sink Sink, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	d := &Dispatcher{
		sink: sink,
		ch:   make(chan feed.Interaction, buffer),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for ev := range d.ch {
		if err := d.sink.Append(ev); err != nil {
			d.dropped.Add(1)
			logging.Warn("interaction write failed", "item", ev.ItemID, "action", ev.Action, "err", err)
		}
	}
}

// Record implements feed.Recorder.
func (d *Dispatcher) Record(ev feed.Interaction) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.dropped.Add(1)
		return
	}
	select {
	case d.ch <- ev:
	default:
		d.dropped.Add(1)
		logging.Warn("interaction queue full, dropping event", "item", ev.ItemID, "action", ev.Action)
	}
}

// Dropped returns how many events were lost to a full queue, a closed
// dispatcher, or sink failures.
func (d *Dispatcher) Dropped() int64 { return d.dropped.Load() }

// Close drains the queue and stops the writer. Record calls after
// Close drop their events.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.ch)
	d.mu.Unlock()
	d.wg.Wait()
}
