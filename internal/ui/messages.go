package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdenreyes/loci/internal/feed"
)

// FeedLoadedMsg delivers the outcome of a feed load. Gen ties it back
// to the load that produced it so stale results can be discarded.
type FeedLoadedMsg struct {
	Gen   uint64
	Items []feed.Item
	Err   error
}

// SharedMsg reports the outcome of a share attempt.
type SharedMsg struct {
	Err error
}

// frameMsg drives card transitions, the like burst, and dominance
// observation.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
