// Package share builds and delivers share messages for feed items.
// Stateless pass-through: no events, no tracker interaction.
package share

import (
	"fmt"
	"net/url"

	"github.com/camdenreyes/loci/internal/feed"
)

// Message is what gets handed to the platform share mechanism.
type Message struct {
	Title string
	Text  string
	URL   string
}

// Sharer delivers a message. Fire-and-forget: callers log failures and
// move on, the core never observes a result.
type Sharer interface {
	Share(msg Message) error
}

// Fallback tries each sharer in turn until one succeeds.
type Fallback []Sharer

// Share implements Sharer.
func (f Fallback) Share(msg Message) error {
	var err error
	for _, s := range f {
		if err = s.Share(msg); err == nil {
			return nil
		}
	}
	return err
}

// BuildMapURL returns a location-reference URL for an item. The item's
// own URL wins when it has one; otherwise a maps search link is built
// from its coordinates.
func BuildMapURL(item feed.Item) string {
	if item.URL != "" {
		return item.URL
	}
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", fmt.Sprintf("%.6f,%.6f", item.Lat, item.Lng))
	return "https://www.google.com/maps/search/?" + q.Encode()
}

// Build composes the share message for an item.
func Build(item feed.Item) Message {
	link := BuildMapURL(item)
	return Message{
		Title: item.Name,
		Text:  fmt.Sprintf("Check out %s: %s", item.Name, link),
		URL:   link,
	}
}
