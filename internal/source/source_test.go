package source

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/geo"
)

// testCenter is central Amsterdam, used across the package tests.
func testCenter() geo.Coords {
	return geo.Coords{Lat: 52.3676, Lng: 4.9041}
}

func TestDistanceM(t *testing.T) {
	tests := []struct {
		name  string
		a, b  geo.Coords
		wantM float64
	}{
		{"same point", testCenter(), testCenter(), 0},
		// Amsterdam Centraal to Dam Square, roughly 800m.
		{"short hop", geo.Coords{Lat: 52.3791, Lng: 4.9003}, geo.Coords{Lat: 52.3731, Lng: 4.8926}, 850},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distanceM(tt.a, tt.b)
			if math.Abs(got-tt.wantM) > tt.wantM*0.15+1 {
				t.Errorf("distanceM = %.0f, want ≈%.0f", got, tt.wantM)
			}
		})
	}
}

const geoRSSFixture = `<?xml version="1.0"?>
<rss version="2.0" xmlns:georss="http://www.georss.org/georss">
  <channel>
    <title>City Events</title>
    <item>
      <title>Open-air market</title>
      <link>https://events.example/market</link>
      <guid>evt-1</guid>
      <description>Weekly market on the square</description>
      <georss:point>52.3680 4.9030</georss:point>
    </item>
    <item>
      <title>Harbour festival</title>
      <link>https://events.example/harbour</link>
      <guid>evt-2</guid>
      <georss:point>52.4500 5.1000</georss:point>
    </item>
    <item>
      <title>No location attached</title>
      <link>https://events.example/nowhere</link>
      <guid>evt-3</guid>
    </item>
  </channel>
</rss>`

func TestRSSSourceFiltersByRadius(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(geoRSSFixture))
	}))
	defer srv.Close()

	s := NewRSSSource("events", srv.URL, 2*time.Second)
	items, err := s.FetchNearby(context.Background(), testCenter(), 2000)
	if err != nil {
		t.Fatalf("FetchNearby: %v", err)
	}

	// The harbour festival (~16km away) and the entry without a point
	// must both be dropped.
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Name != "Open-air market" {
		t.Errorf("item = %q", items[0].Name)
	}
	if items[0].DistanceM <= 0 || items[0].DistanceM > 2000 {
		t.Errorf("distance = %.0f, want within radius", items[0].DistanceM)
	}
}

// stubSource returns canned items or an error.
type stubSource struct {
	name  string
	items []feed.Item
	err   error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) FetchNearby(ctx context.Context, center geo.Coords, radiusM int) ([]feed.Item, error) {
	return s.items, s.err
}

func TestMultiMergesInSourceOrder(t *testing.T) {
	m := NewMulti(
		stubSource{name: "api", items: []feed.Item{{ID: "a"}, {ID: "b"}}},
		stubSource{name: "events", items: []feed.Item{{ID: "b"}, {ID: "c"}}},
	)

	items, err := m.FetchNearby(context.Background(), testCenter(), 1000)
	if err != nil {
		t.Fatalf("FetchNearby: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("items[%d] = %q, want %q", i, items[i].ID, id)
		}
	}
}

func TestMultiToleratesPartialFailure(t *testing.T) {
	m := NewMulti(
		stubSource{name: "api", err: errors.New("down")},
		stubSource{name: "events", items: []feed.Item{{ID: "c"}}},
	)

	items, err := m.FetchNearby(context.Background(), testCenter(), 1000)
	if err != nil {
		t.Fatalf("FetchNearby: %v", err)
	}
	if len(items) != 1 || items[0].ID != "c" {
		t.Errorf("items = %+v", items)
	}
}

func TestMultiFailsWhenAllSourcesFail(t *testing.T) {
	m := NewMulti(
		stubSource{name: "api", err: errors.New("down")},
		stubSource{name: "events", err: errors.New("also down")},
	)

	if _, err := m.FetchNearby(context.Background(), testCenter(), 1000); err == nil {
		t.Fatal("expected error when every source fails")
	}
}
