package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/geo"
)

// RSSSource reads a GeoRSS feed (city open-data portals, event
// calendars) and keeps entries tagged with a georss:point inside the
// requested radius, nearest first.
type RSSSource struct {
	name   string
	url    string
	client *http.Client
}

// NewRSSSource creates a GeoRSS-backed source.
func NewRSSSource(name, feedURL string, timeout time.Duration) *RSSSource {
	return &RSSSource{
		name:   name,
		url:    feedURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the configured source name.
func (s *RSSSource) Name() string { return s.name }

// FetchNearby fetches and filters the feed. Entries without a parseable
// georss:point are skipped, not treated as errors.
func (s *RSSSource) FetchNearby(ctx context.Context, center geo.Coords, radiusM int) ([]feed.Item, error) {
	if radiusM <= 0 {
		radiusM = DefaultRadiusM
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "loci/0.1 (https://github.com/camdenreyes/loci)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed error: HTTP %d %s", resp.StatusCode, resp.Status)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var items []feed.Item
	for _, entry := range parsed.Items {
		pos, ok := geoRSSPoint(entry)
		if !ok {
			continue
		}
		d := distanceM(center, pos)
		if d > float64(radiusM) {
			continue
		}
		items = append(items, feed.Item{
			ID:        entryID(entry),
			Name:      entry.Title,
			Category:  s.name,
			Summary:   entry.Description,
			URL:       entry.Link,
			Lat:       pos.Lat,
			Lng:       pos.Lng,
			DistanceM: d,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DistanceM < items[j].DistanceM
	})
	return items, nil
}

// geoRSSPoint extracts "lat lng" from a georss:point extension.
func geoRSSPoint(entry *gofeed.Item) (geo.Coords, bool) {
	exts, ok := entry.Extensions["georss"]
	if !ok {
		return geo.Coords{}, false
	}
	points, ok := exts["point"]
	if !ok || len(points) == 0 {
		return geo.Coords{}, false
	}
	fields := strings.Fields(points[0].Value)
	if len(fields) != 2 {
		return geo.Coords{}, false
	}
	lat, err1 := strconv.ParseFloat(fields[0], 64)
	lng, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return geo.Coords{}, false
	}
	return geo.Coords{Lat: lat, Lng: lng}, true
}

// entryID creates a deterministic ID for a feed entry. Prefers the
// GUID, falls back to the link, then the title.
func entryID(entry *gofeed.Item) string {
	key := entry.GUID
	if key == "" {
		key = entry.Link
	}
	if key == "" {
		key = entry.Title
	}
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:8])
}
