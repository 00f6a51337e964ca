package source

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/geo"
	"github.com/camdenreyes/loci/internal/logging"
)

// maxConcurrentFetches limits parallel source fetches.
const maxConcurrentFetches = 4

// Multi fans a fetch out to several sources and concatenates the
// results in source order, deduplicated by item ID. A source that fails
// is logged and skipped; the load as a whole fails only when every
// source fails, so one flaky feed cannot blank the app.
type Multi struct {
	sources []Source
}

// NewMulti creates a merged source. Order of sources is the order their
// items appear in the combined feed.
func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

// Name identifies the merged source in logs.
func (m *Multi) Name() string { return "multi" }

// FetchNearby queries all sources concurrently.
func (m *Multi) FetchNearby(ctx context.Context, center geo.Coords, radiusM int) ([]feed.Item, error) {
	if len(m.sources) == 0 {
		return nil, errors.New("no sources configured")
	}

	results := make([][]feed.Item, len(m.sources))
	failures := make([]error, len(m.sources))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, src := range m.sources {
		g.Go(func() error {
			items, err := src.FetchNearby(gctx, center, radiusM)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logging.Warn("source fetch failed", "source", src.Name(), "err", err)
				failures[i] = err
				return nil // one bad source must not cancel the rest
			}
			results[i] = items
			return nil
		})
	}
	g.Wait()

	var merged []feed.Item
	seen := make(map[string]bool)
	failed := 0
	for i, items := range results {
		if failures[i] != nil {
			failed++
			continue
		}
		for _, item := range items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			merged = append(merged, item)
		}
	}

	if failed == len(m.sources) {
		return nil, errors.Join(failures...)
	}
	return merged, nil
}
