// Package source retrieves ranked nearby items for the feed.
package source

import (
	"context"
	"math"

	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/geo"
)

// DefaultRadiusM is used when the caller passes a non-positive radius.
const DefaultRadiusM = 2000

// Source supplies an ordered sequence of items near a position.
// Order is display order; the tracker never reorders it.
type Source interface {
	// Name returns a human-readable source name.
	Name() string

	// FetchNearby retrieves items within radiusM meters of center.
	// Fails with a descriptive error on network/auth/server failure.
	FetchNearby(ctx context.Context, center geo.Coords, radiusM int) ([]feed.Item, error)
}

// distanceM returns the great-circle distance in meters between two
// positions (haversine).
func distanceM(a, b geo.Coords) float64 {
	const earthRadiusM = 6371000

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}
