// Package geo resolves the coordinates a feed load is centered on.
package geo

import (
	"context"
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned when no location source is allowed to
// run. It is terminal for the current load attempt: the caller surfaces
// it as the load error and does not retry automatically.
var ErrPermissionDenied = errors.New("geo: location permission denied")

// Coords is a WGS84 position.
type Coords struct {
	Lat float64
	Lng float64
}

func (c Coords) String() string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lng)
}

// Locator yields the position to center the feed on, or an error.
// A denied permission comes back as ErrPermissionDenied.
type Locator interface {
	Locate(ctx context.Context) (Coords, error)
}

// Fixed always returns the same coordinates. Used when the user pins a
// location in config.
type Fixed struct {
	Coords Coords
}

// Locate returns the pinned coordinates.
func (f Fixed) Locate(ctx context.Context) (Coords, error) {
	return f.Coords, nil
}

// Denied always refuses. Used when the user has not granted any
// location source.
type Denied struct{}

// Locate returns ErrPermissionDenied.
func (Denied) Locate(ctx context.Context) (Coords, error) {
	return Coords{}, ErrPermissionDenied
}
