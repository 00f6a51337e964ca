package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// defaultIPEndpoint answers with {"status":"success","lat":..,"lon":..}.
const defaultIPEndpoint = "http://ip-api.com/json"

// IPLocator estimates a position from the caller's public IP. It is the
// consent-gated fallback for machines without a pinned location.
type IPLocator struct {
	endpoint string
	client   *http.Client
}

// NewIPLocator creates an IP-based locator. An empty endpoint selects
// the default service.
func NewIPLocator(endpoint string, timeout time.Duration) *IPLocator {
	if endpoint == "" {
		endpoint = defaultIPEndpoint
	}
	return &IPLocator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Locate queries the geolocation service once. Failures are descriptive
// and terminal for the load attempt.
func (l *IPLocator) Locate(ctx context.Context) (Coords, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return Coords{}, fmt.Errorf("geo: create request: %w", err)
	}
	req.Header.Set("User-Agent", "loci/0.1 (https://github.com/camdenreyes/loci)")

	resp, err := l.client.Do(req)
	if err != nil {
		return Coords{}, fmt.Errorf("geo: lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coords{}, fmt.Errorf("geo: lookup HTTP %d", resp.StatusCode)
	}

	var body struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coords{}, fmt.Errorf("geo: decode response: %w", err)
	}
	if body.Status != "success" {
		return Coords{}, fmt.Errorf("geo: lookup rejected: %s", body.Message)
	}

	return Coords{Lat: body.Lat, Lng: body.Lon}, nil
}
