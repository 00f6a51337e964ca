package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/geo"
)

// Client fetches nearby spots from the loci HTTP API.
type Client struct {
	name    string
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates an API client. The limiter keeps rapid reloads from
// hammering the service: one request per second with a burst of one.
func NewClient(name, baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Name returns the configured source name.
func (c *Client) Name() string { return c.name }

// spotPayload mirrors the API's wire format.
type spotPayload struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Summary   string  `json:"summary"`
	URL       string  `json:"url"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	DistanceM float64 `json:"distance_m"`
	Rating    float64 `json:"rating"`
}

// FetchNearby retrieves the ranked spots around center. The response
// order is preserved: it is the display order of the feed.
func (c *Client) FetchNearby(ctx context.Context, center geo.Coords, radiusM int) ([]feed.Item, error) {
	if radiusM <= 0 {
		radiusM = DefaultRadiusM
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(center.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(center.Lng, 'f', -1, 64))
	q.Set("radius_m", strconv.Itoa(radiusM))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/spots/nearby?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "loci/0.1 (https://github.com/camdenreyes/loci)")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch nearby spots: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("spots API auth failed: HTTP %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("spots API error: HTTP %d %s", resp.StatusCode, resp.Status)
	}

	var body struct {
		Spots []spotPayload `json:"spots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode spots response: %w", err)
	}

	items := make([]feed.Item, 0, len(body.Spots))
	for _, s := range body.Spots {
		items = append(items, feed.Item{
			ID:        s.ID,
			Name:      s.Name,
			Category:  s.Category,
			Summary:   s.Summary,
			URL:       s.URL,
			Lat:       s.Lat,
			Lng:       s.Lng,
			DistanceM: s.DistanceM,
			Rating:    s.Rating,
		})
	}
	return items, nil
}
