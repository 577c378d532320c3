// Package places resolves free-text location queries against a
// Nominatim-compatible geocoding service and cleans up the results:
// near-duplicate suppression and relevance ranking.
//
// The upstream API is not contractually stable; missing or malformed
// fields map to zero values rather than errors. Only transport-level
// failures and non-200 responses surface to the caller.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/metrics"
)

// Result is one geocoded candidate for a search query.
type Result struct {
	PlaceID    string  `json:"place_id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Importance float64 `json:"importance,omitempty"`
}

// Geocoder is the narrow interface the search service depends on.
// Viewbox is nil for unbiased/global searches.
type Geocoder interface {
	Search(ctx context.Context, query string, box *Viewbox) ([]Result, error)
	GeocodeCity(ctx context.Context, name string) (*domain.LatLng, error)
}

// Viewbox is a lat/lng bounding box used to bias (not restrict) a search.
type Viewbox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Client talks to a Nominatim-compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the given base URL,
// e.g. "https://nominatim.openstreetmap.org".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Geocoder = (*Client)(nil)

// nominatimResult mirrors the fields we consume from the upstream JSON.
// Lat/lon arrive as strings; importance is optional.
type nominatimResult struct {
	PlaceID     json.Number `json:"place_id"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Importance  float64     `json:"importance"`
}

// Search runs a free-text place search, optionally biased to box.
func (c *Client) Search(ctx context.Context, query string, box *Viewbox) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "10")
	if box != nil {
		// Nominatim viewbox is left,top,right,bottom (lng,lat,lng,lat).
		params.Set("viewbox", fmt.Sprintf("%f,%f,%f,%f", box.MinLng, box.MaxLat, box.MaxLng, box.MinLat))
	}

	raw, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(raw))
	for _, r := range raw {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue // unusable without a coordinate
		}
		name := r.Name
		if name == "" {
			name = r.DisplayName
		}
		results = append(results, Result{
			PlaceID:    r.PlaceID.String(),
			Lat:        lat,
			Lng:        lng,
			Name:       name,
			Address:    r.DisplayName,
			Importance: r.Importance,
		})
	}
	return results, nil
}

// GeocodeCity resolves a city name to a single coordinate.
// Returns (nil, nil) when the upstream finds nothing — an unknown bias city
// is not an error, it just contributes no bias.
func (c *Client) GeocodeCity(ctx context.Context, name string) (*domain.LatLng, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	raw, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	lat, latErr := strconv.ParseFloat(raw[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(raw[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return nil, nil
	}
	return &domain.LatLng{Lat: lat, Lng: lng}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]nominatimResult, error) {
	metrics.UpstreamRequests.WithLabelValues("geocoder").Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places.Client: build request: %w", err)
	}
	req.Header.Set("User-Agent", "travelplanner/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("geocoder").Inc()
		return nil, fmt.Errorf("places.Client: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrors.WithLabelValues("geocoder").Inc()
		return nil, fmt.Errorf("places.Client: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var raw []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		metrics.UpstreamErrors.WithLabelValues("geocoder").Inc()
		return nil, fmt.Errorf("places.Client: %w: decode: %w", domain.ErrUpstream, err)
	}
	return raw, nil
}
