package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coastally/coastally-api/internal/domain/places"
	apperrors "github.com/coastally/coastally-api/pkg/errors"
	"github.com/coastally/coastally-api/pkg/metrics"
)

const (
	defaultPlacesURL  = "https://api.geoapify.com/v2/places"
	defaultGeocodeURL = "https://api.geoapify.com/v1/geocode/autocomplete"
)

// Client talks to the Geoapify Places and Geocoding APIs.
type Client struct {
	apiKey     string
	placesURL  string
	geocodeURL string
	httpClient *http.Client
	counters   *metrics.UpstreamCounters
}

// NewClient builds an API client. An empty key is allowed at construction so
// the service can boot without one; calls then fail fast without touching the
// network and the curated fallbacks take over.
func NewClient(apiKey, placesURL, geocodeURL string, counters *metrics.UpstreamCounters) *Client {
	if strings.TrimSpace(placesURL) == "" {
		placesURL = defaultPlacesURL
	}
	if strings.TrimSpace(geocodeURL) == "" {
		geocodeURL = defaultGeocodeURL
	}
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		placesURL:  strings.TrimRight(placesURL, "/"),
		geocodeURL: strings.TrimRight(geocodeURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		counters: counters,
	}
}

// Autocomplete resolves partial text into candidate locations.
func (c *Client) Autocomplete(ctx context.Context, text string, limit int) ([]places.Feature, error) {
	if c.apiKey == "" {
		return nil, apperrors.Wrap("upstream_unavailable", "places API key is not configured", nil)
	}
	params := url.Values{}
	params.Set("text", text)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("apiKey", c.apiKey)

	features, err := c.fetch(ctx, c.geocodeURL+"?"+params.Encode())
	c.counters.Record(err)
	return features, err
}

// Search queries places by category within the given filter expression.
func (c *Client) Search(ctx context.Context, categories, filter string, limit int) ([]places.Feature, error) {
	if c.apiKey == "" {
		return nil, apperrors.Wrap("upstream_unavailable", "places API key is not configured", nil)
	}
	params := url.Values{}
	params.Set("categories", categories)
	params.Set("filter", filter)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("apiKey", c.apiKey)

	features, err := c.fetch(ctx, c.placesURL+"?"+params.Encode())
	c.counters.Record(err)
	return features, err
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([]places.Feature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.Wrap("upstream_unavailable", "build places request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap("upstream_unavailable", "places request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, apperrors.Wrap("upstream_unavailable",
			fmt.Sprintf("places request error: status=%d body=%s", resp.StatusCode, string(payload)), nil)
	}

	var raw featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, apperrors.Wrap("upstream_unavailable", "decode places response", err)
	}

	return flatten(raw), nil
}

// featureCollection mirrors the provider's GeoJSON envelope. Only the fields
// the domain consumes are decoded.
type featureCollection struct {
	Features []struct {
		Properties struct {
			PlaceID      string   `json:"place_id"`
			Name         string   `json:"name"`
			Categories   []string `json:"categories"`
			Lon          float64  `json:"lon"`
			Lat          float64  `json:"lat"`
			Street       string   `json:"street"`
			Housenumber  string   `json:"housenumber"`
			Suburb       string   `json:"suburb"`
			City         string   `json:"city"`
			State        string   `json:"state"`
			Postcode     string   `json:"postcode"`
			Country      string   `json:"country"`
			Formatted    string   `json:"formatted"`
			Website      string   `json:"website"`
			OpeningHours string   `json:"opening_hours"`
			Contact      struct {
				Phone string `json:"phone"`
			} `json:"contact"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func flatten(raw featureCollection) []places.Feature {
	out := make([]places.Feature, 0, len(raw.Features))
	for _, f := range raw.Features {
		p := f.Properties
		lon, lat := p.Lon, p.Lat
		// Geometry is authoritative when properties omit coordinates.
		if lon == 0 && lat == 0 && len(f.Geometry.Coordinates) >= 2 {
			lon, lat = f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		}
		out = append(out, places.Feature{
			PlaceID:      p.PlaceID,
			Name:         p.Name,
			Categories:   p.Categories,
			Lon:          lon,
			Lat:          lat,
			Street:       p.Street,
			Housenumber:  p.Housenumber,
			Suburb:       p.Suburb,
			City:         p.City,
			State:        p.State,
			Postcode:     p.Postcode,
			Country:      p.Country,
			Formatted:    p.Formatted,
			Phone:        p.Contact.Phone,
			Website:      p.Website,
			OpeningHours: p.OpeningHours,
		})
	}
	return out
}

var _ places.ProviderClient = (*Client)(nil)
