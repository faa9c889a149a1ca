package places

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/coastally/coastally-api/pkg/errors"
)

type stubProvider struct {
	features     []Feature
	err          error
	lastText     string
	lastCats     string
	lastFilter   string
	lastLimit    int
	autocomplete int
	searches     int
}

func (s *stubProvider) Autocomplete(_ context.Context, text string, limit int) ([]Feature, error) {
	s.autocomplete++
	s.lastText = text
	s.lastLimit = limit
	return s.features, s.err
}

func (s *stubProvider) Search(_ context.Context, categories, filter string, limit int) ([]Feature, error) {
	s.searches++
	s.lastCats = categories
	s.lastFilter = filter
	s.lastLimit = limit
	return s.features, s.err
}

func newTestService(provider ProviderClient) Service {
	return NewService(Config{DefaultLimit: 20, DefaultRadius: 50000}, provider, slog.Default())
}

func TestAutocompleteShortQueryServesCuratedList(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider)

	got, err := svc.Autocomplete(context.Background(), "go", 5)

	require.NoError(t, err)
	assert.Zero(t, provider.autocomplete, "short input must not reach the provider")
	assert.Len(t, got, 5)
	assert.Equal(t, "Goa - Baga Beach", got[0].Name)
	assert.Equal(t, RatingCurated, got[0].RatingSource)
}

func TestAutocompleteProviderFailureFallsBackFiltered(t *testing.T) {
	provider := &stubProvider{err: errors.New("dial tcp: timeout")}
	svc := newTestService(provider)

	got, err := svc.Autocomplete(context.Background(), "kovalam", 10)

	require.NoError(t, err)
	assert.Equal(t, 1, provider.autocomplete)
	require.Len(t, got, 1)
	assert.Equal(t, "Kerala - Kovalam Beach", got[0].Name)
}

func TestAutocompleteUsesProviderResults(t *testing.T) {
	provider := &stubProvider{features: []Feature{
		{PlaceID: "p1", Name: "Palolem Beach", Categories: []string{"beach"}, Lon: 74.023, Lat: 15.010},
	}}
	svc := newTestService(provider)

	got, err := svc.Autocomplete(context.Background(), "palolem", 0)

	require.NoError(t, err)
	assert.Equal(t, "palolem", provider.lastText)
	assert.Equal(t, 20, provider.lastLimit, "default limit applies when caller passes zero")
	require.Len(t, got, 1)
	assert.Equal(t, "Palolem Beach", got[0].Name)
	assert.Equal(t, RatingHeuristic, got[0].RatingSource)
}

func TestSearchFilterPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		query  SearchQuery
		filter string
	}{
		{
			name:   "place id wins over everything",
			query:  SearchQuery{PlaceID: "51abc", Coordinates: &Coordinate{Lon: 73.75, Lat: 15.55}, Region: "goa"},
			filter: "place:51abc",
		},
		{
			name:   "coordinates beat region",
			query:  SearchQuery{Coordinates: &Coordinate{Lon: 73.75, Lat: 15.55}, Region: "goa", RadiusMeters: 10000},
			filter: "circle:73.750000,15.550000,10000",
		},
		{
			name:   "coordinates use default radius",
			query:  SearchQuery{Coordinates: &Coordinate{Lon: 73.75, Lat: 15.55}},
			filter: "circle:73.750000,15.550000,50000",
		},
		{
			name:   "known region maps to its bounding box",
			query:  SearchQuery{Region: "goa"},
			filter: "rect:73.6813,15.1960,73.8370,15.6989",
		},
		{
			name:   "unknown region falls back to country filter",
			query:  SearchQuery{Region: "atlantis"},
			filter: "countrycode:in",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{}
			svc := newTestService(provider)

			_, err := svc.Search(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.filter, provider.lastFilter)
		})
	}
}

func TestSearchCategoryTaxonomy(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(provider)

	_, err := svc.Search(context.Background(), SearchQuery{Category: "restaurant"})

	require.NoError(t, err)
	assert.Equal(t, "catering.restaurant,catering.cafe", provider.lastCats)

	_, err = svc.Search(context.Background(), SearchQuery{})
	require.NoError(t, err)
	assert.Equal(t, categoryTaxonomy["beach"], provider.lastCats, "empty category defaults to beaches")
}

func TestSearchDeduplicatesNearbyNamesakes(t *testing.T) {
	provider := &stubProvider{features: []Feature{
		{PlaceID: "a", Name: "Sunset Shack", Lon: 73.7500, Lat: 15.5500},
		{PlaceID: "b", Name: "Sunset Shack", Lon: 73.7504, Lat: 15.5496},
		{PlaceID: "c", Name: "Sunset Shack", Lon: 73.7600, Lat: 15.5500},
		{PlaceID: "d", Name: "Other Shack", Lon: 73.7500, Lat: 15.5500},
	}}
	svc := newTestService(provider)

	got, err := svc.Search(context.Background(), SearchQuery{Region: "goa"})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID, "first occurrence is kept")
	assert.Equal(t, "c", got[1].ID, "same name farther than the tolerance survives")
	assert.Equal(t, "d", got[2].ID)
}

func TestSearchBeachFailureServesCuratedBeaches(t *testing.T) {
	provider := &stubProvider{err: errors.New("502 bad gateway")}
	svc := newTestService(provider)

	got, err := svc.Search(context.Background(), SearchQuery{Category: "beach", Limit: 3})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, RatingCurated, got[0].RatingSource)
}

func TestSearchNonBeachFailurePropagates(t *testing.T) {
	provider := &stubProvider{err: errors.New("502 bad gateway")}
	svc := newTestService(provider)

	_, err := svc.Search(context.Background(), SearchQuery{Category: "hotel"})

	require.Error(t, err)
	assert.Equal(t, "upstream_unavailable", apperrors.CodeOf(err))
}

func TestRegionsAreStable(t *testing.T) {
	svc := newTestService(&stubProvider{})

	first := svc.Regions()
	second := svc.Regions()

	assert.Equal(t, first, second)
	require.Len(t, first, 8)
	assert.Equal(t, "Goa", first[0].Label, "sorted by label")
}

func TestEnrichSynthesizesViewModel(t *testing.T) {
	f := Feature{
		PlaceID:      "xyz",
		Name:         "Blue Lagoon Resort",
		Categories:   []string{"beach.beach_resort", "accommodation.resort"},
		Lon:          74.02,
		Lat:          15.01,
		Street:       "Beach Road",
		City:         "Canacona",
		State:        "Goa",
		Country:      "India",
		Phone:        "+91 832 000 0000",
		Website:      "https://example.com",
		OpeningHours: "Mo-Su 08:00-20:00",
	}

	p := enrich(f)

	assert.Equal(t, "beach", p.Category)
	assert.Equal(t, "Beach Road, Canacona, Goa, India", p.Address)
	// 3.5 base + 0.5 resort + 0.2 website + 0.1 phone + 0.2 hours, capped at 4.5.
	assert.InDelta(t, 4.5, p.Rating, 0.001)
	assert.Equal(t, RatingHeuristic, p.RatingSource)
	assert.Equal(t, "Busy", p.CrowdLevel)
	assert.Contains(t, p.Highlights, "Resort amenities")
	assert.Contains(t, p.Highlights, "Online booking")
	assert.Contains(t, p.Activities, "Swimming")
}

func TestEnrichDefaultsForSparseFeature(t *testing.T) {
	p := enrich(Feature{PlaceID: "bare", Lon: 1, Lat: 2})

	assert.Equal(t, "Unnamed Place", p.Name)
	assert.Equal(t, "attraction", p.Category)
	assert.Equal(t, "Address not available", p.Address)
	assert.InDelta(t, 3.5, p.Rating, 0.001)
	assert.Equal(t, "Light", p.CrowdLevel)
	assert.Equal(t, []string{"Scenic location", "Great atmosphere"}, p.Highlights)
	assert.Equal(t, []string{"Exploration", "Photography", "Relaxation"}, p.Activities)
}
