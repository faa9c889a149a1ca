package guide

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/coastally/coastally-api/pkg/errors"
)

type stubRepo struct {
	destinations []Destination
	hotels       map[string][]Hotel
	restaurants  map[string][]Restaurant
	transport    map[string]map[string]TransportGuide
	sentiment    map[string]SentimentSummary
	safety       map[int][]SafetyRecord
	years        []int
	itineraries  map[string]map[string]Itinerary
}

func (s *stubRepo) Destinations(_ context.Context) ([]Destination, error) {
	return s.destinations, nil
}

func (s *stubRepo) Hotels(_ context.Context, location string) ([]Hotel, error) {
	return s.hotels[location], nil
}

func (s *stubRepo) Restaurants(_ context.Context, location string) ([]Restaurant, error) {
	return s.restaurants[location], nil
}

func (s *stubRepo) Transport(_ context.Context, location, mode string) (TransportGuide, bool, error) {
	modes, ok := s.transport[location]
	if !ok {
		return TransportGuide{}, false, nil
	}
	entry, ok := modes[mode]
	return entry, ok, nil
}

func (s *stubRepo) Sentiment(_ context.Context, location string) (SentimentSummary, bool, error) {
	summary, ok := s.sentiment[location]
	return summary, ok, nil
}

func (s *stubRepo) SafetyHistory(_ context.Context, year int) ([]SafetyRecord, error) {
	return s.safety[year], nil
}

func (s *stubRepo) SafetyYears(_ context.Context) ([]int, error) {
	return s.years, nil
}

func (s *stubRepo) Itinerary(_ context.Context, location, duration string) (Itinerary, bool, error) {
	durations, ok := s.itineraries[location]
	if !ok {
		return Itinerary{}, false, nil
	}
	itinerary, ok := durations[duration]
	return itinerary, ok, nil
}

func seededRepo() *stubRepo {
	return &stubRepo{
		destinations: []Destination{{Key: "miami", Name: "Miami Beach, FL", Latitude: 25.79, Longitude: -80.13}},
		hotels: map[string][]Hotel{
			"miami": {
				{Name: "Beachside Inn", Price: 120, Rating: 4.2},
				{Name: "Ocean View Resort", Price: 180, Rating: 4.5},
				{Name: "Luxury Oceanfront", Price: 300, Rating: 4.8},
			},
		},
		restaurants: map[string][]Restaurant{
			"miami": {
				{Name: "Ocean Grill", Cuisine: "seafood", Rating: 4.6, PriceRange: "$$$", OceanView: true},
				{Name: "Beachside Cafe", Cuisine: "american", Rating: 4.3, PriceRange: "$$", OceanView: true},
				{Name: "Havana Dreams", Cuisine: "cuban", Rating: 4.7, PriceRange: "$$"},
			},
		},
		transport: map[string]map[string]TransportGuide{
			"miami": {"car": {Parking: map[string]string{"beachParking": "$3/hour"}, Tips: []string{"Heavy traffic"}}},
		},
		sentiment: map[string]SentimentSummary{
			"miami": {Overall: 4.2, TotalReviews: 15743},
		},
		safety: map[int][]SafetyRecord{
			2024: {{Location: "Miami Beach, FL", Incidents: 12, Rating: "Moderate"}},
			2023: {{Location: "Miami Beach, FL", Incidents: 18, Rating: "High Risk"}},
		},
		years: []int{2024, 2023},
		itineraries: map[string]map[string]Itinerary{
			"miami": {"1day": {Title: "Miami Beach - 1 Day Adventure"}},
		},
	}
}

func newTestGuide() Service {
	return NewService(seededRepo(), slog.Default())
}

func TestHotelsFilterByPriceBand(t *testing.T) {
	svc := newTestGuide()
	ctx := context.Background()

	tests := []struct {
		band  string
		names []string
	}{
		{band: "", names: []string{"Beachside Inn", "Ocean View Resort", "Luxury Oceanfront"}},
		{band: "budget", names: []string{"Beachside Inn"}},
		{band: "mid", names: []string{"Ocean View Resort"}},
		{band: "luxury", names: []string{"Luxury Oceanfront"}},
	}
	for _, tt := range tests {
		hotels, err := svc.Hotels(ctx, "Miami", tt.band)
		require.NoError(t, err, tt.band)
		got := make([]string, 0, len(hotels))
		for _, h := range hotels {
			got = append(got, h.Name)
		}
		assert.Equal(t, tt.names, got, "band %q", tt.band)
	}
}

func TestHotelsValidation(t *testing.T) {
	svc := newTestGuide()

	_, err := svc.Hotels(context.Background(), "", "")
	assert.Equal(t, "invalid_input", apperrors.CodeOf(err))

	_, err = svc.Hotels(context.Background(), "miami", "platinum")
	assert.Equal(t, "invalid_input", apperrors.CodeOf(err))

	_, err = svc.Hotels(context.Background(), "atlantis", "")
	assert.Equal(t, "not_found", apperrors.CodeOf(err))
}

func TestRestaurantsFilterByCuisine(t *testing.T) {
	svc := newTestGuide()
	ctx := context.Background()

	tests := []struct {
		cuisine string
		names   []string
	}{
		{cuisine: "", names: []string{"Ocean Grill", "Beachside Cafe", "Havana Dreams"}},
		{cuisine: "seafood", names: []string{"Ocean Grill"}},
		{cuisine: "Cuban", names: []string{"Havana Dreams"}},
		{cuisine: "thai", names: []string{}},
	}
	for _, tt := range tests {
		restaurants, err := svc.Restaurants(ctx, "Miami", tt.cuisine)
		require.NoError(t, err, tt.cuisine)
		got := make([]string, 0, len(restaurants))
		for _, r := range restaurants {
			got = append(got, r.Name)
		}
		assert.Equal(t, tt.names, got, "cuisine %q", tt.cuisine)
	}
}

func TestRestaurantsValidation(t *testing.T) {
	svc := newTestGuide()

	_, err := svc.Restaurants(context.Background(), "", "")
	assert.Equal(t, "invalid_input", apperrors.CodeOf(err))

	_, err = svc.Restaurants(context.Background(), "atlantis", "")
	assert.Equal(t, "not_found", apperrors.CodeOf(err))
}

func TestTransportLookup(t *testing.T) {
	svc := newTestGuide()

	entry, err := svc.Transport(context.Background(), "miami", "car")
	require.NoError(t, err)
	assert.Equal(t, "$3/hour", entry.Parking["beachParking"])

	_, err = svc.Transport(context.Background(), "miami", "boat")
	assert.Equal(t, "invalid_input", apperrors.CodeOf(err))

	_, err = svc.Transport(context.Background(), "miami", "public")
	assert.Equal(t, "not_found", apperrors.CodeOf(err))
}

func TestSentimentLookup(t *testing.T) {
	svc := newTestGuide()

	summary, err := svc.Sentiment(context.Background(), "miami")
	require.NoError(t, err)
	assert.Equal(t, 15743, summary.TotalReviews)

	_, err = svc.Sentiment(context.Background(), "atlantis")
	assert.Equal(t, "not_found", apperrors.CodeOf(err))
}

func TestSafetyHistoryDefaultsToNewestYear(t *testing.T) {
	svc := newTestGuide()

	records, years, err := svc.SafetyHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, years)
	require.Len(t, records, 1)
	assert.Equal(t, 12, records[0].Incidents)

	records, _, err = svc.SafetyHistory(context.Background(), 2023)
	require.NoError(t, err)
	assert.Equal(t, "High Risk", records[0].Rating)

	_, _, err = svc.SafetyHistory(context.Background(), 1999)
	assert.Equal(t, "not_found", apperrors.CodeOf(err))
}

func TestPlanMissReturnsPlaceholder(t *testing.T) {
	svc := newTestGuide()

	plan, err := svc.Plan(context.Background(), "miami", "1day")
	require.NoError(t, err)
	require.True(t, plan.Found)
	assert.Equal(t, "Miami Beach - 1 Day Adventure", plan.Itinerary.Title)

	plan, err = svc.Plan(context.Background(), "miami", "week")
	require.NoError(t, err)
	assert.False(t, plan.Found)
	assert.Equal(t, "Custom Plan Coming Soon!", plan.Title)
	assert.Equal(t, "We're working on more customized plans for this combination.", plan.Message)
}
