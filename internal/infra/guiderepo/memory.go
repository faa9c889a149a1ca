package guiderepo

import (
	"context"
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/coastally/coastally-api/internal/domain/guide"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

// catalog is the decoded shape of the embedded dataset.
type catalog struct {
	Destinations  []guide.Destination                        `yaml:"destinations"`
	Hotels        map[string][]guide.Hotel                   `yaml:"hotels"`
	Restaurants   map[string][]guide.Restaurant              `yaml:"restaurants"`
	Transport     map[string]map[string]guide.TransportGuide `yaml:"transport"`
	Sentiment     map[string]guide.SentimentSummary          `yaml:"sentiment"`
	SafetyHistory map[int][]guide.SafetyRecord               `yaml:"safetyHistory"`
	Itineraries   map[string]map[string]guide.Itinerary      `yaml:"itineraries"`
}

// MemoryRepository serves the guide catalog from the embedded dataset. It is
// the default backend and the fallback when Postgres is unavailable.
type MemoryRepository struct {
	data catalog
}

// NewMemoryRepository decodes the embedded catalog.
func NewMemoryRepository() (*MemoryRepository, error) {
	var data catalog
	if err := yaml.Unmarshal(catalogYAML, &data); err != nil {
		return nil, fmt.Errorf("decode embedded guide catalog: %w", err)
	}
	return &MemoryRepository{data: data}, nil
}

// Destinations implements guide.Repository.
func (r *MemoryRepository) Destinations(_ context.Context) ([]guide.Destination, error) {
	out := make([]guide.Destination, len(r.data.Destinations))
	copy(out, r.data.Destinations)
	return out, nil
}

func (r *MemoryRepository) Hotels(_ context.Context, location string) ([]guide.Hotel, error) {
	hotels := r.data.Hotels[location]
	out := make([]guide.Hotel, len(hotels))
	copy(out, hotels)
	return out, nil
}

func (r *MemoryRepository) Restaurants(_ context.Context, location string) ([]guide.Restaurant, error) {
	restaurants := r.data.Restaurants[location]
	out := make([]guide.Restaurant, len(restaurants))
	copy(out, restaurants)
	return out, nil
}

func (r *MemoryRepository) Transport(_ context.Context, location, mode string) (guide.TransportGuide, bool, error) {
	modes, ok := r.data.Transport[location]
	if !ok {
		return guide.TransportGuide{}, false, nil
	}
	entry, ok := modes[mode]
	return entry, ok, nil
}

func (r *MemoryRepository) Sentiment(_ context.Context, location string) (guide.SentimentSummary, bool, error) {
	summary, ok := r.data.Sentiment[location]
	return summary, ok, nil
}

func (r *MemoryRepository) SafetyHistory(_ context.Context, year int) ([]guide.SafetyRecord, error) {
	records := r.data.SafetyHistory[year]
	out := make([]guide.SafetyRecord, len(records))
	copy(out, records)
	return out, nil
}

// SafetyYears lists covered years, newest first.
func (r *MemoryRepository) SafetyYears(_ context.Context) ([]int, error) {
	years := make([]int, 0, len(r.data.SafetyHistory))
	for year := range r.data.SafetyHistory {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (r *MemoryRepository) Itinerary(_ context.Context, location, duration string) (guide.Itinerary, bool, error) {
	durations, ok := r.data.Itineraries[location]
	if !ok {
		return guide.Itinerary{}, false, nil
	}
	itinerary, ok := durations[duration]
	return itinerary, ok, nil
}

var _ guide.Repository = (*MemoryRepository)(nil)
