package places

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	apperrors "github.com/coastally/coastally-api/pkg/errors"
)

// Service exposes place search capabilities.
type Service interface {
	Autocomplete(ctx context.Context, query string, limit int) ([]Place, error)
	Search(ctx context.Context, query SearchQuery) ([]Place, error)
	Regions() []RegionOption
}

// ProviderClient wraps the places/geocoding provider. Each call is
// independent; the client holds no session state.
type ProviderClient interface {
	Autocomplete(ctx context.Context, text string, limit int) ([]Feature, error)
	Search(ctx context.Context, categories, filter string, limit int) ([]Feature, error)
}

// Provider category taxonomy per searchable kind.
var categoryTaxonomy = map[string]string{
	"beach":      "beach,beach.beach_resort,leisure.beach_resort,tourism.beach",
	"restaurant": "catering.restaurant,catering.cafe",
	"hotel":      "accommodation.hotel,accommodation.resort",
	"attraction": "tourism.attraction,tourism.sights",
	"shopping":   "commercial.shopping_mall,commercial.marketplace",
}

type region struct {
	name string
	bbox string
}

// Bounding boxes for the coastal regions the curated content covers.
var coastalRegions = map[string]region{
	"goa":         {name: "Goa", bbox: "73.6813,15.1960,73.8370,15.6989"},
	"kerala":      {name: "Kerala", bbox: "74.8520,8.2972,77.4021,12.7842"},
	"mumbai":      {name: "Mumbai & Maharashtra Coast", bbox: "72.7760,18.8900,72.9965,19.2728"},
	"tamil_nadu":  {name: "Tamil Nadu Coast", bbox: "77.0824,8.0681,80.3430,13.4324"},
	"karnataka":   {name: "Karnataka Coast", bbox: "74.0855,12.2958,75.1240,15.3173"},
	"odisha":      {name: "Odisha Coast", bbox: "84.3291,17.7804,87.5395,22.5670"},
	"west_bengal": {name: "West Bengal Coast", bbox: "87.7465,21.4551,89.0423,22.9868"},
	"gujarat":     {name: "Gujarat Coast", bbox: "68.1623,20.0631,74.4700,24.7047"},
}

const countryFilter = "countrycode:in"

// Coordinates closer than this (in degrees) count as the same place.
const dedupeTolerance = 0.001

type service struct {
	cfg    Config
	client ProviderClient
	logger *slog.Logger
}

// NewService wires up the places domain.
func NewService(cfg Config, client ProviderClient, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "places.service"),
	}
}

// Autocomplete suggests places for partial input. Inputs of three characters
// or fewer are answered from the curated list without touching the provider.
func (s *service) Autocomplete(ctx context.Context, query string, limit int) ([]Place, error) {
	trimmed := strings.TrimSpace(query)
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if len(trimmed) <= 2 {
		return capPlaces(CuratedBeaches(), limit), nil
	}

	features, err := s.client.Autocomplete(ctx, trimmed, limit)
	if err != nil {
		s.logger.Warn("autocomplete fell back to curated list", "query", trimmed, "error", err)
		return capPlaces(filterCurated(trimmed), limit), nil
	}

	return capPlaces(s.toPlaces(features), limit), nil
}

func (s *service) Search(ctx context.Context, query SearchQuery) ([]Place, error) {
	categories := s.resolveCategories(query.Category)
	filter := s.resolveFilter(query)
	limit := query.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	features, err := s.client.Search(ctx, categories, filter, limit)
	if err != nil {
		if isBeachCategory(query.Category) {
			s.logger.Warn("place search fell back to curated beaches", "filter", filter, "error", err)
			return capPlaces(CuratedBeaches(), limit), nil
		}
		return nil, apperrors.Wrap("upstream_unavailable", "place search failed", err)
	}

	return capPlaces(dedupe(s.toPlaces(features)), limit), nil
}

// Regions lists the selectable coastal regions, stable order.
func (s *service) Regions() []RegionOption {
	options := make([]RegionOption, 0, len(coastalRegions))
	for key, r := range coastalRegions {
		options = append(options, RegionOption{Value: key, Label: r.name})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	return options
}

func (s *service) resolveCategories(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		key = "beach"
	}
	if mapped, ok := categoryTaxonomy[key]; ok {
		return mapped
	}
	return category
}

func (s *service) resolveFilter(query SearchQuery) string {
	if query.PlaceID != "" {
		return "place:" + query.PlaceID
	}
	if query.Coordinates != nil {
		radius := query.RadiusMeters
		if radius <= 0 {
			radius = s.cfg.DefaultRadius
		}
		return fmt.Sprintf("circle:%f,%f,%d", query.Coordinates.Lon, query.Coordinates.Lat, radius)
	}
	if r, ok := coastalRegions[strings.ToLower(strings.TrimSpace(query.Region))]; ok {
		return "rect:" + r.bbox
	}
	return countryFilter
}

func (s *service) toPlaces(features []Feature) []Place {
	out := make([]Place, 0, len(features))
	for _, f := range features {
		out = append(out, enrich(f))
	}
	return out
}

// dedupe keeps the first of any two places sharing a name with coordinates
// within the tolerance on both axes.
func dedupe(items []Place) []Place {
	out := make([]Place, 0, len(items))
	for _, candidate := range items {
		duplicate := false
		for _, kept := range out {
			if kept.Name == candidate.Name &&
				math.Abs(kept.Coordinates.Lon-candidate.Coordinates.Lon) < dedupeTolerance &&
				math.Abs(kept.Coordinates.Lat-candidate.Coordinates.Lat) < dedupeTolerance {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, candidate)
		}
	}
	return out
}

func isBeachCategory(category string) bool {
	key := strings.ToLower(strings.TrimSpace(category))
	return key == "" || key == "beach"
}

func filterCurated(query string) []Place {
	needle := strings.ToLower(query)
	matched := make([]Place, 0)
	for _, p := range CuratedBeaches() {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Address), needle) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return CuratedBeaches()
	}
	return matched
}

func capPlaces(items []Place, limit int) []Place {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
