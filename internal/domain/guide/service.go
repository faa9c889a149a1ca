package guide

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/coastally/coastally-api/pkg/errors"
)

// Transport modes the catalog covers.
var transportModes = map[string]struct{}{
	"car":    {},
	"public": {},
	"ride":   {},
}

const planMissMessage = "We're working on more customized plans for this combination."

// Service answers guide queries from the curated catalog.
type Service interface {
	Destinations(ctx context.Context) ([]Destination, error)
	Hotels(ctx context.Context, location, priceBand string) ([]Hotel, error)
	Restaurants(ctx context.Context, location, cuisine string) ([]Restaurant, error)
	Transport(ctx context.Context, location, mode string) (TransportGuide, error)
	Sentiment(ctx context.Context, location string) (SentimentSummary, error)
	SafetyHistory(ctx context.Context, year int) ([]SafetyRecord, []int, error)
	Plan(ctx context.Context, location, duration string) (PlanResult, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the guide domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "guide.service"),
	}
}

func (s *service) Destinations(ctx context.Context) ([]Destination, error) {
	return s.repo.Destinations(ctx)
}

// Hotels filters the destination's hotel list by price band: budget below
// 150, mid 150-249, luxury 250 and up. An empty band returns everything.
func (s *service) Hotels(ctx context.Context, location, priceBand string) ([]Hotel, error) {
	location = normalizeKey(location)
	if location == "" {
		return nil, apperrors.Wrap("invalid_input", "location is required", nil)
	}
	band := normalizeKey(priceBand)
	if band != "" && band != BandBudget && band != BandMid && band != BandLuxury {
		return nil, apperrors.Wrap("invalid_input", "unknown price range", nil)
	}

	hotels, err := s.repo.Hotels(ctx, location)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, apperrors.Wrap("not_found", "no hotels for this location", nil)
	}
	if band == "" {
		return hotels, nil
	}

	filtered := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		if matchesBand(h.Price, band) {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

// Restaurants filters the destination's dining list by cuisine. An empty
// cuisine returns everything; an unmatched cuisine returns an empty list, the
// same as the hotel band filter.
func (s *service) Restaurants(ctx context.Context, location, cuisine string) ([]Restaurant, error) {
	location = normalizeKey(location)
	if location == "" {
		return nil, apperrors.Wrap("invalid_input", "location is required", nil)
	}
	cuisine = normalizeKey(cuisine)

	restaurants, err := s.repo.Restaurants(ctx, location)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, apperrors.Wrap("not_found", "no restaurants for this location", nil)
	}
	if cuisine == "" {
		return restaurants, nil
	}

	filtered := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if normalizeKey(r.Cuisine) == cuisine {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *service) Transport(ctx context.Context, location, mode string) (TransportGuide, error) {
	location = normalizeKey(location)
	mode = normalizeKey(mode)
	if location == "" || mode == "" {
		return TransportGuide{}, apperrors.Wrap("invalid_input", "location and mode are required", nil)
	}
	if _, ok := transportModes[mode]; !ok {
		return TransportGuide{}, apperrors.Wrap("invalid_input", "unknown transport mode", nil)
	}

	guide, ok, err := s.repo.Transport(ctx, location, mode)
	if err != nil {
		return TransportGuide{}, err
	}
	if !ok {
		return TransportGuide{}, apperrors.Wrap("not_found", "no transport guide for this combination", nil)
	}
	return guide, nil
}

func (s *service) Sentiment(ctx context.Context, location string) (SentimentSummary, error) {
	location = normalizeKey(location)
	if location == "" {
		return SentimentSummary{}, apperrors.Wrap("invalid_input", "location is required", nil)
	}

	summary, ok, err := s.repo.Sentiment(ctx, location)
	if err != nil {
		return SentimentSummary{}, err
	}
	if !ok {
		return SentimentSummary{}, apperrors.Wrap("not_found", "no sentiment data for this location", nil)
	}
	return summary, nil
}

// SafetyHistory returns the records for the requested year plus the list of
// years the catalog covers. Year zero means the most recent covered year.
func (s *service) SafetyHistory(ctx context.Context, year int) ([]SafetyRecord, []int, error) {
	years, err := s.repo.SafetyYears(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(years) == 0 {
		return nil, nil, apperrors.Wrap("not_found", "no safety history available", nil)
	}
	if year == 0 {
		year = years[0]
	}

	records, err := s.repo.SafetyHistory(ctx, year)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, apperrors.Wrap("not_found", "no safety history for this year", nil)
	}
	return records, years, nil
}

// Plan looks up a curated itinerary. A missing combination is answered with a
// placeholder, not an error.
func (s *service) Plan(ctx context.Context, location, duration string) (PlanResult, error) {
	location = normalizeKey(location)
	duration = normalizeKey(duration)
	if location == "" || duration == "" {
		return PlanResult{}, apperrors.Wrap("invalid_input", "location and duration are required", nil)
	}

	itinerary, ok, err := s.repo.Itinerary(ctx, location, duration)
	if err != nil {
		return PlanResult{}, err
	}
	if !ok {
		return PlanResult{
			Title:   "Custom Plan Coming Soon!",
			Message: planMissMessage,
		}, nil
	}
	return PlanResult{Found: true, Itinerary: &itinerary}, nil
}

func matchesBand(price int, band string) bool {
	switch band {
	case BandBudget:
		return price < midBandFloor
	case BandMid:
		return price >= midBandFloor && price < luxuryBandFloor
	case BandLuxury:
		return price >= luxuryBandFloor
	default:
		return true
	}
}

func normalizeKey(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
