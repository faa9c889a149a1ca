package guide

import "context"

// Repository serves the curated travel-guide datasets.
type Repository interface {
	Destinations(ctx context.Context) ([]Destination, error)
	Hotels(ctx context.Context, location string) ([]Hotel, error)
	Restaurants(ctx context.Context, location string) ([]Restaurant, error)
	Transport(ctx context.Context, location, mode string) (TransportGuide, bool, error)
	Sentiment(ctx context.Context, location string) (SentimentSummary, bool, error)
	SafetyHistory(ctx context.Context, year int) ([]SafetyRecord, error)
	SafetyYears(ctx context.Context) ([]int, error)
	Itinerary(ctx context.Context, location, duration string) (Itinerary, bool, error)
}
