package guiderepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coastally/coastally-api/internal/domain/guide"
)

// PostgresRepository implements guide.Repository using pgx. Nested dataset
// shapes live in JSONB payload columns; only lookup keys get their own
// columns.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Destinations implements guide.Repository.
func (r *PostgresRepository) Destinations(ctx context.Context) ([]guide.Destination, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT key, name, latitude, longitude
		FROM guide_destinations
		ORDER BY key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []guide.Destination
	for rows.Next() {
		var d guide.Destination
		if err := rows.Scan(&d.Key, &d.Name, &d.Latitude, &d.Longitude); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Hotels(ctx context.Context, location string) ([]guide.Hotel, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payload
		FROM guide_hotels
		WHERE location = $1
		ORDER BY id
	`, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []guide.Hotel
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var hotel guide.Hotel
		if err := json.Unmarshal(payload, &hotel); err != nil {
			return nil, err
		}
		out = append(out, hotel)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Restaurants(ctx context.Context, location string) ([]guide.Restaurant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payload
		FROM guide_restaurants
		WHERE location = $1
		ORDER BY id
	`, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []guide.Restaurant
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var restaurant guide.Restaurant
		if err := json.Unmarshal(payload, &restaurant); err != nil {
			return nil, err
		}
		out = append(out, restaurant)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Transport(ctx context.Context, location, mode string) (guide.TransportGuide, bool, error) {
	var entry guide.TransportGuide
	ok, err := r.fetchPayload(ctx, &entry, `
		SELECT payload
		FROM guide_transport
		WHERE location = $1 AND mode = $2
		LIMIT 1
	`, location, mode)
	return entry, ok, err
}

func (r *PostgresRepository) Sentiment(ctx context.Context, location string) (guide.SentimentSummary, bool, error) {
	var summary guide.SentimentSummary
	ok, err := r.fetchPayload(ctx, &summary, `
		SELECT payload
		FROM guide_sentiment
		WHERE location = $1
		LIMIT 1
	`, location)
	return summary, ok, err
}

func (r *PostgresRepository) SafetyHistory(ctx context.Context, year int) ([]guide.SafetyRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payload
		FROM guide_safety_history
		WHERE year = $1
		ORDER BY id
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []guide.SafetyRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var record guide.SafetyRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// SafetyYears lists covered years, newest first.
func (r *PostgresRepository) SafetyYears(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT year
		FROM guide_safety_history
		ORDER BY year DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		out = append(out, year)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Itinerary(ctx context.Context, location, duration string) (guide.Itinerary, bool, error) {
	var itinerary guide.Itinerary
	ok, err := r.fetchPayload(ctx, &itinerary, `
		SELECT payload
		FROM guide_itineraries
		WHERE location = $1 AND duration = $2
		LIMIT 1
	`, location, duration)
	return itinerary, ok, err
}

func (r *PostgresRepository) fetchPayload(ctx context.Context, target any, query string, args ...any) (bool, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return false, rows.Err()
	}
	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return false, err
	}
	return true, rows.Err()
}

var _ guide.Repository = (*PostgresRepository)(nil)
