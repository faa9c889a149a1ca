package refresh

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/coastally/coastally-api/internal/domain/guide"
	"github.com/coastally/coastally-api/internal/domain/weather"
)

const defaultSchedule = "0 */6 * * *"

// Refresher warms the forecast cache for every curated destination on a cron
// schedule, so degraded mode has recent data to serve when the provider goes
// down.
type Refresher struct {
	weather  weather.Service
	catalog  guide.Repository
	schedule string
	logger   *slog.Logger
	cron     *cron.Cron
}

// New builds a refresher. An empty schedule falls back to every six hours.
func New(weatherSvc weather.Service, catalog guide.Repository, schedule string, logger *slog.Logger) *Refresher {
	if schedule == "" {
		schedule = defaultSchedule
	}
	return &Refresher{
		weather:  weatherSvc,
		catalog:  catalog,
		schedule: schedule,
		logger:   logger.With("component", "refresh"),
		// Prevent overlapping runs
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

// Start registers the cron entry, runs one immediate warm-up, and begins the
// schedule. It does not block.
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.schedule, func() {
		r.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	go r.RunOnce(ctx)
	r.cron.Start()
	r.logger.Info("forecast refresher started", "schedule", r.schedule)
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("forecast refresher stopped")
}

// RunOnce warms the cache for every destination. Failures are logged and
// skipped; one unreachable destination never blocks the rest.
func (r *Refresher) RunOnce(ctx context.Context) {
	destinations, err := r.catalog.Destinations(ctx)
	if err != nil {
		r.logger.Error("list destinations for refresh", "error", err)
		return
	}

	started := time.Now()
	warmed := 0
	for _, dest := range destinations {
		if ctx.Err() != nil {
			return
		}
		forecast, err := r.weather.Forecast(ctx, dest.Latitude, dest.Longitude)
		if err != nil {
			r.logger.Warn("refresh forecast", "destination", dest.Key, "error", err)
			continue
		}
		if forecast.Degraded {
			r.logger.Warn("refresh served degraded data", "destination", dest.Key, "source", forecast.Source)
			continue
		}
		warmed++
	}
	r.logger.Info("forecast refresh complete",
		"warmed", warmed,
		"destinations", len(destinations),
		"elapsed", time.Since(started).String())
}
