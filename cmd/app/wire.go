//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/coastally/coastally-api/internal/bootstrap"
	"github.com/coastally/coastally-api/internal/domain/auth"
	"github.com/coastally/coastally-api/internal/domain/guide"
	"github.com/coastally/coastally-api/internal/domain/places"
	"github.com/coastally/coastally-api/internal/domain/weather"
	"github.com/coastally/coastally-api/internal/infra/config"
	"github.com/coastally/coastally-api/internal/infra/places/geoapify"
	"github.com/coastally/coastally-api/internal/infra/weather/openmeteo"
	httpiface "github.com/coastally/coastally-api/internal/interface/http"
	"github.com/coastally/coastally-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideMetricsRegistry,
		provideWeatherConfig,
		providePlacesConfig,
		provideWeatherClient,
		provideForecastCache,
		provideLocalStore,
		provideSessionStore,
		provideKeyStore,
		providePlacesClient,
		provideGuideRepository,
		provideRefresher,
		weather.NewService,
		places.NewService,
		auth.NewService,
		guide.NewService,
		wire.Bind(new(weather.ForecastClient), new(*openmeteo.Client)),
		wire.Bind(new(places.ProviderClient), new(*geoapify.Client)),
		httpiface.NewHandler,
		httpiface.NewPlacesHandler,
		httpiface.NewAuthHandler,
		httpiface.NewGuideHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
