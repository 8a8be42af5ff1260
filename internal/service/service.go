package service

import (
	"context"
	"fmt"

	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/stats"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Provider

// Provider fetches real weather for a city.
type Provider interface {
	CurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error)
	Forecast(ctx context.Context, city string) (*model.ForecastResponse, error)
}

// DemoGenerator synthesizes weather when no provider credential is configured.
type DemoGenerator interface {
	Current(city string) *model.CurrentWeather
	Forecast(city string) *model.ForecastResponse
}

// HistorySimulator synthesizes a historical series.
type HistorySimulator interface {
	Simulate() []model.HistoricalRecord
}

// WeatherService provides weather service functionality.
type WeatherService struct {
	provider  Provider
	demo      DemoGenerator
	simulator HistorySimulator
	demoMode  bool
}

// New creates new WeatherService. In demo mode the provider is never called.
func New(provider Provider, demo DemoGenerator, simulator HistorySimulator, demoMode bool) *WeatherService {
	return &WeatherService{
		provider:  provider,
		demo:      demo,
		simulator: simulator,
		demoMode:  demoMode,
	}
}

// GetCurrentWeather returns current conditions for city.
func (ws *WeatherService) GetCurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error) {
	if ws.demoMode {
		return ws.demo.Current(city), nil
	}

	current, err := ws.provider.CurrentWeather(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	return current, nil
}

// GetForecast returns the forecast for city together with its statistics.
func (ws *WeatherService) GetForecast(ctx context.Context, city string) (*model.ForecastResponse, error) {
	if ws.demoMode {
		return ws.demo.Forecast(city), nil
	}

	forecast, err := ws.provider.Forecast(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	forecast.Statistics, err = stats.Forecast(forecast.Forecasts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute forecast statistics: %w", err)
	}

	return forecast, nil
}

// GetHistoricalData returns a simulated 30 day history for city with its statistics.
func (ws *WeatherService) GetHistoricalData(ctx context.Context, city string) (*model.HistoricalResponse, error) {
	records := ws.simulator.Simulate()

	statistics, err := stats.Historical(records)
	if err != nil {
		return nil, fmt.Errorf("failed to compute historical statistics: %w", err)
	}

	logger.FromContext(ctx).WithFields(logger.Fields{
		"city":  city,
		"trend": statistics.Trend,
		"slope": statistics.TrendSlope,
	}).Debug("historical data simulated")

	return &model.HistoricalResponse{
		City:           city,
		HistoricalData: records,
		Statistics:     statistics,
	}, nil
}
