package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/provider"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// CityVar is the route variable holding the requested city.
const CityVar = "city"

var errNoCity = errors.New("city not provided in path")

// WeatherService provides weather service methods.
type WeatherService interface {
	GetCurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error)
	GetForecast(ctx context.Context, city string) (*model.ForecastResponse, error)
	GetHistoricalData(ctx context.Context, city string) (*model.HistoricalResponse, error)
}

// WeatherServer is a server for weather requests.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

// GetCurrentWeatherHandler handles GetCurrentWeather request.
func (s *WeatherServer) GetCurrentWeatherHandler(w http.ResponseWriter, r *http.Request) {
	city, ok := cityFromPath(w, r)
	if !ok {
		return
	}

	current, err := s.service.GetCurrentWeather(r.Context(), city)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, current)
}

// GetForecastHandler handles GetForecast request.
func (s *WeatherServer) GetForecastHandler(w http.ResponseWriter, r *http.Request) {
	city, ok := cityFromPath(w, r)
	if !ok {
		return
	}

	forecast, err := s.service.GetForecast(r.Context(), city)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, forecast)
}

// GetHistoricalDataHandler handles GetHistoricalData request.
func (s *WeatherServer) GetHistoricalDataHandler(w http.ResponseWriter, r *http.Request) {
	city, ok := cityFromPath(w, r)
	if !ok {
		return
	}

	history, err := s.service.GetHistoricalData(r.Context(), city)
	if err != nil {
		respondServiceErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, history)
}

func cityFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	city := mux.Vars(r)[CityVar]
	if city == "" {
		respondErr(w, http.StatusBadRequest, errNoCity)
		return "", false
	}

	return city, true
}

// respondServiceErr answers 400 with the provider's own message for
// provider-reported failures and 500 for anything else.
func respondServiceErr(w http.ResponseWriter, r *http.Request, err error) {
	if pe, ok := provider.IsProviderError(err); ok {
		logger.FromContext(r.Context()).WithFields(logger.Fields{
			"path":            r.URL.Path,
			"provider_status": pe.StatusCode,
		}).Warn(pe.Message)
		respondErr(w, http.StatusBadRequest, pe)
		return
	}

	logger.FromContext(r.Context()).WithField("path", r.URL.Path).Error(err)
	respondErr(w, http.StatusInternalServerError, err)
}
