// Package provider fetches weather from OpenWeatherMap and maps it into the API model.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/katiamach/weather-dashboard-api/internal/model"
)

// maxBodySize bounds how much of a provider response is decoded.
const maxBodySize = 1 << 20

// OpenWeatherMap resources.
const (
	currentResource  = "weather"
	forecastResource = "forecast"
)

// Request outcomes reported to the Observer.
const (
	OutcomeSuccess       = "success"
	OutcomeProviderError = "provider_error"
	OutcomeFailure       = "failure"
)

// Observer is notified of every outbound provider request.
type Observer interface {
	ObserveProviderRequest(resource, outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveProviderRequest(string, string) {}

// OpenWeather is an OpenWeatherMap client. It never retries or caches.
type OpenWeather struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	now      func() time.Time
	observer Observer
}

// Option configures an OpenWeather client.
type Option func(*OpenWeather)

// WithClock overrides the clock used to stamp current conditions.
func WithClock(now func() time.Time) Option {
	return func(o *OpenWeather) { o.now = now }
}

// WithObserver registers an Observer for outbound requests.
func WithObserver(obs Observer) Option {
	return func(o *OpenWeather) { o.observer = obs }
}

// NewOpenWeather creates new OpenWeather client.
func NewOpenWeather(client *http.Client, baseURL, apiKey string, opts ...Option) *OpenWeather {
	o := &OpenWeather{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		now:      time.Now,
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type conditions struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

type currentPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main    mainBlock    `json:"main"`
	Wind    windBlock    `json:"wind"`
	Weather []conditions `json:"weather"`
}

type forecastPayload struct {
	List []struct {
		DtTxt   string       `json:"dt_txt"`
		Main    mainBlock    `json:"main"`
		Wind    windBlock    `json:"wind"`
		Weather []conditions `json:"weather"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

// CurrentWeather retrieves current conditions for city.
func (o *OpenWeather) CurrentWeather(ctx context.Context, city string) (*model.CurrentWeather, error) {
	var payload currentPayload
	if err := o.get(ctx, currentResource, city, &payload); err != nil {
		return nil, err
	}

	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: no weather conditions", ErrMalformedPayload)
	}

	return &model.CurrentWeather{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
		Timestamp:   o.now().Format(model.TimestampLayout),
	}, nil
}

// Forecast retrieves the 5 day / 3 hour forecast for city. Statistics are left empty.
func (o *OpenWeather) Forecast(ctx context.Context, city string) (*model.ForecastResponse, error) {
	var payload forecastPayload
	if err := o.get(ctx, forecastResource, city, &payload); err != nil {
		return nil, err
	}

	if len(payload.List) == 0 {
		return nil, ErrEmptyForecast
	}

	forecasts := make([]model.ForecastEntry, 0, len(payload.List))
	for i, item := range payload.List {
		if len(item.Weather) == 0 {
			return nil, fmt.Errorf("%w: no weather conditions in forecast entry %d", ErrMalformedPayload, i)
		}

		forecasts = append(forecasts, model.ForecastEntry{
			Datetime:    item.DtTxt,
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    item.Main.Humidity,
			Pressure:    item.Main.Pressure,
			WindSpeed:   item.Wind.Speed,
			Description: item.Weather[0].Description,
			Icon:        item.Weather[0].Icon,
		})
	}

	return &model.ForecastResponse{
		City:      payload.City.Name,
		Country:   payload.City.Country,
		Forecasts: forecasts,
	}, nil
}

// get issues a single metric-units request for city and decodes a successful body into out.
func (o *OpenWeather) get(ctx context.Context, resource, city string, out interface{}) error {
	outcome := OutcomeFailure
	defer func() { o.observer.ObserveProviderRequest(resource, outcome) }()

	params := url.Values{}
	params.Set("q", norm.NFC.String(city))
	params.Set("appid", o.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s?%s", o.baseURL, resource, params.Encode()), nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", resource, err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		// url.Error carries the request URL and with it the api key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("failed to get %s data from provider: %w", resource, err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxBodySize)

	if resp.StatusCode != http.StatusOK {
		var payload errorPayload
		if err := json.NewDecoder(body).Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode provider error response (status %d): %w", resp.StatusCode, err)
		}

		outcome = OutcomeProviderError
		return payload.toError(resp.StatusCode)
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}

	outcome = OutcomeSuccess
	return nil
}
