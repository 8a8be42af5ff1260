// Package demo synthesizes weather payloads for running without a provider credential.
package demo

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/katiamach/weather-dashboard-api/internal/model"
)

const (
	country = "Demo"

	currentDescription  = "soleado"
	currentIcon         = "01d"
	forecastDescription = "parcialmente nublado"
	forecastIcon        = "02d"

	forecastHorizonHours = 40
	forecastStepHours    = 2
)

// forecastStatistics is returned verbatim for every demo forecast.
var forecastStatistics = model.ForecastStatistics{
	AvgTemperature: 20.5,
	MaxTemperature: 25.3,
	MinTemperature: 15.7,
	AvgHumidity:    65.2,
	TotalRecords:   20,
}

// Generator produces demo weather. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// New creates a Generator seeded from the current time.
func New() *Generator {
	return NewWithSeed(uint64(time.Now().UnixNano()), time.Now)
}

// NewWithSeed creates a deterministic Generator using the given clock.
func NewWithSeed(seed uint64, now func() time.Time) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

// Current returns synthetic current conditions for city.
func (g *Generator) Current(city string) *model.CurrentWeather {
	g.mu.Lock()
	defer g.mu.Unlock()

	return &model.CurrentWeather{
		City:        city,
		Country:     country,
		Temperature: round1(g.uniform(15, 30)),
		FeelsLike:   round1(g.uniform(14, 29)),
		Humidity:    g.humidity(),
		Pressure:    g.pressure(),
		WindSpeed:   g.windSpeed(),
		Description: currentDescription,
		Icon:        currentIcon,
		Timestamp:   g.now().Format(model.TimestampLayout),
	}
}

// Forecast returns a synthetic forecast every two hours over the next 38 hours.
// Its statistics are fixed values and are not derived from the entries.
func (g *Generator) Forecast(city string) *model.ForecastResponse {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	entries := make([]model.ForecastEntry, 0, forecastHorizonHours/forecastStepHours)
	for i := 0; i < forecastHorizonHours; i += forecastStepHours {
		wave := 5 * math.Sin(float64(i)/10)
		entries = append(entries, model.ForecastEntry{
			Datetime:    now.Add(time.Duration(i) * time.Hour).Format(model.TimestampLayout),
			Temperature: round1(20 + wave),
			FeelsLike:   round1(19 + wave),
			Humidity:    g.humidity(),
			Pressure:    g.pressure(),
			WindSpeed:   g.windSpeed(),
			Description: forecastDescription,
			Icon:        forecastIcon,
		})
	}

	return &model.ForecastResponse{
		City:       city,
		Country:    country,
		Forecasts:  entries,
		Statistics: forecastStatistics,
	}
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rnd.Float64()
}

// humidity draws an integer percentage in [40, 90).
func (g *Generator) humidity() int {
	return 40 + g.rnd.IntN(50)
}

// pressure draws an integer in [1000, 1030) hPa.
func (g *Generator) pressure() int {
	return 1000 + g.rnd.IntN(30)
}

func (g *Generator) windSpeed() float64 {
	return round1(g.uniform(1, 10))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
