package demo

import (
	"math"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/weather-dashboard-api/internal/model"
)

var fixedNow = time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestCurrentRanges(t *testing.T) {
	g := NewWithSeed(7, clock)

	for i := 0; i < 500; i++ {
		w := g.Current("Sevilla")

		assert.Equal(t, "Sevilla", w.City)
		assert.Equal(t, "Demo", w.Country)
		assert.True(t, w.Temperature >= 15 && w.Temperature <= 30, "temperature %v", w.Temperature)
		assert.True(t, w.FeelsLike >= 14 && w.FeelsLike <= 29, "feels_like %v", w.FeelsLike)
		assert.True(t, w.Humidity >= 40 && w.Humidity <= 90, "humidity %v", w.Humidity)
		assert.True(t, w.Pressure >= 1000 && w.Pressure <= 1030, "pressure %v", w.Pressure)
		assert.True(t, w.WindSpeed >= 1 && w.WindSpeed <= 10, "wind_speed %v", w.WindSpeed)
		assert.Equal(t, w.Temperature, math.Round(w.Temperature*10)/10)
		assert.Equal(t, "soleado", w.Description)
		assert.Equal(t, "01d", w.Icon)
		assert.Equal(t, "2024-03-10 12:30:00", w.Timestamp)
	}
}

func TestForecast(t *testing.T) {
	g := NewWithSeed(11, clock)

	for _, city := range []string{"Lima", "Bogotá", ""} {
		f := g.Forecast(city)

		assert.Equal(t, city, f.City)
		assert.Equal(t, "Demo", f.Country)
		assert.Equal(t, 20, len(f.Forecasts))
		assert.Equal(t, model.ForecastStatistics{
			AvgTemperature: 20.5,
			MaxTemperature: 25.3,
			MinTemperature: 15.7,
			AvgHumidity:    65.2,
			TotalRecords:   20,
		}, f.Statistics)

		first := f.Forecasts[0]
		assert.Equal(t, "2024-03-10 12:30:00", first.Datetime)
		assert.Equal(t, 20.0, first.Temperature)
		assert.Equal(t, 19.0, first.FeelsLike)
		assert.Equal(t, "parcialmente nublado", first.Description)
		assert.Equal(t, "02d", first.Icon)

		// i = 10 hours: 20 + 5*sin(1)
		assert.Equal(t, "2024-03-10 22:30:00", f.Forecasts[5].Datetime)
		assert.Equal(t, 24.2, f.Forecasts[5].Temperature)

		last := f.Forecasts[19]
		assert.Equal(t, "2024-03-12 02:30:00", last.Datetime)

		for _, e := range f.Forecasts {
			assert.True(t, e.Humidity >= 40 && e.Humidity <= 90)
			assert.True(t, e.Pressure >= 1000 && e.Pressure <= 1030)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := NewWithSeed(3, clock).Current("Quito")
	b := NewWithSeed(3, clock).Current("Quito")
	assert.Equal(t, a, b)
}
