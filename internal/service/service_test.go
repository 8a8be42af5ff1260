package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/katiamach/weather-dashboard-api/internal/demo"
	"github.com/katiamach/weather-dashboard-api/internal/historical"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/provider"
	mock "github.com/katiamach/weather-dashboard-api/internal/service/mock"
)

var errTest = errors.New("test error")

func fixedClock() time.Time {
	return time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
}

func newService(t *testing.T, demoMode bool) (*WeatherService, *mock.MockProvider) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockProvider(ctrl)

	ws := New(p, demo.NewWithSeed(1, fixedClock), historical.NewWithSeed(1, fixedClock), demoMode)
	return ws, p
}

func TestGetCurrentWeather(t *testing.T) {
	ctx := context.Background()
	current := &model.CurrentWeather{City: "Oslo", Country: "NO", Temperature: 4.2}

	cases := []struct {
		name          string
		demoMode      bool
		providerRes   *model.CurrentWeather
		providerErr   error
		isMockCalled  bool
		expectedCity  string
		expectedError error
	}{
		{name: "demo mode", demoMode: true, expectedCity: "Oslo"},
		{name: "provider ok", providerRes: current, isMockCalled: true, expectedCity: "Oslo"},
		{name: "provider error", providerErr: &provider.Error{StatusCode: 404, Message: "city not found"}, isMockCalled: true},
		{name: "internal error", providerErr: errTest, isMockCalled: true, expectedError: errTest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ws, p := newService(t, tc.demoMode)

			if tc.isMockCalled {
				p.EXPECT().CurrentWeather(ctx, "Oslo").Return(tc.providerRes, tc.providerErr)
			}

			got, err := ws.GetCurrentWeather(ctx, "Oslo")
			if tc.providerErr != nil {
				assert.NotNil(t, err)
				assert.True(t, errors.Is(err, tc.providerErr))
				return
			}

			assert.Nil(t, err)
			assert.Equal(t, tc.expectedCity, got.City)
			if tc.demoMode {
				assert.Equal(t, "Demo", got.Country)
				assert.Equal(t, "2024-05-20 08:00:00", got.Timestamp)
			}
		})
	}
}

func TestGetCurrentWeatherKeepsProviderError(t *testing.T) {
	ws, p := newService(t, false)
	p.EXPECT().CurrentWeather(gomock.Any(), "Atlantis").
		Return(nil, &provider.Error{StatusCode: 404, Message: "city not found"})

	_, err := ws.GetCurrentWeather(context.Background(), "Atlantis")

	pe, ok := provider.IsProviderError(err)
	assert.True(t, ok)
	assert.Equal(t, "city not found", pe.Message)
}

func TestGetForecastDemo(t *testing.T) {
	ws, _ := newService(t, true)

	got, err := ws.GetForecast(context.Background(), "Lisboa")
	assert.Nil(t, err)
	assert.Equal(t, 20, len(got.Forecasts))
	assert.Equal(t, model.ForecastStatistics{
		AvgTemperature: 20.5,
		MaxTemperature: 25.3,
		MinTemperature: 15.7,
		AvgHumidity:    65.2,
		TotalRecords:   20,
	}, got.Statistics)
}

func TestGetForecastProvider(t *testing.T) {
	ctx := context.Background()
	ws, p := newService(t, false)

	p.EXPECT().Forecast(ctx, "Lisboa").Return(&model.ForecastResponse{
		City:    "Lisboa",
		Country: "PT",
		Forecasts: []model.ForecastEntry{
			{Temperature: 15, Humidity: 70},
			{Temperature: 18.5, Humidity: 65},
			{Temperature: 21.25, Humidity: 60},
		},
	}, nil)

	got, err := ws.GetForecast(ctx, "Lisboa")
	assert.Nil(t, err)
	assert.Equal(t, model.ForecastStatistics{
		AvgTemperature: 18.25,
		MaxTemperature: 21.25,
		MinTemperature: 15,
		AvgHumidity:    65,
		TotalRecords:   3,
	}, got.Statistics)
	assert.Equal(t, len(got.Forecasts), got.Statistics.TotalRecords)
}

func TestGetForecastProviderFailure(t *testing.T) {
	ws, p := newService(t, false)
	p.EXPECT().Forecast(gomock.Any(), gomock.Any()).Return(nil, errTest)

	_, err := ws.GetForecast(context.Background(), "X")
	assert.True(t, errors.Is(err, errTest))
}

func TestGetHistoricalData(t *testing.T) {
	for _, demoMode := range []bool{true, false} {
		ws, _ := newService(t, demoMode)

		got, err := ws.GetHistoricalData(context.Background(), "Cusco")
		assert.Nil(t, err)
		assert.Equal(t, "Cusco", got.City)
		assert.Equal(t, historical.Days, len(got.HistoricalData))
		assert.Equal(t, "2024-05-19", got.HistoricalData[historical.Days-1].Date)
		assert.Contains(t, []string{model.TrendRising, model.TrendFalling, model.TrendStable}, got.Statistics.Trend)
	}
}

func TestGetHistoricalDataEmptySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	sim := mock.NewMockHistorySimulator(ctrl)
	sim.EXPECT().Simulate().Return(nil)

	ws := New(nil, nil, sim, true)

	_, err := ws.GetHistoricalData(context.Background(), "X")
	assert.NotNil(t, err)
}
