// Package stats computes descriptive statistics and linear trends over weather series.
package stats

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katiamach/weather-dashboard-api/internal/model"
)

// Trend thresholds on the fitted slope, in degrees per sample.
const (
	risingThreshold  = 0.1
	fallingThreshold = -0.1
)

// ErrNoSamples is returned when a series is empty.
var ErrNoSamples = errors.New("no samples to summarize")

// Mean returns the arithmetic mean of samples.
func Mean(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	return stats.Mean(samples)
}

// Min returns the smallest sample.
func Min(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	return stats.Min(samples)
}

// Max returns the largest sample.
func Max(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	return stats.Max(samples)
}

// StdDev returns the sample standard deviation (n-1 denominator).
// A single sample has no spread and yields 0.
func StdDev(samples []float64) (float64, error) {
	switch len(samples) {
	case 0:
		return 0, ErrNoSamples
	case 1:
		return 0, nil
	}
	return stats.StandardDeviationSample(samples)
}

// Slope fits samples against their indices 0..n-1 by ordinary least squares
// and returns the slope of the fitted line.
func Slope(samples []float64) (float64, error) {
	switch len(samples) {
	case 0:
		return 0, ErrNoSamples
	case 1:
		return 0, nil
	}

	xs := make([]float64, len(samples))
	for i := range xs {
		xs[i] = float64(i)
	}

	cov, err := stats.CovariancePopulation(xs, samples)
	if err != nil {
		return 0, fmt.Errorf("failed to compute covariance: %w", err)
	}
	variance, err := stats.PopulationVariance(xs)
	if err != nil {
		return 0, fmt.Errorf("failed to compute variance: %w", err)
	}

	return cov / variance, nil
}

// ClassifyTrend maps a slope to its trend label.
func ClassifyTrend(slope float64) string {
	switch {
	case slope > risingThreshold:
		return model.TrendRising
	case slope < fallingThreshold:
		return model.TrendFalling
	default:
		return model.TrendStable
	}
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) (float64, error) {
	return stats.Round(x, places)
}

// Forecast summarizes forecast entries.
func Forecast(entries []model.ForecastEntry) (model.ForecastStatistics, error) {
	if len(entries) == 0 {
		return model.ForecastStatistics{}, ErrNoSamples
	}

	temps := make([]float64, 0, len(entries))
	humidity := make([]float64, 0, len(entries))
	for _, e := range entries {
		temps = append(temps, e.Temperature)
		humidity = append(humidity, float64(e.Humidity))
	}

	s, err := describe(temps, humidity)
	if err != nil {
		return model.ForecastStatistics{}, err
	}

	return model.ForecastStatistics{
		AvgTemperature: s.avgTemp,
		MaxTemperature: s.maxTemp,
		MinTemperature: s.minTemp,
		AvgHumidity:    s.avgHumidity,
		TotalRecords:   len(entries),
	}, nil
}

// Historical summarizes a historical series, including its temperature trend.
func Historical(records []model.HistoricalRecord) (model.HistoricalStatistics, error) {
	if len(records) == 0 {
		return model.HistoricalStatistics{}, ErrNoSamples
	}

	temps := make([]float64, 0, len(records))
	humidity := make([]float64, 0, len(records))
	for _, r := range records {
		temps = append(temps, r.Temperature)
		humidity = append(humidity, r.Humidity)
	}

	s, err := describe(temps, humidity)
	if err != nil {
		return model.HistoricalStatistics{}, err
	}

	std, err := StdDev(temps)
	if err != nil {
		return model.HistoricalStatistics{}, fmt.Errorf("failed to compute temperature std: %w", err)
	}
	if std, err = Round(std, 2); err != nil {
		return model.HistoricalStatistics{}, err
	}

	slope, err := Slope(temps)
	if err != nil {
		return model.HistoricalStatistics{}, fmt.Errorf("failed to fit trend: %w", err)
	}
	roundedSlope, err := Round(slope, 3)
	if err != nil {
		return model.HistoricalStatistics{}, err
	}

	return model.HistoricalStatistics{
		AvgTemperature: s.avgTemp,
		MaxTemperature: s.maxTemp,
		MinTemperature: s.minTemp,
		AvgHumidity:    s.avgHumidity,
		TemperatureStd: std,
		Trend:          ClassifyTrend(slope),
		TrendSlope:     roundedSlope,
	}, nil
}

type summary struct {
	avgTemp, maxTemp, minTemp, avgHumidity float64
}

// describe computes the shared temperature/humidity figures rounded to 2 decimals.
func describe(temps, humidity []float64) (summary, error) {
	var s summary

	steps := []struct {
		name string
		fn   func([]float64) (float64, error)
		in   []float64
		out  *float64
	}{
		{"mean temperature", Mean, temps, &s.avgTemp},
		{"max temperature", Max, temps, &s.maxTemp},
		{"min temperature", Min, temps, &s.minTemp},
		{"mean humidity", Mean, humidity, &s.avgHumidity},
	}

	for _, step := range steps {
		v, err := step.fn(step.in)
		if err != nil {
			return summary{}, fmt.Errorf("failed to compute %s: %w", step.name, err)
		}
		if *step.out, err = Round(v, 2); err != nil {
			return summary{}, fmt.Errorf("failed to round %s: %w", step.name, err)
		}
	}

	return s, nil
}
