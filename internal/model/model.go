// Package model contains the request-scoped weather payloads returned by the API.
package model

// Layouts used for every textual timestamp in responses.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Trend classifications of a fitted temperature slope.
const (
	TrendRising  = "Ascendente"
	TrendFalling = "Descendente"
	TrendStable  = "Estable"
)

// CurrentWeather contains current conditions for a city.
type CurrentWeather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Timestamp   string  `json:"timestamp"`
}

// ForecastEntry is a single forecast point.
type ForecastEntry struct {
	Datetime    string  `json:"datetime"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// ForecastStatistics summarizes a forecast series.
type ForecastStatistics struct {
	AvgTemperature float64 `json:"avg_temperature"`
	MaxTemperature float64 `json:"max_temperature"`
	MinTemperature float64 `json:"min_temperature"`
	AvgHumidity    float64 `json:"avg_humidity"`
	TotalRecords   int     `json:"total_records"`
}

// ForecastResponse contains chronologically ordered forecasts and their statistics.
type ForecastResponse struct {
	City       string             `json:"city"`
	Country    string             `json:"country"`
	Forecasts  []ForecastEntry    `json:"forecasts"`
	Statistics ForecastStatistics `json:"statistics"`
}

// HistoricalRecord is one simulated day.
type HistoricalRecord struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// HistoricalStatistics summarizes a historical series, including its linear trend.
type HistoricalStatistics struct {
	AvgTemperature float64 `json:"avg_temperature"`
	MaxTemperature float64 `json:"max_temperature"`
	MinTemperature float64 `json:"min_temperature"`
	AvgHumidity    float64 `json:"avg_humidity"`
	TemperatureStd float64 `json:"temperature_std"`
	Trend          string  `json:"trend"`
	TrendSlope     float64 `json:"trend_slope"`
}

// HistoricalResponse contains records ordered from oldest to newest.
type HistoricalResponse struct {
	City           string               `json:"city"`
	HistoricalData []HistoricalRecord   `json:"historical_data"`
	Statistics     HistoricalStatistics `json:"statistics"`
}
