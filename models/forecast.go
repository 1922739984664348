package models

import (
	"time"
)

// ForecastEntry is a single 3-hour-resolution prediction point. Entries
// arrive sorted by timestamp ascending and must be kept in arrival order.
type ForecastEntry struct {
	Timestamp     time.Time `json:"timestamp"`     // parsed from the epoch field
	TimeText      string    `json:"timeText"`      // provider "yyyy-MM-dd HH:mm:ss" string
	Temperature   float64   `json:"temperature"`   // Celsius
	Humidity      int       `json:"humidity"`      // percent
	Description   string    `json:"description"`   // condition description, may be empty
	Icon          string    `json:"icon"`          // icon code, may be empty
	Precipitation float64   `json:"precipitation"` // probability 0.0-1.0, absent -> 0
	RainVolume    float64   `json:"rainVolume"`    // mm over the last 3 hours, absent -> 0
}

// ForecastData is an ordered forecast as fetched from the provider.
type ForecastData struct {
	City    string          `json:"city"`
	Country string          `json:"country"`
	Entries []ForecastEntry `json:"entries"`
	Fetched time.Time       `json:"fetched"`
}

// DailySummary is one day's aggregate of forecast entries: truncated
// min/max temperature, truncated mean humidity and the icon of the day's
// first entry.
type DailySummary struct {
	Date     string `json:"date"` // local calendar date, "yyyy-MM-dd"
	Icon     string `json:"icon"`
	MinTemp  int    `json:"minTemp"`
	MaxTemp  int    `json:"maxTemp"`
	Humidity int    `json:"humidity"`
}

// DisplayMaxTemp returns the forecast-wide maximum for the high/low strip,
// or current+2 when no forecast is available.
func DisplayMaxTemp(snapshot WeatherSnapshot, forecast *ForecastData) int {
	if forecast == nil || len(forecast.Entries) == 0 {
		return int(snapshot.Temperature) + 2
	}
	max := forecast.Entries[0].Temperature
	for _, e := range forecast.Entries[1:] {
		if e.Temperature > max {
			max = e.Temperature
		}
	}
	return int(max)
}

// DisplayMinTemp is the counterpart of DisplayMaxTemp (current-2 fallback).
func DisplayMinTemp(snapshot WeatherSnapshot, forecast *ForecastData) int {
	if forecast == nil || len(forecast.Entries) == 0 {
		return int(snapshot.Temperature) - 2
	}
	min := forecast.Entries[0].Temperature
	for _, e := range forecast.Entries[1:] {
		if e.Temperature < min {
			min = e.Temperature
		}
	}
	return int(min)
}
