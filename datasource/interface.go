package datasource

import (
	"context"

	"dailyweather/models"
)

// Query identifies a place either by free-text city name or by coordinates.
// ByCoords selects which: when set, the coordinates are used and the city
// name is ignored.
type Query struct {
	City     string
	Lat, Lon float64
	ByCoords bool
}

// CityQuery builds a query for a free-text city search.
func CityQuery(city string) Query {
	return Query{City: city}
}

// CoordQuery builds a query for a device-location fetch.
func CoordQuery(lat, lon float64) Query {
	return Query{Lat: lat, Lon: lon, ByCoords: true}
}

// WeatherProvider fetches current conditions for a location.
type WeatherProvider interface {
	// GetWeather fetches the current-conditions snapshot for a query.
	GetWeather(ctx context.Context, q Query) (models.WeatherSnapshot, error)

	// Name returns the provider's name.
	Name() string
}

// ForecastSource fetches the 5-day/3-hour forecast for a location.
type ForecastSource interface {
	// FetchForecast fetches the ordered forecast list for a query.
	FetchForecast(ctx context.Context, q Query) (models.ForecastData, error)

	// Name returns the source's name.
	Name() string
}
