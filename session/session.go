// Package session drives the fetch flow: one user action triggers one
// current-conditions request, and on success a chained forecast request.
// The latest result of each is kept in a tri-state holder for the
// display layer to read.
package session

import (
	"context"
	"strings"

	"dailyweather/datasource"
	"dailyweather/logging"
	"dailyweather/models"
	"dailyweather/store"
)

// Session owns the two result holders and remembers the last query so a
// refresh can repeat it.
type Session struct {
	weather  datasource.WeatherProvider
	forecast datasource.ForecastSource

	Current   *store.Latest[models.WeatherSnapshot]
	Forecast  *store.Latest[models.ForecastData]
	lastQuery datasource.Query
	hasQuery  bool
}

// New creates a session over a provider pair. Both holders start idle.
func New(weather datasource.WeatherProvider, forecast datasource.ForecastSource) *Session {
	return &Session{
		weather:  weather,
		forecast: forecast,
		Current:  store.NewLatest[models.WeatherSnapshot](),
		Forecast: store.NewLatest[models.ForecastData](),
	}
}

// Search fetches weather for a free-text city name. A blank name is
// rejected before any request goes out.
func (s *Session) Search(ctx context.Context, city string) error {
	if strings.TrimSpace(city) == "" {
		err := &datasource.ValidationError{Message: "Please enter a city name"}
		s.Current.SetError(err)
		return err
	}
	return s.run(ctx, datasource.CityQuery(strings.TrimSpace(city)))
}

// Locate fetches weather for device coordinates.
func (s *Session) Locate(ctx context.Context, lat, lon float64) error {
	return s.run(ctx, datasource.CoordQuery(lat, lon))
}

// Refresh repeats the last query. Without one it falls back to searching
// the given default city.
func (s *Session) Refresh(ctx context.Context, defaultCity string) error {
	if !s.hasQuery {
		return s.Search(ctx, defaultCity)
	}
	return s.run(ctx, s.lastQuery)
}

// run performs the current-conditions fetch and, on success, the chained
// forecast fetch. Each new run overwrites both holders with the loading
// state first.
func (s *Session) run(ctx context.Context, q datasource.Query) error {
	s.lastQuery = q
	s.hasQuery = true

	s.Current.SetLoading()
	s.Forecast.SetLoading()

	snapshot, err := s.weather.GetWeather(ctx, q)
	if err != nil {
		logging.Errorw("weather fetch failed", "city", q.City, "error", err)
		s.Current.SetError(err)
		s.Forecast.SetError(err)
		return err
	}
	s.Current.SetValue(snapshot)
	logging.Infow("weather fetched", "location", snapshot.Location(), "temp", snapshot.Temperature)

	// Chain the forecast off the resolved coordinates so both views
	// describe the same place even for ambiguous city names.
	forecast, err := s.forecast.FetchForecast(ctx, datasource.CoordQuery(snapshot.Lat, snapshot.Lon))
	if err != nil {
		logging.Errorw("forecast fetch failed", "location", snapshot.Location(), "error", err)
		s.Forecast.SetError(err)
		return err
	}
	s.Forecast.SetValue(forecast)
	logging.Infow("forecast fetched", "location", snapshot.Location(), "entries", len(forecast.Entries))

	return nil
}
