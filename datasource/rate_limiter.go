package datasource

import (
	"context"
	"fmt"

	"dailyweather/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a provider that serves both current conditions
// and forecasts, holding each call until its limiter grants a token.
type RateLimitedProvider struct {
	provider        WeatherProvider
	forecastSrc     ForecastSource
	weatherLimiter  *rate.Limiter
	forecastLimiter *rate.Limiter
	name            string
}

// NewRateLimitedProvider wraps provider with per-endpoint rate limiting.
// weatherRPS and forecastRPS are the maximum requests per second for the
// two endpoints; burst is the shared burst size.
func NewRateLimitedProvider[P interface {
	WeatherProvider
	ForecastSource
}](provider P, weatherRPS, forecastRPS float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider:        provider,
		forecastSrc:     provider,
		weatherLimiter:  rate.NewLimiter(rate.Limit(weatherRPS), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(forecastRPS), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather fetches current conditions, respecting the rate limit.
func (r *RateLimitedProvider) GetWeather(ctx context.Context, q Query) (models.WeatherSnapshot, error) {
	if err := r.weatherLimiter.Wait(ctx); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetWeather(ctx, q)
}

// FetchForecast fetches the forecast, respecting the rate limit.
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, q Query) (models.ForecastData, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return models.ForecastData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.forecastSrc.FetchForecast(ctx, q)
}

// Name returns the provider name.
func (r *RateLimitedProvider) Name() string {
	return r.name
}

var (
	_ WeatherProvider = (*RateLimitedProvider)(nil)
	_ ForecastSource  = (*RateLimitedProvider)(nil)
)
