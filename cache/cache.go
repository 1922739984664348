// Package cache wraps a provider pair with a TTL cache keyed by query.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dailyweather/datasource"
	"dailyweather/logging"
	"dailyweather/models"
)

// CachedProvider wraps a WeatherProvider and ForecastSource and serves
// repeat queries from memory until the entry expires.
type CachedProvider struct {
	weather  datasource.WeatherProvider
	forecast datasource.ForecastSource

	mutex         sync.RWMutex
	weatherCache  map[string]weatherEntry
	forecastCache map[string]forecastEntry
	cacheDuration time.Duration

	cacheHitCount  int
	cacheMissCount int
}

type weatherEntry struct {
	Data      models.WeatherSnapshot
	Timestamp time.Time
}

type forecastEntry struct {
	Data      models.ForecastData
	Timestamp time.Time
}

// NewCachedProvider creates a new cached wrapper around a provider pair.
func NewCachedProvider(weather datasource.WeatherProvider, forecast datasource.ForecastSource, cacheDuration time.Duration) *CachedProvider {
	return &CachedProvider{
		weather:       weather,
		forecast:      forecast,
		weatherCache:  make(map[string]weatherEntry),
		forecastCache: make(map[string]forecastEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying provider with a [Cached] suffix.
func (c *CachedProvider) Name() string {
	return c.weather.Name() + " [Cached]"
}

// cacheKey distinguishes city and coordinate queries in the same map.
func cacheKey(q datasource.Query) string {
	if q.ByCoords {
		return fmt.Sprintf("coords:%.4f,%.4f", q.Lat, q.Lon)
	}
	return "city:" + q.City
}

// GetWeather serves current conditions, using the cache when fresh.
func (c *CachedProvider) GetWeather(ctx context.Context, q datasource.Query) (models.WeatherSnapshot, error) {
	key := cacheKey(q)

	c.mutex.RLock()
	entry, found := c.weatherCache[key]
	c.mutex.RUnlock()

	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		c.recordHit()
		logging.Debugw("weather cache hit", "key", key, "age", time.Since(entry.Timestamp).Round(time.Second))
		return entry.Data, nil
	}

	c.recordMiss()
	logging.Debugw("weather cache miss", "key", key)

	data, err := c.weather.GetWeather(ctx, q)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}

	c.mutex.Lock()
	c.weatherCache[key] = weatherEntry{Data: data, Timestamp: time.Now()}
	c.mutex.Unlock()

	return data, nil
}

// FetchForecast serves the forecast list, using the cache when fresh.
func (c *CachedProvider) FetchForecast(ctx context.Context, q datasource.Query) (models.ForecastData, error) {
	key := cacheKey(q)

	c.mutex.RLock()
	entry, found := c.forecastCache[key]
	c.mutex.RUnlock()

	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		c.recordHit()
		logging.Debugw("forecast cache hit", "key", key, "age", time.Since(entry.Timestamp).Round(time.Second))
		return entry.Data, nil
	}

	c.recordMiss()
	logging.Debugw("forecast cache miss", "key", key)

	data, err := c.forecast.FetchForecast(ctx, q)
	if err != nil {
		return models.ForecastData{}, err
	}

	c.mutex.Lock()
	c.forecastCache[key] = forecastEntry{Data: data, Timestamp: time.Now()}
	c.mutex.Unlock()

	return data, nil
}

func (c *CachedProvider) recordHit() {
	c.mutex.Lock()
	c.cacheHitCount++
	c.mutex.Unlock()
}

func (c *CachedProvider) recordMiss() {
	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()
}

// CacheStats returns statistics about cache hits and misses.
func (c *CachedProvider) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

var _ datasource.WeatherProvider = (*CachedProvider)(nil)
var _ datasource.ForecastSource = (*CachedProvider)(nil)
