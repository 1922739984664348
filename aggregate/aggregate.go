// Package aggregate slices the raw forecast list into the windows the
// display layer renders: the hourly strip, the precipitation timeline and
// the per-day summary rows. All functions are pure over their inputs.
package aggregate

import (
	"time"

	"dailyweather/models"
	"dailyweather/timeutil"
)

const (
	hourlyWindow = 24 * time.Hour
	hourlyLimit  = 8

	precipWindow = 24 * time.Hour
	precipLimit  = 6

	maxDailySummaries = 7
)

// UpcomingWindow returns the entries at or after now and, when horizon is
// non-zero, no later than now+horizon. Arrival order is preserved and the
// result is truncated to limit entries (limit <= 0 means unlimited).
func UpcomingWindow(entries []models.ForecastEntry, now time.Time, horizon time.Duration, limit int) []models.ForecastEntry {
	var out []models.ForecastEntry
	cutoff := now.Add(horizon)
	for _, e := range entries {
		if e.Timestamp.Before(now) {
			continue
		}
		if horizon != 0 && e.Timestamp.After(cutoff) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// HourlyStrip is the next-24-hours view, capped at 8 entries.
func HourlyStrip(entries []models.ForecastEntry, now time.Time) []models.ForecastEntry {
	return UpcomingWindow(entries, now, hourlyWindow, hourlyLimit)
}

// PrecipPoint is one bar of the precipitation timeline: a short time
// label and the precipitation probability as a whole percentage.
type PrecipPoint struct {
	Label   string
	Percent int
}

// PrecipTimeline maps the next-24-hours window (at most 6 entries) to
// labeled probability percentages. An entry within an hour of now is
// labeled with the "now" token.
func PrecipTimeline(entries []models.ForecastEntry, now time.Time) []PrecipPoint {
	window := UpcomingWindow(entries, now, precipWindow, precipLimit)
	points := make([]PrecipPoint, 0, len(window))
	for _, e := range window {
		pct := int(e.Precipitation * 100)
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		points = append(points, PrecipPoint{
			Label:   timeutil.ShortLabel(e.Timestamp, now),
			Percent: pct,
		})
	}
	return points
}

// GroupByDay folds the forecast entries into per-day summaries in
// first-encounter order, capped at 7 days. Each summary carries the
// truncated min/max temperature, the truncated mean humidity and the
// icon of the day's first entry (defaulting to clear-day when empty).
func GroupByDay(entries []models.ForecastEntry) []models.DailySummary {
	type bucket struct {
		minTemp, maxTemp float64
		humiditySum      int
		count            int
		icon             string
	}

	var order []string
	buckets := make(map[string]*bucket)

	for _, e := range entries {
		key := timeutil.DayKey(e.Timestamp)
		b, ok := buckets[key]
		if !ok {
			icon := e.Icon
			if icon == "" {
				icon = "01d"
			}
			b = &bucket{minTemp: e.Temperature, maxTemp: e.Temperature, icon: icon}
			buckets[key] = b
			order = append(order, key)
		}
		if e.Temperature < b.minTemp {
			b.minTemp = e.Temperature
		}
		if e.Temperature > b.maxTemp {
			b.maxTemp = e.Temperature
		}
		b.humiditySum += e.Humidity
		b.count++
	}

	if len(order) > maxDailySummaries {
		order = order[:maxDailySummaries]
	}

	summaries := make([]models.DailySummary, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		summaries = append(summaries, models.DailySummary{
			Date:     key,
			Icon:     b.icon,
			MinTemp:  int(b.minTemp),
			MaxTemp:  int(b.maxTemp),
			Humidity: b.humiditySum / b.count,
		})
	}
	return summaries
}
