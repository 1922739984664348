package metrics

import "dailyweather/models"

// AirBand is the severity band of the air-quality proxy.
type AirBand string

const (
	AirHealthy            AirBand = "healthy"
	AirModerate           AirBand = "moderate"
	AirUnhealthySensitive AirBand = "unhealthy-for-sensitive"
	AirUnhealthy          AirBand = "unhealthy"
)

// AirQualityEstimate is a 0-100 proxy score computed from weather
// variables only. There is no air-quality sensor input; the score rewards
// moderate wind, normal pressure and mid-range humidity.
type AirQualityEstimate struct {
	Index          int
	Band           AirBand
	Color          Color
	DescriptionKey string
}

// EstimateAirQuality scores the snapshot: base 50, +20 for wind within
// [2, 6] m/s, +15 for pressure within [1010, 1020] hPa, +15 for humidity
// within [40, 60] percent, clamped to [0, 100].
func EstimateAirQuality(snapshot models.WeatherSnapshot) AirQualityEstimate {
	score := 50

	if snapshot.WindSpeed >= 2.0 && snapshot.WindSpeed <= 6.0 {
		score += 20
	}
	if snapshot.Pressure >= 1010 && snapshot.Pressure <= 1020 {
		score += 15
	}
	if snapshot.Humidity >= 40 && snapshot.Humidity <= 60 {
		score += 15
	}
	score = clampInt(score, 0, 100)

	est := AirQualityEstimate{Index: score}
	switch {
	case score >= 80:
		est.Band, est.Color, est.DescriptionKey = AirHealthy, ColorGreen, "air-quality-good"
	case score >= 60:
		est.Band, est.Color, est.DescriptionKey = AirModerate, ColorAmber, "air-quality-moderate"
	case score >= 40:
		est.Band, est.Color, est.DescriptionKey = AirUnhealthySensitive, ColorOrange, "air-quality-unhealthy-sensitive"
	default:
		est.Band, est.Color, est.DescriptionKey = AirUnhealthy, ColorRed, "air-quality-unhealthy"
	}
	return est
}
