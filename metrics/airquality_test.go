package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dailyweather/models"
)

func TestEstimateAirQualityAllBonuses(t *testing.T) {
	assert := assert.New(t)

	est := EstimateAirQuality(models.WeatherSnapshot{
		WindSpeed: 4.0,
		Pressure:  1015,
		Humidity:  50,
	})

	assert.Equal(100, est.Index)
	assert.Equal(AirHealthy, est.Band)
	assert.Equal(ColorGreen, est.Color)
	assert.Equal("air-quality-good", est.DescriptionKey)
}

func TestEstimateAirQualityBaseScore(t *testing.T) {
	assert := assert.New(t)

	// Calm air, off-normal pressure, soggy humidity: no bonuses apply.
	est := EstimateAirQuality(models.WeatherSnapshot{
		WindSpeed: 0.5,
		Pressure:  990,
		Humidity:  90,
	})

	assert.Equal(50, est.Index)
	assert.Equal(AirUnhealthySensitive, est.Band)
	assert.Equal("air-quality-unhealthy-sensitive", est.DescriptionKey)
}

func TestEstimateAirQualityBands(t *testing.T) {
	tests := []struct {
		name     string
		snapshot models.WeatherSnapshot
		index    int
		band     AirBand
	}{
		{
			name:     "wind and pressure",
			snapshot: models.WeatherSnapshot{WindSpeed: 3, Pressure: 1012, Humidity: 90},
			index:    85,
			band:     AirHealthy,
		},
		{
			name:     "wind only",
			snapshot: models.WeatherSnapshot{WindSpeed: 3, Pressure: 990, Humidity: 90},
			index:    70,
			band:     AirModerate,
		},
		{
			name:     "humidity only",
			snapshot: models.WeatherSnapshot{WindSpeed: 12, Pressure: 990, Humidity: 55},
			index:    65,
			band:     AirModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := EstimateAirQuality(tt.snapshot)
			assert.Equal(t, tt.index, est.Index)
			assert.Equal(t, tt.band, est.Band)
		})
	}
}

func TestEstimateAirQualityBoundaryValues(t *testing.T) {
	assert := assert.New(t)

	// The wind bonus is inclusive on both ends.
	assert.Equal(70, EstimateAirQuality(models.WeatherSnapshot{WindSpeed: 2.0, Pressure: 990, Humidity: 90}).Index)
	assert.Equal(70, EstimateAirQuality(models.WeatherSnapshot{WindSpeed: 6.0, Pressure: 990, Humidity: 90}).Index)
	assert.Equal(50, EstimateAirQuality(models.WeatherSnapshot{WindSpeed: 6.1, Pressure: 990, Humidity: 90}).Index)
}
