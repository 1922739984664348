package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessHumidityBands(t *testing.T) {
	tests := []struct {
		humidity int
		band     HumidityBand
		color    Color
		key      string
	}{
		{0, HumidityVeryDry, ColorOrange, "humidity-air-very-dry"},
		{30, HumidityVeryDry, ColorOrange, "humidity-air-very-dry"},
		{31, HumidityComfortable, ColorGreen, "humidity-comfortable-level"},
		{50, HumidityComfortable, ColorGreen, "humidity-comfortable-level"},
		{51, HumidityModerate, ColorAmber, "humidity-fairly-comfortable"},
		{70, HumidityModerate, ColorAmber, "humidity-fairly-comfortable"},
		{71, HumidityHigh, ColorPaleBlue, "humidity-air-humid"},
		{85, HumidityHigh, ColorPaleBlue, "humidity-air-humid"},
		{86, HumidityVeryHigh, ColorRed, "humidity-air-very-humid"},
		{100, HumidityVeryHigh, ColorRed, "humidity-air-very-humid"},
	}

	for _, tt := range tests {
		a := AssessHumidity(tt.humidity)
		assert.Equal(t, tt.band, a.Band, "humidity %d", tt.humidity)
		assert.Equal(t, tt.color, a.Color, "humidity %d", tt.humidity)
		assert.Equal(t, tt.key, a.DescriptionKey, "humidity %d", tt.humidity)
	}
}

func TestAssessHumidityClamps(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, AssessHumidity(-10).Percent)
	assert.Equal(100, AssessHumidity(140).Percent)
}

func TestAssessHumidityTrendIsAlwaysHigher(t *testing.T) {
	// The baseline is synthetic (current minus five), so the delta is a
	// constant +5 and every reading reports the upward trend.
	for _, humidity := range []int{0, 30, 55, 85, 100} {
		assert.Equal(t, TrendHigher, AssessHumidity(humidity).Trend, "humidity %d", humidity)
	}
}

func TestSyntheticBaseline(t *testing.T) {
	assert.Equal(t, 55, SyntheticBaseline(60))
	assert.Equal(t, -5, SyntheticBaseline(0))
}
