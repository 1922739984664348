package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Klaten, ID", WeatherSnapshot{City: "Klaten", Country: "ID"}.Location())
	assert.Equal("Klaten", WeatherSnapshot{City: "Klaten"}.Location())
}

func TestMapIcon(t *testing.T) {
	tests := []struct {
		code string
		want IconCategory
	}{
		{"01d", IconSun},
		{"01n", IconMoonStars},
		{"02d", IconCloudyDay},
		{"04d", IconCloudyDay},
		{"03n", IconCloudNight},
		{"09d", IconRain},
		{"10n", IconRain},
		{"11d", IconThunder},
		{"13n", IconSnow},
		{"50d", IconFog},
		{"", IconSun},
		{"99x", IconSun},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapIcon(tt.code), "code %q", tt.code)
	}
}

func TestDisplayTempsFromForecast(t *testing.T) {
	assert := assert.New(t)

	snapshot := WeatherSnapshot{Temperature: 25.7}
	forecast := &ForecastData{Entries: []ForecastEntry{
		{Temperature: 22.9},
		{Temperature: 31.4},
		{Temperature: 18.6},
	}}

	assert.Equal(31, DisplayMaxTemp(snapshot, forecast))
	assert.Equal(18, DisplayMinTemp(snapshot, forecast))
}

func TestDisplayTempsFallback(t *testing.T) {
	assert := assert.New(t)

	snapshot := WeatherSnapshot{Temperature: 25.7}

	// Without forecast data the strip shows current plus/minus two.
	assert.Equal(27, DisplayMaxTemp(snapshot, nil))
	assert.Equal(23, DisplayMinTemp(snapshot, nil))
	assert.Equal(27, DisplayMaxTemp(snapshot, &ForecastData{}))
	assert.Equal(23, DisplayMinTemp(snapshot, &ForecastData{}))
}
