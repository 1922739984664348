package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dailyweather/models"
	"dailyweather/timeutil"
)

func TestSunTimesFor(t *testing.T) {
	assert := assert.New(t)

	sunrise := time.Date(2026, 8, 31, 5, 42, 0, 0, time.UTC)
	sunset := time.Date(2026, 8, 31, 17, 53, 0, 0, time.UTC)
	snapshot := models.WeatherSnapshot{Sunrise: sunrise.Unix(), Sunset: sunset.Unix()}

	times := SunTimesFor(snapshot, time.UTC)
	assert.Equal("05.42", times.Sunrise)
	assert.Equal("17.53", times.Sunset)
}

func TestSunTimesRoundTrip(t *testing.T) {
	assert := assert.New(t)

	sunrise := time.Date(2026, 8, 31, 5, 42, 0, 0, time.UTC)
	snapshot := models.WeatherSnapshot{Sunrise: sunrise.Unix()}

	times := SunTimesFor(snapshot, time.UTC)
	hour, minute, err := timeutil.ParseDotClock(times.Sunrise)
	assert.NoError(err)
	assert.Equal(5, hour)
	assert.Equal(42, minute)
}

func TestApproxMoonPhaseBoundaries(t *testing.T) {
	tests := []struct {
		day  int
		want MoonPhase
	}{
		{6, MoonNew},             // daysSince 0
		{7, MoonWaxingCrescent},  // 1
		{12, MoonWaxingCrescent}, // 6
		{13, MoonFirstQuarter},   // 7
		{14, MoonWaxingGibbous},  // 8
		{19, MoonWaxingGibbous},  // 13
		{20, MoonFull},           // 14
		{21, MoonWaningGibbous},  // 15
		{27, MoonWaningGibbous},  // 21
		{28, MoonLastQuarter},    // 22
		{29, MoonWaningCrescent}, // 23
		{31, MoonWaningCrescent}, // 25
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ApproxMoonPhase(tt.day), "day %d", tt.day)
	}
}

func TestApproxMoonPhaseEarlyMonth(t *testing.T) {
	// Days before the reference produce a negative remainder, which the
	// first band swallows as a new moon.
	for day := 1; day <= 5; day++ {
		assert.Equal(t, MoonNew, ApproxMoonPhase(day), "day %d", day)
	}
}

func TestApproxMoonriseAndMoonset(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// Longitude 110 east shifts both labels by 110/15 = 7 hours.
	assert.Equal("13.00", ApproxMoonrise(now, 110)) // +18+7 = +25h
	assert.Equal("01.00", ApproxMoonset(now, 110))  // +6+7 = +13h

	// At the prime meridian the raw offsets apply.
	assert.Equal("06.00", ApproxMoonrise(now, 0))
	assert.Equal("18.00", ApproxMoonset(now, 0))
}

func TestMoonInfoFor(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 19, 12, 0, 0, 0, time.UTC)
	info := MoonInfoFor(models.WeatherSnapshot{Lon: 0}, now)

	assert.Equal(MoonWaxingGibbous, info.Phase)
	assert.Equal("06.00", info.Moonrise)
	assert.Equal("18.00", info.Moonset)
}
