package metrics

import (
	"time"

	"dailyweather/models"
	"dailyweather/timeutil"
)

// SunTimes carries the provider's sunrise and sunset converted to local
// "HH.mm" labels. Unlike the moon values this is a passthrough, not an
// approximation.
type SunTimes struct {
	Sunrise string
	Sunset  string
}

// SunTimesFor formats the snapshot's sunrise/sunset epochs in loc.
func SunTimesFor(snapshot models.WeatherSnapshot, loc *time.Location) SunTimes {
	return SunTimes{
		Sunrise: timeutil.DotClockLabel(time.Unix(snapshot.Sunrise, 0).In(loc)),
		Sunset:  timeutil.DotClockLabel(time.Unix(snapshot.Sunset, 0).In(loc)),
	}
}

// MoonPhase is one of the eight named phases.
type MoonPhase string

const (
	MoonNew            MoonPhase = "new"
	MoonWaxingCrescent MoonPhase = "waxing-crescent"
	MoonFirstQuarter   MoonPhase = "first-quarter"
	MoonWaxingGibbous  MoonPhase = "waxing-gibbous"
	MoonFull           MoonPhase = "full"
	MoonWaningGibbous  MoonPhase = "waning-gibbous"
	MoonLastQuarter    MoonPhase = "last-quarter"
	MoonWaningCrescent MoonPhase = "waning-crescent"
)

// MoonInfo carries the synthetic moonrise/moonset labels and phase.
type MoonInfo struct {
	Moonrise string
	Moonset  string
	Phase    MoonPhase
}

// MoonInfoFor derives the moon card values for a snapshot at the given
// local time. All three values come from the named approximation
// functions below; swapping in a real ephemeris calculation later only
// touches those.
func MoonInfoFor(snapshot models.WeatherSnapshot, now time.Time) MoonInfo {
	return MoonInfo{
		Moonrise: ApproxMoonrise(now, snapshot.Lon),
		Moonset:  ApproxMoonset(now, snapshot.Lon),
		Phase:    ApproxMoonPhase(now.Day()),
	}
}

// ApproxMoonPhase maps a day of month to a phase by counting days from a
// fixed reference new-moon on day 6, modulo the synodic cycle truncated
// to whole days. It tracks no absolute epoch, so the result is only a
// current-month approximation and drifts across months. Not astronomy;
// do not "fix" the formula, its output is depended on.
func ApproxMoonPhase(dayOfMonth int) MoonPhase {
	synodicCycle := 29.53
	cycleDays := int(synodicCycle)
	daysSinceNewMoon := (dayOfMonth - 6) % cycleDays

	switch {
	case daysSinceNewMoon < 1:
		return MoonNew
	case daysSinceNewMoon < 7:
		return MoonWaxingCrescent
	case daysSinceNewMoon < 8:
		return MoonFirstQuarter
	case daysSinceNewMoon < 14:
		return MoonWaxingGibbous
	case daysSinceNewMoon < 15:
		return MoonFull
	case daysSinceNewMoon < 22:
		return MoonWaningGibbous
	case daysSinceNewMoon < 23:
		return MoonLastQuarter
	case daysSinceNewMoon < 29:
		return MoonWaningCrescent
	default:
		return MoonNew
	}
}

// ApproxMoonrise is the deterministic moonrise placeholder: now plus 18
// hours, shifted by the crude longitude/15 timezone offset.
func ApproxMoonrise(now time.Time, lon float64) string {
	return timeutil.DotClockLabel(now.Add(time.Duration(18+int(lon/15)) * time.Hour))
}

// ApproxMoonset is the counterpart placeholder with a 6 hour offset.
func ApproxMoonset(now time.Time, lon float64) string {
	return timeutil.DotClockLabel(now.Add(time.Duration(6+int(lon/15)) * time.Hour))
}
