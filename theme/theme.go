// Package theme maps the local clock and the user's display preferences
// to a fixed color palette. Theme selection is a pure function of its
// inputs; the watcher in ticker.go re-evaluates it on the hour.
package theme

import "time"

// Mode names the selected palette.
type Mode string

const (
	ModeMorning       Mode = "morning"
	ModeDaytime       Mode = "daytime"
	ModeEvening       Mode = "evening"
	ModeNight         Mode = "night"
	ModeAccessibility Mode = "accessibility"
)

// Preferences are the user-controlled theme switches. Accessibility
// overrides dark, which overrides the hour-of-day bands.
type Preferences struct {
	DarkMode      bool
	Accessibility bool
}

// Theme is a resolved palette: background and secondary gradients plus
// card and text colors, all as hex strings.
type Theme struct {
	Mode               Mode
	GradientStart      string
	GradientEnd        string
	SecondaryStart     string
	SecondaryEnd       string
	CardColor          string
	TextColor          string
	SecondaryTextColor string
}

var palettes = map[Mode]Theme{
	ModeMorning: {
		Mode:               ModeMorning,
		GradientStart:      "#87CEEB",
		GradientEnd:        "#FFF8E1",
		SecondaryStart:     "#64B5F6",
		SecondaryEnd:       "#BBDEFB",
		CardColor:          "#99FFFFFF",
		TextColor:          "#1A237E",
		SecondaryTextColor: "#3949AB",
	},
	ModeDaytime: {
		Mode:               ModeDaytime,
		GradientStart:      "#4FC3F7",
		GradientEnd:        "#FAFAFA",
		SecondaryStart:     "#29B6F6",
		SecondaryEnd:       "#E3F2FD",
		CardColor:          "#CCFFFFFF",
		TextColor:          "#0D47A1",
		SecondaryTextColor: "#1976D2",
	},
	ModeEvening: {
		Mode:               ModeEvening,
		GradientStart:      "#1976D2",
		GradientEnd:        "#0D47A1",
		SecondaryStart:     "#1565C0",
		SecondaryEnd:       "#0D47A1",
		CardColor:          "#4DFFFFFF",
		TextColor:          "#E3F2FD",
		SecondaryTextColor: "#BBDEFB",
	},
	ModeNight: {
		Mode:               ModeNight,
		GradientStart:      "#0D1B2A",
		GradientEnd:        "#1B263B",
		SecondaryStart:     "#1B263B",
		SecondaryEnd:       "#415A77",
		CardColor:          "#4DFFFFFF",
		TextColor:          "#E0E1DD",
		SecondaryTextColor: "#BBDEFB",
	},
	ModeAccessibility: {
		Mode:               ModeAccessibility,
		GradientStart:      "#000000",
		GradientEnd:        "#1A1A1A",
		SecondaryStart:     "#1A1A1A",
		SecondaryEnd:       "#2D2D2D",
		CardColor:          "#4DFFFFFF",
		TextColor:          "#FFFFFF",
		SecondaryTextColor: "#CCCCCC",
	},
}

// For resolves the theme for the given instant and preferences.
// Accessibility wins over dark mode; otherwise the local hour picks
// morning (05-09), daytime (10-16) or evening.
func For(now time.Time, prefs Preferences) Theme {
	return palettes[ModeFor(now, prefs)]
}

// ModeFor is the selection half of For, exposed for the watcher.
func ModeFor(now time.Time, prefs Preferences) Mode {
	if prefs.Accessibility {
		return ModeAccessibility
	}
	if prefs.DarkMode {
		return ModeNight
	}
	switch hour := now.Hour(); {
	case hour >= 5 && hour <= 9:
		return ModeMorning
	case hour >= 10 && hour <= 16:
		return ModeDaytime
	default:
		return ModeEvening
	}
}
