package models

// IconCategory is one of the eight local asset categories a provider icon
// code maps to.
type IconCategory string

const (
	IconSun        IconCategory = "sun"
	IconMoonStars  IconCategory = "moon-stars"
	IconCloudyDay  IconCategory = "cloudy-day"
	IconCloudNight IconCategory = "cloud-night"
	IconRain       IconCategory = "rain"
	IconThunder    IconCategory = "thunder"
	IconSnow       IconCategory = "snow"
	IconFog        IconCategory = "fog"
)

// iconTable is the closed mapping from OpenWeatherMap icon codes to local
// asset categories. Codes outside the table fall back to the sun icon.
var iconTable = map[string]IconCategory{
	"01d": IconSun,
	"01n": IconMoonStars,
	"02d": IconCloudyDay,
	"03d": IconCloudyDay,
	"04d": IconCloudyDay,
	"02n": IconCloudNight,
	"03n": IconCloudNight,
	"04n": IconCloudNight,
	"09d": IconRain,
	"09n": IconRain,
	"10d": IconRain,
	"10n": IconRain,
	"11d": IconThunder,
	"11n": IconThunder,
	"13d": IconSnow,
	"13n": IconSnow,
	"50d": IconFog,
	"50n": IconFog,
}

// MapIcon resolves a provider icon code to its local asset category.
func MapIcon(code string) IconCategory {
	if cat, ok := iconTable[code]; ok {
		return cat
	}
	return IconSun
}
