package metrics

// HumidityBand is the comfort band of the humidity assessment.
type HumidityBand string

const (
	HumidityVeryDry     HumidityBand = "very-dry"
	HumidityComfortable HumidityBand = "comfortable"
	HumidityModerate    HumidityBand = "moderate"
	HumidityHigh        HumidityBand = "high"
	HumidityVeryHigh    HumidityBand = "very-high"
)

// HumidityAssessment classifies the current humidity percentage.
type HumidityAssessment struct {
	Percent        int
	Band           HumidityBand
	Color          Color
	DescriptionKey string
	Trend          Trend
}

// AssessHumidity bands the humidity percentage: <=30 very dry, <=50
// comfortable, <=70 moderate, <=85 high, else very high. The trend
// compares against the synthetic baseline, not real history.
func AssessHumidity(humidity int) HumidityAssessment {
	humidity = clampInt(humidity, 0, 100)

	a := HumidityAssessment{
		Percent: humidity,
		Trend:   trendAgainstBaseline(humidity),
	}
	switch {
	case humidity <= 30:
		a.Band, a.Color, a.DescriptionKey = HumidityVeryDry, ColorOrange, "humidity-air-very-dry"
	case humidity <= 50:
		a.Band, a.Color, a.DescriptionKey = HumidityComfortable, ColorGreen, "humidity-comfortable-level"
	case humidity <= 70:
		a.Band, a.Color, a.DescriptionKey = HumidityModerate, ColorAmber, "humidity-fairly-comfortable"
	case humidity <= 85:
		a.Band, a.Color, a.DescriptionKey = HumidityHigh, ColorPaleBlue, "humidity-air-humid"
	default:
		a.Band, a.Color, a.DescriptionKey = HumidityVeryHigh, ColorRed, "humidity-air-very-humid"
	}
	return a
}
