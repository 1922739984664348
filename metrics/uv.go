package metrics

import (
	"time"

	"dailyweather/models"
)

// UVBand is the severity band of the UV estimate.
type UVBand string

const (
	UVLow      UVBand = "low"
	UVModerate UVBand = "moderate"
	UVHigh     UVBand = "high"
	UVVeryHigh UVBand = "very-high"
	UVExtreme  UVBand = "extreme"
)

// UVIndexEstimate is the synthesized UV reading. The provider supplies no
// UV data, so the index is estimated from temperature, local hour and the
// condition description; it is always within [0, 11].
type UVIndexEstimate struct {
	Index          float64
	Band           UVBand
	Color          Color
	DescriptionKey string
	Trend          Trend
}

// EstimateUV derives the UV estimate for a snapshot at the given local
// time. Peak hours (10:00-14:59) use temp/10+2, the shoulder bands
// (07:00-09:59, 15:00-17:59) temp/12+1, all other hours temp/15; the base
// is then scaled by cloud cover inferred from the condition text.
func EstimateUV(snapshot models.WeatherSnapshot, now time.Time) UVIndexEstimate {
	temp := int(snapshot.Temperature)
	hour := now.Hour()

	var index float64
	switch {
	case hour >= 10 && hour <= 14:
		index = float64(temp)/10.0 + 2.0
	case (hour >= 7 && hour <= 9) || (hour >= 15 && hour <= 17):
		index = float64(temp)/12.0 + 1.0
	default:
		index = float64(temp) / 15.0
	}

	index *= conditionFactor(snapshot.Description)
	index = clampFloat(index, 0.0, 11.0)

	est := UVIndexEstimate{Index: index}
	switch {
	case index <= 2.0:
		est.Band, est.Color, est.DescriptionKey = UVLow, ColorGreen, "uv-safe-without-protection"
	case index <= 5.0:
		est.Band, est.Color, est.DescriptionKey = UVModerate, ColorAmber, "uv-protection-advised"
	case index <= 7.0:
		est.Band, est.Color, est.DescriptionKey = UVHigh, ColorOrange, "uv-protection-required"
	case index <= 10.0:
		est.Band, est.Color, est.DescriptionKey = UVVeryHigh, ColorRed, "uv-extra-protection-required"
	default:
		est.Band, est.Color, est.DescriptionKey = UVExtreme, ColorPurple, "uv-avoid-sun-exposure"
	}

	// Bands above moderate report the synthetic upward trend, the rest
	// are stable.
	if est.Band == UVHigh || est.Band == UVVeryHigh || est.Band == UVExtreme {
		est.Trend = TrendHigher
	} else {
		est.Trend = TrendStable
	}
	return est
}

// conditionFactor scales the UV base by cloud cover inferred from the
// condition description. Matched in order: clear, cloud, rain, default.
func conditionFactor(description string) float64 {
	switch {
	case containsFold(description, "clear"):
		return 1.0
	case containsFold(description, "cloud"):
		return 0.7
	case containsFold(description, "rain"):
		return 0.5
	default:
		return 0.8
	}
}
