package metrics

import (
	"fmt"

	"dailyweather/models"
)

// InfoItem is one row of the at-a-glance detail strip under the current
// conditions. Key is a semantic label identifier, Value the formatted
// reading.
type InfoItem struct {
	Key   string
	Value string
}

// InfoItems builds the detail strip for a snapshot: feels-like
// temperature, humidity, wind speed and the raw condition text.
func InfoItems(snapshot models.WeatherSnapshot) []InfoItem {
	return []InfoItem{
		{Key: "feels-like", Value: fmt.Sprintf("%d°", int(snapshot.FeelsLike))},
		{Key: "humidity", Value: fmt.Sprintf("%d%%", snapshot.Humidity)},
		{Key: "wind", Value: fmt.Sprintf("%.1f m/s", snapshot.WindSpeed)},
		{Key: "condition", Value: snapshot.Description},
	}
}
