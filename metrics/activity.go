package metrics

import (
	"time"

	"dailyweather/models"
	"dailyweather/timeutil"
)

// Activity names one of the assessed outdoor activities.
type Activity string

const (
	ActivityRunning   Activity = "running"
	ActivityCycling   Activity = "cycling"
	ActivityGardening Activity = "gardening"
)

// ActivityAssessment is the overall verdict for one activity plus a
// short window of upcoming time slots.
type ActivityAssessment struct {
	Activity       Activity
	Status         Status
	Color          Color
	DescriptionKey string
	Slots          []TimeSlot
}

// TimeSlot rates a single upcoming forecast entry for outdoor activity.
type TimeSlot struct {
	Label  string
	Status Status
	Color  Color
}

const slotCount = 3

// AssessActivities rates running, cycling and gardening for the current
// snapshot and attaches the same upcoming slots to each.
func AssessActivities(snapshot models.WeatherSnapshot, forecast *models.ForecastData, now time.Time) []ActivityAssessment {
	slots := upcomingSlots(forecast, now)
	return []ActivityAssessment{
		assessRunning(snapshot, slots),
		assessCycling(snapshot, slots),
		assessGardening(snapshot, slots),
	}
}

func assessRunning(s models.WeatherSnapshot, slots []TimeSlot) ActivityAssessment {
	temp := int(s.Temperature)
	raining := containsFold(s.Description, "rain")

	var status Status
	switch {
	case raining || temp >= 35 || temp <= 5 || s.Humidity >= 85 || s.WindSpeed > 8:
		status = StatusPoor
	case temp >= 30 || temp <= 10 || s.Humidity >= 70:
		status = StatusFair
	default:
		status = StatusGood
	}

	var key string
	switch {
	case temp > 32:
		key = "too-hot-for-running"
	case temp < 18:
		key = "too-cold-for-running"
	case s.Humidity > 80:
		key = "high-humidity-uncomfortable"
	case s.Humidity < 60:
		key = "fair-for-running"
	default:
		key = "ideal-for-running"
	}

	return ActivityAssessment{
		Activity:       ActivityRunning,
		Status:         status,
		Color:          StatusColor(status),
		DescriptionKey: key,
		Slots:          slots,
	}
}

func assessCycling(s models.WeatherSnapshot, slots []TimeSlot) ActivityAssessment {
	temp := int(s.Temperature)
	raining := containsFold(s.Description, "rain")

	var status Status
	switch {
	case raining || temp >= 38 || temp <= 0 || s.WindSpeed > 10:
		status = StatusPoor
	case temp >= 32 || temp <= 5 || s.Humidity >= 75:
		status = StatusFair
	default:
		status = StatusGood
	}

	var key string
	switch {
	case raining:
		key = "rain-unsafe-for-cycling"
	case s.WindSpeed > 25:
		key = "strong-wind-dangerous"
	case s.WindSpeed < 10:
		key = "good-conditions-for-cycling"
	default:
		key = "fair-conditions-for-cycling"
	}

	return ActivityAssessment{
		Activity:       ActivityCycling,
		Status:         status,
		Color:          StatusColor(status),
		DescriptionKey: key,
		Slots:          slots,
	}
}

func assessGardening(s models.WeatherSnapshot, slots []TimeSlot) ActivityAssessment {
	temp := int(s.Temperature)
	stormy := containsFold(s.Description, "storm")

	var status Status
	switch {
	case temp <= 0 || stormy:
		status = StatusPoor
	case temp >= 40:
		status = StatusFair
	default:
		status = StatusGood
	}

	var key string
	switch {
	case temp < 10:
		key = "freezing-damages-plants"
	case stormy:
		key = "storm-can-damage-plants"
	case s.Humidity >= 40 && s.Humidity <= 70:
		key = "good-time-for-gardening"
	default:
		key = "fair-conditions-for-gardening"
	}

	return ActivityAssessment{
		Activity:       ActivityGardening,
		Status:         status,
		Color:          StatusColor(status),
		DescriptionKey: key,
		Slots:          slots,
	}
}

// upcomingSlots rates the next few forecast entries at or after now.
// Entries within the current hour get the "now" label, the rest their
// "HH.mm" clock label. Without usable forecast data three synthetic
// all-good slots cover now, +2h and +4h.
func upcomingSlots(forecast *models.ForecastData, now time.Time) []TimeSlot {
	var slots []TimeSlot
	if forecast != nil {
		for _, entry := range forecast.Entries {
			ts := timeutil.ParseTimestamp(entry.TimeText, now.Location(), entry.Timestamp)
			if ts.Before(now) {
				continue
			}
			label := timeutil.DotClockLabel(ts)
			if timeutil.IsWithinHour(ts, now) {
				label = timeutil.NowLabel
			}
			status := rateSlot(entry)
			slots = append(slots, TimeSlot{Label: label, Status: status, Color: StatusColor(status)})
			if len(slots) == slotCount {
				return slots
			}
		}
	}
	if len(slots) > 0 {
		return slots
	}

	for i := 0; i < slotCount; i++ {
		ts := now.Add(time.Duration(i*2) * time.Hour)
		label := timeutil.DotClockLabel(ts)
		if i == 0 {
			label = timeutil.NowLabel
		}
		slots = append(slots, TimeSlot{Label: label, Status: StatusGood, Color: StatusColor(StatusGood)})
	}
	return slots
}

// rateSlot applies the shared per-entry ladder used by all activities.
func rateSlot(entry models.ForecastEntry) Status {
	temp := int(entry.Temperature)
	switch {
	case entry.Precipitation > 0.7 || containsFold(entry.Description, "rain"):
		return StatusPoor
	case temp >= 35 || temp <= 5:
		return StatusPoor
	case entry.Humidity >= 85:
		return StatusPoor
	case containsFold(entry.Description, "storm"):
		return StatusPoor
	case entry.Precipitation > 0.3:
		return StatusFair
	case temp >= 30 || temp <= 10:
		return StatusFair
	case entry.Humidity >= 70:
		return StatusFair
	case containsFold(entry.Description, "cloud"):
		return StatusFair
	default:
		return StatusGood
	}
}
