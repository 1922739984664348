package models

// WeatherSnapshot is one current-conditions observation as delivered by the
// provider. It is created on a successful response and never mutated; a
// refresh or a new search replaces it wholesale.
type WeatherSnapshot struct {
	City        string  `json:"city"`
	Country     string  `json:"country"` // ISO country code, e.g. "ID"
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Temperature float64 `json:"temperature"` // Celsius
	FeelsLike   float64 `json:"feelsLike"`   // Celsius
	Humidity    int     `json:"humidity"`    // percent
	Pressure    float64 `json:"pressure"`    // hPa
	WindSpeed   float64 `json:"windSpeed"`   // m/s
	Description string  `json:"description"` // primary condition description
	Icon        string  `json:"icon"`        // provider icon code, e.g. "01d"
	Sunrise     int64   `json:"sunrise"`     // epoch seconds
	Sunset      int64   `json:"sunset"`      // epoch seconds
}

// Location formats the snapshot's place as "City, CC".
func (s WeatherSnapshot) Location() string {
	if s.Country == "" {
		return s.City
	}
	return s.City + ", " + s.Country
}
