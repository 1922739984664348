package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dailyweather/models"
)

// forecastCount asks for the full 5 days at 3-hour resolution.
const forecastCount = 40

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource
// against the OpenWeatherMap 2.5 API.
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
func NewOpenWeatherMapProvider(apiKey string) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetBaseURL overrides the API base URL (useful for testing).
func (p *OpenWeatherMapProvider) SetBaseURL(baseURL string) {
	p.baseURL = baseURL
}

// Name returns the provider name.
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

func (p *OpenWeatherMapProvider) locationParams(q Query) url.Values {
	params := url.Values{}
	if q.ByCoords {
		params.Add("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
		params.Add("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	} else {
		params.Add("q", q.City)
	}
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")
	return params
}

// get performs the request and returns the body, converting transport and
// HTTP-status failures into the shared error taxonomy.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Operation: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}
	return body, nil
}

// GetWeather fetches current conditions for a location.
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, q Query) (models.WeatherSnapshot, error) {
	body, err := p.get(ctx, fmt.Sprintf("%s/weather", p.baseURL), p.locationParams(q))
	if err != nil {
		return models.WeatherSnapshot{}, err
	}

	var response struct {
		Name  string `json:"name"`
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Sys struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if response.Name == "" && response.Sys.Country == "" {
		return models.WeatherSnapshot{}, &EmptyPayloadError{What: "weather"}
	}

	// A missing condition list degrades to an empty description rather
	// than failing; the calculators default-band it.
	description := ""
	icon := ""
	if len(response.Weather) > 0 {
		description = response.Weather[0].Description
		icon = response.Weather[0].Icon
	}

	return models.WeatherSnapshot{
		City:        response.Name,
		Country:     response.Sys.Country,
		Lat:         response.Coord.Lat,
		Lon:         response.Coord.Lon,
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		Humidity:    response.Main.Humidity,
		Pressure:    response.Main.Pressure,
		WindSpeed:   response.Wind.Speed,
		Description: description,
		Icon:        icon,
		Sunrise:     response.Sys.Sunrise,
		Sunset:      response.Sys.Sunset,
	}, nil
}

// FetchForecast fetches the 5-day/3-hour forecast for a location. Entries
// are kept in the provider's arrival order and never re-sorted.
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, q Query) (models.ForecastData, error) {
	params := p.locationParams(q)
	params.Add("cnt", strconv.Itoa(forecastCount))

	body, err := p.get(ctx, fmt.Sprintf("%s/forecast", p.baseURL), params)
	if err != nil {
		return models.ForecastData{}, err
	}

	var response struct {
		City struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"city"`
		List []struct {
			Dt    int64  `json:"dt"`
			DtTxt string `json:"dt_txt"`
			Main  struct {
				Temp     float64 `json:"temp"`
				Humidity int     `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			Pop  *float64 `json:"pop"`
			Rain *struct {
				ThreeHours float64 `json:"3h"`
			} `json:"rain"`
		} `json:"list"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastData{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(response.List) == 0 {
		return models.ForecastData{}, &EmptyPayloadError{What: "forecast"}
	}

	forecast := models.ForecastData{
		City:    response.City.Name,
		Country: response.City.Country,
		Entries: make([]models.ForecastEntry, 0, len(response.List)),
		Fetched: time.Now(),
	}

	for _, item := range response.List {
		description := ""
		icon := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
			icon = item.Weather[0].Icon
		}

		pop := 0.0
		if item.Pop != nil {
			pop = *item.Pop
		}
		rain := 0.0
		if item.Rain != nil {
			rain = item.Rain.ThreeHours
		}

		forecast.Entries = append(forecast.Entries, models.ForecastEntry{
			Timestamp:     time.Unix(item.Dt, 0),
			TimeText:      item.DtTxt,
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			Description:   description,
			Icon:          icon,
			Precipitation: pop,
			RainVolume:    rain,
		})
	}

	return forecast, nil
}

// Verify the provider satisfies both interfaces.
var (
	_ WeatherProvider = (*OpenWeatherMapProvider)(nil)
	_ ForecastSource  = (*OpenWeatherMapProvider)(nil)
)
