// Package weather fetches daily forecasts for a coordinate and caches them
// with a short TTL, falling back to stale entries when the upstream is down.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/metrics"
)

// Forecast is one day of weather for a coordinate.
type Forecast struct {
	Date              string  `json:"date"` // day key, "2006-01-02"
	TempHigh          float64 `json:"temp_high"`
	TempLow           float64 `json:"temp_low"`
	Description       string  `json:"description"`
	IconURI           string  `json:"icon_uri,omitempty"`
	PrecipProbability int     `json:"precip_probability"`
}

// Provider is the upstream forecast collaborator. The returned map is keyed
// by day key and covers today plus up to nine more days; dates beyond the
// horizon are simply absent.
type Provider interface {
	FetchForecast(ctx context.Context, coord domain.LatLng) (map[string]Forecast, error)
}

// Client talks to an Open-Meteo-compatible forecast endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the given base URL,
// e.g. "https://api.open-meteo.com".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Provider = (*Client)(nil)

// openMeteoResponse mirrors the daily block of the upstream JSON.
// Arrays are positionally aligned with the time array.
type openMeteoResponse struct {
	Daily struct {
		Time          []string  `json:"time"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		WeatherCode   []int     `json:"weathercode"`
		PrecipProbMax []int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// FetchForecast returns the upstream's full daily forecast for coord.
func (c *Client) FetchForecast(ctx context.Context, coord domain.LatLng) (map[string]Forecast, error) {
	metrics.UpstreamRequests.WithLabelValues("weather").Inc()

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", coord.Lat))
	params.Set("longitude", fmt.Sprintf("%.4f", coord.Lng))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode,precipitation_probability_max")
	params.Set("forecast_days", "10")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather.Client.FetchForecast: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("weather").Inc()
		return nil, fmt.Errorf("weather.Client.FetchForecast: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrors.WithLabelValues("weather").Inc()
		return nil, fmt.Errorf("weather.Client.FetchForecast: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.UpstreamErrors.WithLabelValues("weather").Inc()
		return nil, fmt.Errorf("weather.Client.FetchForecast: %w: decode: %w", domain.ErrUpstream, err)
	}

	out := make(map[string]Forecast, len(body.Daily.Time))
	for i, day := range body.Daily.Time {
		f := Forecast{Date: day}
		// Positional arrays may be shorter than the time array when the
		// upstream omits a variable; take what is there.
		if i < len(body.Daily.TempMax) {
			f.TempHigh = body.Daily.TempMax[i]
		}
		if i < len(body.Daily.TempMin) {
			f.TempLow = body.Daily.TempMin[i]
		}
		if i < len(body.Daily.WeatherCode) {
			f.Description = describeWeatherCode(body.Daily.WeatherCode[i])
		}
		if i < len(body.Daily.PrecipProbMax) {
			f.PrecipProbability = body.Daily.PrecipProbMax[i]
		}
		out[day] = f
	}
	return out, nil
}

// describeWeatherCode maps WMO weather interpretation codes to short labels.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 3:
		return "Partly cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Showers"
	case code >= 85 && code <= 86:
		return "Snow showers"
	case code >= 95:
		return "Thunderstorm"
	}
	return "Unknown"
}
