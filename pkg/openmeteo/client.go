package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultForecastBaseURL  = "https://api.open-meteo.com/v1"
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"

	// Geocoding and forecast calls share the same bound as the browser
	// geolocation timeout: answers slower than this are treated as absent.
	defaultTimeout = 3 * time.Second
)

// Client is the Open-Meteo forecast + geocoding API client.
// Both APIs are keyless.
type Client struct {
	forecastBaseURL  string
	geocodingBaseURL string
	httpClient       *http.Client
}

// New creates a new Open-Meteo client with default endpoints.
func New() *Client {
	return &Client{
		forecastBaseURL:  DefaultForecastBaseURL,
		geocodingBaseURL: DefaultGeocodingBaseURL,
		httpClient:       &http.Client{Timeout: defaultTimeout},
	}
}

// WithForecastBaseURL overrides the forecast API base URL.
func (c *Client) WithForecastBaseURL(baseURL string) *Client {
	c.forecastBaseURL = baseURL
	return c
}

// WithGeocodingBaseURL overrides the geocoding API base URL.
func (c *Client) WithGeocodingBaseURL(baseURL string) *Client {
	c.geocodingBaseURL = baseURL
	return c
}

// CurrentWeatherCode returns the current WMO weather code at lat/lon.
func (c *Client) CurrentWeatherCode(ctx context.Context, lat, lon float64) (int, error) {
	reqURL := fmt.Sprintf("%s/forecast?latitude=%g&longitude=%g&current_weather=true",
		c.forecastBaseURL, lat, lon)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to call Open-Meteo forecast API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("open-meteo forecast API error: %d", resp.StatusCode)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return 0, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	return forecast.CurrentWeather.WeatherCode, nil
}

// Geocode resolves a place name to coordinates using the first search match.
func (c *Client) Geocode(ctx context.Context, name string) (Coordinates, bool, error) {
	reqURL := fmt.Sprintf("%s/search?name=%s&count=1", c.geocodingBaseURL, url.QueryEscape(name))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("failed to call Open-Meteo geocoding API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, false, fmt.Errorf("open-meteo geocoding API error: %d", resp.StatusCode)
	}

	var geocode geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geocode); err != nil {
		return Coordinates{}, false, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(geocode.Results) == 0 {
		return Coordinates{}, false, nil
	}

	return Coordinates{
		Latitude:  geocode.Results[0].Latitude,
		Longitude: geocode.Results[0].Longitude,
	}, true, nil
}
