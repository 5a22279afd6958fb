package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	defaultTimeout = 3 * time.Second

	// Nominatim usage policy requires an identifying User-Agent.
	userAgent = "weather-task-tracker/1.0"
)

// Client is the OpenStreetMap Nominatim reverse-geocoding client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new Nominatim client.
func New() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithBaseURL overrides the default Nominatim base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// ReverseGeocode resolves coordinates to the nearest named place,
// in city -> town -> village -> state preference order.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	reqURL := fmt.Sprintf("%s/reverse?format=json&lat=%g&lon=%g", c.baseURL, lat, lon)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call Nominatim API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim API error: %d", resp.StatusCode)
	}

	var reverse reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&reverse); err != nil {
		return "", fmt.Errorf("failed to decode reverse response: %w", err)
	}

	addr := reverse.Address
	for _, name := range []string{addr.City, addr.Town, addr.Village, addr.State} {
		if name != "" {
			return name, nil
		}
	}
	return "", nil
}
