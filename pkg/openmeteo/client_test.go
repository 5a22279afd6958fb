package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-task-tracker/pkg/openmeteo"
)

func TestCurrentWeatherCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("current_weather") != "true" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("latitude") == "99" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"current_weather":{"temperature":21.5,"weathercode":63}}`))
	}))
	defer ts.Close()

	client := openmeteo.New().WithForecastBaseURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		code, err := client.CurrentWeatherCode(context.Background(), 19.43, -99.13)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != 63 {
			t.Errorf("expected code 63, got %d", code)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.CurrentWeatherCode(context.Background(), 99, 0)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}

func TestGeocode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.URL.Query().Get("name") {
		case "Mexico City":
			w.Write([]byte(`{"results":[{"name":"Mexico City","latitude":19.42847,"longitude":-99.12766,"country":"Mexico"}]}`))
		case "Nowhereville":
			w.Write([]byte(`{}`)) // no results field at all
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	client := openmeteo.New().WithGeocodingBaseURL(ts.URL)

	t.Run("First Match", func(t *testing.T) {
		coords, found, err := client.Geocode(context.Background(), "Mexico City")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatalf("expected a match")
		}
		if coords.Latitude != 19.42847 || coords.Longitude != -99.12766 {
			t.Errorf("unexpected coordinates: %+v", coords)
		}
	})

	t.Run("No Results", func(t *testing.T) {
		_, found, err := client.Geocode(context.Background(), "Nowhereville")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Errorf("expected no match")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, _, err := client.Geocode(context.Background(), "boom")
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}
