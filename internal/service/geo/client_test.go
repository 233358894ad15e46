package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrelbay/wildscope/backend/internal/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.GeoConfig{
		BaseURL:   serverURL,
		UserAgent: "wildscope-test/1.0",
		Timeout:   5,
	})
}

func TestGeocodeMapsNominatimResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "Las Vegas" {
			t.Errorf("unexpected query %q", r.URL.Query().Get("q"))
		}
		if r.URL.Query().Get("addressdetails") != "1" {
			t.Errorf("expected addressdetails=1")
		}
		if r.Header.Get("User-Agent") != "wildscope-test/1.0" {
			t.Errorf("missing identifying user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"lat": "36.1672559",
			"lon": "-115.148516",
			"display_name": "Las Vegas, Clark County, Nevada, United States",
			"address": {
				"city": "Las Vegas",
				"state": "Nevada",
				"country": "United States",
				"country_code": "us"
			}
		}]`))
	}))
	defer server.Close()

	location, err := newTestClient(server.URL).Geocode(context.Background(), "Las Vegas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location == nil {
		t.Fatalf("expected a location")
	}
	if location.City != "Las Vegas" || location.State != "Nevada" || location.CountryCode != "us" {
		t.Fatalf("unexpected mapping: %+v", location)
	}
	if location.Latitude < 36 || location.Latitude > 37 {
		t.Fatalf("latitude not parsed: %f", location.Latitude)
	}
}

func TestGeocodeFallsBackToTownAndVillage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"lat": "51.0",
			"lon": "-1.0",
			"display_name": "Some Village, England, United Kingdom",
			"address": {
				"village": "Some Village",
				"state": "England",
				"country": "United Kingdom",
				"country_code": "gb"
			}
		}]`))
	}))
	defer server.Close()

	location, err := newTestClient(server.URL).Geocode(context.Background(), "Some Village")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location.City != "Some Village" {
		t.Fatalf("expected village fallback, got %q", location.City)
	}
}

func TestGeocodeNoResultIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	location, err := newTestClient(server.URL).Geocode(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("expected nil error for empty result, got %v", err)
	}
	if location != nil {
		t.Fatalf("expected nil location, got %+v", location)
	}
}

func TestGeocodeServerErrorIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Geocode(context.Background(), "Lisbon"); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}
