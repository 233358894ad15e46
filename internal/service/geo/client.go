package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kestrelbay/wildscope/backend/internal/config"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
)

// Client talks to a Nominatim-compatible geocoding endpoint.
type Client struct {
	baseURL    string
	email      string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a geocoding client from configuration.
func NewClient(cfg config.GeoConfig) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		email:     cfg.Email,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		State        string `json:"state"`
		Country      string `json:"country"`
		CountryCode  string `json:"country_code"`
	} `json:"address"`
}

// Geocode resolves a free-text phrase. A nil location with a nil error means
// the service answered but had no match.
func (c *Client) Geocode(ctx context.Context, phrase string) (*geo.Location, error) {
	query := url.Values{}
	query.Set("q", phrase)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("addressdetails", "1")
	query.Set("accept-language", "en")
	if c.email != "" {
		query.Set("email", c.email)
	}

	endpoint := c.baseURL + "/search?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request failed with status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return mapResult(results[0])
}

func mapResult(result searchResult) (*geo.Location, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", result.Lat, err)
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", result.Lon, err)
	}

	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}
	if city == "" {
		city = result.Address.Municipality
	}

	return &geo.Location{
		DisplayName: result.DisplayName,
		City:        city,
		State:       result.Address.State,
		Country:     result.Address.Country,
		CountryCode: strings.ToLower(result.Address.CountryCode),
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
