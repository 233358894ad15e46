package species

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
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
)

// Client talks to an iNaturalist-compatible observations API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a species client from configuration.
func NewClient(cfg config.SpeciesConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

type speciesCountsResponse struct {
	Results []struct {
		Count int `json:"count"`
		Taxon struct {
			Name                string `json:"name"`
			PreferredCommonName string `json:"preferred_common_name"`
			ConservationStatus  *struct {
				StatusName string `json:"status_name"`
			} `json:"conservation_status"`
			DefaultPhoto *struct {
				MediumURL string `json:"medium_url"`
			} `json:"default_photo"`
		} `json:"taxon"`
	} `json:"results"`
}

// SpeciesCounts lists observed species around a point, most-observed first.
// Entries without any usable name are dropped; duplicates are the caller's
// problem.
func (c *Client) SpeciesCounts(ctx context.Context, lat, lon float64, radiusKM, perPage int) ([]taxon.Species, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("radius", strconv.Itoa(radiusKM))
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("order", "desc")
	query.Set("locale", "en")
	query.Set("verifiable", "true")
	query.Set("iconic_taxa", "Mammalia,Aves,Reptilia,Amphibia")

	endpoint := c.baseURL + "/observations/species_counts?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build species request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("species request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("species request failed with status %d", resp.StatusCode)
	}

	var payload speciesCountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode species response: %w", err)
	}

	species := make([]taxon.Species, 0, len(payload.Results))
	for _, result := range payload.Results {
		common := strings.TrimSpace(result.Taxon.PreferredCommonName)
		scientific := strings.TrimSpace(result.Taxon.Name)
		if common == "" {
			common = scientific
		}
		if common == "" {
			continue
		}

		status := "Unknown"
		if result.Taxon.ConservationStatus != nil && result.Taxon.ConservationStatus.StatusName != "" {
			status = titleCase(result.Taxon.ConservationStatus.StatusName)
		}

		entry := taxon.Species{
			CommonName:         titleCase(common),
			ScientificName:     scientific,
			ConservationStatus: status,
			ObservationCount:   result.Count,
		}
		if result.Taxon.DefaultPhoto != nil {
			entry.PhotoURL = result.Taxon.DefaultPhoto.MediumURL
		}
		species = append(species, entry)
	}
	return species, nil
}

// titleCase uppercases the first letter of each word; the API reports names
// and statuses lowercased.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 && runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] = runes[0] - 'a' + 'A'
			words[i] = string(runes)
		}
	}
	return strings.Join(words, " ")
}
