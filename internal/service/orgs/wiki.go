package orgs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kestrelbay/wildscope/backend/internal/config"
)

// WikiClient queries a MediaWiki opensearch endpoint for article leads that
// look like conservation groups.
type WikiClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewWikiClient builds the enrichment client from configuration.
func NewWikiClient(cfg config.OrgsConfig) *WikiClient {
	return &WikiClient{
		baseURL: cfg.WikiBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// wikiHit is one opensearch row reassembled from the positional arrays.
type wikiHit struct {
	Title       string
	Description string
	URL         string
}

// OpenSearch runs a prefix search. The endpoint answers with four parallel
// arrays: query echo, titles, descriptions, URLs.
func (c *WikiClient) OpenSearch(ctx context.Context, search string, limit int) ([]wikiHit, error) {
	query := url.Values{}
	query.Set("action", "opensearch")
	query.Set("search", search)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("namespace", "0")
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build opensearch request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opensearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opensearch failed with status %d", resp.StatusCode)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode opensearch response: %w", err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("opensearch response has %d segments, want 4", len(raw))
	}

	var titles, descriptions, urls []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return nil, fmt.Errorf("decode opensearch titles: %w", err)
	}
	if err := json.Unmarshal(raw[2], &descriptions); err != nil {
		return nil, fmt.Errorf("decode opensearch descriptions: %w", err)
	}
	if err := json.Unmarshal(raw[3], &urls); err != nil {
		return nil, fmt.Errorf("decode opensearch urls: %w", err)
	}

	hits := make([]wikiHit, 0, len(titles))
	for i, title := range titles {
		hit := wikiHit{Title: title}
		if i < len(descriptions) {
			hit.Description = descriptions[i]
		}
		if i < len(urls) {
			hit.URL = urls[i]
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
