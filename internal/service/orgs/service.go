package orgs

import (
	"context"
	"log"
	"strings"

	"github.com/kestrelbay/wildscope/backend/internal/config"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
)

// Searcher is the optional enrichment lookup; nil disables it.
type Searcher interface {
	OpenSearch(ctx context.Context, search string, limit int) ([]wikiHit, error)
}

// Service recommends conservation organizations for a selected animal. The
// curated directory guarantees a non-empty answer; the wiki search only adds
// to it and its failures never fail a turn.
type Service struct {
	wiki       Searcher
	maxResults int
}

// NewService wires the directory with its optional enrichment client.
func NewService(wiki Searcher, cfg config.OrgsConfig) *Service {
	s := &Service{maxResults: cfg.MaxResults}
	if cfg.WikiEnabled && wiki != nil {
		s.wiki = wiki
	}
	return s
}

// orgKindWords gates wiki hits to titles that plausibly name a group rather
// than an animal article.
var orgKindWords = []string{
	"conservation", "conservancy", "society", "fund", "foundation", "trust",
	"alliance", "institute", "federation", "center", "centre", "rescue",
}

// ForAnimal assembles the recommendation list for one animal within a scope
// ("worldwide" or a resolved display name).
func (s *Service) ForAnimal(ctx context.Context, animalName, scopeName string) ([]taxon.Organization, error) {
	animal := strings.ToLower(strings.TrimSpace(animalName))
	scope := strings.ToLower(strings.TrimSpace(scopeName))

	var picks []taxon.Organization
	for _, entry := range animalDirectory {
		if matchesAny(animal, entry.keywords) {
			picks = append(picks, entry.orgs...)
		}
	}
	for _, entry := range regionDirectory {
		if matchesAny(scope, entry.keywords) {
			picks = append(picks, entry.orgs...)
		}
	}
	picks = append(picks, generalOrgs...)

	if s.wiki != nil {
		picks = append(picks, s.searchWiki(ctx, animalName)...)
	}

	seen := make(map[string]struct{}, len(picks))
	result := make([]taxon.Organization, 0, s.maxResults)
	for _, org := range picks {
		key := strings.ToLower(org.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		org.Scope = scopeName
		result = append(result, org)
		if len(result) == s.maxResults {
			break
		}
	}
	return result, nil
}

func (s *Service) searchWiki(ctx context.Context, animalName string) []taxon.Organization {
	hits, err := s.wiki.OpenSearch(ctx, animalName+" conservation", 5)
	if err != nil {
		log.Printf("[orgs] wiki enrichment skipped: %v", err)
		return nil
	}

	var found []taxon.Organization
	for _, hit := range hits {
		title := strings.ToLower(hit.Title)
		if !matchesAny(title, orgKindWords) {
			continue
		}
		found = append(found, taxon.Organization{
			Name:        hit.Title,
			Description: hit.Description,
			Website:     hit.URL,
		})
	}
	return found
}

// matchesAny reports whether any keyword appears as a whole word (plural
// tolerated) in the text, so "gray wolf" never trips the "ray" keyword.
func matchesAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	padded := " " + strings.Join(words, " ") + " "
	for _, keyword := range keywords {
		if strings.Contains(padded, " "+keyword+" ") || strings.Contains(padded, " "+keyword+"s ") {
			return true
		}
	}
	return false
}
