package species

import (
	"context"
	"fmt"
	"log"

	"github.com/kestrelbay/wildscope/backend/internal/config"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
)

// Counter is the raw species lookup the service deduplicates and caps.
type Counter interface {
	SpeciesCounts(ctx context.Context, lat, lon float64, radiusKM, perPage int) ([]taxon.Species, error)
}

// Service produces the candidate list for a resolved location.
type Service struct {
	counter    Counter
	radiusKM   int
	maxResults int
}

// NewService wires the species lookup with its radius and list size.
func NewService(counter Counter, cfg config.SpeciesConfig) *Service {
	return &Service{
		counter:    counter,
		radiusKM:   cfg.RadiusKM,
		maxResults: cfg.MaxResults,
	}
}

// ForLocation fetches species observed around the location, collapses
// duplicate common names (first occurrence wins), and caps the list. The
// upstream ordering is not guaranteed stable between calls, so callers must
// treat the list as valid only for the session turn that fetched it.
func (s *Service) ForLocation(ctx context.Context, location geo.Location) ([]taxon.Species, error) {
	// Ask for extra rows so dedupe can still fill the list.
	raw, err := s.counter.SpeciesCounts(ctx, location.Latitude, location.Longitude, s.radiusKM, s.maxResults*2)
	if err != nil {
		return nil, fmt.Errorf("fetch species for %s: %w", location.DisplayName, err)
	}

	seen := make(map[string]struct{}, len(raw))
	candidates := make([]taxon.Species, 0, s.maxResults)
	for _, entry := range raw {
		key := taxon.NormalizeName(entry.CommonName)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, entry)
		if len(candidates) == s.maxResults {
			break
		}
	}

	log.Printf("[species] %d candidates near %s (radius %dkm)", len(candidates), location.DisplayName, s.radiusKM)
	return candidates, nil
}
