package geo

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
)

// Status tags how a resolution attempt ended.
type Status string

const (
	// StatusResolved means the phrase landed on exactly one location.
	StatusResolved Status = "resolved"
	// StatusNeedsDisambiguation means several well-known places share the
	// name; Options carries at least two of them.
	StatusNeedsDisambiguation Status = "needs-disambiguation"
	// StatusNotFound means no place could be derived; Guidance tells the
	// user how to rephrase.
	StatusNotFound Status = "not-found"
)

// Resolution is the resolver's answer for one phrase.
type Resolution struct {
	Status   Status
	Location *geo.Location
	Options  []geo.DisambiguationOption
	Guidance string
}

// Geocoder is the external forward-geocoding collaborator.
type Geocoder interface {
	Geocode(ctx context.Context, phrase string) (*geo.Location, error)
}

// AmbiguityClassifier is the semantic collaborator consulted for bare names
// the static table does not know. It is advisory: failures fall through to
// plain geocoding.
type AmbiguityClassifier interface {
	ClassifyAmbiguity(ctx context.Context, phrase string) (geo.AmbiguityReport, error)
}

// Resolver turns location phrases into resolved places or disambiguation
// option sets.
type Resolver struct {
	gazetteer gazetteer.Store
	geocoder  Geocoder
	semantic  AmbiguityClassifier
}

// NewResolver builds a Resolver. semantic may be nil.
func NewResolver(store gazetteer.Store, geocoder Geocoder, semantic AmbiguityClassifier) *Resolver {
	return &Resolver{gazetteer: store, geocoder: geocoder, semantic: semantic}
}

const (
	minPhraseLen = 2
	maxPhraseLen = 100
	// maxRetryFormats bounds the alternative query spellings tried after
	// the first geocode attempt returns nothing.
	maxRetryFormats = 3
)

var (
	leadIn = regexp.MustCompile(`(?i)^(?:i\s+live\s+in|i'?m\s+in|i\s+am\s+in|we\s+live\s+in|i'?m\s+from|i\s+am\s+from|i'?m\s+near|in|near|from|around)\s+`)
	// phraseChars keeps letters, digits, spaces, and the comma/period/hyphen
	// the resolver's own formats rely on.
	phraseChars = regexp.MustCompile(`[^\p{L}\p{N} ,.\-]+`)
)

// Resolve maps a phrase to StatusResolved, StatusNeedsDisambiguation, or
// StatusNotFound. An error is returned only when the geocoding collaborator
// itself failed; "no result" is not an error.
func (r *Resolver) Resolve(ctx context.Context, phrase string) (Resolution, error) {
	cleaned := Sanitize(phrase)
	if len(cleaned) < minPhraseLen || len(cleaned) > maxPhraseLen {
		return Resolution{
			Status:   StatusNotFound,
			Guidance: "Tell me a place by name, like \"Portland, Oregon\" or \"Kenya\".",
		}, nil
	}
	if r.gazetteer != nil && r.gazetteer.IsFiller(cleaned) {
		return Resolution{
			Status:   StatusNotFound,
			Guidance: "I need a place name to search. Try a city, state, or country.",
		}, nil
	}

	if r.gazetteer != nil {
		if options, ok := r.gazetteer.AmbiguousPlace(cleaned); ok {
			return Resolution{Status: StatusNeedsDisambiguation, Options: options}, nil
		}
	}

	if r.semantic != nil && !strings.Contains(cleaned, ",") && len(strings.Fields(cleaned)) <= 2 {
		report, err := r.semantic.ClassifyAmbiguity(ctx, cleaned)
		if err != nil {
			log.Printf("[geo] ambiguity check failed for %q: %v", cleaned, err)
		} else if report.Ambiguous && len(report.Options) >= 2 {
			return Resolution{Status: StatusNeedsDisambiguation, Options: report.Options}, nil
		}
	}

	for _, attempt := range r.queryAttempts(cleaned) {
		location, err := r.geocoder.Geocode(ctx, attempt)
		if err != nil {
			return Resolution{}, fmt.Errorf("geocode %q: %w", attempt, err)
		}
		if location == nil {
			continue
		}
		location.DisplayName = preferredDisplayName(location)
		return Resolution{Status: StatusResolved, Location: location}, nil
	}

	log.Printf("[geo] no geocoder result for %q", cleaned)
	return Resolution{
		Status:   StatusNotFound,
		Guidance: fmt.Sprintf("I couldn't find %q. Try adding a region or country, like \"%s, USA\".", cleaned, cleaned),
	}, nil
}

// Sanitize trims the phrase, strips conversational lead-ins ("I live in"),
// and removes punctuation other than comma, period, and hyphen. Case is
// preserved for display.
func Sanitize(phrase string) string {
	cleaned := strings.TrimSpace(phrase)
	cleaned = leadIn.ReplaceAllString(cleaned, "")
	cleaned = phraseChars.ReplaceAllString(cleaned, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// queryAttempts yields the original phrase (canonicalized when it is a
// country nickname) followed by bounded alternative formats: a comma swap
// for two-part phrases, country suffixes for bare ones.
func (r *Resolver) queryAttempts(cleaned string) []string {
	first := cleaned
	if r.gazetteer != nil {
		if canonical, ok := r.gazetteer.CanonicalCountry(cleaned); ok {
			first = canonical
		}
	}

	var retries []string
	if left, right, found := strings.Cut(cleaned, ","); found {
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if left != "" && right != "" {
			retries = append(retries, right+", "+left)
		}
		retries = append(retries, cleaned+", USA")
	} else {
		retries = append(retries, cleaned+", USA", cleaned+", Canada", cleaned+", United Kingdom")
	}
	if len(retries) > maxRetryFormats {
		retries = retries[:maxRetryFormats]
	}

	attempts := []string{first}
	for _, retry := range retries {
		if retry != first {
			attempts = append(attempts, retry)
		}
	}
	return attempts
}

// preferredDisplayName normalizes what the user sees: "City, State, Country"
// for US hits with both, then "City, Country", then "State, Country", then
// whatever the geocoder said.
func preferredDisplayName(location *geo.Location) string {
	isUS := location.CountryCode == "us" || location.Country == "United States"
	switch {
	case isUS && location.City != "" && location.State != "":
		return location.City + ", " + location.State + ", " + location.Country
	case location.City != "" && location.Country != "":
		return location.City + ", " + location.Country
	case location.State != "" && location.Country != "":
		return location.State + ", " + location.Country
	default:
		return location.DisplayName
	}
}
