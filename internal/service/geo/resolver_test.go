package geo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
)

// fakeGeocoder answers from a canned table and records every query it saw.
type fakeGeocoder struct {
	results map[string]*geo.Location
	err     error
	queries []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, phrase string) (*geo.Location, error) {
	f.queries = append(f.queries, phrase)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[phrase], nil
}

type fakeAmbiguity struct {
	report geo.AmbiguityReport
	err    error
	calls  int
}

func (f *fakeAmbiguity) ClassifyAmbiguity(_ context.Context, _ string) (geo.AmbiguityReport, error) {
	f.calls++
	return f.report, f.err
}

func seededStore() *gazetteer.MemoryStore {
	return gazetteer.NewMemoryStore(gazetteer.Seed())
}

func TestResolveRejectsShortAndFillerPhrases(t *testing.T) {
	geocoder := &fakeGeocoder{}
	r := NewResolver(seededStore(), geocoder, nil)

	for _, phrase := range []string{"x", "hello", "12345", strings.Repeat("a", 120)} {
		res, err := r.Resolve(context.Background(), phrase)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", phrase, err)
		}
		if res.Status != StatusNotFound {
			t.Fatalf("expected not-found for %q, got %s", phrase, res.Status)
		}
		if res.Guidance == "" {
			t.Fatalf("expected guidance text for %q", phrase)
		}
	}
	if len(geocoder.queries) != 0 {
		t.Fatalf("rejected phrases must not reach the geocoder, saw %v", geocoder.queries)
	}
}

func TestResolveKnownAmbiguousPlace(t *testing.T) {
	geocoder := &fakeGeocoder{}
	r := NewResolver(seededStore(), geocoder, nil)

	res, err := r.Resolve(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusNeedsDisambiguation {
		t.Fatalf("expected disambiguation, got %s", res.Status)
	}
	if len(res.Options) != 2 {
		t.Fatalf("expected exactly two options for Paris, got %d", len(res.Options))
	}
	countries := res.Options[0].Country + "|" + res.Options[1].Country
	if !strings.Contains(countries, "France") || !strings.Contains(countries, "United States") {
		t.Fatalf("expected France and Texas readings, got %s", countries)
	}
	if len(geocoder.queries) != 0 {
		t.Fatalf("table hits must not reach the geocoder, saw %v", geocoder.queries)
	}
}

func TestResolveEverySeededAmbiguousPlace(t *testing.T) {
	geocoder := &fakeGeocoder{}
	r := NewResolver(seededStore(), geocoder, nil)

	for name, seeded := range gazetteer.Seed().AmbiguousPlaces {
		res, err := r.Resolve(context.Background(), name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if res.Status != StatusNeedsDisambiguation {
			t.Fatalf("%q must disambiguate, got %s", name, res.Status)
		}
		if len(res.Options) < 2 {
			t.Fatalf("%q offered %d options, want at least two", name, len(res.Options))
		}
		if len(res.Options) != len(seeded) {
			t.Fatalf("%q offered %d options, seeded %d", name, len(res.Options), len(seeded))
		}
	}
	if len(geocoder.queries) != 0 {
		t.Fatalf("table hits must not reach the geocoder, saw %v", geocoder.queries)
	}
}

func TestResolveSemanticAmbiguity(t *testing.T) {
	geocoder := &fakeGeocoder{}
	semantic := &fakeAmbiguity{report: geo.AmbiguityReport{
		Ambiguous: true,
		Options: []geo.DisambiguationOption{
			{DisplayName: "Greenville, South Carolina", Country: "United States", Region: "South Carolina", SearchQuery: "Greenville, South Carolina, USA"},
			{DisplayName: "Greenville, North Carolina", Country: "United States", Region: "North Carolina", SearchQuery: "Greenville, North Carolina, USA"},
		},
	}}
	r := NewResolver(seededStore(), geocoder, semantic)

	res, err := r.Resolve(context.Background(), "Greenville")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusNeedsDisambiguation || len(res.Options) != 2 {
		t.Fatalf("expected semantic disambiguation, got %s with %d options", res.Status, len(res.Options))
	}
	if semantic.calls != 1 {
		t.Fatalf("expected one semantic call, got %d", semantic.calls)
	}
}

func TestResolveSemanticSkippedForQualifiedPhrases(t *testing.T) {
	semantic := &fakeAmbiguity{report: geo.AmbiguityReport{Ambiguous: true}}
	geocoder := &fakeGeocoder{results: map[string]*geo.Location{
		"Greenville, South Carolina": {DisplayName: "raw", City: "Greenville", State: "South Carolina", Country: "United States", CountryCode: "us", Latitude: 34.85, Longitude: -82.4},
	}}
	r := NewResolver(seededStore(), geocoder, semantic)

	res, err := r.Resolve(context.Background(), "Greenville, South Carolina")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusResolved {
		t.Fatalf("expected resolution, got %s", res.Status)
	}
	if semantic.calls != 0 {
		t.Fatalf("comma phrases must skip the ambiguity check, got %d calls", semantic.calls)
	}
}

func TestResolveSemanticFailureFallsThroughToGeocode(t *testing.T) {
	semantic := &fakeAmbiguity{err: errors.New("model offline")}
	geocoder := &fakeGeocoder{results: map[string]*geo.Location{
		"Zanzibar": {DisplayName: "Zanzibar, Tanzania", City: "Zanzibar", Country: "Tanzania", CountryCode: "tz", Latitude: -6.16, Longitude: 39.2},
	}}
	r := NewResolver(seededStore(), geocoder, semantic)

	res, err := r.Resolve(context.Background(), "Zanzibar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusResolved {
		t.Fatalf("expected geocode fallback to resolve, got %s", res.Status)
	}
}

func TestResolveRetriesAlternativeFormats(t *testing.T) {
	geocoder := &fakeGeocoder{results: map[string]*geo.Location{
		"Carson City, USA": {DisplayName: "raw", City: "Carson City", State: "Nevada", Country: "United States", CountryCode: "us", Latitude: 39.16, Longitude: -119.75},
	}}
	r := NewResolver(seededStore(), geocoder, nil)

	res, err := r.Resolve(context.Background(), "Carson City")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusResolved {
		t.Fatalf("expected retry to resolve, got %s", res.Status)
	}
	if len(geocoder.queries) != 2 || geocoder.queries[0] != "Carson City" || geocoder.queries[1] != "Carson City, USA" {
		t.Fatalf("unexpected query sequence %v", geocoder.queries)
	}
}

func TestResolveRetryBudgetIsBounded(t *testing.T) {
	geocoder := &fakeGeocoder{}
	r := NewResolver(seededStore(), geocoder, nil)

	res, err := r.Resolve(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusNotFound {
		t.Fatalf("expected not-found, got %s", res.Status)
	}
	if len(geocoder.queries) > 1+maxRetryFormats {
		t.Fatalf("retry budget exceeded: %v", geocoder.queries)
	}
}

func TestResolveCanonicalizesCountryNicknames(t *testing.T) {
	geocoder := &fakeGeocoder{results: map[string]*geo.Location{
		"United Kingdom": {DisplayName: "United Kingdom", Country: "United Kingdom", CountryCode: "gb", Latitude: 54.7, Longitude: -3.2},
	}}
	r := NewResolver(seededStore(), geocoder, nil)

	res, err := r.Resolve(context.Background(), "britain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusResolved {
		t.Fatalf("expected canonicalized resolution, got %s", res.Status)
	}
	if geocoder.queries[0] != "United Kingdom" {
		t.Fatalf("expected canonical query first, got %v", geocoder.queries)
	}
}

func TestResolveGeocoderFailureIsAnError(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("connection refused")}
	r := NewResolver(seededStore(), geocoder, nil)

	if _, err := r.Resolve(context.Background(), "Lisbon"); err == nil {
		t.Fatalf("expected collaborator failure to surface as an error")
	}
}

func TestResolveNormalizesDisplayName(t *testing.T) {
	cases := []struct {
		location *geo.Location
		expected string
	}{
		{
			location: &geo.Location{DisplayName: "Las Vegas, Clark County, Nevada, United States", City: "Las Vegas", State: "Nevada", Country: "United States", CountryCode: "us"},
			expected: "Las Vegas, Nevada, United States",
		},
		{
			location: &geo.Location{DisplayName: "Nairobi, Kenya", City: "Nairobi", Country: "Kenya", CountryCode: "ke"},
			expected: "Nairobi, Kenya",
		},
		{
			location: &geo.Location{DisplayName: "Bavaria, Germany", State: "Bavaria", Country: "Germany", CountryCode: "de"},
			expected: "Bavaria, Germany",
		},
		{
			location: &geo.Location{DisplayName: "Somewhere remote"},
			expected: "Somewhere remote",
		},
	}
	for _, tc := range cases {
		if got := preferredDisplayName(tc.location); got != tc.expected {
			t.Fatalf("expected %q, got %q", tc.expected, got)
		}
	}
}

func TestSanitizeStripsLeadInsAndPunctuation(t *testing.T) {
	cases := map[string]string{
		"I live in Boston!":       "Boston",
		"near Lake Tahoe":         "Lake Tahoe",
		"from Ohio":               "Ohio",
		"  Portland, Oregon  ":    "Portland, Oregon",
		"St. John's":              "St. John s",
		"What about... Winnipeg?": "What about... Winnipeg",
	}
	for input, expected := range cases {
		if got := Sanitize(input); got != expected {
			t.Fatalf("Sanitize(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestSelectOptionExact(t *testing.T) {
	options := parisOptions()
	option, ok := SelectOption("Paris, Texas", options)
	if !ok || option.Region != "Texas" {
		t.Fatalf("expected exact selection of Texas, got %+v ok=%v", option, ok)
	}
}

func TestSelectOptionSubstring(t *testing.T) {
	options := parisOptions()
	option, ok := SelectOption("the one in france", options)
	if !ok || option.Country != "France" {
		t.Fatalf("expected France via substring, got %+v ok=%v", option, ok)
	}

	option, ok = SelectOption("texas", options)
	if !ok || option.Region != "Texas" {
		t.Fatalf("expected Texas via region substring, got %+v ok=%v", option, ok)
	}
}

func TestSelectOptionIndex(t *testing.T) {
	options := parisOptions()
	option, ok := SelectOption("2", options)
	if !ok || option.Region != "Texas" {
		t.Fatalf("expected second option via index, got %+v ok=%v", option, ok)
	}
	if _, ok := SelectOption("9", options); ok {
		t.Fatalf("out-of-range index must not select")
	}
}

func TestSelectOptionNoMatch(t *testing.T) {
	options := parisOptions()
	for _, reply := range []string{"", "berlin", "yes"} {
		if _, ok := SelectOption(reply, options); ok {
			t.Fatalf("expected no selection for %q", reply)
		}
	}
}

func parisOptions() []geo.DisambiguationOption {
	store := seededStore()
	options, ok := store.AmbiguousPlace("paris")
	if !ok {
		panic("paris missing from seed table")
	}
	return options
}
