package gazetteer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
)

// Store exposes the static lookup tables the classifier and resolver consult
// before reaching for any remote collaborator.
type Store interface {
	IsCountry(name string) bool
	IsRegion(name string) bool
	IsAnimal(name string) bool
	Animals() []string
	AmbiguousPlace(name string) ([]geo.DisambiguationOption, bool)
	IsFiller(message string) bool
	CanonicalCountry(name string) (string, bool)
}

// Data bundles the seed tables a MemoryStore is built from.
type Data struct {
	Countries       []string
	Regions         []string
	Animals         []string
	AmbiguousPlaces map[string][]geo.DisambiguationOption
	Fillers         []string
	CountryAliases  map[string]string
}

// MemoryStore implements Store with normalized in-memory maps.
type MemoryStore struct {
	countries map[string]struct{}
	regions   map[string]struct{}
	animals   map[string]struct{}
	ambiguous map[string][]geo.DisambiguationOption
	fillers   map[string]struct{}
	aliases   map[string]string
	animalLst []string
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// NewMemoryStore returns a MemoryStore preloaded with the supplied tables.
func NewMemoryStore(data Data) *MemoryStore {
	s := &MemoryStore{
		countries: make(map[string]struct{}, len(data.Countries)),
		regions:   make(map[string]struct{}, len(data.Regions)),
		animals:   make(map[string]struct{}, len(data.Animals)),
		ambiguous: make(map[string][]geo.DisambiguationOption, len(data.AmbiguousPlaces)),
		fillers:   make(map[string]struct{}, len(data.Fillers)),
		aliases:   make(map[string]string, len(data.CountryAliases)),
	}
	for _, name := range data.Countries {
		s.countries[Normalize(name)] = struct{}{}
	}
	for _, name := range data.Regions {
		s.regions[Normalize(name)] = struct{}{}
	}
	for _, name := range data.Animals {
		key := Normalize(name)
		if _, seen := s.animals[key]; seen {
			continue
		}
		s.animals[key] = struct{}{}
		s.animalLst = append(s.animalLst, strings.ToLower(strings.TrimSpace(name)))
	}
	sort.Strings(s.animalLst)
	for name, options := range data.AmbiguousPlaces {
		s.ambiguous[Normalize(name)] = append([]geo.DisambiguationOption(nil), options...)
	}
	for _, word := range data.Fillers {
		s.fillers[Normalize(word)] = struct{}{}
	}
	for alias, canonical := range data.CountryAliases {
		s.aliases[Normalize(alias)] = canonical
	}
	return s
}

// Normalize lowercases, trims, and collapses inner whitespace so lookups
// survive casual typing.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// IsCountry reports whether name is a known country.
func (s *MemoryStore) IsCountry(name string) bool {
	_, ok := s.countries[Normalize(name)]
	return ok
}

// IsRegion reports whether name is a known state or province.
func (s *MemoryStore) IsRegion(name string) bool {
	_, ok := s.regions[Normalize(name)]
	return ok
}

// IsAnimal reports whether name is a known common animal name. A trailing
// plural "s" is tolerated.
func (s *MemoryStore) IsAnimal(name string) bool {
	key := Normalize(name)
	if _, ok := s.animals[key]; ok {
		return true
	}
	if strings.HasSuffix(key, "s") {
		if _, ok := s.animals[strings.TrimSuffix(key, "s")]; ok {
			return true
		}
	}
	return false
}

// Animals returns the seeded animal names, sorted, for the public endpoint.
func (s *MemoryStore) Animals() []string {
	return append([]string(nil), s.animalLst...)
}

// AmbiguousPlace returns the curated readings of a famously ambiguous bare
// place name, if it is one.
func (s *MemoryStore) AmbiguousPlace(name string) ([]geo.DisambiguationOption, bool) {
	options, ok := s.ambiguous[Normalize(name)]
	if !ok {
		return nil, false
	}
	return append([]geo.DisambiguationOption(nil), options...), true
}

// IsFiller reports whether the message carries no searchable signal:
// greetings, acknowledgements, bare digits, or punctuation-only noise.
func (s *MemoryStore) IsFiller(message string) bool {
	key := Normalize(strings.Trim(message, ".,!?;:'\"()-"))
	if key == "" {
		return true
	}
	if digitsOnly.MatchString(key) {
		return true
	}
	_, ok := s.fillers[key]
	return ok
}

// CanonicalCountry maps a colloquial country name onto the form geocoders
// index ("england" to "United Kingdom").
func (s *MemoryStore) CanonicalCountry(name string) (string, bool) {
	canonical, ok := s.aliases[Normalize(name)]
	return canonical, ok
}
