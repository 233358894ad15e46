package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
)

// Verdict is the classifier's reading of a freeform message.
type Verdict string

const (
	// VerdictLocation means the message names a place to explore.
	VerdictLocation Verdict = "LOCATION"
	// VerdictAnimal means the message names an animal.
	VerdictAnimal Verdict = "ANIMAL"
	// VerdictAmbiguous means the message is a name shared by a place and
	// an animal ("turkey"); callers route it down the location path.
	VerdictAmbiguous Verdict = "AMBIGUOUS"
	// VerdictNone means the message carries no classifiable signal and the
	// caller should re-prompt.
	VerdictNone Verdict = "NONE"
)

// SemanticFallback is the external classifier consulted only after every
// heuristic has passed. Implementations return VerdictLocation or
// VerdictAnimal.
type SemanticFallback interface {
	InputType(ctx context.Context, message string) (Verdict, error)
}

// Classifier layers cheap pattern heuristics over the seeded gazetteer and
// falls back to a semantic collaborator for everything else.
type Classifier struct {
	gazetteer gazetteer.Store
	fallback  SemanticFallback
}

// New builds a Classifier. fallback may be nil; unresolved messages then
// default to the location path.
func New(store gazetteer.Store, fallback SemanticFallback) *Classifier {
	return &Classifier{gazetteer: store, fallback: fallback}
}

var (
	locativePhrase = regexp.MustCompile(`(?i)\b(?:in|near|from)\s+\S`)
	commaPair      = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]*,\s*[A-Za-z][A-Za-z .'-]*$`)
)

// descriptivePrefixes are adjectives users prepend to animal names; they are
// stripped one at a time from the left until the rest hits the gazetteer.
var descriptivePrefixes = map[string]struct{}{
	"american": {}, "arctic": {}, "black": {}, "blue": {}, "common": {},
	"desert": {}, "dwarf": {}, "eastern": {}, "european": {}, "giant": {},
	"golden": {}, "gray": {}, "great": {}, "greater": {}, "green": {},
	"grey": {}, "lesser": {}, "little": {}, "mountain": {}, "northern": {},
	"pygmy": {}, "red": {}, "river": {}, "sea": {}, "southern": {},
	"spotted": {}, "striped": {}, "western": {}, "white": {}, "wild": {},
}

// heuristic pairs a name with a pure predicate so each rule is testable on
// its own and the cascade order stays explicit.
type heuristic struct {
	name  string
	apply func(c *Classifier, message string) (Verdict, bool)
}

var heuristics = []heuristic{
	{name: "locative-phrase", apply: (*Classifier).byLocativePhrase},
	{name: "comma-pair", apply: (*Classifier).byCommaPair},
	{name: "gazetteer", apply: (*Classifier).byGazetteer},
}

// Classify walks the heuristic cascade, first match wins. Non-signal input
// (under 3 characters, greetings, bare digits) is rejected as VerdictNone
// before any heuristic runs.
func (c *Classifier) Classify(ctx context.Context, message string) Verdict {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < 3 {
		return VerdictNone
	}
	if c.gazetteer != nil && c.gazetteer.IsFiller(trimmed) {
		return VerdictNone
	}

	for _, h := range heuristics {
		if verdict, ok := h.apply(c, trimmed); ok {
			return verdict
		}
	}

	if c.fallback != nil {
		if verdict, err := c.fallback.InputType(ctx, trimmed); err == nil {
			if verdict == VerdictAnimal || verdict == VerdictLocation {
				return verdict
			}
		}
	}
	return VerdictLocation
}

func (c *Classifier) byLocativePhrase(message string) (Verdict, bool) {
	if locativePhrase.MatchString(message) {
		return VerdictLocation, true
	}
	return VerdictNone, false
}

func (c *Classifier) byCommaPair(message string) (Verdict, bool) {
	if commaPair.MatchString(message) {
		return VerdictLocation, true
	}
	return VerdictNone, false
}

// byGazetteer consults the place and animal tables together so that a name
// living in both ("turkey") surfaces as VerdictAmbiguous instead of letting
// table order decide silently.
func (c *Classifier) byGazetteer(message string) (Verdict, bool) {
	if c.gazetteer == nil {
		return VerdictNone, false
	}
	isPlace := c.gazetteer.IsCountry(message) || c.gazetteer.IsRegion(message)
	isAnimal := c.isAnimalName(message)
	switch {
	case isPlace && isAnimal:
		return VerdictAmbiguous, true
	case isPlace:
		return VerdictLocation, true
	case isAnimal:
		return VerdictAnimal, true
	}
	return VerdictNone, false
}

// isAnimalName accepts an exact gazetteer hit or one reachable by peeling
// descriptive prefixes off the left ("striped skunk" -> "skunk").
func (c *Classifier) isAnimalName(message string) bool {
	if c.gazetteer.IsAnimal(message) {
		return true
	}
	words := strings.Fields(strings.ToLower(message))
	for len(words) > 1 {
		if _, ok := descriptivePrefixes[words[0]]; !ok {
			break
		}
		words = words[1:]
		if c.gazetteer.IsAnimal(strings.Join(words, " ")) {
			return true
		}
	}
	return false
}
