package match

import (
	"regexp"
	"strings"

	"github.com/kestrelbay/wildscope/backend/internal/model/gazetteer"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
)

// Verdict tells the caller how a match attempt ended. VerdictNonAnimal is
// deliberately distinct from VerdictNoMatch: the first means the message was
// noise, the second that it looked like an animal but hit nothing.
type Verdict string

const (
	VerdictMatched   Verdict = "matched"
	VerdictNoMatch   Verdict = "no-match"
	VerdictNonAnimal Verdict = "non-animal-input"
)

// Config carries the fuzzy thresholds. The defaults are empirical; treat
// them as tuning knobs, not derived values.
type Config struct {
	MinTokenLen   int
	FuzzyTokenLen int
	PrefixLen     int
	MinRatio      float64
	MinHits       int
	MaxMessageLen int
}

// DefaultConfig returns the tuned thresholds.
func DefaultConfig() Config {
	return Config{
		MinTokenLen:   3,
		FuzzyTokenLen: 4,
		PrefixLen:     4,
		MinRatio:      0.7,
		MinHits:       2,
		MaxMessageLen: 100,
	}
}

// Matcher resolves free text against a candidate species list using exact,
// normalized, substring, and fuzzy token-overlap strategies, in that order.
// A later strategy never overrides an earlier one: each strategy scans the
// whole candidate list before the next gets a turn, and within one strategy
// the first candidate in list order wins.
type Matcher struct {
	cfg       Config
	gazetteer gazetteer.Store
}

// New builds a Matcher; store supplies the filler guardrail and may be nil.
func New(cfg Config, store gazetteer.Store) *Matcher {
	return &Matcher{cfg: cfg, gazetteer: store}
}

var statusSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// minSubstringLen keeps two-letter fragments ("ox") from claiming substring
// hits inside longer names ("fox").
const minSubstringLen = 3

// Match finds the candidate the message refers to, or reports why it could
// not.
func (m *Matcher) Match(message string, candidates []taxon.Species) (taxon.Species, Verdict) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" || len(trimmed) > m.cfg.MaxMessageLen {
		return taxon.Species{}, VerdictNonAnimal
	}
	if m.gazetteer != nil && m.gazetteer.IsFiller(trimmed) {
		return taxon.Species{}, VerdictNonAnimal
	}
	if len(candidates) == 0 {
		return taxon.Species{}, VerdictNoMatch
	}

	strategies := []func(string, taxon.Species) bool{
		m.exact,
		m.normalized,
		m.substring,
		m.fuzzy,
	}
	for _, strategy := range strategies {
		for _, candidate := range candidates {
			if strategy(trimmed, candidate) {
				return candidate, VerdictMatched
			}
		}
	}
	return taxon.Species{}, VerdictNoMatch
}

// StripStatusSuffix removes a trailing parenthetical such as the
// conservation annotation lists are rendered with ("Florida Panther
// (Endangered)" -> "Florida Panther").
func StripStatusSuffix(name string) string {
	return strings.TrimSpace(statusSuffix.ReplaceAllString(name, ""))
}

func (m *Matcher) exact(message string, candidate taxon.Species) bool {
	for _, msg := range messageVariants(message) {
		for _, name := range candidateVariants(candidate) {
			if msg == name {
				return true
			}
		}
	}
	return false
}

func (m *Matcher) normalized(message string, candidate taxon.Species) bool {
	msg := taxon.NormalizeName(StripStatusSuffix(message))
	if msg == "" {
		return false
	}
	for _, name := range candidateVariants(candidate) {
		if taxon.NormalizeName(name) == msg {
			return true
		}
	}
	return false
}

func (m *Matcher) substring(message string, candidate taxon.Species) bool {
	msg := strings.ToLower(StripStatusSuffix(message))
	if len(msg) < minSubstringLen {
		return false
	}
	for _, name := range candidateVariants(candidate) {
		if len(name) < minSubstringLen {
			continue
		}
		if strings.Contains(msg, name) || strings.Contains(name, msg) {
			return true
		}
	}
	return false
}

func (m *Matcher) fuzzy(message string, candidate taxon.Species) bool {
	msgTokens := m.tokenize(StripStatusSuffix(message))
	candTokens := m.tokenize(candidate.CommonName)
	if len(msgTokens) == 0 || len(candTokens) == 0 {
		return false
	}

	hits := 0
	for _, mt := range msgTokens {
		if m.tokenHit(mt, candTokens) {
			hits++
		}
	}

	longest := len(msgTokens)
	if len(candTokens) > longest {
		longest = len(candTokens)
	}
	ratio := float64(hits) / float64(longest)
	return ratio >= m.cfg.MinRatio && hits >= m.cfg.MinHits
}

func (m *Matcher) tokenHit(token string, candTokens []string) bool {
	for _, ct := range candTokens {
		if token == ct {
			return true
		}
		if len(token) < m.cfg.FuzzyTokenLen || len(ct) < m.cfg.FuzzyTokenLen {
			continue
		}
		if strings.Contains(token, ct) || strings.Contains(ct, token) {
			return true
		}
		if len(token) >= m.cfg.PrefixLen && len(ct) >= m.cfg.PrefixLen &&
			token[:m.cfg.PrefixLen] == ct[:m.cfg.PrefixLen] {
			return true
		}
	}
	return false
}

func (m *Matcher) tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= m.cfg.MinTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func messageVariants(message string) []string {
	msg := strings.ToLower(strings.TrimSpace(message))
	variants := []string{msg}
	if stripped := strings.ToLower(StripStatusSuffix(message)); stripped != msg {
		variants = append(variants, stripped)
	}
	return variants
}

func candidateVariants(candidate taxon.Species) []string {
	var variants []string
	if common := strings.ToLower(strings.TrimSpace(candidate.CommonName)); common != "" {
		variants = append(variants, common)
		if stripped := strings.ToLower(StripStatusSuffix(candidate.CommonName)); stripped != common {
			variants = append(variants, stripped)
		}
	}
	if sci := strings.ToLower(strings.TrimSpace(candidate.ScientificName)); sci != "" {
		variants = append(variants, sci)
	}
	return variants
}
