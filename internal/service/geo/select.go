package geo

import (
	"strconv"
	"strings"

	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
)

// minContainmentLen keeps one-character replies from claiming substring hits
// so that bare digits fall through to index selection.
const minContainmentLen = 2

// SelectOption matches a user reply against the active disambiguation
// options: exact display-name equality first, then substring containment in
// either direction against display name, region, and country, then a bare
// integer as a 1-based index. A false return means the turn should re-show
// the options unchanged.
func SelectOption(reply string, options []geo.DisambiguationOption) (geo.DisambiguationOption, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(reply))
	if trimmed == "" || len(options) == 0 {
		return geo.DisambiguationOption{}, false
	}

	for _, option := range options {
		if strings.ToLower(option.DisplayName) == trimmed {
			return option, true
		}
	}

	if len(trimmed) >= minContainmentLen {
		for _, option := range options {
			for _, field := range []string{option.DisplayName, option.Region, option.Country} {
				candidate := strings.ToLower(field)
				if len(candidate) < minContainmentLen {
					continue
				}
				if strings.Contains(candidate, trimmed) || strings.Contains(trimmed, candidate) {
					return option, true
				}
			}
		}
	}

	if index, err := strconv.Atoi(trimmed); err == nil && index >= 1 && index <= len(options) {
		return options[index-1], true
	}

	return geo.DisambiguationOption{}, false
}
