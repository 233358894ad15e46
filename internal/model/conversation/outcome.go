package conversation

import (
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
)

// OutcomeKind tags what a turn produced. The formatter switches over every
// kind, so transports can only ever render states the engine can reach.
type OutcomeKind string

const (
	// OutcomeNeedsLocation asks the user for a place to explore.
	OutcomeNeedsLocation OutcomeKind = "needs-location"
	// OutcomeNeedsDisambiguation asks the user to pick one of Options.
	OutcomeNeedsDisambiguation OutcomeKind = "needs-disambiguation"
	// OutcomeShowSpecies presents the candidate animals near Location.
	OutcomeShowSpecies OutcomeKind = "show-species"
	// OutcomeShowOrganizations presents conservation groups for Animal.
	OutcomeShowOrganizations OutcomeKind = "show-organizations"
	// OutcomeNeedsAnimalScope asks where to look for groups protecting the
	// animal the user led with.
	OutcomeNeedsAnimalScope OutcomeKind = "needs-animal-scope"
	// OutcomeRejected re-prompts without changing stage; Reason says why.
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomeUnavailable reports a collaborator failure. The session is
	// left exactly as it was before the turn.
	OutcomeUnavailable OutcomeKind = "unavailable"
)

// RejectReason distinguishes guardrail rejections from honest misses so the
// caller can phrase the re-prompt accordingly.
type RejectReason string

const (
	// RejectFiller means the message was a greeting, bare number, or other
	// non-signal input.
	RejectFiller RejectReason = "filler"
	// RejectNoMatch means the message looked like an animal but matched no
	// candidate on the list.
	RejectNoMatch RejectReason = "no-match"
)

// Outcome is everything a single turn decided. Only the fields relevant to
// Kind are populated; Stage always carries the stage the session is in after
// the turn.
type Outcome struct {
	Kind          OutcomeKind                `json:"kind"`
	Stage         Stage                      `json:"stage"`
	Reason        RejectReason               `json:"reason,omitempty"`
	Guidance      string                     `json:"guidance,omitempty"`
	Attempted     string                     `json:"attempted,omitempty"`
	Restarted     bool                       `json:"restarted,omitempty"`
	Location      *geo.Location              `json:"location,omitempty"`
	Options       []geo.DisambiguationOption `json:"options,omitempty"`
	Species       []taxon.Species            `json:"species,omitempty"`
	Animal        *taxon.Species             `json:"animal,omitempty"`
	Organizations []taxon.Organization       `json:"organizations,omitempty"`
	ScopeName     string                     `json:"scopeName,omitempty"`
}

// Completed reports whether the turn finished a full search.
func (o Outcome) Completed() bool {
	return o.Kind == OutcomeShowOrganizations
}
