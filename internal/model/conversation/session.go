package conversation

import (
	"time"

	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
)

// Session captures a transient anonymous conversation. Stage-scoped fields
// (candidates, options, pending animal) are only meaningful in the stage
// that set them and are cleared by the transition that leaves it.
type Session struct {
	ID                    string                     `json:"id"`
	Stage                 Stage                      `json:"stage"`
	Mode                  Mode                       `json:"mode,omitempty"`
	Location              *geo.Location              `json:"location,omitempty"`
	SpeciesCandidates     []taxon.Species            `json:"speciesCandidates,omitempty"`
	DisambiguationOptions []geo.DisambiguationOption `json:"disambiguationOptions,omitempty"`
	SelectedAnimal        *taxon.Species             `json:"selectedAnimal,omitempty"`
	PendingAnimal         string                     `json:"pendingAnimal,omitempty"`
	CreatedAt             time.Time                  `json:"createdAt"`
	UpdatedAt             time.Time                  `json:"updatedAt"`
}

// NewSession returns a fresh session at the initial stage.
func NewSession(id string) Session {
	now := time.Now().UTC()
	return Session{
		ID:        id,
		Stage:     StageInitial,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone deep-copies the session so a turn can be computed on a scratch copy
// and committed only after every collaborator call succeeded.
func (s Session) Clone() Session {
	out := s
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	if s.SelectedAnimal != nil {
		animal := *s.SelectedAnimal
		out.SelectedAnimal = &animal
	}
	if len(s.SpeciesCandidates) > 0 {
		out.SpeciesCandidates = make([]taxon.Species, len(s.SpeciesCandidates))
		copy(out.SpeciesCandidates, s.SpeciesCandidates)
	}
	if len(s.DisambiguationOptions) > 0 {
		out.DisambiguationOptions = make([]geo.DisambiguationOption, len(s.DisambiguationOptions))
		copy(out.DisambiguationOptions, s.DisambiguationOptions)
	}
	return out
}

// ResetForNewLocation drops everything tied to the previous place so a new
// location search starts clean. Identity and creation time survive.
func (s *Session) ResetForNewLocation() {
	s.Location = nil
	s.SpeciesCandidates = nil
	s.DisambiguationOptions = nil
	s.SelectedAnimal = nil
	s.Stage = StageAwaitingLocation
}

// Restart wipes the whole search after a completed run, keeping only the
// session identity.
func (s *Session) Restart() {
	s.ResetForNewLocation()
	s.Mode = ""
	s.PendingAnimal = ""
}

// Touch stamps the last-modified time; stores call it right before a write.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}
