package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kestrelbay/wildscope/backend/internal/analysis/intent"
	"github.com/kestrelbay/wildscope/backend/internal/analysis/match"
	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
	"github.com/kestrelbay/wildscope/backend/internal/model/geo"
	"github.com/kestrelbay/wildscope/backend/internal/model/taxon"
	geoService "github.com/kestrelbay/wildscope/backend/internal/service/geo"
)

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrSessionRequired = errors.New("session id is required")
)

// Classifier reads the intent of a freeform message.
type Classifier interface {
	Classify(ctx context.Context, message string) intent.Verdict
}

// Resolver maps a location phrase to a place, an option set, or nothing.
type Resolver interface {
	Resolve(ctx context.Context, phrase string) (geoService.Resolution, error)
}

// SpeciesFinder lists animals recently observed around a location.
type SpeciesFinder interface {
	ForLocation(ctx context.Context, location geo.Location) ([]taxon.Species, error)
}

// OrgFinder lists conservation organizations for an animal within a scope.
type OrgFinder interface {
	ForAnimal(ctx context.Context, animalName, scopeName string) ([]taxon.Organization, error)
}

// AnimalMatcher matches a message against the active candidate list.
type AnimalMatcher interface {
	Match(message string, candidates []taxon.Species) (taxon.Species, match.Verdict)
}

// Engine drives the conversation state machine. Each turn is computed on a
// copy of the session and committed only when every collaborator call
// succeeded, so a failed turn leaves the stored session untouched.
type Engine struct {
	store      Store
	classifier Classifier
	resolver   Resolver
	species    SpeciesFinder
	orgs       OrgFinder
	matcher    AnimalMatcher

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(store Store, classifier Classifier, resolver Resolver, species SpeciesFinder, orgs OrgFinder, matcher AnimalMatcher) *Engine {
	return &Engine{
		store:      store,
		classifier: classifier,
		resolver:   resolver,
		species:    species,
		orgs:       orgs,
		matcher:    matcher,
		locks:      make(map[string]*sync.Mutex),
	}
}

const welcomeGuidance = `Tell me a place you're curious about, like "Las Vegas" or "Kenya", and I'll show you the wildlife living there.`

// worldwideScope is the scope name attached to organizations fetched without
// a geographic anchor.
const worldwideScope = "worldwide"

var worldwideReplies = map[string]struct{}{
	"worldwide":  {},
	"world":      {},
	"global":     {},
	"globally":   {},
	"anywhere":   {},
	"everywhere": {},
}

// HandleTurn advances the session identified by sessionID with one user
// message. Unknown session ids start a fresh session. The returned error is
// reserved for caller mistakes (empty input) and storage failures;
// collaborator outages surface as an OutcomeUnavailable with the session
// left unchanged.
func (e *Engine) HandleTurn(ctx context.Context, sessionID, message string) (conversation.Outcome, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return conversation.Outcome{}, ErrEmptyMessage
	}
	if sessionID == "" {
		return conversation.Outcome{}, ErrSessionRequired
	}

	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	stored, err := e.store.Get(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		stored = conversation.NewSession(sessionID)
	} else if err != nil {
		return conversation.Outcome{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	working := stored.Clone()
	outcome, err := e.step(ctx, &working, trimmed)
	if err != nil {
		log.Printf("[conversation] turn failed for session %s at stage %s: %v", sessionID, stored.Stage, err)
		return conversation.Outcome{Kind: conversation.OutcomeUnavailable, Stage: stored.Stage}, nil
	}

	working.Touch()
	if err := e.store.Put(ctx, working); err != nil {
		return conversation.Outcome{}, fmt.Errorf("persist session %s: %w", sessionID, err)
	}
	return outcome, nil
}

// StartSession provisions an anonymous session at the initial stage so
// clients can hold an id before the first message.
func (e *Engine) StartSession(ctx context.Context) (conversation.Session, error) {
	sess := conversation.NewSession(uuid.NewString())
	if err := e.store.Put(ctx, sess); err != nil {
		return conversation.Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Snapshot returns the current stored state of a session.
func (e *Engine) Snapshot(ctx context.Context, sessionID string) (conversation.Session, error) {
	return e.store.Get(ctx, sessionID)
}

func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[sessionID] = lock
	}
	return lock
}

func (e *Engine) step(ctx context.Context, sess *conversation.Session, message string) (conversation.Outcome, error) {
	switch sess.Stage {
	case conversation.StageInitial:
		return e.stepInitial(ctx, sess, message)
	case conversation.StageAwaitingLocation:
		return e.resolveLocationTurn(ctx, sess, message)
	case conversation.StageDisambiguation:
		return e.stepDisambiguation(ctx, sess, message)
	case conversation.StageAwaitingAnimal:
		return e.stepAwaitingAnimal(ctx, sess, message)
	case conversation.StageAwaitingAnimalLocation:
		return e.stepAwaitingAnimalLocation(ctx, sess, message)
	case conversation.StageCompleted:
		return e.stepCompleted(sess)
	default:
		log.Printf("[conversation] session %s carried unknown stage %q, restarting", sess.ID, sess.Stage)
		sess.Restart()
		return conversation.Outcome{
			Kind:      conversation.OutcomeNeedsLocation,
			Stage:     sess.Stage,
			Guidance:  welcomeGuidance,
			Restarted: true,
		}, nil
	}
}

// stepInitial routes the opening message. An animal name flips the session
// into animal-first mode; anything place-shaped starts the location flow; a
// greeting keeps the session at initial so the next message is still free to
// pick either opening.
func (e *Engine) stepInitial(ctx context.Context, sess *conversation.Session, message string) (conversation.Outcome, error) {
	switch e.classifier.Classify(ctx, message) {
	case intent.VerdictAnimal:
		sess.Mode = conversation.ModeAnimalFirst
		sess.PendingAnimal = message
		sess.Stage = conversation.StageAwaitingAnimalLocation
		return conversation.Outcome{
			Kind:      conversation.OutcomeNeedsAnimalScope,
			Stage:     sess.Stage,
			Attempted: message,
		}, nil
	case intent.VerdictNone:
		return conversation.Outcome{
			Kind:     conversation.OutcomeNeedsLocation,
			Stage:    sess.Stage,
			Guidance: welcomeGuidance,
		}, nil
	default:
		sess.Mode = conversation.ModeLocationFirst
		return e.resolveLocationTurn(ctx, sess, message)
	}
}

// resolveLocationTurn runs one location resolution attempt and applies its
// result to the session. It is shared by the initial, awaiting-location, and
// disambiguation stages.
func (e *Engine) resolveLocationTurn(ctx context.Context, sess *conversation.Session, phrase string) (conversation.Outcome, error) {
	if sess.Mode == "" {
		sess.Mode = conversation.ModeLocationFirst
	}

	resolution, err := e.resolver.Resolve(ctx, phrase)
	if err != nil {
		return conversation.Outcome{}, err
	}

	switch resolution.Status {
	case geoService.StatusResolved:
		return e.presentSpecies(ctx, sess, *resolution.Location)
	case geoService.StatusNeedsDisambiguation:
		sess.Location = nil
		sess.SpeciesCandidates = nil
		sess.DisambiguationOptions = resolution.Options
		sess.Stage = conversation.StageDisambiguation
		return conversation.Outcome{
			Kind:    conversation.OutcomeNeedsDisambiguation,
			Stage:   sess.Stage,
			Options: resolution.Options,
		}, nil
	default:
		sess.Stage = conversation.StageAwaitingLocation
		return conversation.Outcome{
			Kind:     conversation.OutcomeNeedsLocation,
			Stage:    sess.Stage,
			Guidance: resolution.Guidance,
		}, nil
	}
}

// presentSpecies fetches the candidate list for a freshly resolved location
// and moves the session to awaiting-animal. A location with no recent
// observations sends the user back to awaiting-location instead of offering
// an empty list.
func (e *Engine) presentSpecies(ctx context.Context, sess *conversation.Session, location geo.Location) (conversation.Outcome, error) {
	candidates, err := e.species.ForLocation(ctx, location)
	if err != nil {
		return conversation.Outcome{}, err
	}
	if len(candidates) == 0 {
		sess.Stage = conversation.StageAwaitingLocation
		return conversation.Outcome{
			Kind:     conversation.OutcomeNeedsLocation,
			Stage:    sess.Stage,
			Guidance: fmt.Sprintf("I couldn't find recent wildlife observations around %s. Try a nearby larger city or a wider region.", location.DisplayName),
		}, nil
	}

	sess.Location = &location
	sess.SpeciesCandidates = candidates
	sess.DisambiguationOptions = nil
	sess.SelectedAnimal = nil
	sess.Stage = conversation.StageAwaitingAnimal
	return conversation.Outcome{
		Kind:     conversation.OutcomeShowSpecies,
		Stage:    sess.Stage,
		Location: sess.Location,
		Species:  candidates,
	}, nil
}

func (e *Engine) stepDisambiguation(ctx context.Context, sess *conversation.Session, message string) (conversation.Outcome, error) {
	option, ok := geoService.SelectOption(message, sess.DisambiguationOptions)
	if !ok {
		return conversation.Outcome{
			Kind:     conversation.OutcomeNeedsDisambiguation,
			Stage:    sess.Stage,
			Options:  sess.DisambiguationOptions,
			Guidance: "Pick one of the numbered places, by number or by name.",
		}, nil
	}
	return e.resolveLocationTurn(ctx, sess, option.SearchQuery)
}

// stepAwaitingAnimal matches the message against the active candidate list.
// A miss that reads as a place switches the search there in the same turn,
// discarding the previous location and its candidates.
func (e *Engine) stepAwaitingAnimal(ctx context.Context, sess *conversation.Session, message string) (conversation.Outcome, error) {
	selected, verdict := e.matcher.Match(message, sess.SpeciesCandidates)
	switch verdict {
	case match.VerdictMatched:
		return e.presentOrganizations(ctx, sess, selected)
	case match.VerdictNonAnimal:
		return conversation.Outcome{
			Kind:     conversation.OutcomeRejected,
			Stage:    sess.Stage,
			Reason:   conversation.RejectFiller,
			Location: sess.Location,
			Species:  sess.SpeciesCandidates,
		}, nil
	}

	if e.classifier.Classify(ctx, message) == intent.VerdictLocation {
		sess.ResetForNewLocation()
		return e.resolveLocationTurn(ctx, sess, message)
	}

	return conversation.Outcome{
		Kind:      conversation.OutcomeRejected,
		Stage:     sess.Stage,
		Reason:    conversation.RejectNoMatch,
		Attempted: message,
		Location:  sess.Location,
		Species:   sess.SpeciesCandidates,
	}, nil
}

// presentOrganizations completes a location-first search for the selected
// candidate, scoped to the resolved location.
func (e *Engine) presentOrganizations(ctx context.Context, sess *conversation.Session, selected taxon.Species) (conversation.Outcome, error) {
	scope := worldwideScope
	if sess.Location != nil {
		scope = sess.Location.DisplayName
	}

	organizations, err := e.orgs.ForAnimal(ctx, selected.CommonName, scope)
	if err != nil {
		return conversation.Outcome{}, err
	}

	sess.SelectedAnimal = &selected
	sess.SpeciesCandidates = nil
	sess.Stage = conversation.StageCompleted
	return conversation.Outcome{
		Kind:          conversation.OutcomeShowOrganizations,
		Stage:         sess.Stage,
		Location:      sess.Location,
		Animal:        sess.SelectedAnimal,
		Organizations: organizations,
		ScopeName:     scope,
	}, nil
}

// stepAwaitingAnimalLocation handles the animal-first follow-up: the user
// already named an animal and owes us a geographic scope, a refinement of
// the animal name, or "worldwide".
func (e *Engine) stepAwaitingAnimalLocation(ctx context.Context, sess *conversation.Session, message string) (conversation.Outcome, error) {
	if isWorldwideReply(message) {
		return e.completeAnimalFirst(ctx, sess, sess.PendingAnimal, worldwideScope, nil)
	}

	switch e.classifier.Classify(ctx, message) {
	case intent.VerdictAnimal:
		sess.PendingAnimal = message
		return e.completeAnimalFirst(ctx, sess, message, worldwideScope, nil)
	case intent.VerdictLocation, intent.VerdictAmbiguous:
		resolution, err := e.resolver.Resolve(ctx, message)
		if err != nil {
			return conversation.Outcome{}, err
		}
		if resolution.Status == geoService.StatusResolved {
			return e.completeAnimalFirst(ctx, sess, sess.PendingAnimal, resolution.Location.DisplayName, resolution.Location)
		}
		guidance := resolution.Guidance
		if guidance == "" {
			guidance = fmt.Sprintf("That place name is shared by several regions. Name one precisely, or say %q.", worldwideScope)
		}
		return conversation.Outcome{
			Kind:      conversation.OutcomeNeedsAnimalScope,
			Stage:     sess.Stage,
			Attempted: sess.PendingAnimal,
			Guidance:  guidance,
		}, nil
	default:
		return conversation.Outcome{
			Kind:      conversation.OutcomeNeedsAnimalScope,
			Stage:     sess.Stage,
			Attempted: sess.PendingAnimal,
			Guidance:  fmt.Sprintf("Name a place to focus the search, or say %q.", worldwideScope),
		}, nil
	}
}

// completeAnimalFirst finishes an animal-first search. The selected animal is
// synthesized from the user's own words since no candidate list exists on
// this path.
func (e *Engine) completeAnimalFirst(ctx context.Context, sess *conversation.Session, animalName, scope string, location *geo.Location) (conversation.Outcome, error) {
	organizations, err := e.orgs.ForAnimal(ctx, animalName, scope)
	if err != nil {
		return conversation.Outcome{}, err
	}

	sess.Location = location
	sess.SelectedAnimal = &taxon.Species{CommonName: animalName}
	sess.Stage = conversation.StageCompleted
	return conversation.Outcome{
		Kind:          conversation.OutcomeShowOrganizations,
		Stage:         sess.Stage,
		Location:      location,
		Animal:        sess.SelectedAnimal,
		Organizations: organizations,
		ScopeName:     scope,
	}, nil
}

// stepCompleted resets the finished session; any message starts a new search
// regardless of its content.
func (e *Engine) stepCompleted(sess *conversation.Session) (conversation.Outcome, error) {
	sess.Restart()
	return conversation.Outcome{
		Kind:      conversation.OutcomeNeedsLocation,
		Stage:     sess.Stage,
		Guidance:  welcomeGuidance,
		Restarted: true,
	}, nil
}

func isWorldwideReply(message string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(message))
	cleaned = strings.Trim(cleaned, "!?. ")
	_, ok := worldwideReplies[cleaned]
	return ok
}
