package conversation

import (
	"fmt"
	"strings"

	"github.com/kestrelbay/wildscope/backend/internal/model/conversation"
)

// Formatter turns a turn outcome into the conversational reply shown to the
// user. It switches exhaustively over outcome kinds so transports never see
// a state they cannot render.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Render(outcome conversation.Outcome) string {
	switch outcome.Kind {
	case conversation.OutcomeNeedsLocation:
		return f.renderNeedsLocation(outcome)
	case conversation.OutcomeNeedsDisambiguation:
		return f.renderNeedsDisambiguation(outcome)
	case conversation.OutcomeShowSpecies:
		return f.renderShowSpecies(outcome)
	case conversation.OutcomeShowOrganizations:
		return f.renderShowOrganizations(outcome)
	case conversation.OutcomeNeedsAnimalScope:
		return f.renderNeedsAnimalScope(outcome)
	case conversation.OutcomeRejected:
		return f.renderRejected(outcome)
	case conversation.OutcomeUnavailable:
		return "Sorry, part of our wildlife data is temporarily unavailable. Please try again in a moment."
	default:
		return welcomeGuidance
	}
}

func (f *Formatter) renderNeedsLocation(outcome conversation.Outcome) string {
	var b strings.Builder
	if outcome.Restarted {
		b.WriteString("Starting a new search. ")
	}
	if outcome.Guidance != "" {
		b.WriteString(outcome.Guidance)
	} else {
		b.WriteString(welcomeGuidance)
	}
	return b.String()
}

func (f *Formatter) renderNeedsDisambiguation(outcome conversation.Outcome) string {
	var b strings.Builder
	b.WriteString("I know a few places by that name. Which one do you mean?\n")
	for i, option := range outcome.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, option.DisplayLabel())
	}
	if outcome.Guidance != "" {
		b.WriteString(outcome.Guidance)
	} else {
		b.WriteString("Reply with a number or a name.")
	}
	return b.String()
}

func (f *Formatter) renderShowSpecies(outcome conversation.Outcome) string {
	var b strings.Builder
	place := "there"
	if outcome.Location != nil {
		place = outcome.Location.DisplayName
	}
	fmt.Fprintf(&b, "Here's wildlife recently observed around %s:\n", place)
	f.writeSpeciesList(&b, outcome)
	b.WriteString("Which animal would you like to help protect?")
	return b.String()
}

func (f *Formatter) renderShowOrganizations(outcome conversation.Outcome) string {
	var b strings.Builder
	animal := "that animal"
	if outcome.Animal != nil && outcome.Animal.CommonName != "" {
		animal = outcome.Animal.CommonName
	}
	switch {
	case outcome.ScopeName == "" || outcome.ScopeName == worldwideScope:
		fmt.Fprintf(&b, "Here are organizations working to protect the %s worldwide:\n", animal)
	default:
		fmt.Fprintf(&b, "Here are organizations working to protect the %s around %s:\n", animal, outcome.ScopeName)
	}
	for i, org := range outcome.Organizations {
		fmt.Fprintf(&b, "%d. %s", i+1, org.Name)
		if org.Description != "" {
			fmt.Fprintf(&b, " - %s", org.Description)
		}
		if org.Website != "" {
			fmt.Fprintf(&b, " (%s)", org.Website)
		}
		b.WriteString("\n")
	}
	b.WriteString("Say anything to start a new search.")
	return b.String()
}

func (f *Formatter) renderNeedsAnimalScope(outcome conversation.Outcome) string {
	var b strings.Builder
	animal := outcome.Attempted
	if animal == "" {
		animal = "that animal"
	}
	if outcome.Guidance != "" {
		fmt.Fprintf(&b, "%s ", outcome.Guidance)
		fmt.Fprintf(&b, "I'm looking for groups protecting the %s.", animal)
		return b.String()
	}
	fmt.Fprintf(&b, "Great, the %s! Where should I look for groups protecting it? Name a place, or say %q.", animal, worldwideScope)
	return b.String()
}

func (f *Formatter) renderRejected(outcome conversation.Outcome) string {
	var b strings.Builder
	switch outcome.Reason {
	case conversation.RejectNoMatch:
		fmt.Fprintf(&b, "I couldn't find %q on the list.\n", outcome.Attempted)
	default:
		b.WriteString("I didn't catch an animal name there.\n")
	}
	if len(outcome.Species) > 0 {
		b.WriteString("Here's the list again:\n")
		f.writeSpeciesList(&b, outcome)
		b.WriteString("Pick one of these animals.")
	} else if outcome.Guidance != "" {
		b.WriteString(outcome.Guidance)
	} else {
		b.WriteString(welcomeGuidance)
	}
	return b.String()
}

func (f *Formatter) writeSpeciesList(b *strings.Builder, outcome conversation.Outcome) {
	for i, candidate := range outcome.Species {
		fmt.Fprintf(b, "%d. %s\n", i+1, candidate.Label())
	}
}
