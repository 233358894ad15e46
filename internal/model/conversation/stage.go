package conversation

// Stage names where a session sits in the guided flow. Every turn reads the
// current stage, runs exactly one transition, and writes the next one.
type Stage string

const (
	// StageInitial is the state before the first classified message.
	StageInitial Stage = "initial"
	// StageAwaitingLocation waits for a place the user wants to explore.
	StageAwaitingLocation Stage = "awaiting-location"
	// StageDisambiguation waits for the user to pick one of several places
	// sharing the same name.
	StageDisambiguation Stage = "disambiguation"
	// StageAwaitingAnimal waits for the user to pick an animal from the
	// candidate list fetched for the resolved location.
	StageAwaitingAnimal Stage = "awaiting-animal"
	// StageAwaitingAnimalLocation waits for a geographic scope after the
	// user led with an animal instead of a place.
	StageAwaitingAnimalLocation Stage = "awaiting-animal-location"
	// StageCompleted means organizations were delivered; the next message
	// starts a fresh search.
	StageCompleted Stage = "completed"
)

// Mode records which opening the user chose; it never changes mid-search,
// only a restart clears it.
type Mode string

const (
	ModeLocationFirst Mode = "location-first"
	ModeAnimalFirst   Mode = "animal-first"
)
