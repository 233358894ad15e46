package semantic

const inputTypeSystemPrompt = "You are a strict classifier for a wildlife conversation service. " +
	"Decide whether the user's message names an ANIMAL (a species, common animal name, or description of a creature) " +
	"or a LOCATION (a city, region, country, landmark, or any place on Earth). " +
	"Answer with exactly one word: ANIMAL or LOCATION. No punctuation, no explanation."

const inputTypeUserPrompt = "Message: {message}"

const ambiguitySystemPrompt = "You judge whether a bare place name is famously ambiguous, meaning at least two " +
	"well-known places in different countries or regions share it. " +
	"If it is not ambiguous, answer with the single word UNAMBIGUOUS. " +
	"If it is ambiguous, answer with the word AMBIGUOUS on the first line, followed by two to four numbered lines, " +
	"each formatted exactly as: N. Name - Short description - Country - Region. " +
	"Omit the region part when it does not apply. No other text."

const ambiguityUserPrompt = "Place name: {phrase}"
