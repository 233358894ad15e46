package gazetteer

import "github.com/kestrelbay/wildscope/backend/internal/model/geo"

// Seed provides the default lookup tables: enough coverage to classify
// everyday inputs without a network call, not an atlas.
func Seed() Data {
	return Data{
		Countries:       seedCountries,
		Regions:         seedRegions,
		Animals:         seedAnimals,
		AmbiguousPlaces: seedAmbiguousPlaces(),
		Fillers:         seedFillers,
		CountryAliases:  seedCountryAliases,
	}
}

var seedCountries = []string{
	"Afghanistan", "Argentina", "Armenia", "Australia", "Austria",
	"Azerbaijan", "Bangladesh", "Belarus", "Belgium", "Belize", "Bhutan",
	"Bolivia", "Botswana", "Brazil", "Bulgaria", "Cambodia", "Cameroon",
	"Canada", "Chile", "China", "Colombia", "Costa Rica", "Croatia", "Cuba",
	"Czechia", "Denmark", "Dominican Republic", "Ecuador", "Egypt",
	"Estonia", "Ethiopia", "Fiji", "Finland", "France", "Georgia",
	"Germany", "Ghana", "Greece", "Guatemala", "Guyana", "Haiti",
	"Honduras", "Hungary", "Iceland", "India", "Indonesia", "Iran", "Iraq",
	"Ireland", "Israel", "Italy", "Jamaica", "Japan", "Jordan",
	"Kazakhstan", "Kenya", "Laos", "Latvia", "Lebanon", "Lithuania",
	"Madagascar", "Malaysia", "Maldives", "Mexico", "Mongolia", "Morocco",
	"Mozambique", "Myanmar", "Namibia", "Nepal", "Netherlands",
	"New Zealand", "Nicaragua", "Nigeria", "Norway", "Pakistan", "Panama",
	"Papua New Guinea", "Paraguay", "Peru", "Philippines", "Poland",
	"Portugal", "Qatar", "Romania", "Russia", "Rwanda", "Saudi Arabia",
	"Senegal", "Serbia", "Singapore", "Slovakia", "Slovenia", "Somalia",
	"South Africa", "South Korea", "Spain", "Sri Lanka", "Suriname",
	"Sweden", "Switzerland", "Taiwan", "Tanzania", "Thailand", "Tunisia",
	"Turkey", "Uganda", "Ukraine", "United Arab Emirates",
	"United Kingdom", "United States", "USA", "Uruguay", "Venezuela",
	"Vietnam", "Zambia", "Zimbabwe",
}

var seedRegions = []string{
	// US states.
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming",
	// Canadian provinces.
	"Alberta", "British Columbia", "Manitoba", "New Brunswick",
	"Newfoundland and Labrador", "Nova Scotia", "Ontario",
	"Prince Edward Island", "Quebec", "Saskatchewan",
	// Australian states and territories.
	"New South Wales", "Victoria", "Queensland", "Western Australia",
	"South Australia", "Tasmania", "Northern Territory",
	// UK constituent countries.
	"England", "Scotland", "Wales", "Northern Ireland",
}

var seedAnimals = []string{
	"alligator", "alpaca", "anteater", "antelope", "armadillo", "axolotl",
	"badger", "bald eagle", "bat", "bear", "beaver", "bee", "beetle",
	"beluga", "bison", "black bear", "blue jay", "blue whale", "boa",
	"bobcat", "buffalo", "bumblebee", "butterfly", "camel", "capybara",
	"cardinal", "caribou", "chameleon", "cheetah", "chimpanzee",
	"chipmunk", "condor", "cougar", "coyote", "crab", "crane",
	"crocodile", "crow", "deer", "desert tortoise", "dingo", "dolphin",
	"dragonfly", "duck", "dugong", "eagle", "echidna", "elephant", "elk",
	"falcon", "ferret", "finch", "firefly", "flamingo", "fox", "frog",
	"gazelle", "gecko", "gila monster", "giraffe", "goose", "gorilla",
	"gray wolf", "great white shark", "grizzly bear", "grouse", "hare",
	"hawk", "hedgehog", "heron", "hippopotamus", "honeybee",
	"hummingbird", "hyena", "iguana", "impala", "jaguar", "jellyfish",
	"kangaroo", "koala", "ladybug", "lemur", "leopard", "lion", "lizard",
	"llama", "lobster", "lynx", "manatee", "manta ray", "marmot",
	"meerkat", "mink", "mole", "monarch butterfly", "mongoose", "monkey",
	"moose", "mountain lion", "muskrat", "narwhal", "newt", "ocelot",
	"octopus", "okapi", "opossum", "orangutan", "orca", "otter", "owl",
	"panda", "panther", "pelican", "penguin", "pheasant", "pika",
	"platypus", "polar bear", "porcupine", "porpoise", "prairie dog",
	"puffin", "python", "quail", "rabbit", "raccoon", "rattlesnake",
	"raven", "ray", "red fox", "red panda", "rhinoceros", "robin",
	"salamander", "salmon", "sea lion", "sea otter", "sea turtle",
	"seahorse", "seal", "shark", "shrew", "skunk", "sloth", "snake",
	"snow leopard", "sparrow", "squid", "squirrel", "starfish", "stork",
	"sturgeon", "swan", "tapir", "tasmanian devil", "tiger", "toad",
	"tortoise", "trout", "tuna", "turkey", "turtle", "vulture",
	"wallaby", "walrus", "warthog", "weasel", "whale", "wildebeest",
	"wolf", "wolverine", "wombat", "woodpecker", "yak", "zebra",
}

var seedFillers = []string{
	"hi", "hello", "hey", "yo", "howdy", "hiya", "greetings",
	"good morning", "good afternoon", "good evening", "hello there",
	"hi there", "hey there", "thanks", "thank you", "thx", "ty", "ok",
	"okay", "k", "kk", "yes", "no", "yeah", "yep", "nope", "nah", "sure",
	"maybe", "idk", "test", "testing", "asdf", "qwerty", "lol", "haha",
	"hmm", "huh", "cool", "nice", "great", "awesome", "good", "fine",
	"bye", "goodbye", "see ya", "start", "restart", "start over", "begin",
	"please", "help",
}

var seedCountryAliases = map[string]string{
	"uk":                       "United Kingdom",
	"u.k.":                     "United Kingdom",
	"britain":                  "United Kingdom",
	"great britain":            "United Kingdom",
	"america":                  "USA",
	"the states":               "USA",
	"united states of america": "USA",
	"u.s.":                     "USA",
	"u.s.a.":                   "USA",
	"holland":                  "Netherlands",
	"burma":                    "Myanmar",
	"persia":                   "Iran",
	"siam":                     "Thailand",
}

func seedAmbiguousPlaces() map[string][]geo.DisambiguationOption {
	return map[string][]geo.DisambiguationOption{
		"paris": {
			{DisplayName: "Paris, France", Description: "Capital of France", Country: "France", Region: "Île-de-France", SearchQuery: "Paris, France"},
			{DisplayName: "Paris, Texas", Description: "City in northeast Texas", Country: "United States", Region: "Texas", SearchQuery: "Paris, Texas, USA"},
		},
		"springfield": {
			{DisplayName: "Springfield, Illinois", Description: "Capital of Illinois", Country: "United States", Region: "Illinois", SearchQuery: "Springfield, Illinois, USA"},
			{DisplayName: "Springfield, Missouri", Description: "City in the Missouri Ozarks", Country: "United States", Region: "Missouri", SearchQuery: "Springfield, Missouri, USA"},
			{DisplayName: "Springfield, Massachusetts", Description: "City on the Connecticut River", Country: "United States", Region: "Massachusetts", SearchQuery: "Springfield, Massachusetts, USA"},
		},
		"portland": {
			{DisplayName: "Portland, Oregon", Description: "Largest city in Oregon", Country: "United States", Region: "Oregon", SearchQuery: "Portland, Oregon, USA"},
			{DisplayName: "Portland, Maine", Description: "Coastal city in Maine", Country: "United States", Region: "Maine", SearchQuery: "Portland, Maine, USA"},
		},
		"vancouver": {
			{DisplayName: "Vancouver, British Columbia", Description: "Pacific coast city in Canada", Country: "Canada", Region: "British Columbia", SearchQuery: "Vancouver, British Columbia, Canada"},
			{DisplayName: "Vancouver, Washington", Description: "City on the Columbia River", Country: "United States", Region: "Washington", SearchQuery: "Vancouver, Washington, USA"},
		},
		"london": {
			{DisplayName: "London, United Kingdom", Description: "Capital of the United Kingdom", Country: "United Kingdom", Region: "England", SearchQuery: "London, United Kingdom"},
			{DisplayName: "London, Ontario", Description: "City in southwestern Ontario", Country: "Canada", Region: "Ontario", SearchQuery: "London, Ontario, Canada"},
		},
		"cambridge": {
			{DisplayName: "Cambridge, England", Description: "University city in England", Country: "United Kingdom", Region: "England", SearchQuery: "Cambridge, United Kingdom"},
			{DisplayName: "Cambridge, Massachusetts", Description: "City across the Charles from Boston", Country: "United States", Region: "Massachusetts", SearchQuery: "Cambridge, Massachusetts, USA"},
		},
		"birmingham": {
			{DisplayName: "Birmingham, England", Description: "City in the West Midlands", Country: "United Kingdom", Region: "England", SearchQuery: "Birmingham, United Kingdom"},
			{DisplayName: "Birmingham, Alabama", Description: "Largest city in Alabama", Country: "United States", Region: "Alabama", SearchQuery: "Birmingham, Alabama, USA"},
		},
		"manchester": {
			{DisplayName: "Manchester, England", Description: "City in northwest England", Country: "United Kingdom", Region: "England", SearchQuery: "Manchester, United Kingdom"},
			{DisplayName: "Manchester, New Hampshire", Description: "Largest city in New Hampshire", Country: "United States", Region: "New Hampshire", SearchQuery: "Manchester, New Hampshire, USA"},
		},
		"melbourne": {
			{DisplayName: "Melbourne, Victoria", Description: "Capital of Victoria, Australia", Country: "Australia", Region: "Victoria", SearchQuery: "Melbourne, Victoria, Australia"},
			{DisplayName: "Melbourne, Florida", Description: "City on Florida's Space Coast", Country: "United States", Region: "Florida", SearchQuery: "Melbourne, Florida, USA"},
		},
		"perth": {
			{DisplayName: "Perth, Western Australia", Description: "Capital of Western Australia", Country: "Australia", Region: "Western Australia", SearchQuery: "Perth, Western Australia, Australia"},
			{DisplayName: "Perth, Scotland", Description: "City on the River Tay", Country: "United Kingdom", Region: "Scotland", SearchQuery: "Perth, Scotland, United Kingdom"},
		},
		"richmond": {
			{DisplayName: "Richmond, Virginia", Description: "Capital of Virginia", Country: "United States", Region: "Virginia", SearchQuery: "Richmond, Virginia, USA"},
			{DisplayName: "Richmond, British Columbia", Description: "City in Metro Vancouver", Country: "Canada", Region: "British Columbia", SearchQuery: "Richmond, British Columbia, Canada"},
		},
		"dublin": {
			{DisplayName: "Dublin, Ireland", Description: "Capital of Ireland", Country: "Ireland", Region: "Leinster", SearchQuery: "Dublin, Ireland"},
			{DisplayName: "Dublin, Ohio", Description: "Suburb of Columbus", Country: "United States", Region: "Ohio", SearchQuery: "Dublin, Ohio, USA"},
		},
		"athens": {
			{DisplayName: "Athens, Greece", Description: "Capital of Greece", Country: "Greece", Region: "Attica", SearchQuery: "Athens, Greece"},
			{DisplayName: "Athens, Georgia", Description: "College town in Georgia", Country: "United States", Region: "Georgia", SearchQuery: "Athens, Georgia, USA"},
		},
		"rome": {
			{DisplayName: "Rome, Italy", Description: "Capital of Italy", Country: "Italy", Region: "Lazio", SearchQuery: "Rome, Italy"},
			{DisplayName: "Rome, Georgia", Description: "City in northwest Georgia", Country: "United States", Region: "Georgia", SearchQuery: "Rome, Georgia, USA"},
		},
		"naples": {
			{DisplayName: "Naples, Italy", Description: "City on the Bay of Naples", Country: "Italy", Region: "Campania", SearchQuery: "Naples, Italy"},
			{DisplayName: "Naples, Florida", Description: "Gulf coast city in Florida", Country: "United States", Region: "Florida", SearchQuery: "Naples, Florida, USA"},
		},
		"venice": {
			{DisplayName: "Venice, Italy", Description: "Canal city in northern Italy", Country: "Italy", Region: "Veneto", SearchQuery: "Venice, Italy"},
			{DisplayName: "Venice, Florida", Description: "Gulf coast city in Florida", Country: "United States", Region: "Florida", SearchQuery: "Venice, Florida, USA"},
		},
		"moscow": {
			{DisplayName: "Moscow, Russia", Description: "Capital of Russia", Country: "Russia", SearchQuery: "Moscow, Russia"},
			{DisplayName: "Moscow, Idaho", Description: "University town in Idaho", Country: "United States", Region: "Idaho", SearchQuery: "Moscow, Idaho, USA"},
		},
		"toledo": {
			{DisplayName: "Toledo, Ohio", Description: "City on Lake Erie", Country: "United States", Region: "Ohio", SearchQuery: "Toledo, Ohio, USA"},
			{DisplayName: "Toledo, Spain", Description: "Historic city in central Spain", Country: "Spain", Region: "Castilla-La Mancha", SearchQuery: "Toledo, Spain"},
		},
		"santiago": {
			{DisplayName: "Santiago, Chile", Description: "Capital of Chile", Country: "Chile", SearchQuery: "Santiago, Chile"},
			{DisplayName: "Santiago de Compostela, Spain", Description: "Pilgrimage city in Galicia", Country: "Spain", Region: "Galicia", SearchQuery: "Santiago de Compostela, Spain"},
		},
		"victoria": {
			{DisplayName: "Victoria, British Columbia", Description: "Capital of British Columbia", Country: "Canada", Region: "British Columbia", SearchQuery: "Victoria, British Columbia, Canada"},
			{DisplayName: "Victoria, Australia", Description: "State in southeastern Australia", Country: "Australia", SearchQuery: "Victoria, Australia"},
		},
		"hamilton": {
			{DisplayName: "Hamilton, Ontario", Description: "City at the head of Lake Ontario", Country: "Canada", Region: "Ontario", SearchQuery: "Hamilton, Ontario, Canada"},
			{DisplayName: "Hamilton, New Zealand", Description: "City on the Waikato River", Country: "New Zealand", Region: "Waikato", SearchQuery: "Hamilton, New Zealand"},
		},
		"newcastle": {
			{DisplayName: "Newcastle upon Tyne, England", Description: "City in northeast England", Country: "United Kingdom", Region: "England", SearchQuery: "Newcastle upon Tyne, United Kingdom"},
			{DisplayName: "Newcastle, New South Wales", Description: "Harbour city north of Sydney", Country: "Australia", Region: "New South Wales", SearchQuery: "Newcastle, New South Wales, Australia"},
		},
		"alexandria": {
			{DisplayName: "Alexandria, Egypt", Description: "Mediterranean port city", Country: "Egypt", SearchQuery: "Alexandria, Egypt"},
			{DisplayName: "Alexandria, Virginia", Description: "City on the Potomac", Country: "United States", Region: "Virginia", SearchQuery: "Alexandria, Virginia, USA"},
		},
		"odessa": {
			{DisplayName: "Odesa, Ukraine", Description: "Black Sea port city", Country: "Ukraine", SearchQuery: "Odesa, Ukraine"},
			{DisplayName: "Odessa, Texas", Description: "City in the Permian Basin", Country: "United States", Region: "Texas", SearchQuery: "Odessa, Texas, USA"},
		},
		"salem": {
			{DisplayName: "Salem, Oregon", Description: "Capital of Oregon", Country: "United States", Region: "Oregon", SearchQuery: "Salem, Oregon, USA"},
			{DisplayName: "Salem, Massachusetts", Description: "Historic city north of Boston", Country: "United States", Region: "Massachusetts", SearchQuery: "Salem, Massachusetts, USA"},
		},
		"columbus": {
			{DisplayName: "Columbus, Ohio", Description: "Capital of Ohio", Country: "United States", Region: "Ohio", SearchQuery: "Columbus, Ohio, USA"},
			{DisplayName: "Columbus, Georgia", Description: "City on the Chattahoochee", Country: "United States", Region: "Georgia", SearchQuery: "Columbus, Georgia, USA"},
		},
		"kingston": {
			{DisplayName: "Kingston, Jamaica", Description: "Capital of Jamaica", Country: "Jamaica", SearchQuery: "Kingston, Jamaica"},
			{DisplayName: "Kingston, Ontario", Description: "City at the mouth of the St. Lawrence", Country: "Canada", Region: "Ontario", SearchQuery: "Kingston, Ontario, Canada"},
		},
		"georgia": {
			{DisplayName: "Georgia (country)", Description: "Country in the Caucasus", Country: "Georgia", SearchQuery: "Georgia, Caucasus"},
			{DisplayName: "Georgia, USA", Description: "US state in the Southeast", Country: "United States", Region: "Georgia", SearchQuery: "Georgia, USA"},
		},
		"san jose": {
			{DisplayName: "San Jose, California", Description: "Largest city in Silicon Valley", Country: "United States", Region: "California", SearchQuery: "San Jose, California, USA"},
			{DisplayName: "San José, Costa Rica", Description: "Capital of Costa Rica", Country: "Costa Rica", SearchQuery: "San José, Costa Rica"},
		},
		"st. petersburg": {
			{DisplayName: "Saint Petersburg, Russia", Description: "City on the Neva River", Country: "Russia", SearchQuery: "Saint Petersburg, Russia"},
			{DisplayName: "St. Petersburg, Florida", Description: "Gulf coast city in Florida", Country: "United States", Region: "Florida", SearchQuery: "St. Petersburg, Florida, USA"},
		},
		"saint petersburg": {
			{DisplayName: "Saint Petersburg, Russia", Description: "City on the Neva River", Country: "Russia", SearchQuery: "Saint Petersburg, Russia"},
			{DisplayName: "St. Petersburg, Florida", Description: "Gulf coast city in Florida", Country: "United States", Region: "Florida", SearchQuery: "St. Petersburg, Florida, USA"},
		},
	}
}
