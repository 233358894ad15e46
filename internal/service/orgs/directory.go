package orgs

import "github.com/kestrelbay/wildscope/backend/internal/model/taxon"

// directoryEntry maps animal-name keywords onto the groups that focus on
// that taxon. Keywords are matched by containment against the lowercased
// animal name.
type directoryEntry struct {
	keywords []string
	orgs     []taxon.Organization
}

var animalDirectory = []directoryEntry{
	{
		keywords: []string{"panther", "cougar", "mountain lion", "lion", "tiger", "leopard", "jaguar", "cheetah", "lynx", "bobcat", "ocelot", "wildcat"},
		orgs: []taxon.Organization{
			{Name: "Panthera", Description: "Global wild cat conservation", Website: "https://panthera.org"},
			{Name: "Felidae Conservation Fund", Description: "Research and conservation for wild cats", Website: "https://felidaefund.org"},
		},
	},
	{
		keywords: []string{"wolf", "coyote", "dingo", "fox"},
		orgs: []taxon.Organization{
			{Name: "International Wolf Center", Description: "Education and advocacy for wild canids", Website: "https://wolf.org"},
			{Name: "Defenders of Wildlife", Description: "Protection for imperiled North American wildlife", Website: "https://defenders.org"},
		},
	},
	{
		keywords: []string{"eagle", "owl", "hawk", "falcon", "condor", "crane", "penguin", "flamingo", "pelican", "heron", "woodpecker", "hummingbird", "sparrow", "finch", "robin", "puffin", "albatross", "vulture", "bird"},
		orgs: []taxon.Organization{
			{Name: "National Audubon Society", Description: "Bird conservation across the Americas", Website: "https://audubon.org"},
			{Name: "BirdLife International", Description: "Global partnership for birds and habitats", Website: "https://birdlife.org"},
			{Name: "The Peregrine Fund", Description: "Saving raptors worldwide", Website: "https://peregrinefund.org"},
		},
	},
	{
		keywords: []string{"whale", "dolphin", "orca", "porpoise", "narwhal", "beluga"},
		orgs: []taxon.Organization{
			{Name: "Whale and Dolphin Conservation", Description: "Campaigns for cetacean welfare and habitat", Website: "https://whales.org"},
			{Name: "The Marine Mammal Center", Description: "Rescue, rehabilitation, and research", Website: "https://marinemammalcenter.org"},
		},
	},
	{
		keywords: []string{"seal", "sea lion", "walrus", "manatee", "dugong", "sea otter"},
		orgs: []taxon.Organization{
			{Name: "The Marine Mammal Center", Description: "Rescue, rehabilitation, and research", Website: "https://marinemammalcenter.org"},
			{Name: "Oceana", Description: "Ocean habitat and fisheries advocacy", Website: "https://oceana.org"},
		},
	},
	{
		keywords: []string{"turtle", "tortoise", "terrapin"},
		orgs: []taxon.Organization{
			{Name: "Sea Turtle Conservancy", Description: "Oldest sea turtle research group", Website: "https://conserveturtles.org"},
			{Name: "Turtle Survival Alliance", Description: "Zero turtle extinctions", Website: "https://turtlesurvival.org"},
		},
	},
	{
		keywords: []string{"bear", "panda", "grizzly"},
		orgs: []taxon.Organization{
			{Name: "Vital Ground Foundation", Description: "Habitat corridors for grizzly recovery", Website: "https://vitalground.org"},
			{Name: "Polar Bears International", Description: "Polar bear and sea ice conservation", Website: "https://polarbearsinternational.org"},
		},
	},
	{
		keywords: []string{"elephant"},
		orgs: []taxon.Organization{
			{Name: "Save the Elephants", Description: "Research and anti-poaching in Kenya", Website: "https://savetheelephants.org"},
			{Name: "Elephant Crisis Fund", Description: "Rapid response to the ivory crisis", Website: "https://elephantcrisisfund.org"},
		},
	},
	{
		keywords: []string{"rhino"},
		orgs: []taxon.Organization{
			{Name: "International Rhino Foundation", Description: "All five rhino species", Website: "https://rhinos.org"},
			{Name: "Save the Rhino International", Description: "Rangers and community programmes", Website: "https://savetherhino.org"},
		},
	},
	{
		keywords: []string{"gorilla", "chimpanzee", "orangutan", "monkey", "lemur", "primate"},
		orgs: []taxon.Organization{
			{Name: "Jane Goodall Institute", Description: "Community-centred primate conservation", Website: "https://janegoodall.org"},
			{Name: "Dian Fossey Gorilla Fund", Description: "Daily gorilla protection and science", Website: "https://gorillafund.org"},
		},
	},
	{
		keywords: []string{"bat"},
		orgs: []taxon.Organization{
			{Name: "Bat Conservation International", Description: "Ending bat extinctions worldwide", Website: "https://batcon.org"},
		},
	},
	{
		keywords: []string{"frog", "toad", "salamander", "newt", "axolotl", "amphibian"},
		orgs: []taxon.Organization{
			{Name: "Amphibian Ark", Description: "Ex situ rescue for amphibians", Website: "https://amphibianark.org"},
			{Name: "Save The Frogs", Description: "Amphibian education and habitat work", Website: "https://savethefrogs.com"},
		},
	},
	{
		keywords: []string{"butterfly", "bee", "moth", "dragonfly", "beetle", "firefly", "monarch", "insect", "pollinator"},
		orgs: []taxon.Organization{
			{Name: "Xerces Society", Description: "Invertebrate conservation", Website: "https://xerces.org"},
		},
	},
	{
		keywords: []string{"shark", "ray", "manta"},
		orgs: []taxon.Organization{
			{Name: "Shark Trust", Description: "Science-led shark and ray conservation", Website: "https://sharktrust.org"},
			{Name: "Oceana", Description: "Ocean habitat and fisheries advocacy", Website: "https://oceana.org"},
		},
	},
	{
		keywords: []string{"salmon", "trout", "sturgeon"},
		orgs: []taxon.Organization{
			{Name: "Wild Salmon Center", Description: "Protecting wild salmon rivers", Website: "https://wildsalmoncenter.org"},
		},
	},
	{
		keywords: []string{"otter", "beaver", "muskrat"},
		orgs: []taxon.Organization{
			{Name: "International Otter Survival Fund", Description: "All thirteen otter species", Website: "https://otter.org"},
		},
	},
	{
		keywords: []string{"bison", "buffalo", "prairie"},
		orgs: []taxon.Organization{
			{Name: "American Prairie", Description: "Rewilding the northern Great Plains", Website: "https://americanprairie.org"},
		},
	},
	{
		keywords: []string{"koala", "kangaroo", "wombat", "wallaby", "platypus", "echidna", "tasmanian"},
		orgs: []taxon.Organization{
			{Name: "Australian Wildlife Conservancy", Description: "Private reserves across Australia", Website: "https://australianwildlife.org"},
			{Name: "WIRES", Description: "Australian wildlife rescue", Website: "https://wires.org.au"},
		},
	},
	{
		keywords: []string{"snake", "lizard", "gecko", "iguana", "crocodile", "alligator", "gila", "reptile"},
		orgs: []taxon.Organization{
			{Name: "The Orianne Society", Description: "Reptile and amphibian habitat conservation", Website: "https://oriannesociety.org"},
		},
	},
}

// generalOrgs close every list so no animal ever comes back empty-handed.
var generalOrgs = []taxon.Organization{
	{Name: "World Wildlife Fund", Description: "Global conservation across species and habitats", Website: "https://worldwildlife.org"},
	{Name: "Wildlife Conservation Society", Description: "Science-driven protection in 60+ countries", Website: "https://wcs.org"},
	{Name: "The Nature Conservancy", Description: "Land and water protection worldwide", Website: "https://nature.org"},
	{Name: "International Fund for Animal Welfare", Description: "Rescue and conservation operations", Website: "https://ifaw.org"},
}

// regionDirectory adds groups rooted in the user's chosen scope.
var regionDirectory = []directoryEntry{
	{
		keywords: []string{"united states", "usa"},
		orgs: []taxon.Organization{
			{Name: "National Wildlife Federation", Description: "US wildlife and habitat advocacy", Website: "https://nwf.org"},
		},
	},
	{
		keywords: []string{"canada"},
		orgs: []taxon.Organization{
			{Name: "Nature Conservancy of Canada", Description: "Private land conservation in Canada", Website: "https://natureconservancy.ca"},
		},
	},
	{
		keywords: []string{"united kingdom", "england", "scotland", "wales"},
		orgs: []taxon.Organization{
			{Name: "The Wildlife Trusts", Description: "46 local trusts across the UK", Website: "https://wildlifetrusts.org"},
			{Name: "RSPB", Description: "UK bird and nature reserve network", Website: "https://rspb.org.uk"},
		},
	},
	{
		keywords: []string{"australia"},
		orgs: []taxon.Organization{
			{Name: "Australian Wildlife Conservancy", Description: "Private reserves across Australia", Website: "https://australianwildlife.org"},
		},
	},
	{
		keywords: []string{"india"},
		orgs: []taxon.Organization{
			{Name: "Wildlife Trust of India", Description: "Emergency relief and species recovery", Website: "https://wti.org.in"},
		},
	},
	{
		keywords: []string{"kenya", "tanzania", "uganda", "botswana", "namibia", "zambia", "zimbabwe", "south africa", "africa"},
		orgs: []taxon.Organization{
			{Name: "African Wildlife Foundation", Description: "Large landscape conservation in Africa", Website: "https://awf.org"},
		},
	},
	{
		keywords: []string{"brazil", "peru", "ecuador", "colombia", "amazon"},
		orgs: []taxon.Organization{
			{Name: "Amazon Conservation Association", Description: "Protecting the western Amazon", Website: "https://amazonconservation.org"},
		},
	},
}
