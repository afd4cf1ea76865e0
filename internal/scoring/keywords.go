package scoring

// ImportanceWeights maps curated domain keywords to integer weights used by
// RateImportance. The weights are tuned for Indo-Pacific coverage; filters
// downstream depend on the resulting 1-5 scale, so change with care.
var ImportanceWeights = map[string]int{
	// Political and Diplomatic
	"crisis": 4, "conflict": 4, "treaty": 3, "agreement": 3, "election": 3, "coup": 5,
	"diplomacy": 3, "sanctions": 4, "trade war": 4, "summit": 3, "negotiation": 3,
	"alliance": 3, "territorial dispute": 4, "sovereignty": 3, "peacekeeping": 3,
	"political reform": 3, "government collapse": 5, "referendum": 3, "secession": 4,

	// Major Powers and Regional Actors
	"US": 3, "China": 3, "Russia": 3, "Japan": 3, "India": 3, "Australia": 3,
	"South Korea": 3, "North Korea": 4, "ASEAN": 3, "EU": 3, "UN": 3,
	"Taiwan": 4, "Hong Kong": 3, "Tibet": 3, "Xinjiang": 3,
	"Indonesia": 3, "Vietnam": 3, "Philippines": 3, "Malaysia": 3, "Singapore": 3,

	// Military and Security
	"military": 3, "defense": 3, "war": 5, "terrorism": 4, "insurgency": 4,
	"nuclear": 5, "missile": 4, "cyber attack": 4, "intelligence": 3,
	"arms race": 4, "naval exercise": 3, "joint military exercise": 3,
	"troop deployment": 4, "military base": 3, "defense pact": 3, "arms deal": 3,

	// Economic
	"trade": 3, "investment": 3, "economic crisis": 4, "recession": 4,
	"currency": 3, "stock market": 3, "supply chain": 3, "belt and road": 3,
	"free trade agreement": 3, "tariff": 3, "economic cooperation": 3,
	"financial crisis": 4, "market crash": 4, "economic sanctions": 4,

	// Social and Internal Issues
	"protest": 4, "unrest": 4, "riot": 4, "human rights": 3, "censorship": 3,
	"corruption": 3, "inequality": 3, "discrimination": 3, "minority rights": 3,
	"social movement": 3, "labor strike": 3, "civil disobedience": 3,

	// Natural Disasters and Environment
	"disaster": 4, "earthquake": 4, "tsunami": 4, "typhoon": 4, "flood": 4,
	"drought": 4, "wildfire": 4, "climate change": 4, "global warming": 4,
	"pollution": 3, "biodiversity": 3, "deforestation": 3,
	"environmental crisis": 4, "ecological disaster": 4,

	// Health and Humanitarian
	"pandemic": 5, "epidemic": 4, "outbreak": 4, "vaccine": 3, "healthcare": 3,
	"famine": 4, "hunger": 4, "poverty": 3, "refugee": 4, "humanitarian crisis": 4,
	"disease": 3, "medical emergency": 3, "public health": 3,

	// Technology and Innovation
	"AI": 3, "artificial intelligence": 3, "5G": 3, "quantum computing": 3,
	"space program": 3, "satellite": 3, "tech war": 4, "innovation": 3,
	"cybersecurity": 3, "data privacy": 3, "digital economy": 3,

	// Energy and Resources
	"oil": 3, "gas": 3, "renewable energy": 3, "nuclear power": 3,
	"rare earth minerals": 3, "energy security": 3, "resource conflict": 4,
	"energy crisis": 4, "power shortage": 3,

	// Infrastructure and Development
	"infrastructure": 2, "development project": 2, "urbanization": 2,
	"smart city": 2, "transportation": 2, "port development": 3,

	// Education and Culture
	"education": 2, "university": 2, "cultural exchange": 2, "soft power": 3,

	// Maritime Issues
	"south china sea": 4, "east china sea": 4, "freedom of navigation": 3,
	"maritime dispute": 4, "piracy": 3, "fishing rights": 3,
	"naval confrontation": 4, "maritime law": 3,

	// Regional Organizations
	"RCEP": 3, "TPP": 3, "CPTPP": 3, "APEC": 3, "SAARC": 3, "SCO": 3,

	// Critical Scenarios
	"doomsday": 5, "apocalypse": 5, "existential threat": 5,
}

// Topics lists the fixed classification buckets in canonical order.
var Topics = []string{
	"Political",
	"Military",
	"Civil Affairs",
	"Drug Proliferation",
	"CWMD",
	"Business",
}

var topicKeywords = map[string][]string{
	"Political": {
		"election", "government", "parliament", "minister", "policy",
		"diplomacy", "diplomatic", "treaty", "sanctions", "summit",
		"legislation", "sovereignty", "referendum", "coup", "political",
	},
	"Military": {
		"military", "defense", "navy", "naval", "army", "air force",
		"missile", "troops", "weapons", "exercise", "deployment",
		"warship", "coast guard", "security forces", "combat",
	},
	"Civil Affairs": {
		"humanitarian", "aid", "disaster relief", "infrastructure",
		"education", "healthcare", "community", "development",
		"reconstruction", "refugee", "evacuation", "civil society",
	},
	"Drug Proliferation": {
		"drug", "narcotics", "trafficking", "methamphetamine", "smuggling",
		"cartel", "seizure", "opioid", "heroin", "cocaine",
	},
	"CWMD": {
		"nuclear", "chemical weapons", "biological weapons", "proliferation",
		"enrichment", "warhead", "ballistic", "nonproliferation",
		"radiological", "missile program",
	},
	"Business": {
		"trade", "investment", "economy", "economic", "market", "tariff",
		"supply chain", "manufacturing", "exports", "imports", "currency",
		"shipping", "port",
	},
}

var urgencyTerms = []string{"emergency", "urgent", "breaking"}

var conflictPhrases = []string{"military conflict", "armed forces", "security threat"}
