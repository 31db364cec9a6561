package geo

// countryAliases maps the folded spelling of a recognized country name or
// alias to its canonical display name.
var countryAliases = map[string]string{
	"usa":            "USA",
	"united states":  "USA",
	"us":             "USA",
	"uk":             "UK",
	"united kingdom": "UK",
	"gb":             "UK",
	"germany":        "Germany",
	"france":         "France",
	"spain":          "Spain",
	"italy":          "Italy",
	"canada":         "Canada",
	"australia":      "Australia",
	"india":          "India",
	"china":          "China",
	"japan":          "Japan",
	"brazil":         "Brazil",
	"russia":         "Russia",
	"mexico":         "Mexico",
	"sweden":         "Sweden",
	"norway":         "Norway",
	"finland":        "Finland",
	"denmark":        "Denmark",
	"netherlands":    "Netherlands",
	"belgium":        "Belgium",
	"switzerland":    "Switzerland",
	"austria":        "Austria",
	"poland":         "Poland",
	"ireland":        "Ireland",
	"portugal":       "Portugal",
	"singapore":      "Singapore",
	"south korea":    "South Korea",
	"taiwan":         "Taiwan",
	"hong kong":      "Hong Kong",
	"uae":            "UAE",
	"qatar":          "Qatar",
	"saudi arabia":   "Saudi Arabia",
	"egypt":          "Egypt",
	"south africa":   "South Africa",
	"new zealand":    "New Zealand",
	"thailand":       "Thailand",
	"malaysia":       "Malaysia",
	"indonesia":      "Indonesia",
	"philippines":    "Philippines",
	"vietnam":        "Vietnam",
	"ukraine":        "Ukraine",
	"hungary":        "Hungary",
	"czech republic": "Czech Republic",
	"turkey":         "Turkey",
	"argentina":      "Argentina",
	"chile":          "Chile",
	"colombia":       "Colombia",
	"pakistan":       "Pakistan",
	"nigeria":        "Nigeria",
	"kenya":          "Kenya",
}

// cityCountries maps the folded name of a well-known city to its country.
var cityCountries = map[string]string{
	"san francisco":    "USA",
	"new york":         "USA",
	"seattle":          "USA",
	"dallas":           "USA",
	"austin":           "USA",
	"chicago":          "USA",
	"boston":           "USA",
	"los angeles":      "USA",
	"portland":         "USA",
	"denver":           "USA",
	"atlanta":          "USA",
	"raleigh":          "USA",
	"london":           "UK",
	"glasgow":          "UK",
	"edinburgh":        "UK",
	"beijing":          "China",
	"shanghai":         "China",
	"tokyo":            "Japan",
	"berlin":           "Germany",
	"frankfurt":        "Germany",
	"munich":           "Germany",
	"hamburg":          "Germany",
	"paris":            "France",
	"amsterdam":        "Netherlands",
	"montreal":         "Canada",
	"toronto":          "Canada",
	"vancouver":        "Canada",
	"singapore":        "Singapore",
	"sydney":           "Australia",
	"melbourne":        "Australia",
	"bangalore":        "India",
	"bengaluru":        "India",
	"mumbai":           "India",
	"delhi":            "India",
	"new delhi":        "India",
	"chennai":          "India",
	"hyderabad":        "India",
	"pune":             "India",
	"kolkata":          "India",
	"noida":            "India",
	"gurgaon":          "India",
	"dublin":           "Ireland",
	"stockholm":        "Sweden",
	"helsinki":         "Finland",
	"oslo":             "Norway",
	"copenhagen":       "Denmark",
	"zurich":           "Switzerland",
	"taipei":           "Taiwan",
	"hong kong":        "Hong Kong",
	"moscow":           "Russia",
	"warsaw":           "Poland",
	"barcelona":        "Spain",
	"madrid":           "Spain",
	"tel aviv":         "Israel",
	"istanbul":         "Turkey",
	"rio de janeiro":   "Brazil",
	"sao paulo":        "Brazil",
	"mexico city":      "Mexico",
	"kyiv":             "Ukraine",
	"budapest":         "Hungary",
	"prague":           "Czech Republic",
	"vienna":           "Austria",
	"rome":             "Italy",
	"milan":            "Italy",
	"seoul":            "South Korea",
	"auckland":         "New Zealand",
	"lisbon":           "Portugal",
	"bangkok":          "Thailand",
	"kuala lumpur":     "Malaysia",
	"jakarta":          "Indonesia",
	"manila":           "Philippines",
	"ho chi minh city": "Vietnam",
	"dubai":            "UAE",
	"abu dhabi":        "UAE",
	"doha":             "Qatar",
	"riyadh":           "Saudi Arabia",
	"cairo":            "Egypt",
	"johannesburg":     "South Africa",
	"cape town":        "South Africa",
	"capetown":         "South Africa",
}
