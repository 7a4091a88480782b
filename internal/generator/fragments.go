package generator

// fragments hold the word pools the generators draw identities, addresses and
// company names from.
type fragments struct {
	first        []string
	last         []string
	domains      []string
	streetNames  []string
	streetSuffix []string
	cities       []string
	states       []string
	companyNames []string
	companyKinds []string
}

func defaultFragments() fragments {
	return fragments{
		first:        []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia", "Ava", "Ethan", "Zara"},
		last:         []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva", "Brown", "Lee"},
		domains:      []string{"example.com", "mail.com", "testbank.io", "inbox.net", "postbox.org"},
		streetNames:  []string{"Market", "Mission", "Broadway", "Fifth", "Sunset", "Park", "Cedar", "Oak", "Pine", "Ash"},
		streetSuffix: []string{"St", "Ave", "Blvd", "Ln", "Rd", "Way"},
		cities:       []string{"San Francisco", "New York", "Seattle", "Austin", "Chicago", "Miami", "Denver", "Boston", "Los Angeles"},
		states:       []string{"CA", "NY", "WA", "TX", "IL", "FL", "CO", "MA"},
		companyNames: []string{"Summit", "Harbor", "Pioneer", "Evergreen", "Cascade", "Liberty", "Beacon", "Granite", "Lakeside", "Meridian"},
		companyKinds: []string{"Utilities", "Energy", "Mutual", "Insurance Group", "Water District", "Communications", "Property Management", "Services Inc"},
	}
}
