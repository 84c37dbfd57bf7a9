package service

// suggestionTable keys on the resolved page name, so both the create route
// and the travels list share the Travels prompts when names collide.
var suggestionTable = map[string][]string{
	"Travels": {
		"How do I create a new travel plan?",
		"What is the difference between standard and smart itineraries?",
		"How do I edit an existing travel plan?",
		"Show me my travel history",
	},
	"Bookings": {
		"Where can I check my booking status?",
		"How do I cancel a booking?",
		"How do I make a payment?",
		"Show me my upcoming bookings",
	},
	"Feedback": {
		"How do I submit feedback?",
		"Can I edit feedback I already sent?",
		"Where can I see my previous feedback?",
		"How is my rating used?",
	},
	"Edit Profile": {
		"How do I change my password?",
		"How do I update my avatar?",
		"Where are my payment settings?",
		"How do I update my contact details?",
	},
}

// genericSuggestions backs the welcome message and the help reply.
var genericSuggestions = []string{
	"How do I create a new travel plan?",
	"Where can I check my booking status?",
	"How do I submit feedback?",
	"How do I update my profile?",
	"Show me the weather",
}

// SuggestionsFor returns the starter prompts for the page the user is on,
// nil for pages without a curated set.
func SuggestionsFor(path string) []string {
	return suggestionTable[PageName(path)]
}
