package service

type pageDefinition struct {
	Name     string
	Keywords []string
}

// pageTable maps every route of the user area to its display name and the
// keyword list the scorer uses for page-context bonuses.
var pageTable = map[string]pageDefinition{
	"/user/dashboard": {
		Name:     "Dashboard",
		Keywords: []string{"dashboard", "overview", "summary", "home", "widget"},
	},
	"/user/travels": {
		Name:     "Travels",
		Keywords: []string{"travel", "trip", "itinerary", "plan", "destination", "create", "standard", "smart"},
	},
	"/user/travels/create": {
		Name:     "Create Travel",
		Keywords: []string{"create", "new", "travel", "trip", "destination", "date", "itinerary"},
	},
	"/user/travels/standard": {
		Name:     "Standard Itinerary",
		Keywords: []string{"standard", "itinerary", "manual", "schedule", "activity", "day"},
	},
	"/user/travels/smart": {
		Name:     "Smart Itinerary",
		Keywords: []string{"smart", "itinerary", "automatic", "recommendation", "optimize", "schedule"},
	},
	"/user/bookings": {
		Name:     "Bookings",
		Keywords: []string{"booking", "reservation", "confirm", "cancel", "status", "payment", "hotel", "flight"},
	},
	"/user/history": {
		Name:     "Travel History",
		Keywords: []string{"history", "past", "completed", "archive", "previous", "record"},
	},
	"/user/feedback": {
		Name:     "Feedback",
		Keywords: []string{"feedback", "review", "rate", "comment", "suggestion", "experience"},
	},
	"/user/notifications": {
		Name:     "Notifications",
		Keywords: []string{"notification", "alert", "reminder", "update", "unread", "message"},
	},
	"/user/weather": {
		Name:     "Weather",
		Keywords: []string{"weather", "forecast", "temperature", "rain", "climate", "condition"},
	},
	"/user/profile/edit": {
		Name:     "Edit Profile",
		Keywords: []string{"profile", "account", "settings", "password", "avatar", "personal", "payment"},
	},
}

// PageName resolves a route to its display name. Unknown routes fall back to
// the dashboard so replies always have a page to talk about.
func PageName(path string) string {
	if def, ok := pageTable[path]; ok {
		return def.Name
	}
	return "Dashboard"
}

// PageKeywords returns the context keywords for a route, nil for unknown ones.
func PageKeywords(path string) []string {
	if def, ok := pageTable[path]; ok {
		return def.Keywords
	}
	return nil
}

// pageHelpTable holds the canned per-page help blurb the composer falls back
// to when nothing in the message matched. The dashboard is deliberately
// absent so generic replies stay reachable there.
var pageHelpTable = map[string]string{
	"/user/travels":          "You're on the Travels page. Here you can see every trip you've planned, open one to review its itinerary, or start a new travel plan with the New Travel button.",
	"/user/travels/create":   "You're creating a new travel plan. Pick a destination and travel dates, choose between a standard or smart itinerary, and save to add the trip to your Travels list.",
	"/user/travels/standard": "You're building a standard itinerary. Add activities day by day and arrange them in the order you want; everything is scheduled by hand here.",
	"/user/travels/smart":    "You're building a smart itinerary. Set your destination and preferences and a day-by-day schedule is generated for you; you can still adjust individual activities afterwards.",
	"/user/bookings":         "You're on the Bookings page. Every reservation is listed with its current status; open one to confirm, cancel or download its documents.",
	"/user/history":          "You're looking at your travel history. Completed trips are archived here with their itineraries and bookings for future reference.",
	"/user/feedback":         "You're on the Feedback page. Rate your trips, leave comments about your experience, and review feedback you've already submitted.",
	"/user/notifications":    "You're on the Notifications page. Booking updates, trip reminders and system alerts all land here; unread ones are highlighted.",
	"/user/weather":          "You're on the Weather page. Check the forecast for your destinations to plan activities around the conditions.",
	"/user/profile/edit":     "You're editing your profile. Update your name and contact details, change your password, upload a new avatar, or manage your payment settings.",
}

func pageHelp(path string) (string, bool) {
	blurb, ok := pageHelpTable[path]
	return blurb, ok
}
