package service

import (
	"strings"

	"ProjectRoameo/internal/entity"
)

type quickActionRule struct {
	Keyword string
	Actions []entity.QuickAction
}

var feedbackActions = []entity.QuickAction{
	{Label: "Go to Feedback", Icon: "message-square", Action: "/user/feedback"},
	{Label: "Submit Feedback", Icon: "send", Action: "submit feedback"},
	{Label: "View My Feedback", Icon: "list", Action: "view feedback"},
}

var bookingActions = []entity.QuickAction{
	{Label: "Go to Bookings", Icon: "calendar-check", Action: "/user/bookings"},
	{Label: "Check Booking Status", Icon: "search", Action: "check booking status"},
	{Label: "Make Payment", Icon: "credit-card", Action: "make payment"},
}

var travelActions = []entity.QuickAction{
	{Label: "View My Travels", Icon: "map", Action: "/user/travels"},
	{Label: "Create New Travel", Icon: "plus-circle", Action: "create new travel"},
	{Label: "Plan a Trip", Icon: "compass", Action: "plan a trip"},
}

var itineraryActions = []entity.QuickAction{
	{Label: "Standard Itinerary", Icon: "list", Action: "standard itinerary"},
	{Label: "Smart Itinerary", Icon: "sparkles", Action: "smart itinerary"},
}

var profileActions = []entity.QuickAction{
	{Label: "Edit Profile", Icon: "user", Action: "edit profile"},
	{Label: "Change Password", Icon: "lock", Action: "change password"},
	{Label: "Payment Settings", Icon: "credit-card", Action: "payment settings"},
}

var paymentActions = []entity.QuickAction{
	{Label: "Payment Settings", Icon: "credit-card", Action: "payment settings"},
	{Label: "Make Payment", Icon: "banknote", Action: "make payment"},
}

var weatherActions = []entity.QuickAction{
	{Label: "Check Weather", Icon: "cloud-sun", Action: "/user/weather"},
	{Label: "Weather Forecast", Icon: "cloud-rain", Action: "show weather forecast"},
}

var historyActions = []entity.QuickAction{
	{Label: "Travel History", Icon: "clock", Action: "/user/history"},
	{Label: "Past Trips", Icon: "archive", Action: "show my past trips"},
}

var notificationActions = []entity.QuickAction{
	{Label: "Notifications", Icon: "bell", Action: "/user/notifications"},
	{Label: "Unread Alerts", Icon: "bell-ring", Action: "show unread notifications"},
}

// quickActionTable is scanned top to bottom; the first keyword found in the
// message decides the action set. Feedback sits above booking and travel on
// purpose, so "feedback about my booking" offers feedback shortcuts.
var quickActionTable = []quickActionRule{
	{Keyword: "feedback", Actions: feedbackActions},
	{Keyword: "review", Actions: feedbackActions},
	{Keyword: "rate", Actions: feedbackActions},
	{Keyword: "booking", Actions: bookingActions},
	{Keyword: "reservation", Actions: bookingActions},
	{Keyword: "book", Actions: bookingActions},
	{Keyword: "itinerary", Actions: itineraryActions},
	{Keyword: "travel", Actions: travelActions},
	{Keyword: "trip", Actions: travelActions},
	{Keyword: "plan", Actions: travelActions},
	{Keyword: "destination", Actions: travelActions},
	{Keyword: "password", Actions: profileActions},
	{Keyword: "profile", Actions: profileActions},
	{Keyword: "account", Actions: profileActions},
	{Keyword: "payment", Actions: paymentActions},
	{Keyword: "pay", Actions: paymentActions},
	{Keyword: "weather", Actions: weatherActions},
	{Keyword: "forecast", Actions: weatherActions},
	{Keyword: "history", Actions: historyActions},
	{Keyword: "past", Actions: historyActions},
	{Keyword: "notification", Actions: notificationActions},
	{Keyword: "alert", Actions: notificationActions},
}

// QuickActionsFor returns the shortcut set for the first matching keyword in
// the message, nil when nothing matches.
func QuickActionsFor(message string) []entity.QuickAction {
	m := normalizeText(message)
	for _, rule := range quickActionTable {
		if strings.Contains(m, rule.Keyword) {
			return rule.Actions
		}
	}
	return nil
}
