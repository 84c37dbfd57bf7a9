package entity

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// WelcomeMessageID marks the greeting appended when a session is created.
// It never counts toward the unread flag.
const WelcomeMessageID = "welcome"

// QuickAction is a labeled shortcut surfaced with a reply. Action is either
// a navigation path (leading slash) or a literal command the session
// dispatches against its action table.
type QuickAction struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Action string `json:"action"`
}

// Message is one transcript entry. Messages are created once and appended to
// session history, never mutated or removed.
type Message struct {
	ID           string        `json:"id"`
	Role         string        `json:"role"`
	Content      string        `json:"content"`
	Timestamp    time.Time     `json:"timestamp"`
	Suggestions  []string      `json:"suggestions,omitempty"`
	QuickActions []QuickAction `json:"quick_actions,omitempty"`
	RelatedFAQs  []FAQEntry    `json:"related_faqs,omitempty"`
}
