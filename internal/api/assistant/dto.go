package assistant

import (
	"ProjectRoameo/internal/entity"
)

type ChatRequest struct {
	Message     string `json:"message" validate:"required,min=1,max=500"`
	CurrentPath string `json:"current_path" validate:"omitempty,max=255"`
}

type ChatResponse struct {
	Message entity.Message `json:"message"`
	// Navigation carries the deferred navigation target the client should
	// apply after showing the reply, empty when the reply has none.
	Navigation string `json:"navigation,omitempty"`
}

type SessionState struct {
	IsOpen      bool `json:"is_open"`
	IsMinimized bool `json:"is_minimized"`
	HasUnread   bool `json:"has_unread"`
	IsComposing bool `json:"is_composing"`
}

type FAQEntryPayload struct {
	ID             string   `json:"id" validate:"required,max=64"`
	Question       string   `json:"question" validate:"required,max=500"`
	Answer         string   `json:"answer" validate:"required,max=2000"`
	LastUpdated    string   `json:"last_updated" validate:"omitempty,max=32"`
	Tags           []string `json:"tags" validate:"omitempty,dive,max=64"`
	TargetPages    []string `json:"target_pages" validate:"omitempty,dive,max=255"`
	PageKeywords   []string `json:"page_keywords" validate:"omitempty,dive,max=64"`
	SystemCategory string   `json:"system_category" validate:"omitempty,max=64"`
}

type UpdateFAQsRequest struct {
	Entries []FAQEntryPayload `json:"entries" validate:"required,min=1,dive"`
}

type FAQListResponse struct {
	Entries []entity.FAQEntry `json:"entries"`
}

// ClientEvent is one frame sent by the widget over the session websocket.
type ClientEvent struct {
	Type   string `json:"type"`
	Path   string `json:"path,omitempty"`
	Text   string `json:"text,omitempty"`
	Action string `json:"action,omitempty"`
}

// ServerEvent is one frame pushed to the widget: a transcript message, a
// state snapshot, a deferred navigation or a toast notification.
type ServerEvent struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message,omitempty"`
	State   *SessionState   `json:"state,omitempty"`
	Path    string          `json:"path,omitempty"`
	Text    string          `json:"text,omitempty"`
	Kind    string          `json:"kind,omitempty"`
}

const (
	ClientEventOpen        = "open"
	ClientEventClose       = "close"
	ClientEventMinimize    = "minimize"
	ClientEventSubmit      = "submit"
	ClientEventQuickAction = "quick_action"
	ClientEventSuggestion  = "suggestion"
	ClientEventNavigated   = "navigated"

	ServerEventMessage  = "message"
	ServerEventState    = "state"
	ServerEventNavigate = "navigate"
	ServerEventNotify   = "notify"
)
