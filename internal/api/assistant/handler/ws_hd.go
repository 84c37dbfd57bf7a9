package assistantHandler

import (
	"ProjectRoameo/internal/api/assistant"
	assistantService "ProjectRoameo/internal/api/assistant/service"
	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/log"
	"sync"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HandleSession owns one widget connection: it creates the session, feeds
// client events into it, and tears it down when the socket closes so no
// deferred reply or navigation fires afterwards.
func (h *AssistantHandler) HandleSession(conn *websocket.Conn) {
	currentPath := conn.Query("path", "/user/dashboard")

	sc := &sessionConn{
		conn: conn,
		log:  h.log,
	}

	session := h.assistantService.Sessions().NewSession(currentPath, sc, sc, sc)
	defer session.Teardown()

	h.log.WithFields(log.Fields{
		"path": currentPath,
	}).Info("Assistant session started")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(log.Fields{
					"error": err,
				}).Warn("Assistant session closed unexpectedly")
			}
			return
		}

		var event assistant.ClientEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			sc.Notify("Invalid event payload", assistantService.NotifyError)
			continue
		}

		switch event.Type {
		case assistant.ClientEventOpen:
			session.Open()
		case assistant.ClientEventClose:
			session.Close()
		case assistant.ClientEventMinimize:
			session.Minimize()
		case assistant.ClientEventSubmit:
			session.Submit(event.Text)
		case assistant.ClientEventSuggestion:
			session.SelectSuggestion(event.Text)
		case assistant.ClientEventQuickAction:
			session.InvokeQuickAction(event.Action)
		case assistant.ClientEventNavigated:
			session.SetPath(event.Path)
		default:
			sc.Notify("Unknown event type", assistantService.NotifyError)
		}
	}
}

// sessionConn adapts the websocket to the session's listener, navigator and
// notifier ports. Writes are serialized; the fiber websocket conn is not safe
// for concurrent writers and timer callbacks race the read loop.
type sessionConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
	log  *logrus.Logger
}

func (c *sessionConn) OnMessage(msg entity.Message) {
	c.send(assistant.ServerEvent{
		Type:    assistant.ServerEventMessage,
		Message: &msg,
	})
}

func (c *sessionConn) OnState(state assistant.SessionState) {
	c.send(assistant.ServerEvent{
		Type:  assistant.ServerEventState,
		State: &state,
	})
}

func (c *sessionConn) Navigate(path string) {
	c.send(assistant.ServerEvent{
		Type: assistant.ServerEventNavigate,
		Path: path,
	})
}

func (c *sessionConn) Notify(text, kind string) {
	c.send(assistant.ServerEvent{
		Type: assistant.ServerEventNotify,
		Text: text,
		Kind: kind,
	})
}

func (c *sessionConn) send(event assistant.ServerEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		c.log.WithFields(log.Fields{
			"event": event.Type,
			"error": err,
		}).Error("Failed to marshal server event")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.log.WithFields(log.Fields{
			"event": event.Type,
			"error": err,
		}).Warn("Failed to write server event")
	}
}
