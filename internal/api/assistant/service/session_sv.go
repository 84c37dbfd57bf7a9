package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ProjectRoameo/internal/api/assistant"
	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/scheduler"
	"ProjectRoameo/pkg/utils"

	"github.com/sirupsen/logrus"
)

const (
	// navigationDelay gives the client time to render the reply before the
	// navigate event arrives.
	navigationDelay = 1 * time.Second
	// minimizeSettleDelay is the minimize animation window; when it elapses
	// the widget settles into the closed state.
	minimizeSettleDelay = 300 * time.Millisecond
)

const (
	NotifySuccess = "success"
	NotifyError   = "error"
)

// Navigator applies a route change on the client.
type Navigator interface {
	Navigate(path string)
}

// Notifier shows a toast on the client.
type Notifier interface {
	Notify(text, kind string)
}

// SessionListener receives transcript and state pushes for one session.
type SessionListener interface {
	OnMessage(msg entity.Message)
	OnState(state assistant.SessionState)
}

const (
	dispatchNavigate = "navigate"
	dispatchAsk      = "ask"
)

type quickDispatch struct {
	Action string
	Kind   string
	Target string
}

// quickDispatchTable maps the literal action strings emitted by the
// quick-action sets. Navigate entries close the widget and route the client;
// ask entries feed a canned question back through the normal submit path.
// Anything not listed here is submitted as plain text.
var quickDispatchTable = []quickDispatch{
	{Action: "submit feedback", Kind: dispatchNavigate, Target: "/user/feedback"},
	{Action: "view feedback", Kind: dispatchNavigate, Target: "/user/feedback"},
	{Action: "check booking status", Kind: dispatchAsk, Target: "Where can I check my booking status?"},
	{Action: "make payment", Kind: dispatchAsk, Target: "How do I make a payment for my booking?"},
	{Action: "payment settings", Kind: dispatchNavigate, Target: "/user/profile/edit"},
	{Action: "create new travel", Kind: dispatchNavigate, Target: "/user/travels/create"},
	{Action: "plan a trip", Kind: dispatchAsk, Target: "How do I plan a trip?"},
	{Action: "change password", Kind: dispatchAsk, Target: "How do I change my password?"},
	{Action: "edit profile", Kind: dispatchNavigate, Target: "/user/profile/edit"},
	{Action: "standard itinerary", Kind: dispatchNavigate, Target: "/user/travels/standard"},
	{Action: "smart itinerary", Kind: dispatchNavigate, Target: "/user/travels/smart"},
	{Action: "show weather forecast", Kind: dispatchNavigate, Target: "/user/weather"},
	{Action: "show my past trips", Kind: dispatchNavigate, Target: "/user/history"},
	{Action: "show unread notifications", Kind: dispatchNavigate, Target: "/user/notifications"},
	{Action: "cancel booking", Kind: dispatchAsk, Target: "How do I cancel a booking?"},
}

type SessionDomain interface {
	NewSession(currentPath string, listener SessionListener, navigator Navigator, notifier Notifier) *Session
}

type sessionDomain struct {
	log      *logrus.Logger
	composer ComposerDomain
	utils    utils.IUtils
	sched    scheduler.Scheduler
	delays   scheduler.DelayProvider
}

func newSessionDomain(composer ComposerDomain, u utils.IUtils, sched scheduler.Scheduler, delays scheduler.DelayProvider, log *logrus.Logger) SessionDomain {
	return &sessionDomain{
		log:      log,
		composer: composer,
		utils:    u,
		sched:    sched,
		delays:   delays,
	}
}

func (d *sessionDomain) NewSession(currentPath string, listener SessionListener, navigator Navigator, notifier Notifier) *Session {
	s := &Session{
		log:       d.log,
		composer:  d.composer,
		utils:     d.utils,
		sched:     d.sched,
		delays:    d.delays,
		listener:  listener,
		navigator: navigator,
		notifier:  notifier,

		currentPath: currentPath,
	}

	s.mu.Lock()
	s.appendLocked(d.composer.WelcomeMessage())
	s.emitStateLocked()
	s.mu.Unlock()

	return s
}

// Session holds one widget's transcript and visibility state. All methods are
// safe for concurrent use; deferred work checks tornDown before touching the
// session so a closed connection never receives callbacks.
type Session struct {
	mu        sync.Mutex
	log       *logrus.Logger
	composer  ComposerDomain
	utils     utils.IUtils
	sched     scheduler.Scheduler
	delays    scheduler.DelayProvider
	listener  SessionListener
	navigator Navigator
	notifier  Notifier

	currentPath string
	messages    []entity.Message
	isOpen      bool
	isMinimized bool
	hasUnread   bool
	isComposing bool
	tornDown    bool
	timers      []scheduler.Timer
}

func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}
	s.isOpen = true
	s.isMinimized = false
	s.hasUnread = false
	s.emitStateLocked()
}

func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}
	s.isOpen = false
	s.emitStateLocked()
}

// Minimize enters the transient minimized state and settles into closed once
// the animation window elapses.
func (s *Session) Minimize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}
	s.isMinimized = true
	s.emitStateLocked()

	s.scheduleLocked(minimizeSettleDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.tornDown {
			return
		}
		s.isMinimized = false
		s.isOpen = false
		s.emitStateLocked()
	})
}

// SetPath records the route the client navigated to on its own.
func (s *Session) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPath = path
}

// Submit appends the user's message and schedules the reply after the
// simulated thinking delay. Blank input is ignored.
func (s *Session) Submit(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}

	s.appendLocked(s.newUserMessageLocked(trimmed))
	s.isComposing = true
	s.emitStateLocked()

	s.scheduleLocked(s.delays.ComposeDelay(), func() {
		s.deliverReply(trimmed)
	})
}

// SelectSuggestion submits a suggestion chip as if the user typed it.
func (s *Session) SelectSuggestion(text string) {
	s.Submit(text)
}

// InvokeQuickAction dispatches a quick-action string: a leading slash
// navigates directly, known literals follow the dispatch table, everything
// else is submitted as text.
func (s *Session) InvokeQuickAction(action string) {
	if strings.HasPrefix(action, "/") {
		s.navigateAndClose(action)
		return
	}

	for _, d := range quickDispatchTable {
		if d.Action == action {
			if d.Kind == dispatchNavigate {
				s.navigateAndClose(d.Target)
			} else {
				s.Submit(d.Target)
			}
			return
		}
	}

	s.Submit(action)
}

// Teardown cancels pending timers and marks the session dead. Safe to call
// more than once.
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}
	s.tornDown = true
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// State returns the current visibility snapshot.
func (s *Session) State() assistant.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) deliverReply(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}

	result := s.composer.Compose(context.Background(), query, s.currentPath)

	s.isComposing = false
	s.appendLocked(result.Message)
	s.emitStateLocked()

	if result.Navigation == "" {
		return
	}
	target := result.Navigation
	s.scheduleLocked(navigationDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.tornDown {
			return
		}
		s.navigator.Navigate(target)
	})
}

func (s *Session) navigateAndClose(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown {
		return
	}
	s.isOpen = false
	s.emitStateLocked()
	s.navigator.Navigate(path)
	s.notifier.Notify("Taking you there now!", NotifySuccess)
}

func (s *Session) appendLocked(msg entity.Message) {
	s.messages = append(s.messages, msg)
	if msg.Role == entity.RoleAssistant && !s.isOpen && msg.ID != entity.WelcomeMessageID {
		s.hasUnread = true
	}
	if s.listener != nil {
		s.listener.OnMessage(msg)
	}
}

func (s *Session) emitStateLocked() {
	if s.listener != nil {
		s.listener.OnState(s.stateLocked())
	}
}

func (s *Session) stateLocked() assistant.SessionState {
	return assistant.SessionState{
		IsOpen:      s.isOpen,
		IsMinimized: s.isMinimized,
		HasUnread:   s.hasUnread,
		IsComposing: s.isComposing,
	}
}

func (s *Session) scheduleLocked(d time.Duration, fn func()) {
	s.timers = append(s.timers, s.sched.Schedule(d, fn))
}

func (s *Session) newUserMessageLocked(content string) entity.Message {
	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err,
		}).Error("[Session.Submit] failed to generate message id")
		id = fmt.Sprintf("msg-%d", time.Now().UnixNano())
	}
	return entity.Message{
		ID:        id,
		Role:      entity.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}
