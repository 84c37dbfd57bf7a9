package service

import (
	"sync"
	"testing"

	"ProjectRoameo/internal/api/assistant"
	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/scheduler"
	"ProjectRoameo/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureClient struct {
	mu       sync.Mutex
	messages []entity.Message
	states   []assistant.SessionState
	paths    []string
	notices  []string
}

func (c *captureClient) OnMessage(msg entity.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

func (c *captureClient) OnState(state assistant.SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states = append(c.states, state)
}

func (c *captureClient) Navigate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *captureClient) Notify(text, kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, kind+":"+text)
}

func (c *captureClient) messageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func newTestSession(t *testing.T, currentPath string) (*Session, *captureClient, *scheduler.ManualScheduler) {
	t.Helper()
	sched := scheduler.NewManual()
	svc := New(newFakeKV(), utils.New(), sched, scheduler.NewComposeDelay(0, 0), testLogger())

	client := &captureClient{}
	session := svc.Sessions().NewSession(currentPath, client, client, client)
	return session, client, sched
}

func TestSessionStartsWithWelcomeMessage(t *testing.T) {
	session, client, _ := newTestSession(t, "/user/dashboard")

	messages := session.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, entity.WelcomeMessageID, messages[0].ID)

	state := session.State()
	assert.False(t, state.IsOpen)
	assert.False(t, state.HasUnread, "the welcome message never counts as unread")
	assert.Equal(t, 1, client.messageCount())
}

func TestSessionSubmitIgnoresBlankInput(t *testing.T) {
	session, _, sched := newTestSession(t, "/user/dashboard")

	session.Submit("   \t  ")

	assert.Len(t, session.Messages(), 1)
	assert.Zero(t, sched.PendingCount())
}

func TestSessionSubmitDelaysReply(t *testing.T) {
	session, _, sched := newTestSession(t, "/user/dashboard")
	session.Open()

	session.Submit("hello there")

	messages := session.Messages()
	require.Len(t, messages, 2, "reply is not appended before the delay fires")
	assert.Equal(t, entity.RoleUser, messages[1].Role)
	assert.Equal(t, "hello there", messages[1].Content)
	assert.True(t, session.State().IsComposing)

	require.True(t, sched.Fire())

	messages = session.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, entity.RoleAssistant, messages[2].Role)
	assert.False(t, session.State().IsComposing)
}

func TestSessionUnreadOnlyWhileClosedAndClearedOnOpen(t *testing.T) {
	session, _, sched := newTestSession(t, "/user/dashboard")

	// Widget stays closed; the delayed reply lands unread.
	session.Submit("hello there")
	sched.FireAll()

	assert.True(t, session.State().HasUnread)

	session.Open()
	assert.False(t, session.State().HasUnread)

	// While open, replies are read immediately.
	session.Submit("hello again")
	sched.FireAll()
	assert.False(t, session.State().HasUnread)
}

func TestSessionMinimizeSettlesIntoClosed(t *testing.T) {
	session, _, sched := newTestSession(t, "/user/dashboard")
	session.Open()

	session.Minimize()
	state := session.State()
	assert.True(t, state.IsMinimized)
	assert.True(t, state.IsOpen)

	require.True(t, sched.Fire())

	state = session.State()
	assert.False(t, state.IsMinimized)
	assert.False(t, state.IsOpen)
}

func TestSessionQuickActionPathNavigatesAndCloses(t *testing.T) {
	session, client, _ := newTestSession(t, "/user/dashboard")
	session.Open()

	session.InvokeQuickAction("/user/feedback")

	assert.Equal(t, []string{"/user/feedback"}, client.paths)
	require.Len(t, client.notices, 1)
	assert.Contains(t, client.notices[0], NotifySuccess)
	assert.False(t, session.State().IsOpen)
}

func TestSessionQuickActionLiteralAsksCannedQuestion(t *testing.T) {
	session, _, _ := newTestSession(t, "/user/bookings")
	session.Open()

	session.InvokeQuickAction("check booking status")

	messages := session.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, entity.RoleUser, messages[1].Role)
	assert.Equal(t, "Where can I check my booking status?", messages[1].Content)
}

func TestSessionQuickActionUnknownLiteralSubmitsAsText(t *testing.T) {
	session, _, _ := newTestSession(t, "/user/dashboard")
	session.Open()

	session.InvokeQuickAction("tell me something else")

	messages := session.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "tell me something else", messages[1].Content)
}

func TestSessionNavigationReplyDefersNavigate(t *testing.T) {
	session, client, sched := newTestSession(t, "/user/dashboard")
	session.Open()

	session.Submit("go to my bookings")

	require.True(t, sched.Fire(), "compose delay")
	assert.Empty(t, client.paths, "navigation waits for its own delay")

	require.True(t, sched.Fire(), "navigation delay")
	assert.Equal(t, []string{"/user/bookings"}, client.paths)
}

func TestSessionTeardownCancelsPendingWork(t *testing.T) {
	session, client, sched := newTestSession(t, "/user/dashboard")
	session.Open()

	session.Submit("hello there")
	session.Teardown()

	sched.FireAll()

	assert.Len(t, session.Messages(), 2, "no reply after teardown")
	assert.Empty(t, client.paths)

	// Events after teardown are ignored outright.
	session.Open()
	session.Submit("anyone home?")
	assert.Len(t, session.Messages(), 2)
}

func TestSessionNavigatedUpdatesComposeContext(t *testing.T) {
	session, _, sched := newTestSession(t, "/user/dashboard")
	session.Open()
	session.SetPath("/user/weather")

	session.Submit("xyzzy qwerty")
	sched.FireAll()

	messages := session.Messages()
	require.Len(t, messages, 3)
	assert.Contains(t, messages[2].Content, "Weather page")
}
