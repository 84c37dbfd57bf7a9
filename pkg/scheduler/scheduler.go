package scheduler

import (
	"math/rand"
	"sync"
	"time"
)

// Timer is a handle to a pending callback. Stop reports whether the callback
// was cancelled before it fired.
type Timer interface {
	Stop() bool
}

// Scheduler issues deferred callbacks. Sessions use it for the simulated
// thinking delay, the navigation delay and the minimize-then-close delay, so
// tests can substitute a manual implementation and fire timers by hand.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

func New() Scheduler {
	return &realScheduler{}
}

func (s *realScheduler) Schedule(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// DelayProvider yields the simulated thinking delay before an assistant
// reply: a fixed lower bound plus bounded jitter.
type DelayProvider interface {
	ComposeDelay() time.Duration
}

type jitterDelay struct {
	min    time.Duration
	jitter time.Duration
	rnd    *rand.Rand
	mu     sync.Mutex
}

// NewComposeDelay returns delays uniformly drawn from [min, min+jitter).
// A zero jitter makes the provider deterministic.
func NewComposeDelay(min, jitter time.Duration) DelayProvider {
	return &jitterDelay{
		min:    min,
		jitter: jitter,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (j *jitterDelay) ComposeDelay() time.Duration {
	if j.jitter <= 0 {
		return j.min
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.min + time.Duration(j.rnd.Int63n(int64(j.jitter)))
}

// ManualScheduler collects callbacks instead of arming real timers. Tests
// drain them with Fire; a stopped entry is skipped.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
	mu      *sync.Mutex
}

func NewManual() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Schedule(_ time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{fn: fn, mu: &m.mu}
	m.pending = append(m.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the oldest pending callback that has not been stopped. It
// reports whether a callback ran.
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	for len(m.pending) > 0 {
		t := m.pending[0]
		m.pending = m.pending[1:]
		if t.stopped {
			continue
		}
		fn := t.fn
		m.mu.Unlock()
		fn()
		return true
	}
	m.mu.Unlock()
	return false
}

// FireAll drains every pending callback in order.
func (m *ManualScheduler) FireAll() {
	for m.Fire() {
	}
}

// PendingCount reports how many callbacks are queued, stopped ones included.
func (m *ManualScheduler) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
