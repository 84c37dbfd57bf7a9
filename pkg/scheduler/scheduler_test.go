package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualSchedulerFiresInOrder(t *testing.T) {
	m := NewManual()

	var order []int
	m.Schedule(time.Second, func() { order = append(order, 1) })
	m.Schedule(time.Second, func() { order = append(order, 2) })

	assert.Equal(t, 2, m.PendingCount())
	m.FireAll()
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 0, m.PendingCount())
}

func TestManualSchedulerSkipsStopped(t *testing.T) {
	m := NewManual()

	var fired bool
	timer := m.Schedule(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already cancelled")
	assert.False(t, m.Fire())
	assert.False(t, fired)
}

func TestComposeDelayDeterministicWithoutJitter(t *testing.T) {
	d := NewComposeDelay(800*time.Millisecond, 0)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 800*time.Millisecond, d.ComposeDelay())
	}
}

func TestComposeDelayStaysWithinJitterWindow(t *testing.T) {
	min := 800 * time.Millisecond
	jitter := 700 * time.Millisecond
	d := NewComposeDelay(min, jitter)

	for i := 0; i < 50; i++ {
		got := d.ComposeDelay()
		assert.GreaterOrEqual(t, got, min)
		assert.Less(t, got, min+jitter)
	}
}
