package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })

	assert.Equal(t, 0, s.RunDue(5*time.Millisecond))
	assert.Equal(t, 2, s.RunDue(10*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, s.RunDue(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Zero(t, s.Len())
}

func TestSchedulerDropsStaleGenerations(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.After(0, func() { ran = true })

	gen := s.Invalidate()
	require.Equal(t, uint64(2), gen)

	assert.Equal(t, 0, s.RunDue(time.Second))
	assert.False(t, ran, "callback from an old generation must not run")
	assert.Zero(t, s.Len())
}

func TestSchedulerRelativeToClock(t *testing.T) {
	s := NewScheduler()
	s.RunDue(100 * time.Millisecond)

	ran := false
	s.After(50*time.Millisecond, func() { ran = true })
	s.RunDue(149 * time.Millisecond)
	assert.False(t, ran)
	s.RunDue(150 * time.Millisecond)
	assert.True(t, ran)
}

func TestSchedulerCallbackMaySchedule(t *testing.T) {
	s := NewScheduler()
	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			s.After(10*time.Millisecond, again)
		}
	}
	s.After(10*time.Millisecond, again)

	for now := 10 * time.Millisecond; now <= 50*time.Millisecond; now += 10 * time.Millisecond {
		s.RunDue(now)
	}
	assert.Equal(t, 3, count)
}

func TestFixedDriverNeverBatches(t *testing.T) {
	d := NewFixedDriver(120 * time.Millisecond)
	start := time.Unix(0, 0)
	d.Reset(start)

	// A fire that arrives a full second late is still one step.
	first := d.Next(start.Add(time.Second))
	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, 120*time.Millisecond, first.Now)
	assert.Equal(t, 1.0, first.Delta)

	second := d.Next(start.Add(time.Second + time.Millisecond))
	assert.Equal(t, 240*time.Millisecond, second.Now)
}

func TestDeltaDriverScalesElapsed(t *testing.T) {
	d := NewDeltaDriver(time.Second/60, 16670*time.Microsecond)
	start := time.Unix(100, 0)
	d.Reset(start)

	assert.Equal(t, 1.0, d.Next(start).Delta, "first tick has unit delta")

	tick := d.Next(start.Add(33340 * time.Microsecond))
	assert.InDelta(t, 2.0, tick.Delta, 1e-9)
	assert.Equal(t, 33340*time.Microsecond, tick.Now)

	stalled := d.Next(start.Add(10 * time.Second))
	assert.Equal(t, DefaultMaxDelta, stalled.Delta)

	backwards := d.Next(start)
	assert.Zero(t, backwards.Delta)
}

func TestNewDriverHonoursTiming(t *testing.T) {
	fixed := NewDriver(registry.Timing{Driver: registry.DriverFixed, Period: 120 * time.Millisecond})
	assert.IsType(t, &FixedDriver{}, fixed)
	assert.Equal(t, 120*time.Millisecond, fixed.Period())

	delta := NewDriver(registry.Timing{Driver: registry.DriverDelta, Period: time.Second / 60})
	assert.IsType(t, &DeltaDriver{}, delta)
}

var _ core.Timers = (*Scheduler)(nil)
