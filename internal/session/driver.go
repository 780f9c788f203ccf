package session

import (
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// DefaultMaxDelta caps delta-time steps so a stalled frontend does not
// teleport entities across the field.
const DefaultMaxDelta = 4.0

// Driver turns timer fires into ticks.
type Driver interface {
	// Reset starts a new round at the given wall time.
	Reset(now time.Time)
	// Next returns the tick for a timer fire at now.
	Next(now time.Time) core.Tick
	// Period is the interval between timer fires.
	Period() time.Duration
}

// NewDriver builds the driver a game's timing asks for.
func NewDriver(t registry.Timing) Driver {
	if t.Driver == registry.DriverDelta {
		return NewDeltaDriver(t.Period, t.Expected)
	}
	return NewFixedDriver(t.Period)
}

// FixedDriver advances the session clock by exactly one period per fire,
// whatever the wall time says. Late fires are never batched.
type FixedDriver struct {
	period time.Duration
	seq    uint64
}

// NewFixedDriver creates a fixed-interval driver.
func NewFixedDriver(period time.Duration) *FixedDriver {
	if period <= 0 {
		period = time.Second / 60
	}
	return &FixedDriver{period: period}
}

func (d *FixedDriver) Reset(time.Time) {
	d.seq = 0
}

func (d *FixedDriver) Next(time.Time) core.Tick {
	d.seq++
	return core.Tick{Seq: d.seq, Now: time.Duration(d.seq) * d.period, Delta: 1}
}

func (d *FixedDriver) Period() time.Duration {
	return d.period
}

// DeltaDriver measures the wall time between fires and reports it in
// units of the expected frame duration.
type DeltaDriver struct {
	period   time.Duration
	expected time.Duration
	maxDelta float64
	start    time.Time
	last     time.Time
	seq      uint64
}

// NewDeltaDriver creates a delta-time driver firing every period and
// scaling against expected.
func NewDeltaDriver(period, expected time.Duration) *DeltaDriver {
	if period <= 0 {
		period = time.Second / 60
	}
	if expected <= 0 {
		expected = period
	}
	return &DeltaDriver{period: period, expected: expected, maxDelta: DefaultMaxDelta}
}

func (d *DeltaDriver) Reset(now time.Time) {
	d.start = now
	d.last = now
	d.seq = 0
}

func (d *DeltaDriver) Next(now time.Time) core.Tick {
	d.seq++
	delta := 1.0
	if d.seq > 1 {
		delta = float64(now.Sub(d.last)) / float64(d.expected)
		delta = core.ClampF(delta, 0, d.maxDelta)
	}
	d.last = now
	return core.Tick{Seq: d.seq, Now: now.Sub(d.start), Delta: delta}
}

func (d *DeltaDriver) Period() time.Duration {
	return d.period
}
