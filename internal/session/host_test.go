package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// The session package never imports the real games, so the host tests bind
// counters under two kinds of their own.
func init() {
	registry.Bind(registry.KindSnake, func() registry.Game { return &counterGame{kind: registry.KindSnake} })
	registry.Bind(registry.KindPong, func() registry.Game { return &counterGame{kind: registry.KindPong} })
}

func newTestHost() *Host {
	return NewHost(Options{Seed: 3, Logger: quietLogger()})
}

func TestHostSelectStopsPrevious(t *testing.T) {
	h := newTestHost()
	now := time.Unix(0, 0)

	first, err := h.Select(registry.KindSnake, core.ModeDefault, now)
	require.NoError(t, err)
	first.Pulse(" ")
	first.Tick(now.Add(fakePeriod))
	require.Equal(t, 1, first.Pending())

	second, err := h.Select(registry.KindPong, core.ModeVersus, now)
	require.NoError(t, err)

	assert.False(t, first.Running())
	assert.Zero(t, first.Pending())
	assert.False(t, first.Tick(now.Add(time.Second)))
	assert.True(t, second.Running())
	assert.Same(t, second, h.Current())
	assert.Equal(t, core.ModeVersus, second.Mode())
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestHostForwardsToCurrent(t *testing.T) {
	h := newTestHost()
	now := time.Unix(0, 0)

	assert.False(t, h.Tick(now))
	assert.False(t, h.Press(" "))
	assert.ErrorIs(t, h.Restart(now), ErrNoSession)

	s, err := h.Select(registry.KindSnake, core.ModeDefault, now)
	require.NoError(t, err)
	assert.True(t, h.Press(" "))
	assert.True(t, h.Tick(now.Add(fakePeriod)))
	assert.Equal(t, 1, s.Pending())
	h.Release(" ")

	require.NoError(t, h.Restart(now))
	assert.Zero(t, s.Pending())

	h.Stop()
	assert.Nil(t, h.Current())
	assert.False(t, s.Running())
	assert.False(t, h.Tick(now))
}

func TestHostSelectUnknownKind(t *testing.T) {
	h := newTestHost()
	_, err := h.Select(registry.KindUnknown, core.ModeDefault, time.Unix(0, 0))
	assert.ErrorIs(t, err, registry.ErrUnknownKind)
	assert.Nil(t, h.Current())
}
