package session

import (
	"sync"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Host is the arcade shell: it keeps at most one running session and tears
// the previous one down completely before creating the next.
type Host struct {
	mu      sync.Mutex
	opts    Options
	current *Session
}

// NewHost creates a host whose sessions share opts.
func NewHost(opts Options) *Host {
	return &Host{opts: opts}
}

// Select stops the current session, if any, then creates and starts a
// session for kind. A zero mode uses the game's default.
func (h *Host) Select(kind registry.Kind, mode core.Mode, now time.Time) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil {
		h.current.Stop()
		h.current = nil
	}

	opts := h.opts
	opts.Mode = mode
	s, err := New(kind, opts)
	if err != nil {
		return nil, err
	}
	s.Start(now)
	h.current = s
	return s, nil
}

// Current returns the active session or nil.
func (h *Host) Current() *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Stop tears down the active session.
func (h *Host) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil {
		h.current.Stop()
		h.current = nil
	}
}

// Tick advances the active session. Returns false when nothing ran.
func (h *Host) Tick(now time.Time) bool {
	if s := h.Current(); s != nil {
		return s.Tick(now)
	}
	return false
}

// Restart starts a fresh round of the active session.
func (h *Host) Restart(now time.Time) error {
	s := h.Current()
	if s == nil {
		return ErrNoSession
	}
	return s.Restart(now)
}

// Press forwards a key-down to the active session.
func (h *Host) Press(key string) bool {
	if s := h.Current(); s != nil {
		return s.Press(key)
	}
	return false
}

// Release forwards a key-up to the active session.
func (h *Host) Release(key string) {
	if s := h.Current(); s != nil {
		s.Release(key)
	}
}

// Pulse forwards a release-less key press to the active session.
func (h *Host) Pulse(key string) bool {
	if s := h.Current(); s != nil {
		return s.Pulse(key)
	}
	return false
}

// Point forwards a pointer event to the active session.
func (h *Host) Point(kind core.PointerKind, x, y float64) {
	if s := h.Current(); s != nil {
		s.Point(kind, x, y)
	}
}

// Swipe forwards a touch gesture to the active session.
func (h *Host) Swipe(dx, dy float64) {
	if s := h.Current(); s != nil {
		s.Swipe(dx, dy)
	}
}
