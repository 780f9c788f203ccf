// Package sound plays short tones for game events. It is a best-effort
// collaborator: a missing audio device only disables it.
package sound

import (
	"math"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// DefaultSampleRate is used when Options leaves it unset.
const DefaultSampleRate = beep.SampleRate(44100)

// Note is one pitch held for a duration.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Tone is a sequence of notes played back to back.
type Tone []Note

// Duration returns the total length of the tone.
func (t Tone) Duration() time.Duration {
	var d time.Duration
	for _, n := range t {
		d += n.Duration
	}
	return d
}

var tones = map[core.Event]Tone{
	core.EventEat:      {{660, 60 * time.Millisecond}},
	core.EventBounce:   {{440, 40 * time.Millisecond}},
	core.EventHit:      {{520, 50 * time.Millisecond}},
	core.EventScore:    {{880, 80 * time.Millisecond}},
	core.EventFlip:     {{330, 30 * time.Millisecond}},
	core.EventMatch:    {{990, 90 * time.Millisecond}},
	core.EventFire:     {{1200, 25 * time.Millisecond}},
	core.EventExplode:  {{110, 200 * time.Millisecond}},
	core.EventGameOver: {{440, 150 * time.Millisecond}, {220, 250 * time.Millisecond}},
	core.EventWin:      {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 200 * time.Millisecond}},
}

// ToneFor returns the tone played for an event.
func ToneFor(e core.Event) (Tone, bool) {
	t, ok := tones[e]
	return t, ok
}

// Sink receives finished streamers. The default sink is the speaker.
type Sink interface {
	Play(s ...beep.Streamer)
}

type speakerSink struct{}

func (speakerSink) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Options configures a Player.
type Options struct {
	SampleRate beep.SampleRate
	// Volume scales every tone; zero means 1.
	Volume float64
	// Sink overrides the speaker, mainly for tests.
	Sink   Sink
	Logger *log.Logger
}

// Player maps game events to tones.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	sink    Sink
	logger  *log.Logger
	ready   bool
	enabled bool
}

// New creates a player. Call Init before events can be heard.
func New(opts Options) *Player {
	p := &Player{
		rate:    opts.SampleRate,
		volume:  opts.Volume,
		sink:    opts.Sink,
		logger:  opts.Logger,
		enabled: true,
	}
	if p.rate == 0 {
		p.rate = DefaultSampleRate
	}
	if p.volume <= 0 {
		p.volume = 1
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	return p
}

// Init opens the audio device unless a custom sink was given.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if p.sink == nil {
		if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
			return err
		}
		p.sink = speakerSink{}
	}
	p.ready = true
	return nil
}

// SetEnabled mutes or unmutes the player.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
}

// OnEvents plays one tone per distinct event of a tick. Its signature
// matches session.Hooks.OnEvents.
func (p *Player) OnEvents(kind registry.Kind, events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || !p.enabled || len(events) == 0 {
		return
	}

	var played []core.Event
	for _, e := range events {
		if slices.Contains(played, e) {
			continue
		}
		t, ok := tones[e]
		if !ok {
			continue
		}
		played = append(played, e)
		p.sink.Play(p.stream(t))
	}
	if len(played) > 0 {
		p.logger.Debug("sound", "game", kind, "events", len(played))
	}
}

// Stream renders a tone at the player's rate and volume.
func (p *Player) Stream(t Tone) beep.Streamer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stream(t)
}

func (p *Player) stream(t Tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(t))
	for _, n := range t {
		sine, err := generators.SineTone(p.rate, n.Freq)
		if err != nil {
			// Frequencies above Nyquist cannot be rendered.
			p.logger.Warn("sound: cannot render note", "freq", n.Freq, "err", err)
			continue
		}
		parts = append(parts, beep.Take(p.rate.N(n.Duration), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(p.volume * 0.25),
	}
}

// Close releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	if _, ok := p.sink.(speakerSink); ok {
		speaker.Close()
	}
	p.ready = false
}
