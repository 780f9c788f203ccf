package flappy

import (
	"math/rand"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Pipe is a vertical obstacle with a gap the bird must pass through.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Bottom of the upper pipe
	BottomY   float64 // Top of the lower pipe
	Passed    bool    // Already scored
}

// TopBox returns the collision box of the upper pipe.
func (p Pipe) TopBox(width float64) core.Box {
	return core.NewBox(p.X, 0, width, p.TopHeight)
}

// BottomBox returns the collision box of the lower pipe.
func (p Pipe) BottomBox(width, screenH float64) core.Box {
	return core.NewBox(p.X, p.BottomY, width, screenH-p.BottomY)
}

// PipeManager keeps a constant population of pipes scrolling left.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	screenW float64
	screenH float64
	cfg     config.FlappyPipes
}

// NewPipeManager creates a pipe manager drawing gaps from rng.
func NewPipeManager(rng *rand.Rand, screenW, screenH float64, cfg config.FlappyPipes) *PipeManager {
	pm := &PipeManager{
		pipes:   make([]Pipe, 0, cfg.Count),
		rng:     rng,
		screenW: screenW,
		screenH: screenH,
		cfg:     cfg,
	}
	pm.Reset()
	return pm
}

// Reset lines up the initial pipes from the right edge, one spacing apart.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	for i := 0; i < pm.cfg.Count; i++ {
		pm.pipes = append(pm.pipes, pm.spawn(pm.screenW+float64(i)*pm.cfg.Spacing))
	}
}

// spawn creates a pipe at x with a random top height in
// [margin, screenH-gap-margin].
func (pm *PipeManager) spawn(x float64) Pipe {
	minH := int(pm.cfg.Margin)
	maxH := int(pm.screenH - pm.cfg.Gap - pm.cfg.Margin)
	top := minH
	if maxH > minH {
		top = minH + pm.rng.Intn(maxH-minH+1)
	}
	return Pipe{
		X:         x,
		TopHeight: float64(top),
		BottomY:   float64(top) + pm.cfg.Gap,
	}
}

// Update scrolls every pipe left by speed and replaces the ones that left
// the screen behind the last pipe. Returns the number of pipes whose right
// edge moved past birdX this frame.
func (pm *PipeManager) Update(speed, birdX float64) int {
	passed := 0
	for i := range pm.pipes {
		pm.pipes[i].X -= speed
		if !pm.pipes[i].Passed && pm.pipes[i].X+pm.cfg.Width < birdX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	kept := pm.pipes[:0]
	removed := 0
	for _, p := range pm.pipes {
		if p.X+pm.cfg.Width < 0 {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	for ; removed > 0; removed-- {
		next := pm.screenW
		if n := len(pm.pipes); n > 0 {
			next = pm.pipes[n-1].X + pm.cfg.Spacing
		}
		pm.pipes = append(pm.pipes, pm.spawn(next))
	}

	return passed
}

// Pipes returns the live pipes, leftmost first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Collides reports whether bird overlaps any pipe.
func (pm *PipeManager) Collides(bird core.Box) bool {
	for _, p := range pm.pipes {
		if bird.Intersects(p.TopBox(pm.cfg.Width)) || bird.Intersects(p.BottomBox(pm.cfg.Width, pm.screenH)) {
			return true
		}
	}
	return false
}
