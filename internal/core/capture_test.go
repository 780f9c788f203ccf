package core

import "testing"

func TestCaptureDetachedIgnoresEvents(t *testing.T) {
	c := NewCapture(nil)

	if c.Press("up") {
		t.Error("detached capture should not consume keys")
	}
	c.Point(PointerClick, 10, 10)
	f := c.Frame()
	if f.Any(ActionUp) {
		t.Error("detached capture produced an action")
	}
	if _, _, ok := f.Player1().Clicked(); ok {
		t.Error("detached capture produced a click")
	}
}

func TestCaptureHeldKeys(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()

	if !c.Press("ArrowUp") {
		t.Fatal("arrow keys should be consumed")
	}
	c.Press("w")

	for i := 0; i < 3; i++ {
		f := c.Frame()
		if !f.Player1().Has(ActionUp) {
			t.Fatalf("frame %d: held up arrow missing for Player1", i)
		}
		if !f.Player2().Has(ActionUp) {
			t.Fatalf("frame %d: held w missing for Player2", i)
		}
	}

	c.Release("ArrowUp")
	if c.Frame().Player1().Has(ActionUp) {
		t.Error("released key still active")
	}
}

func TestCapturePulse(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()

	c.Pulse(" ")
	if !c.Frame().Player1().Pressed(ActionFire) {
		t.Fatal("pulse missing in first frame")
	}
	if c.Frame().Player1().Has(ActionFire) {
		t.Error("pulse should last a single frame")
	}
}

func TestCaptureLatchHoldsLevelNotEdge(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()
	c.SetLatch(3)

	c.Pulse("down")
	c.Pulse(" ")
	f := c.Frame()
	if !f.Player1().Pressed(ActionDown) || !f.Player1().Pressed(ActionFire) {
		t.Fatal("first frame should carry both presses")
	}
	for i := 1; i < 3; i++ {
		f := c.Frame()
		if !f.Player1().Has(ActionDown) {
			t.Fatalf("frame %d: latched movement missing", i)
		}
		if f.Player1().Pressed(ActionDown) {
			t.Fatalf("frame %d: latched movement pressed again", i)
		}
		if f.Player1().Has(ActionFire) {
			t.Fatalf("frame %d: fire should not be latched", i)
		}
	}
	if c.Frame().Player1().Has(ActionDown) {
		t.Error("latch should expire")
	}
}

func TestCaptureHeldKeyPressesOnce(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()

	c.Press("ArrowLeft")
	presses := 0
	for range 6 {
		if c.Frame().Player1().Pressed(ActionLeft) {
			presses++
		}
		// Browser key repeat while held.
		c.Press("ArrowLeft")
	}
	if presses != 1 {
		t.Errorf("held key pressed %d times, want 1", presses)
	}

	c.Release("ArrowLeft")
	c.Press("ArrowLeft")
	if !c.Frame().Player1().Pressed(ActionLeft) {
		t.Error("a new key-down after release should press again")
	}
}

func TestCaptureTapBetweenFrames(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()

	c.Press("m")
	c.Release("m")
	f := c.Frame()
	if !f.Player1().Pressed(ActionToggleMode) {
		t.Fatal("key released before the frame was lost")
	}
	if c.Frame().Player1().Has(ActionToggleMode) {
		t.Error("released tap should not carry into the next frame")
	}
}

func TestCaptureSwipeIsPress(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()

	c.Swipe(-80, 0)
	if !c.Frame().Player1().Pressed(ActionLeft) {
		t.Fatal("swipe should press its direction")
	}
	if c.Frame().Player1().Has(ActionLeft) {
		t.Error("swipe should last a single frame")
	}
}

func TestCaptureUnboundKey(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()

	if c.Consumes("x") || c.Press("x") || c.Pulse("x") {
		t.Error("unbound key should not be consumed")
	}
	if !c.Consumes("W") {
		t.Error("upper-case letters should normalize to bound keys")
	}
}

func TestCapturePointer(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()

	c.Point(PointerClick, 120, 80)
	c.Point(PointerMove, 10, 10)
	x, y, ok := c.Frame().Player1().Clicked()
	if !ok || x != 120 || y != 80 {
		t.Errorf("Clicked() = (%v, %v, %v), expected (120, 80, true)", x, y, ok)
	}
	if _, _, ok := c.Frame().Player1().Clicked(); ok {
		t.Error("click should be consumed by the frame")
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		expected Action
	}{
		{"right", 80, 10, ActionRight},
		{"left", -60, 20, ActionLeft},
		{"down", 5, 51, ActionDown},
		{"up", 0, -70, ActionUp},
		{"too short", 30, 20, ActionNone},
		{"exact threshold", 50, 0, ActionRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SwipeDirection(tc.dx, tc.dy); got != tc.expected {
				t.Errorf("SwipeDirection(%v, %v) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestCaptureDetachForgetsState(t *testing.T) {
	c := NewCapture(nil)
	c.Attach()
	c.Press("up")
	c.Pulse("m")
	c.Swipe(100, 0)
	c.Detach()
	c.Attach()

	f := c.Frame()
	if f.Any(ActionUp) || f.Any(ActionRight) || f.AnyPressed(ActionToggleMode) {
		t.Error("re-attached capture should start clean")
	}
}
