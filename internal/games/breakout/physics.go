package breakout

import (
	"math"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// MaxBounceAngle is the deflection from vertical at the paddle edges.
const MaxBounceAngle = math.Pi / 3

// Ball is a circle moving at a constant velocity per tick.
type Ball struct {
	X, Y   float64 // Centre
	VX, VY float64
	Radius float64
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Paddle represents the player's paddle.
type Paddle struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Box returns the paddle's collision box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// CollisionSide indicates which boundary the ball touched.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionSides
)

// CheckWallCollision reflects the ball off the side and top walls while it
// is moving into them. It reports CollisionBottom when the ball fell past
// the floor and leaves the ball untouched in that case.
func CheckWallCollision(ball *Ball, screenW, screenH float64) CollisionSide {
	side := CollisionNone
	if (ball.X+ball.Radius > screenW && ball.VX > 0) || (ball.X-ball.Radius < 0 && ball.VX < 0) {
		ball.VX = -ball.VX
		side = CollisionSides
	}
	if ball.Y-ball.Radius < 0 && ball.VY < 0 {
		ball.VY = -ball.VY
		return CollisionTop
	}
	if ball.Y+ball.Radius > screenH {
		return CollisionBottom
	}
	return side
}

// BounceAngle maps where the ball met the paddle to a deflection from
// vertical: 0 at the centre, ±MaxBounceAngle at the edges.
func BounceAngle(ballX float64, paddle *Paddle) float64 {
	hit := (ballX - paddle.X) / paddle.W
	return (2*hit - 1) * MaxBounceAngle
}

// CheckPaddleCollision sends the ball upward at an angle set by the hit
// position, keeping its speed. Returns true if the ball touched the paddle.
func CheckPaddleCollision(ball *Ball, paddle *Paddle) bool {
	if !core.CircleHitsBox(ball.X, ball.Y, ball.Radius, paddle.Box()) {
		return false
	}
	angle := BounceAngle(ball.X, paddle)
	speed := ball.Speed()
	ball.VX = speed * math.Sin(angle)
	ball.VY = -speed * math.Cos(angle)
	return true
}

// CheckBrickCollisions knocks out every live brick the ball overlaps,
// inverting the vertical velocity once per brick. Returns the number of
// bricks destroyed.
func CheckBrickCollisions(ball *Ball, level *Level) int {
	hits := 0
	for i := range level.Bricks {
		b := &level.Bricks[i]
		if !b.Alive || !core.CircleHitsBox(ball.X, ball.Y, ball.Radius, b.Box) {
			continue
		}
		ball.VY = -ball.VY
		b.Alive = false
		hits++
	}
	return hits
}
