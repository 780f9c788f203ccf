// Package config provides YAML-based tuning for the arcade games. Every
// game has one document; missing files fall back to embedded defaults.
package config

import "fmt"

// Point is a grid or pixel coordinate in a config file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Board   SnakeBoard   `yaml:"board"`
	Players SnakePlayers `yaml:"players"`
	Scoring SnakeScoring `yaml:"scoring"`
}

// SnakeBoard defines the grid.
type SnakeBoard struct {
	CellSize int `yaml:"cell_size"` // Pixels per cell; the grid is canvas/cell_size
}

// SnakePlayers defines the spawn cells.
type SnakePlayers struct {
	Start1 Point `yaml:"start1"`
	Start2 Point `yaml:"start2"`
}

// SnakeScoring defines points.
type SnakeScoring struct {
	Food int `yaml:"food"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Paddle   PongPaddle   `yaml:"paddle"`
	Ball     PongBall     `yaml:"ball"`
	AI       PongAI       `yaml:"ai"`
	Gameplay PongGameplay `yaml:"gameplay"`
}

// PongPaddle defines paddle dimensions and speed.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PongBall defines the ball.
type PongBall struct {
	Size    float64 `yaml:"size"`
	Speed   float64 `yaml:"speed"`
	SpeedUp float64 `yaml:"speed_up"` // Velocity multiplier per paddle contact
}

// PongAI defines the computer paddle.
type PongAI struct {
	Speed  float64 `yaml:"speed"`
	Margin float64 `yaml:"margin"` // Dead zone around the paddle centre
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"`
}

// MemoryConfig contains all configuration for Memory.
type MemoryConfig struct {
	Board   MemoryBoard   `yaml:"board"`
	Timing  MemoryTiming  `yaml:"timing"`
	Scoring MemoryScoring `yaml:"scoring"`
}

// MemoryBoard defines the deck layout.
type MemoryBoard struct {
	Cols    int      `yaml:"cols"`
	Rows    int      `yaml:"rows"`
	Symbols []string `yaml:"symbols"` // One per pair; needs cols*rows/2 entries
}

// Validate reports a board that cannot be dealt as whole pairs.
func (b MemoryBoard) Validate() error {
	if b.Cols < 1 || b.Rows < 1 || b.Cols*b.Rows < 2 {
		return fmt.Errorf("memory board %dx%d: need at least two cells", b.Cols, b.Rows)
	}
	if b.Cols*b.Rows%2 != 0 {
		return fmt.Errorf("memory board %dx%d: cell count must be even", b.Cols, b.Rows)
	}
	return nil
}

// MemoryTiming defines delays.
type MemoryTiming struct {
	FlipBackMS int `yaml:"flip_back_ms"`
}

// MemoryScoring defines points.
type MemoryScoring struct {
	Match int `yaml:"match"`
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	AI TicTacToeAI `yaml:"ai"`
}

// TicTacToeAI defines the computer opponent.
type TicTacToeAI struct {
	DelayMS int `yaml:"delay_ms"`
}

// FlappyConfig contains all configuration for Flappy Bird.
type FlappyConfig struct {
	Physics FlappyPhysics `yaml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Bird    FlappyBird    `yaml:"bird"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	Speed       float64 `yaml:"speed"`
}

// FlappyPipes defines obstacle parameters for Flappy Bird.
type FlappyPipes struct {
	Width   float64 `yaml:"width"`
	Gap     float64 `yaml:"gap"`
	Spacing float64 `yaml:"spacing"`
	Count   int     `yaml:"count"`
	Margin  float64 `yaml:"margin"` // Minimum pipe length at top and bottom
}

// FlappyBird defines the player sprite.
type FlappyBird struct {
	Size float64 `yaml:"size"`
}

// T2048Config contains all configuration for 2048.
type T2048Config struct {
	Board    T2048Board    `yaml:"board"`
	Gameplay T2048Gameplay `yaml:"gameplay"`
}

// T2048Board defines the grid.
type T2048Board struct {
	Size       int `yaml:"size"`
	StartTiles int `yaml:"start_tiles"`
}

// T2048Gameplay defines spawn odds and the goal.
type T2048Gameplay struct {
	FourChance float64 `yaml:"four_chance"`
	WinTile    int     `yaml:"win_tile"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Bottom float64 `yaml:"bottom"` // Gap between paddle and canvas bottom
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// BreakoutGameplay defines lives and scoring.
type BreakoutGameplay struct {
	Lives      int `yaml:"lives"`
	BrickScore int `yaml:"brick_score"`
}

// SpaceRaceConfig contains all configuration for Space Race.
type SpaceRaceConfig struct {
	Ship      SpaceRaceShip      `yaml:"ship"`
	Asteroids SpaceRaceAsteroids `yaml:"asteroids"`
	Gameplay  SpaceRaceGameplay  `yaml:"gameplay"`
}

// SpaceRaceShip defines the player ships.
type SpaceRaceShip struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Bottom float64 `yaml:"bottom"` // Start distance from the canvas bottom
}

// SpaceRaceAsteroids defines the hazard field.
type SpaceRaceAsteroids struct {
	Count    int     `yaml:"count"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// SpaceRaceGameplay defines match rules.
type SpaceRaceGameplay struct {
	WinScore int     `yaml:"win_score"`
	AISpeed  float64 `yaml:"ai_speed"` // Fraction of ship speed the AI climbs at
}

// JetFighterConfig contains all configuration for Jet Fighter.
type JetFighterConfig struct {
	Jet      JetFighterJet      `yaml:"jet"`
	Missile  JetFighterMissile  `yaml:"missile"`
	Gameplay JetFighterGameplay `yaml:"gameplay"`
}

// JetFighterJet defines flight physics, per expected frame.
type JetFighterJet struct {
	Rotation     float64 `yaml:"rotation"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinSpeed     float64 `yaml:"min_speed"`
	Drag         float64 `yaml:"drag"`
	Margin       float64 `yaml:"margin"` // Spawn distance from the side edges
}

// JetFighterMissile defines weapons.
type JetFighterMissile struct {
	Speed     float64 `yaml:"speed"`
	Max       int     `yaml:"max"`
	HitRadius float64 `yaml:"hit_radius"`
}

// JetFighterGameplay defines match rules.
type JetFighterGameplay struct {
	WinScore  int `yaml:"win_score"`
	RespawnMS int `yaml:"respawn_ms"`
}
