package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/2048.yaml
var default2048YAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/spacerace.yaml
var defaultSpaceRaceYAML []byte

//go:embed defaults/jetfighter.yaml
var defaultJetFighterYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{CellSize: 20},
		Players: SnakePlayers{
			Start1: Point{X: 5, Y: 5},
			Start2: Point{X: 15, Y: 15},
		},
		Scoring: SnakeScoring{Food: 10},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddle: PongPaddle{
			Width:  10,
			Height: 80,
			Speed:  7,
		},
		Ball: PongBall{
			Size:    10,
			Speed:   5,
			SpeedUp: 1.05,
		},
		AI: PongAI{
			Speed:  5,
			Margin: 10,
		},
		Gameplay: PongGameplay{WinScore: 5},
	}
}

// DefaultMemoryConfig returns the default Memory configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Board: MemoryBoard{
			Cols:    4,
			Rows:    4,
			Symbols: []string{"♠", "♥", "♦", "♣", "★", "●", "▲", "■"},
		},
		Timing:  MemoryTiming{FlipBackMS: 1000},
		Scoring: MemoryScoring{Match: 10},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		AI: TicTacToeAI{DelayMS: 600},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.5,
			JumpImpulse: -10,
			Speed:       3,
		},
		Pipes: FlappyPipes{
			Width:   60,
			Gap:     150,
			Spacing: 200,
			Count:   3,
			Margin:  50,
		},
		Bird: FlappyBird{Size: 30},
	}
}

// Default2048Config returns the default 2048 configuration.
func Default2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Size:       4,
			StartTiles: 2,
		},
		Gameplay: T2048Gameplay{
			FourChance: 0.1,
			WinTile:    2048,
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Bricks: BreakoutBricks{
			Rows:       5,
			Cols:       8,
			Width:      40,
			Height:     20,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 30,
		},
		Paddle: BreakoutPaddle{
			Width:  80,
			Height: 15,
			Speed:  7,
			Bottom: 10,
		},
		Ball: BreakoutBall{
			Radius: 8,
			Speed:  5,
		},
		Gameplay: BreakoutGameplay{
			Lives:      3,
			BrickScore: 10,
		},
	}
}

// DefaultSpaceRaceConfig returns the default Space Race configuration.
func DefaultSpaceRaceConfig() SpaceRaceConfig {
	return SpaceRaceConfig{
		Ship: SpaceRaceShip{
			Size:   20,
			Speed:  4,
			Bottom: 50,
		},
		Asteroids: SpaceRaceAsteroids{
			Count:    15,
			MinSize:  5,
			MaxSize:  20,
			MinSpeed: 1,
			MaxSpeed: 4,
		},
		Gameplay: SpaceRaceGameplay{
			WinScore: 10,
			AISpeed:  0.5,
		},
	}
}

// DefaultJetFighterConfig returns the default Jet Fighter configuration.
func DefaultJetFighterConfig() JetFighterConfig {
	return JetFighterConfig{
		Jet: JetFighterJet{
			Rotation:     0.05,
			Acceleration: 0.1,
			MaxSpeed:     3,
			MinSpeed:     -1.5,
			Drag:         0.98,
			Margin:       50,
		},
		Missile: JetFighterMissile{
			Speed:     5,
			Max:       3,
			HitRadius: 15,
		},
		Gameplay: JetFighterGameplay{
			WinScore:  5,
			RespawnMS: 1500,
		},
	}
}
