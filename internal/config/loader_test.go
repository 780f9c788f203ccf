package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		name     string
		embedded []byte
		decode   func([]byte) (any, error)
		want     any
	}{
		{"snake", defaultSnakeYAML, decodeAs[SnakeConfig], DefaultSnakeConfig()},
		{"pong", defaultPongYAML, decodeAs[PongConfig], DefaultPongConfig()},
		{"memory", defaultMemoryYAML, decodeAs[MemoryConfig], DefaultMemoryConfig()},
		{"tictactoe", defaultTicTacToeYAML, decodeAs[TicTacToeConfig], DefaultTicTacToeConfig()},
		{"flappy", defaultFlappyYAML, decodeAs[FlappyConfig], DefaultFlappyConfig()},
		{"2048", default2048YAML, decodeAs[T2048Config], Default2048Config()},
		{"breakout", defaultBreakoutYAML, decodeAs[BreakoutConfig], DefaultBreakoutConfig()},
		{"spacerace", defaultSpaceRaceYAML, decodeAs[SpaceRaceConfig], DefaultSpaceRaceConfig()},
		{"jetfighter", defaultJetFighterYAML, decodeAs[JetFighterConfig], DefaultJetFighterConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.decode(tt.embedded)
			if err != nil {
				t.Fatalf("embedded %s.yaml: %v", tt.name, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("embedded %s.yaml = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func decodeAs[T any](data []byte) (any, error) {
	var cfg T
	err := yaml.Unmarshal(data, &cfg)
	return cfg, err
}

func TestSetPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  win_score: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetPath("pong", path)
	defer SetPath("pong", "")

	cfg, err := LoadPong()
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.Gameplay.WinScore != 11 {
		t.Errorf("win score = %d, want 11", cfg.Gameplay.WinScore)
	}
	if cfg.Paddle.Height != 80 {
		t.Errorf("unset keys should keep defaults, paddle height = %v", cfg.Paddle.Height)
	}
}

func TestSetPathMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	SetPath("snake", path)
	defer SetPath("snake", "")

	cfg, err := LoadSnake()
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
	if cfg.Board.CellSize != 20 {
		t.Errorf("error result should carry defaults, got %+v", cfg)
	}
}

func TestSetPathBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	if err := os.WriteFile(path, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetPath("memory", path)
	defer SetPath("memory", "")

	if _, err := LoadMemory(); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadMemoryRejectsOddBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	if err := os.WriteFile(path, []byte("board:\n  cols: 3\n  rows: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetPath("memory", path)
	defer SetPath("memory", "")

	cfg, err := LoadMemory()
	if err == nil || !strings.Contains(err.Error(), "cell count must be even") {
		t.Errorf("expected odd board error, got %v", err)
	}
	if cfg.Board.Cols != 4 || cfg.Board.Rows != 4 {
		t.Errorf("error result should carry the default board, got %dx%d", cfg.Board.Cols, cfg.Board.Rows)
	}
}

func TestMemoryBoardValidate(t *testing.T) {
	tests := []struct {
		cols, rows int
		ok         bool
	}{
		{4, 4, true},
		{2, 3, true},
		{1, 2, true},
		{3, 3, false},
		{1, 1, false},
		{0, 4, false},
		{-2, -2, false},
	}
	for _, tt := range tests {
		err := MemoryBoard{Cols: tt.cols, Rows: tt.rows}.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("Validate(%dx%d) = %v, want ok=%v", tt.cols, tt.rows, err, tt.ok)
		}
	}
}
