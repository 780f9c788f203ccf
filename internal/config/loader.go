package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	pathsMu sync.RWMutex
	paths   = map[string]string{}
)

// SetPath makes the loader for the game with the given id read path
// instead of searching. An empty path restores the search.
func SetPath(id, path string) {
	pathsMu.Lock()
	defer pathsMu.Unlock()
	if path == "" {
		delete(paths, id)
		return
	}
	paths[id] = path
}

func pathFor(id string) string {
	pathsMu.RLock()
	defer pathsMu.RUnlock()
	return paths[id]
}

// load resolves one game's config.
// Search order: explicit path -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded over the hardcoded defaults, so a partial document only
// overrides the keys it names.
func load[T any](id string, def func() T, embedded []byte) (T, error) {
	cfg := def()
	filename := id + ".yaml"

	if customPath := pathFor(id); customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return def(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = def()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = def()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return def(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads Snake configuration.
func LoadSnake() (SnakeConfig, error) {
	return load("snake", DefaultSnakeConfig, defaultSnakeYAML)
}

// LoadPong loads Pong configuration.
func LoadPong() (PongConfig, error) {
	return load("pong", DefaultPongConfig, defaultPongYAML)
}

// LoadMemory loads Memory configuration.
// A board that cannot be dealt as whole pairs is rejected in favour of the
// defaults.
func LoadMemory() (MemoryConfig, error) {
	cfg, err := load("memory", DefaultMemoryConfig, defaultMemoryYAML)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Board.Validate(); err != nil {
		return DefaultMemoryConfig(), err
	}
	return cfg, nil
}

// LoadTicTacToe loads Tic-Tac-Toe configuration.
func LoadTicTacToe() (TicTacToeConfig, error) {
	return load("tictactoe", DefaultTicTacToeConfig, defaultTicTacToeYAML)
}

// LoadFlappy loads Flappy Bird configuration.
func LoadFlappy() (FlappyConfig, error) {
	return load("flappy", DefaultFlappyConfig, defaultFlappyYAML)
}

// Load2048 loads 2048 configuration.
func Load2048() (T2048Config, error) {
	return load("2048", Default2048Config, default2048YAML)
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout() (BreakoutConfig, error) {
	return load("breakout", DefaultBreakoutConfig, defaultBreakoutYAML)
}

// LoadSpaceRace loads Space Race configuration.
func LoadSpaceRace() (SpaceRaceConfig, error) {
	return load("spacerace", DefaultSpaceRaceConfig, defaultSpaceRaceYAML)
}

// LoadJetFighter loads Jet Fighter configuration.
func LoadJetFighter() (JetFighterConfig, error) {
	return load("jetfighter", DefaultJetFighterConfig, defaultJetFighterYAML)
}
