// Package config provides YAML-based puzzle configuration loading and
// difficulty presets for the breach game.
package config

// BreachConfig contains all configuration for the breach puzzle.
type BreachConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timer      TimerConfig      `yaml:"timer"`
	Buffer     BufferConfig     `yaml:"buffer"`
	Generation GenerationConfig `yaml:"generation"`
	Display    DisplayConfig    `yaml:"display"`
}

// GridConfig defines the code matrix dimensions.
type GridConfig struct {
	Size int `yaml:"size"` // Side length of the square matrix
}

// TimerConfig defines the countdown that starts on the first selection.
type TimerConfig struct {
	LimitSeconds int `yaml:"limit_seconds"`
}

// BufferConfig defines how many selections a puzzle allows.
type BufferConfig struct {
	Capacity int `yaml:"capacity"`
}

// GenerationConfig defines the bounds of the per-puzzle code pool.
type GenerationConfig struct {
	MinPoolSize int `yaml:"min_pool_size"`
	MaxPoolSize int `yaml:"max_pool_size"`
}

// DisplayConfig holds presentation settings that do not affect the rules.
type DisplayConfig struct {
	Locale         string `yaml:"locale"`          // "en" or "zh_CN"
	HighlightMoves bool   `yaml:"highlight_moves"` // Mark legal cells after each selection
}
