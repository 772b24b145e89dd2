package config

import (
	_ "embed"
)

//go:embed defaults/breach.yaml
var defaultBreachYAML []byte

// DefaultBreachConfig returns the hardcoded breach configuration.
// It matches defaults/breach.yaml and is used when the embedded file cannot be parsed.
func DefaultBreachConfig() BreachConfig {
	return BreachConfig{
		Grid: GridConfig{
			Size: 6,
		},
		Timer: TimerConfig{
			LimitSeconds: 30,
		},
		Buffer: BufferConfig{
			Capacity: 8,
		},
		Generation: GenerationConfig{
			MinPoolSize: 6,
			MaxPoolSize: 8,
		},
		Display: DisplayConfig{
			Locale:         "en",
			HighlightMoves: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breach":
		return defaultBreachYAML
	default:
		return nil
	}
}
