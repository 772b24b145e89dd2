package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	breach "github.com/vovakirdan/tui-breach/internal/games/breach/core"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBreach loads the breach configuration.
// Search order: customPath -> ~/.breach/configs/breach.yaml -> ./configs/breach.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadBreach(customPath string) (BreachConfig, error) {
	cfg := DefaultBreachConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breach.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultBreachConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breach.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultBreachConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreachYAML, &cfg); err != nil {
		return DefaultBreachConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breach", "configs", filename)
}

// Overrides holds command-line values applied after presets. Zero means unset.
type Overrides struct {
	GridSize  int
	TimeLimit int // seconds
	Buffer    int
}

// Apply copies every set override into cfg.
func (o Overrides) Apply(cfg *BreachConfig) {
	if o.GridSize != 0 {
		cfg.Grid.Size = o.GridSize
	}
	if o.TimeLimit != 0 {
		cfg.Timer.LimitSeconds = o.TimeLimit
	}
	if o.Buffer != 0 {
		cfg.Buffer.Capacity = o.Buffer
	}
}

// Validate checks that the config can produce a solvable puzzle.
func (c BreachConfig) Validate() error {
	switch {
	case c.Grid.Size < breach.MinGridSize:
		return fmt.Errorf("config: grid.size %d is below %d: %w", c.Grid.Size, breach.MinGridSize, ErrInvalidConfig)
	case c.Buffer.Capacity < breach.PathLength:
		return fmt.Errorf("config: buffer.capacity %d is below the %d-cell solution path: %w",
			c.Buffer.Capacity, breach.PathLength, ErrInvalidConfig)
	case c.Timer.LimitSeconds <= 0:
		return fmt.Errorf("config: timer.limit_seconds must be positive: %w", ErrInvalidConfig)
	case c.Generation.MinPoolSize < 1 || c.Generation.MinPoolSize > c.Generation.MaxPoolSize:
		return fmt.Errorf("config: generation pool bounds %d..%d are inverted or empty: %w",
			c.Generation.MinPoolSize, c.Generation.MaxPoolSize, ErrInvalidConfig)
	case c.Generation.MaxPoolSize > len(breach.Alphabet):
		return fmt.Errorf("config: generation.max_pool_size %d exceeds the %d-code alphabet: %w",
			c.Generation.MaxPoolSize, len(breach.Alphabet), ErrInvalidConfig)
	}
	return nil
}

// ToSessionConfig converts the YAML config into the puzzle core's session config.
func (c BreachConfig) ToSessionConfig() breach.Config {
	return breach.Config{
		Gen: breach.GenParams{
			GridSize:    c.Grid.Size,
			MinPoolSize: c.Generation.MinPoolSize,
			MaxPoolSize: c.Generation.MaxPoolSize,
		},
		TimeLimit:      time.Duration(c.Timer.LimitSeconds) * time.Second,
		BufferCapacity: c.Buffer.Capacity,
	}
}
