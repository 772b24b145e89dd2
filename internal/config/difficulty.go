package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // Keep the loaded config values
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}

// presetValues holds the time limit (seconds) and buffer capacity for each preset.
var presetValues = map[DifficultyPreset]struct {
	seconds int
	buffer  int
}{
	DifficultyEasy:   {seconds: 60, buffer: 15},
	DifficultyNormal: {seconds: 45, buffer: 12},
	DifficultyHard:   {seconds: 30, buffer: 10},
}

// ParsePreset accepts a preset name or its menu number (1 easy, 2 normal, 3 hard).
// An empty string maps to DifficultyCustom.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "custom", "0":
		return DifficultyCustom, nil
	case "easy", "1":
		return DifficultyEasy, nil
	case "normal", "2":
		return DifficultyNormal, nil
	case "hard", "3":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard, custom or 1-3)", s)
	}
}

// Label returns the menu label for a preset.
func (p DifficultyPreset) Label() string {
	v, ok := presetValues[p]
	if !ok {
		return "Custom (config file)"
	}
	return fmt.Sprintf("%s (%ds, buffer %d)", strings.ToUpper(string(p[:1]))+string(p[1:]), v.seconds, v.buffer)
}

// ApplyBreachPreset modifies the config based on a difficulty preset.
// DifficultyCustom leaves the config untouched.
func ApplyBreachPreset(cfg *BreachConfig, preset DifficultyPreset) {
	v, ok := presetValues[preset]
	if !ok {
		return
	}
	cfg.Timer.LimitSeconds = v.seconds
	cfg.Buffer.Capacity = v.buffer
}
