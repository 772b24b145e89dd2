package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breach/internal/config"
	puzzle "github.com/vovakirdan/tui-breach/internal/games/breach/core"
)

var flagNoSolution bool

var (
	styleCode   = color.Style{color.FgGreen}
	stylePath   = color.Style{color.FgYellow, color.OpBold}
	styleLabel  = color.Style{color.FgCyan, color.OpBold}
	styleSubtle = color.Style{color.FgGray}
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a puzzle and its solution path",
	Long: `Generate a puzzle the same way play does and print the matrix, the
target sequences and the synthesized solution path. Use --seed to
reproduce the puzzle of a play session.

Examples:
  breach generate
  breach generate --seed 42 --grid-size 7
  breach generate --seed 42 --no-solution`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagNoSolution, "no-solution", false, "Hide the solution path")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, overrides, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyBreachPreset(&cfg, preset)
	}
	overrides.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	layout, err := puzzle.Generate(puzzle.NewRand(seed), cfg.ToSessionConfig().Gen)
	if err != nil {
		return fmt.Errorf("generating puzzle: %w", err)
	}

	fmt.Println(renderLayout(layout, seed, cfg, !flagNoSolution))
	return nil
}

// renderLayout formats a generated puzzle for the terminal.
func renderLayout(layout *puzzle.Layout, seed int64, cfg config.BreachConfig, solution bool) string {
	var b strings.Builder

	step := make(map[puzzle.Coord]int, len(layout.Path))
	if solution {
		for i, c := range layout.Path {
			step[c] = i + 1
		}
	}

	fmt.Fprintf(&b, "%s seed %d, %dx%d, pool %d, buffer %d, %ds\n\n",
		styleLabel.Sprint("Puzzle"), seed, layout.Grid.Size, layout.Grid.Size,
		len(layout.Pool), cfg.Buffer.Capacity, cfg.Timer.LimitSeconds)

	for y := range layout.Grid.Size {
		b.WriteString("  ")
		for x := range layout.Grid.Size {
			c := puzzle.C(x, y)
			code := string(layout.Grid.Code(c))
			if n, ok := step[c]; ok {
				b.WriteString(stylePath.Sprintf("%s%d", code, n))
			} else {
				b.WriteString(styleCode.Sprint(code) + " ")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleLabel.Sprint("Sequences"))
	b.WriteString("\n")
	for i, seq := range layout.Sequences {
		codes := make([]string, len(seq))
		for j, code := range seq {
			codes[j] = string(code)
		}
		fmt.Fprintf(&b, "  %d. %s\n", i+1, strings.Join(codes, " "))
	}

	if solution {
		b.WriteString("\n")
		b.WriteString(styleLabel.Sprint("Solution"))
		b.WriteString("\n  ")
		steps := make([]string, len(layout.Path))
		for i, c := range layout.Path {
			steps[i] = fmt.Sprintf("%s %s", c, layout.Grid.Code(c))
		}
		b.WriteString(strings.Join(steps, styleSubtle.Sprint(" -> ")))
		b.WriteString("\n")
	}

	return b.String()
}
