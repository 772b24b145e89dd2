// breach is a terminal breach-protocol puzzle: pick codes from a matrix, alternating
// between rows and columns, to upload every target sequence before the buffer fills
// or the timer runs out.
//
// Usage:
//
//	breach                   - Pick a difficulty and play
//	breach play              - Same as above
//	breach list              - List registered games
//	breach generate          - Print a puzzle and its solution path
//	breach history           - Show recent results
//	breach stats             - Show success rate and failures by reason
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible puzzle
//	--db <path>           - Set database path (default: ~/.breach/scores.db)
//	--config <path>       - Use a custom breach.yaml
//	--difficulty <name>   - easy, normal, hard, custom or 1-3 (skips the picker)
//	--log-file <path>     - Log destination (default: ~/.breach/breach.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breach/internal/games/breach"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagGridSize   int
	flagTimeLimit  int
	flagBuffer     int
	flagLogLevel   string
	flagLogFile    string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breach",
	Short: "Breach Protocol - a code-matrix hacking puzzle for your terminal",
	Long: `Breach Protocol is a terminal puzzle. Select codes from the matrix to
upload every target sequence into a limited buffer before time runs out.
The first pick comes from the top row; after that picks alternate between
the column and the row of the previous pick.

Available commands:
  play      - Pick a difficulty and play (default)
  list      - Show registered games
  generate  - Print a puzzle with its solution path
  history   - Show recent results
  stats     - Show success rate, failures by reason and best score

Examples:
  breach
  breach play --difficulty hard
  breach generate --seed 42
  breach history --tui
  breach stats`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.breach/scores.db", "Path to results database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom breach config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom (or 1-3)")
	pf.IntVar(&flagGridSize, "grid-size", 0, "Override matrix size")
	pf.IntVar(&flagTimeLimit, "time-limit", 0, "Override time limit in seconds")
	pf.IntVar(&flagBuffer, "buffer", 0, "Override buffer capacity")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.breach/breach.log", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
}

// setupLogging points the logger at the log file. The TUI owns the terminal, so
// nothing is logged to stdout or stderr.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return nil
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breach",
		Level:           level,
	})
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
