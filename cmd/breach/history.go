package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breach/internal/platform/tui"
	"github.com/vovakirdan/tui-breach/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var (
	styleOK   = color.Style{color.FgGreen, color.OpBold}
	styleFail = color.Style{color.FgRed, color.OpBold}
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent results",
	Long: `Display the most recent finished puzzles, newest first.

Examples:
  breach history
  breach history --limit 25
  breach history --tui
  breach history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of results to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse results in an interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all stored results and scores")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		if err := store.ClearScores(storage.GameID); err != nil {
			return err
		}
		logger.Info("history cleared", "db", flagDBPath)
		fmt.Println("History cleared.")
		return nil
	}

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		_, err := tui.RunHistory(store, width, height)
		return err
	}

	results, err := store.RecentResults(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println(styleLabel.Sprint("Recent runs"))
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breach play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-12s  %-6s  %-16s  %-5s  %-6s  %-5s  %-7s  %s\n",
		"Date", "Result", "Reason", "Seqs", "Buffer", "Left", "Level", "Score")
	fmt.Printf("  %-12s  %-6s  %-16s  %-5s  %-6s  %-5s  %-7s  %s\n",
		"----", "------", "------", "----", "------", "----", "-----", "-----")

	for _, r := range results {
		row := tui.ResultRow(r)
		// Pad before colouring so escape codes do not break the columns
		result := fmt.Sprintf("%-6s", row[1])
		if r.Outcome.Success {
			result = styleOK.Sprint(result)
		} else {
			result = styleFail.Sprint(result)
		}
		fmt.Printf("  %-12s  %s  %-16s  %-5s  %-6s  %-5s  %-7s  %s\n",
			row[0], result, row[2], row[3], row[4], row[5], row[6], row[7])
	}

	return nil
}
