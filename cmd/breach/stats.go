package main

import (
	"fmt"

	"github.com/spf13/cobra"

	puzzle "github.com/vovakirdan/tui-breach/internal/games/breach/core"
	"github.com/vovakirdan/tui-breach/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show success rate, failures by reason and best score",
	Long: `Summarize every stored result.

Examples:
  breach stats
  breach stats --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println(styleLabel.Sprint("Breach statistics"))
	fmt.Println()

	if stats.Played == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	rate := stats.SuccessRate() * 100
	rateStyle := styleFail
	if rate >= 50 {
		rateStyle = styleOK
	}

	fmt.Printf("  %-18s %d\n", "Played", stats.Played)
	fmt.Printf("  %-18s %d\n", "Breached", stats.Succeeded)
	fmt.Printf("  %-18s %s\n", "Success rate", rateStyle.Sprintf("%.1f%%", rate))
	fmt.Printf("  %-18s %d\n", "Best score", stats.BestScore)
	if stats.Succeeded > 0 {
		fmt.Printf("  %-18s %.1f\n", "Avg buffer used", stats.AvgBufferUse)
	}

	fmt.Println()
	fmt.Println(styleLabel.Sprint("Failures by reason"))
	for _, reason := range []puzzle.Reason{
		puzzle.ReasonBufferExhausted,
		puzzle.ReasonTimeExpired,
		puzzle.ReasonUserCancelled,
	} {
		n := stats.ByReason[reason]
		line := fmt.Sprintf("  %-18s %d", reason, n)
		if n == 0 {
			line = styleSubtle.Sprint(line)
		}
		fmt.Println(line)
	}

	if gs, err := store.GetGameStats(storage.GameID); err == nil && gs.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("  %-18s %d (avg %.0f)\n", "Scores saved", gs.GamesCount, gs.AvgScore)
		if !gs.LastPlayed.IsZero() {
			fmt.Printf("  %-18s %s\n", "Last played", gs.LastPlayed.Format("2006-01-02 15:04"))
		}
	}

	return nil
}
