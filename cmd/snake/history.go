package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/scene"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	flagHistoryMode       string
	flagHistoryDifficulty string
	flagHistoryLimit      int
	flagHistoryTop        bool
	flagHistoryStats      bool
	flagHistoryID         int64
	flagHistoryClear      bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display matches recorded in the history database.

By default the most recent matches are listed. With --top the best
matches of a mode are listed instead.

Examples:
  snake history
  snake history --top --mode arcade --difficulty hard
  snake history --stats
  snake history --id 42
  snake history --clear --mode free`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryMode, "mode", "", "Mode filter (required with --top)")
	historyCmd.Flags().StringVar(&flagHistoryDifficulty, "difficulty", "", "Difficulty filter for --top")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Show the best matches of --mode")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-mode statistics")
	historyCmd.Flags().Int64Var(&flagHistoryID, "id", 0, "Show one match in detail")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete matches (of --mode, or all)")
}

func runHistory(cmd *cobra.Command, args []string) {
	e, err := newEnv(false, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := e.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := history(store); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func history(store *storage.Store) error {
	if flagHistoryMode != "" {
		if _, err := config.ParseMode(flagHistoryMode); err != nil {
			return err
		}
	}
	if flagHistoryDifficulty != "" {
		if _, err := config.ParseDifficulty(flagHistoryDifficulty); err != nil {
			return err
		}
	}

	switch {
	case flagHistoryClear:
		if err := store.ClearMatches(flagHistoryMode); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil

	case flagHistoryID > 0:
		return showMatch(store, flagHistoryID)

	case flagHistoryStats:
		return showStats(store)

	case flagHistoryTop:
		if flagHistoryMode == "" {
			return errors.New("--top needs --mode")
		}
		matches, err := store.TopMatches(flagHistoryMode, flagHistoryDifficulty, flagHistoryLimit)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Best matches - %s", config.Mode(flagHistoryMode).Title())
		if flagHistoryDifficulty != "" {
			title += "/" + config.Difficulty(flagHistoryDifficulty).Title()
		}
		printMatches(title, matches)

		best, err := store.HighScore(flagHistoryMode, flagHistoryDifficulty)
		if err == nil && len(matches) > 0 {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
		return nil
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		return err
	}
	printMatches("Recent matches", matches)
	return nil
}

func printMatches(title string, matches []storage.MatchRecord) {
	fmt.Println(title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-9s  %-8s  %-12s  %6s  %3s  %-9s  %s\n",
		"ID", "Date", "Mode", "Diff", "Name", "Score", "Lvl", "End", "Time")
	for _, m := range matches {
		fmt.Printf("  %-5d  %-16s  %-9s  %-8s  %-12s  %6d  %3d  %-9s  %s\n",
			m.ID, m.PlayedAt.Format("2006-01-02 15:04"),
			config.Mode(m.Mode).Title(), config.Difficulty(m.Difficulty).Title(),
			m.Name, m.Score, m.Level, endText(m),
			scene.FormatElapsed(time.Duration(m.Duration)*time.Second))
	}
}

func endText(m storage.MatchRecord) string {
	if m.Winner != "" {
		return m.Winner + " won"
	}
	return m.EndReason
}

func showMatch(store *storage.Store, id int64) error {
	m, err := store.MatchByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no match with id %d", id)
	}

	fmt.Printf("Match #%d\n\n", m.ID)
	fmt.Printf("  Played:     %s\n", m.PlayedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Mode:       %s / %s\n", config.Mode(m.Mode).Title(), config.Difficulty(m.Difficulty).Title())
	fmt.Printf("  Players:    %d\n", m.Players)
	fmt.Printf("  Name:       %s\n", m.Name)
	fmt.Printf("  Score:      %d\n", m.Score)
	if m.Players > 1 {
		fmt.Printf("  P1 / P2:    %d / %d\n", m.Score1, m.Score2)
	}
	fmt.Printf("  Level:      %d\n", m.Level)
	fmt.Printf("  Length:     %d\n", m.Length)
	fmt.Printf("  Food eaten: %d\n", m.FoodEaten)
	fmt.Printf("  Ended:      %s\n", endText(*m))
	fmt.Printf("  Time:       %s\n", scene.FormatElapsed(time.Duration(m.Duration)*time.Second))
	return nil
}

func showStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println("Statistics")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %6s  %6s  %8s  %6s  %-10s  %s\n", "Mode", "Games", "Best", "Average", "Food", "Time", "Last played")
	for _, mode := range config.Modes {
		st, ok := stats[string(mode)]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %6d  %6d  %8.1f  %6d  %-10s  %s\n",
			mode.Title(), st.GamesCount, st.HighScore, st.AvgScore, st.TotalFood,
			st.TotalTime, st.LastPlayed.Format("2006-01-02"))
	}
	return nil
}
