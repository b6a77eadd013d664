package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/ledger"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top-ten table",
	Long: `Display the top ten scores from the score file.

Examples:
  snake scores
  snake scores --scores ./top_scores
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Erase the top-ten table")
}

func runScores(cmd *cobra.Command, args []string) {
	e, err := newEnv(false, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	path := e.scoresPath()

	if flagClearScores {
		if err := ledger.Save(path, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Top-ten table cleared.")
		return
	}

	entries, err := ledger.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-*s  %s\n", "Rank", "Score", ledger.MaxNameLength, "Name", "Date")
	fmt.Printf("  %-4s  %-8s  %-*s  %s\n", "----", "-----", ledger.MaxNameLength, "----", "----")

	for i, entry := range entries {
		dateStr := entry.Date.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-*s  %s\n", i+1, entry.Score, ledger.MaxNameLength, entry.Name, dateStr)
	}
}
