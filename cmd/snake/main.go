// snake is a real-time grid Snake game for the terminal.
//
// Usage:
//
//	snake play               - Play a match directly
//	snake menu               - Pick mode, difficulty and players interactively
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the top-ten table
//	snake history            - Show recorded matches and per-mode stats
//	snake list               - List available front ends
//
// Global flags:
//
//	--config <path>  - Use a custom config YAML
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--scores <path>  - Top-ten file (default: ~/.snake/top_scores)
//	--db <path>      - Match history database (default: ~/.snake/history.db)
//	--log <path>     - Log file used while the game owns the terminal
//	--verbose        - Log debug events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import front ends to register them
	_ "github.com/vovakirdan/snake-arcade/internal/platform/console"
	_ "github.com/vovakirdan/snake-arcade/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagScoresPath string
	flagDBPath     string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a real-time grid game for one or two players on one keyboard.

Modes:
  classic    - walls kill, one life
  arcade     - extra lives, more food
  challenge  - obstacles and teleporters
  free       - no walls, edges wrap

Available commands:
  play     - Play a match directly
  menu     - Interactive match setup menu
  serve    - Start SSH server for remote play
  scores   - View the top-ten table
  history  - View recorded matches
  list     - Show available front ends

Examples:
  snake play
  snake play --mode arcade --difficulty hard
  snake play --players 2 --frontend console
  snake menu
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Path to top-ten file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.snake/snake.log", "Log file used while a game owns the terminal")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
