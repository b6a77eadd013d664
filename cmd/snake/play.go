package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/scene"
)

// extraRows is the room the front ends use below the board for help and
// prompts.
const extraRows = 3

var (
	flagMode       string
	flagDifficulty string
	flagPlayers    int
	flagFrontend   string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match directly with the given mode, difficulty and players.

Controls:
  WASD       - Steer player 1 (arrows too in single player)
  Arrows     - Steer player 2
  P          - Pause
  Q/Esc      - Quit the match
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot (tui)

Difficulty options:
  easy     - 80x30 grid, 200 ms per move
  medium   - 60x20 grid, 150 ms per move
  hard     - 50x18 grid, 100 ms per move
  extreme  - 40x15 grid, 50 ms per move

Examples:
  snake play
  snake play --mode challenge --difficulty easy
  snake play --players 2
  snake play --frontend console --name ada`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagMode, "mode", "m", string(config.ModeClassic), "Mode: classic, arcade, challenge, free")
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", string(config.DifficultyMedium), "Difficulty: easy, medium, hard, extreme")
	playCmd.Flags().IntVarP(&flagPlayers, "players", "p", 1, "Number of players (1 or 2)")
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "", "Front end (default from config; see 'snake list')")
	playCmd.Flags().StringVarP(&flagName, "name", "n", "", "Name for the top-ten table (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, err := config.ParseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPlayers != 1 && flagPlayers != 2 {
		fmt.Fprintf(os.Stderr, "Error: --players must be 1 or 2, got %d\n", flagPlayers)
		os.Exit(1)
	}

	if err := checkTerminal(difficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e, err := newEnv(true, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frontendID := flagFrontend
	if frontendID == "" {
		frontendID = e.cfg.Player.Frontend
	}
	frontend, err := registry.Create(frontendID)
	if err != nil {
		e.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available front ends.")
		os.Exit(1)
	}

	req := registry.Request{
		Options: engine.Options{
			Mode:       mode,
			Difficulty: difficulty,
			Players:    flagPlayers,
			Seed:       flagSeed,
			Config:     e.cfg,
		},
		Name:     e.playerName(flagName),
		Recorder: e.openRecorder(),
		Logger:   e.logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	e.logger.Info("match starting", "frontend", frontendID, "mode", mode, "difficulty", difficulty, "players", flagPlayers)
	runErr := frontend.Run(ctx, req)
	stop()

	// Close store before potential exit
	e.Close()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// checkTerminal fails when stdout is a terminal too small for the board.
func checkTerminal(d config.Difficulty) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Not a terminal; let the front end decide.
		return nil
	}

	p := d.Params()
	needW, needH := scene.Size(p.GridWidth, p.GridHeight)
	needH += extraRows
	if width < needW || height < needH {
		return fmt.Errorf("terminal is %dx%d, %s needs at least %dx%d", width, height, d.Title(), needW, needH)
	}
	return nil
}
