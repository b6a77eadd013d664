package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive match setup menu",
	Long: `Launch the setup menu to pick mode, difficulty and players.

Controls:
  Up/Down     - Choose a row
  Left/Right  - Change the value
  Enter       - Play
  Tab         - View scores and history
  Q           - Quit

After a match, press B or Q to return to the menu.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVarP(&flagName, "name", "n", "", "Name for the top-ten table (default from config)")
}

func runMenu(cmd *cobra.Command, args []string) {
	e, err := newEnv(true, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the first layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewAppModel(tui.AppConfig{
		Config: e.cfg,
		Selection: tui.MenuSelection{
			Mode:       config.ModeClassic,
			Difficulty: config.DifficultyMedium,
			Players:    1,
		},
		Name:     e.playerName(flagName),
		Recorder: e.openRecorder(),
		Logger:   e.logger,
		Width:    width,
		Height:   height,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	stop()
	e.Close()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
