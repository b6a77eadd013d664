package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend {
		return &Frontend{}
	})
}

// Frontend plays matches in a Bubble Tea program on the local terminal.
type Frontend struct {
	// ProgramOptions are appended to the defaults; tests use them to swap
	// the input and output.
	ProgramOptions []tea.ProgramOption
}

// ID returns the registry identifier.
func (f *Frontend) ID() string { return "tui" }

// Title returns a human-readable description.
func (f *Frontend) Title() string { return "Bubble Tea (colors, help bar, name entry)" }

// Run plays until the player quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, req registry.Request) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, f.ProgramOptions...)
	err := Run(GameConfig{
		Options:  req.Options,
		Name:     req.Name,
		Recorder: req.Recorder,
		Logger:   req.Logger,
	}, opts...)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
