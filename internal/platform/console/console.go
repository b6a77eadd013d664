// Package console provides the tcell front end. It owns the terminal
// directly and runs the engine's real-time loop.
package console

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// promptInterval is how often the game over screen redraws.
const promptInterval = 50 * time.Millisecond

func init() {
	registry.Register("console", func() registry.Frontend {
		return &Frontend{}
	})
}

// Frontend plays matches on a tcell screen.
type Frontend struct{}

// ID returns the registry identifier.
func (f *Frontend) ID() string { return "console" }

// Title returns a human-readable description.
func (f *Frontend) Title() string { return "tcell console (plain, low latency)" }

// Run opens the terminal and plays until the player quits.
func (f *Frontend) Run(ctx context.Context, req registry.Request) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return Play(ctx, screen, req)
}

// Play runs matches on an initialized screen: the loop until game over,
// then a prompt to play again or leave.
func Play(ctx context.Context, screen tcell.Screen, req registry.Request) error {
	session, err := engine.NewSession(req.Options)
	if err != nil {
		return err
	}

	logger := req.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen.HideCursor()
	done := make(chan struct{})
	defer close(done)

	input := NewInput(screen, Pump(screen, done), session.Players())
	renderer := NewRenderer(screen, nil)

	for {
		renderer.SetFooter("")
		loop := engine.Loop{
			Session:  session,
			Input:    input,
			Renderer: renderer,
			OnEvents: func(events []engine.Event) { logEvents(logger, events) },
		}
		if err := loop.Run(ctx); err != nil {
			return err
		}

		snap := session.Snapshot()
		footer := "r: play again  q: quit"
		if req.Recorder != nil {
			res := req.Recorder.Record(snap, req.Name)
			if res.Rank > 0 {
				footer = fmt.Sprintf("New top score! Rank #%d  |  %s", res.Rank, footer)
			}
		}
		if input.Interrupted() {
			return nil
		}

		renderer.SetFooter(footer)
		again, err := prompt(ctx, input, renderer, session)
		if err != nil || !again {
			return err
		}
		session.Reset(0)
	}
}

// prompt waits on the game over screen for restart or quit.
func prompt(ctx context.Context, input *Input, renderer *Renderer, session *engine.Session) (bool, error) {
	ticker := time.NewTicker(promptInterval)
	defer ticker.Stop()

	for {
		for _, pa := range input.Actions() {
			switch pa.Action {
			case core.ActionRestart, core.ActionConfirm:
				return true, nil
			case core.ActionQuit, core.ActionBack:
				return false, nil
			}
		}
		renderer.Draw(session.Snapshot())

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
}

func logEvents(logger *log.Logger, events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventLevelUp:
			logger.Debug("level up", "level", e.Level)
		case engine.EventLifeLost:
			logger.Debug("life lost", "player", e.Player, "cause", e.Cause)
		case engine.EventPowerUpCollected:
			logger.Debug("power-up", "player", e.Player, "kind", e.PowerUp)
		case engine.EventGameOver:
			logger.Debug("game over", "cause", e.Cause, "winner", e.Winner)
		}
	}
}
