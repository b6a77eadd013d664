package console

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/scene"
)

// eventBuffer is how many terminal events may queue between polls.
const eventBuffer = 64

// Input turns queued tcell events into player actions without blocking.
type Input struct {
	screen      tcell.Screen
	events      <-chan tcell.Event
	scheme      core.KeyScheme
	interrupted bool
}

// NewInput reads events from events, resolving keys for the given number
// of players. screen is synced on resize.
func NewInput(screen tcell.Screen, events <-chan tcell.Event, players int) *Input {
	return &Input{
		screen: screen,
		events: events,
		scheme: core.DefaultKeyScheme(players),
	}
}

// Pump forwards screen events to a buffered channel until done is closed or
// the screen is finalized.
func Pump(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	ch := make(chan tcell.Event, eventBuffer)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-done:
				return
			}
		}
	}()
	return ch
}

// Poll implements engine.InputSource.
func (in *Input) Poll() []engine.Command {
	var cmds []engine.Command
	for _, pa := range in.Actions() {
		if cmd, ok := scene.Command(pa); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Actions drains pending events and returns the bound actions in order.
func (in *Input) Actions() []core.PlayerAction {
	var actions []core.PlayerAction
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				// Screen gone; treat as an interrupt.
				in.interrupted = true
				return append(actions, core.PlayerAction{Action: core.ActionQuit})
			}
			if pa, ok := in.handle(ev); ok {
				actions = append(actions, pa)
			}
		default:
			return actions
		}
	}
}

func (in *Input) handle(ev tcell.Event) (core.PlayerAction, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := KeyName(ev)
		if name == "ctrl+c" {
			in.interrupted = true
			return core.PlayerAction{Action: core.ActionQuit}, true
		}
		return in.scheme.Lookup(name)

	case *tcell.EventResize:
		in.screen.Sync()
	}
	return core.PlayerAction{}, false
}

// Interrupted reports whether the player pressed ctrl+c.
func (in *Input) Interrupted() bool {
	return in.interrupted
}

// KeyName normalizes a tcell key event to the names core.KeyScheme uses.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyRune:
		return string(unicode.ToLower(ev.Rune()))
	}
	return ""
}
