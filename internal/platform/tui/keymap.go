package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// GameKeyMap lists the in-game bindings for the help bar.
type GameKeyMap struct {
	P1         key.Binding
	P2         key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1, k.P2, k.Pause, k.Quit, k.Restart, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1, k.P2},
		{k.Pause, k.Quit, k.Restart, k.Back, k.Screenshot},
	}
}

// NewGameKeyMap returns the bindings for a match with the given number of
// players. Restart and Back are enabled only once the match is over.
func NewGameKeyMap(players int) GameKeyMap {
	p1 := key.NewBinding(
		key.WithKeys("w", "a", "s", "d", "up", "down", "left", "right"),
		key.WithHelp("wasd/arrows", "steer"),
	)
	p2 := key.NewBinding(key.WithKeys(), key.WithDisabled())
	if players > 1 {
		p1 = key.NewBinding(
			key.WithKeys("w", "a", "s", "d"),
			key.WithHelp("wasd", "P1"),
		)
		p2 = key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "P2"),
		)
	}

	return GameKeyMap{
		P1:    p1,
		P2:    p2,
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
			key.WithDisabled(),
		),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// KeyMapper translates Bubble Tea key messages to player actions.
type KeyMapper struct {
	scheme core.KeyScheme
}

// NewKeyMapper creates a key mapper for the given number of players.
func NewKeyMapper(players int) *KeyMapper {
	return &KeyMapper{scheme: core.DefaultKeyScheme(players)}
}

// MapKey translates a key message to a player action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.PlayerAction, bool) {
	return km.scheme.Lookup(msg.String())
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
