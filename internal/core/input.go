package core

// Action is a semantic input, abstracted from physical key presses so the
// Bubble Tea and tcell front ends share one vocabulary.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W / Up arrow
	ActionDown              // S / Down arrow
	ActionLeft              // A / Left arrow
	ActionRight             // D / Right arrow
	ActionConfirm           // Enter
	ActionBack              // B - back to menu
	ActionRestart           // R - new match after game over
	ActionQuit              // Q, Esc - end the match
	ActionPause             // P
	ActionScreenshot        // Ctrl+S
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// PlayerAction is an action attributed to a player slot. Slot 0 means the
// action is not tied to a player (pause, quit, menu keys).
type PlayerAction struct {
	Player int
	Action Action
}

// KeyScheme maps normalized key names ("w", "up", "ctrl+s") to actions.
// Names follow Bubble Tea's KeyMsg.String() so both front ends can share
// the same table.
type KeyScheme map[string]PlayerAction

// DefaultKeyScheme returns the bindings for a match with the given number of
// players. P1 steers with WASD; in single player the arrows steer P1 too,
// otherwise they steer P2.
func DefaultKeyScheme(players int) KeyScheme {
	arrows := 2
	if players < 2 {
		arrows = 1
	}
	return KeyScheme{
		"w":      {1, ActionUp},
		"s":      {1, ActionDown},
		"a":      {1, ActionLeft},
		"d":      {1, ActionRight},
		"up":     {arrows, ActionUp},
		"down":   {arrows, ActionDown},
		"left":   {arrows, ActionLeft},
		"right":  {arrows, ActionRight},
		"p":      {0, ActionPause},
		"q":      {0, ActionQuit},
		"esc":    {0, ActionQuit},
		"r":      {0, ActionRestart},
		"b":      {0, ActionBack},
		"enter":  {0, ActionConfirm},
		"ctrl+s": {0, ActionScreenshot},
	}
}

// Lookup returns the action bound to key.
func (k KeyScheme) Lookup(key string) (PlayerAction, bool) {
	pa, ok := k[key]
	return pa, ok
}
