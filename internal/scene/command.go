package scene

import (
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/engine"
)

// Command translates a player action into an engine command. Actions the
// engine does not handle (restart, menu keys, screenshots) return false.
func Command(pa core.PlayerAction) (engine.Command, bool) {
	switch pa.Action {
	case core.ActionUp:
		return engine.Turn(player(pa.Player), engine.DirUp), true
	case core.ActionDown:
		return engine.Turn(player(pa.Player), engine.DirDown), true
	case core.ActionLeft:
		return engine.Turn(player(pa.Player), engine.DirLeft), true
	case core.ActionRight:
		return engine.Turn(player(pa.Player), engine.DirRight), true
	case core.ActionPause:
		return engine.Command{Kind: engine.CmdPause}, true
	case core.ActionQuit:
		return engine.Command{Kind: engine.CmdQuit}, true
	default:
		return engine.Command{}, false
	}
}

func player(slot int) engine.PlayerID {
	if slot == 2 {
		return engine.Player2
	}
	return engine.Player1
}
