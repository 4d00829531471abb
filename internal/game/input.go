package game

import (
	"disguiser/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action. World north is +Y; the
// renderer flips the map so north appears up on screen.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionHelp
	ActionToggleMsgs
	ActionQuit

	// Debug actions.
	ActionSeeAll
	ActionForgetSeen
	ActionToggleDisguise
	ActionCollectAllLoot
	ActionRevealSeen
	ActionRestart
)

// keyToAction maps a tcell key event to a game action. Shift or Ctrl with
// the left/right arrows bends the move diagonally (Shift up, Ctrl down).
func keyToAction(ev *tcell.EventKey) Action {
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		switch {
		case shift && !ctrl:
			return ActionMoveNE
		case ctrl && !shift:
			return ActionMoveSE
		}
		return ActionMoveE
	case tcell.KeyLeft:
		switch {
		case shift && !ctrl:
			return ActionMoveNW
		case ctrl && !shift:
			return ActionMoveSW
		}
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyCtrlA:
		return ActionSeeAll
	case tcell.KeyCtrlC:
		return ActionForgetSeen
	case tcell.KeyCtrlD:
		return ActionToggleDisguise
	case tcell.KeyCtrlL:
		return ActionCollectAllLoot
	case tcell.KeyCtrlR:
		return ActionRestart
	case tcell.KeyCtrlS:
		return ActionRevealSeen
	}

	// Rune keys, with the numpad layout on the digits.
	switch ev.Rune() {
	case 'k', 'K', '8':
		return ActionMoveN
	case 'j', 'J', '2':
		return ActionMoveS
	case 'l', 'L', '6':
		return ActionMoveE
	case 'h', 'H', '4':
		return ActionMoveW
	case 'y', 'Y', '7':
		return ActionMoveNW
	case 'u', 'U', '9':
		return ActionMoveNE
	case 'b', 'B', '1':
		return ActionMoveSW
	case 'n', 'N', '3':
		return ActionMoveSE
	case '.', '5':
		return ActionWait
	case '?':
		return ActionHelp
	case ' ':
		return ActionToggleMsgs
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to a world-space displacement.
// ActionWait maps to the zero delta, which still spends a turn.
func actionToDelta(a Action) (geom.Coord, bool) {
	switch a {
	case ActionMoveN:
		return geom.Coord{X: 0, Y: 1}, true
	case ActionMoveS:
		return geom.Coord{X: 0, Y: -1}, true
	case ActionMoveE:
		return geom.Coord{X: 1, Y: 0}, true
	case ActionMoveW:
		return geom.Coord{X: -1, Y: 0}, true
	case ActionMoveNE:
		return geom.Coord{X: 1, Y: 1}, true
	case ActionMoveNW:
		return geom.Coord{X: -1, Y: 1}, true
	case ActionMoveSE:
		return geom.Coord{X: 1, Y: -1}, true
	case ActionMoveSW:
		return geom.Coord{X: -1, Y: -1}, true
	case ActionWait:
		return geom.Coord{}, true
	}
	return geom.Coord{}, false
}
