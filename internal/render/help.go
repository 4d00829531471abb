package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// NumHelpPages is how many pages the help overlay has.
const NumHelpPages = len(helpPages)

var helpPages = [...]string{

	// Page 1
	`Disguiser

Press right arrow for hints, or ? to toggle this help

Sneak into mansions, map them, steal all the loot and get out.

The guards cannot be injured! They also cannot cut corners diagonally.

Use the numpad keys to move horizontally, vertically, and diagonally.
Use numpad 5 to wait. Alternatively use the keys (H J K L Y U B N .),
or arrow keys with Shift/Ctrl plus Left/Right to move diagonally.

Health is shown on the status bar in the lower left.`,

	// Page 2
	`Hints

Pick up gold coins by moving over them.

Diagonal movement is critical! Guards cannot cut corners, so moving
diagonally around corners is the key to gaining distance from them.

Guards can only see ahead of themselves.

If a guard sees you and is standing next to you, he will attack!

Bushes, tables, and water can all serve as hiding places. Patrolling guards
cannot see you when you are hidden. Alert guards (with a question mark
over their heads) can see you if they are next to you.

High one-way windows allow for quick escapes. Guards can't use them!

Guards can't see as far in the dark outside the mansion.`,
}

// drawHelp draws one help page in a centered box over the map view.
func (r *Renderer) drawHelp(page int) {
	if page < 0 || page >= len(helpPages) {
		return
	}
	lines := strings.Split(helpPages[page], "\n")

	boxW := 0
	for _, line := range lines {
		if lw := runewidth.StringWidth(line); lw > boxW {
			boxW = lw
		}
	}
	boxW += 4
	boxH := len(lines) + 2

	w, h := r.screen.Size()
	minX := (w - boxW) / 2
	minY := (h - boxH) / 2
	if minX < 0 {
		minX = 0
	}
	if minY < barHeight {
		minY = barHeight
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			r.screen.SetContent(minX+x, minY+y, ' ', nil, style)
		}
	}

	for i, line := range lines {
		r.putText(minX+2, minY+1+i, line, style)
	}
}
