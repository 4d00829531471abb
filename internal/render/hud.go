package render

import (
	"fmt"

	"disguiser/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// airMeterSize is how many bubbles the air meter shows.
const airMeterSize = 5

// drawTopBar shows the one-line status message, or help-paging hints when
// the help overlay is open.
func (r *Renderer) drawTopBar(f *Frame) {
	w, _ := r.screen.Size()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.fillRow(0, style)

	if f.ShowHelp {
		r.putText(0, 0, "Press left/right arrow keys to view help, or Esc to close", style)

		pageMsg := fmt.Sprintf("Page %d of %d", f.HelpPage+1, len(helpPages))
		r.putText(w-runewidth.StringWidth(pageMsg)-1, 0, pageMsg, style)
		return
	}

	var msg string
	switch {
	case f.Player.Health == 0:
		msg = "You are dead! Press Ctrl+R for a new game."
	case f.FinishedLevel:
		msg = fmt.Sprintf("Level %d complete! Move off the edge of the map to advance to the next level.", f.Level+1)
	case f.Level == 0:
		msg = fmt.Sprintf("Welcome to level %d. Collect the gold coins and reveal the whole mansion. (Press ? for help.)", f.Level+1)
	case f.Level == 1:
		msg = fmt.Sprintf("Welcome to level %d. Watch out for the patrolling guard! (Press ? for help.)", f.Level+1)
	default:
		msg = "Press ? for help"
	}

	r.putText(0, 0, msg, style)
}

// drawBottomBar shows health, the air meter while submerged, the map-seen
// tally, and the loot tally.
func (r *Renderer) drawBottomBar(f *Frame) {
	w, h := r.screen.Size()
	y := h - 1

	r.fillRow(y, tcell.StyleDefault)

	healthStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	x := 0
	x = r.putTextAdvance(x, y, "Health ", healthStyle)
	for i := 0; i < f.Player.MaxHealth; i++ {
		glyph := '♥'
		if i >= f.Player.Health {
			glyph = '·'
		}
		r.screen.SetContent(x, y, glyph, nil, healthStyle)
		x++
	}

	p := f.Player
	underwater := f.Map.Cells.At(p.Pos.X, p.Pos.Y).Type == gamemap.GroundWater &&
		p.TurnsRemainingUnderwater > 0

	if underwater {
		airStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)
		x = w / 4
		x = r.putTextAdvance(x, y, "Air ", airStyle)
		for i := 0; i < airMeterSize; i++ {
			glyph := 'o'
			if i >= p.TurnsRemainingUnderwater-1 {
				glyph = '·'
			}
			r.screen.SetContent(x, y, glyph, nil, airStyle)
			x++
		}
	}

	percentSeen := f.Map.PercentSeen()

	seenMsg := fmt.Sprintf("Level %d: %d%% Seen", f.Level+1, percentSeen)
	r.putText((w-runewidth.StringWidth(seenMsg))/2, y,
		seenMsg, tcell.StyleDefault.Foreground(tcell.ColorSilver))

	// The loot total stays hidden until the whole mansion has been seen.
	var lootMsg string
	if percentSeen < 100 {
		lootMsg = fmt.Sprintf("Loot %d/?", p.Gold)
	} else {
		lootMsg = fmt.Sprintf("Loot %d/%d", p.Gold, f.Map.TotalLoot)
	}
	r.putText(w-runewidth.StringWidth(lootMsg)-1, y,
		lootMsg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func (r *Renderer) putTextAdvance(x, y int, s string, style tcell.Style) int {
	r.putText(x, y, s, style)
	return x + runewidth.StringWidth(s)
}

func (r *Renderer) fillRow(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
