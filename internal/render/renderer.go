// Package render draws a session's state onto a tcell screen: the explored
// map, items, the thief and the guards, speech and noise popups, the help
// overlay, and the two status bars.
package render

import (
	"disguiser/internal/gamemap"
	"disguiser/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// barHeight is the rows reserved for each status bar, top and bottom.
const barHeight = 1

// Frame is everything the renderer needs to draw one frame. The game layer
// fills one in from its session each time around the event loop.
type Frame struct {
	Map    *gamemap.Map
	Player *gamemap.Player
	Popups []gamemap.Popup

	Level         int
	FinishedLevel bool
	SeeAll        bool
	ShowMsgs      bool
	ShowHelp      bool
	HelpPage      int
}

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawFrame renders one complete frame and shows it.
func (r *Renderer) DrawFrame(f *Frame) {
	r.screen.Clear()

	w, h := r.screen.Size()
	viewSize := geom.Coord{X: w, Y: h - 2*barHeight}
	worldSize := geom.Coord{X: f.Map.Cells.SizeX(), Y: f.Map.Cells.SizeY()}
	cam := NewCamera(barHeight, viewSize, worldSize, f.Player.Pos)

	r.drawMap(cam, f)
	r.drawItems(cam, f)
	r.drawPlayer(cam, f)
	r.drawGuards(cam, f)
	r.drawOverheadIcons(cam, f)

	if f.ShowMsgs {
		r.drawPopups(cam, f)
	}

	if f.ShowHelp {
		r.drawHelp(f.HelpPage)
	}

	r.drawTopBar(f)
	r.drawBottomBar(f)

	r.screen.Show()
}

func (r *Renderer) drawMap(cam *Camera, f *Frame) {
	m := f.Map

	for y := 0; y < m.Cells.SizeY(); y++ {
		for x := 0; x < m.Cells.SizeX(); x++ {
			cell := m.Cells.At(x, y)
			if !cell.Seen && !f.SeeAll {
				continue
			}
			sx, sy, onScreen := cam.WorldToScreen(geom.Coord{X: x, Y: y})
			if !onScreen {
				continue
			}

			glyph, color := cellGlyph(cell.Type)
			if !cell.Lit && !gamemap.TileDef(cell.Type).IgnoresLighting {
				color = unlitColor
			}
			r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
		}
	}
}

func (r *Renderer) drawItems(cam *Camera, f *Frame) {
	m := f.Map

	for _, item := range m.Items {
		cell := m.Cells.At(item.Pos.X, item.Pos.Y)
		if !cell.Seen && !f.SeeAll {
			continue
		}
		sx, sy, onScreen := cam.WorldToScreen(item.Pos)
		if !onScreen {
			continue
		}

		glyph, color := itemGlyph(item.Kind)
		if !cell.Lit {
			color = unlitColor
		}
		r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
	}
}

func (r *Renderer) drawPlayer(cam *Camera, f *Frame) {
	p := f.Player

	sx, sy, onScreen := cam.WorldToScreen(p.Pos)
	if !onScreen {
		return
	}

	lit := f.Map.Cells.At(p.Pos.X, p.Pos.Y).Lit
	hidden := p.Hidden(f.Map)

	var color tcell.Color
	switch {
	case p.DamagedLastTurn:
		color = tcell.ColorRed
	case p.Noisy:
		color = tcell.ColorAqua
	case hidden:
		color = tcell.ColorGray
	case !lit:
		color = unlitColor
	case p.Disguised:
		color = tcell.ColorFuchsia
	default:
		color = tcell.ColorSilver
	}

	r.screen.SetContent(sx, sy, '@', nil, tcell.StyleDefault.Foreground(color))
}

func (r *Renderer) drawGuards(cam *Camera, f *Frame) {
	for _, g := range f.Map.Guards {
		cell := f.Map.Cells.At(g.Pos.X, g.Pos.Y)

		visible := f.SeeAll || cell.Seen || g.Speaking

		// An unseen guard is still hinted at when he's nearly on top of
		// the player.
		if !visible && f.Player.Pos.Sub(g.Pos).LengthSq() > 36 {
			continue
		}

		sx, sy, onScreen := cam.WorldToScreen(g.Pos)
		if !onScreen {
			continue
		}

		var color tcell.Color
		switch {
		case !visible:
			color = tcell.ColorGray
		case g.Mode == gamemap.Patrol && !g.Speaking && !cell.Lit:
			color = unlitColor
		default:
			color = tcell.ColorFuchsia
		}

		glyph := dirGlyph(g.Dir.X, g.Dir.Y)
		r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
	}
}

func (r *Renderer) drawOverheadIcons(cam *Camera, f *Frame) {
	for _, g := range f.Map.Guards {
		icon, ok := overheadIcon(f, g)
		if !ok {
			continue
		}
		// One world tile above the guard's head.
		sx, sy, onScreen := cam.WorldToScreen(g.Pos.Add(geom.Coord{X: 0, Y: 1}))
		if !onScreen {
			continue
		}
		r.screen.SetContent(sx, sy, icon, nil, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

// overheadIcon picks the alert icon floating over a guard: '!' while
// chasing, '?' in any other non-patrol state.
func overheadIcon(f *Frame, g *gamemap.Guard) (rune, bool) {
	cell := f.Map.Cells.At(g.Pos.X, g.Pos.Y)
	visible := f.SeeAll || cell.Seen || g.Speaking
	if !visible && f.Player.Pos.Sub(g.Pos).LengthSq() > 25 {
		return 0, false
	}

	if g.Mode == gamemap.ChaseVisibleTarget {
		return '!', true
	}
	if g.Mode != gamemap.Patrol {
		return '?', true
	}
	return 0, false
}

func (r *Renderer) drawPopups(cam *Camera, f *Frame) {
	w, h := r.screen.Size()

	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)

	for _, popup := range f.Popups {
		if popup.Kind == gamemap.PopupNarration {
			r.putText((w-runewidth.StringWidth(popup.Msg))/2, h/2, popup.Msg, style)
			continue
		}

		sx, sy, onScreen := cam.WorldToScreen(popup.Pos)
		if !onScreen {
			continue
		}

		// Center over the anchor, a row above it, clipped to the screen.
		x := sx - runewidth.StringWidth(popup.Msg)/2
		if x < 0 {
			x = 0
		}
		if over := x + runewidth.StringWidth(popup.Msg) - w; over > 0 {
			x -= over
		}
		y := sy - 1
		if y < barHeight {
			y = sy + 1
		}
		r.putText(x, y, popup.Msg, style)
	}
}

// putText writes a string to the screen at (x, y), advancing by each rune's
// terminal width.
func (r *Renderer) putText(x, y int, s string, style tcell.Style) {
	for _, c := range s {
		r.screen.SetContent(x, y, c, nil, style)
		x += runewidth.RuneWidth(c)
	}
}
