// Package game is the top layer of the simulation: a Session holds one
// playthrough's state and turn logic, and a Game drives a Session from a
// tcell screen, local or served over SSH.
package game

import (
	"fmt"

	"disguiser/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Game couples one Session to one screen and runs the event loop.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
}

// New creates a Game on the local terminal.
func New(seed int64) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, seed), nil
}

// NewWithScreen creates a Game on an already-initialized screen, such as one
// backed by an SSH session.
func NewWithScreen(screen tcell.Screen, seed int64) *Game {
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  NewSession(seed),
	}
}

// Run is the main loop: draw, wait for a key, apply it. It returns when the
// player quits or the screen's event stream ends.
func (g *Game) Run() {
	defer g.screen.Fini()

	for {
		g.renderer.DrawFrame(g.frame())

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if g.session.ShowHelp {
				g.processHelpKey(ev)
				continue
			}
			action := keyToAction(ev)
			if action == ActionQuit {
				return
			}
			g.processAction(action)
		case nil:
			// The screen was finalized out from under us (disconnect).
			return
		}
	}
}

func (g *Game) frame() *render.Frame {
	s := g.session
	return &render.Frame{
		Map:           s.Map,
		Player:        s.Player,
		Popups:        s.Popups.All(),
		Level:         s.Level,
		FinishedLevel: s.FinishedLevel,
		SeeAll:        s.SeeAll,
		ShowMsgs:      s.ShowMsgs,
		ShowHelp:      s.ShowHelp,
		HelpPage:      s.HelpPage,
	}
}

// processAction handles one in-game action.
func (g *Game) processAction(action Action) {
	s := g.session

	switch action {
	case ActionHelp:
		s.ShowHelp = true
	case ActionToggleMsgs:
		s.ShowMsgs = !s.ShowMsgs
	case ActionSeeAll:
		s.ToggleSeeAll()
	case ActionForgetSeen:
		s.MarkAllUnseen()
	case ActionToggleDisguise:
		s.ToggleDisguise()
	case ActionCollectAllLoot:
		s.CollectAllLoot()
	case ActionRevealSeen:
		s.MarkAllSeen()
	case ActionRestart:
		s.Restart()
	default:
		if dpos, ok := actionToDelta(action); ok {
			s.MovePlayer(dpos)
		}
	}
}

// processHelpKey handles keys while the help overlay is open: page with the
// left/right arrows, close with Esc or ?.
func (g *Game) processHelpKey(ev *tcell.EventKey) {
	s := g.session

	if ev.Modifiers()&tcell.ModCtrl != 0 {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		s.ShowHelp = false
		return
	case tcell.KeyLeft:
		if s.HelpPage > 0 {
			s.HelpPage--
		}
		return
	case tcell.KeyRight:
		if s.HelpPage < render.NumHelpPages-1 {
			s.HelpPage++
		}
		return
	}

	switch ev.Rune() {
	case '?':
		s.ShowHelp = false
	case 'h', 'H', '4':
		if s.HelpPage > 0 {
			s.HelpPage--
		}
	case 'l', 'L', '6':
		if s.HelpPage < render.NumHelpPages-1 {
			s.HelpPage++
		}
	}
}
