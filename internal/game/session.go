package game

import (
	"math/rand"

	"disguiser/internal/gamemap"
	"disguiser/internal/generate"
	"disguiser/internal/geom"
	"disguiser/internal/guard"
)

const initialLevel = 0

// thiefNoiseEarshot is how far (squared tiles) player-made noise carries.
const thiefNoiseEarshot = 75

// maxAir is how many turns the player can stay submerged.
const maxAir = 7

// Session owns all the state of one playthrough: the rng, the current level
// and its map, the player, and the per-turn popup and speech-line state.
// Independent sessions share nothing, so one process can host many.
type Session struct {
	rng *rand.Rand

	Level         int
	Map           *gamemap.Map
	Player        *gamemap.Player
	Popups        *gamemap.Popups
	FinishedLevel bool

	SeeAll   bool
	ShowMsgs bool
	ShowHelp bool
	HelpPage int

	lines *guard.Lines
}

// NewSession starts a playthrough from the given seed. Equal seeds produce
// identical playthroughs for identical inputs.
func NewSession(seed int64) *Session {
	s := &Session{
		rng:    rand.New(rand.NewSource(seed)),
		Popups: &gamemap.Popups{},
		lines:  guard.NewLines(),
	}
	s.Restart()
	return s
}

// Restart abandons the current playthrough and begins a new one, continuing
// the session's rng stream.
func (s *Session) Restart() {
	s.Level = initialLevel
	s.Map = generate.MansionMap(s.rng, s.Level)
	s.FinishedLevel = false
	s.Player = gamemap.NewPlayer(s.Map.PosStart)
	s.ShowMsgs = true
	s.ShowHelp = false
	s.Popups.Clear()

	s.updateMapVisibility()
}

// levelComplete reports whether the current level's goals are met: all loot
// collected and the whole map seen.
func (s *Session) levelComplete() bool {
	return s.Map.AllLootCollected() && s.Map.AllSeen()
}

func (s *Session) advanceToNextLevel() {
	s.Level++
	s.Map = generate.MansionMap(s.rng, s.Level)
	s.FinishedLevel = false

	p := s.Player
	p.Pos = s.Map.PosStart
	p.Dir = geom.Coord{X: 0, Y: -1}
	p.Gold = 0
	p.Noisy = false
	p.Disguised = false
	p.DamagedLastTurn = false
	p.TurnsRemainingUnderwater = 0

	s.updateMapVisibility()
}

// MovePlayer attempts to move the player by dpos and, if a turn results,
// advances the simulation. A zero dpos waits in place. Moving off the level
// edge once the level is finished advances to the next level.
func (s *Session) MovePlayer(dpos geom.Coord) {
	p := s.Player

	// The dead don't move.
	if p.Health == 0 {
		return
	}

	posNew := p.Pos.Add(dpos)

	if !s.Map.OnLevel(posNew) && s.levelComplete() {
		s.advanceToNextLevel()
		return
	}

	if s.blocked(p.Pos, posNew) {
		if dpos.X == 0 || dpos.Y == 0 || s.haltsSlide(posNew) {
			s.tryUseInDirection(dpos)
			return
		}

		// A blocked diagonal can deflect into a slide along the obstacle.
		xBlocked := s.blocked(p.Pos, p.Pos.Add(geom.Coord{X: dpos.X}))
		yBlocked := s.blocked(p.Pos, p.Pos.Add(geom.Coord{Y: dpos.Y}))

		if xBlocked {
			if yBlocked {
				s.tryUseInDirection(dpos)
				return
			}
			dpos.X = 0
		} else {
			if !yBlocked {
				s.tryUseInDirection(dpos)
				return
			}
			dpos.Y = 0
		}
	}

	s.preTurn()

	p.Dir = guard.UpdateDir(p.Dir, dpos)
	p.Pos = p.Pos.Add(dpos)
	p.Gold += s.Map.CollectLootAt(p.Pos)

	if dpos != (geom.Coord{}) && s.Map.Cells.At(p.Pos.X, p.Pos.Y).Type == gamemap.GroundWoodCreaky {
		s.makeNoise("«creak»")
	}

	s.advanceTime()
}

// tryUseInDirection swaps outfits with an outfit stand the player bumped
// into. A successful swap costs a turn.
func (s *Session) tryUseInDirection(dpos geom.Coord) {
	pos := s.Player.Pos.Add(dpos)

	outfitCur := gamemap.ItemOutfit1
	if s.Player.Disguised {
		outfitCur = gamemap.ItemOutfit2
	}

	outfitNew, ok := s.Map.TryUseOutfitAt(pos, outfitCur)
	if !ok {
		return
	}

	s.preTurn()
	s.Player.Disguised = outfitNew != gamemap.ItemOutfit1
	s.Player.Dir = guard.UpdateDir(s.Player.Dir, dpos)
	s.advanceTime()
}

func (s *Session) makeNoise(noise string) {
	p := s.Player
	p.Noisy = true
	s.Popups.Noise(p.Pos, noise)

	for _, g := range s.Map.GuardsInEarshot(p.Pos, thiefNoiseEarshot) {
		g.HearThief()
	}
}

// haltsSlide reports whether pos stops a diagonal slide instead of letting
// the player deflect past it: guards and outfit stands do, walls don't.
func (s *Session) haltsSlide(pos geom.Coord) bool {
	if !s.Map.OnLevel(pos) {
		return false
	}
	return s.Map.IsGuardAt(pos) || s.Map.IsOutfitAt(pos)
}

func (s *Session) preTurn() {
	s.ShowMsgs = true
	s.Popups.Clear()
	s.Player.Noisy = false
	s.Player.DamagedLastTurn = false
}

var cardinalDirs = [4]geom.Coord{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

func (s *Session) advanceTime() {
	p := s.Player

	if s.Map.Cells.At(p.Pos.X, p.Pos.Y).Type == gamemap.GroundWater {
		if p.TurnsRemainingUnderwater > 0 {
			p.TurnsRemainingUnderwater--
		}
	} else {
		p.TurnsRemainingUnderwater = maxAir
	}

	guard.ActAll(s.rng, s.SeeAll, s.Popups, s.lines, s.Map, p)

	s.updateMapVisibility()

	if s.levelComplete() {
		if !s.FinishedLevel {
			s.Popups.Narration("Mansion looted! Make your escape off the grounds.")
		}
		s.FinishedLevel = true
	}
}

// updateMapVisibility recomputes seen cells from the player's position, plus
// from each adjacent cell the player can see into, so doorways reveal the
// room beyond.
func (s *Session) updateMapVisibility() {
	m := s.Map
	pos := s.Player.Pos

	m.RecomputeVisibility(pos)

	for _, dir := range &cardinalDirs {
		if m.PlayerCanSeeInDirection(pos, dir) {
			m.RecomputeVisibility(pos.Add(dir))
		}
	}
}

// blocked reports whether the player may not step from posOld to posNew.
// One-way windows pass only in their facing direction; guards and outfit
// stands block (bumping an outfit stand swaps outfits instead).
func (s *Session) blocked(posOld, posNew geom.Coord) bool {
	m := s.Map

	if !m.OnLevel(posNew) {
		return true
	}

	if posOld == posNew {
		return false
	}

	cellType := m.Cells.At(posNew.X, posNew.Y).Type

	if gamemap.TileDef(cellType).BlocksPlayer {
		return true
	}

	switch cellType {
	case gamemap.OneWayWindowE:
		if posNew.X <= posOld.X {
			return true
		}
	case gamemap.OneWayWindowW:
		if posNew.X >= posOld.X {
			return true
		}
	case gamemap.OneWayWindowN:
		if posNew.Y <= posOld.Y {
			return true
		}
	case gamemap.OneWayWindowS:
		if posNew.Y >= posOld.Y {
			return true
		}
	}

	if m.IsGuardAt(posNew) {
		return true
	}

	if m.IsOutfitAt(posNew) {
		return true
	}

	return false
}

// Debug commands. These skip the turn machinery entirely.

// ToggleSeeAll toggles omniscient rendering and guard awareness of it.
func (s *Session) ToggleSeeAll() {
	s.SeeAll = !s.SeeAll
}

// MarkAllUnseen forgets the explored map, then re-reveals what the player
// currently sees.
func (s *Session) MarkAllUnseen() {
	s.Map.MarkAllUnseen()
	s.updateMapVisibility()
	s.FinishedLevel = s.levelComplete()
}

// ToggleDisguise flips the player's disguise without visiting an outfit stand.
func (s *Session) ToggleDisguise() {
	s.Player.Disguised = !s.Player.Disguised
}

// CollectAllLoot grabs every remaining coin from anywhere on the map.
func (s *Session) CollectAllLoot() {
	s.Player.Gold += s.Map.CollectAllLoot()
	s.FinishedLevel = s.levelComplete()
}

// MarkAllSeen reveals the whole map.
func (s *Session) MarkAllSeen() {
	s.Map.MarkAllSeen()
	s.FinishedLevel = s.levelComplete()
}
