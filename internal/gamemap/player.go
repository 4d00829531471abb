package gamemap

import "disguiser/internal/geom"

const playerMaxHealth = 5

// Player is the thief's state. One instance per session, replaced on restart.
type Player struct {
	Pos       geom.Coord
	Dir       geom.Coord
	MaxHealth int
	Health    int
	Gold      int
	Disguised bool

	Noisy           bool // did the player make noise last turn?
	DamagedLastTurn bool

	TurnsRemainingUnderwater int
}

// NewPlayer returns a fresh player at pos, facing south toward the viewer.
func NewPlayer(pos geom.Coord) *Player {
	return &Player{
		Pos:       pos,
		Dir:       geom.Coord{X: 0, Y: -1},
		MaxHealth: playerMaxHealth,
		Health:    playerMaxHealth,
	}
}

// ApplyDamage subtracts d from health, saturating at zero.
func (p *Player) ApplyDamage(d int) {
	if d > p.Health {
		d = p.Health
	}
	p.Health -= d
	p.DamagedLastTurn = true
}

// Hidden reports whether the player is concealed from normal guard sight:
// standing in concealing terrain undisguised, or fully submerged. Concealment
// is suppressed entirely while any guard is actively chasing.
func (p *Player) Hidden(m *Map) bool {
	for _, g := range m.Guards {
		if g.Mode == ChaseVisibleTarget {
			return false
		}
	}

	if !p.Disguised && m.HidesPlayer(p.Pos) {
		return true
	}

	cell := m.Cells.At(p.Pos.X, p.Pos.Y)
	return cell.Type == GroundWater && p.TurnsRemainingUnderwater > 0
}
