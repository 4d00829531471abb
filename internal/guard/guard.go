// Package guard drives the guard state machine: perception, patrol, pursuit,
// and the speech that telegraphs each state change to the player.
package guard

import (
	"math/rand"

	"disguiser/internal/gamemap"
	"disguiser/internal/geom"
)

// shout is a guard alerting others to a target position. Shouts collected
// during a turn are delivered after every guard has acted, so the alert takes
// effect on the following turn.
type shout struct {
	PosShouter geom.Coord
	PosTarget  geom.Coord
}

// shoutEarshot is the squared-distance budget of a guard shout; thief noises
// carry half as far.
const shoutEarshot = 150

// turn carries the per-turn state shared by every guard's update.
type turn struct {
	rng    *rand.Rand
	seeAll bool
	popups *gamemap.Popups
	lines  *Lines
	m      *gamemap.Map
	player *gamemap.Player

	// occupied tracks live guard positions so no two guards end the turn on
	// the same tile.
	occupied map[geom.Coord]bool
	shouts   []shout
}

// ActAll runs one turn of guard AI over every guard on the map, then delivers
// any shouts raised during the turn.
func ActAll(rng *rand.Rand, seeAll bool, popups *gamemap.Popups, lines *Lines, m *gamemap.Map, player *gamemap.Player) {
	for _, g := range m.Guards {
		g.PreTurn()
	}

	t := &turn{
		rng:      rng,
		seeAll:   seeAll,
		popups:   popups,
		lines:    lines,
		m:        m,
		player:   player,
		occupied: make(map[geom.Coord]bool, len(m.Guards)),
	}
	for _, g := range m.Guards {
		t.occupied[g.Pos] = true
	}

	for _, g := range m.Guards {
		delete(t.occupied, g.Pos)
		t.act(g)
		t.occupied[g.Pos] = true
	}

	for i := range t.shouts {
		alertNearbyGuards(m, &t.shouts[i])
	}
}

func alertNearbyGuards(m *gamemap.Map, s *shout) {
	for _, g := range m.GuardsInEarshot(s.PosShouter, shoutEarshot) {
		if g.Pos != s.PosShouter {
			g.HearGuard(s.PosTarget)
		}
	}
}

func (t *turn) act(g *gamemap.Guard) {
	modePrev := g.Mode
	posPrev := g.Pos

	// See if senses will kick us into a new mode.

	if t.seesThief(g) {
		g.Goal = t.player.Pos

		if g.Mode == gamemap.Patrol && (t.player.Disguised || !adjacentTo(g, t.player.Pos)) {
			if t.player.Disguised {
				g.Mode = gamemap.LookAtDisguised
			} else {
				g.Mode = gamemap.Look
			}
			g.ModeTimeout = 3 + t.rng.Intn(3)
			g.Dir = UpdateDir(g.Dir, t.player.Pos.Sub(g.Pos))
		} else {
			g.Mode = gamemap.ChaseVisibleTarget
		}
	} else if g.Mode == gamemap.ChaseVisibleTarget {
		g.Mode = gamemap.MoveToLastSighting
		g.ModeTimeout = 3
		g.Goal = t.player.Pos
	}

	if g.Mode != gamemap.ChaseVisibleTarget {
		if g.HeardGuard {
			g.Mode = gamemap.MoveToGuardShout
			g.ModeTimeout = 2 + t.rng.Intn(4)
			g.Goal = g.HeardGuardPos
		}

		if g.HeardThief {
			if adjacentTo(g, t.player.Pos) {
				g.Mode = gamemap.ChaseVisibleTarget
				g.Goal = t.player.Pos
			} else if g.Mode == gamemap.Patrol {
				g.Mode = gamemap.Listen
				g.ModeTimeout = 3 + t.rng.Intn(3)
				g.Dir = UpdateDir(g.Dir, t.player.Pos.Sub(g.Pos))
			} else {
				g.Mode = gamemap.MoveToLastSound
				g.ModeTimeout = 3 + t.rng.Intn(3)
				g.Goal = t.player.Pos
			}
		}
	}

	// Pass time in the current mode.

	switch g.Mode {
	case gamemap.Patrol:
		t.patrolStep(g)

	case gamemap.Look, gamemap.LookAtDisguised, gamemap.Listen:
		g.ModeTimeout--
		if g.ModeTimeout == 0 {
			g.Mode = gamemap.Patrol
		}

	case gamemap.ChaseVisibleTarget:
		if adjacentTo(g, t.player.Pos) {
			g.Dir = UpdateDir(g.Dir, g.Goal.Sub(g.Pos))
			if modePrev == gamemap.ChaseVisibleTarget {
				if !t.player.DamagedLastTurn {
					t.popups.Damage(g.Pos, t.lines.damage.next())
				}
				t.player.ApplyDamage(1)
			}
		} else {
			t.moveTowardGoal(g)
		}

	case gamemap.MoveToLastSighting, gamemap.MoveToLastSound, gamemap.MoveToGuardShout:
		if !t.moveTowardGoal(g) {
			g.ModeTimeout--
		}

		if g.ModeTimeout == 0 {
			g.Mode = gamemap.Patrol
			SetupGoalRegion(t.rng, t.m, g)
		}
	}

	// If we moved, update state based on target visibility from the new
	// position.

	if g.Pos != posPrev {
		g.HasMoved = true

		if t.seesThief(g) {
			g.Goal = t.player.Pos

			if g.Mode == gamemap.Patrol && (t.player.Disguised || !adjacentTo(g, t.player.Pos)) {
				if t.player.Disguised {
					g.Mode = gamemap.LookAtDisguised
				} else {
					g.Mode = gamemap.Look
				}
				g.ModeTimeout = 3 + t.rng.Intn(3)
			} else {
				g.Mode = gamemap.ChaseVisibleTarget
			}

			g.Dir = UpdateDir(g.Dir, t.player.Pos.Sub(g.Pos))
		} else if g.Mode == gamemap.ChaseVisibleTarget {
			g.Mode = gamemap.MoveToLastSighting
			g.ModeTimeout = 3
			g.Goal = t.player.Pos
		}
	}

	g.HeardThief = false

	// Say something to indicate state changes.

	if it := linesForStateChange(t.lines, modePrev, g.Mode); it != nil {
		t.say(g, it.next())
	}

	if g.Mode == gamemap.ChaseVisibleTarget && modePrev != gamemap.ChaseVisibleTarget {
		t.shouts = append(t.shouts, shout{PosShouter: g.Pos, PosTarget: t.player.Pos})
	}
}

// say raises a speech popup if the player is close enough to notice, and
// marks the guard as speaking so the renderer shows them even when unseen.
func (t *turn) say(g *gamemap.Guard, msg string) {
	d := g.Pos.Sub(t.player.Pos)
	if d.LengthSq() < 200 || t.seeAll {
		t.popups.GuardSpeech(g.Pos, msg)
	}
	g.Speaking = true
}

func adjacentTo(g *gamemap.Guard, pos geom.Coord) bool {
	d := pos.Sub(g.Pos)
	return abs(d.X) < 2 && abs(d.Y) < 2
}

// seesThief decides whether the guard perceives the player this turn: in
// front of the guard, within the mode- and lighting-dependent sight cutoff,
// and either unhidden with clear line of sight or within arm's reach of an
// already-suspicious guard.
func (t *turn) seesThief(g *gamemap.Guard) bool {
	d := t.player.Pos.Sub(g.Pos)
	if g.Dir.Dot(d) < 0 {
		return false
	}

	thiefDisguised := t.player.Disguised && g.Mode != gamemap.ChaseVisibleTarget
	playerIsLit := !thiefDisguised && t.m.Cells.At(t.player.Pos.X, t.player.Pos.Y).Lit

	if d.LengthSq() >= sightCutoff(g, playerIsLit) {
		return false
	}

	if !t.player.Hidden(t.m) && lineOfSight(t.m, g.Pos, t.player.Pos) {
		return true
	}

	if g.Mode != gamemap.Patrol && abs(d.X) < 2 && abs(d.Y) < 2 {
		return true
	}

	return false
}

func cutoffLit(g *gamemap.Guard) int {
	if g.Mode == gamemap.Patrol || g.Mode == gamemap.LookAtDisguised {
		return 40
	}
	return 75
}

func cutoffUnlit(g *gamemap.Guard) int {
	if g.Mode == gamemap.Patrol || g.Mode == gamemap.LookAtDisguised {
		return 3
	}
	return 33
}

func sightCutoff(g *gamemap.Guard, litTarget bool) int {
	if litTarget {
		return cutoffLit(g)
	}
	return cutoffUnlit(g)
}

// patrolStep advances the guard along the patrol-region graph, picking a new
// neighboring region whenever the current goal region is reached. Walking
// straight into an undisguised player starts a chase.
func (t *turn) patrolStep(g *gamemap.Guard) {
	bumpedThief := t.moveTowardRegion(g)

	if t.m.Cells.At(g.Pos.X, g.Pos.Y).Region == g.RegionGoal {
		regionPrev := g.RegionPrev
		g.RegionPrev = g.RegionGoal
		g.RegionGoal = t.m.RandomNeighborRegion(t.rng, g.RegionGoal, regionPrev)
	}

	if bumpedThief && !t.player.Disguised {
		g.Mode = gamemap.ChaseVisibleTarget
		g.Goal = t.player.Pos
		g.Dir = UpdateDir(g.Dir, g.Goal.Sub(g.Pos))
	}
}

// moveTowardRegion steps one tile down the distance field toward the guard's
// goal region. Returns true if the step would land on the player.
func (t *turn) moveTowardRegion(g *gamemap.Guard) bool {
	if g.RegionGoal == gamemap.InvalidRegion {
		return false
	}

	distField := t.m.ComputeDistancesToRegion(g.RegionGoal)
	posNext := t.posNextBest(distField, g.Pos)

	if t.player.Pos == posNext {
		return true
	}

	g.Dir = UpdateDir(g.Dir, posNext.Sub(g.Pos))
	g.Pos = posNext
	return false
}

// moveTowardGoal steps one tile toward the guard's goal position. Returns
// true only if the guard actually moved.
func (t *turn) moveTowardGoal(g *gamemap.Guard) bool {
	distField := t.m.ComputeDistancesToPosition(g.Goal)
	posNext := t.posNextBest(distField, g.Pos)
	if posNext == g.Pos {
		return false
	}

	g.Dir = UpdateDir(g.Dir, posNext.Sub(g.Pos))

	if t.player.Pos == posNext {
		return false
	}

	g.Pos = posNext
	return true
}

// posNextBest picks the adjacent position (or the current one) with the
// lowest distance-field value that a guard may actually occupy.
func (t *turn) posNextBest(distField gamemap.DistField, posFrom geom.Coord) geom.Coord {
	costBest := gamemap.InfiniteCost
	posBest := posFrom

	sizeX, sizeY := t.m.Cells.SizeX(), t.m.Cells.SizeY()
	xMin, yMin := max(0, posFrom.X-1), max(0, posFrom.Y-1)
	xMax, yMax := min(sizeX, posFrom.X+2), min(sizeY, posFrom.Y+2)

	for x := xMin; x < xMax; x++ {
		for y := yMin; y < yMax; y++ {
			pos := geom.Coord{X: x, Y: y}

			cost := distField.At(pos)
			if cost == gamemap.InfiniteCost {
				continue
			}
			if t.m.GuardMoveCost(posFrom, pos) == gamemap.InfiniteCost {
				continue
			}
			if t.m.Cells.At(x, y).Type == gamemap.GroundWater {
				continue
			}
			if t.occupied[pos] {
				continue
			}

			if cost < costBest {
				costBest = cost
				posBest = pos
			}
		}
	}

	return posBest
}

// SetupGoalRegion picks the guard's next patrol goal from wherever they
// currently stand. Also used at spawn to give each guard an initial goal.
func SetupGoalRegion(rng *rand.Rand, m *gamemap.Map, g *gamemap.Guard) {
	regionCur := m.Cells.At(g.Pos.X, g.Pos.Y).Region

	if g.RegionGoal != gamemap.InvalidRegion && regionCur == g.RegionPrev {
		return
	}

	if regionCur == gamemap.InvalidRegion {
		g.RegionGoal = m.ClosestRegion(g.Pos)
	} else {
		g.RegionGoal = m.RandomNeighborRegion(rng, regionCur, g.RegionPrev)
		g.RegionPrev = regionCur
	}
}

// InitialDir returns the direction a freshly-placed guard should face: toward
// the first step of their patrol.
func InitialDir(m *gamemap.Map, g *gamemap.Guard) geom.Coord {
	if g.RegionGoal == gamemap.InvalidRegion {
		return g.Dir
	}

	distField := m.ComputeDistancesToRegion(g.RegionGoal)

	// Ignore occupancy here; only the direction matters.
	t := &turn{m: m}
	posNext := t.posNextBest(distField, g.Pos)

	return UpdateDir(g.Dir, posNext.Sub(g.Pos))
}

// UpdateDir snaps dirAim onto whichever cardinal direction best matches it,
// breaking ties toward the forward axis. A zero aim keeps the current facing.
func UpdateDir(dirForward, dirAim geom.Coord) geom.Coord {
	dirLeft := geom.Coord{X: -dirForward.Y, Y: dirForward.X}

	dotForward := dirForward.Dot(dirAim)
	dotLeft := dirLeft.Dot(dirAim)

	switch {
	case abs(dotForward) >= abs(dotLeft):
		if dotForward >= 0 {
			return dirForward
		}
		return dirForward.Neg()
	case dotLeft >= 0:
		return dirLeft
	default:
		return dirLeft.Neg()
	}
}

// lineOfSight walks the Bresenham line between from and to, excluding both
// endpoints, and reports whether the way is clear of sight blockers.
func lineOfSight(m *gamemap.Map, from, to geom.Coord) bool {
	x, y := from.X, from.Y

	dx := to.X - x
	dy := to.Y - y

	ax, ay := abs(dx), abs(dy)

	xInc, yInc := 1, 1
	if dx <= 0 {
		xInc = -1
	}
	if dy <= 0 {
		yInc = -1
	}

	errAcc := ay - ax
	n := ax + ay - 1

	ax *= 2
	ay *= 2

	for ; n > 0; n-- {
		if errAcc > 0 {
			y += yInc
			errAcc -= ax
		} else {
			x += xInc
			errAcc += ay
		}

		if m.BlocksSight(geom.Coord{X: x, Y: y}) {
			return false
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
