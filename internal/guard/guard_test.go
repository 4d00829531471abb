package guard

import (
	"math/rand"
	"testing"

	"disguiser/internal/gamemap"
	"disguiser/internal/geom"

	"github.com/stretchr/testify/require"
)

// litMap returns an open marble floor with every cell lit, the worst terrain
// for a thief.
func litMap(sizeX, sizeY int) *gamemap.Map {
	m := &gamemap.Map{Cells: gamemap.NewCellGrid(sizeX, sizeY, gamemap.GroundMarble)}
	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			m.Cells.At(x, y).Lit = true
		}
	}
	return m
}

func newTestGuard(pos, dir geom.Coord) *gamemap.Guard {
	return &gamemap.Guard{
		Pos:           pos,
		Dir:           dir,
		Mode:          gamemap.Patrol,
		HeardGuardPos: pos,
		Goal:          pos,
		RegionGoal:    gamemap.InvalidRegion,
		RegionPrev:    gamemap.InvalidRegion,
	}
}

func actOnce(m *gamemap.Map, player *gamemap.Player) *gamemap.Popups {
	popups := &gamemap.Popups{}
	ActAll(rand.New(rand.NewSource(1)), false, popups, NewLines(), m, player)
	return popups
}

func TestGuardSpotsThiefAhead(t *testing.T) {
	m := litMap(11, 11)
	g := newTestGuard(geom.Coord{X: 2, Y: 5}, geom.Coord{X: 1, Y: 0})
	m.Guards = []*gamemap.Guard{g}
	player := gamemap.NewPlayer(geom.Coord{X: 6, Y: 5})

	popups := actOnce(m, player)

	if g.Mode != gamemap.Look {
		t.Fatalf("mode = %d, want Look", g.Mode)
	}
	if !g.Speaking {
		t.Error("a guard pausing to look should speak")
	}
	require.Len(t, popups.All(), 1)
	require.Equal(t, gamemap.PopupGuardSpeech, popups.All()[0].Kind)
}

func TestGuardIgnoresThiefBehind(t *testing.T) {
	m := litMap(11, 11)
	g := newTestGuard(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 1, Y: 0})
	m.Guards = []*gamemap.Guard{g}
	player := gamemap.NewPlayer(geom.Coord{X: 2, Y: 5})

	actOnce(m, player)

	if g.Mode != gamemap.Patrol {
		t.Fatalf("mode = %d, want Patrol", g.Mode)
	}
	if player.Health != player.MaxHealth {
		t.Error("player behind the guard should be untouched")
	}
}

func TestGuardIgnoresHiddenThief(t *testing.T) {
	m := litMap(11, 11)
	m.Cells.At(6, 5).HidesPlayer = true
	g := newTestGuard(geom.Coord{X: 2, Y: 5}, geom.Coord{X: 1, Y: 0})
	m.Guards = []*gamemap.Guard{g}
	player := gamemap.NewPlayer(geom.Coord{X: 6, Y: 5})

	actOnce(m, player)

	if g.Mode != gamemap.Patrol {
		t.Fatalf("mode = %d, want Patrol (thief is under a table)", g.Mode)
	}
}

func TestGuardQuestionsDisguisedThief(t *testing.T) {
	m := litMap(11, 11)
	g := newTestGuard(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 1, Y: 0})
	m.Guards = []*gamemap.Guard{g}
	player := gamemap.NewPlayer(geom.Coord{X: 6, Y: 6})
	player.Disguised = true

	actOnce(m, player)

	if g.Mode != gamemap.LookAtDisguised {
		t.Fatalf("mode = %d, want LookAtDisguised", g.Mode)
	}
	if player.Health != player.MaxHealth {
		t.Error("a disguised thief should not be attacked on sight")
	}
}

func TestChaseThenAttack(t *testing.T) {
	m := litMap(11, 11)
	g := newTestGuard(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 1, Y: 0})
	m.Guards = []*gamemap.Guard{g}
	player := gamemap.NewPlayer(geom.Coord{X: 6, Y: 5})

	// First turn: the guard snaps into the chase but doesn't strike yet.
	actOnce(m, player)
	require.Equal(t, gamemap.ChaseVisibleTarget, g.Mode)
	require.Equal(t, player.MaxHealth, player.Health)

	// Second turn: still adjacent, so the blow lands.
	player.DamagedLastTurn = false
	popups := actOnce(m, player)
	require.Equal(t, gamemap.ChaseVisibleTarget, g.Mode)
	require.Equal(t, player.MaxHealth-1, player.Health)
	require.True(t, player.DamagedLastTurn)

	found := false
	for _, p := range popups.All() {
		if p.Kind == gamemap.PopupDamage {
			found = true
		}
	}
	require.True(t, found, "the hit should raise a damage popup")
}

func TestDamageSaturatesAtZero(t *testing.T) {
	m := litMap(11, 11)
	g := newTestGuard(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 1, Y: 0})
	m.Guards = []*gamemap.Guard{g}
	player := gamemap.NewPlayer(geom.Coord{X: 6, Y: 5})
	player.Health = 0

	actOnce(m, player)
	player.DamagedLastTurn = false
	actOnce(m, player)

	if player.Health != 0 {
		t.Fatalf("health = %d, want 0 (never negative)", player.Health)
	}
}

func TestShoutAlertsOtherGuards(t *testing.T) {
	m := litMap(11, 11)
	chaser := newTestGuard(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 1, Y: 0})
	listener := newTestGuard(geom.Coord{X: 5, Y: 8}, geom.Coord{X: 0, Y: 1})
	m.Guards = []*gamemap.Guard{chaser, listener}
	player := gamemap.NewPlayer(geom.Coord{X: 6, Y: 5})

	// Turn one: the chaser spots the thief and shouts. The shout is
	// delivered at end of turn and latched by the listener's next PreTurn.
	actOnce(m, player)
	require.Equal(t, gamemap.ChaseVisibleTarget, chaser.Mode)
	require.True(t, listener.HearingGuard)

	// Turn two: the listener responds to the alert.
	posBefore := listener.Pos
	actOnce(m, player)
	require.Equal(t, gamemap.MoveToGuardShout, listener.Mode)
	require.NotEqual(t, posBefore, listener.Pos)
}

func TestThiefNoiseMakesPatrollerListen(t *testing.T) {
	m := litMap(11, 11)
	g := newTestGuard(geom.Coord{X: 5, Y: 5}, geom.Coord{X: 1, Y: 0})
	m.Guards = []*gamemap.Guard{g}
	// The thief is behind the guard, heard but not seen.
	player := gamemap.NewPlayer(geom.Coord{X: 2, Y: 5})
	g.HearThief()

	actOnce(m, player)

	if g.Mode != gamemap.Listen {
		t.Fatalf("mode = %d, want Listen", g.Mode)
	}
	if g.Dir != (geom.Coord{X: -1, Y: 0}) {
		t.Errorf("dir = %v, want to face the noise", g.Dir)
	}
}

func TestNoTwoGuardsShareATile(t *testing.T) {
	m := litMap(11, 11)
	// Both guards are sent to the same goal next to the player.
	a := newTestGuard(geom.Coord{X: 3, Y: 5}, geom.Coord{X: 1, Y: 0})
	b := newTestGuard(geom.Coord{X: 3, Y: 6}, geom.Coord{X: 1, Y: 0})
	a.Mode = gamemap.MoveToLastSound
	a.ModeTimeout = 10
	a.Goal = geom.Coord{X: 7, Y: 5}
	b.Mode = gamemap.MoveToLastSound
	b.ModeTimeout = 10
	b.Goal = geom.Coord{X: 7, Y: 5}
	m.Guards = []*gamemap.Guard{a, b}
	player := gamemap.NewPlayer(geom.Coord{X: 0, Y: 0})

	for i := 0; i < 6; i++ {
		actOnce(m, player)
		if a.Pos == b.Pos {
			t.Fatalf("guards stacked on %v after turn %d", a.Pos, i+1)
		}
	}
}

func TestUpdateDir(t *testing.T) {
	cases := []struct {
		name    string
		forward geom.Coord
		aim     geom.Coord
		want    geom.Coord
	}{
		{"mostly ahead", geom.Coord{X: 1, Y: 0}, geom.Coord{X: 3, Y: 1}, geom.Coord{X: 1, Y: 0}},
		{"mostly left", geom.Coord{X: 1, Y: 0}, geom.Coord{X: 1, Y: 2}, geom.Coord{X: 0, Y: 1}},
		{"behind", geom.Coord{X: 1, Y: 0}, geom.Coord{X: -2, Y: 0}, geom.Coord{X: -1, Y: 0}},
		{"diagonal tie keeps facing", geom.Coord{X: 0, Y: -1}, geom.Coord{X: 1, Y: -1}, geom.Coord{X: 0, Y: -1}},
		{"rear diagonal tie about-faces", geom.Coord{X: 1, Y: 0}, geom.Coord{X: -1, Y: 1}, geom.Coord{X: -1, Y: 0}},
		{"zero aim keeps facing", geom.Coord{X: 1, Y: 0}, geom.Coord{}, geom.Coord{X: 1, Y: 0}},
		{"pure left", geom.Coord{X: 1, Y: 0}, geom.Coord{X: 0, Y: 3}, geom.Coord{X: 0, Y: 1}},
		{"pure right", geom.Coord{X: 1, Y: 0}, geom.Coord{X: 0, Y: -3}, geom.Coord{X: 0, Y: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UpdateDir(tc.forward, tc.aim); got != tc.want {
				t.Errorf("UpdateDir(%v, %v) = %v, want %v", tc.forward, tc.aim, got, tc.want)
			}
		})
	}
}

func TestLinesRoundRobin(t *testing.T) {
	lines := NewLines()

	it := linesForStateChange(lines, gamemap.Patrol, gamemap.Look)
	require.NotNil(t, it)
	require.Same(t, lines.see, it)

	first := it.next()
	for i := 1; i < len(it.lines); i++ {
		it.next()
	}
	require.Equal(t, first, it.next(), "the pool should wrap around")
}

func TestSilentTransitions(t *testing.T) {
	lines := NewLines()

	if it := linesForStateChange(lines, gamemap.Look, gamemap.Look); it != nil {
		t.Error("no speech when the mode doesn't change")
	}
	if it := linesForStateChange(lines, gamemap.MoveToLastSighting, gamemap.ChaseVisibleTarget); it != nil {
		t.Error("re-acquiring a chased target is silent")
	}
	if it := linesForStateChange(lines, gamemap.MoveToLastSighting, gamemap.Patrol); it != lines.endChase {
		t.Error("giving up a chase uses the end-chase pool")
	}
}
