package game

import (
	"testing"

	"disguiser/internal/gamemap"
	"disguiser/internal/geom"

	"github.com/stretchr/testify/require"
)

// testSession swaps the generated mansion for a small bare map, so moves have
// predictable outcomes.
func testSession(sizeX, sizeY int, pos geom.Coord) *Session {
	s := NewSession(1)
	s.Map = &gamemap.Map{Cells: gamemap.NewCellGrid(sizeX, sizeY, gamemap.GroundNormal)}
	s.Map.PosStart = pos
	s.Player = gamemap.NewPlayer(pos)
	s.updateMapVisibility()
	return s
}

func TestNewSessionIsDeterministic(t *testing.T) {
	s0 := NewSession(42)
	s1 := NewSession(42)

	require.Equal(t, s0.Map.PosStart, s1.Map.PosStart)
	require.Equal(t, s0.Map.Cells, s1.Map.Cells)
	require.Equal(t, s0.Map.Items, s1.Map.Items)

	if s0.Player.Pos != s0.Map.PosStart {
		t.Errorf("player starts at %v, want %v", s0.Player.Pos, s0.Map.PosStart)
	}
	if s0.Level != 0 {
		t.Errorf("level = %d, want 0", s0.Level)
	}
}

func TestMoveAndWait(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})

	s.MovePlayer(geom.Coord{X: 1, Y: 0})
	require.Equal(t, geom.Coord{X: 5, Y: 4}, s.Player.Pos)
	require.Equal(t, geom.Coord{X: 1, Y: 0}, s.Player.Dir)

	// Waiting costs a turn but goes nowhere; on dry land it refills the air.
	s.Player.TurnsRemainingUnderwater = 2
	s.MovePlayer(geom.Coord{})
	require.Equal(t, geom.Coord{X: 5, Y: 4}, s.Player.Pos)
	require.Equal(t, 7, s.Player.TurnsRemainingUnderwater)
}

func TestDeadPlayerCannotMove(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})
	s.Player.Health = 0

	s.MovePlayer(geom.Coord{X: 1, Y: 0})

	if s.Player.Pos != (geom.Coord{X: 4, Y: 4}) {
		t.Fatalf("dead player moved to %v", s.Player.Pos)
	}
}

func TestUnderwaterAirRunsDown(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})
	for x := 3; x <= 5; x++ {
		s.Map.Cells.At(x, 5).Type = gamemap.GroundWater
	}
	s.Player.TurnsRemainingUnderwater = 7

	s.MovePlayer(geom.Coord{X: 0, Y: 1}) // into the water
	require.Equal(t, 6, s.Player.TurnsRemainingUnderwater)
	s.MovePlayer(geom.Coord{X: 1, Y: 0}) // stay submerged
	require.Equal(t, 5, s.Player.TurnsRemainingUnderwater)
	s.MovePlayer(geom.Coord{X: 0, Y: -1}) // climb out
	require.Equal(t, 7, s.Player.TurnsRemainingUnderwater)
}

func TestBlockedDiagonalSlidesAlongWall(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})
	wall := func(x, y int) {
		cell := s.Map.Cells.At(x, y)
		cell.Type = gamemap.Wall1111
		cell.BlocksPlayerSight = true
		cell.BlocksSight = true
	}
	wall(5, 5) // the diagonal target
	wall(4, 5) // north is blocked too, so the slide deflects east

	s.MovePlayer(geom.Coord{X: 1, Y: 1})

	require.Equal(t, geom.Coord{X: 5, Y: 4}, s.Player.Pos)
}

func TestOneWayWindow(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})
	s.Map.Cells.At(4, 5).Type = gamemap.OneWayWindowN

	// Passable northward only.
	if s.blocked(geom.Coord{X: 4, Y: 4}, geom.Coord{X: 4, Y: 5}) {
		t.Error("north window should pass a northward step")
	}
	if !s.blocked(geom.Coord{X: 4, Y: 6}, geom.Coord{X: 4, Y: 5}) {
		t.Error("north window should block a southward step")
	}
	if !s.blocked(geom.Coord{X: 3, Y: 5}, geom.Coord{X: 4, Y: 5}) {
		t.Error("north window should block a sideways step")
	}
}

func TestCoinPickup(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})
	s.Map.Items = append(s.Map.Items, gamemap.Item{Pos: geom.Coord{X: 5, Y: 4}, Kind: gamemap.ItemCoin})
	s.Map.TotalLoot = 1

	s.MovePlayer(geom.Coord{X: 1, Y: 0})

	require.Equal(t, 1, s.Player.Gold)
	require.True(t, s.Map.AllLootCollected())
}

func TestCreakyBoardMakesNoise(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})
	s.Map.Cells.At(5, 4).Type = gamemap.GroundWoodCreaky

	s.MovePlayer(geom.Coord{X: 1, Y: 0})

	require.True(t, s.Player.Noisy)

	found := false
	for _, p := range s.Popups.All() {
		if p.Kind == gamemap.PopupNoise {
			found = true
		}
	}
	require.True(t, found, "stepping on a creaky board should raise a noise popup")
}

func TestOutfitSwap(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 4, Y: 4})
	s.Map.Items = append(s.Map.Items, gamemap.Item{Pos: geom.Coord{X: 5, Y: 4}, Kind: gamemap.ItemOutfit2})

	// Bumping the stand swaps outfits instead of moving.
	s.MovePlayer(geom.Coord{X: 1, Y: 0})
	require.Equal(t, geom.Coord{X: 4, Y: 4}, s.Player.Pos)
	require.True(t, s.Player.Disguised)

	// The stand now holds the street clothes; bumping again swaps back.
	s.MovePlayer(geom.Coord{X: 1, Y: 0})
	require.False(t, s.Player.Disguised)
}

func TestLevelAdvance(t *testing.T) {
	s := NewSession(7)
	s.MarkAllSeen()
	s.CollectAllLoot()
	require.True(t, s.FinishedLevel)

	// Any step off the edge leaves the finished level.
	s.Player.Pos = geom.Coord{X: 0, Y: 0}
	s.MovePlayer(geom.Coord{X: -1, Y: 0})

	require.Equal(t, 1, s.Level)
	require.Equal(t, 0, s.Player.Gold)
	require.Equal(t, s.Map.PosStart, s.Player.Pos)
	require.False(t, s.FinishedLevel)
	require.False(t, s.Player.Disguised)
}

func TestEdgeBlocksUnfinishedLevel(t *testing.T) {
	s := testSession(9, 9, geom.Coord{X: 0, Y: 0})
	s.Map.Items = append(s.Map.Items, gamemap.Item{Pos: geom.Coord{X: 8, Y: 8}, Kind: gamemap.ItemCoin})
	s.Map.TotalLoot = 1

	s.MovePlayer(geom.Coord{X: -1, Y: 0})

	require.Equal(t, 0, s.Level)
	require.Equal(t, geom.Coord{X: 0, Y: 0}, s.Player.Pos)
}

func TestRestart(t *testing.T) {
	s := NewSession(5)
	s.MarkAllSeen()
	s.CollectAllLoot()
	s.Player.Health = 0

	s.Restart()

	require.Equal(t, 0, s.Level)
	require.Equal(t, 0, s.Player.Gold)
	require.Equal(t, s.Player.MaxHealth, s.Player.Health)
	require.Equal(t, s.Map.PosStart, s.Player.Pos)
	require.False(t, s.FinishedLevel)
}

func TestDebugCommands(t *testing.T) {
	s := NewSession(9)

	s.ToggleSeeAll()
	require.True(t, s.SeeAll)
	s.ToggleSeeAll()
	require.False(t, s.SeeAll)

	s.ToggleDisguise()
	require.True(t, s.Player.Disguised)

	s.MarkAllSeen()
	require.Equal(t, 100, s.Map.PercentSeen())

	s.MarkAllUnseen()
	require.Less(t, s.Map.PercentSeen(), 100)
}
