package gamemap

import (
	"math/rand"

	"disguiser/internal/geom"
)

// ItemKind identifies the kind of an item on the map.
type ItemKind uint8

const (
	ItemChair ItemKind = iota
	ItemTable
	ItemBush
	ItemCoin
	ItemDoorNS
	ItemDoorEW
	ItemPortcullisNS
	ItemPortcullisEW
	ItemOutfit1
	ItemOutfit2
)

// MoveCost returns the guard pathing cost an item adds to its tile.
func (k ItemKind) MoveCost() int {
	switch k {
	case ItemChair:
		return 4
	case ItemTable, ItemBush:
		return 10
	case ItemOutfit1, ItemOutfit2:
		return InfiniteCost
	default:
		return 0
	}
}

// IsOutfit reports whether k is a wearable outfit.
func (k ItemKind) IsOutfit() bool {
	return k == ItemOutfit1 || k == ItemOutfit2
}

// Item is a map object occupying one tile.
type Item struct {
	Pos  geom.Coord
	Kind ItemKind
}

// PatrolRegion is a rectangular patrol zone. Cells inside it carry its index
// in their Region field.
type PatrolRegion struct {
	Rect  geom.Rect
	Inner bool
}

// PatrolRoute is an undirected edge between two patrol regions a guard may
// walk between directly.
type PatrolRoute struct {
	Region0, Region1 int
}

// Map owns all the state of one generated level.
type Map struct {
	Cells         CellGrid
	PatrolRegions []PatrolRegion
	PatrolRoutes  []PatrolRoute
	Items         []Item
	Guards        []*Guard
	PosStart      geom.Coord
	TotalLoot     int
}

// OnLevel reports whether pos lies within the level bounds.
func (m *Map) OnLevel(pos geom.Coord) bool {
	return m.Cells.InBounds(pos)
}

// BlocksSight reports whether the cell at pos blocks guard sight.
func (m *Map) BlocksSight(pos geom.Coord) bool {
	return m.Cells.At(pos.X, pos.Y).BlocksSight
}

// BlocksPlayerSight reports whether the cell at pos blocks player sight.
func (m *Map) BlocksPlayerSight(pos geom.Coord) bool {
	return m.Cells.At(pos.X, pos.Y).BlocksPlayerSight
}

// HidesPlayer reports whether the cell at pos conceals an occupant.
func (m *Map) HidesPlayer(pos geom.Coord) bool {
	return m.Cells.At(pos.X, pos.Y).HidesPlayer
}

// CollectLootAt removes all coins at pos and returns how many were taken.
func (m *Map) CollectLootAt(pos geom.Coord) int {
	gold := 0
	items := m.Items[:0]
	for _, item := range m.Items {
		if item.Kind == ItemCoin && item.Pos == pos {
			gold++
			continue
		}
		items = append(items, item)
	}
	m.Items = items
	return gold
}

// CollectAllLoot removes every coin from the map and returns the count.
func (m *Map) CollectAllLoot() int {
	gold := 0
	items := m.Items[:0]
	for _, item := range m.Items {
		if item.Kind == ItemCoin {
			gold++
			continue
		}
		items = append(items, item)
	}
	m.Items = items
	return gold
}

// AllLootCollected reports whether no coins remain.
func (m *Map) AllLootCollected() bool {
	for _, item := range m.Items {
		if item.Kind == ItemCoin {
			return false
		}
	}
	return true
}

// AllSeen reports whether every cell has been seen.
func (m *Map) AllSeen() bool {
	for y := range m.Cells {
		for x := range m.Cells[y] {
			if !m.Cells[y][x].Seen {
				return false
			}
		}
	}
	return true
}

// PercentSeen returns the share of cells seen so far, 0–100.
func (m *Map) PercentSeen() int {
	numSeen := 0
	for y := range m.Cells {
		for x := range m.Cells[y] {
			if m.Cells[y][x].Seen {
				numSeen++
			}
		}
	}
	return (numSeen * 100) / (m.Cells.SizeX() * m.Cells.SizeY())
}

// MarkAllSeen sets the seen flag on every cell.
func (m *Map) MarkAllSeen() {
	for y := range m.Cells {
		for x := range m.Cells[y] {
			m.Cells[y][x].Seen = true
		}
	}
}

// MarkAllUnseen clears the seen flag on every cell.
func (m *Map) MarkAllUnseen() {
	for y := range m.Cells {
		for x := range m.Cells[y] {
			m.Cells[y][x].Seen = false
		}
	}
}

// TryUseOutfitAt swaps the player's current outfit with an outfit item at
// pos. Returns the newly-worn kind and true when a swap happened.
func (m *Map) TryUseOutfitAt(pos geom.Coord, outfitCur ItemKind) (ItemKind, bool) {
	for i := range m.Items {
		item := &m.Items[i]
		if item.Pos != pos || !item.Kind.IsOutfit() {
			continue
		}
		if item.Kind == outfitCur {
			return 0, false
		}
		outfitNew := item.Kind
		item.Kind = outfitCur
		return outfitNew, true
	}
	return 0, false
}

// IsGuardAt reports whether any guard stands at pos.
func (m *Map) IsGuardAt(pos geom.Coord) bool {
	for _, g := range m.Guards {
		if g.Pos == pos {
			return true
		}
	}
	return false
}

// IsOutfitAt reports whether an outfit item lies at pos.
func (m *Map) IsOutfitAt(pos geom.Coord) bool {
	for _, item := range m.Items {
		if item.Kind.IsOutfit() && item.Pos == pos {
			return true
		}
	}
	return false
}

// RandomNeighborRegion picks a random region connected to region by a patrol
// route, excluding regionExclude (the region just departed). Returns region
// itself when no other neighbor exists.
func (m *Map) RandomNeighborRegion(rng *rand.Rand, region, regionExclude int) int {
	var neighbors []int
	for _, route := range m.PatrolRoutes {
		if route.Region0 == region && route.Region1 != regionExclude {
			neighbors = append(neighbors, route.Region1)
		} else if route.Region1 == region && route.Region0 != regionExclude {
			neighbors = append(neighbors, route.Region0)
		}
	}
	if len(neighbors) == 0 {
		return region
	}
	return neighbors[rng.Intn(len(neighbors))]
}
