package gamemap

// CellType identifies the static type of a map cell. Wall variants encode
// which of the N/S/E/W neighbors are also walls; the distinction is purely
// visual — every wall blocks identically.
type CellType uint8

const (
	GroundNormal CellType = iota
	GroundGrass
	GroundWater
	GroundMarble
	GroundWood
	GroundWoodCreaky

	//  NSEW
	Wall0000
	Wall0001
	Wall0010
	Wall0011
	Wall0100
	Wall0101
	Wall0110
	Wall0111
	Wall1000
	Wall1001
	Wall1010
	Wall1011
	Wall1100
	Wall1101
	Wall1110
	Wall1111

	OneWayWindowE
	OneWayWindowW
	OneWayWindowN
	OneWayWindowS
	PortcullisNS
	PortcullisEW
	DoorNS
	DoorEW
)

// IsWall reports whether t is one of the 16 wall variants.
func (t CellType) IsWall() bool {
	return t >= Wall0000 && t <= Wall1111
}

// Tile holds the immutable capability flags for one cell type.
type Tile struct {
	BlocksPlayer      bool
	BlocksPlayerSight bool
	BlocksSight       bool
	BlocksSound       bool
	IgnoresLighting   bool
}

var (
	tileGround = Tile{}
	// The freestanding wall pillar (no wall neighbors) is see-over.
	tilePillar = Tile{BlocksPlayer: true, BlocksSight: true, BlocksSound: true, IgnoresLighting: true}
	tileWall   = Tile{BlocksPlayer: true, BlocksPlayerSight: true, BlocksSight: true, BlocksSound: true, IgnoresLighting: true}
	tileWindow = Tile{BlocksSight: true, IgnoresLighting: true}
	tileOpen   = Tile{IgnoresLighting: true}
)

// TileDef returns the capability flags for a cell type.
func TileDef(t CellType) *Tile {
	switch {
	case t < Wall0000:
		return &tileGround
	case t == Wall0000:
		return &tilePillar
	case t <= Wall1111:
		return &tileWall
	case t <= OneWayWindowS:
		return &tileWindow
	default: // portcullises and doors
		return &tileOpen
	}
}

const (
	// InfiniteCost marks an impassable cell in the guard move-cost model.
	InfiniteCost = int(^uint(0) >> 1)

	// waterCost makes guards treat water as a barrier in all but the most
	// desperate paths.
	waterCost = 4096
)

// MoveCost returns the guard pathing cost of entering a cell of type t.
func (t CellType) MoveCost() int {
	switch {
	case t == GroundWater:
		return waterCost
	case t < Wall0000:
		return 0
	case t <= OneWayWindowS:
		// Walls and one-way windows: guards cannot use either.
		return InfiniteCost
	default: // portcullises and doors
		return 0
	}
}
