package render

import (
	"disguiser/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// unlitColor tints anything outdoors at night that doesn't carry its own
// light: unlit floors, items on them, and patrolling guards.
const unlitColor = tcell.ColorLightBlue

// wallGlyphs is indexed by the wall type's NSEW neighbor bits. A wall with
// no wall neighbors is a freestanding pillar.
var wallGlyphs = [16]rune{
	'■', // 0000 pillar
	'─', // 0001 W
	'─', // 0010 E
	'─', // 0011 EW
	'│', // 0100 S
	'┐', // 0101 SW
	'┌', // 0110 SE
	'┬', // 0111 SEW
	'│', // 1000 N
	'┘', // 1001 NW
	'└', // 1010 NE
	'┴', // 1011 NEW
	'│', // 1100 NS
	'┤', // 1101 NSW
	'├', // 1110 NSE
	'┼', // 1111 NSEW
}

// cellGlyph returns the rune and color for a map cell's terrain.
func cellGlyph(t gamemap.CellType) (rune, tcell.Color) {
	switch t {
	case gamemap.GroundNormal:
		return '.', tcell.ColorGray
	case gamemap.GroundGrass:
		return '"', tcell.ColorGreen
	case gamemap.GroundWater:
		return '~', tcell.ColorBlue
	case gamemap.GroundMarble:
		return '.', tcell.ColorWhite
	case gamemap.GroundWood, gamemap.GroundWoodCreaky:
		return '.', tcell.ColorOlive
	case gamemap.OneWayWindowN, gamemap.OneWayWindowS:
		// Double-line segments read as windows set into single-line walls.
		return '═', tcell.ColorSilver
	case gamemap.OneWayWindowE, gamemap.OneWayWindowW:
		return '║', tcell.ColorSilver
	case gamemap.PortcullisNS, gamemap.PortcullisEW:
		return '.', tcell.ColorGray
	case gamemap.DoorNS, gamemap.DoorEW:
		return '.', tcell.ColorGray
	}
	if t.IsWall() {
		return wallGlyphs[t-gamemap.Wall0000], tcell.ColorSilver
	}
	return '.', tcell.ColorGray
}

// itemGlyph returns the rune and color for an item standing on a cell.
func itemGlyph(k gamemap.ItemKind) (rune, tcell.Color) {
	switch k {
	case gamemap.ItemChair:
		return 'c', tcell.ColorOlive
	case gamemap.ItemTable:
		return 'T', tcell.ColorOlive
	case gamemap.ItemBush:
		return '%', tcell.ColorGreen
	case gamemap.ItemCoin:
		return '$', tcell.ColorYellow
	case gamemap.ItemDoorNS, gamemap.ItemDoorEW:
		return '+', tcell.ColorOlive
	case gamemap.ItemPortcullisNS, gamemap.ItemPortcullisEW:
		return '#', tcell.ColorSilver
	case gamemap.ItemOutfit1:
		return '&', tcell.ColorSilver
	case gamemap.ItemOutfit2:
		return '&', tcell.ColorFuchsia
	}
	return '?', tcell.ColorWhite
}

// dirGlyph shows which way a guard is facing.
func dirGlyph(dirX, dirY int) rune {
	switch {
	case dirY > 0:
		return '^'
	case dirY < 0:
		return 'v'
	case dirX > 0:
		return '>'
	case dirX < 0:
		return '<'
	}
	return 'v'
}
