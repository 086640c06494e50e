package board

import "strings"

// HexType identifies the terrain of a hex.
type HexType uint8

const (
	Fields HexType = iota
	Forest
	Pasture
	Hills
	Mountains
	Desert
)

// String returns the lowercase name of the terrain type.
func (t HexType) String() string {
	switch t {
	case Fields:
		return "fields"
	case Forest:
		return "forest"
	case Pasture:
		return "pasture"
	case Hills:
		return "hills"
	case Mountains:
		return "mountains"
	case Desert:
		return "desert"
	default:
		return "unknown"
	}
}

// ParseHexType converts a terrain name to a HexType.
// Returns false if the name is not recognized.
func ParseHexType(s string) (HexType, bool) {
	switch strings.ToLower(s) {
	case "fields":
		return Fields, true
	case "forest":
		return Forest, true
	case "pasture":
		return Pasture, true
	case "hills":
		return Hills, true
	case "mountains":
		return Mountains, true
	case "desert":
		return Desert, true
	default:
		return Fields, false
	}
}

// Resource identifies a tradeable resource. ResourceNone marks the absence
// of a resource, e.g. a generic 3:1 harbor.
type Resource uint8

const (
	ResourceNone Resource = iota
	Grain
	Lumber
	Wool
	Brick
	Ore
)

// String returns the lowercase name of the resource.
func (r Resource) String() string {
	switch r {
	case Grain:
		return "grain"
	case Lumber:
		return "lumber"
	case Wool:
		return "wool"
	case Brick:
		return "brick"
	case Ore:
		return "ore"
	default:
		return "none"
	}
}

// ParseResource converts a resource name to a Resource.
// Returns false if the name is not recognized.
func ParseResource(s string) (Resource, bool) {
	switch strings.ToLower(s) {
	case "grain":
		return Grain, true
	case "lumber":
		return Lumber, true
	case "wool":
		return Wool, true
	case "brick":
		return Brick, true
	case "ore":
		return Ore, true
	default:
		return ResourceNone, false
	}
}

// CornerOffsets are the six corner coordinates surrounding a hex, relative
// to the hex's own coordinate, in fixed clockwise order. Edge i of a hex
// connects corner i to corner (i+1)%6.
var CornerOffsets = [6]Coords{
	{Q: 1, R: -1},
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
}

// NeighborOffsets are the six hex coordinates adjacent to a hex, relative to
// the hex's own coordinate. NeighborOffsets[i] is the hex across edge i,
// and equals CornerOffsets[i] + CornerOffsets[(i+1)%6].
var NeighborOffsets = [6]Coords{
	{Q: 2, R: -1},
	{Q: 1, R: 1},
	{Q: -1, R: 2},
	{Q: -2, R: 1},
	{Q: -1, R: -1},
	{Q: 1, R: -2},
}

// Hex is a single terrain tile on the board. Token is the production number
// (2-12, never 7); zero means no token, which is the case for the desert.
// Hexes are immutable once the board is built.
type Hex struct {
	Coords Coords
	Type   HexType
	Token  int
}

// CornerCoords returns the coordinates of the six corners surrounding the
// hex, in the fixed clockwise order of CornerOffsets.
func (h *Hex) CornerCoords() [6]Coords {
	var out [6]Coords
	for i, off := range CornerOffsets {
		out[i] = h.Coords.Add(off)
	}
	return out
}

// EdgeCoords returns the six edges surrounding the hex, connecting
// consecutive corners with wraparound.
func (h *Hex) EdgeCoords() [6]EdgeCoords {
	corners := h.CornerCoords()
	var out [6]EdgeCoords
	for i := range corners {
		out[i] = Edge(corners[i], corners[(i+1)%6])
	}
	return out
}
