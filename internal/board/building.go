package board

import "strings"

// Player is an opaque identity. The renderer and the board only use player
// pointers as map keys; whatever else a player carries belongs to the game
// layer on top of this package.
type Player struct {
	Name string
}

// BuildingType identifies what kind of building occupies a slot.
type BuildingType uint8

const (
	Road BuildingType = iota
	Settlement
	City
)

// String returns the lowercase name of the building type.
func (t BuildingType) String() string {
	switch t {
	case Road:
		return "road"
	case Settlement:
		return "settlement"
	case City:
		return "city"
	default:
		return "unknown"
	}
}

// ParseBuildingType converts a building name to a BuildingType.
// Returns false if the name is not recognized.
func ParseBuildingType(s string) (BuildingType, bool) {
	switch strings.ToLower(s) {
	case "road":
		return Road, true
	case "settlement":
		return Settlement, true
	case "city":
		return City, true
	default:
		return Road, false
	}
}

// Building is a tagged variant over corner buildings (settlements, cities)
// and edge buildings (roads). Type discriminates: Settlement and City carry
// Coords, Road carries Edge.
type Building struct {
	Owner *Player
	Type  BuildingType

	Coords Coords     // valid for Settlement and City
	Edge   EdgeCoords // valid for Road
}

// Intersection is a corner of the board, a vertex shared by up to three
// hexes. Building is nil until a player places a settlement there.
type Intersection struct {
	Coords   Coords
	Building *Building
}

// Path is an edge of the board, the segment between two adjacent corners.
// Building is nil until a player places a road there.
type Path struct {
	Coords   EdgeCoords
	Building *Building
}

// Harbor is a trade bonus attached to a perimeter edge. Resource is
// ResourceNone for a generic 3:1 harbor and a concrete resource for a 2:1
// harbor. Immutable after board construction.
type Harbor struct {
	Coords   EdgeCoords
	Resource Resource
}
