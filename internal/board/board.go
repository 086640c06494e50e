package board

import (
	"errors"
	"fmt"
)

// Errors returned by board construction and building placement.
var (
	ErrUnknownHex    = errors.New("board: no hex at those coordinates")
	ErrUnknownCorner = errors.New("board: no intersection at those coordinates")
	ErrUnknownEdge   = errors.New("board: no path at those coordinates")
	ErrOccupied      = errors.New("board: slot already occupied")
	ErrNotSettlement = errors.New("board: only a settlement can be upgraded to a city")
	ErrRobberInPlace = errors.New("board: robber is already on that hex")
)

// Board is the full board graph: hexes, the intersections and paths derived
// from them, the harbors on the perimeter, and the robber's position.
// The maps are keyed so that every corner and edge referenced by a hex's
// offset tables resolves; NewBoard establishes that invariant and the
// renderer relies on it.
type Board struct {
	Hexes         map[Coords]*Hex
	Intersections map[Coords]*Intersection
	Paths         map[EdgeCoords]*Path
	Harbors       map[EdgeCoords]*Harbor
	Robber        Coords
}

// NewBoard builds a board from a set of hexes and harbors, deriving the
// intersection and path maps from the hexes' corner offsets. The robber
// starts on robberStart, which must be one of the given hexes. Harbors must
// sit on edges that exist on the board.
func NewBoard(hexes []Hex, harbors []Harbor, robberStart Coords) (*Board, error) {
	b := &Board{
		Hexes:         make(map[Coords]*Hex, len(hexes)),
		Intersections: make(map[Coords]*Intersection),
		Paths:         make(map[EdgeCoords]*Path),
		Harbors:       make(map[EdgeCoords]*Harbor, len(harbors)),
		Robber:        robberStart,
	}

	for i := range hexes {
		h := hexes[i]
		if _, ok := b.Hexes[h.Coords]; ok {
			return nil, fmt.Errorf("board: duplicate hex at %s", h.Coords)
		}
		b.Hexes[h.Coords] = &h

		for _, c := range h.CornerCoords() {
			if _, ok := b.Intersections[c]; !ok {
				b.Intersections[c] = &Intersection{Coords: c}
			}
		}
		for _, e := range h.EdgeCoords() {
			if _, ok := b.Paths[e]; !ok {
				b.Paths[e] = &Path{Coords: e}
			}
		}
	}

	if _, ok := b.Hexes[robberStart]; !ok {
		return nil, fmt.Errorf("%w: robber start %s", ErrUnknownHex, robberStart)
	}

	for i := range harbors {
		h := harbors[i]
		if _, ok := b.Paths[h.Coords]; !ok {
			return nil, fmt.Errorf("%w: harbor on %s", ErrUnknownEdge, h.Coords)
		}
		b.Harbors[h.Coords] = &h
	}

	return b, nil
}

// PlaceSettlement puts a settlement owned by the player on the given corner.
// The corner must exist and be empty. Adjacency and cost rules belong to the
// game layer, not here.
func (b *Board) PlaceSettlement(p *Player, c Coords) error {
	in, ok := b.Intersections[c]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCorner, c)
	}
	if in.Building != nil {
		return fmt.Errorf("%w: corner %s", ErrOccupied, c)
	}
	in.Building = &Building{Owner: p, Type: Settlement, Coords: c}
	return nil
}

// UpgradeToCity replaces the player's settlement on the given corner with a
// city. The corner must hold a settlement owned by the same player.
func (b *Board) UpgradeToCity(p *Player, c Coords) error {
	in, ok := b.Intersections[c]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCorner, c)
	}
	if in.Building == nil || in.Building.Type != Settlement || in.Building.Owner != p {
		return fmt.Errorf("%w: corner %s", ErrNotSettlement, c)
	}
	in.Building.Type = City
	return nil
}

// PlaceRoad puts a road owned by the player on the given edge.
// The edge must exist and be empty.
func (b *Board) PlaceRoad(p *Player, e EdgeCoords) error {
	path, ok := b.Paths[e]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEdge, e)
	}
	if path.Building != nil {
		return fmt.Errorf("%w: edge %s", ErrOccupied, e)
	}
	path.Building = &Building{Owner: p, Type: Road, Edge: e}
	return nil
}

// MoveRobber moves the robber to the given hex. The target must be a real
// hex and different from the robber's current position.
func (b *Board) MoveRobber(c Coords) error {
	if _, ok := b.Hexes[c]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHex, c)
	}
	if b.Robber == c {
		return fmt.Errorf("%w: %s", ErrRobberInPlace, c)
	}
	b.Robber = c
	return nil
}
