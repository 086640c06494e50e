package board

import "fmt"

// Coords represents axial coordinates (q, r) on the board's triangular
// lattice. The same type addresses hexes and corners; hex positions fall on
// the sublattice where (q - r) is divisible by three, corner positions on
// the rest.
type Coords struct {
	Q int
	R int
}

// C is a convenience constructor for Coords.
func C(q, r int) Coords {
	return Coords{Q: q, R: r}
}

// String returns a string representation of the coordinate.
func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Add returns the componentwise sum of two coordinates.
func (c Coords) Add(other Coords) Coords {
	return Coords{Q: c.Q + other.Q, R: c.R + other.R}
}

// EdgeCoords addresses an edge by the unordered pair of corner coordinates
// it connects. The pair is normalized at construction so that equal pairs
// compare equal and hash identically as map keys.
type EdgeCoords struct {
	A Coords
	B Coords
}

// Edge builds a normalized EdgeCoords from two corner coordinates.
func Edge(a, b Coords) EdgeCoords {
	if b.Q < a.Q || (b.Q == a.Q && b.R < a.R) {
		a, b = b, a
	}
	return EdgeCoords{A: a, B: b}
}

// String returns a string representation of the edge.
func (e EdgeCoords) String() string {
	return fmt.Sprintf("%s-%s", e.A, e.B)
}

// Corners returns the two corner coordinates of the edge.
func (e EdgeCoords) Corners() [2]Coords {
	return [2]Coords{e.A, e.B}
}
