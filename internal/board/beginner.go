package board

// harborEdge returns the edge between corners i and (i+1)%6 of the hex at c.
func harborEdge(c Coords, i int) EdgeCoords {
	return Edge(c.Add(CornerOffsets[i]), c.Add(CornerOffsets[(i+1)%6]))
}

// BeginnerBoard returns the fixed starting layout from the base game rules:
// nineteen hexes in a spiral token arrangement, nine harbors around the
// perimeter, robber on the desert.
func BeginnerBoard() *Board {
	hexes := []Hex{
		// Top row, left to right.
		{Coords: C(4, -2), Type: Mountains, Token: 10},
		{Coords: C(3, 0), Type: Pasture, Token: 2},
		{Coords: C(2, 2), Type: Forest, Token: 9},
		// Second row.
		{Coords: C(3, -3), Type: Fields, Token: 12},
		{Coords: C(2, -1), Type: Hills, Token: 6},
		{Coords: C(1, 1), Type: Pasture, Token: 4},
		{Coords: C(0, 3), Type: Hills, Token: 10},
		// Middle row.
		{Coords: C(2, -4), Type: Fields, Token: 9},
		{Coords: C(1, -2), Type: Forest, Token: 11},
		{Coords: C(0, 0), Type: Desert},
		{Coords: C(-1, 2), Type: Forest, Token: 3},
		{Coords: C(-2, 4), Type: Mountains, Token: 8},
		// Fourth row.
		{Coords: C(0, -3), Type: Forest, Token: 8},
		{Coords: C(-1, -1), Type: Mountains, Token: 3},
		{Coords: C(-2, 1), Type: Fields, Token: 4},
		{Coords: C(-3, 3), Type: Pasture, Token: 5},
		// Bottom row.
		{Coords: C(-2, -2), Type: Hills, Token: 5},
		{Coords: C(-3, 0), Type: Fields, Token: 6},
		{Coords: C(-4, 2), Type: Pasture, Token: 11},
	}

	// Perimeter edges, clockwise from the top-left hex. Four generic 3:1
	// harbors and one 2:1 harbor per resource.
	harbors := []Harbor{
		{Coords: harborEdge(C(4, -2), 5)},
		{Coords: harborEdge(C(2, 2), 1), Resource: Grain},
		{Coords: harborEdge(C(0, 3), 1), Resource: Ore},
		{Coords: harborEdge(C(-2, 4), 2)},
		{Coords: harborEdge(C(-4, 2), 3), Resource: Wool},
		{Coords: harborEdge(C(-3, 0), 3)},
		{Coords: harborEdge(C(-2, -2), 4), Resource: Brick},
		{Coords: harborEdge(C(0, -3), 4), Resource: Lumber},
		{Coords: harborEdge(C(3, -3), 5)},
	}

	b, err := NewBoard(hexes, harbors, C(0, 0))
	if err != nil {
		// The layout above is a constant; failing to build it is a bug.
		panic(err)
	}
	return b
}
