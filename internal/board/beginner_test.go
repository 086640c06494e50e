package board_test

import (
	"testing"

	"github.com/mkravets/tui-catan/internal/board"
)

func TestBeginnerBoardShape(t *testing.T) {
	b := board.BeginnerBoard()

	if len(b.Hexes) != 19 {
		t.Errorf("expected 19 hexes, got %d", len(b.Hexes))
	}
	if len(b.Intersections) != 54 {
		t.Errorf("expected 54 intersections, got %d", len(b.Intersections))
	}
	if len(b.Paths) != 72 {
		t.Errorf("expected 72 paths, got %d", len(b.Paths))
	}
	if len(b.Harbors) != 9 {
		t.Errorf("expected 9 harbors, got %d", len(b.Harbors))
	}
}

func TestBeginnerBoardRobberOnDesert(t *testing.T) {
	b := board.BeginnerBoard()

	h, ok := b.Hexes[b.Robber]
	if !ok {
		t.Fatalf("robber at %s is not on a hex", b.Robber)
	}
	if h.Type != board.Desert {
		t.Errorf("robber starts on %v, want desert", h.Type)
	}
	if h.Token != 0 {
		t.Errorf("desert has token %d, want none", h.Token)
	}
}

func TestBeginnerBoardTilesAndTokens(t *testing.T) {
	b := board.BeginnerBoard()

	terrain := make(map[board.HexType]int)
	tokens := make(map[int]int)
	for _, h := range b.Hexes {
		terrain[h.Type]++
		if h.Token != 0 {
			tokens[h.Token]++
		}
	}

	wantTerrain := map[board.HexType]int{
		board.Fields:    4,
		board.Forest:    4,
		board.Pasture:   4,
		board.Hills:     3,
		board.Mountains: 3,
		board.Desert:    1,
	}
	for typ, want := range wantTerrain {
		if terrain[typ] != want {
			t.Errorf("terrain %v: got %d tiles, want %d", typ, terrain[typ], want)
		}
	}

	// One 2 and one 12, two of everything else, never a 7.
	wantTokens := map[int]int{2: 1, 3: 2, 4: 2, 5: 2, 6: 2, 8: 2, 9: 2, 10: 2, 11: 2, 12: 1}
	for tok, want := range wantTokens {
		if tokens[tok] != want {
			t.Errorf("token %d: got %d, want %d", tok, tokens[tok], want)
		}
	}
	if tokens[7] != 0 {
		t.Errorf("board has %d hexes with token 7", tokens[7])
	}
}

func TestBeginnerBoardHarbors(t *testing.T) {
	b := board.BeginnerBoard()

	resources := make(map[board.Resource]int)
	for _, h := range b.Harbors {
		resources[h.Resource]++
	}

	if resources[board.ResourceNone] != 4 {
		t.Errorf("expected 4 generic harbors, got %d", resources[board.ResourceNone])
	}
	for _, res := range []board.Resource{board.Grain, board.Lumber, board.Wool, board.Brick, board.Ore} {
		if resources[res] != 1 {
			t.Errorf("expected 1 %v harbor, got %d", res, resources[res])
		}
	}

	// Harbors must sit on perimeter edges: the hex slot across the edge
	// from the board must be water.
	for e := range b.Harbors {
		onBoard := 0
		for _, h := range b.Hexes {
			for _, he := range h.EdgeCoords() {
				if he == e {
					onBoard++
				}
			}
		}
		if onBoard != 1 {
			t.Errorf("harbor edge %s belongs to %d hexes, want exactly 1 (perimeter)", e, onBoard)
		}
	}
}
