package render

import "github.com/mkravets/tui-catan/internal/board"

// HexCenterOffset maps a hex's axial coordinates to the canvas offset of its
// glyph block's top-left cell, relative to the canvas center. The constants
// are tuned for the 7-wide, 3-tall hex block so that adjacent hexes' blocks
// share their corner columns without overlapping. Truncation toward zero is
// intentional.
func HexCenterOffset(c board.Coords) (x, y int) {
	x = 3 * c.R
	y = -int(1.34*float64(c.Q) + 0.67*float64(c.R))
	return x, y
}

// harborOffset computes the canvas offset for a harbor glyph. A harbor sits
// just outside the board on a perimeter edge; the water slot it occupies is
// the one hex position adjacent to both of the edge's corners that is not a
// real hex. A well-formed board yields exactly one such slot.
func harborOffset(h *board.Harbor, b *board.Board) (x, y int, err error) {
	corners := h.Coords.Corners()

	first := make(map[board.Coords]bool, len(board.CornerOffsets))
	for _, off := range board.CornerOffsets {
		first[corners[0].Add(off)] = true
	}

	var water []board.Coords
	for _, off := range board.CornerOffsets {
		c := corners[1].Add(off)
		if !first[c] {
			continue
		}
		if _, onBoard := b.Hexes[c]; onBoard {
			continue
		}
		water = append(water, c)
	}

	if len(water) != 1 {
		return 0, 0, renderErrorf(CodeMalformedHarbor,
			"harbor %s resolves to %d water slots, want 1", h.Coords, len(water))
	}

	x, y = HexCenterOffset(water[0])
	return x + 2, y + 1, nil
}
