package render

import "strings"

// Canvas is a fixed-size grid of styled cells. Each cell holds one already
// styled character; stamping overwrites whatever was there before, so later
// stamps win on overlap.
type Canvas struct {
	rows  int
	cols  int
	cells [][]string
}

// NewCanvas allocates a canvas with every cell set to fill.
func NewCanvas(rows, cols int, fill string) *Canvas {
	cells := make([][]string, rows)
	for y := range cells {
		cells[y] = make([]string, cols)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}
	return &Canvas{rows: rows, cols: cols, cells: cells}
}

// Stamp copies a block of styled cells into the canvas with its top-left
// corner at (x, y). A block that does not fit entirely inside the canvas is
// a fatal CanvasOverflow; the canvas size is fixed configuration, not sized
// to the board.
func (c *Canvas) Stamp(block [][]string, x, y int) error {
	for i := range block {
		for j := range block[i] {
			cy, cx := y+i, x+j
			if cy < 0 || cy >= c.rows || cx < 0 || cx >= c.cols {
				return renderErrorf(CodeCanvasOverflow,
					"cell (%d,%d) outside %dx%d canvas", cx, cy, c.cols, c.rows)
			}
			c.cells[cy][cx] = block[i][j]
		}
	}
	return nil
}

// String serializes the canvas row-major, rows joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.cols; x++ {
			sb.WriteString(c.cells[y][x])
		}
	}
	return sb.String()
}
