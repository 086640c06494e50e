package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/mkravets/tui-catan/internal/board"
)

// Canvas geometry. The board is stamped into a fixed 20x55 cell grid; a
// standard-size board fits with water on all sides.
const (
	CanvasRows = 20
	CanvasCols = 55
)

// Default colors. Players are assigned colors from DefaultPlayerColors in
// order of first appearance; terrain and harbor-resource colors are fixed
// lookups.
var (
	DefaultPlayerColors = []Color{"#00c40d", "#ff00d9", "#0000FF", "#00FFFF"}

	DefaultHexColors = map[board.HexType]Color{
		board.Fields:    "#ffea29",
		board.Forest:    "#005e09",
		board.Pasture:   "#52ff62",
		board.Hills:     "#cc1f0c",
		board.Mountains: "#7a7a7a",
		board.Desert:    "#ffe5a3",
	}

	DefaultResourceColors = map[board.Resource]Color{
		board.Grain:  "#ffea29",
		board.Lumber: "#005e09",
		board.Wool:   "#52ff62",
		board.Brick:  "#cc1f0c",
		board.Ore:    "#7a7a7a",
	}
)

// WaterColor is the background for every canvas cell not covered by a hex.
const WaterColor Color = "#2387de"

const (
	unownedColor  Color = "#9c7500"
	blackColor    Color = "#000000"
	whiteColor    Color = "#FFFFFF"
	hotTokenColor Color = "#FF0000"
)

// Options configures a BoardRenderer. All fields are optional; zero values
// select the defaults above and the lipgloss styler.
type Options struct {
	// PlayerColors pre-assigns colors to players. Players not listed get
	// the next unused palette color when first rendered.
	PlayerColors map[*board.Player]Color

	// HexColors overrides the default per-terrain colors.
	HexColors map[board.HexType]Color

	// ResourceColors overrides the default per-harbor-resource colors.
	ResourceColors map[board.Resource]Color

	// Styler overrides the lipgloss styler.
	Styler Styler
}

// BoardRenderer renders boards as colorized text. Player color assignment is
// first-come and sticks for the renderer's lifetime, so rendering the same
// board twice on the same renderer gives identical output. The renderer
// mutates its own color map during rendering and is not safe for concurrent
// use without external synchronization.
type BoardRenderer struct {
	playerColors   map[*board.Player]Color
	unusedColors   []Color
	hexColors      map[board.HexType]Color
	resourceColors map[board.Resource]Color
	style          Styler
}

// New creates a renderer with the given options.
func New(opts Options) *BoardRenderer {
	r := &BoardRenderer{
		playerColors:   make(map[*board.Player]Color, len(opts.PlayerColors)),
		unusedColors:   append([]Color(nil), DefaultPlayerColors...),
		hexColors:      make(map[board.HexType]Color, len(DefaultHexColors)),
		resourceColors: make(map[board.Resource]Color, len(DefaultResourceColors)),
		style:          opts.Styler,
	}
	if r.style == nil {
		r.style = LipglossStyler
	}
	for p, c := range opts.PlayerColors {
		r.playerColors[p] = c
	}
	for t, c := range DefaultHexColors {
		r.hexColors[t] = c
	}
	for t, c := range opts.HexColors {
		r.hexColors[t] = c
	}
	for res, c := range DefaultResourceColors {
		r.resourceColors[res] = c
	}
	for res, c := range opts.ResourceColors {
		r.resourceColors[res] = c
	}
	return r
}

// ColorForPlayer returns the player's color, assigning the next unused
// palette color on first sight. Running out of palette colors is a fatal
// precondition violation, not something to paper over with a fallback color.
func (r *BoardRenderer) ColorForPlayer(p *board.Player) (Color, error) {
	if c, ok := r.playerColors[p]; ok {
		return c, nil
	}
	if len(r.unusedColors) == 0 {
		return "", renderErrorf(CodePaletteExhausted,
			"more than %d distinct players", len(DefaultPlayerColors))
	}
	c := r.unusedColors[0]
	r.unusedColors = r.unusedColors[1:]
	r.playerColors[p] = c
	return c, nil
}

// ColorForHexType returns the color for a terrain type.
func (r *BoardRenderer) ColorForHexType(t board.HexType) Color {
	return r.hexColors[t]
}

// ColorForResource returns the color for a resource harbor.
func (r *BoardRenderer) ColorForResource(res board.Resource) Color {
	return r.resourceColors[res]
}

// cornerCell renders one corner. Placeholder corners use the neutral glyph
// and coloring; a built corner shows "s" or "c" in the owner's color.
func (r *BoardRenderer) cornerCell(char string, in *board.Intersection) (string, error) {
	fg := unownedColor
	bg := r.hexColors[board.Desert]
	if in.Building != nil {
		c, err := r.ColorForPlayer(in.Building.Owner)
		if err != nil {
			return "", err
		}
		fg = c
		if in.Building.Type == board.Settlement {
			char = "s"
		} else {
			char = "c"
		}
	}
	return r.style(char, fg, bg), nil
}

// pathCells renders one edge as a sequence of cells. An owned road takes the
// owner's color; an unbuilt harbor edge is marked with a black foreground;
// anything else stays neutral.
func (r *BoardRenderer) pathCells(chars []string, p *board.Path, b *board.Board) ([]string, error) {
	fg := unownedColor
	bg := r.hexColors[board.Desert]
	if p.Building != nil {
		c, err := r.ColorForPlayer(p.Building.Owner)
		if err != nil {
			return nil, err
		}
		fg = c
	} else if _, ok := b.Harbors[p.Coords]; ok {
		fg = blackColor
	}
	out := make([]string, len(chars))
	for i, ch := range chars {
		out[i] = r.style(ch, fg, bg)
	}
	return out, nil
}

// hexCenterCells renders the five-cell center of a hex: terrain-colored
// blanks around the production token, single-digit tokens padded so the
// number column lines up with two-digit ones.
func (r *BoardRenderer) hexCenterCells(h *board.Hex) []string {
	space := r.style(" ", "", r.hexColors[h.Type])
	if h.Token == 0 {
		return []string{space, space, space, space, space}
	}
	tokenColor := blackColor
	if h.Token == 6 || h.Token == 8 {
		tokenColor = hotTokenColor
	}
	cells := []string{space}
	if h.Token < 10 {
		cells = append(cells, space)
	}
	for _, d := range strconv.Itoa(h.Token) {
		cells = append(cells, r.style(string(d), tokenColor, whiteColor))
	}
	return append(cells, space, space)
}

// hexBlock composes the 3x7 glyph block for the hex at c from its six
// corners, six edges and center. Corners or edges missing from the board's
// maps mean the caller handed over a malformed board.
func (r *BoardRenderer) hexBlock(b *board.Board, c board.Coords) ([][]string, error) {
	h := b.Hexes[c]

	var ins [6]*board.Intersection
	for i, cc := range h.CornerCoords() {
		in, ok := b.Intersections[cc]
		if !ok {
			return nil, renderErrorf(CodeMissingTopology,
				"hex %s references unknown corner %s", c, cc)
		}
		ins[i] = in
	}

	var paths [6]*board.Path
	for i, e := range h.EdgeCoords() {
		p, ok := b.Paths[e]
		if !ok {
			return nil, renderErrorf(CodeMissingTopology,
				"hex %s references unknown edge %s", c, e)
		}
		paths[i] = p
	}

	var corners [6]string
	cornerChars := [6]string{".", "'", ".", "'", ".", "'"}
	for i := range ins {
		cell, err := r.cornerCell(cornerChars[i], ins[i])
		if err != nil {
			return nil, err
		}
		corners[i] = cell
	}

	var horizontal [6][]string
	for _, i := range []int{0, 1, 3, 4} {
		pair, err := r.pathCells([]string{"-", "-"}, paths[i], b)
		if err != nil {
			return nil, err
		}
		horizontal[i] = pair
	}
	left, err := r.pathCells([]string{"|"}, paths[5], b)
	if err != nil {
		return nil, err
	}
	right, err := r.pathCells([]string{"|"}, paths[2], b)
	if err != nil {
		return nil, err
	}

	row1 := []string{corners[0], horizontal[0][0], horizontal[0][1], corners[1], horizontal[1][0], horizontal[1][1], corners[2]}
	row2 := append(append([]string{left[0]}, r.hexCenterCells(h)...), right[0])
	row3 := []string{corners[5], horizontal[4][0], horizontal[4][1], corners[4], horizontal[3][0], horizontal[3][1], corners[3]}
	return [][]string{row1, row2, row3}, nil
}

// harborBlock renders a harbor as a one-row, three-cell "3:1" or "2:1"
// glyph over water, colored by its resource (white when generic).
func (r *BoardRenderer) harborBlock(h *board.Harbor) [][]string {
	fg := whiteColor
	ratio := "3"
	if h.Resource != board.ResourceNone {
		fg = r.resourceColors[h.Resource]
		ratio = "2"
	}
	row := make([]string, 0, 3)
	for _, ch := range []string{ratio, ":", "1"} {
		row = append(row, r.style(ch, fg, WaterColor))
	}
	return [][]string{row}
}

// GetBoardAsString renders the board into a multiline colorized string.
// Hexes are stamped first, then harbors, then the robber marker, so the
// harbor and robber glyphs win wherever they overlap a hex block.
func (r *BoardRenderer) GetBoardAsString(b *board.Board) (string, error) {
	canvas := NewCanvas(CanvasRows, CanvasCols, r.style(" ", "", WaterColor))
	centerX := CanvasCols/2 - 3
	centerY := CanvasRows/2 - 1

	for _, c := range sortedHexCoords(b) {
		block, err := r.hexBlock(b, c)
		if err != nil {
			return "", err
		}
		x, y := HexCenterOffset(c)
		if err := canvas.Stamp(block, centerX+x, centerY+y); err != nil {
			return "", err
		}
	}

	for _, e := range sortedHarborEdges(b) {
		harbor := b.Harbors[e]
		x, y, err := harborOffset(harbor, b)
		if err != nil {
			return "", err
		}
		if err := canvas.Stamp(r.harborBlock(harbor), centerX+x, centerY+y); err != nil {
			return "", err
		}
	}

	x, y := HexCenterOffset(b.Robber)
	robber := [][]string{{r.style("R", whiteColor, blackColor)}}
	if err := canvas.Stamp(robber, centerX+x+4, centerY+y+1); err != nil {
		return "", err
	}

	return canvas.String(), nil
}

// WriteBoard renders the board and writes it to w, followed by a newline.
func (r *BoardRenderer) WriteBoard(w io.Writer, b *board.Board) error {
	s, err := r.GetBoardAsString(b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// RenderBoard renders the board to standard output.
func (r *BoardRenderer) RenderBoard(b *board.Board) error {
	return r.WriteBoard(os.Stdout, b)
}

// sortedHexCoords returns the board's hex coordinates in a fixed order so
// renders are deterministic regardless of map iteration order.
func sortedHexCoords(b *board.Board) []board.Coords {
	coords := make([]board.Coords, 0, len(b.Hexes))
	for c := range b.Hexes {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Q != coords[j].Q {
			return coords[i].Q > coords[j].Q
		}
		return coords[i].R < coords[j].R
	})
	return coords
}

func sortedHarborEdges(b *board.Board) []board.EdgeCoords {
	edges := make([]board.EdgeCoords, 0, len(b.Harbors))
	for e := range b.Harbors {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		x, y := edges[i], edges[j]
		if x.A.Q != y.A.Q {
			return x.A.Q > y.A.Q
		}
		if x.A.R != y.A.R {
			return x.A.R < y.A.R
		}
		if x.B.Q != y.B.Q {
			return x.B.Q > y.B.Q
		}
		return x.B.R < y.B.R
	})
	return edges
}
