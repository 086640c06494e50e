package render_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mkravets/tui-catan/internal/board"
	"github.com/mkravets/tui-catan/internal/render"
)

// plainStyler drops all styling so layout can be asserted on raw characters.
func plainStyler(text string, _, _ render.Color) string {
	return text
}

// tagStyler makes fg/bg assertions readable: every cell renders as
// [text:fg:bg].
func tagStyler(text string, fg, bg render.Color) string {
	return fmt.Sprintf("[%s:%s:%s]", text, fg, bg)
}

func mustBoard(t *testing.T, hexes []board.Hex, harbors []board.Harbor, robber board.Coords) *board.Board {
	t.Helper()
	b, err := board.NewBoard(hexes, harbors, robber)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

func TestColorForPlayer(t *testing.T) {
	r := render.New(render.Options{})
	p1 := &board.Player{Name: "one"}
	p2 := &board.Player{Name: "two"}

	c1, err := r.ColorForPlayer(p1)
	if err != nil {
		t.Fatalf("ColorForPlayer() failed: %v", err)
	}
	if c1 != "#00c40d" {
		t.Errorf("first player got %q, want first palette color #00c40d", c1)
	}

	c2, err := r.ColorForPlayer(p2)
	if err != nil {
		t.Fatalf("ColorForPlayer() failed: %v", err)
	}
	if c2 == c1 {
		t.Error("two distinct players got the same color")
	}

	// Repeated calls stay stable.
	again, err := r.ColorForPlayer(p1)
	if err != nil {
		t.Fatalf("ColorForPlayer() failed: %v", err)
	}
	if again != c1 {
		t.Errorf("player color changed between calls: %q then %q", c1, again)
	}
}

func TestColorForPlayerPaletteExhausted(t *testing.T) {
	r := render.New(render.Options{})
	for i := 0; i < 4; i++ {
		if _, err := r.ColorForPlayer(&board.Player{Name: fmt.Sprintf("p%d", i)}); err != nil {
			t.Fatalf("player %d should get a color: %v", i, err)
		}
	}

	_, err := r.ColorForPlayer(&board.Player{Name: "one too many"})
	var rerr *render.RenderError
	if !errors.As(err, &rerr) || rerr.Code != render.CodePaletteExhausted {
		t.Errorf("expected PALETTE_EXHAUSTED, got %v", err)
	}
}

func TestColorForPlayerPreassigned(t *testing.T) {
	p := &board.Player{Name: "pre"}
	r := render.New(render.Options{
		PlayerColors: map[*board.Player]render.Color{p: "#123456"},
	})

	c, err := r.ColorForPlayer(p)
	if err != nil {
		t.Fatalf("ColorForPlayer() failed: %v", err)
	}
	if c != "#123456" {
		t.Errorf("preassigned player got %q, want #123456", c)
	}

	// The palette is untouched by preassignment; the next new player still
	// gets the first palette color.
	c2, err := r.ColorForPlayer(&board.Player{Name: "fresh"})
	if err != nil {
		t.Fatalf("ColorForPlayer() failed: %v", err)
	}
	if c2 != "#00c40d" {
		t.Errorf("fresh player got %q, want #00c40d", c2)
	}
}

func TestColorLookups(t *testing.T) {
	r := render.New(render.Options{})
	if c := r.ColorForHexType(board.Forest); c != "#005e09" {
		t.Errorf("forest color = %q, want #005e09", c)
	}
	if c := r.ColorForResource(board.Brick); c != "#cc1f0c" {
		t.Errorf("brick color = %q, want #cc1f0c", c)
	}

	over := render.New(render.Options{
		HexColors:      map[board.HexType]render.Color{board.Forest: "#0a0a0a"},
		ResourceColors: map[board.Resource]render.Color{board.Brick: "#0b0b0b"},
	})
	if c := over.ColorForHexType(board.Forest); c != "#0a0a0a" {
		t.Errorf("overridden forest color = %q, want #0a0a0a", c)
	}
	if c := over.ColorForResource(board.Brick); c != "#0b0b0b" {
		t.Errorf("overridden brick color = %q, want #0b0b0b", c)
	}
	// Types without an override keep their defaults.
	if c := over.ColorForHexType(board.Pasture); c != "#52ff62" {
		t.Errorf("pasture color = %q, want default #52ff62", c)
	}
}

func TestSingleHexLayout(t *testing.T) {
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(0, 0), Type: board.Fields, Token: 8}},
		nil, board.C(0, 0))
	p := &board.Player{Name: "P"}
	if err := b.PlaceSettlement(p, board.C(1, 0)); err != nil {
		t.Fatalf("PlaceSettlement() failed: %v", err)
	}

	r := render.New(render.Options{Styler: plainStyler})
	out, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != render.CanvasRows {
		t.Fatalf("expected %d rows, got %d", render.CanvasRows, len(lines))
	}
	for i, line := range lines {
		if len(line) != render.CanvasCols {
			t.Fatalf("row %d has %d cells, want %d", i, len(line), render.CanvasCols)
		}
	}

	pad := strings.Repeat(" ", 24)
	wantRows := []struct {
		y    int
		want string
	}{
		{9, pad + ".--s--." + pad},
		{10, pad + "|  8R |" + pad},
		{11, pad + "'--.--'" + pad},
	}
	for _, w := range wantRows {
		if lines[w.y] != w.want {
			t.Errorf("row %d:\ngot  %q\nwant %q", w.y, lines[w.y], w.want)
		}
	}

	// Everything outside the hex block is water.
	if lines[0] != strings.Repeat(" ", render.CanvasCols) {
		t.Errorf("top row should be all water, got %q", lines[0])
	}
}

func TestSingleHexStyling(t *testing.T) {
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(0, 0), Type: board.Fields, Token: 8}},
		nil, board.C(0, 0))
	p := &board.Player{Name: "P"}
	if err := b.PlaceSettlement(p, board.C(1, 0)); err != nil {
		t.Fatalf("PlaceSettlement() failed: %v", err)
	}

	r := render.New(render.Options{Styler: tagStyler})
	out, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}

	checks := []struct {
		cell string
		why  string
	}{
		{"[s:#00c40d:#ffe5a3]", "settlement in first palette color on unowned background"},
		{"[8:#FF0000:#FFFFFF]", "token 8 red on white"},
		{"[.:#9c7500:#ffe5a3]", "unbuilt corner placeholder"},
		{"[-:#9c7500:#ffe5a3]", "unbuilt edge"},
		{"[ ::#ffea29]", "fields-colored center blank"},
		{"[R:#FFFFFF:#000000]", "robber marker white on black"},
		{"[ ::#2387de]", "water cell"},
	}
	for _, c := range checks {
		if !strings.Contains(out, c.cell) {
			t.Errorf("output missing %s (%s)", c.cell, c.why)
		}
	}
}

func TestTokenStyling(t *testing.T) {
	// 6 and 8 are hot numbers and render red; everything else black.
	// Two-digit tokens drop the alignment pad and occupy two cells.
	b := mustBoard(t, []board.Hex{
		{Coords: board.C(0, 0), Type: board.Desert},
		{Coords: board.C(1, 1), Type: board.Hills, Token: 6},
		{Coords: board.C(2, -1), Type: board.Pasture, Token: 5},
		{Coords: board.C(1, -2), Type: board.Forest, Token: 12},
	}, nil, board.C(0, 0))

	r := render.New(render.Options{Styler: tagStyler})
	out, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}

	if !strings.Contains(out, "[6:#FF0000:#FFFFFF]") {
		t.Error("token 6 should render red on white")
	}
	if !strings.Contains(out, "[5:#000000:#FFFFFF]") {
		t.Error("token 5 should render black on white")
	}
	if !strings.Contains(out, "[1:#000000:#FFFFFF][2:#000000:#FFFFFF]") {
		t.Error("token 12 should render as two adjacent styled digits")
	}
}

func TestDesertCenterBlank(t *testing.T) {
	b := mustBoard(t, []board.Hex{
		{Coords: board.C(0, 0), Type: board.Desert},
		{Coords: board.C(1, 1), Type: board.Fields, Token: 4},
	}, nil, board.C(1, 1))

	r := render.New(render.Options{Styler: plainStyler})
	out, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}

	// Desert block center row: no token, five blanks between the verticals.
	lines := strings.Split(out, "\n")
	if got := lines[10][24:31]; got != "|     |" {
		t.Errorf("desert center row = %q, want %q", got, "|     |")
	}
}

func TestHarborEdgeStyling(t *testing.T) {
	harborEdge := board.Edge(board.C(0, -1), board.C(1, -1))
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(0, 0), Type: board.Fields, Token: 3}},
		[]board.Harbor{{Coords: harborEdge, Resource: board.Lumber}},
		board.C(0, 0))

	r := render.New(render.Options{Styler: tagStyler})
	out, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}

	if !strings.Contains(out, "[|:#000000:#ffe5a3]") {
		t.Error("unbuilt harbor edge should have a black foreground")
	}
	if !strings.Contains(out, "[2:#005e09:#2387de]") {
		t.Error("lumber harbor glyph should render 2:1 in the lumber color over water")
	}

	// A road on the harbor edge wins over the harbor marker.
	p := &board.Player{Name: "P"}
	if err := b.PlaceRoad(p, harborEdge); err != nil {
		t.Fatalf("PlaceRoad() failed: %v", err)
	}
	out2, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}
	if strings.Contains(out2, "[|:#000000:#ffe5a3]") {
		t.Error("owned harbor edge should not keep the black harbor marker")
	}
	if !strings.Contains(out2, "[|:#00c40d:#ffe5a3]") {
		t.Error("owned harbor edge should render in the road owner's color")
	}
}

func TestGenericHarborGlyph(t *testing.T) {
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(0, 0), Type: board.Fields, Token: 3}},
		[]board.Harbor{{Coords: board.Edge(board.C(0, -1), board.C(1, -1))}},
		board.C(0, 0))

	r := render.New(render.Options{Styler: tagStyler})
	out, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}

	for _, cell := range []string{"[3:#FFFFFF:#2387de]", "[::#FFFFFF:#2387de]", "[1:#FFFFFF:#2387de]"} {
		if !strings.Contains(out, cell) {
			t.Errorf("generic harbor glyph missing cell %s", cell)
		}
	}
}

func TestCityStyling(t *testing.T) {
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(0, 0), Type: board.Pasture, Token: 9}},
		nil, board.C(0, 0))
	p := &board.Player{Name: "P"}
	if err := b.PlaceSettlement(p, board.C(0, 1)); err != nil {
		t.Fatalf("PlaceSettlement() failed: %v", err)
	}
	if err := b.UpgradeToCity(p, board.C(0, 1)); err != nil {
		t.Fatalf("UpgradeToCity() failed: %v", err)
	}

	r := render.New(render.Options{Styler: tagStyler})
	out, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}
	if !strings.Contains(out, "[c:#00c40d:#ffe5a3]") {
		t.Error("city should render 'c' in the owner's color")
	}
}

func TestRenderDeterministic(t *testing.T) {
	build := func() *board.Board {
		b := board.BeginnerBoard()
		p1 := &board.Player{Name: "one"}
		p2 := &board.Player{Name: "two"}
		if err := b.PlaceSettlement(p1, board.C(1, -1)); err != nil {
			t.Fatalf("PlaceSettlement() failed: %v", err)
		}
		if err := b.PlaceSettlement(p2, board.C(-1, 1)); err != nil {
			t.Fatalf("PlaceSettlement() failed: %v", err)
		}
		if err := b.PlaceRoad(p1, board.Edge(board.C(1, -1), board.C(1, 0))); err != nil {
			t.Fatalf("PlaceRoad() failed: %v", err)
		}
		return b
	}

	b := build()
	r := render.New(render.Options{Styler: tagStyler})

	first, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}
	second, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}
	if first != second {
		t.Error("repeated renders on the same renderer differ")
	}

	// A fresh renderer with identical configuration over an identical
	// board produces the same bytes.
	other, err := render.New(render.Options{Styler: tagStyler}).GetBoardAsString(build())
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}
	if first != other {
		t.Error("renders differ across identically configured renderers")
	}
}

func TestRenderPaletteExhausted(t *testing.T) {
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(0, 0), Type: board.Fields, Token: 8}},
		nil, board.C(0, 0))
	corners := []board.Coords{
		board.C(1, -1), board.C(1, 0), board.C(0, 1), board.C(-1, 1), board.C(-1, 0),
	}
	for i, c := range corners {
		p := &board.Player{Name: fmt.Sprintf("p%d", i)}
		if err := b.PlaceSettlement(p, c); err != nil {
			t.Fatalf("PlaceSettlement() failed: %v", err)
		}
	}

	r := render.New(render.Options{Styler: plainStyler})
	_, err := r.GetBoardAsString(b)
	var rerr *render.RenderError
	if !errors.As(err, &rerr) || rerr.Code != render.CodePaletteExhausted {
		t.Errorf("expected PALETTE_EXHAUSTED, got %v", err)
	}
}

func TestRenderMissingTopology(t *testing.T) {
	// A board assembled by hand with empty maps violates the topology
	// invariant NewBoard normally establishes.
	h := &board.Hex{Coords: board.C(0, 0), Type: board.Fields, Token: 8}
	b := &board.Board{
		Hexes:         map[board.Coords]*board.Hex{h.Coords: h},
		Intersections: map[board.Coords]*board.Intersection{},
		Paths:         map[board.EdgeCoords]*board.Path{},
		Harbors:       map[board.EdgeCoords]*board.Harbor{},
		Robber:        board.C(0, 0),
	}

	r := render.New(render.Options{Styler: plainStyler})
	_, err := r.GetBoardAsString(b)
	var rerr *render.RenderError
	if !errors.As(err, &rerr) || rerr.Code != render.CodeMissingTopology {
		t.Errorf("expected MISSING_TOPOLOGY, got %v", err)
	}
}

func TestRenderCanvasOverflow(t *testing.T) {
	// A hex that far out projects above the canvas.
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(12, 0), Type: board.Fields, Token: 8}},
		nil, board.C(12, 0))

	r := render.New(render.Options{Styler: plainStyler})
	_, err := r.GetBoardAsString(b)
	var rerr *render.RenderError
	if !errors.As(err, &rerr) || rerr.Code != render.CodeCanvasOverflow {
		t.Errorf("expected CANVAS_OVERFLOW, got %v", err)
	}
}

func TestBeginnerBoardRenders(t *testing.T) {
	r := render.New(render.Options{Styler: plainStyler})
	out, err := r.GetBoardAsString(board.BeginnerBoard())
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != render.CanvasRows {
		t.Fatalf("expected %d rows, got %d", render.CanvasRows, len(lines))
	}
	for _, fragment := range []string{"R", "3:1", "2:1", "12"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("beginner board output missing %q", fragment)
		}
	}
}

func TestWriteBoard(t *testing.T) {
	b := mustBoard(t,
		[]board.Hex{{Coords: board.C(0, 0), Type: board.Fields, Token: 8}},
		nil, board.C(0, 0))
	r := render.New(render.Options{Styler: plainStyler})

	var buf bytes.Buffer
	if err := r.WriteBoard(&buf, b); err != nil {
		t.Fatalf("WriteBoard() failed: %v", err)
	}

	want, err := r.GetBoardAsString(b)
	if err != nil {
		t.Fatalf("GetBoardAsString() failed: %v", err)
	}
	if buf.String() != want+"\n" {
		t.Error("WriteBoard output should be the rendered board plus a trailing newline")
	}
}
