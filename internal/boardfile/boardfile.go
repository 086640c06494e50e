// Package boardfile loads and saves board layouts and renderer themes as
// YAML files.
package boardfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkravets/tui-catan/internal/board"
)

// CoordsDef is an axial coordinate as it appears in a layout file.
type CoordsDef struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// HexDef describes one hex tile.
type HexDef struct {
	Q     int    `yaml:"q"`
	R     int    `yaml:"r"`
	Type  string `yaml:"type"`
	Token int    `yaml:"token,omitempty"`
}

// HarborDef describes one harbor by the two corners of its edge.
// An empty resource means a generic 3:1 harbor.
type HarborDef struct {
	Corners  [2]CoordsDef `yaml:"corners"`
	Resource string       `yaml:"resource,omitempty"`
}

// BuildingDef describes one placed building. Settlements and cities carry a
// corner, roads carry an edge.
type BuildingDef struct {
	Player string        `yaml:"player"`
	Type   string        `yaml:"type"`
	Corner *CoordsDef    `yaml:"corner,omitempty"`
	Edge   *[2]CoordsDef `yaml:"edge,omitempty"`
}

// File is the YAML representation of a full board layout.
type File struct {
	Hexes     []HexDef      `yaml:"hexes"`
	Harbors   []HarborDef   `yaml:"harbors,omitempty"`
	Robber    CoordsDef     `yaml:"robber"`
	Buildings []BuildingDef `yaml:"buildings,omitempty"`
}

func (c CoordsDef) coords() board.Coords {
	return board.C(c.Q, c.R)
}

func edgeOf(pair [2]CoordsDef) board.EdgeCoords {
	return board.Edge(pair[0].coords(), pair[1].coords())
}

// Load reads a layout file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("boardfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a layout from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("boardfile: parse: %w", err)
	}
	return &f, nil
}

// Save writes the layout to disk as YAML.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("boardfile: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("boardfile: write %s: %w", path, err)
	}
	return nil
}

// Marshal encodes the layout as YAML bytes.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// ToBoard builds a board from the layout and places its buildings. Players
// are created on first mention and returned by name so the caller can keep
// addressing them (e.g. for color overrides).
func (f *File) ToBoard() (*board.Board, map[string]*board.Player, error) {
	hexes := make([]board.Hex, 0, len(f.Hexes))
	for _, hd := range f.Hexes {
		t, ok := board.ParseHexType(hd.Type)
		if !ok {
			return nil, nil, fmt.Errorf("boardfile: unknown terrain %q at (%d,%d)", hd.Type, hd.Q, hd.R)
		}
		if hd.Token != 0 && (hd.Token < 2 || hd.Token > 12 || hd.Token == 7) {
			return nil, nil, fmt.Errorf("boardfile: invalid token %d at (%d,%d)", hd.Token, hd.Q, hd.R)
		}
		hexes = append(hexes, board.Hex{Coords: board.C(hd.Q, hd.R), Type: t, Token: hd.Token})
	}

	harbors := make([]board.Harbor, 0, len(f.Harbors))
	for _, hd := range f.Harbors {
		res := board.ResourceNone
		if hd.Resource != "" {
			r, ok := board.ParseResource(hd.Resource)
			if !ok {
				return nil, nil, fmt.Errorf("boardfile: unknown resource %q", hd.Resource)
			}
			res = r
		}
		harbors = append(harbors, board.Harbor{Coords: edgeOf(hd.Corners), Resource: res})
	}

	b, err := board.NewBoard(hexes, harbors, f.Robber.coords())
	if err != nil {
		return nil, nil, err
	}

	players := make(map[string]*board.Player)
	playerFor := func(name string) *board.Player {
		if p, ok := players[name]; ok {
			return p
		}
		p := &board.Player{Name: name}
		players[name] = p
		return p
	}

	for _, bd := range f.Buildings {
		t, ok := board.ParseBuildingType(bd.Type)
		if !ok {
			return nil, nil, fmt.Errorf("boardfile: unknown building type %q", bd.Type)
		}
		p := playerFor(bd.Player)
		switch t {
		case board.Road:
			if bd.Edge == nil {
				return nil, nil, fmt.Errorf("boardfile: road for %s has no edge", bd.Player)
			}
			err = b.PlaceRoad(p, edgeOf(*bd.Edge))
		case board.Settlement, board.City:
			if bd.Corner == nil {
				return nil, nil, fmt.Errorf("boardfile: %s for %s has no corner", t, bd.Player)
			}
			err = b.PlaceSettlement(p, bd.Corner.coords())
			if err == nil && t == board.City {
				err = b.UpgradeToCity(p, bd.Corner.coords())
			}
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return b, players, nil
}

// FromBoard captures a board back into its file representation. Buildings
// are recorded under their owners' names.
func FromBoard(b *board.Board) *File {
	f := &File{Robber: CoordsDef{Q: b.Robber.Q, R: b.Robber.R}}

	for _, h := range b.Hexes {
		f.Hexes = append(f.Hexes, HexDef{Q: h.Coords.Q, R: h.Coords.R, Type: h.Type.String(), Token: h.Token})
	}
	for _, h := range b.Harbors {
		hd := HarborDef{Corners: [2]CoordsDef{
			{Q: h.Coords.A.Q, R: h.Coords.A.R},
			{Q: h.Coords.B.Q, R: h.Coords.B.R},
		}}
		if h.Resource != board.ResourceNone {
			hd.Resource = h.Resource.String()
		}
		f.Harbors = append(f.Harbors, hd)
	}
	for _, in := range b.Intersections {
		if in.Building == nil {
			continue
		}
		f.Buildings = append(f.Buildings, BuildingDef{
			Player: in.Building.Owner.Name,
			Type:   in.Building.Type.String(),
			Corner: &CoordsDef{Q: in.Coords.Q, R: in.Coords.R},
		})
	}
	for _, p := range b.Paths {
		if p.Building == nil {
			continue
		}
		f.Buildings = append(f.Buildings, BuildingDef{
			Player: p.Building.Owner.Name,
			Type:   p.Building.Type.String(),
			Edge: &[2]CoordsDef{
				{Q: p.Coords.A.Q, R: p.Coords.A.R},
				{Q: p.Coords.B.Q, R: p.Coords.B.R},
			},
		})
	}

	sortFile(f)
	return f
}
