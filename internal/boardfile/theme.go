package boardfile

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/mkravets/tui-catan/internal/board"
	"github.com/mkravets/tui-catan/internal/render"
)

// Theme is the YAML representation of a renderer color configuration. All
// sections are optional; anything not listed keeps the renderer default.
// Player colors are keyed by player name, terrain and resource colors by
// their lowercase names. Every color must be a "#rrggbb" hex code.
type Theme struct {
	PlayerColors   map[string]string `yaml:"player_colors,omitempty"`
	HexColors      map[string]string `yaml:"hex_colors,omitempty"`
	ResourceColors map[string]string `yaml:"resource_colors,omitempty"`
}

// LoadTheme reads a theme file from disk.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("boardfile: read theme %s: %w", path, err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("boardfile: parse theme %s: %w", path, err)
	}
	return &t, nil
}

// Options converts the theme into renderer options, resolving player names
// against the given board players. Colors are validated up front so a typo
// in the theme fails loudly instead of rendering garbage.
func (t *Theme) Options(players map[string]*board.Player) (render.Options, error) {
	var opts render.Options

	for name, col := range t.PlayerColors {
		p, ok := players[name]
		if !ok {
			return opts, fmt.Errorf("boardfile: theme colors unknown player %q", name)
		}
		c, err := parseColor(col)
		if err != nil {
			return opts, fmt.Errorf("boardfile: player %q: %w", name, err)
		}
		if opts.PlayerColors == nil {
			opts.PlayerColors = make(map[*board.Player]render.Color)
		}
		opts.PlayerColors[p] = c
	}

	for name, col := range t.HexColors {
		ht, ok := board.ParseHexType(name)
		if !ok {
			return opts, fmt.Errorf("boardfile: theme colors unknown terrain %q", name)
		}
		c, err := parseColor(col)
		if err != nil {
			return opts, fmt.Errorf("boardfile: terrain %q: %w", name, err)
		}
		if opts.HexColors == nil {
			opts.HexColors = make(map[board.HexType]render.Color)
		}
		opts.HexColors[ht] = c
	}

	for name, col := range t.ResourceColors {
		res, ok := board.ParseResource(name)
		if !ok {
			return opts, fmt.Errorf("boardfile: theme colors unknown resource %q", name)
		}
		c, err := parseColor(col)
		if err != nil {
			return opts, fmt.Errorf("boardfile: resource %q: %w", name, err)
		}
		if opts.ResourceColors == nil {
			opts.ResourceColors = make(map[board.Resource]render.Color)
		}
		opts.ResourceColors[res] = c
	}

	return opts, nil
}

func parseColor(s string) (render.Color, error) {
	if _, err := colorful.Hex(s); err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return render.Color(s), nil
}
