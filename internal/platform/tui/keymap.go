package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the viewer's key bindings. The four movement keys move the
// robber between hexes; moves that would leave the board are ignored.
type keyMap struct {
	UpLeft    key.Binding
	DownRight key.Binding
	Left      key.Binding
	Right     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		UpLeft: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "robber up"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "robber down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "robber left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "robber right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpLeft, k.DownRight, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.UpLeft, k.DownRight, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}
