// Package render draws a board as colorized text for the terminal.
// The renderer is deterministic: the same board and the same renderer
// configuration always produce byte-identical output.
package render

import "github.com/charmbracelet/lipgloss"

// Color is a hex color code string (e.g. "#FF0000"). The empty string means
// "unset" and leaves the corresponding channel unstyled.
type Color string

// Styler turns a piece of text into a styled piece of text with the given
// foreground and background colors. The default styler uses lipgloss; tests
// inject plain-text stylers to make assertions on the output readable.
type Styler func(text string, fg, bg Color) string

// LipglossStyler styles text with truecolor ANSI escapes via lipgloss.
func LipglossStyler(text string, fg, bg Color) string {
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(string(fg)))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(string(bg)))
	}
	return style.Render(text)
}
