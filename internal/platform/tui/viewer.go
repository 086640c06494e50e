// Package tui provides the interactive board viewer and its SSH transport.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkravets/tui-catan/internal/board"
	"github.com/mkravets/tui-catan/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Movement deltas in hex coordinates for the four robber movement keys.
// Left and right are the pure horizontal hex neighbors; up and down move
// diagonally, which is the closest a hex grid has to vertical.
var (
	moveUpLeft    = board.C(2, -1)
	moveDownRight = board.C(-2, 1)
	moveLeft      = board.C(1, -2)
	moveRight     = board.C(-1, 2)
)

// ViewerModel is the Bubble Tea model for the interactive board viewer.
// It renders the board on every frame and lets the user walk the robber
// across the hexes.
type ViewerModel struct {
	board    *board.Board
	renderer *render.BoardRenderer
	keys     keyMap
	help     help.Model
	err      error
	quitting bool
}

// NewViewerModel creates a viewer for the given board and renderer.
func NewViewerModel(b *board.Board, r *render.BoardRenderer) ViewerModel {
	return ViewerModel{
		board:    b,
		renderer: r,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.UpLeft):
			m.moveRobber(moveUpLeft)
		case key.Matches(msg, m.keys.DownRight):
			m.moveRobber(moveDownRight)
		case key.Matches(msg, m.keys.Left):
			m.moveRobber(moveLeft)
		case key.Matches(msg, m.keys.Right):
			m.moveRobber(moveRight)
		}
	}
	return m, nil
}

// moveRobber shifts the robber by the given hex delta. Moves onto water are
// ignored so the robber can never leave the board.
func (m *ViewerModel) moveRobber(delta board.Coords) {
	target := m.board.Robber.Add(delta)
	if _, ok := m.board.Hexes[target]; !ok {
		return
	}
	if err := m.board.MoveRobber(target); err != nil {
		m.err = err
	}
}

// View implements tea.Model.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	s, err := m.renderer.GetBoardAsString(m.board)
	if err != nil {
		return fmt.Sprintf("render error: %v\n", err)
	}

	header := titleStyle.Render("tui-catan")
	status := statusStyle.Render(fmt.Sprintf("robber at %s", m.board.Robber))
	return header + "\n" + s + "\n" + status + "\n" + m.help.View(m.keys)
}
