// Package flow provides the artist-to-track popularity flow tab.
package flow

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakbery/spotscope-tui/internal/app"
)

// keyMap defines the key bindings specific to the flow tab.
type keyMap struct {
	ToggleTotals key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleTotals: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle totals"),
		),
	}
}

// Model represents the flow tab state.
type Model struct {
	state      *app.State
	keys       keyMap
	width      int
	height     int
	showTotals bool
}

// New creates a new flow model.
func New(state *app.State) *Model {
	return &Model{
		state:      state,
		keys:       defaultKeyMap(),
		showTotals: true,
	}
}

// Init initializes the flow tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the flow tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.ToggleTotals) {
			m.showTotals = !m.showTotals
		}
	}
	return m, nil
}

// SetSize sets the available size for the flow tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.ToggleTotals}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.ToggleTotals},
	}
}
