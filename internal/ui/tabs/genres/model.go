// Package genres provides the genre treemap tab.
package genres

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakbery/spotscope-tui/internal/app"
)

// keyMap defines the key bindings specific to the genres tab.
type keyMap struct {
	ToggleLegend  key.Binding
	ToggleProfile key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleLegend: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle legend"),
		),
		ToggleProfile: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle popularity profile"),
		),
	}
}

// Model represents the genres tab state.
type Model struct {
	state       *app.State
	keys        keyMap
	width       int
	height      int
	showLegend  bool
	showProfile bool
}

// New creates a new genres model.
func New(state *app.State) *Model {
	return &Model{
		state:      state,
		keys:       defaultKeyMap(),
		showLegend: true,
	}
}

// Init initializes the genres tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the genres tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.ToggleLegend):
			m.showLegend = !m.showLegend
		case key.Matches(keyMsg, m.keys.ToggleProfile):
			m.showProfile = !m.showProfile
		}
	}
	return m, nil
}

// SetSize sets the available size for the genres tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.ToggleLegend, m.keys.ToggleProfile}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.ToggleLegend, m.keys.ToggleProfile},
	}
}
