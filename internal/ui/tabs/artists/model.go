// Package artists provides the artist ranking tab.
package artists

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakbery/spotscope-tui/internal/app"
)

// keyMap defines the key bindings specific to the artists tab.
type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
}

// defaultKeyMap returns the default key bindings for the artists tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "j", "down"),
			key.WithHelp("j/n", "next artist"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "k", "up"),
			key.WithHelp("k/p", "prev artist"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first artist"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last artist"),
		),
	}
}

// Model represents the artists tab state.
type Model struct {
	state         *app.State
	keys          keyMap
	width         int
	height        int
	selectedIndex int
}

// New creates a new artists model.
func New(state *app.State) *Model {
	return &Model{
		state: state,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the artists tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the artists tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case app.SnapshotMsg:
		m.clampSelection()

	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) {
	count := len(m.state.GetSnapshot().TopArtists)
	if count == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.selectedIndex = (m.selectedIndex + 1) % count
	case key.Matches(msg, m.keys.Prev):
		m.selectedIndex = (m.selectedIndex - 1 + count) % count
	case key.Matches(msg, m.keys.First):
		m.selectedIndex = 0
	case key.Matches(msg, m.keys.Last):
		m.selectedIndex = count - 1
	}
}

func (m *Model) clampSelection() {
	count := len(m.state.GetSnapshot().TopArtists)
	if count == 0 {
		m.selectedIndex = 0
	} else if m.selectedIndex >= count {
		m.selectedIndex = count - 1
	}
}

// SetSize sets the available size for the artists tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Next,
		m.keys.Prev,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Next, m.keys.Prev},
		{m.keys.First, m.keys.Last},
	}
}
