// Package tracks provides the track ranking tab.
package tracks

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakbery/spotscope-tui/internal/app"
)

// viewMode selects between the ranked list and the scatter plot.
type viewMode int

const (
	modeList viewMode = iota
	modeScatter
)

// keyMap defines the key bindings specific to the tracks tab.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	ToggleView key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "j", "down"),
			key.WithHelp("j/n", "next track"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "k", "up"),
			key.WithHelp("k/p", "prev track"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first track"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last track"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle scatter"),
		),
	}
}

// Model represents the tracks tab state.
type Model struct {
	state         *app.State
	keys          keyMap
	width         int
	height        int
	selectedIndex int
	mode          viewMode
}

// New creates a new tracks model.
func New(state *app.State) *Model {
	return &Model{
		state: state,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the tracks tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tracks tab.
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
	if key.Matches(msg, m.keys.ToggleView) {
		if m.mode == modeList {
			m.mode = modeScatter
		} else {
			m.mode = modeList
		}
		return
	}

	count := len(m.state.GetSnapshot().TopTracks)
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
	count := len(m.state.GetSnapshot().TopTracks)
	if count == 0 {
		m.selectedIndex = 0
	} else if m.selectedIndex >= count {
		m.selectedIndex = count - 1
	}
}

// SetSize sets the available size for the tracks tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Next,
		m.keys.Prev,
		m.keys.ToggleView,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Next, m.keys.Prev},
		{m.keys.First, m.keys.Last},
		{m.keys.ToggleView},
	}
}
