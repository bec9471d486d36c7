package artists

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakbery/spotscope-tui/internal/app"
	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/pipeline"
)

func stateWithTracks(tracks ...models.Track) *app.State {
	state := app.NewState()
	state.SetTracks(tracks)
	state.SetSnapshot(app.BuildSnapshot(tracks, pipeline.Size{Width: 80, Height: 24}))
	return state
}

func track(artist string, pop, followers float64) models.Track {
	return models.Track{
		TrackName:        "song",
		ArtistName:       artist,
		TrackPopularity:  pop,
		ArtistPopularity: 50,
		ArtistFollowers:  followers,
		DurationMS:       200000,
		Genres:           []string{"pop"},
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState())
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_View(t *testing.T) {
	state := stateWithTracks(
		track("Artist A", 80, 1000),
		track("Artist A", 60, 1000),
		track("Artist B", 40, 500),
	)

	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if view == "" {
		t.Error("View returned empty string")
	}
	if !strings.Contains(view, "Artist A") {
		t.Error("View missing top artist")
	}
}

func TestModel_View_Empty(t *testing.T) {
	m := New(app.NewState())
	m.SetSize(80, 24)

	view := m.View()
	if view == "" {
		t.Error("View returned empty string")
	}
}

func TestModel_View_ZeroSize(t *testing.T) {
	m := New(app.NewState())
	if view := m.View(); view != "" {
		t.Errorf("View at zero size = %q, want empty", view)
	}
}

func TestModel_Selection(t *testing.T) {
	state := stateWithTracks(
		track("Artist A", 80, 1000),
		track("Artist B", 40, 500),
	)

	m := New(state)
	m.SetSize(80, 24)

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.selectedIndex != 1 {
		t.Errorf("selectedIndex = %d, want 1", m.selectedIndex)
	}

	// wraps around
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex = %d, want 0 after wrap", m.selectedIndex)
	}
}

func TestModel_SelectionClampedOnSnapshot(t *testing.T) {
	state := stateWithTracks(
		track("Artist A", 80, 1000),
		track("Artist B", 40, 500),
	)

	m := New(state)
	m.selectedIndex = 1

	single := []models.Track{track("Artist A", 80, 1000)}
	state.SetSnapshot(app.BuildSnapshot(single, pipeline.Size{Width: 80, Height: 24}))

	m.Update(app.SnapshotMsg{})
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex = %d, want 0 after shrink", m.selectedIndex)
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp returned no bindings")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp returned no bindings")
	}
}
