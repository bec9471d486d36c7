package flow

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

func track(artistPop, trackPop float64) models.Track {
	return models.Track{
		TrackName:        "song",
		ArtistName:       "Artist",
		TrackPopularity:  trackPop,
		ArtistPopularity: artistPop,
		ArtistFollowers:  1000,
		DurationMS:       200000,
		Genres:           []string{"pop"},
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState())
	if m == nil {
		t.Fatal("New returned nil")
	}
	if !m.showTotals {
		t.Error("totals should be visible by default")
	}
}

func TestModel_View(t *testing.T) {
	state := stateWithTracks(
		track(80, 20),
		track(80, 90),
		track(10, 10),
	)

	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if view == "" {
		t.Error("View returned empty string")
	}
	if !strings.Contains(view, "High") || !strings.Contains(view, "Low") {
		t.Error("View missing bucket labels")
	}
}

func TestModel_View_Empty(t *testing.T) {
	m := New(app.NewState())
	m.SetSize(80, 24)

	if view := m.View(); !strings.Contains(view, "No data") {
		t.Error("empty snapshot should render the no data placeholder")
	}
}

func TestModel_View_ZeroSize(t *testing.T) {
	m := New(app.NewState())
	if view := m.View(); view != "" {
		t.Errorf("View at zero size = %q, want empty", view)
	}
}

func TestModel_ToggleTotals(t *testing.T) {
	m := New(app.NewState())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.showTotals {
		t.Error("t should hide the totals")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if !m.showTotals {
		t.Error("t should show the totals again")
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
