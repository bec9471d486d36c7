package info

import (
	"strings"
	"testing"
	"time"

	"github.com/oakbery/spotscope-tui/internal/app"
	"github.com/oakbery/spotscope-tui/internal/config"
	"github.com/oakbery/spotscope-tui/internal/models"
)

func TestNew(t *testing.T) {
	m := New(app.NewState(), &config.Config{})
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_View(t *testing.T) {
	state := app.NewState()
	state.SetStats(models.DatasetStats{
		RowsLoaded:      100,
		RowsValid:       90,
		DistinctArtists: 40,
		DistinctGenres:  12,
		SourcePath:      "tracks.csv",
	})

	cfg := &config.Config{
		DatasetPath:    "tracks.csv",
		ExportDir:      "exports",
		ResizeDebounce: 150 * time.Millisecond,
		WatchDataset:   true,
	}

	m := New(state, cfg)
	m.SetSize(80, 24)

	view := m.View()
	if view == "" {
		t.Error("View returned empty string")
	}
	if !strings.Contains(view, "100") {
		t.Error("View missing row count")
	}
	if !strings.Contains(view, "tracks.csv") {
		t.Error("View missing source path")
	}
}

func TestModel_View_NilConfig(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(80, 24)

	if m.View() == "" {
		t.Error("View returned empty string")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{200000, "3:20"},
		{60000, "1:00"},
		{59999, "0:59"},
		{0, "n/a"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.ms); got != tt.want {
			t.Errorf("formatDuration(%v) = %s, want %s", tt.ms, got, tt.want)
		}
	}
}

func TestFormatDuration_NaN(t *testing.T) {
	nan := 0.0
	nan /= nan
	if got := formatDuration(nan); got != "n/a" {
		t.Errorf("formatDuration(NaN) = %s, want n/a", got)
	}
}
