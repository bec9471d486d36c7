package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oakbery/spotscope-tui/internal/config"
)

const testHeader = "track_name,artist_name,track_popularity,artist_popularity," +
	"artist_followers,track_duration_ms,explicit,artist_genres"

func testConfig(t *testing.T, rows ...string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tracks.csv")

	content := testHeader + "\n"
	for _, r := range rows {
		content += r + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	return &config.Config{
		DatasetPath:    path,
		WatchDataset:   false,
		ResizeDebounce: 150 * time.Millisecond,
	}
}

func TestNewManager(t *testing.T) {
	cfg := testConfig(t, `Song,Artist A,42,60,1000,180000,True,pop`)

	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	if got := len(mgr.GetTracks()); got != 1 {
		t.Errorf("got %d tracks, want 1", got)
	}
	if st := mgr.GetStats(); st.RowsValid != 1 {
		t.Errorf("stats = %+v, want 1 valid row", st)
	}
}

func TestManager_SubscribeReceivesDatasetEvent(t *testing.T) {
	cfg := testConfig(t, `Song,Artist A,42,60,1000,180000,True,pop`)

	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	ch, cmd := mgr.Subscribe()
	if cmd == nil {
		t.Fatal("Subscribe returned nil command")
	}

	mgr.broadcast(DatasetChangedEvent{Tracks: mgr.GetTracks(), Stats: mgr.GetStats()})

	select {
	case ev := <-ch:
		if _, ok := ev.(DatasetChangedEvent); !ok {
			t.Errorf("event = %T, want DatasetChangedEvent", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestManager_Unsubscribe(t *testing.T) {
	cfg := testConfig(t)

	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	ch, _ := mgr.Subscribe()
	mgr.Unsubscribe(ch)

	// Channel is closed after unsubscribe.
	select {
	case _, open := <-ch:
		if open {
			t.Error("channel still open after Unsubscribe")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Unsubscribe")
	}
}
