package tracksource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testHeader = "track_name,artist_name,track_popularity,artist_popularity," +
	"artist_followers,track_duration_ms,explicit,artist_genres"

func writeDataset(t *testing.T, path string, rows ...string) {
	t.Helper()
	content := testHeader + "\n"
	for _, r := range rows {
		content += r + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
}

func TestNew_LoadsDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.csv")
	writeDataset(t, path,
		`Song,Artist A,42,60,1000,180000,True,"['pop' / 'rock']"`,
		`Other,Artist B,90,70,500,200000,False,jazz`,
	)

	svc, err := New(path, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer svc.Close()

	tracks := svc.GetTracks()
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}

	st := svc.GetStats()
	if st.RowsLoaded != 2 || st.RowsValid != 2 {
		t.Errorf("stats = %+v, want 2 loaded 2 valid", st)
	}
	if st.DistinctArtists != 2 {
		t.Errorf("distinct artists = %d, want 2", st.DistinctArtists)
	}
	if st.DistinctGenres != 3 {
		t.Errorf("distinct genres = %d, want 3", st.DistinctGenres)
	}
}

func TestNew_MissingFileYieldsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	svc, err := New(path, false)
	if err != nil {
		t.Fatalf("New should not fail on load error: %v", err)
	}
	defer svc.Close()

	if got := svc.GetTracks(); len(got) != 0 {
		t.Errorf("got %d tracks for missing file, want 0", len(got))
	}

	// The failure surfaces as an event, not an error.
	select {
	case ev := <-svc.Events():
		if ev.Type != EventError {
			t.Errorf("event type = %v, want EventError", ev.Type)
		}
	default:
		t.Error("no event emitted for failed load")
	}
}

func TestService_ReloadOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracks.csv")
	writeDataset(t, path, `Song,Artist A,42,60,1000,180000,True,pop`)

	svc, err := New(path, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer svc.Close()

	// Drain the initial load event.
	<-svc.Events()

	writeDataset(t, path,
		`Song,Artist A,42,60,1000,180000,True,pop`,
		`Other,Artist B,90,70,500,200000,False,jazz`,
	)

	select {
	case ev := <-svc.Events():
		if ev.Type != EventReloaded {
			t.Fatalf("event type = %v, want EventReloaded", ev.Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}

	if got := len(svc.GetTracks()); got != 2 {
		t.Errorf("got %d tracks after reload, want 2", got)
	}
}

func TestGetTracks_ReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.csv")
	writeDataset(t, path, `Song,Artist A,42,60,1000,180000,True,pop`)

	svc, err := New(path, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer svc.Close()

	first := svc.GetTracks()
	first[0].ArtistName = "mutated"

	second := svc.GetTracks()
	if second[0].ArtistName != "Artist A" {
		t.Error("GetTracks does not isolate callers from each other")
	}
}
