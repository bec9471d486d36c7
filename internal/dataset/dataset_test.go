package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/oakbery/spotscope-tui/internal/models"
)

const testHeader = "track_name,artist_name,track_popularity,artist_popularity," +
	"artist_followers,track_duration_ms,explicit,artist_genres"

func writeDataset(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracks.csv")
	content := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func TestNormalizeGenres(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"Empty", "", nil},
		{"BracketedSlashes", "['pop' / 'rock']", []string{"pop", "rock"}},
		{"CommaSeparated", "pop, rock", []string{"pop", "rock"}},
		{"SingleToken", "jazz", []string{"jazz"}},
		{"QuotedList", `["indie pop", "dream pop"]`, []string{"indie pop", "dream pop"}},
		{"EmptyList", "[]", nil},
		{"BlankTokens", ", ,", nil},
		{"MixedSeparators", "pop/rock, jazz", []string{"pop", "rock", "jazz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeGenres(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeGenres(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := writeDataset(t,
		`Song One,Artist A,42,60,1000,180000,True,"['pop' / 'rock']"`,
		`Song Two,Artist B,90,70,500,200000,False,jazz`,
	)

	tracks, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}

	first := tracks[0]
	if first.TrackName != "Song One" || first.ArtistName != "Artist A" {
		t.Errorf("first = %s / %s, want Song One / Artist A", first.TrackName, first.ArtistName)
	}
	if first.TrackPopularity != 42 || first.ArtistPopularity != 60 {
		t.Errorf("popularity = (%v, %v), want (42, 60)", first.TrackPopularity, first.ArtistPopularity)
	}
	if !first.Explicit {
		t.Error("explicit = false, want true")
	}
	if !reflect.DeepEqual(first.Genres, []string{"pop", "rock"}) {
		t.Errorf("genres = %v, want [pop rock]", first.Genres)
	}
	if tracks[1].Explicit {
		t.Error("second explicit = true, want false")
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))

	var dsErr *DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("error = %v, want *DataSourceError", err)
	}
}

func TestLoadCSV_WrongColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	_, err := LoadCSV(path)
	var dsErr *DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("error = %v, want *DataSourceError", err)
	}
}

func TestLoadCSV_BadNumbersBecomeNaN(t *testing.T) {
	path := writeDataset(t,
		`Song,Artist,not-a-number,60,1000,180000,True,pop`,
	)

	tracks, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if !math.IsNaN(tracks[0].TrackPopularity) {
		t.Errorf("bad number coerced to %v, want NaN", tracks[0].TrackPopularity)
	}
	// The row survives loading; only filtering drops it.
	if len(tracks) != 1 {
		t.Errorf("got %d tracks, want 1", len(tracks))
	}
}

func TestFilter(t *testing.T) {
	tracks := []models.Track{
		{ArtistName: "A", TrackPopularity: 50, ArtistPopularity: 50, ArtistFollowers: 100, DurationMS: 1000},
		{ArtistName: "B", TrackPopularity: math.NaN(), ArtistPopularity: 50, ArtistFollowers: 100, DurationMS: 1000},
		{ArtistName: "C", TrackPopularity: 50, ArtistPopularity: 50, ArtistFollowers: 0, DurationMS: 1000},
	}

	valid := Filter(tracks, DefaultRequirements)
	if len(valid) != 1 || valid[0].ArtistName != "A" {
		t.Errorf("Filter kept %d records, want only A", len(valid))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	tracks := []models.Track{
		{ArtistName: "A", TrackPopularity: 50, ArtistPopularity: 50, ArtistFollowers: 100, DurationMS: 1000},
		{ArtistName: "B", TrackPopularity: math.NaN(), ArtistPopularity: 50, ArtistFollowers: 100, DurationMS: 1000},
	}

	once := Filter(tracks, DefaultRequirements)
	twice := Filter(once, DefaultRequirements)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter not idempotent: %v vs %v", once, twice)
	}
}

func TestFilter_ZeroFollowersDropped(t *testing.T) {
	tracks := []models.Track{
		{ArtistName: "A", TrackPopularity: 50, ArtistPopularity: 50, ArtistFollowers: -5, DurationMS: 1000},
	}

	if got := Filter(tracks, DefaultRequirements); len(got) != 0 {
		t.Errorf("negative followers survived filtering: %v", got)
	}
}

func TestRequirements_SubsetOnly(t *testing.T) {
	// A requirement set that only needs track popularity keeps rows with
	// broken follower counts.
	reqs := Requirements{Metrics: []models.Metric{models.MetricTrackPopularity}}
	tr := models.Track{TrackPopularity: 10, ArtistFollowers: math.NaN()}

	if !reqs.Valid(&tr) {
		t.Error("Valid = false, want true for subset requirements")
	}
}
