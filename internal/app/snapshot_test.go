package app

import (
	"math"
	"testing"

	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/pipeline"
)

func validTrack(name, artist string, pop, followers float64, genres ...string) models.Track {
	return models.Track{
		TrackName:        name,
		ArtistName:       artist,
		TrackPopularity:  pop,
		ArtistPopularity: pop,
		ArtistFollowers:  followers,
		DurationMS:       210000,
		Genres:           genres,
	}
}

func TestBuildSnapshot(t *testing.T) {
	tracks := []models.Track{
		validTrack("s1", "A", 80, 1000, "pop"),
		validTrack("s2", "A", 60, 1000, "pop", "rock"),
		validTrack("s3", "B", 40, 500, "rock"),
	}

	snap := BuildSnapshot(tracks, pipeline.Size{Width: 80, Height: 24})

	if len(snap.Valid) != 3 {
		t.Fatalf("Valid = %d tracks, want 3", len(snap.Valid))
	}

	if len(snap.TopArtists) != 2 {
		t.Fatalf("TopArtists = %d, want 2", len(snap.TopArtists))
	}
	if snap.TopArtists[0].Key != "A" || snap.TopArtists[0].Count != 2 {
		t.Errorf("top artist = %s/%d, want A/2", snap.TopArtists[0].Key, snap.TopArtists[0].Count)
	}

	// "pop" and "rock" both appear twice; first-seen order breaks the tie.
	if len(snap.TopGenres) != 2 {
		t.Fatalf("TopGenres = %d, want 2", len(snap.TopGenres))
	}
	if snap.TopGenres[0].Key != "pop" {
		t.Errorf("top genre = %s, want pop", snap.TopGenres[0].Key)
	}

	if len(snap.TopTracks) != 3 {
		t.Fatalf("TopTracks = %d, want 3", len(snap.TopTracks))
	}
	if snap.TopTracks[0].Key != "s1 / A" {
		t.Errorf("top track = %s, want s1 / A", snap.TopTracks[0].Key)
	}

	if len(snap.Flows) == 0 {
		t.Error("Flows should not be empty")
	}

	if snap.AvgDuration != 210000 {
		t.Errorf("AvgDuration = %v, want 210000", snap.AvgDuration)
	}

	if math.IsNaN(snap.Correlation) {
		t.Error("Correlation should be defined for varying inputs")
	}
	if snap.Correlation < -1 || snap.Correlation > 1 {
		t.Errorf("Correlation = %v, out of range", snap.Correlation)
	}
}

func TestBuildSnapshot_CorrelationPairsArtistAndTrackPopularity(t *testing.T) {
	// Followers are constant, so a correlation computed over followers
	// would be the NaN sentinel. Artist popularity tracks track popularity
	// exactly, so the coefficient over the right pair is 1.
	tracks := []models.Track{
		{TrackName: "s1", ArtistName: "A", TrackPopularity: 10, ArtistPopularity: 10, ArtistFollowers: 1000, DurationMS: 200000, Genres: []string{"pop"}},
		{TrackName: "s2", ArtistName: "B", TrackPopularity: 50, ArtistPopularity: 50, ArtistFollowers: 1000, DurationMS: 200000, Genres: []string{"pop"}},
		{TrackName: "s3", ArtistName: "C", TrackPopularity: 90, ArtistPopularity: 90, ArtistFollowers: 1000, DurationMS: 200000, Genres: []string{"pop"}},
	}

	snap := BuildSnapshot(tracks, pipeline.Size{Width: 80, Height: 24})

	if math.IsNaN(snap.Correlation) {
		t.Fatal("Correlation is NaN; it must not depend on follower variance")
	}
	if math.Abs(snap.Correlation-1) > 1e-9 {
		t.Errorf("Correlation = %v, want 1 for identical popularity series", snap.Correlation)
	}
}

func TestBuildSnapshot_Empty(t *testing.T) {
	snap := BuildSnapshot(nil, pipeline.Size{Width: 80, Height: 24})

	if len(snap.TopArtists) != 0 || len(snap.TopGenres) != 0 || len(snap.TopTracks) != 0 {
		t.Error("empty input should produce empty rankings")
	}
	if len(snap.Flows) != 0 {
		t.Error("empty input should produce no flows")
	}
	if !math.IsNaN(snap.Correlation) {
		t.Errorf("Correlation = %v, want NaN for empty input", snap.Correlation)
	}

	// Chart scales still come back usable.
	ext := snap.Domains.Extent(models.MetricTrackPopularity)
	if ext.Min() != 0 || ext.Max() != 1 {
		t.Errorf("fallback extent = [%v, %v], want [0, 1]", ext.Min(), ext.Max())
	}
}

func TestBuildSnapshot_SizeIndependent(t *testing.T) {
	tracks := []models.Track{
		validTrack("s1", "A", 80, 1000, "pop"),
		validTrack("s2", "B", 40, 500, "rock"),
	}

	small := BuildSnapshot(tracks, pipeline.Size{Width: 20, Height: 5})
	large := BuildSnapshot(tracks, pipeline.Size{Width: 200, Height: 60})

	if len(small.TopArtists) != len(large.TopArtists) {
		t.Fatal("snapshot rankings should not depend on size")
	}
	for i := range small.TopArtists {
		if small.TopArtists[i].Key != large.TopArtists[i].Key {
			t.Errorf("ranking diverged at %d: %s vs %s", i, small.TopArtists[i].Key, large.TopArtists[i].Key)
		}
	}
	if small.Correlation != large.Correlation {
		t.Error("correlation should not depend on size")
	}
}

func TestBuildSnapshot_FiltersInvalidRows(t *testing.T) {
	nan := math.NaN()
	tracks := []models.Track{
		validTrack("good", "A", 80, 1000, "pop"),
		{TrackName: "bad", ArtistName: "B", TrackPopularity: nan, ArtistPopularity: 50, ArtistFollowers: 100, DurationMS: 100},
	}

	snap := BuildSnapshot(tracks, pipeline.Size{Width: 80, Height: 24})

	if len(snap.Valid) != 1 {
		t.Fatalf("Valid = %d tracks, want 1", len(snap.Valid))
	}
	if snap.Valid[0].TrackName != "good" {
		t.Errorf("kept track = %s, want good", snap.Valid[0].TrackName)
	}
}
