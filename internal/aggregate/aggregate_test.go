package aggregate

import (
	"math"
	"reflect"
	"testing"

	"github.com/oakbery/spotscope-tui/internal/models"
)

func trackFor(artist string, trackPop float64) models.Track {
	return models.Track{
		TrackName:       "t",
		ArtistName:      artist,
		TrackPopularity: trackPop,
	}
}

func TestGroup_ByArtist(t *testing.T) {
	tracks := []models.Track{
		trackFor("A", 10),
		trackFor("A", 20),
		trackFor("A", 30),
		trackFor("B", 90),
	}

	groups := Group(tracks, ByArtist, models.MetricTrackPopularity)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != "A" || groups[0].Count != 3 {
		t.Errorf("group[0] = {%s, %d}, want {A, 3}", groups[0].Key, groups[0].Count)
	}
	if got := groups[0].Mean(models.MetricTrackPopularity); got != 20 {
		t.Errorf("mean(A) = %v, want 20", got)
	}
	if got := groups[0].Min(models.MetricTrackPopularity); got != 10 {
		t.Errorf("min(A) = %v, want 10", got)
	}
	if got := groups[0].Max(models.MetricTrackPopularity); got != 30 {
		t.Errorf("max(A) = %v, want 30", got)
	}
	if groups[1].Key != "B" || groups[1].Count != 1 {
		t.Errorf("group[1] = {%s, %d}, want {B, 1}", groups[1].Key, groups[1].Count)
	}
}

func TestGroup_MultiValuedKeys(t *testing.T) {
	tracks := []models.Track{
		{ArtistName: "A", Genres: []string{"pop", "rock"}, TrackPopularity: 50},
		{ArtistName: "B", Genres: []string{"pop"}, TrackPopularity: 70},
	}

	groups := Group(tracks, ByGenre, models.MetricTrackPopularity)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != "pop" || groups[0].Count != 2 {
		t.Errorf("group[0] = {%s, %d}, want {pop, 2}", groups[0].Key, groups[0].Count)
	}
	if groups[1].Key != "rock" || groups[1].Count != 1 {
		t.Errorf("group[1] = {%s, %d}, want {rock, 1}", groups[1].Key, groups[1].Count)
	}

	// Membership is not exclusive: group counts can exceed the record count.
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	if total < len(tracks) {
		t.Errorf("sum of group counts = %d, want >= %d", total, len(tracks))
	}
}

func TestGroup_EmptyKeyDropped(t *testing.T) {
	tracks := []models.Track{
		{ArtistName: "", TrackPopularity: 10},
		{ArtistName: "A", TrackPopularity: 20},
	}

	groups := Group(tracks, ByArtist, models.MetricTrackPopularity)
	if len(groups) != 1 || groups[0].Key != "A" {
		t.Errorf("groups = %+v, want single group A", groups)
	}
}

func TestGroup_NoRecords(t *testing.T) {
	groups := Group(nil, ByArtist, models.MetricTrackPopularity)
	if len(groups) != 0 {
		t.Errorf("got %d groups for empty input, want 0", len(groups))
	}
}

func TestByTrack(t *testing.T) {
	tr := models.Track{TrackName: "Song", ArtistName: "A"}
	if got := ByTrack(&tr); !reflect.DeepEqual(got, []string{"Song / A"}) {
		t.Errorf("ByTrack = %v, want [Song / A]", got)
	}

	unnamed := models.Track{ArtistName: "A"}
	if got := ByTrack(&unnamed); got != nil {
		t.Errorf("ByTrack(no name) = %v, want nil", got)
	}
}

func TestRank_CountDescendingWithLimit(t *testing.T) {
	tracks := []models.Track{
		trackFor("A", 10),
		trackFor("A", 20),
		trackFor("A", 30),
		trackFor("B", 90),
	}

	groups := Group(tracks, ByArtist, models.MetricTrackPopularity)
	ranked := Rank(groups, RankByCount, 2)

	if len(ranked) != 2 {
		t.Fatalf("got %d ranked groups, want 2", len(ranked))
	}
	if ranked[0].Key != "A" || ranked[0].Count != 3 {
		t.Errorf("ranked[0] = {%s, %d}, want {A, 3}", ranked[0].Key, ranked[0].Count)
	}
	if got := ranked[0].Mean(models.MetricTrackPopularity); got != 20 {
		t.Errorf("ranked[0] mean = %v, want 20", got)
	}
	if ranked[1].Key != "B" || ranked[1].Count != 1 {
		t.Errorf("ranked[1] = {%s, %d}, want {B, 1}", ranked[1].Key, ranked[1].Count)
	}
	if got := ranked[1].Mean(models.MetricTrackPopularity); got != 90 {
		t.Errorf("ranked[1] mean = %v, want 90", got)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	groups := []models.GroupSummary{
		{Key: "x", Count: 2},
		{Key: "y", Count: 2},
		{Key: "z", Count: 2},
	}

	first := Rank(groups, RankByCount, 3)
	second := Rank(groups, RankByCount, 3)

	wantOrder := []string{"x", "y", "z"}
	for i, w := range wantOrder {
		if first[i].Key != w {
			t.Errorf("first[%d] = %s, want %s", i, first[i].Key, w)
		}
		if second[i].Key != first[i].Key {
			t.Errorf("rank not deterministic at %d: %s vs %s", i, second[i].Key, first[i].Key)
		}
	}
}

func TestRank_LimitBeyondPopulation(t *testing.T) {
	groups := []models.GroupSummary{{Key: "a", Count: 1}}
	ranked := Rank(groups, RankByCount, 40)
	if len(ranked) != 1 {
		t.Errorf("got %d groups, want 1", len(ranked))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	groups := []models.GroupSummary{
		{Key: "a", Count: 1},
		{Key: "b", Count: 5},
	}

	Rank(groups, RankByCount, 2)
	if groups[0].Key != "a" || groups[1].Key != "b" {
		t.Errorf("input slice reordered: %+v", groups)
	}
}

func TestRank_ByMeanTrackPopularity(t *testing.T) {
	groups := []models.GroupSummary{
		{Key: "a", Count: 1, Metrics: map[models.Metric]models.MetricStats{
			models.MetricTrackPopularity: {Sum: 10},
		}},
		{Key: "b", Count: 1, Metrics: map[models.Metric]models.MetricStats{
			models.MetricTrackPopularity: {Sum: 90},
		}},
	}

	ranked := Rank(groups, RankByMeanTrackPopularity, 2)
	if ranked[0].Key != "b" {
		t.Errorf("ranked[0] = %s, want b", ranked[0].Key)
	}
}

func TestFlows(t *testing.T) {
	tracks := []models.Track{
		{ArtistPopularity: 10, TrackPopularity: 10}, // Low -> Low
		{ArtistPopularity: 10, TrackPopularity: 50}, // Low -> Medium
		{ArtistPopularity: 10, TrackPopularity: 50}, // Low -> Medium
		{ArtistPopularity: 80, TrackPopularity: 90}, // High -> High
	}

	links := Flows(tracks)

	want := []FlowLink{
		{Source: models.BucketLow, Target: models.BucketLow, Count: 1},
		{Source: models.BucketLow, Target: models.BucketMedium, Count: 2},
		{Source: models.BucketHigh, Target: models.BucketHigh, Count: 1},
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("Flows = %+v, want %+v", links, want)
	}
}

func TestFlows_BoundaryValues(t *testing.T) {
	tracks := []models.Track{
		{ArtistPopularity: 34, TrackPopularity: 67},
	}

	links := Flows(tracks)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	if links[0].Source != models.BucketMedium || links[0].Target != models.BucketHigh {
		t.Errorf("link = %v -> %v, want Medium -> High", links[0].Source, links[0].Target)
	}
}

func TestBucketTotals(t *testing.T) {
	links := []FlowLink{
		{Source: models.BucketLow, Target: models.BucketMedium, Count: 2},
		{Source: models.BucketLow, Target: models.BucketHigh, Count: 3},
	}

	sources, targets := BucketTotals(links)
	if sources[models.BucketLow] != 5 {
		t.Errorf("source total = %d, want 5", sources[models.BucketLow])
	}
	if targets[models.BucketMedium] != 2 || targets[models.BucketHigh] != 3 {
		t.Errorf("target totals = %v, want Medium 2 High 3", targets)
	}
}

func TestGroup_NaNMetricPropagates(t *testing.T) {
	// Filtering happens before aggregation; when it is skipped, a NaN
	// measure poisons the group sum rather than hiding the record.
	tracks := []models.Track{
		{ArtistName: "A", TrackPopularity: math.NaN()},
	}

	groups := Group(tracks, ByArtist, models.MetricTrackPopularity)
	if got := groups[0].Mean(models.MetricTrackPopularity); !math.IsNaN(got) {
		t.Errorf("mean with NaN measure = %v, want NaN", got)
	}
}
