package app

import (
	"github.com/oakbery/spotscope-tui/internal/aggregate"
	"github.com/oakbery/spotscope-tui/internal/dataset"
	"github.com/oakbery/spotscope-tui/internal/domain"
	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/pipeline"
	"github.com/oakbery/spotscope-tui/internal/stats"
)

// Snapshot is one fully aggregated view of the dataset. It is rebuilt from
// scratch whenever the record snapshot changes and is never mutated after
// construction, so tabs can read it without locking.
type Snapshot struct {
	Valid       []models.Track
	TopArtists  []models.GroupSummary
	TopGenres   []models.GroupSummary
	TopTracks   []models.GroupSummary
	Flows       []aggregate.FlowLink
	Domains     domain.Bundle
	Correlation float64
	AvgDuration float64
}

// BuildSnapshot is the pipeline compute step: filter, group along every
// axis, rank, and derive the scales the charts share. The size argument
// only gates the pipeline; the aggregation itself is size-independent so a
// resize never changes the data.
func BuildSnapshot(tracks []models.Track, _ pipeline.Size) Snapshot {
	valid := dataset.Filter(tracks, dataset.DefaultRequirements)

	artists := aggregate.Group(valid, aggregate.ByArtist, models.AllMetrics...)
	genres := aggregate.Group(valid, aggregate.ByGenre, models.AllMetrics...)
	byTrack := aggregate.Group(valid, aggregate.ByTrack, models.AllMetrics...)

	artistPop := make([]float64, len(valid))
	trackPop := make([]float64, len(valid))
	durations := make([]float64, len(valid))
	for i := range valid {
		artistPop[i] = valid[i].ArtistPopularity
		trackPop[i] = valid[i].TrackPopularity
		durations[i] = valid[i].DurationMS
	}

	return Snapshot{
		Valid:       valid,
		TopArtists:  aggregate.Rank(artists, aggregate.RankByCount, aggregate.TopArtists),
		TopGenres:   aggregate.Rank(genres, aggregate.RankByCount, aggregate.TopGenres),
		TopTracks:   aggregate.Rank(byTrack, aggregate.RankByMeanTrackPopularity, aggregate.TopTracks),
		Flows:       aggregate.Flows(valid),
		Domains:     domain.FromTracks(valid, models.AllMetrics...),
		Correlation: stats.Pearson(artistPop, trackPop),
		AvgDuration: stats.Mean(durations),
	}
}
