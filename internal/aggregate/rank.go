package aggregate

import (
	"sort"

	"github.com/oakbery/spotscope-tui/internal/models"
)

// RankMetric selects the value a ranking sorts by.
type RankMetric int

const (
	// RankByCount orders groups by record count.
	RankByCount RankMetric = iota
	// RankByMeanTrackPopularity orders groups by mean track popularity.
	RankByMeanTrackPopularity
	// RankByMeanFollowers orders groups by mean follower count.
	RankByMeanFollowers
)

// Display limits, fixed per visualization.
const (
	// TopArtists is the artist bar chart limit.
	TopArtists = 15
	// TopGenres is the genre treemap limit.
	TopGenres = 25
	// TopTracks is the track table limit.
	TopTracks = 40
)

func rankValue(g *models.GroupSummary, metric RankMetric) float64 {
	switch metric {
	case RankByMeanTrackPopularity:
		return g.Mean(models.MetricTrackPopularity)
	case RankByMeanFollowers:
		return g.Mean(models.MetricFollowers)
	default:
		return float64(g.Count)
	}
}

// Rank returns the top limit groups ordered descending by metric. The sort
// is stable: ties keep their input order, so re-rendering identical input
// yields identical ordering. A limit beyond the population returns the whole
// ranked sequence. The input slice is not modified.
func Rank(groups []models.GroupSummary, metric RankMetric, limit int) []models.GroupSummary {
	ranked := make([]models.GroupSummary, len(groups))
	copy(ranked, groups)

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankValue(&ranked[i], metric) > rankValue(&ranked[j], metric)
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
