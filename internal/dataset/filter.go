package dataset

import (
	"github.com/oakbery/spotscope-tui/internal/models"
)

// Requirements names the metrics an aggregation depends on. A record
// survives filtering only when every required metric is finite and every
// positive metric is strictly greater than zero (a zero follower count
// would collapse into a degenerate size encoding).
type Requirements struct {
	Metrics  []models.Metric
	Positive []models.Metric
}

// DefaultRequirements covers every visualization in the dashboard: all
// metrics finite, followers and duration strictly positive.
var DefaultRequirements = Requirements{
	Metrics:  models.AllMetrics,
	Positive: []models.Metric{models.MetricFollowers, models.MetricDurationMS},
}

// Valid reports whether the track satisfies the requirements.
func (r Requirements) Valid(t *models.Track) bool {
	for _, m := range r.Metrics {
		if !t.HasMetric(m) {
			return false
		}
	}
	for _, m := range r.Positive {
		if !t.HasMetric(m) || t.Value(m) <= 0 {
			return false
		}
	}
	return true
}

// Filter drops records that violate the requirements. Invalid records are
// excluded silently, never repaired. Filtering is idempotent.
func Filter(tracks []models.Track, reqs Requirements) []models.Track {
	valid := make([]models.Track, 0, len(tracks))
	for i := range tracks {
		if reqs.Valid(&tracks[i]) {
			valid = append(valid, tracks[i])
		}
	}
	return valid
}
