// Package models defines data structures and domain types.
package models

import "math"

// Track represents one row of the source dataset after type coercion.
// Numeric fields that failed coercion hold NaN so that validity can be
// checked per metric before aggregation.
type Track struct {
	TrackName        string
	ArtistName       string
	TrackPopularity  float64
	ArtistPopularity float64
	ArtistFollowers  float64
	DurationMS       float64
	Explicit         bool
	Genres           []string
}

// Metric identifies a numeric measure on a Track.
type Metric int

const (
	// MetricTrackPopularity is the 0-100 popularity score of the track.
	MetricTrackPopularity Metric = iota
	// MetricArtistPopularity is the 0-100 popularity score of the artist.
	MetricArtistPopularity
	// MetricFollowers is the artist follower count.
	MetricFollowers
	// MetricDurationMS is the track duration in milliseconds.
	MetricDurationMS
)

// AllMetrics lists every metric in declaration order.
var AllMetrics = []Metric{
	MetricTrackPopularity,
	MetricArtistPopularity,
	MetricFollowers,
	MetricDurationMS,
}

// String returns the string representation of the Metric.
func (m Metric) String() string {
	switch m {
	case MetricTrackPopularity:
		return "Track Popularity"
	case MetricArtistPopularity:
		return "Artist Popularity"
	case MetricFollowers:
		return "Followers"
	case MetricDurationMS:
		return "Duration (ms)"
	default:
		return "Unknown"
	}
}

// Value returns the track's value for the given metric.
// Unknown metrics report NaN so they fail validity checks downstream.
func (t *Track) Value(m Metric) float64 {
	switch m {
	case MetricTrackPopularity:
		return t.TrackPopularity
	case MetricArtistPopularity:
		return t.ArtistPopularity
	case MetricFollowers:
		return t.ArtistFollowers
	case MetricDurationMS:
		return t.DurationMS
	default:
		return math.NaN()
	}
}

// HasMetric reports whether the track carries a finite value for the metric.
func (t *Track) HasMetric(m Metric) bool {
	v := t.Value(m)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
