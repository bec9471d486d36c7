package models

import "math"

// MetricStats holds the per-metric fold of a group: running sum plus extrema.
type MetricStats struct {
	Sum float64
	Min float64
	Max float64
}

// GroupSummary is the derived entity for one aggregation group. It is
// created fresh on every aggregation pass and never mutated afterwards;
// consumers only read it.
type GroupSummary struct {
	Key     string
	Count   int
	Metrics map[Metric]MetricStats
}

// Mean returns the group mean for a metric, or NaN for an empty group or a
// metric the group does not track.
func (g *GroupSummary) Mean(m Metric) float64 {
	st, ok := g.Metrics[m]
	if !ok || g.Count == 0 {
		return math.NaN()
	}
	return st.Sum / float64(g.Count)
}

// Min returns the group minimum for a metric, or NaN when untracked.
func (g *GroupSummary) Min(m Metric) float64 {
	st, ok := g.Metrics[m]
	if !ok {
		return math.NaN()
	}
	return st.Min
}

// Max returns the group maximum for a metric, or NaN when untracked.
func (g *GroupSummary) Max(m Metric) float64 {
	st, ok := g.Metrics[m]
	if !ok {
		return math.NaN()
	}
	return st.Max
}

// DatasetStats summarizes one loaded dataset for display on the info tab.
type DatasetStats struct {
	RowsLoaded      int
	RowsValid       int
	DistinctArtists int
	DistinctGenres  int
	SourcePath      string
}
