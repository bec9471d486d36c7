// Package aggregate turns filtered track records into per-group summaries
// and ranked subsets for the visualization tabs.
package aggregate

import (
	"github.com/oakbery/spotscope-tui/internal/models"
)

// KeyFunc maps one track to zero or more group keys. Multi-valued fields
// (genre lists) return several keys, so one record can contribute to
// multiple groups.
type KeyFunc func(*models.Track) []string

// Group folds records into one GroupSummary per distinct key, tracking
// count, running sum, and extrema for each requested metric. Summaries are
// returned in first-seen key order; groups that no record contributes to are
// never emitted.
func Group(tracks []models.Track, keyFn KeyFunc, metrics ...models.Metric) []models.GroupSummary {
	index := make(map[string]int)
	groups := make([]models.GroupSummary, 0)

	for i := range tracks {
		tr := &tracks[i]
		for _, key := range keyFn(tr) {
			if key == "" {
				continue
			}

			gi, ok := index[key]
			if !ok {
				gi = len(groups)
				index[key] = gi
				groups = append(groups, models.GroupSummary{
					Key:     key,
					Metrics: make(map[models.Metric]models.MetricStats, len(metrics)),
				})
			}

			g := &groups[gi]
			g.Count++
			for _, m := range metrics {
				v := tr.Value(m)
				st, seen := g.Metrics[m]
				if !seen {
					st = models.MetricStats{Sum: v, Min: v, Max: v}
				} else {
					st.Sum += v
					if v < st.Min {
						st.Min = v
					}
					if v > st.Max {
						st.Max = v
					}
				}
				g.Metrics[m] = st
			}
		}
	}

	return groups
}

// ByArtist keys a track by its artist name.
func ByArtist(t *models.Track) []string {
	if t.ArtistName == "" {
		return nil
	}
	return []string{t.ArtistName}
}

// ByGenre keys a track by each of its genres.
func ByGenre(t *models.Track) []string {
	return t.Genres
}

// ByTrack keys a track by its own name, qualified with the artist so
// identically titled tracks by different artists stay distinct.
func ByTrack(t *models.Track) []string {
	if t.TrackName == "" {
		return nil
	}
	if t.ArtistName == "" {
		return []string{t.TrackName}
	}
	return []string{t.TrackName + " / " + t.ArtistName}
}
