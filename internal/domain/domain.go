// Package domain derives the numeric domains that parameterize visual
// encodings. Domains are recomputed on every render pass and never cached
// across input snapshots; a stale domain silently mis-scales new data.
package domain

import (
	"math"

	"github.com/oakbery/spotscope-tui/internal/models"
	"github.com/oakbery/spotscope-tui/internal/stats"
)

// Extent is an inclusive [min, max] domain.
type Extent [2]float64

// Min returns the lower bound of the extent.
func (e Extent) Min() float64 { return e[0] }

// Max returns the upper bound of the extent.
func (e Extent) Max() float64 { return e[1] }

// Span returns the width of the extent.
func (e Extent) Span() float64 { return e[1] - e[0] }

// fallbackExtent is used when no finite values are available, so that a
// still-loading dataset never crashes scale construction.
var fallbackExtent = Extent{0, 1}

// FromValues computes the extent of values, skipping non-finite entries.
// An empty or all-invalid input yields the [0, 1] fallback.
func FromValues(values []float64) Extent {
	finite := values[:0:0]
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return fallbackExtent
	}
	lo, hi := stats.MinMax(finite)
	return Extent{lo, hi}
}

// Bundle maps each metric to its derived extent.
type Bundle map[models.Metric]Extent

// FromTracks derives a bundle over raw records for the given metrics.
func FromTracks(tracks []models.Track, metrics ...models.Metric) Bundle {
	b := make(Bundle, len(metrics))
	for _, m := range metrics {
		values := make([]float64, 0, len(tracks))
		for i := range tracks {
			values = append(values, tracks[i].Value(m))
		}
		b[m] = FromValues(values)
	}
	return b
}

// FromSummaries derives a bundle over group means for the given metrics.
// Group counts get their own extent under the nil-safe convention that the
// caller asks for them via CountExtent.
func FromSummaries(groups []models.GroupSummary, metrics ...models.Metric) Bundle {
	b := make(Bundle, len(metrics))
	for _, m := range metrics {
		values := make([]float64, 0, len(groups))
		for i := range groups {
			values = append(values, groups[i].Mean(m))
		}
		b[m] = FromValues(values)
	}
	return b
}

// CountExtent derives the extent of group counts.
func CountExtent(groups []models.GroupSummary) Extent {
	values := make([]float64, 0, len(groups))
	for i := range groups {
		values = append(values, float64(groups[i].Count))
	}
	return FromValues(values)
}

// Extent returns the extent for a metric, or the [0, 1] fallback when the
// bundle does not carry it.
func (b Bundle) Extent(m models.Metric) Extent {
	if e, ok := b[m]; ok {
		return e
	}
	return fallbackExtent
}
