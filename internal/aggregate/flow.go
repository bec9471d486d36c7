package aggregate

import (
	"github.com/oakbery/spotscope-tui/internal/models"
)

// FlowLink is one ribbon of the popularity flow diagram: the number of
// tracks whose artist falls in Source and whose own popularity falls in
// Target.
type FlowLink struct {
	Source models.PopularityBucket
	Target models.PopularityBucket
	Count  int
}

// Flows computes the co-occurrence counts between artist-popularity buckets
// and track-popularity buckets. Links are emitted in (source, target)
// bucket order; zero-count pairs are omitted.
func Flows(tracks []models.Track) []FlowLink {
	counts := make(map[[2]models.PopularityBucket]int)
	for i := range tracks {
		src := models.BucketFor(tracks[i].ArtistPopularity)
		dst := models.BucketFor(tracks[i].TrackPopularity)
		counts[[2]models.PopularityBucket{src, dst}]++
	}

	links := make([]FlowLink, 0, len(counts))
	for _, src := range models.AllBuckets {
		for _, dst := range models.AllBuckets {
			if c := counts[[2]models.PopularityBucket{src, dst}]; c > 0 {
				links = append(links, FlowLink{Source: src, Target: dst, Count: c})
			}
		}
	}
	return links
}

// BucketTotals sums link counts per source and per target bucket.
func BucketTotals(links []FlowLink) (sources, targets map[models.PopularityBucket]int) {
	sources = make(map[models.PopularityBucket]int)
	targets = make(map[models.PopularityBucket]int)
	for _, l := range links {
		sources[l.Source] += l.Count
		targets[l.Target] += l.Count
	}
	return sources, targets
}
