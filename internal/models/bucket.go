package models

// PopularityBucket classifies a 0-100 popularity score into a display tier.
type PopularityBucket int

const (
	// BucketLow covers scores in [0, 34).
	BucketLow PopularityBucket = iota
	// BucketMedium covers scores in [34, 67).
	BucketMedium
	// BucketHigh covers scores in [67, 100].
	BucketHigh
)

// Bucket thresholds. A score equal to a threshold belongs to the tier above.
const (
	bucketMediumFloor = 34
	bucketHighFloor   = 67
)

// BucketFor classifies a popularity score into its tier.
func BucketFor(score float64) PopularityBucket {
	if score < bucketMediumFloor {
		return BucketLow
	}
	if score < bucketHighFloor {
		return BucketMedium
	}
	return BucketHigh
}

// AllBuckets lists the buckets in ascending order.
var AllBuckets = []PopularityBucket{BucketLow, BucketMedium, BucketHigh}

// String returns the display label of the bucket.
func (b PopularityBucket) String() string {
	switch b {
	case BucketLow:
		return "Low"
	case BucketMedium:
		return "Medium"
	case BucketHigh:
		return "High"
	default:
		return "Unknown"
	}
}
