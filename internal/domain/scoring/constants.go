package scoring

const (
	StatusMet     = "Met"
	StatusPartial = "Partial"
	StatusNotMet  = "Not Met"

	CategoryOnTrack        = "On Track"
	CategoryImprove        = "Improve"
	CategoryNeedsAttention = "Needs Attention"

	RatingExceeds          = "Exceeds Expectations"
	RatingMeets            = "Meets Expectations"
	RatingPartiallyMeets   = "Partially Meets"
	RatingNeedsImprovement = "Needs Improvement"
)

// Banding thresholds. Lower bounds are inclusive everywhere; the aggregator
// and classifier must read these, never inline the numbers.
const (
	MetThreshold     = 100.0
	PartialThreshold = 50.0
	PartialCredit    = 0.5

	CategoryOnTrackThreshold = 85.0
	CategoryImproveThreshold = 70.0

	RatingExceedsThreshold = 90.0
	RatingMeetsThreshold   = 80.0
	RatingPartialThreshold = 70.0
)
