package scoring

import (
	"math"
)

// Confidence-estimator constants.
const (
	confidenceFloor     = 0.1
	matchWeight         = 0.02
	matchContribCap     = 0.4
	sourceContrib       = 0.3
	lengthContribWeight = 0.2
	lengthSaturation    = 5000.0 // bytes of text at which length maxes out
)

// EstimateConfidence derives a 0..1 confidence from total axis matches,
// source presence, and text length. Monotonic in every input and bounded
// by construction.
func EstimateConfidence(totalMatches int, sourceKnown bool, textLength int) float64 {
	c := confidenceFloor + math.Min(matchContribCap, float64(totalMatches)*matchWeight)
	if sourceKnown {
		c += sourceContrib
	}
	c += math.Min(1, float64(textLength)/lengthSaturation) * lengthContribWeight
	return math.Min(1, c)
}
