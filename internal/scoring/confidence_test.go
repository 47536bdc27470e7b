package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateConfidenceFloor(t *testing.T) {
	assert.InDelta(t, 0.1, EstimateConfidence(0, false, 0), 1e-9)
}

func TestEstimateConfidenceMatchContributionCapped(t *testing.T) {
	assert.InDelta(t, 0.5, EstimateConfidence(20, false, 0), 1e-9)
	assert.InDelta(t, 0.5, EstimateConfidence(500, false, 0), 1e-9)
}

func TestEstimateConfidenceSourceContribution(t *testing.T) {
	assert.InDelta(t, 0.4, EstimateConfidence(0, true, 0), 1e-9)
}

func TestEstimateConfidenceLengthSaturation(t *testing.T) {
	assert.InDelta(t, 0.3, EstimateConfidence(0, false, 5000), 1e-9)
	assert.InDelta(t, 0.3, EstimateConfidence(0, false, 50000), 1e-9)
}

func TestEstimateConfidenceCappedAtOne(t *testing.T) {
	assert.InDelta(t, 1.0, EstimateConfidence(100, true, 100000), 1e-9)
}

func TestEstimateConfidenceMonotonic(t *testing.T) {
	base := EstimateConfidence(2, false, 500)
	assert.GreaterOrEqual(t, EstimateConfidence(3, false, 500), base)
	assert.GreaterOrEqual(t, EstimateConfidence(2, true, 500), base)
	assert.GreaterOrEqual(t, EstimateConfidence(2, false, 1000), base)
}

func TestEstimateConfidenceBounded(t *testing.T) {
	for _, matches := range []int{0, 1, 10, 1000} {
		for _, known := range []bool{false, true} {
			for _, length := range []int{0, 100, 5000, 1 << 20} {
				c := EstimateConfidence(matches, known, length)
				assert.GreaterOrEqual(t, c, 0.0)
				assert.LessOrEqual(t, c, 1.0)
			}
		}
	}
}
