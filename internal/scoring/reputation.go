package scoring

import (
	"math"

	"github.com/pagelens/bias-filter/internal/core"
)

const (
	// Blend weights for a known source's prior vs. the keyword evidence.
	sourceBlendWeight  = 0.4
	keywordBlendWeight = 0.6
)

// BlendWithSource blends a keyword axis score with a known source's prior
// rating on that axis. With no source the keyword score passes through
// unchanged.
func BlendWithSource(keywordScore int, source *core.SourceEntry, axis core.Axis) int {
	if source == nil {
		return keywordScore
	}
	blended := source.Bias.ForAxis(axis)*sourceBlendWeight + float64(keywordScore)*keywordBlendWeight
	return clamp(int(math.Round(blended)), -100, 100)
}
