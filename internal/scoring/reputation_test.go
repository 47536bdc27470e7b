package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagelens/bias-filter/internal/core"
)

func TestBlendWithSourceNilPassthrough(t *testing.T) {
	assert.Equal(t, 42, BlendWithSource(42, nil, core.AxisEconomic))
	assert.Equal(t, -7, BlendWithSource(-7, nil, core.AxisSocial))
}

func TestBlendWithSourceWeights(t *testing.T) {
	source := &core.SourceEntry{
		Domain: "example.com",
		Bias:   core.BiasRating{Economic: 100},
	}

	// 100*0.4 + 50*0.6 = 70
	assert.Equal(t, 70, BlendWithSource(50, source, core.AxisEconomic))

	// Other axes read their own prior (0 here): 0*0.4 + 50*0.6 = 30
	assert.Equal(t, 30, BlendWithSource(50, source, core.AxisSocial))
}

func TestBlendWithSourceOpposingPriors(t *testing.T) {
	source := &core.SourceEntry{
		Domain: "example.com",
		Bias:   core.BiasRating{Authority: -80},
	}

	// -80*0.4 + 60*0.6 = 4
	assert.Equal(t, 4, BlendWithSource(60, source, core.AxisAuthority))
}

func TestBlendWithSourceBounded(t *testing.T) {
	source := &core.SourceEntry{
		Domain: "example.com",
		Bias:   core.BiasRating{Globalism: 100},
	}
	got := BlendWithSource(100, source, core.AxisGlobalism)
	assert.Equal(t, 100, got)

	source.Bias.Globalism = -100
	got = BlendWithSource(-100, source, core.AxisGlobalism)
	assert.Equal(t, -100, got)
}

func TestAxisLabels(t *testing.T) {
	low, high := AxisLabels(core.AxisEconomic)
	assert.Equal(t, "left", low)
	assert.Equal(t, "right", high)

	low, high = AxisLabels(core.AxisGlobalism)
	assert.Equal(t, "globalist", low)
	assert.Equal(t, "nationalist", high)

	low, high = AxisLabels(core.Axis("unknown"))
	assert.Equal(t, "low", low)
	assert.Equal(t, "high", high)
}
