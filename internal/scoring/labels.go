package scoring

import (
	"github.com/pagelens/bias-filter/internal/core"
)

// AxisLabels returns the low/high pole names for an axis, for presentation
// collaborators. Unknown axes get a generic pair.
func AxisLabels(axis core.Axis) (low, high string) {
	switch axis {
	case core.AxisEconomic:
		return "left", "right"
	case core.AxisSocial:
		return "progressive", "traditional"
	case core.AxisAuthority:
		return "libertarian", "authoritarian"
	case core.AxisGlobalism:
		return "globalist", "nationalist"
	default:
		return "low", "high"
	}
}
