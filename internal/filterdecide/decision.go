// Package filterdecide applies effective preferences to a classification
// result and returns a single ordered verdict.
package filterdecide

import (
	"github.com/pagelens/bias-filter/internal/core"
)

// Check reason names, in evaluation order. Content-level concerns come
// before author-identity concerns so conflicting criteria resolve the same
// way every time.
const (
	ReasonEconomic     = "economic"
	ReasonSocial       = "social"
	ReasonAuthority    = "authority"
	ReasonGlobalism    = "globalism"
	ReasonTruth        = "truth"
	ReasonAuthenticity = "authenticity"
	ReasonCoordination = "coordination"
	ReasonIntent       = "intent"
)

// Decide evaluates the fixed check ladder against the result and returns
// the terminal action. Side-effect free and deterministic.
func Decide(result *core.ClassificationResult, p core.UserPreferences) core.FilterAction {
	if !p.Enabled || p.DisplayMode == core.DisplayOff {
		return core.FilterAction{Action: core.ActionNone, Result: result}
	}

	failed := failedAction(p.DisplayMode)

	for _, axis := range core.Axes() {
		if !p.AxisRange(axis).Contains(result.AxisScore(axis)) {
			return core.FilterAction{Action: failed, Reason: string(axis), Result: result}
		}
	}

	if result.TruthScore < p.MinTruthScore {
		return core.FilterAction{Action: failed, Reason: ReasonTruth, Result: result}
	}

	if author := result.Author; author != nil {
		if author.Authenticity < p.MinAuthenticity {
			return core.FilterAction{Action: failed, Reason: ReasonAuthenticity, Result: result}
		}
		if author.Coordination > p.MaxCoordination {
			return core.FilterAction{Action: failed, Reason: ReasonCoordination, Result: result}
		}
		for _, blocked := range p.BlockedIntents {
			if author.Intent.Primary == blocked {
				return core.FilterAction{Action: failed, Reason: ReasonIntent, Result: result}
			}
		}
	}

	if p.DisplayMode == core.DisplayBadge {
		return core.FilterAction{Action: core.ActionBadge, Result: result}
	}
	return core.FilterAction{Action: core.ActionNone, Result: result}
}

// failedAction maps the display mode to the action taken when a check
// fails.
func failedAction(mode core.DisplayMode) core.ActionType {
	switch mode {
	case core.DisplayBadge:
		return core.ActionBadge
	case core.DisplayOverlay:
		return core.ActionOverlay
	case core.DisplayBlock:
		return core.ActionBlock
	default:
		return core.ActionNone
	}
}
