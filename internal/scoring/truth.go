package scoring

import (
	"github.com/pagelens/bias-filter/internal/core"
	"github.com/pagelens/bias-filter/internal/signals"
	"github.com/pagelens/bias-filter/internal/textutil"
)

// Truth-estimator constants. Additive adjustments on the source baseline.
const (
	truthBaseline = 50 // neutral when the source is unknown

	capsPenalty      = 5
	clickbaitPenalty = 10
	emotionalPenalty = 5
	citationBonus    = 5
	statisticBonus   = 3
	quoteBonus       = 2

	capsRatioThreshold     = 0.2
	emotionalWordThreshold = 3
)

// EstimateTruth combines a source's factual rating (or the neutral
// baseline) with content-quality adjustments, clamped to 0..100.
func EstimateTruth(text string, source *core.SourceEntry) int {
	score := float64(truthBaseline)
	if source != nil {
		score = source.FactualRating
	}

	normalized := textutil.Normalize(text)

	if textutil.UppercaseWordRatio(text) > capsRatioThreshold {
		score -= capsPenalty
	}
	if signals.HasClickbait(normalized) {
		score -= clickbaitPenalty
	}
	if signals.CountEmotionalWords(normalized) > emotionalWordThreshold {
		score -= emotionalPenalty
	}
	if signals.HasCitation(normalized) {
		score += citationBonus
	}
	if signals.HasStatistic(text) {
		score += statisticBonus
	}
	if signals.HasLongQuote(text) {
		score += quoteBonus
	}

	return clamp(int(score), 0, 100)
}
