// Package engine wires the pure scoring components into the pipeline shape
// the analysis service drives.
package engine

import (
	"github.com/pagelens/bias-filter/internal/author"
	"github.com/pagelens/bias-filter/internal/core"
	"github.com/pagelens/bias-filter/internal/scoring"
	"github.com/pagelens/bias-filter/internal/signals"
	"github.com/pagelens/bias-filter/internal/textutil"
)

// Engine is the stateless scoring pipeline.
type Engine struct{}

// New creates the pipeline.
func New() *Engine {
	return &Engine{}
}

// ClassifyContent scores all four axes, blends in the source prior when
// one is known, and estimates truthfulness and confidence.
func (e *Engine) ClassifyContent(text string, keywords []core.KeywordEntry, source *core.SourceEntry) *core.ClassificationResult {
	normalized := textutil.Normalize(text)

	result := &core.ClassificationResult{}
	totalMatches := 0
	for _, axis := range core.Axes() {
		axisScore := scoring.ScoreAxis(normalized, keywords, axis)
		totalMatches += axisScore.Matches
		blended := scoring.BlendWithSource(axisScore.Score, source, axis)
		switch axis {
		case core.AxisEconomic:
			result.Economic = blended
		case core.AxisSocial:
			result.Social = blended
		case core.AxisAuthority:
			result.Authority = blended
		case core.AxisGlobalism:
			result.Globalism = blended
		}
	}

	result.TruthScore = scoring.EstimateTruth(text, source)
	result.Confidence = scoring.EstimateConfidence(totalMatches, source != nil, len(text))
	if source != nil {
		result.SourceTag = core.SourceTagKeywordSource
	} else {
		result.SourceTag = core.SourceTagKeyword
	}
	return result
}

// ClassifyAuthor extracts content signals from the text and scores the
// author.
func (e *Engine) ClassifyAuthor(a *core.ExtractedAuthor, text string, actor *core.KnownActorEntry) *core.AuthorClassification {
	sig := signals.Extract(text)
	return author.Classify(a, sig, actor)
}
