// Package scoring implements the content-level scoring pipeline: keyword
// axis scoring, source-reputation blending, and the truthfulness and
// confidence estimators. Every function here is pure; reference tables and
// text normalization are the caller's responsibility.
package scoring

import (
	"math"

	"github.com/pagelens/bias-filter/internal/core"
	"github.com/pagelens/bias-filter/internal/textutil"
)

const (
	// occurrenceCap limits how often a single keyword can count, so one
	// repeated term cannot dominate an axis.
	occurrenceCap = 3

	// weightScale calibrates keyword weights (1..10) to the -100..100
	// output range.
	weightScale = 10.0
)

// AxisScore is the outcome of scoring one axis.
type AxisScore struct {
	Score   int // -100..100
	Matches int // keywords that contributed
}

// ScoreAxis scores one axis of normalized lowercase text against the
// keyword table. Entries declaring context terms are skipped unless at
// least one context term appears. The score is the occurrence-weighted
// mean of direction×weight, scaled to -100..100 and clamped.
func ScoreAxis(text string, table []core.KeywordEntry, axis core.Axis) AxisScore {
	var sum, occurrences float64
	matches := 0
	for _, kw := range table {
		if kw.Axis != axis {
			continue
		}
		if len(kw.Context) > 0 && !textutil.ContainsAny(text, kw.Context) {
			continue
		}
		n := textutil.CountOccurrences(text, kw.Term)
		if n == 0 {
			continue
		}
		if n > occurrenceCap {
			n = occurrenceCap
		}
		sum += float64(kw.Direction) * kw.Weight * float64(n)
		occurrences += float64(n)
		matches++
	}
	score := int(math.Round(sum / (math.Max(occurrences, 1) * weightScale) * 100))
	return AxisScore{Score: clamp(score, -100, 100), Matches: matches}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
