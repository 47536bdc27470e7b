package signals

import (
	"strings"

	"github.com/pagelens/bias-filter/internal/core"
	"github.com/pagelens/bias-filter/internal/textutil"
)

// Extraction constants. Hand-tuned; see the per-signal notes.
const (
	// Sentences shorter than this are too generic to count as repeats.
	minRepeatSentenceLen = 10

	// Each template marker contributes this much likelihood.
	templateMarkerWeight = 0.5

	// Personal-voice component weights (additive, capped at 1).
	voiceFirstPersonWeight = 0.4
	voiceReflectiveWeight  = 0.3
	voiceQuestionWeight    = 0.3

	// Nuance component weights (additive, capped at 1).
	nuanceHedgingWeight     = 0.3
	nuanceUncertaintyWeight = 0.25
	nuanceBalanceWeight     = 0.25
	nuanceCitationWeight    = 0.2
)

// Extract derives the full ContentSignals record from raw text. Pure and
// deterministic: identical input always yields identical output, and every
// sub-score is computed independently.
func Extract(text string) core.ContentSignals {
	if strings.TrimSpace(text) == "" {
		return core.ContentSignals{}
	}

	normalized := textutil.Normalize(text)
	sentences := textutil.Sentences(normalized)
	words := textutil.Words(normalized)
	sentenceCount := float64(len(sentences))
	wordCount := float64(len(words))

	repetition := repetitionRatio(sentences)

	sig := core.ContentSignals{
		Repetition:         repetition,
		TemplateLikelihood: templateLikelihood(text),
		EmotionalDensity:   emotionalDensity(normalized, wordCount),
		PersonalAttacks:    float64(countMatches(normalized, AttackPatterns)),
		BadFaith:           float64(countMatches(normalized, BadFaithPatterns)),
		EngagementBait:     perSentence(countMatches(normalized, BaitPatterns), sentenceCount),
		Promotional:        perSentence(countMatches(normalized, PromotionalPatterns), sentenceCount),
		AffiliateLinks:     float64(countMatches(text, AffiliatePatterns)),
		Whataboutism:       perSentence(countMatches(normalized, WhataboutPatterns), sentenceCount),
		PersonalVoice:      personalVoice(text, normalized),
		Nuance:             nuance(normalized),
		OriginalContent:    1 - repetition,
		WordCount:          wordCount,
		SentenceCount:      sentenceCount,
		UppercaseRatio:     textutil.UppercaseWordRatio(text),
	}
	return sig
}

// repetitionRatio buckets sentences longer than minRepeatSentenceLen by
// their normalized text and returns the fraction that appear more than
// once.
func repetitionRatio(sentences []string) float64 {
	buckets := make(map[string]int)
	considered := 0
	for _, s := range sentences {
		key := strings.Join(strings.Fields(s), " ")
		if len(key) <= minRepeatSentenceLen {
			continue
		}
		buckets[key]++
		considered++
	}
	if considered == 0 {
		return 0
	}
	repeated := 0
	for _, n := range buckets {
		if n > 1 {
			repeated += n
		}
	}
	ratio := float64(repeated) / float64(considered)
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// templateLikelihood scales the count of placeholder-style markers, capped
// at 1.
func templateLikelihood(text string) float64 {
	count := 0
	for _, re := range TemplatePatterns {
		count += len(re.FindAllStringIndex(text, -1))
	}
	likelihood := float64(count) * templateMarkerWeight
	if likelihood > 1 {
		likelihood = 1
	}
	return likelihood
}

func emotionalDensity(normalized string, wordCount float64) float64 {
	if wordCount == 0 {
		return 0
	}
	return float64(CountEmotionalWords(normalized)) / wordCount
}

// CountEmotionalWords counts occurrences of emotionally charged words in
// normalized text. Shared with the truth estimator.
func CountEmotionalWords(normalized string) int {
	count := 0
	for _, w := range EmotionalWords {
		count += textutil.CountOccurrences(normalized, w)
	}
	return count
}

func perSentence(count int, sentences float64) float64 {
	if sentences == 0 {
		return 0
	}
	return float64(count) / sentences
}

// personalVoice builds an additive score from first-person reflective
// phrasing and genuine (non-rhetorical) questions.
func personalVoice(raw, normalized string) float64 {
	score := 0.0
	if anyMatch(normalized, FirstPersonPatterns) {
		score += voiceFirstPersonWeight
	}
	if strings.Contains(normalized, "in my experience") || strings.Contains(normalized, "i remember") {
		score += voiceReflectiveWeight
	}
	if hasGenuineQuestion(raw, normalized) {
		score += voiceQuestionWeight
	}
	if score > 1 {
		score = 1
	}
	return score
}

// nuance builds an additive score from hedging, uncertainty
// acknowledgment, viewpoint balancing, and citation-style phrasing.
func nuance(normalized string) float64 {
	score := 0.0
	if anyMatch(normalized, HedgingPatterns) {
		score += nuanceHedgingWeight
	}
	if strings.Contains(normalized, "i could be wrong") ||
		strings.Contains(normalized, "i may be wrong") ||
		strings.Contains(normalized, "i don't know") {
		score += nuanceUncertaintyWeight
	}
	if anyMatch(normalized, BalancePatterns) {
		score += nuanceBalanceWeight
	}
	if anyMatch(normalized, CitationPatterns) {
		score += nuanceCitationWeight
	}
	if score > 1 {
		score = 1
	}
	return score
}

// hasGenuineQuestion reports whether the text asks at least one question
// that is not rhetorical bait.
func hasGenuineQuestion(raw, normalized string) bool {
	if !strings.Contains(raw, "?") {
		return false
	}
	for _, q := range questionSpans(normalized) {
		if !anyMatch(q, RhetoricalQuestionPatterns) {
			return true
		}
	}
	return false
}

// questionSpans returns the sentence-like spans that end in a question
// mark.
func questionSpans(text string) []string {
	var spans []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '?':
			span := strings.TrimSpace(text[start:i])
			if span != "" {
				spans = append(spans, span)
			}
			start = i + 1
		case '.', '!':
			start = i + 1
		}
	}
	return spans
}

// Truth-estimator helpers. These share the pattern tables so the truth
// score and the signal record never disagree about what counts as bait or
// a citation.

// HasClickbait reports a clickbait-phrase match.
func HasClickbait(normalized string) bool { return anyMatch(normalized, ClickbaitPatterns) }

// HasCitation reports citation-style phrasing or an inline link.
func HasCitation(normalized string) bool { return anyMatch(normalized, CitationPatterns) }

// HasStatistic reports numeric/statistic phrasing.
func HasStatistic(text string) bool { return StatisticPattern.MatchString(text) }

// HasLongQuote reports a long quoted span.
func HasLongQuote(text string) bool { return QuotePattern.MatchString(text) }
