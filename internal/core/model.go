package core

import (
	"time"
)

// Axis is one of the four independent bias dimensions, each scored
// -100..+100.
type Axis string

const (
	AxisEconomic  Axis = "economic"
	AxisSocial    Axis = "social"
	AxisAuthority Axis = "authority"
	AxisGlobalism Axis = "globalism"
)

// Axes returns the four axes in evaluation order. The filter decision
// engine depends on this order for its precedence ladder.
func Axes() []Axis {
	return []Axis{AxisEconomic, AxisSocial, AxisAuthority, AxisGlobalism}
}

// ValidAxis reports whether a is one of the four known axes.
func ValidAxis(a Axis) bool {
	switch a {
	case AxisEconomic, AxisSocial, AxisAuthority, AxisGlobalism:
		return true
	}
	return false
}

// KeywordEntry is a weighted, directional lexical signal on one axis.
// Entries with Context terms only count when at least one context term
// appears in the text.
type KeywordEntry struct {
	Term      string   `json:"term"`
	Axis      Axis     `json:"axis"`
	Direction int      `json:"direction"` // -1 or +1
	Weight    float64  `json:"weight"`    // 1..10
	Context   []string `json:"context,omitempty"`
}

// BiasRating holds a source's prior rating per axis, each -100..100.
type BiasRating struct {
	Economic  float64 `json:"economic"`
	Social    float64 `json:"social"`
	Authority float64 `json:"authority"`
	Globalism float64 `json:"globalism"`
}

// ForAxis returns the rating on the given axis; 0 for an unknown axis.
func (b BiasRating) ForAxis(a Axis) float64 {
	switch a {
	case AxisEconomic:
		return b.Economic
	case AxisSocial:
		return b.Social
	case AxisAuthority:
		return b.Authority
	case AxisGlobalism:
		return b.Globalism
	}
	return 0
}

// SourceEntry is the pre-computed reputation record for a known domain.
type SourceEntry struct {
	Domain        string     `json:"domain"`
	Name          string     `json:"name"`
	FactualRating float64    `json:"factual_rating"` // 0..100
	Bias          BiasRating `json:"bias_rating"`
	Category      string     `json:"category"`
	Country       string     `json:"country,omitempty"`
}

// ClassificationResult is the immutable outcome of one content analysis.
type ClassificationResult struct {
	Economic     int                   `json:"economic"`
	Social       int                   `json:"social"`
	Authority    int                   `json:"authority"`
	Globalism    int                   `json:"globalism"`
	TruthScore   int                   `json:"truth_score"` // 0..100
	Confidence   float64               `json:"confidence"`  // 0..1
	SourceTag    string                `json:"source_tag"`  // "keyword", "keyword+source", or "cache"
	ProcessingID string                `json:"processing_id"`
	Engine       string                `json:"engine,omitempty"`
	AnalyzedAt   time.Time             `json:"analyzed_at"`
	Author       *AuthorClassification `json:"author,omitempty"`
}

// AxisScore returns the blended score on the given axis; 0 for an unknown
// axis.
func (r *ClassificationResult) AxisScore(a Axis) int {
	switch a {
	case AxisEconomic:
		return r.Economic
	case AxisSocial:
		return r.Social
	case AxisAuthority:
		return r.Authority
	case AxisGlobalism:
		return r.Globalism
	}
	return 0
}

// ContentSignals is the fixed record of per-text behavioral heuristics
// produced by the signal extractor. Ratios are in [0,1]; counts are raw.
type ContentSignals struct {
	Repetition         float64 `json:"repetition"`
	TemplateLikelihood float64 `json:"template_likelihood"`
	EmotionalDensity   float64 `json:"emotional_density"`
	PersonalAttacks    float64 `json:"personal_attacks"` // count
	BadFaith           float64 `json:"bad_faith"`        // count
	EngagementBait     float64 `json:"engagement_bait"`  // per sentence
	Promotional        float64 `json:"promotional"`      // per sentence
	AffiliateLinks     float64 `json:"affiliate_links"`  // count
	Whataboutism       float64 `json:"whataboutism"`     // per sentence
	PersonalVoice      float64 `json:"personal_voice"`
	Nuance             float64 `json:"nuance"`
	OriginalContent    float64 `json:"original_content"`
	WordCount          float64 `json:"word_count"`
	SentenceCount      float64 `json:"sentence_count"`
	UppercaseRatio     float64 `json:"uppercase_ratio"`
}

// NonZeroCount returns how many behavioral signals are non-zero. Size
// metrics (word/sentence counts) are excluded; they say nothing about
// authorial behavior.
func (s ContentSignals) NonZeroCount() int {
	values := []float64{
		s.Repetition, s.TemplateLikelihood, s.EmotionalDensity,
		s.PersonalAttacks, s.BadFaith, s.EngagementBait, s.Promotional,
		s.AffiliateLinks, s.Whataboutism, s.PersonalVoice, s.Nuance,
		s.OriginalContent, s.UppercaseRatio,
	}
	n := 0
	for _, v := range values {
		if v != 0 {
			n++
		}
	}
	return n
}

// Intent is the classified purpose of a content author.
type Intent string

const (
	IntentOrganic        Intent = "organic"
	IntentTroll          Intent = "troll"
	IntentBot            Intent = "bot"
	IntentStateSponsored Intent = "state_sponsored"
	IntentCommercial     Intent = "commercial"
	IntentActivist       Intent = "activist"
)

// Intents returns all intent categories in a fixed order so probability
// iteration and argmax tie-breaking are deterministic.
func Intents() []Intent {
	return []Intent{
		IntentOrganic, IntentTroll, IntentBot,
		IntentStateSponsored, IntentCommercial, IntentActivist,
	}
}

// ValidIntent reports whether in is a known intent category.
func ValidIntent(in Intent) bool {
	for _, known := range Intents() {
		if in == known {
			return true
		}
	}
	return false
}

// IntentProfile is the 6-way probability distribution over author intents.
// Breakdown values are non-negative and sum to 1.
type IntentProfile struct {
	Primary    Intent             `json:"primary"`
	Confidence float64            `json:"confidence"`
	Breakdown  map[Intent]float64 `json:"breakdown"`
}

// SignalDirection tags an author signal as evidence for or against
// authenticity.
type SignalDirection string

const (
	DirectionAuthentic  SignalDirection = "authentic"
	DirectionSuspicious SignalDirection = "suspicious"
	DirectionNeutral    SignalDirection = "neutral"
)

// AuthorSignal is one audited evidence item recorded while scoring an
// author.
type AuthorSignal struct {
	Type      string          `json:"type"`
	Value     float64         `json:"value"`
	Weight    float64         `json:"weight"`
	Direction SignalDirection `json:"direction"`
}

// DataQuality grades how much evidence backed an author classification.
type DataQuality string

const (
	QualityHigh    DataQuality = "high"
	QualityMedium  DataQuality = "medium"
	QualityLow     DataQuality = "low"
	QualityMinimal DataQuality = "minimal"
)

// AuthorClassification is the authenticity/coordination/intent profile
// derived for a content author.
type AuthorClassification struct {
	Authenticity int              `json:"authenticity"` // 0..100
	Coordination int              `json:"coordination"` // 0..100
	Intent       IntentProfile    `json:"intent"`
	Signals      []AuthorSignal   `json:"signals"`
	DataQuality  DataQuality      `json:"data_quality"`
	KnownActor   *KnownActorEntry `json:"known_actor,omitempty"`
}

// KnownActorEntry is a persisted identity record with an asserted intent
// category. Lookup key is platform:identifier with an "all" wildcard
// platform fallback.
type KnownActorEntry struct {
	Identifier  string  `json:"identifier"`
	Platform    string  `json:"platform"` // concrete platform or "all"
	Category    Intent  `json:"category"`
	Confidence  float64 `json:"confidence"` // 0..1
	Source      string  `json:"source"`
	AddedDate   string  `json:"added_date"`
	Attribution string  `json:"attribution,omitempty"`
}

// ExtractedAuthor is the author identity handed in by the extraction
// collaborator. Zero-valued metadata fields mean "unknown".
type ExtractedAuthor struct {
	Platform       string `json:"platform"`
	Identifier     string `json:"identifier"`
	DisplayName    string `json:"display_name,omitempty"`
	AccountAgeDays int    `json:"account_age_days,omitempty"`
	Verified       bool   `json:"verified,omitempty"`
	FollowerCount  int    `json:"follower_count,omitempty"`
}

// PageContent is the engine's input: page text plus its URL and, when the
// extraction collaborator found one, the purported author.
type PageContent struct {
	URL    string
	Text   string
	Author *ExtractedAuthor
}

// DisplayMode selects how filter verdicts surface to the user.
type DisplayMode string

const (
	DisplayOff     DisplayMode = "off"
	DisplayBadge   DisplayMode = "badge"
	DisplayOverlay DisplayMode = "overlay"
	DisplayBlock   DisplayMode = "block"
)

// ScoreRange is an inclusive axis-score window.
type ScoreRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within the range.
func (r ScoreRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FullRange covers every possible axis score.
func FullRange() ScoreRange {
	return ScoreRange{Min: -100, Max: 100}
}

// UserPreferences is the global filter configuration.
type UserPreferences struct {
	Enabled         bool        `json:"enabled"`
	DisplayMode     DisplayMode `json:"display_mode"`
	EconomicRange   ScoreRange  `json:"economic_range"`
	SocialRange     ScoreRange  `json:"social_range"`
	AuthorityRange  ScoreRange  `json:"authority_range"`
	GlobalismRange  ScoreRange  `json:"globalism_range"`
	MinTruthScore   int         `json:"min_truth_score"`
	MinAuthenticity int         `json:"min_authenticity"`
	MaxCoordination int         `json:"max_coordination"`
	BlockedIntents  []Intent    `json:"blocked_intents"`
}

// AxisRange returns the configured window for the given axis; the full
// range for an unknown axis.
func (p UserPreferences) AxisRange(a Axis) ScoreRange {
	switch a {
	case AxisEconomic:
		return p.EconomicRange
	case AxisSocial:
		return p.SocialRange
	case AxisAuthority:
		return p.AuthorityRange
	case AxisGlobalism:
		return p.GlobalismRange
	}
	return FullRange()
}

// DefaultPreferences filters nothing: full axis ranges, no thresholds,
// badge display.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Enabled:         true,
		DisplayMode:     DisplayBadge,
		EconomicRange:   FullRange(),
		SocialRange:     FullRange(),
		AuthorityRange:  FullRange(),
		GlobalismRange:  FullRange(),
		MinTruthScore:   0,
		MinAuthenticity: 0,
		MaxCoordination: 100,
		BlockedIntents:  nil,
	}
}

// ActionType is the terminal filter verdict.
type ActionType string

const (
	ActionNone    ActionType = "none"
	ActionBadge   ActionType = "badge"
	ActionOverlay ActionType = "overlay"
	ActionBlock   ActionType = "block"
)

// FilterAction is the decision artifact returned by the filter decision
// engine. Reason names the first failing check, empty when nothing failed.
type FilterAction struct {
	Action ActionType            `json:"action"`
	Reason string                `json:"reason,omitempty"`
	Result *ClassificationResult `json:"result"`
}

// CacheEntry memoizes one classification result. An entry is stale iff
// now - Timestamp >= TTL.
type CacheEntry struct {
	Key       string
	Result    *ClassificationResult
	Timestamp time.Time
	TTL       time.Duration
}

// Expired reports whether the entry is stale at the given instant.
func (e *CacheEntry) Expired(now time.Time) bool {
	return now.Sub(e.Timestamp) >= e.TTL
}

// AuthorCacheEntry memoizes one author classification.
type AuthorCacheEntry struct {
	Key            string
	Classification *AuthorClassification
	Timestamp      time.Time
	TTL            time.Duration
}

// Expired reports whether the entry is stale at the given instant.
func (e *AuthorCacheEntry) Expired(now time.Time) bool {
	return now.Sub(e.Timestamp) >= e.TTL
}
