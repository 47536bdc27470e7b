// Package author turns content signals, optional known-actor records, and
// author metadata into an authenticity/coordination/intent profile. Every
// applied adjustment is recorded as an AuthorSignal so a classification can
// be audited after the fact.
package author

import (
	"math"

	"github.com/pagelens/bias-filter/internal/core"
)

// Baselines and hand-tuned adjustment constants. Thresholds and magnitudes
// are deliberate tunables, kept as named constants rather than re-derived.
const (
	baseAuthenticity = 60.0
	baseCoordination = 15.0

	repetitionThreshold    = 0.3
	repetitionAuthPenalty  = 25.0
	repetitionBotBoost     = 0.25
	repetitionOrganicDrop  = 0.2
	templateThreshold      = 0.5
	templateAuthPenalty    = 30.0
	templateBotBoost       = 0.3
	emotionalThreshold     = 0.15
	emotionalTrollBoost    = 0.2
	emotionalOrganicDrop   = 0.1
	attackThreshold        = 2.0
	attackTrollBoost       = 0.25
	baitThreshold          = 0.5
	baitTrollBoost         = 0.2
	badFaithThreshold      = 1.0
	badFaithTrollBoost     = 0.15
	promotionalThreshold   = 0.2
	promotionalCommBoost   = 0.3
	affiliateThreshold     = 2.0
	affiliateCommBoost     = 0.25
	whataboutThreshold     = 0.1
	whataboutStateBoost    = 0.1
	whataboutTrollBoost    = 0.1
	whataboutCoordBoost    = 10.0
	voiceThreshold         = 0.7
	voiceAuthBonus         = 15.0
	voiceOrganicBoost      = 0.15
	nuanceThreshold        = 0.5
	nuanceAuthBonus        = 10.0
	nuanceOrganicBoost     = 0.1
	originalThreshold      = 0.8
	originalAuthBonus      = 10.0

	newAccountAgeDays  = 30
	newAccountPenalty  = 10.0
	verifiedAuthBonus  = 15.0
	verifiedOrganicBoost = 0.1

	knownBotAuthTarget    = 10.0
	knownStateCoordTarget = 85.0

	highQualityActorConfidence = 0.8
)

// Intent prior before any evidence is applied.
func basePrior() map[core.Intent]float64 {
	return map[core.Intent]float64{
		core.IntentOrganic:        0.6,
		core.IntentTroll:          0.1,
		core.IntentBot:            0.1,
		core.IntentStateSponsored: 0.05,
		core.IntentCommercial:     0.1,
		core.IntentActivist:       0.05,
	}
}

// Classify scores an author from extracted identity metadata, the content
// signal record, and an optional known-actor record. The actor record, when
// present, overrides the evidence-driven intent distribution: its category
// receives the asserted confidence and the remaining mass is split
// proportionally among the other categories.
func Classify(a *core.ExtractedAuthor, sig core.ContentSignals, actor *core.KnownActorEntry) *core.AuthorClassification {
	s := &scorer{
		authenticity: baseAuthenticity,
		coordination: baseCoordination,
		intents:      basePrior(),
	}

	s.applyContentSignals(sig)
	s.applyMetadata(a)
	s.applyKnownActor(actor)

	breakdown, primary, confidence := s.renormalize()

	return &core.AuthorClassification{
		Authenticity: clampScore(s.authenticity),
		Coordination: clampScore(s.coordination),
		Intent: core.IntentProfile{
			Primary:    primary,
			Confidence: confidence,
			Breakdown:  breakdown,
		},
		Signals:     s.signals,
		DataQuality: dataQuality(a, sig, actor),
		KnownActor:  actor,
	}
}

type scorer struct {
	authenticity float64
	coordination float64
	intents      map[core.Intent]float64
	signals      []core.AuthorSignal
}

func (s *scorer) applyContentSignals(sig core.ContentSignals) {
	if sig.Repetition > repetitionThreshold {
		s.authenticity -= repetitionAuthPenalty
		s.bump(core.IntentBot, repetitionBotBoost)
		s.bump(core.IntentOrganic, -repetitionOrganicDrop)
		s.record("repetitive_content", sig.Repetition, repetitionAuthPenalty, core.DirectionSuspicious)
	}
	if sig.TemplateLikelihood > templateThreshold {
		s.authenticity -= templateAuthPenalty
		s.bump(core.IntentBot, templateBotBoost)
		s.record("template_content", sig.TemplateLikelihood, templateAuthPenalty, core.DirectionSuspicious)
	}
	if sig.EmotionalDensity > emotionalThreshold {
		s.bump(core.IntentTroll, emotionalTrollBoost)
		s.bump(core.IntentOrganic, -emotionalOrganicDrop)
		s.record("emotional_manipulation", sig.EmotionalDensity, emotionalTrollBoost, core.DirectionSuspicious)
	}
	if sig.PersonalAttacks > attackThreshold {
		s.bump(core.IntentTroll, attackTrollBoost)
		s.record("personal_attacks", sig.PersonalAttacks, attackTrollBoost, core.DirectionSuspicious)
	}
	if sig.EngagementBait > baitThreshold {
		s.bump(core.IntentTroll, baitTrollBoost)
		s.record("engagement_bait", sig.EngagementBait, baitTrollBoost, core.DirectionSuspicious)
	}
	if sig.BadFaith > badFaithThreshold {
		s.bump(core.IntentTroll, badFaithTrollBoost)
		s.record("bad_faith", sig.BadFaith, badFaithTrollBoost, core.DirectionSuspicious)
	}
	if sig.Promotional > promotionalThreshold {
		s.bump(core.IntentCommercial, promotionalCommBoost)
		s.record("promotional_content", sig.Promotional, promotionalCommBoost, core.DirectionSuspicious)
	}
	if sig.AffiliateLinks > affiliateThreshold {
		s.bump(core.IntentCommercial, affiliateCommBoost)
		s.record("affiliate_links", sig.AffiliateLinks, affiliateCommBoost, core.DirectionSuspicious)
	}
	if sig.Whataboutism > whataboutThreshold {
		s.bump(core.IntentStateSponsored, whataboutStateBoost)
		s.bump(core.IntentTroll, whataboutTrollBoost)
		s.coordination += whataboutCoordBoost
		s.record("whataboutism", sig.Whataboutism, whataboutCoordBoost, core.DirectionSuspicious)
	}
	if sig.PersonalVoice > voiceThreshold {
		s.authenticity += voiceAuthBonus
		s.bump(core.IntentOrganic, voiceOrganicBoost)
		s.record("personal_voice", sig.PersonalVoice, voiceAuthBonus, core.DirectionAuthentic)
	}
	if sig.Nuance > nuanceThreshold {
		s.authenticity += nuanceAuthBonus
		s.bump(core.IntentOrganic, nuanceOrganicBoost)
		s.record("nuanced_content", sig.Nuance, nuanceAuthBonus, core.DirectionAuthentic)
	}
	if sig.OriginalContent > originalThreshold {
		s.authenticity += originalAuthBonus
		s.record("original_content", sig.OriginalContent, originalAuthBonus, core.DirectionAuthentic)
	}
}

func (s *scorer) applyMetadata(a *core.ExtractedAuthor) {
	if a == nil {
		return
	}
	if a.AccountAgeDays > 0 && a.AccountAgeDays < newAccountAgeDays {
		s.authenticity -= newAccountPenalty
		s.record("new_account", float64(a.AccountAgeDays), newAccountPenalty, core.DirectionSuspicious)
	}
	if a.Verified {
		s.authenticity += verifiedAuthBonus
		s.bump(core.IntentOrganic, verifiedOrganicBoost)
		s.record("verified_account", 1, verifiedAuthBonus, core.DirectionAuthentic)
	}
}

// applyKnownActor overrides the intent distribution with the persisted
// record: its category gets the asserted confidence and every other
// category is scaled so the remaining mass is (1-confidence). Runs after
// all evidence adjustments so a full-confidence record fully determines
// the distribution.
func (s *scorer) applyKnownActor(actor *core.KnownActorEntry) {
	if actor == nil {
		return
	}
	conf := clampUnit(actor.Confidence)

	rest := 0.0
	for intent, p := range s.intents {
		if intent != actor.Category {
			rest += p
		}
	}
	for intent, p := range s.intents {
		if intent == actor.Category {
			continue
		}
		if rest > 0 {
			s.intents[intent] = p / rest * (1 - conf)
		} else {
			s.intents[intent] = 0
		}
	}
	s.intents[actor.Category] = conf

	switch actor.Category {
	case core.IntentBot:
		s.authenticity = s.authenticity*(1-conf) + knownBotAuthTarget*conf
	case core.IntentStateSponsored:
		s.coordination = s.coordination*(1-conf) + knownStateCoordTarget*conf
	}

	s.record("known_actor", conf, 1, core.DirectionSuspicious)
}

// renormalize scales the 6-way distribution to sum to 1 and picks the
// argmax in the fixed intent order.
func (s *scorer) renormalize() (map[core.Intent]float64, core.Intent, float64) {
	total := 0.0
	for _, intent := range core.Intents() {
		if s.intents[intent] < 0 {
			s.intents[intent] = 0
		}
		total += s.intents[intent]
	}

	breakdown := make(map[core.Intent]float64, len(s.intents))
	if total <= 0 {
		// Degenerate: no mass left anywhere. Fall back to organic.
		for _, intent := range core.Intents() {
			breakdown[intent] = 0
		}
		breakdown[core.IntentOrganic] = 1
		return breakdown, core.IntentOrganic, 1
	}

	primary := core.IntentOrganic
	best := -1.0
	for _, intent := range core.Intents() {
		p := s.intents[intent] / total
		breakdown[intent] = p
		if p > best {
			best = p
			primary = intent
		}
	}
	return breakdown, primary, best
}

func (s *scorer) bump(intent core.Intent, delta float64) {
	v := s.intents[intent] + delta
	if v < 0 {
		v = 0
	}
	s.intents[intent] = v
}

func (s *scorer) record(sigType string, value, weight float64, dir core.SignalDirection) {
	s.signals = append(s.signals, core.AuthorSignal{
		Type:      sigType,
		Value:     value,
		Weight:    weight,
		Direction: dir,
	})
}

// dataQuality grades the evidence backing a classification: a confident
// known-actor record is authoritative; otherwise available metadata fields
// and non-zero content signals accumulate points.
func dataQuality(a *core.ExtractedAuthor, sig core.ContentSignals, actor *core.KnownActorEntry) core.DataQuality {
	if actor != nil && actor.Confidence > highQualityActorConfidence {
		return core.QualityHigh
	}

	score := 0
	if a != nil {
		if a.AccountAgeDays > 0 {
			score += 2
		}
		if a.Verified {
			score += 2
		}
		if a.FollowerCount > 0 {
			score++
		}
	}
	nonZero := sig.NonZeroCount()
	if nonZero > 5 {
		nonZero = 5
	}
	score += nonZero

	switch {
	case score >= 6:
		return core.QualityHigh
	case score >= 4:
		return core.QualityMedium
	case score >= 2:
		return core.QualityLow
	default:
		return core.QualityMinimal
	}
}

func clampScore(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
