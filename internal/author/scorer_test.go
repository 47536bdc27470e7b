package author

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelens/bias-filter/internal/core"
	"github.com/pagelens/bias-filter/internal/signals"
)

func breakdownSum(p core.IntentProfile) float64 {
	sum := 0.0
	for _, v := range p.Breakdown {
		sum += v
	}
	return sum
}

func signalTypes(c *core.AuthorClassification) []string {
	types := make([]string, 0, len(c.Signals))
	for _, s := range c.Signals {
		types = append(types, s.Type)
	}
	return types
}

func TestClassifyNoEvidence(t *testing.T) {
	got := Classify(nil, core.ContentSignals{}, nil)

	assert.Equal(t, 60, got.Authenticity)
	assert.Equal(t, 15, got.Coordination)
	assert.Equal(t, core.IntentOrganic, got.Intent.Primary)
	assert.InDelta(t, 1.0, breakdownSum(got.Intent), 1e-6)
	assert.Equal(t, core.QualityMinimal, got.DataQuality)
	assert.Empty(t, got.Signals)
}

func TestClassifyBreakdownAlwaysSumsToOne(t *testing.T) {
	cases := []core.ContentSignals{
		{},
		{Repetition: 0.9, TemplateLikelihood: 0.9, EmotionalDensity: 0.5},
		{PersonalAttacks: 5, EngagementBait: 1, BadFaith: 3, Whataboutism: 0.5},
		{PersonalVoice: 1, Nuance: 1, OriginalContent: 1},
		{Promotional: 0.8, AffiliateLinks: 6},
	}
	for _, sig := range cases {
		got := Classify(nil, sig, nil)
		assert.InDelta(t, 1.0, breakdownSum(got.Intent), 1e-6)
		for intent, p := range got.Intent.Breakdown {
			assert.GreaterOrEqual(t, p, 0.0, "intent %s", intent)
			assert.LessOrEqual(t, p, 1.0, "intent %s", intent)
		}
	}
}

func TestClassifyPrimaryMatchesBreakdownMax(t *testing.T) {
	got := Classify(nil, core.ContentSignals{Promotional: 0.8, AffiliateLinks: 6}, nil)
	for _, p := range got.Intent.Breakdown {
		assert.LessOrEqual(t, p, got.Intent.Confidence+1e-9)
	}
	assert.InDelta(t, got.Intent.Breakdown[got.Intent.Primary], got.Intent.Confidence, 1e-9)
}

func TestClassifyFullConfidenceActorForcesDistribution(t *testing.T) {
	actor := &core.KnownActorEntry{
		Identifier: "some_bot",
		Platform:   "twitter",
		Category:   core.IntentBot,
		Confidence: 1.0,
	}
	got := Classify(nil, core.ContentSignals{PersonalVoice: 1, Nuance: 1}, actor)

	assert.Equal(t, core.IntentBot, got.Intent.Primary)
	assert.InDelta(t, 1.0, got.Intent.Confidence, 1e-9)
	for intent, p := range got.Intent.Breakdown {
		if intent == core.IntentBot {
			assert.InDelta(t, 1.0, p, 1e-9)
		} else {
			assert.InDelta(t, 0.0, p, 1e-9, "intent %s", intent)
		}
	}
	assert.Contains(t, signalTypes(got), "known_actor")
	assert.Equal(t, actor, got.KnownActor)
}

func TestClassifyKnownBotPullsAuthenticityDown(t *testing.T) {
	actor := &core.KnownActorEntry{
		Identifier: "bot_account",
		Platform:   "facebook",
		Category:   core.IntentBot,
		Confidence: 1.0,
	}
	got := Classify(nil, core.ContentSignals{}, actor)
	assert.Equal(t, 10, got.Authenticity)
	assert.Equal(t, core.QualityHigh, got.DataQuality)
}

func TestClassifyKnownStateActorRaisesCoordination(t *testing.T) {
	actor := &core.KnownActorEntry{
		Identifier: "propaganda_desk",
		Platform:   "twitter",
		Category:   core.IntentStateSponsored,
		Confidence: 0.9,
	}
	got := Classify(nil, core.ContentSignals{}, actor)

	// 15*0.1 + 85*0.9 = 78
	assert.Equal(t, 78, got.Coordination)
	assert.Equal(t, core.IntentStateSponsored, got.Intent.Primary)
	assert.InDelta(t, 0.9, got.Intent.Confidence, 1e-9)
	assert.InDelta(t, 1.0, breakdownSum(got.Intent), 1e-6)
}

func TestClassifyRepetitiveAffiliateContent(t *testing.T) {
	text := strings.Repeat("Incredible deal you cannot miss today. ", 4) +
		"Get it via https://bit.ly/deal123?ref=aff1 or https://amzn.to/xyz789?ref=aff2"
	sig := signals.Extract(text)
	require.Greater(t, sig.Repetition, 0.3)
	require.Greater(t, sig.AffiliateLinks, 2.0)

	got := Classify(nil, sig, nil)

	assert.Less(t, got.Authenticity, 40)
	types := signalTypes(got)
	assert.Contains(t, types, "repetitive_content")
	assert.Contains(t, types, "affiliate_links")
}

func TestClassifyVerifiedAccount(t *testing.T) {
	a := &core.ExtractedAuthor{Platform: "twitter", Identifier: "reporter", Verified: true}
	got := Classify(a, core.ContentSignals{}, nil)

	assert.Equal(t, 75, got.Authenticity)
	assert.Contains(t, signalTypes(got), "verified_account")
	assert.Equal(t, core.IntentOrganic, got.Intent.Primary)
}

func TestClassifyNewAccountPenalty(t *testing.T) {
	a := &core.ExtractedAuthor{Platform: "twitter", Identifier: "fresh", AccountAgeDays: 5}
	got := Classify(a, core.ContentSignals{}, nil)

	assert.Equal(t, 50, got.Authenticity)
	assert.Contains(t, signalTypes(got), "new_account")
}

func TestClassifyUnknownAccountAgeIgnored(t *testing.T) {
	a := &core.ExtractedAuthor{Platform: "twitter", Identifier: "mystery", AccountAgeDays: 0}
	got := Classify(a, core.ContentSignals{}, nil)

	assert.Equal(t, 60, got.Authenticity)
	assert.NotContains(t, signalTypes(got), "new_account")
}

func TestClassifyAuthenticityBounded(t *testing.T) {
	suspicious := core.ContentSignals{
		Repetition:         1,
		TemplateLikelihood: 1,
		EmotionalDensity:   1,
		PersonalAttacks:    10,
		BadFaith:           5,
	}
	got := Classify(&core.ExtractedAuthor{AccountAgeDays: 1}, suspicious, nil)
	assert.GreaterOrEqual(t, got.Authenticity, 0)

	genuine := core.ContentSignals{PersonalVoice: 1, Nuance: 1, OriginalContent: 1}
	got = Classify(&core.ExtractedAuthor{Verified: true}, genuine, nil)
	assert.LessOrEqual(t, got.Authenticity, 100)
}

func TestDataQualityLadder(t *testing.T) {
	// Metadata plus several behavioral signals reaches high.
	rich := &core.ExtractedAuthor{AccountAgeDays: 400, Verified: true, FollowerCount: 1200}
	sig := core.ContentSignals{PersonalVoice: 0.8, Nuance: 0.6, OriginalContent: 1}
	got := Classify(rich, sig, nil)
	assert.Equal(t, core.QualityHigh, got.DataQuality)

	// Metadata only: 2+2 points.
	got = Classify(&core.ExtractedAuthor{AccountAgeDays: 400, Verified: true}, core.ContentSignals{}, nil)
	assert.Equal(t, core.QualityMedium, got.DataQuality)

	// A couple of content signals only.
	got = Classify(nil, core.ContentSignals{PersonalVoice: 0.8, OriginalContent: 1}, nil)
	assert.Equal(t, core.QualityLow, got.DataQuality)

	// Nothing at all.
	got = Classify(nil, core.ContentSignals{}, nil)
	assert.Equal(t, core.QualityMinimal, got.DataQuality)
}
