package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagelens/bias-filter/internal/core"
)

func TestMergeNilProfile(t *testing.T) {
	global := core.DefaultPreferences()
	assert.Equal(t, global, Merge(global, nil))
}

func TestMergeUnsetFieldsFallThrough(t *testing.T) {
	global := core.DefaultPreferences()
	global.MinTruthScore = 40
	global.DisplayMode = core.DisplayOverlay

	profile := &SiteProfile{ID: "p1", Overrides: ProfileOverrides{
		MaxCoordination: Some(60),
	}}
	got := Merge(global, profile)

	assert.Equal(t, 40, got.MinTruthScore)
	assert.Equal(t, core.DisplayOverlay, got.DisplayMode)
	assert.Equal(t, 60, got.MaxCoordination)
}

func TestMergeHonorsExplicitZero(t *testing.T) {
	global := core.DefaultPreferences()
	global.MinTruthScore = 40
	global.MinAuthenticity = 30

	profile := &SiteProfile{ID: "p1", Overrides: ProfileOverrides{
		MinTruthScore: Some(0),
		Enabled:       Some(false),
	}}
	got := Merge(global, profile)

	assert.Equal(t, 0, got.MinTruthScore)
	assert.False(t, got.Enabled)
	assert.Equal(t, 30, got.MinAuthenticity)
}

func TestMergeHonorsExplicitEmptyIntentList(t *testing.T) {
	global := core.DefaultPreferences()
	global.BlockedIntents = []core.Intent{core.IntentBot, core.IntentTroll}

	profile := &SiteProfile{ID: "p1", Overrides: ProfileOverrides{
		BlockedIntents: Some([]core.Intent{}),
	}}
	got := Merge(global, profile)

	assert.NotNil(t, got.BlockedIntents)
	assert.Empty(t, got.BlockedIntents)
}

func TestMergeOverridesRanges(t *testing.T) {
	global := core.DefaultPreferences()
	profile := &SiteProfile{ID: "p1", Overrides: ProfileOverrides{
		EconomicRange: Some(core.ScoreRange{Min: -50, Max: 50}),
	}}
	got := Merge(global, profile)

	assert.Equal(t, core.ScoreRange{Min: -50, Max: 50}, got.EconomicRange)
	assert.Equal(t, core.FullRange(), got.SocialRange)
}

func TestSiteProfileMatches(t *testing.T) {
	p := &SiteProfile{Domains: []string{"example.com", "www.news.org"}}

	assert.True(t, p.Matches("example.com"))
	assert.True(t, p.Matches("www.example.com"))
	assert.True(t, p.Matches("sub.example.com"))
	assert.True(t, p.Matches("EXAMPLE.COM"))
	assert.True(t, p.Matches("news.org"))

	assert.False(t, p.Matches("example.org"))
	assert.False(t, p.Matches("badexample.com"))
}

func TestProfileForHost(t *testing.T) {
	profiles := []SiteProfile{
		{ID: "first", Domains: []string{"a.com"}},
		{ID: "second", Domains: []string{"b.com", "a.com"}},
	}

	got := ProfileForHost(profiles, "a.com")
	assert.NotNil(t, got)
	assert.Equal(t, "first", got.ID)

	got = ProfileForHost(profiles, "b.com")
	assert.NotNil(t, got)
	assert.Equal(t, "second", got.ID)

	assert.Nil(t, ProfileForHost(profiles, "c.com"))
}

func TestOption(t *testing.T) {
	none := None[int]()
	assert.False(t, none.IsSet())
	assert.Equal(t, 7, none.Or(7))

	some := Some(0)
	assert.True(t, some.IsSet())
	assert.Equal(t, 0, some.Or(7))

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}
