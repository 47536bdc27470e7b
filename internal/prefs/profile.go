// Package prefs resolves effective user preferences: global preferences
// overlaid with a site profile's explicit overrides.
package prefs

import (
	"strings"

	"github.com/pagelens/bias-filter/internal/core"
)

// ProfileOverrides is a partial UserPreferences. Only fields that are
// explicitly set override the global value; an unset field always falls
// through.
type ProfileOverrides struct {
	Enabled         Option[bool]
	DisplayMode     Option[core.DisplayMode]
	EconomicRange   Option[core.ScoreRange]
	SocialRange     Option[core.ScoreRange]
	AuthorityRange  Option[core.ScoreRange]
	GlobalismRange  Option[core.ScoreRange]
	MinTruthScore   Option[int]
	MinAuthenticity Option[int]
	MaxCoordination Option[int]
	BlockedIntents  Option[[]core.Intent]
}

// SiteProfile is a named, domain-scoped partial override of global
// preferences.
type SiteProfile struct {
	ID        string
	Name      string
	Domains   []string
	Overrides ProfileOverrides
}

// Matches reports whether the profile applies to the given host: exact
// domain match or subdomain of a listed domain, ignoring a leading "www.".
func (p *SiteProfile) Matches(host string) bool {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	for _, d := range p.Domains {
		d = strings.TrimPrefix(strings.ToLower(d), "www.")
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// ProfileForHost returns the first profile whose domain list matches the
// host, or nil.
func ProfileForHost(profiles []SiteProfile, host string) *SiteProfile {
	for i := range profiles {
		if profiles[i].Matches(host) {
			return &profiles[i]
		}
	}
	return nil
}

// Merge overlays a profile's explicit overrides onto the global
// preferences. A nil profile returns the global preferences unchanged. No
// field is ever dropped: every unset override falls back to the global
// value, and explicit zero or empty overrides are honored.
func Merge(global core.UserPreferences, profile *SiteProfile) core.UserPreferences {
	if profile == nil {
		return global
	}
	o := profile.Overrides
	return core.UserPreferences{
		Enabled:         o.Enabled.Or(global.Enabled),
		DisplayMode:     o.DisplayMode.Or(global.DisplayMode),
		EconomicRange:   o.EconomicRange.Or(global.EconomicRange),
		SocialRange:     o.SocialRange.Or(global.SocialRange),
		AuthorityRange:  o.AuthorityRange.Or(global.AuthorityRange),
		GlobalismRange:  o.GlobalismRange.Or(global.GlobalismRange),
		MinTruthScore:   o.MinTruthScore.Or(global.MinTruthScore),
		MinAuthenticity: o.MinAuthenticity.Or(global.MinAuthenticity),
		MaxCoordination: o.MaxCoordination.Or(global.MaxCoordination),
		BlockedIntents:  o.BlockedIntents.Or(global.BlockedIntents),
	}
}
