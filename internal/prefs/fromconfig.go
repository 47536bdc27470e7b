package prefs

import (
	"github.com/pagelens/bias-filter/internal/config"
	"github.com/pagelens/bias-filter/internal/core"
)

// FromConfig reads the global preferences from configuration. Unknown
// blocked-intent names are dropped; everything else passes through as-is
// since the decision engine treats preferences as authoritative.
func FromConfig(cfg *config.Config) core.UserPreferences {
	p := core.UserPreferences{
		Enabled:     cfg.GetBool("prefs.enabled"),
		DisplayMode: core.DisplayMode(cfg.GetString("prefs.display_mode")),
		EconomicRange: core.ScoreRange{
			Min: cfg.GetInt("prefs.economic_min"),
			Max: cfg.GetInt("prefs.economic_max"),
		},
		SocialRange: core.ScoreRange{
			Min: cfg.GetInt("prefs.social_min"),
			Max: cfg.GetInt("prefs.social_max"),
		},
		AuthorityRange: core.ScoreRange{
			Min: cfg.GetInt("prefs.authority_min"),
			Max: cfg.GetInt("prefs.authority_max"),
		},
		GlobalismRange: core.ScoreRange{
			Min: cfg.GetInt("prefs.globalism_min"),
			Max: cfg.GetInt("prefs.globalism_max"),
		},
		MinTruthScore:   cfg.GetInt("prefs.min_truth_score"),
		MinAuthenticity: cfg.GetInt("prefs.min_authenticity"),
		MaxCoordination: cfg.GetInt("prefs.max_coordination"),
	}
	for _, name := range cfg.GetStringSlice("prefs.blocked_intents") {
		intent := core.Intent(name)
		if core.ValidIntent(intent) {
			p.BlockedIntents = append(p.BlockedIntents, intent)
		}
	}
	return p
}
