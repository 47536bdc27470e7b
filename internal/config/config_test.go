package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	assert.Equal(t, "", cfg.GetString("refdata.keywords_path"))
	assert.True(t, cfg.GetBool("prefs.enabled"))
	assert.Equal(t, "badge", cfg.GetString("prefs.display_mode"))
	assert.Equal(t, -100, cfg.GetInt("prefs.economic_min"))
	assert.Equal(t, 100, cfg.GetInt("prefs.economic_max"))
	assert.Equal(t, 0, cfg.GetInt("prefs.min_truth_score"))
	assert.Equal(t, 100, cfg.GetInt("prefs.max_coordination"))
	assert.Empty(t, cfg.GetStringSlice("prefs.blocked_intents"))

	assert.Equal(t, "memory", cfg.GetString("cache.type"))
	assert.True(t, cfg.GetBool("cache.enabled"))

	assert.Equal(t, "info", cfg.GetString("logging.level"))
	assert.Equal(t, "json", cfg.GetString("logging.format"))
}

func TestGetDuration(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	d, err := cfg.GetDuration("cache.cleanup_frequency")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)

	cfg.GetViper().Set("cache.cleanup_frequency", "not-a-duration")
	_, err = cfg.GetDuration("cache.cleanup_frequency")
	assert.Error(t, err)
}

func TestOverrides(t *testing.T) {
	v := NewEmptyViper()
	v.Set("prefs.display_mode", "block")
	v.Set("prefs.min_truth_score", 60)
	cfg := NewFromViper(v)

	assert.Equal(t, "block", cfg.GetString("prefs.display_mode"))
	assert.Equal(t, 60, cfg.GetInt("prefs.min_truth_score"))
}
