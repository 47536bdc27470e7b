package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/bias-filter/")
	v.AddConfigPath("$HOME/.bias-filter")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("BIAS_FILTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Reference data defaults; empty paths mean the embedded tables
	v.SetDefault("refdata.keywords_path", "")
	v.SetDefault("refdata.sources_path", "")
	v.SetDefault("refdata.known_actors_path", "")

	// Preference defaults: filter nothing, badge display
	v.SetDefault("prefs.enabled", true)
	v.SetDefault("prefs.display_mode", "badge")
	v.SetDefault("prefs.economic_min", -100)
	v.SetDefault("prefs.economic_max", 100)
	v.SetDefault("prefs.social_min", -100)
	v.SetDefault("prefs.social_max", 100)
	v.SetDefault("prefs.authority_min", -100)
	v.SetDefault("prefs.authority_max", 100)
	v.SetDefault("prefs.globalism_min", -100)
	v.SetDefault("prefs.globalism_max", 100)
	v.SetDefault("prefs.min_truth_score", 0)
	v.SetDefault("prefs.min_authenticity", 0)
	v.SetDefault("prefs.max_coordination", 100)
	v.SetDefault("prefs.blocked_intents", []string{})

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.cleanup_frequency", "1h")
	v.SetDefault("cache.sqlite_path", "/data/bias_filter_cache.db")
	v.SetDefault("cache.mysql_dsn", "user:password@tcp(localhost:3306)/bias_filter?parseTime=true")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
