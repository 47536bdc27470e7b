package di

import (
	"flag"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/pagelens/bias-filter/internal/config"
	"github.com/pagelens/bias-filter/internal/core"
	"github.com/pagelens/bias-filter/internal/engine"
	"github.com/pagelens/bias-filter/internal/factory"
	"github.com/pagelens/bias-filter/internal/logging"
	"github.com/pagelens/bias-filter/internal/prefs"
	"github.com/pagelens/bias-filter/internal/refdata"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Input flags
	InputFile string
	URL       string

	// Author flags
	AuthorPlatform string
	AuthorID       string
	AccountAgeDays int
	Verified       bool
	Followers      int

	// Preference flags
	DisplayMode     string
	EconomicMin     int
	EconomicMax     int
	SocialMin       int
	SocialMax       int
	AuthorityMin    int
	AuthorityMax    int
	GlobalismMin    int
	GlobalismMax    int
	MinTruthScore   int
	MinAuthenticity int
	MaxCoordination int
	BlockedIntents  string

	// Reference data flags
	KeywordsPath    string
	SourcesPath     string
	KnownActorsPath string

	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.StringVar(&flags.InputFile, "file", "", "Input text file (use stdin if not specified)")
	flag.StringVar(&flags.URL, "url", "", "URL the text was extracted from")

	flag.StringVar(&flags.AuthorPlatform, "author-platform", "", "Platform of the content author")
	flag.StringVar(&flags.AuthorID, "author-id", "", "Identifier of the content author")
	flag.IntVar(&flags.AccountAgeDays, "account-age", 0, "Author account age in days (0 = unknown)")
	flag.BoolVar(&flags.Verified, "verified", false, "Author account is verified")
	flag.IntVar(&flags.Followers, "followers", 0, "Author follower count (0 = unknown)")

	flag.StringVar(&flags.DisplayMode, "display-mode", "badge", "Display mode (off, badge, overlay, block)")
	flag.IntVar(&flags.EconomicMin, "economic-min", -100, "Minimum acceptable economic score")
	flag.IntVar(&flags.EconomicMax, "economic-max", 100, "Maximum acceptable economic score")
	flag.IntVar(&flags.SocialMin, "social-min", -100, "Minimum acceptable social score")
	flag.IntVar(&flags.SocialMax, "social-max", 100, "Maximum acceptable social score")
	flag.IntVar(&flags.AuthorityMin, "authority-min", -100, "Minimum acceptable authority score")
	flag.IntVar(&flags.AuthorityMax, "authority-max", 100, "Maximum acceptable authority score")
	flag.IntVar(&flags.GlobalismMin, "globalism-min", -100, "Minimum acceptable globalism score")
	flag.IntVar(&flags.GlobalismMax, "globalism-max", 100, "Maximum acceptable globalism score")
	flag.IntVar(&flags.MinTruthScore, "min-truth", 0, "Minimum acceptable truth score")
	flag.IntVar(&flags.MinAuthenticity, "min-authenticity", 0, "Minimum acceptable author authenticity")
	flag.IntVar(&flags.MaxCoordination, "max-coordination", 100, "Maximum acceptable author coordination")
	flag.StringVar(&flags.BlockedIntents, "blocked-intents", "", "Comma-separated blocked intent categories")

	flag.StringVar(&flags.KeywordsPath, "keywords", "", "Path to keyword table JSON (embedded defaults if empty)")
	flag.StringVar(&flags.SourcesPath, "sources", "", "Path to source table JSON (embedded defaults if empty)")
	flag.StringVar(&flags.KnownActorsPath, "known-actors", "", "Path to known-actor table JSON (embedded defaults if empty)")

	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the CLI application. The CLI analyzes a single page, so it runs
// without a cache.
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register reference data
	if err := container.Provide(factory.NewRefDataFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.RefDataFactory) *refdata.Loader {
		return f.CreateLoader()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(l *refdata.Loader) core.ReferenceData {
		return l
	}); err != nil {
		return nil, err
	}

	// Register scoring pipeline
	if err := container.Provide(func() core.Pipeline {
		return engine.New()
	}); err != nil {
		return nil, err
	}

	// Register global preferences
	if err := container.Provide(func(cfg *config.Config) core.UserPreferences {
		return prefs.FromConfig(cfg)
	}); err != nil {
		return nil, err
	}

	// Register analysis service with no cache
	if err := container.Provide(func(
		pipeline core.Pipeline,
		ref core.ReferenceData,
		logger *zap.Logger,
	) *core.AnalysisService {
		return core.NewAnalysisService(
			pipeline,
			ref,
			nil,   // No cache for CLI
			nil,   // No enhanced analyzer
			logger,
			false, // Cache disabled
		)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("refdata.keywords_path", flags.KeywordsPath)
	v.Set("refdata.sources_path", flags.SourcesPath)
	v.Set("refdata.known_actors_path", flags.KnownActorsPath)

	v.Set("prefs.display_mode", flags.DisplayMode)
	v.Set("prefs.economic_min", flags.EconomicMin)
	v.Set("prefs.economic_max", flags.EconomicMax)
	v.Set("prefs.social_min", flags.SocialMin)
	v.Set("prefs.social_max", flags.SocialMax)
	v.Set("prefs.authority_min", flags.AuthorityMin)
	v.Set("prefs.authority_max", flags.AuthorityMax)
	v.Set("prefs.globalism_min", flags.GlobalismMin)
	v.Set("prefs.globalism_max", flags.GlobalismMax)
	v.Set("prefs.min_truth_score", flags.MinTruthScore)
	v.Set("prefs.min_authenticity", flags.MinAuthenticity)
	v.Set("prefs.max_coordination", flags.MaxCoordination)
	if flags.BlockedIntents != "" {
		v.Set("prefs.blocked_intents", splitAndTrim(flags.BlockedIntents))
	}

	v.Set("cache.enabled", false)

	return config.NewFromViper(v)
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
