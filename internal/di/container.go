package di

import (
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

// BuildContainer creates and configures a dependency injection container
// for the cache-backed analysis service.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewRefDataFactory); err != nil {
		return nil, err
	}

	// Register reference data
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

	// Register result cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.ResultCache, error) {
		return f.CreateResultCache()
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
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.UserPreferences {
		p := prefs.FromConfig(cfg)
		logger.Info("Loaded global preferences",
			zap.Bool("enabled", p.Enabled),
			zap.String("display_mode", string(p.DisplayMode)))
		return p
	}); err != nil {
		return nil, err
	}

	// Register analysis service
	if err := container.Provide(func(
		pipeline core.Pipeline,
		ref core.ReferenceData,
		cache core.ResultCache,
		cfg *config.Config,
		logger *zap.Logger,
	) *core.AnalysisService {
		return core.NewAnalysisService(
			pipeline,
			ref,
			cache,
			nil, // no enhanced analyzer; the port's adapter is external
			logger,
			cfg.GetBool("cache.enabled"),
		)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
