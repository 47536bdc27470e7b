package factory

import (
	"go.uber.org/zap"

	"github.com/pagelens/bias-filter/internal/config"
	"github.com/pagelens/bias-filter/internal/refdata"
)

// RefDataFactory creates the reference-table loader based on configuration
type RefDataFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRefDataFactory creates a new reference-data factory
func NewRefDataFactory(cfg *config.Config, logger *zap.Logger) *RefDataFactory {
	return &RefDataFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLoader creates the lazy table loader. Empty paths select the
// embedded default tables.
func (f *RefDataFactory) CreateLoader() *refdata.Loader {
	paths := refdata.Paths{
		Keywords:    f.cfg.GetString("refdata.keywords_path"),
		Sources:     f.cfg.GetString("refdata.sources_path"),
		KnownActors: f.cfg.GetString("refdata.known_actors_path"),
	}
	return refdata.NewLoader(paths, f.logger)
}
