package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source tags recorded on results.
const (
	SourceTagKeyword       = "keyword"
	SourceTagKeywordSource = "keyword+source"
	SourceTagCache         = "cache"
)

// EngineVersion is stamped on every result so cached entries can be traced
// back to the scoring revision that produced them.
const EngineVersion = "0.1.0"

// Pipeline is the pure scoring pipeline the service drives. It exists so
// the orchestration layer stays free of scoring arithmetic and tests can
// substitute the pipeline wholesale.
type Pipeline interface {
	// ClassifyContent scores text against the keyword table and an
	// optional source entry.
	ClassifyContent(text string, keywords []KeywordEntry, source *SourceEntry) *ClassificationResult

	// ClassifyAuthor derives the author profile for text attributed to
	// the given author, with an optional known-actor record.
	ClassifyAuthor(author *ExtractedAuthor, text string, actor *KnownActorEntry) *AuthorClassification
}

// AnalysisService orchestrates one page analysis: cache lookup, reference
// data resolution, the scoring pipeline, the author pipeline, and the
// cache upsert. Collaborator failures (reference lookup, cache I/O) are
// degraded to "no data", never surfaced into scoring.
type AnalysisService struct {
	pipeline     Pipeline
	refdata      ReferenceData
	cache        ResultCache
	enhanced     EnhancedAnalyzer
	logger       *zap.Logger
	cacheEnabled bool
	nowFn        func() time.Time
}

// NewAnalysisService creates an analysis service. cache may be nil when
// cacheEnabled is false; enhanced may always be nil.
func NewAnalysisService(
	pipeline Pipeline,
	refdata ReferenceData,
	cache ResultCache,
	enhanced EnhancedAnalyzer,
	logger *zap.Logger,
	cacheEnabled bool,
) *AnalysisService {
	return &AnalysisService{
		pipeline:     pipeline,
		refdata:      refdata,
		cache:        cache,
		enhanced:     enhanced,
		logger:       logger,
		cacheEnabled: cacheEnabled && cache != nil,
		nowFn:        time.Now,
	}
}

// AnalyzePage classifies page content, attaching an author classification
// when the page carries an author.
func (s *AnalysisService) AnalyzePage(ctx context.Context, page *PageContent) (*ClassificationResult, error) {
	key := ContentCacheKey(page.URL)

	if s.cacheEnabled {
		if entry, err := s.cache.GetResult(ctx, key); err == nil {
			s.logger.Debug("Content cache hit", zap.String("url", page.URL))
			cached := *entry.Result
			cached.SourceTag = SourceTagCache
			return &cached, nil
		}
	}

	keywords, err := s.refdata.Keywords(ctx)
	if err != nil {
		// Scoring degrades to zero axis scores rather than failing.
		s.logger.Error("Failed to load keyword table", zap.Error(err))
		keywords = nil
	}

	host := HostOf(page.URL)
	var source *SourceEntry
	if host != "" {
		entry, found, err := s.refdata.LookupSource(ctx, host)
		if err != nil {
			s.logger.Warn("Source lookup failed", zap.String("host", host), zap.Error(err))
		} else if found {
			source = entry
		}
	}

	result := s.pipeline.ClassifyContent(page.Text, keywords, source)
	result.ProcessingID = uuid.NewString()
	result.Engine = EngineVersion
	result.AnalyzedAt = s.nowFn()

	if page.Author != nil {
		result.Author = s.classifyAuthor(ctx, page.Author, page.Text)
	}

	if s.enhanced != nil {
		if refined, err := s.enhanced.Enhance(ctx, page.Text, result); err != nil {
			s.logger.Warn("Enhanced analysis unavailable", zap.Error(err))
		} else if refined != nil {
			result = refined
		}
	}

	if s.cacheEnabled {
		entry := &CacheEntry{
			Key:       key,
			Result:    result,
			Timestamp: s.nowFn(),
			TTL:       ContentTTL(page.URL),
		}
		if err := s.cache.SetResult(ctx, entry); err != nil {
			s.logger.Error("Failed to cache result", zap.Error(err))
		}
	}

	s.logger.Info("Analyzed page",
		zap.String("url", page.URL),
		zap.Int("economic", result.Economic),
		zap.Int("social", result.Social),
		zap.Int("authority", result.Authority),
		zap.Int("globalism", result.Globalism),
		zap.Int("truth_score", result.TruthScore),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("author", result.Author != nil))

	return result, nil
}

// ClassifyAuthor classifies an author for the given text, using the author
// cache when enabled.
func (s *AnalysisService) ClassifyAuthor(ctx context.Context, author *ExtractedAuthor, text string) (*AuthorClassification, error) {
	if author == nil {
		return nil, nil
	}
	return s.classifyAuthor(ctx, author, text), nil
}

func (s *AnalysisService) classifyAuthor(ctx context.Context, author *ExtractedAuthor, text string) *AuthorClassification {
	key := AuthorCacheKey(author.Platform, author.Identifier)

	if s.cacheEnabled {
		if entry, err := s.cache.GetAuthor(ctx, key); err == nil {
			s.logger.Debug("Author cache hit", zap.String("author", key))
			return entry.Classification
		}
	}

	var actor *KnownActorEntry
	entry, found, err := s.refdata.LookupKnownActor(ctx, author.Platform, author.Identifier)
	if err != nil {
		s.logger.Warn("Known-actor lookup failed", zap.String("author", key), zap.Error(err))
	} else if found {
		actor = entry
	}

	classification := s.pipeline.ClassifyAuthor(author, text, actor)

	if s.cacheEnabled {
		cacheEntry := &AuthorCacheEntry{
			Key:            key,
			Classification: classification,
			Timestamp:      s.nowFn(),
			TTL:            AuthorTTL(classification.DataQuality, author.Platform),
		}
		if err := s.cache.SetAuthor(ctx, cacheEntry); err != nil {
			s.logger.Error("Failed to cache author classification", zap.Error(err))
		}
	}

	return classification
}
