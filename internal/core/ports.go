package core

import (
	"context"
)

// ReferenceData provides the immutable keyword/source/known-actor tables.
// Implementations load lazily and must collapse concurrent first loads into
// a single in-flight load. A missing source or actor is (nil, false, nil),
// never an error.
type ReferenceData interface {
	// Keywords returns the validated keyword table.
	Keywords(ctx context.Context) ([]KeywordEntry, error)

	// LookupSource resolves a host to a source entry, trying the exact
	// host and then the host with a leading "www." stripped.
	LookupSource(ctx context.Context, host string) (*SourceEntry, bool, error)

	// LookupKnownActor resolves platform:identifier, falling back to the
	// "all" wildcard platform.
	LookupKnownActor(ctx context.Context, platform, identifier string) (*KnownActorEntry, bool, error)
}

// ContentCache memoizes classification results by content key.
type ContentCache interface {
	// GetResult retrieves a fresh entry or reports not-found.
	GetResult(ctx context.Context, key string) (*CacheEntry, error)

	// SetResult upserts an entry; last write wins.
	SetResult(ctx context.Context, entry *CacheEntry) error

	// DeleteResult removes an entry.
	DeleteResult(ctx context.Context, key string) error
}

// AuthorCache memoizes author classifications by platform:identifier key.
type AuthorCache interface {
	// GetAuthor retrieves a fresh entry or reports not-found.
	GetAuthor(ctx context.Context, key string) (*AuthorCacheEntry, error)

	// SetAuthor upserts an entry; last write wins.
	SetAuthor(ctx context.Context, entry *AuthorCacheEntry) error

	// DeleteAuthor removes an entry.
	DeleteAuthor(ctx context.Context, key string) error
}

// ResultCache is the combined cache surface a backend adapter implements.
type ResultCache interface {
	ContentCache
	AuthorCache

	// Cleanup removes expired entries.
	Cleanup(ctx context.Context) error
}

// EnhancedAnalyzer is the port for the optional remote analysis
// collaborator (fact checking, model-based classification). The engine
// ships no adapter for it; a nil analyzer means the capability is absent.
type EnhancedAnalyzer interface {
	// Enhance refines a heuristic result. Failures must be treated as
	// "no data" by callers, never surfaced into scoring.
	Enhance(ctx context.Context, text string, base *ClassificationResult) (*ClassificationResult, error)
}
