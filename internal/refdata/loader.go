package refdata

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pagelens/bias-filter/internal/core"
)

//go:embed data/keywords.json data/sources.json data/known_actors.json
var defaultData embed.FS

// Paths points the loader at external table files. Empty fields fall back
// to the embedded defaults.
type Paths struct {
	Keywords    string
	Sources     string
	KnownActors string
}

// Loader lazily loads and caches the reference tables. Concurrent first
// loads collapse into a single in-flight load; afterwards reads are
// lock-free on the happy path.
type Loader struct {
	paths  Paths
	logger *zap.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	tables *Tables
}

// NewLoader creates a loader. Tables are not read until first use.
func NewLoader(paths Paths, logger *zap.Logger) *Loader {
	return &Loader{paths: paths, logger: logger}
}

// Load returns the cached tables, loading them on first call.
func (l *Loader) Load(ctx context.Context) (*Tables, error) {
	l.mu.RLock()
	t := l.tables
	l.mu.RUnlock()
	if t != nil {
		return t, nil
	}

	v, err, _ := l.group.Do("tables", func() (interface{}, error) {
		loaded, err := l.loadAll()
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.tables = loaded
		l.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tables), nil
}

// Keywords implements core.ReferenceData.
func (l *Loader) Keywords(ctx context.Context) ([]core.KeywordEntry, error) {
	t, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return t.Keywords, nil
}

// LookupSource implements core.ReferenceData.
func (l *Loader) LookupSource(ctx context.Context, host string) (*core.SourceEntry, bool, error) {
	t, err := l.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	e, ok := t.Sources.Lookup(host)
	return e, ok, nil
}

// LookupKnownActor implements core.ReferenceData.
func (l *Loader) LookupKnownActor(ctx context.Context, platform, identifier string) (*core.KnownActorEntry, bool, error) {
	t, err := l.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	e, ok := t.KnownActors.Lookup(platform, identifier)
	return e, ok, nil
}

func (l *Loader) loadAll() (*Tables, error) {
	keywords, err := l.loadKeywords()
	if err != nil {
		return nil, err
	}
	sources, err := l.loadSources()
	if err != nil {
		return nil, err
	}
	actors, err := l.loadKnownActors()
	if err != nil {
		return nil, err
	}
	l.logger.Info("Loaded reference tables",
		zap.Int("keywords", len(keywords)),
		zap.Int("sources", len(sources)),
		zap.Int("known_actors", len(actors)))
	return &Tables{Keywords: keywords, Sources: sources, KnownActors: actors}, nil
}

func (l *Loader) readTable(path, embedded string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read reference table %s: %w", path, err)
		}
		return data, nil
	}
	return defaultData.ReadFile(embedded)
}

func (l *Loader) loadKeywords() ([]core.KeywordEntry, error) {
	data, err := l.readTable(l.paths.Keywords, "data/keywords.json")
	if err != nil {
		return nil, err
	}
	var raw []core.KeywordEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse keyword table: %w", err)
	}

	valid := make([]core.KeywordEntry, 0, len(raw))
	skipped := 0
	for _, e := range raw {
		if !validKeyword(e) {
			skipped++
			continue
		}
		e.Term = strings.ToLower(strings.TrimSpace(e.Term))
		for i, c := range e.Context {
			e.Context[i] = strings.ToLower(strings.TrimSpace(c))
		}
		valid = append(valid, e)
	}
	if skipped > 0 {
		l.logger.Warn("Skipped malformed keyword entries", zap.Int("skipped", skipped))
	}
	return valid, nil
}

func (l *Loader) loadSources() (SourceTable, error) {
	data, err := l.readTable(l.paths.Sources, "data/sources.json")
	if err != nil {
		return nil, err
	}
	var raw []core.SourceEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse source table: %w", err)
	}

	table := make(SourceTable, len(raw))
	skipped := 0
	for i := range raw {
		e := raw[i]
		if !validSource(e) {
			skipped++
			continue
		}
		table[strings.ToLower(e.Domain)] = &raw[i]
	}
	if skipped > 0 {
		l.logger.Warn("Skipped malformed source entries", zap.Int("skipped", skipped))
	}
	return table, nil
}

func (l *Loader) loadKnownActors() (KnownActorTable, error) {
	data, err := l.readTable(l.paths.KnownActors, "data/known_actors.json")
	if err != nil {
		return nil, err
	}
	var raw []core.KnownActorEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse known-actor table: %w", err)
	}

	table := make(KnownActorTable, len(raw))
	skipped := 0
	for i := range raw {
		e := raw[i]
		if !validActor(e) {
			skipped++
			continue
		}
		key := strings.ToLower(e.Platform) + ":" + e.Identifier
		table[key] = &raw[i]
	}
	if skipped > 0 {
		l.logger.Warn("Skipped malformed known-actor entries", zap.Int("skipped", skipped))
	}
	return table, nil
}

// Malformed entries are skipped, never fatal: a bad row in a shipped table
// must not take the whole engine down.

func validKeyword(e core.KeywordEntry) bool {
	if strings.TrimSpace(e.Term) == "" {
		return false
	}
	if !core.ValidAxis(e.Axis) {
		return false
	}
	if e.Direction != -1 && e.Direction != 1 {
		return false
	}
	if e.Weight < 1 || e.Weight > 10 {
		return false
	}
	return true
}

func validSource(e core.SourceEntry) bool {
	if strings.TrimSpace(e.Domain) == "" {
		return false
	}
	if e.FactualRating < 0 || e.FactualRating > 100 {
		return false
	}
	return true
}

func validActor(e core.KnownActorEntry) bool {
	if strings.TrimSpace(e.Identifier) == "" || strings.TrimSpace(e.Platform) == "" {
		return false
	}
	if !core.ValidIntent(e.Category) {
		return false
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return false
	}
	return true
}
