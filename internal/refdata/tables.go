// Package refdata owns the immutable reference tables: the keyword table,
// the source reputation table, and the known-actor registry. Tables load
// lazily, once per process, from configured JSON files or the embedded
// defaults.
package refdata

import (
	"strings"

	"github.com/pagelens/bias-filter/internal/core"
)

// SourceTable indexes source entries by domain.
type SourceTable map[string]*core.SourceEntry

// Lookup resolves a host, trying the exact host and then the host with a
// leading "www." stripped.
func (t SourceTable) Lookup(host string) (*core.SourceEntry, bool) {
	host = strings.ToLower(host)
	if e, ok := t[host]; ok {
		return e, true
	}
	if stripped := strings.TrimPrefix(host, "www."); stripped != host {
		if e, ok := t[stripped]; ok {
			return e, true
		}
	}
	return nil, false
}

// KnownActorTable indexes actor records by platform:identifier, with
// "all:identifier" wildcard entries.
type KnownActorTable map[string]*core.KnownActorEntry

// Lookup resolves platform:identifier, falling back to the wildcard
// platform.
func (t KnownActorTable) Lookup(platform, identifier string) (*core.KnownActorEntry, bool) {
	platform = strings.ToLower(platform)
	if e, ok := t[platform+":"+identifier]; ok {
		return e, true
	}
	if e, ok := t["all:"+identifier]; ok {
		return e, true
	}
	return nil, false
}

// Tables bundles the three reference tables loaded together.
type Tables struct {
	Keywords    []core.KeywordEntry
	Sources     SourceTable
	KnownActors KnownActorTable
}
