package core

import (
	"strings"

	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/types"
)

// Resolver materializes records by walking their inheritance graph.
//
// Resolution is depth-first post-order: each listed parent is resolved
// before the next, later parents overwrite earlier ones key-by-key, and
// the record's own direct fields are applied last. A single visited set
// is threaded through one top-level call, so a shared ancestor
// contributes exactly once and a value a parent merely inherits never
// overrides a sibling parent's direct value. A record recurring on the
// active descent path is a true cycle: that branch is abandoned with a
// warning instead of recursing forever.
type Resolver struct {
	store *types.Store
}

// NewResolver creates a resolver over an immutable store. Resolvers keep
// no state between calls; every Resolve starts with a fresh visited set.
func NewResolver(store *types.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the fully merged key/value set for a record. Unknown
// records resolve to an empty profile.
func (r *Resolver) Resolve(recordType types.RecordType, name string) types.ResolvedProfile {
	sourced := r.ResolveWithSource(recordType, name)
	return sourced.Values()
}

// ResolveWithSource resolves a record while tracking, per key, the full
// name of the record that directly defined the winning value.
func (r *Resolver) ResolveWithSource(recordType types.RecordType, name string) types.SourcedProfile {
	record, ok := r.store.Lookup(recordType, name)
	if !ok {
		return types.SourcedProfile{}
	}
	visited := map[string]struct{}{}
	path := map[string]struct{}{}
	return r.resolve(record, visited, path)
}

func (r *Resolver) resolve(record *types.Record, visited map[string]struct{}, path map[string]struct{}) types.SourcedProfile {
	full := record.FullName()
	if _, active := path[full]; active {
		log.Warn().Str("record", full).Msg("circular inheritance detected, branch abandoned")
		return nil
	}
	if _, seen := visited[full]; seen {
		// Already merged through an earlier parent branch.
		return nil
	}
	visited[full] = struct{}{}
	path[full] = struct{}{}
	defer delete(path, full)

	merged := types.SourcedProfile{}
	for _, parentName := range r.expandParents(record) {
		parent, ok := r.store.Lookup(record.Type, parentName)
		if !ok {
			// Parent may legitimately not exist across bundle versions.
			continue
		}
		for key, sourced := range r.resolve(parent, visited, path) {
			merged[key] = sourced
		}
	}
	for _, key := range record.Keys {
		merged[key] = types.SourcedValue{Value: record.Fields[key], Source: full}
	}
	return merged
}

// Chain returns a record's immediate parents after wildcard expansion,
// in merge order. Unresolvable parent references are omitted.
func (r *Resolver) Chain(recordType types.RecordType, name string) []string {
	record, ok := r.store.Lookup(recordType, name)
	if !ok {
		return nil
	}
	return r.expandParents(record)
}

// expandParents turns the inherits list into concrete record names.
// A reference bounded by the template delimiter on both ends expands to
// every same-type template record containing the inner pattern, in
// lexicographic order; anything else resolves as an exact or
// type-qualified name.
func (r *Resolver) expandParents(record *types.Record) []string {
	var parents []string
	for _, ref := range record.Inherits {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		if isWildcardRef(ref) {
			pattern := strings.Trim(ref, types.TemplateDelimiter)
			parents = append(parents, r.store.TemplatesMatching(record.Type, pattern)...)
			continue
		}
		if parent, ok := r.store.LookupRef(record.Type, ref); ok {
			parents = append(parents, parent.Name)
		}
	}
	return parents
}

func isWildcardRef(ref string) bool {
	return len(ref) > 1 &&
		strings.HasPrefix(ref, types.TemplateDelimiter) &&
		strings.HasSuffix(ref, types.TemplateDelimiter)
}
