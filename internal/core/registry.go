package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"slicer-profiles/internal/types"
)

// TransformFunc rewrites a single source value into a target value
// (string or []string). A nil transform passes the value through.
type TransformFunc func(value string) any

// CustomFunc handles one source key/value pair and returns the target
// fields it produces. Returning an empty map is a valid match.
type CustomFunc func(key string, value string) map[string]any

type ruleKind int

const (
	ruleDirect ruleKind = iota
	ruleMerge
	ruleSplit
	ruleCustom
)

// splitTarget is one output leg of a split rule.
type splitTarget struct {
	target    string
	transform TransformFunc
}

// rule is the single closed variant record for all mapping rule kinds.
// Which fields are meaningful depends on kind; dispatch is an exhaustive
// switch in apply, never dynamic method lookup.
type rule struct {
	kind      ruleKind
	sources   []string
	target    string
	transform TransformFunc
	splits    []splitTarget
	predicate func(key string) bool
	custom    CustomFunc
}

func (r *rule) matches(key string) bool {
	switch r.kind {
	case ruleDirect, ruleMerge:
		for _, source := range r.sources {
			if source == key {
				return true
			}
		}
		return false
	case ruleSplit:
		return r.sources[0] == key
	case ruleCustom:
		return r.predicate(key)
	default:
		return false
	}
}

func (r *rule) apply(key string, value string) map[string]any {
	switch r.kind {
	case ruleDirect, ruleMerge:
		return map[string]any{r.target: applyTransform(r.transform, value)}
	case ruleSplit:
		out := make(map[string]any, len(r.splits))
		for _, split := range r.splits {
			out[split.target] = applyTransform(split.transform, value)
		}
		return out
	case ruleCustom:
		return r.custom(key, value)
	default:
		return nil
	}
}

func applyTransform(transform TransformFunc, value string) any {
	if transform == nil {
		return value
	}
	return transform(value)
}

// Registry is the declarative source-to-target mapping table. It is
// populated once at startup and read-only afterwards. Registration
// conflicts are collected rather than failing at the first one; Err
// reports the whole batch so a broken rule table surfaces every problem
// in one run.
type Registry struct {
	rules     []*rule
	ignored   map[string]struct{}
	exclusive map[string]map[string]struct{}
	claims    map[string]string
	errs      []error
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ignored:   map[string]struct{}{},
		exclusive: map[string]map[string]struct{}{},
		claims:    map[string]string{},
	}
}

// Direct registers a one-to-one mapping from sourceKey to targetKey.
// A nil transform copies the value unchanged.
func (g *Registry) Direct(sourceKey string, targetKey string, transform TransformFunc) {
	if !g.claim(targetKey, sourceKey) {
		return
	}
	g.rules = append(g.rules, &rule{
		kind:      ruleDirect,
		sources:   []string{sourceKey},
		target:    targetKey,
		transform: transform,
	})
}

// Merge registers a many-to-one mapping: each listed source key maps to
// targetKey, later-converted sources overwriting earlier ones. Sources
// of the same merge rule never conflict with each other.
func (g *Registry) Merge(sourceKeys []string, targetKey string, transform TransformFunc) {
	for _, sourceKey := range sourceKeys {
		if existing, claimed := g.claims[targetKey]; claimed && containsKey(sourceKeys, existing) {
			g.claims[targetKey] = sourceKey
			continue
		}
		if !g.claim(targetKey, sourceKey) {
			return
		}
	}
	g.rules = append(g.rules, &rule{
		kind:      ruleMerge,
		sources:   append([]string(nil), sourceKeys...),
		target:    targetKey,
		transform: transform,
	})
}

// Split registers a one-to-many mapping: sourceKey produces one value
// per (target, transform) pair. Split targets carry no uniqueness claim
// since each derives from the same single source.
func (g *Registry) Split(sourceKey string, targets map[string]TransformFunc) {
	splits := make([]splitTarget, 0, len(targets))
	for target, transform := range targets {
		splits = append(splits, splitTarget{target: target, transform: transform})
	}
	sort.Slice(splits, func(i, j int) bool { return splits[i].target < splits[j].target })
	g.rules = append(g.rules, &rule{
		kind:    ruleSplit,
		sources: []string{sourceKey},
		splits:  splits,
	})
}

// Custom registers a predicate-matched rule with a free-form transform.
func (g *Registry) Custom(predicate func(key string) bool, fn CustomFunc) {
	g.rules = append(g.rules, &rule{
		kind:      ruleCustom,
		predicate: predicate,
		custom:    fn,
	})
}

// Ignore marks source keys that intentionally have no target mapping.
// Ignored keys produce no output and are never reported as unconverted.
func (g *Registry) Ignore(sourceKeys ...string) {
	for _, key := range sourceKeys {
		g.ignored[key] = struct{}{}
	}
}

// Ignored exposes the ignored source-key set. Default-value gap filling
// consults it so intentionally dropped keys never reappear as defaults.
func (g *Registry) Ignored() map[string]struct{} {
	return g.ignored
}

// MutuallyExclusive declares that the listed source keys are permitted
// alternatives for targetKey. Must be declared before the conflicting
// registrations it is meant to allow.
func (g *Registry) MutuallyExclusive(targetKey string, sourceKeys ...string) {
	group, ok := g.exclusive[targetKey]
	if !ok {
		group = map[string]struct{}{}
		g.exclusive[targetKey] = group
	}
	for _, key := range sourceKeys {
		group[key] = struct{}{}
	}
}

// claim records sourceKey as the canonical owner of targetKey. A target
// already claimed by a different source is a configuration error unless
// a mutually-exclusive group for the target lists the new source, in
// which case the claim moves to the new source (last registration wins
// for reverse lookup).
func (g *Registry) claim(targetKey string, sourceKey string) bool {
	existing, claimed := g.claims[targetKey]
	if claimed && existing != sourceKey {
		group, hasGroup := g.exclusive[targetKey]
		if !hasGroup {
			g.errs = append(g.errs, duplicateTargetError(targetKey, existing, sourceKey))
			return false
		}
		if _, allowed := group[sourceKey]; !allowed {
			g.errs = append(g.errs, duplicateTargetError(targetKey, existing, sourceKey))
			return false
		}
	}
	g.claims[targetKey] = sourceKey
	return true
}

func containsKey(keys []string, key string) bool {
	for _, candidate := range keys {
		if candidate == key {
			return true
		}
	}
	return false
}

func duplicateTargetError(targetKey string, existing string, sourceKey string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf(
			"target key %q already mapped from %q, conflicting registration from %q (declare mutually exclusive to allow)",
			targetKey, existing, sourceKey))
}

// Err returns all registration conflicts joined, or nil when the rule
// table is consistent. Callers check it once after the table is built.
func (g *Registry) Err() error {
	return errors.Join(g.errs...)
}

// Convert fans a single source key/value out across every matching rule
// and merges the produced target fields, later rules overwriting earlier
// ones on collision. A key no rule matches is flagged for manual
// conversion unless it is ignored.
func (g *Registry) Convert(sourceKey string, value string) types.ConversionResult {
	result := types.NewConversionResult()
	if _, ignored := g.ignored[sourceKey]; ignored {
		return result
	}
	matched := false
	for _, r := range g.rules {
		if !r.matches(sourceKey) {
			continue
		}
		matched = true
		for target, converted := range r.apply(sourceKey, value) {
			result.Settings[target] = converted
		}
	}
	if !matched {
		result.NeedsManual = []string{sourceKey}
	}
	return result
}

// ConvertAll converts a whole resolved profile, keys in sorted order so
// collisions between fan-out rules resolve deterministically. It returns
// the merged target fields and the aggregate list of unconverted keys.
func (g *Registry) ConvertAll(fields types.ResolvedProfile) (map[string]any, []string) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	merged := types.NewConversionResult()
	for _, key := range keys {
		result := g.Convert(key, fields[key])
		merged.Merge(result)
	}
	return merged.Settings, merged.NeedsManual
}

// ReverseLookup returns the source keys whose direct or merge rules
// target targetKey, in registration order.
func (g *Registry) ReverseLookup(targetKey string) []string {
	var sources []string
	for _, r := range g.rules {
		if (r.kind == ruleDirect || r.kind == ruleMerge) && r.target == targetKey {
			sources = append(sources, r.sources...)
		}
	}
	return sources
}

// RuleSummary is one enumerable registry entry for audit output.
type RuleSummary struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Sources []string `json:"sources" yaml:"sources"`
	Targets []string `json:"targets" yaml:"targets"`
}

// Audit is the full enumerable view of the registry: every rule, every
// ignored key, every mutually-exclusive group.
type Audit struct {
	Rules     []RuleSummary       `json:"rules" yaml:"rules"`
	Ignored   []string            `json:"ignored" yaml:"ignored"`
	Exclusive map[string][]string `json:"mutually_exclusive" yaml:"mutually_exclusive"`
}

// Enumerate snapshots the registry for audit and regression testing.
// Custom rules appear with their match surface summarized as opaque.
func (g *Registry) Enumerate() Audit {
	audit := Audit{Exclusive: map[string][]string{}}
	for _, r := range g.rules {
		summary := RuleSummary{Sources: append([]string(nil), r.sources...)}
		switch r.kind {
		case ruleDirect:
			summary.Kind = "direct"
			summary.Targets = []string{r.target}
		case ruleMerge:
			summary.Kind = "merge"
			summary.Targets = []string{r.target}
		case ruleSplit:
			summary.Kind = "split"
			for _, split := range r.splits {
				summary.Targets = append(summary.Targets, split.target)
			}
		case ruleCustom:
			summary.Kind = "custom"
			summary.Sources = []string{"<predicate>"}
		}
		audit.Rules = append(audit.Rules, summary)
	}
	for key := range g.ignored {
		audit.Ignored = append(audit.Ignored, key)
	}
	sort.Strings(audit.Ignored)
	for target, group := range g.exclusive {
		keys := make([]string, 0, len(group))
		for key := range group {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		audit.Exclusive[target] = keys
	}
	return audit
}

// TargetKeys returns every target key reachable from a direct, merge, or
// split rule, sorted and deduplicated.
func (g *Registry) TargetKeys() []string {
	seen := map[string]struct{}{}
	for _, r := range g.rules {
		switch r.kind {
		case ruleDirect, ruleMerge:
			seen[r.target] = struct{}{}
		case ruleSplit:
			for _, split := range r.splits {
				seen[split.target] = struct{}{}
			}
		}
	}
	targets := make([]string, 0, len(seen))
	for target := range seen {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}
