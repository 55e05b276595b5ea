package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/types"
)

// Differ reconciles a converted output corpus against a reference
// corpus of the same target schema. It resolves each corpus's
// single-inheritance chains independently and compares the flattened
// setting sets with numeric normalization, so "10", 10 and "10.0" agree
// while genuine value differences surface.
type Differ struct {
	candidate types.OutputCorpus
	reference types.OutputCorpus
}

// NewDiffer creates a differ over two loaded corpora.
func NewDiffer(candidate types.OutputCorpus, reference types.OutputCorpus) *Differ {
	return &Differ{candidate: candidate, reference: reference}
}

// DiffResult is the per-profile reconciliation outcome.
type DiffResult struct {
	OnlyInCandidate []string
	OnlyInReference []string
	Differing       map[string]types.ValuePair
}

// Clean reports whether the two resolved profiles agree completely.
func (r DiffResult) Clean() bool {
	return len(r.OnlyInCandidate) == 0 && len(r.OnlyInReference) == 0 && len(r.Differing) == 0
}

// Diff resolves name in both corpora and compares the results. The
// profile must exist in both; a missing side is an error rather than an
// empty diff, since the caller decides which names to reconcile.
func (d *Differ) Diff(kind types.OutputKind, name string) (DiffResult, error) {
	if _, ok := d.candidate[kind][name]; !ok {
		return DiffResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("profile not in candidate corpus: %s/%s", kind, name))
	}
	if _, ok := d.reference[kind][name]; !ok {
		return DiffResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("profile not in reference corpus: %s/%s", kind, name))
	}

	candidate := ResolveOutput(d.candidate[kind], name)
	reference := ResolveOutput(d.reference[kind], name)

	result := DiffResult{Differing: map[string]types.ValuePair{}}
	for key := range candidate {
		if _, ok := reference[key]; !ok {
			result.OnlyInCandidate = append(result.OnlyInCandidate, key)
		}
	}
	for key := range reference {
		if _, ok := candidate[key]; !ok {
			result.OnlyInReference = append(result.OnlyInReference, key)
		}
	}
	sort.Strings(result.OnlyInCandidate)
	sort.Strings(result.OnlyInReference)

	for key, candidateValue := range candidate {
		referenceValue, ok := reference[key]
		if !ok {
			continue
		}
		if !valuesEqual(candidateValue, referenceValue) {
			result.Differing[key] = types.ValuePair{
				Candidate: candidateValue,
				Reference: referenceValue,
			}
		}
	}
	return result, nil
}

// Names returns the profile names of a kind present in the candidate
// corpus, sorted.
func (d *Differ) Names(kind types.OutputKind) []string {
	names := make([]string, 0, len(d.candidate[kind]))
	for name := range d.candidate[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveOutput flattens a profile's single-inheritance chain within one
// corpus. Parents merge under children, metadata keys are excluded, and
// a revisited ancestor abandons the chain with a warning.
func ResolveOutput(corpus map[string]types.OutputProfile, name string) map[string]any {
	return resolveOutput(corpus, name, map[string]struct{}{})
}

func resolveOutput(corpus map[string]types.OutputProfile, name string, visited map[string]struct{}) map[string]any {
	if _, seen := visited[name]; seen {
		log.Warn().Str("profile", name).Msg("circular inheritance in output corpus, branch abandoned")
		return nil
	}
	visited[name] = struct{}{}

	profile, ok := corpus[name]
	if !ok {
		return nil
	}

	merged := map[string]any{}
	if parent, ok := profile["inherits"].(string); ok && parent != "" {
		for key, value := range resolveOutput(corpus, parent, visited) {
			merged[key] = value
		}
	}
	for key, value := range profile {
		if _, meta := types.MetadataKeys[key]; meta {
			continue
		}
		merged[key] = value
	}
	return merged
}

// valuesEqual compares two setting values after normalization. Ordered
// sequences compare element-wise.
func valuesEqual(a any, b any) bool {
	listA, aIsList := asList(a)
	listB, bIsList := asList(b)
	if aIsList || bIsList {
		if !aIsList || !bIsList || len(listA) != len(listB) {
			return false
		}
		for i := range listA {
			if !valuesEqual(listA[i], listB[i]) {
				return false
			}
		}
		return true
	}
	return normalizeScalar(a) == normalizeScalar(b)
}

func asList(value any) ([]any, bool) {
	switch typed := value.(type) {
	case []any:
		return typed, true
	case []string:
		list := make([]any, len(typed))
		for i, element := range typed {
			list[i] = element
		}
		return list, true
	default:
		return nil, false
	}
}

// normalizeScalar maps numeric-looking values onto float64 so integer
// and decimal spellings of the same quantity compare equal. Everything
// else compares as a trimmed string.
func normalizeScalar(value any) any {
	switch typed := value.(type) {
	case float64:
		return typed
	case int:
		return float64(typed)
	case bool:
		return typed
	case string:
		trimmed := strings.TrimSpace(typed)
		if number, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return number
		}
		return trimmed
	default:
		return value
	}
}
