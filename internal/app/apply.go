package app

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/core"
	"slicer-profiles/internal/mappings"
	"slicer-profiles/internal/shared"
	"slicer-profiles/internal/types"
)

// Apply diffs two bundle generations and pushes the direct changes into
// an existing converted profile tree, mapping each changed source key
// through the conversion rules. Inherited-only changes are skipped;
// they land via the record that directly owns them.
func (s Service) Apply(ctx context.Context, req ApplyRequest) (ApplyResult, error) {
	if strings.TrimSpace(req.ProfilesDir) == "" {
		return ApplyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profiles directory is required")
	}
	recordType := types.RecordTypePrint
	if trimmed := strings.TrimSpace(req.RecordType); trimmed != "" {
		recordType = types.RecordType(trimmed)
	}
	registry, err := registryFor(recordType)
	if err != nil {
		return ApplyResult{}, err
	}

	oldStore, err := s.Bundles.LoadBundle(req.OldBundlePath)
	if err != nil {
		return ApplyResult{}, err
	}
	newStore, err := s.Bundles.LoadBundle(req.NewBundlePath)
	if err != nil {
		return ApplyResult{}, err
	}

	diff := core.NewComparer().CompareGeneration(oldStore, newStore, recordType)

	names := make([]string, 0, len(diff.Changed))
	for name := range diff.Changed {
		names = append(names, name)
	}
	sort.Strings(names)

	result := ApplyResult{}
	skipped := map[string]struct{}{}
	for _, name := range names {
		changes := diff.Changed[name]
		if !changes.HasDirectChanges() || strings.HasPrefix(name, types.TemplateDelimiter) {
			continue
		}

		path := filepath.Join(req.ProfilesDir, shared.NormalizeProfileName(name)+".json")
		profile, err := s.Profiles.LoadProfile(path)
		if err != nil {
			result.ProfilesMissing = append(result.ProfilesMissing, path)
			continue
		}

		applied := applyChanges(profile, changes, registry, skipped)
		if applied == 0 {
			continue
		}
		result.ChangesApplied += applied
		result.ProfilesUpdated++
		if req.DryRun {
			log.Ctx(ctx).Info().Str("profile", path).Int("changes", applied).Msg("dry run, not saving")
			continue
		}
		if err := s.Profiles.SaveProfile(path, profile); err != nil {
			return ApplyResult{}, err
		}
	}

	for key := range skipped {
		result.SkippedKeys = append(result.SkippedKeys, key)
	}
	sort.Strings(result.SkippedKeys)
	return result, nil
}

// applyChanges mutates profile in place and returns the number of
// target-field edits. Source keys with no mapping are collected into
// skipped rather than failing the run.
func applyChanges(profile types.OutputProfile, changes *types.RecordChanges, registry *core.Registry, skipped map[string]struct{}) int {
	applied := 0
	for key, change := range changes.Added {
		if !change.Direct {
			continue
		}
		applied += setConverted(profile, registry, key, change.Value, skipped)
	}
	for key, change := range changes.Modified {
		if !change.Direct {
			continue
		}
		applied += setConverted(profile, registry, key, change.New, skipped)
	}
	for key, change := range changes.Removed {
		if !change.Direct {
			continue
		}
		// Convert the removed value only to learn which target keys to
		// drop.
		result := registry.Convert(key, change.Value)
		for target := range result.Settings {
			if _, ok := profile[target]; ok {
				delete(profile, target)
				applied++
			}
		}
	}
	return applied
}

func setConverted(profile types.OutputProfile, registry *core.Registry, key string, value string, skipped map[string]struct{}) int {
	result := registry.Convert(key, value)
	if len(result.NeedsManual) > 0 {
		skipped[key] = struct{}{}
		return 0
	}
	applied := 0
	for target, converted := range result.Settings {
		profile[target] = converted
		applied++
	}
	return applied
}

func registryFor(recordType types.RecordType) (*core.Registry, error) {
	registries, err := mappings.Registries()
	if err != nil {
		return nil, err
	}
	registry, ok := registries[recordType]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no conversion rules for record type: " + string(recordType))
	}
	return registry, nil
}
