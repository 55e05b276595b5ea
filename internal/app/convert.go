package app

import (
	"context"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/core"
	"slicer-profiles/internal/mappings"
	"slicer-profiles/internal/types"
)

const manualReportName = "NEEDS_CONVERTED.md"

// Convert translates a source bundle into a target-schema profile tree.
func (s Service) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	bundlePath := strings.TrimSpace(req.BundlePath)
	if bundlePath == "" {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	store, err := s.Bundles.LoadBundle(bundlePath)
	if err != nil {
		return ConvertResult{}, err
	}

	config, err := mappings.ConverterConfig()
	if err != nil {
		return ConvertResult{}, err
	}
	if req.DefaultsPath != "" {
		overrides, err := s.Defaults.LoadOverrides(req.DefaultsPath)
		if err != nil {
			return ConvertResult{}, err
		}
		config.Defaults = mergeDefaults(config.Defaults, overrides)
	}

	assert.NotEmpty(ctx, config.Family, "converter config must carry a machine family")

	converter := core.NewConverter(config)
	outcome := converter.ConvertStore(store, req.Printer)
	log.Ctx(ctx).Info().
		Int("profiles", len(outcome.Profiles)).
		Int("manual", len(outcome.NeedsManual)).
		Str("vendor", store.Vendor.Name).
		Msg("bundle converted")

	for _, converted := range outcome.Profiles {
		if _, err := s.Output.WriteProfile(outputDir, converted.Kind, converted.Name, converted.Profile); err != nil {
			return ConvertResult{}, err
		}
	}

	result := ConvertResult{
		OutputDir:       outputDir,
		ProfilesWritten: len(outcome.Profiles),
		ManualKeys:      outcome.NeedsManual,
	}
	if len(outcome.NeedsManual) > 0 {
		result.ReportPath = filepath.Join(outputDir, manualReportName)
		if err := s.Reports.WriteManualReport(result.ReportPath, outcome.NeedsManual); err != nil {
			return ConvertResult{}, err
		}
	}
	return result, nil
}

// mergeDefaults overlays override tables onto the built-in defaults,
// key by key.
func mergeDefaults(base types.DefaultSet, overrides types.DefaultSet) types.DefaultSet {
	base.Process = overlay(base.Process, overrides.Process)
	base.Machine = overlay(base.Machine, overrides.Machine)
	base.Filament = overlay(base.Filament, overrides.Filament)
	base.MachineModel = overlay(base.MachineModel, overrides.MachineModel)
	return base
}

func overlay(base map[string]any, overrides map[string]any) map[string]any {
	if len(overrides) == 0 {
		return base
	}
	merged := make(map[string]any, len(base)+len(overrides))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}
