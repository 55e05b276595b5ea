package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/core"
	"slicer-profiles/internal/mappings"
)

// Audit enumerates the full mapping surface: every rule, ignored key,
// and mutually-exclusive group per record type, optionally written as a
// YAML document for regression diffing.
func (s Service) Audit(ctx context.Context, req AuditRequest) (AuditResult, error) {
	registries, err := mappings.Registries()
	if err != nil {
		return AuditResult{}, err
	}

	audits := map[string]core.Audit{}
	for recordType, registry := range registries {
		audits[string(recordType)] = registry.Enumerate()
	}

	result := AuditResult{Audits: audits}
	if req.OutputPath != "" {
		if err := s.Reports.WriteYAML(req.OutputPath, audits); err != nil {
			return AuditResult{}, err
		}
		result.OutputPath = req.OutputPath
		log.Ctx(ctx).Info().Str("path", req.OutputPath).Msg("mapping audit written")
	}
	return result, nil
}
