package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/core"
	"slicer-profiles/internal/types"
)

var allOutputKinds = []types.OutputKind{
	types.OutputKindProcess,
	types.OutputKindMachine,
	types.OutputKindFilament,
	types.OutputKindMachineModel,
}

// Diff reconciles a converted profile tree against a reference tree of
// the same schema, profile by profile.
func (s Service) Diff(ctx context.Context, req DiffRequest) (DiffResult, error) {
	if strings.TrimSpace(req.CandidateDir) == "" || strings.TrimSpace(req.ReferenceDir) == "" {
		return DiffResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("candidate and reference directories are required")
	}

	candidate, err := s.Profiles.LoadCorpus(req.CandidateDir)
	if err != nil {
		return DiffResult{}, err
	}
	reference, err := s.Profiles.LoadCorpus(req.ReferenceDir)
	if err != nil {
		return DiffResult{}, err
	}

	kinds, err := resolveOutputKinds(req.Kinds)
	if err != nil {
		return DiffResult{}, err
	}

	differ := core.NewDiffer(candidate, reference)
	result := DiffResult{}
	for _, kind := range kinds {
		for _, name := range differ.Names(kind) {
			if _, ok := reference[kind][name]; !ok {
				result.MissingInRef = append(result.MissingInRef, string(kind)+"/"+name)
				continue
			}
			diffed, err := differ.Diff(kind, name)
			if err != nil {
				return DiffResult{}, err
			}
			if diffed.Clean() {
				result.CleanCount++
				continue
			}
			result.DirtyCount++
			result.Diffs = append(result.Diffs, ProfileDiff{Kind: kind, Name: name, Result: diffed})
		}
	}
	log.Ctx(ctx).Info().
		Int("clean", result.CleanCount).
		Int("dirty", result.DirtyCount).
		Int("missing", len(result.MissingInRef)).
		Msg("corpus reconciled")
	return result, nil
}

func resolveOutputKinds(requested []string) ([]types.OutputKind, error) {
	if len(requested) == 0 {
		return allOutputKinds, nil
	}
	valid := map[types.OutputKind]struct{}{}
	for _, kind := range allOutputKinds {
		valid[kind] = struct{}{}
	}
	var kinds []types.OutputKind
	for _, raw := range requested {
		kind := types.OutputKind(strings.TrimSpace(raw))
		if _, ok := valid[kind]; !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("unknown output kind: " + raw)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
