package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"slicer-profiles/internal/core"
	"slicer-profiles/internal/types"
)

// Inspect resolves a single record and reports its expanded parent
// chain and source-attributed fields. With no record name it lists the
// record names of the requested type instead.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	if strings.TrimSpace(req.BundlePath) == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle path is required")
	}
	recordType := types.RecordType(strings.TrimSpace(req.RecordType))
	if recordType == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record type is required")
	}

	store, err := s.Bundles.LoadBundle(req.BundlePath)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{Vendor: store.Vendor}
	if strings.TrimSpace(req.Name) == "" {
		result.Names = store.Names(recordType)
		return result, nil
	}

	if _, ok := store.Lookup(recordType, req.Name); !ok {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no such record: " + string(recordType) + ":" + req.Name)
	}

	resolver := core.NewResolver(store)
	result.Chain = resolver.Chain(recordType, req.Name)
	result.Resolved = resolver.ResolveWithSource(recordType, req.Name)
	return result, nil
}
