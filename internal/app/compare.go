package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/core"
	"slicer-profiles/internal/types"
)

// defaultCompareTypes is the record-type order used when a request does
// not narrow the comparison.
var defaultCompareTypes = []types.RecordType{
	types.RecordTypePrint,
	types.RecordTypePrinter,
	types.RecordTypeFilament,
	types.RecordTypePrinterModel,
}

// Compare diffs two bundle generations per record type, attributing
// every change to the record that directly defines it.
func (s Service) Compare(ctx context.Context, req CompareRequest) (CompareResult, error) {
	if strings.TrimSpace(req.OldBundlePath) == "" || strings.TrimSpace(req.NewBundlePath) == "" {
		return CompareResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("old and new bundle paths are required")
	}

	oldStore, err := s.Bundles.LoadBundle(req.OldBundlePath)
	if err != nil {
		return CompareResult{}, err
	}
	newStore, err := s.Bundles.LoadBundle(req.NewBundlePath)
	if err != nil {
		return CompareResult{}, err
	}

	result := CompareResult{
		OldVersion: oldStore.Vendor.ConfigVersion,
		NewVersion: newStore.Vendor.ConfigVersion,
		Diffs:      map[types.RecordType]*types.GenerationDiff{},
	}
	warnIfSwapped(ctx, result.OldVersion, result.NewVersion)

	recordTypes, err := resolveRecordTypes(req.RecordTypes)
	if err != nil {
		return CompareResult{}, err
	}

	comparer := core.NewComparer()
	for _, recordType := range recordTypes {
		diff := comparer.CompareGeneration(oldStore, newStore, recordType)
		filterDiff(diff, req.Filter)
		result.Diffs[recordType] = diff
	}
	return result, nil
}

// filterDiff narrows a generation diff to records whose name contains
// filter, case-insensitively. Impact sets are left intact so a matching
// record still reports descendants outside the filter.
func filterDiff(diff *types.GenerationDiff, filter string) {
	if strings.TrimSpace(filter) == "" {
		return
	}
	needle := strings.ToLower(filter)
	match := func(name string) bool {
		return strings.Contains(strings.ToLower(name), needle)
	}

	diff.AddedRecords = filterNames(diff.AddedRecords, match)
	diff.RemovedRecords = filterNames(diff.RemovedRecords, match)
	for name := range diff.Changed {
		if !match(name) {
			delete(diff.Changed, name)
		}
	}
}

func filterNames(names []string, match func(string) bool) []string {
	kept := names[:0]
	for _, name := range names {
		if match(name) {
			kept = append(kept, name)
		}
	}
	return kept
}

// warnIfSwapped checks the vendor config versions and warns when the
// "old" bundle is not actually the older generation. Missing or
// unparseable versions are ignored; ordering is advisory only.
func warnIfSwapped(ctx context.Context, oldVersion string, newVersion string) {
	if oldVersion == "" || newVersion == "" {
		return
	}
	order, err := core.CompareGenerations(oldVersion, newVersion)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("cannot order bundle versions")
		return
	}
	if order > 0 {
		log.Ctx(ctx).Warn().
			Str("old", oldVersion).
			Str("new", newVersion).
			Msg("old bundle has a newer config_version, generations may be swapped")
	}
}

func resolveRecordTypes(requested []string) ([]types.RecordType, error) {
	if len(requested) == 0 {
		return defaultCompareTypes, nil
	}
	valid := map[types.RecordType]struct{}{}
	for _, recordType := range defaultCompareTypes {
		valid[recordType] = struct{}{}
	}
	var recordTypes []types.RecordType
	for _, raw := range requested {
		recordType := types.RecordType(strings.TrimSpace(raw))
		if _, ok := valid[recordType]; !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("unknown record type: " + raw)
		}
		recordTypes = append(recordTypes, recordType)
	}
	return recordTypes, nil
}
