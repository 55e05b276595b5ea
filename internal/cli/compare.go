package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slicer-profiles/internal/app"
	"slicer-profiles/internal/types"
)

type compareOptions struct {
	OldBundle   string
	NewBundle   string
	RecordTypes []string
	Filter      string
}

func newCompareCommand() *cobra.Command {
	opts := compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two bundle generations and attribute every change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OldBundle, "old", "", "Older bundle path")
	cmd.Flags().StringVar(&opts.NewBundle, "new", "", "Newer bundle path")
	cmd.Flags().StringSliceVar(&opts.RecordTypes, "type", nil, "Record types to compare (default: all)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Restrict the report to record names containing this text")
	_ = viper.BindPFlag("old_bundle", cmd.Flags().Lookup("old"))
	_ = viper.BindPFlag("new_bundle", cmd.Flags().Lookup("new"))
	_ = viper.BindPFlag("record_types", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("filter", cmd.Flags().Lookup("filter"))
	return cmd
}

func runCompare(ctx context.Context, cmd *cobra.Command, opts compareOptions) error {
	service := newAppService()
	result, err := service.Compare(ctx, app.CompareRequest{
		OldBundlePath: resolveString(cmd, opts.OldBundle, "old_bundle", "old"),
		NewBundlePath: resolveString(cmd, opts.NewBundle, "new_bundle", "new"),
		RecordTypes:   resolveStrings(cmd, opts.RecordTypes, "record_types", "type"),
		Filter:        resolveString(cmd, opts.Filter, "filter", "filter"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("comparing %s -> %s\n", result.OldVersion, result.NewVersion)
	for _, recordType := range sortedDiffTypes(result.Diffs) {
		renderGenerationDiff(recordType, result.Diffs[recordType])
	}
	return nil
}

func sortedDiffTypes(diffs map[types.RecordType]*types.GenerationDiff) []types.RecordType {
	recordTypes := make([]types.RecordType, 0, len(diffs))
	for recordType := range diffs {
		recordTypes = append(recordTypes, recordType)
	}
	sort.Slice(recordTypes, func(i, j int) bool { return recordTypes[i] < recordTypes[j] })
	return recordTypes
}

func renderGenerationDiff(recordType types.RecordType, diff *types.GenerationDiff) {
	if len(diff.AddedRecords) == 0 && len(diff.RemovedRecords) == 0 && len(diff.Changed) == 0 {
		fmt.Printf("\n[%s] no changes\n", recordType)
		return
	}

	fmt.Printf("\n[%s]\n", recordType)
	for _, name := range diff.AddedRecords {
		fmt.Printf("+ %s\n", name)
	}
	for _, name := range diff.RemovedRecords {
		fmt.Printf("- %s\n", name)
	}

	names := make([]string, 0, len(diff.Changed))
	for name := range diff.Changed {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		changes := diff.Changed[name]
		fmt.Printf("~ %s\n", name)
		renderKeyChanges("added", changes.Added)
		renderKeyChanges("removed", changes.Removed)
		renderModified(changes.Modified)
		if len(changes.Affects) > 0 {
			fmt.Printf("    affects: %s\n", strings.Join(changes.Affects, ", "))
		}
	}
}

func renderKeyChanges(label string, keyChanges map[string]types.KeyChange) {
	for _, key := range sortedChangeKeys(keyChanges) {
		change := keyChanges[key]
		fmt.Printf("    %s %s = %s%s\n", label, key, change.Value, inheritedSuffix(change.Direct, change.Source))
	}
}

func renderModified(modified map[string]types.ValueChange) {
	keys := make([]string, 0, len(modified))
	for key := range modified {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		change := modified[key]
		fmt.Printf("    %s: %s -> %s%s\n", key, change.Old, change.New, inheritedSuffix(change.Direct, change.NewSource))
	}
}

func sortedChangeKeys(keyChanges map[string]types.KeyChange) []string {
	keys := make([]string, 0, len(keyChanges))
	for key := range keyChanges {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func inheritedSuffix(direct bool, source string) string {
	if direct {
		return ""
	}
	return fmt.Sprintf(" (inherited from %s)", source)
}
