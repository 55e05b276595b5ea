package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slicer-profiles/internal/app"
)

type diffOptions struct {
	CandidateDir string
	ReferenceDir string
	Kinds        []string
}

func newDiffCommand() *cobra.Command {
	opts := diffOptions{}
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Reconcile converted profiles against a reference tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.CandidateDir, "candidate", "", "Converted profile tree")
	cmd.Flags().StringVar(&opts.ReferenceDir, "reference", "", "Reference profile tree")
	cmd.Flags().StringSliceVar(&opts.Kinds, "kind", nil, "Output kinds to reconcile (default: all)")
	_ = viper.BindPFlag("candidate_dir", cmd.Flags().Lookup("candidate"))
	_ = viper.BindPFlag("reference_dir", cmd.Flags().Lookup("reference"))
	_ = viper.BindPFlag("kinds", cmd.Flags().Lookup("kind"))
	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, opts diffOptions) error {
	service := newAppService()
	result, err := service.Diff(ctx, app.DiffRequest{
		CandidateDir: resolveString(cmd, opts.CandidateDir, "candidate_dir", "candidate"),
		ReferenceDir: resolveString(cmd, opts.ReferenceDir, "reference_dir", "reference"),
		Kinds:        resolveStrings(cmd, opts.Kinds, "kinds", "kind"),
	})
	if err != nil {
		return err
	}

	for _, diff := range result.Diffs {
		fmt.Printf("%s/%s\n", diff.Kind, diff.Name)
		for _, key := range diff.Result.OnlyInCandidate {
			fmt.Printf("    only in candidate: %s\n", key)
		}
		for _, key := range diff.Result.OnlyInReference {
			fmt.Printf("    only in reference: %s\n", key)
		}
		keys := make([]string, 0, len(diff.Result.Differing))
		for key := range diff.Result.Differing {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			pair := diff.Result.Differing[key]
			fmt.Printf("    %s: %v != %v\n", key, pair.Candidate, pair.Reference)
		}
	}
	if len(result.MissingInRef) > 0 {
		fmt.Printf("missing in reference: %s\n", strings.Join(result.MissingInRef, ", "))
	}
	fmt.Printf("%d clean, %d differing\n", result.CleanCount, result.DirtyCount)
	return nil
}
