package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slicer-profiles/internal/app"
)

type applyOptions struct {
	OldBundle   string
	NewBundle   string
	ProfilesDir string
	RecordType  string
	DryRun      bool
}

func newApplyCommand() *cobra.Command {
	opts := applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply direct generation changes onto converted profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OldBundle, "old", "", "Older bundle path")
	cmd.Flags().StringVar(&opts.NewBundle, "new", "", "Newer bundle path")
	cmd.Flags().StringVar(&opts.ProfilesDir, "profiles-dir", "", "Directory of converted profiles to update")
	cmd.Flags().StringVar(&opts.RecordType, "type", "print", "Record type to apply")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report changes without writing files")
	_ = viper.BindPFlag("old_bundle", cmd.Flags().Lookup("old"))
	_ = viper.BindPFlag("new_bundle", cmd.Flags().Lookup("new"))
	_ = viper.BindPFlag("profiles_dir", cmd.Flags().Lookup("profiles-dir"))
	_ = viper.BindPFlag("record_type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	return cmd
}

func runApply(ctx context.Context, cmd *cobra.Command, opts applyOptions) error {
	service := newAppService()
	result, err := service.Apply(ctx, app.ApplyRequest{
		OldBundlePath: resolveString(cmd, opts.OldBundle, "old_bundle", "old"),
		NewBundlePath: resolveString(cmd, opts.NewBundle, "new_bundle", "new"),
		ProfilesDir:   resolveString(cmd, opts.ProfilesDir, "profiles_dir", "profiles-dir"),
		RecordType:    resolveString(cmd, opts.RecordType, "record_type", "type"),
		DryRun:        resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("applied %d changes across %d profiles\n", result.ChangesApplied, result.ProfilesUpdated)
	for _, path := range result.ProfilesMissing {
		fmt.Printf("missing profile: %s\n", path)
	}
	if len(result.SkippedKeys) > 0 {
		fmt.Printf("unmapped keys skipped: %s\n", strings.Join(result.SkippedKeys, ", "))
	}
	return nil
}
