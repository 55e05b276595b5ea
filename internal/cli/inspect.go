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

type inspectOptions struct {
	Bundle     string
	RecordType string
	Name       string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Resolve a record's inheritance chain and attributed fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "Source bundle path")
	cmd.Flags().StringVar(&opts.RecordType, "type", "print", "Record type")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Record name (omit to list records)")
	_ = viper.BindPFlag("bundle", cmd.Flags().Lookup("bundle"))
	_ = viper.BindPFlag("record_type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("record_name", cmd.Flags().Lookup("name"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		BundlePath: resolveString(cmd, opts.Bundle, "bundle", "bundle"),
		RecordType: resolveString(cmd, opts.RecordType, "record_type", "type"),
		Name:       resolveString(cmd, opts.Name, "record_name", "name"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("vendor: %s (config_version %s)\n", result.Vendor.Name, result.Vendor.ConfigVersion)
	if len(result.Names) > 0 {
		for _, name := range result.Names {
			fmt.Println(name)
		}
		return nil
	}

	if len(result.Chain) > 0 {
		fmt.Printf("chain: %s\n", strings.Join(result.Chain, " -> "))
	}
	keys := make([]string, 0, len(result.Resolved))
	for key := range result.Resolved {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sourced := result.Resolved[key]
		fmt.Printf("%s = %s  [%s]\n", key, sourced.Value, sourced.Source)
	}
	return nil
}
