package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slicer-profiles/internal/app"
)

type convertOptions struct {
	Bundle    string
	OutputDir string
	Printer   string
	Defaults  string
}

func newConvertCommand() *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a source bundle into target-schema profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "Source bundle path")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.Printer, "printer", "", "Restrict output to profiles matching this printer name")
	cmd.Flags().StringVar(&opts.Defaults, "defaults", "", "Default-value overrides file (YAML)")
	_ = viper.BindPFlag("bundle", cmd.Flags().Lookup("bundle"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("printer", cmd.Flags().Lookup("printer"))
	_ = viper.BindPFlag("defaults", cmd.Flags().Lookup("defaults"))
	return cmd
}

func runConvert(ctx context.Context, cmd *cobra.Command, opts convertOptions) error {
	service := newAppService()
	result, err := service.Convert(ctx, app.ConvertRequest{
		BundlePath:   resolveString(cmd, opts.Bundle, "bundle", "bundle"),
		OutputDir:    resolveString(cmd, opts.OutputDir, "output", "output"),
		Printer:      resolveString(cmd, opts.Printer, "printer", "printer"),
		DefaultsPath: resolveString(cmd, opts.Defaults, "defaults", "defaults"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("converted: %d profiles written to %s\n", result.ProfilesWritten, result.OutputDir)
	if len(result.ManualKeys) > 0 {
		fmt.Printf("%d settings need manual conversion (see %s):\n", len(result.ManualKeys), result.ReportPath)
		fmt.Printf("  %s\n", strings.Join(result.ManualKeys, ", "))
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
