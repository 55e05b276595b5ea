package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slicer-profiles/internal/app"
)

type auditOptions struct {
	Output string
}

func newAuditCommand() *cobra.Command {
	opts := auditOptions{}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Enumerate the full conversion rule surface",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the audit as YAML to this path")
	_ = viper.BindPFlag("audit_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runAudit(ctx context.Context, cmd *cobra.Command, opts auditOptions) error {
	service := newAppService()
	result, err := service.Audit(ctx, app.AuditRequest{
		OutputPath: resolveString(cmd, opts.Output, "audit_output", "output"),
	})
	if err != nil {
		return err
	}

	recordTypes := make([]string, 0, len(result.Audits))
	for recordType := range result.Audits {
		recordTypes = append(recordTypes, recordType)
	}
	sort.Strings(recordTypes)

	for _, recordType := range recordTypes {
		audit := result.Audits[recordType]
		fmt.Printf("%s: %d rules, %d ignored, %d exclusive groups\n",
			recordType, len(audit.Rules), len(audit.Ignored), len(audit.Exclusive))
	}
	if result.OutputPath != "" {
		fmt.Printf("audit written to %s\n", result.OutputPath)
	}
	return nil
}
