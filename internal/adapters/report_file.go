package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"
)

// ReportFileAdapter writes diagnostic artifacts: the manual-conversion
// markdown report and YAML documents for audit output.
type ReportFileAdapter struct{}

// NewReportFileAdapter creates the adapter.
func NewReportFileAdapter() *ReportFileAdapter {
	return &ReportFileAdapter{}
}

// WriteManualReport writes the list of source keys that no rule could
// convert. Keys are expected pre-sorted.
func (a *ReportFileAdapter) WriteManualReport(path string, keys []string) error {
	var b strings.Builder
	b.WriteString("# Settings That Need Manual Conversion\n\n")
	b.WriteString("The following source settings were encountered but have no ")
	b.WriteString("automatic conversion mapping yet. Handle these manually:\n\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "- `%s`\n", key)
	}
	fmt.Fprintf(&b, "\n\nTotal: %d settings\n", len(keys))

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot write report: %s", path)).
			WithCause(err)
	}
	return nil
}

// WriteYAML marshals doc to path.
func (a *ReportFileAdapter) WriteYAML(path string, doc any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot encode yaml: %s", path)).
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot write yaml: %s", path)).
			WithCause(err)
	}
	return nil
}
