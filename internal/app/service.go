// Package app wires the application services: each operation takes a
// request struct, orchestrates core logic through ports, and returns a
// result struct the CLI renders.
package app

import (
	"slicer-profiles/internal/adapters"
	"slicer-profiles/internal/ports"
)

type Service struct {
	Bundles  ports.BundleSourcePort
	Profiles ports.CorpusPort
	Output   ports.OutputWriterPort
	Reports  ports.ReportPort
	Defaults ports.DefaultsPort
}

func NewService() Service {
	profileDir := adapters.NewProfileDirAdapter()
	return Service{
		Bundles:  adapters.NewBundleFileAdapter(),
		Profiles: profileDir,
		Output:   profileDir,
		Reports:  adapters.NewReportFileAdapter(),
		Defaults: adapters.NewDefaultsFileAdapter(),
	}
}
