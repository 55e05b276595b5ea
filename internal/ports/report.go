package ports

// ReportPort writes diagnostic artifacts.
type ReportPort interface {
	WriteManualReport(path string, keys []string) error
	WriteYAML(path string, doc any) error
}
