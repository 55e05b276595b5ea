package types

// RecordType is the section category of a source configuration bundle.
type RecordType string

const (
	RecordTypePrint        RecordType = "print"
	RecordTypePrinter      RecordType = "printer"
	RecordTypeFilament     RecordType = "filament"
	RecordTypePrinterModel RecordType = "printer_model"
)

// VendorSection is the reserved single-word header for the bundle
// metadata section.
const VendorSection = "vendor"

// OutputKind is the target-schema profile category. Each kind maps to a
// directory in the converted output tree.
type OutputKind string

const (
	OutputKindProcess      OutputKind = "process"
	OutputKindMachine      OutputKind = "machine"
	OutputKindFilament     OutputKind = "filament"
	OutputKindMachineModel OutputKind = "machine_model"
)

// OutputKindFor returns the output kind a source record type converts into.
func OutputKindFor(recordType RecordType) (OutputKind, bool) {
	switch recordType {
	case RecordTypePrint:
		return OutputKindProcess, true
	case RecordTypePrinter:
		return OutputKindMachine, true
	case RecordTypeFilament:
		return OutputKindFilament, true
	case RecordTypePrinterModel:
		return OutputKindMachineModel, true
	default:
		return "", false
	}
}
