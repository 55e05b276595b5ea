package types

// ConversionResult is the outcome of converting one or more source
// key/value pairs. Settings holds target key → value (string or
// []string); NeedsManual lists source keys no rule matched.
type ConversionResult struct {
	Settings    map[string]any
	NeedsManual []string
}

// NewConversionResult creates an empty result.
func NewConversionResult() ConversionResult {
	return ConversionResult{Settings: map[string]any{}}
}

// Merge folds another result into this one. Later settings overwrite on
// target-key collision, matching fan-out rule application order.
func (r *ConversionResult) Merge(other ConversionResult) {
	for key, value := range other.Settings {
		r.Settings[key] = value
	}
	r.NeedsManual = append(r.NeedsManual, other.NeedsManual...)
}

// DefaultSet holds target-schema default values per output kind. It is
// passed explicitly into the converter so conversions never read ambient
// state.
type DefaultSet struct {
	Process      map[string]any
	Machine      map[string]any
	Filament     map[string]any
	MachineModel map[string]any
}

// For returns the default table for an output kind (nil when none).
func (d DefaultSet) For(kind OutputKind) map[string]any {
	switch kind {
	case OutputKindProcess:
		return d.Process
	case OutputKindMachine:
		return d.Machine
	case OutputKindFilament:
		return d.Filament
	case OutputKindMachineModel:
		return d.MachineModel
	default:
		return nil
	}
}

// ValuePair holds a candidate/reference value pair for a differing
// setting.
type ValuePair struct {
	Candidate any
	Reference any
}
