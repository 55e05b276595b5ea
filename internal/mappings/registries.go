package mappings

import (
	"errors"

	"slicer-profiles/internal/core"
	"slicer-profiles/internal/types"
)

// Family is the machine family stamped onto generated model profiles.
const Family = "Prusa"

// Registries builds the full per-record-type rule table set. Any
// registration conflict across the tables is returned as one joined
// error, so a broken table surfaces every problem at startup.
func Registries() (map[types.RecordType]*core.Registry, error) {
	printRegistry, printErr := NewPrintRegistry()
	printerRegistry, printerErr := NewPrinterRegistry()
	filamentRegistry, filamentErr := NewFilamentRegistry()

	if err := errors.Join(printErr, printerErr, filamentErr); err != nil {
		return nil, err
	}
	return map[types.RecordType]*core.Registry{
		types.RecordTypePrint:    printRegistry,
		types.RecordTypePrinter:  printerRegistry,
		types.RecordTypeFilament: filamentRegistry,
	}, nil
}

// ListFields names the target fields the output schema stores as lists
// even when a single value was converted.
func ListFields() map[types.OutputKind][]string {
	return map[types.OutputKind][]string{
		types.OutputKindMachine: {
			"machine_start_gcode",
			"machine_end_gcode",
			"before_layer_change_gcode",
			"layer_change_gcode",
			"change_filament_gcode",
		},
		types.OutputKindFilament: {
			"nozzle_temperature",
			"nozzle_temperature_initial_layer",
			"hot_plate_temp",
			"hot_plate_temp_initial_layer",
			"chamber_temperature",
			"filament_start_gcode",
			"filament_end_gcode",
		},
	}
}

// ConverterConfig assembles the complete conversion configuration.
func ConverterConfig() (core.ConverterConfig, error) {
	registries, err := Registries()
	if err != nil {
		return core.ConverterConfig{}, err
	}
	return core.ConverterConfig{
		Registries: registries,
		Defaults:   DefaultSet(),
		ListFields: ListFields(),
		Family:     Family,
	}, nil
}
