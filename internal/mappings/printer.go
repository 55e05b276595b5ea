package mappings

import (
	"slicer-profiles/internal/core"
)

// NewPrinterRegistry builds the printer-to-machine rule table.
func NewPrinterRegistry() (*core.Registry, error) {
	registry := core.NewRegistry()

	// Geometry
	registry.Direct("nozzle_diameter", "nozzle_diameter", singleton)
	registry.Direct("bed_shape", "printable_area", commaList)
	registry.Direct("max_print_height", "printable_height", nil)

	// Machine limits, emitted as single-element arrays per extruder
	registry.Direct("machine_max_acceleration_x", "machine_max_acceleration_x", commaList)
	registry.Direct("machine_max_acceleration_y", "machine_max_acceleration_y", commaList)
	registry.Direct("machine_max_acceleration_z", "machine_max_acceleration_z", commaList)
	registry.Direct("machine_max_acceleration_e", "machine_max_acceleration_e", commaList)
	registry.Direct("machine_max_acceleration_extruding", "machine_max_acceleration_extruding", commaList)
	registry.Direct("machine_max_acceleration_retracting", "machine_max_acceleration_retracting", commaList)
	registry.Direct("machine_max_acceleration_travel", "machine_max_acceleration_travel", commaList)
	registry.Direct("machine_max_feedrate_x", "machine_max_speed_x", commaList)
	registry.Direct("machine_max_feedrate_y", "machine_max_speed_y", commaList)
	registry.Direct("machine_max_feedrate_z", "machine_max_speed_z", commaList)
	registry.Direct("machine_max_feedrate_e", "machine_max_speed_e", commaList)
	registry.Direct("machine_max_jerk_x", "machine_max_jerk_x", commaList)
	registry.Direct("machine_max_jerk_y", "machine_max_jerk_y", commaList)
	registry.Direct("machine_max_jerk_z", "machine_max_jerk_z", commaList)
	registry.Direct("machine_max_jerk_e", "machine_max_jerk_e", commaList)
	registry.Direct("machine_min_extruding_rate", "machine_min_extruding_rate", commaList)
	registry.Direct("machine_min_travel_rate", "machine_min_travel_rate", commaList)
	registry.Direct("machine_limits_usage", "emit_machine_limits_to_gcode", flagIs("emit_to_gcode"))

	// Retraction
	registry.Direct("retract_length", "retraction_length", nil)
	registry.Direct("retract_speed", "retraction_speed", nil)
	registry.Direct("deretract_speed", "deretraction_speed", nil)
	registry.Direct("retract_before_travel", "retraction_minimum_travel", nil)
	registry.Direct("retract_lift", "z_hop", nil)
	registry.Direct("retract_lift_above", "retract_lift_above", nil)
	registry.Direct("retract_lift_below", "retract_lift_below", nil)
	registry.Direct("retract_layer_change", "retract_when_changing_layer", nil)
	registry.Direct("retract_before_wipe", "retract_before_wipe", nil)
	registry.Direct("wipe", "wipe", nil)

	// Custom G-code blocks
	registry.Direct("gcode_flavor", "gcode_flavor", nil)
	registry.Direct("start_gcode", "machine_start_gcode", singleton)
	registry.Direct("end_gcode", "machine_end_gcode", singleton)
	registry.Direct("before_layer_gcode", "before_layer_change_gcode", singleton)
	registry.Direct("layer_gcode", "layer_change_gcode", singleton)
	registry.Direct("color_change_gcode", "change_filament_gcode", singleton)
	registry.Direct("pause_print_gcode", "machine_pause_gcode", nil)

	// Extruder
	registry.Direct("use_relative_e_distances", "use_relative_e_distances", nil)
	registry.Direct("extruder_offset", "extruder_offset", nil)
	registry.Direct("extruder_colour", "extruder_colour", nil)
	registry.Direct("single_extruder_multi_material", "single_extruder_multi_material", nil)
	registry.Direct("extruder_clearance_radius", "extruder_clearance_radius", nil)
	registry.Direct("extruder_clearance_height", "extruder_clearance_height_to_rod", nil)

	// Misc
	registry.Direct("thumbnails", "thumbnails", commaList)
	registry.Direct("printer_notes", "printer_notes", singleton)

	// Consumed by the converter itself for machine metadata, never
	// emitted as settings.
	registry.Ignore("printer_model", "printer_variant", "nozzle_high_flow")

	return registry, registry.Err()
}
