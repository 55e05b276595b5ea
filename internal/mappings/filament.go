package mappings

import (
	"slicer-profiles/internal/core"
)

// NewFilamentRegistry builds the filament rule table.
func NewFilamentRegistry() (*core.Registry, error) {
	registry := core.NewRegistry()

	// Identity and physical properties
	registry.Direct("filament_type", "filament_type", nil)
	registry.Direct("filament_vendor", "filament_vendor", nil)
	registry.Direct("filament_cost", "filament_cost", nil)
	registry.Direct("filament_density", "filament_density", nil)
	registry.Direct("filament_diameter", "filament_diameter", nil)
	registry.Direct("filament_spool_weight", "filament_spool_weight", emptyDefault("0"))
	registry.Direct("filament_colour", "filament_colour", singleton)
	registry.Direct("filament_notes", "filament_notes", nil)
	registry.Direct("filament_max_volumetric_speed", "filament_max_volumetric_speed", nil)
	registry.Direct("extrusion_multiplier", "filament_flow_ratio", nil)
	registry.Direct("filament_soluble", "filament_soluble", nil)

	// Temperatures. The source exposes two alternative chamber keys for
	// the same target field; the minimal-temperature spelling wins when
	// both appear.
	registry.MutuallyExclusive("chamber_temperature",
		"chamber_temperature", "chamber_minimal_temperature")
	registry.Direct("first_layer_temperature", "nozzle_temperature_initial_layer", nil)
	registry.Direct("temperature", "nozzle_temperature", nil)
	registry.Direct("first_layer_bed_temperature", "hot_plate_temp_initial_layer", nil)
	registry.Direct("bed_temperature", "hot_plate_temp", nil)
	registry.Direct("chamber_temperature", "chamber_temperature", nil)
	registry.Direct("chamber_minimal_temperature", "chamber_temperature", nil)

	// Cooling
	registry.Direct("fan_always_on", "fan_always_on", nil)
	registry.Direct("min_fan_speed", "fan_min_speed", nil)
	registry.Direct("max_fan_speed", "fan_max_speed", nil)
	registry.Direct("bridge_fan_speed", "bridge_fan_speed", nil)
	registry.Direct("disable_fan_first_layers", "close_fan_the_first_x_layers", nil)
	registry.Direct("full_fan_speed_layer", "full_fan_speed_layer", nil)
	registry.Direct("fan_below_layer_time", "fan_cooling_layer_time", nil)
	registry.Direct("slowdown_below_layer_time", "slow_down_layer_time", nil)
	registry.Direct("min_print_speed", "slow_down_min_speed", nil)
	registry.Direct("filament_cooling_moves", "filament_cooling_moves", nil)
	registry.Direct("filament_cooling_initial_speed", "filament_cooling_initial_speed", nil)
	registry.Direct("filament_cooling_final_speed", "filament_cooling_final_speed", nil)

	// Per-filament retraction overrides
	registry.Direct("filament_retract_length", "filament_retraction_length", nil)
	registry.Direct("filament_retract_speed", "filament_retraction_speed", nil)
	registry.Direct("filament_deretract_speed", "filament_deretraction_speed", nil)
	registry.Direct("filament_retract_lift", "filament_retract_lift_below", nil)
	registry.Direct("filament_retract_restart_extra", "filament_retract_restart_extra", nil)
	registry.Direct("filament_retract_before_wipe", "filament_retract_before_wipe", nil)
	registry.Direct("filament_retract_before_travel", "filament_retraction_minimum_travel", nil)
	registry.Direct("filament_retract_layer_change", "filament_retract_when_changing_layer", nil)
	registry.Direct("filament_wipe", "wipe", nil)

	// Load and unload
	registry.Direct("filament_loading_speed", "filament_loading_speed", nil)
	registry.Direct("filament_loading_speed_start", "filament_loading_speed_start", nil)
	registry.Direct("filament_unloading_speed", "filament_unloading_speed", nil)
	registry.Direct("filament_unloading_speed_start", "filament_unloading_speed_start", nil)
	registry.Direct("filament_load_time", "filament_load_time", nil)
	registry.Direct("filament_unload_time", "filament_unload_time", nil)

	// Multi-material tool changes
	registry.Direct("filament_minimal_purge_on_wipe_tower", "filament_minimal_purge_on_wipe_tower", nil)
	registry.Direct("filament_multitool_ramming", "filament_multitool_ramming", nil)
	registry.Direct("filament_multitool_ramming_flow", "filament_multitool_ramming_flow", nil)
	registry.Direct("filament_multitool_ramming_volume", "filament_multitool_ramming_volume", nil)
	registry.Direct("filament_ramming_parameters", "filament_ramming_parameters", nil)
	registry.Direct("filament_stamping_distance", "filament_stamping_distance", nil)
	registry.Direct("filament_stamping_loading_speed", "filament_stamping_loading_speed", nil)

	// Custom G-code blocks
	registry.Direct("start_filament_gcode", "filament_start_gcode", singleton)
	registry.Direct("end_filament_gcode", "filament_end_gcode", singleton)

	// TODO: translate compatibility expressions into explicit
	// compatible_printers lists.
	registry.Direct("compatible_printers", "compatible_printers", nil)
	registry.Direct("compatible_printers_condition", "compatible_printers_condition", nil)

	return registry, registry.Err()
}
