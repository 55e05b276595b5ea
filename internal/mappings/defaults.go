package mappings

import (
	"slicer-profiles/internal/types"
)

// DefaultSet returns the target-schema default tables: values the
// target slicer requires but the source bundles never carry. The caller
// passes the set into the converter explicitly; nothing reads these
// through ambient state.
func DefaultSet() types.DefaultSet {
	return types.DefaultSet{
		Process:      processDefaults(),
		Machine:      machineDefaults(),
		Filament:     filamentDefaults(),
		MachineModel: machineModelDefaults(),
	}
}

func processDefaults() map[string]any {
	return map[string]any{
		"setting_id": "GFSA04",

		"bottom_surface_pattern": "monotonic",
		"wall_generator":         "arachne",
		"wall_infill_order":      "inner wall/outer wall/infill",

		"brim_width": "5",

		"draft_shield": "disabled",

		"overhang_1_4_speed":    "80%",
		"overhang_4_4_speed":    "15",
		"enable_overhang_speed": "1",

		"min_bead_width":                 "85%",
		"min_feature_size":               "25%",
		"slice_closing_radius":           "0.049",
		"slowdown_for_curled_perimeters": "1",
		"resolution":                     "0",

		"minimum_sparse_infill_area": "0",
		"infill_anchor":              "2",
		"infill_anchor_max":          "12",

		"support_type":                   "normal(auto)",
		"support_interface_loop_pattern": "0",
		"tree_support_branch_angle":      "40",
		"tree_support_branch_diameter":   "2",
		"tree_support_wall_count":        "0",
		"tree_support_with_infill":       "0",

		"solid_infill_filament":      "1",
		"sparse_infill_filament":     "1",
		"wall_filament":              "1",
		"support_filament":           "0",
		"support_interface_filament": "0",

		"exclude_object":             "1",
		"reduce_crossing_wall":       "0",
		"max_travel_detour_distance": "0",
		"standby_temperature_delta":  "-5",

		"ironing_type":    "no ironing",
		"ironing_flow":    "10%",
		"ironing_spacing": "0.15",
		"ironing_speed":   "30",

		"raft_layers":    "0",
		"raft_expansion": "1.5",

		"skirt_distance": "2",
		"skirt_height":   "3",

		"travel_speed_z": "12",

		"wipe_tower_no_sparse_layers": "0",
		"prime_tower_width":           "60",

		"xy_hole_compensation":    "0",
		"xy_contour_compensation": "0",

		"print_sequence": "by layer",
		"spiral_mode":    "0",

		"print_settings_id": "",

		"overhang_reverse":      "1",
		"precise_outer_wall":    "1",
		"internal_bridge_speed": "50",
	}
}

func machineDefaults() map[string]any {
	return map[string]any{
		"bed_exclude_area": []string{},
		"scan_first_layer": "0",

		"auxiliary_fan": "0",

		"extruder_clearance_height_to_lid": "140",
		"extruder_clearance_height_to_rod": "36",
		"extruder_clearance_radius":        "57",

		"parking_pos_retraction": "92",

		"retract_length_toolchange":        []string{"0"},
		"retract_restart_extra_toolchange": []string{"0"},

		"use_firmware_retraction":  "0",
		"use_relative_e_distances": "0",

		"scan_first_layer_gcode": "",
		"setting_id":             "",
	}
}

func filamentDefaults() map[string]any {
	return map[string]any{
		"filament_is_support":  "0",
		"filament_settings_id": "",

		"additional_cooling_fan_speed": []string{},
		"enable_overhang_bridge_fan":   "1",
		"fan_speedup_time":             "0",
		"fan_speedup_overhangs":        "1",
		"fan_kickstart":                "0",

		"filament_retract_lift_below": []string{"0"},
		"filament_retract_lift_above": []string{"0"},

		"filament_z_hop":       []string{"0"},
		"filament_z_hop_types": []string{"Normal Lift"},

		"temperature_vitrification": []string{"0"},

		"filament_colour": []string{"#FFFFFF"},
	}
}

func machineModelDefaults() map[string]any {
	return map[string]any{
		"family":       "Prusa",
		"machine_tech": "FFF",
		"hotend_model": "",

		"default_materials": []string{},

		"bed_model":   "",
		"bed_texture": "",
	}
}
