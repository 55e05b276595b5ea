package mappings

import (
	"slicer-profiles/internal/core"
)

// NewPrintRegistry builds the print-to-process rule table.
func NewPrintRegistry() (*core.Registry, error) {
	registry := core.NewRegistry()

	// Layer heights
	registry.Direct("layer_height", "layer_height", nil)
	registry.Direct("first_layer_height", "initial_layer_print_height", nil)
	registry.Direct("min_layer_height", "min_layer_height", nil)
	registry.Direct("max_layer_height", "max_layer_height", nil)

	// Walls
	registry.Direct("perimeters", "wall_loops", nil)
	registry.Direct("perimeter_speed", "inner_wall_speed", nil)
	registry.Direct("external_perimeter_speed", "outer_wall_speed", nil)
	registry.Direct("perimeter_acceleration", "inner_wall_acceleration", nil)
	registry.Direct("external_perimeter_acceleration", "outer_wall_acceleration", nil)

	// Infill
	registry.Direct("fill_density", "sparse_infill_density", nil)
	registry.Direct("fill_pattern", "sparse_infill_pattern", mapped(fillPatterns, ""))
	registry.Direct("fill_angle", "infill_direction", nil)
	registry.Direct("infill_speed", "sparse_infill_speed", nil)
	registry.Direct("solid_infill_speed", "internal_solid_infill_speed", nil)
	registry.Direct("infill_acceleration", "sparse_infill_acceleration", nil)
	registry.Direct("solid_infill_acceleration", "internal_solid_infill_acceleration", nil)
	registry.Direct("infill_every_layers", "infill_combination", invertFlag)
	registry.Direct("infill_only_where_needed", "minimum_sparse_infill_area", whenEnabled("15", "0"))
	registry.Direct("infill_overlap", "infill_wall_overlap", nil)

	// Top and bottom shells
	registry.Direct("top_solid_layers", "top_shell_layers", nil)
	registry.Direct("bottom_solid_layers", "bottom_shell_layers", nil)
	registry.Direct("top_solid_infill_speed", "top_surface_speed", nil)
	registry.Direct("top_solid_infill_acceleration", "top_surface_acceleration", nil)
	registry.Direct("top_fill_pattern", "top_surface_pattern", mapped(topSurfacePatterns, "monotonicline"))
	registry.Direct("bottom_fill_pattern", "bottom_surface_pattern", mapped(bottomSurfacePatterns, "monotonic"))
	registry.Direct("top_solid_min_thickness", "top_shell_thickness", nil)
	registry.Direct("bottom_solid_min_thickness", "bottom_shell_thickness", nil)

	// Speeds
	registry.Direct("travel_speed", "travel_speed", nil)
	registry.Direct("first_layer_speed", "initial_layer_speed", nil)
	registry.Direct("bridge_speed", "bridge_speed", nil)
	registry.Direct("gap_fill_speed", "gap_infill_speed", nil)
	registry.Direct("first_layer_infill_speed", "initial_layer_infill_speed", nil)
	registry.Direct("small_perimeter_speed", "small_perimeter_speed", nil)

	// Accelerations
	registry.Direct("default_acceleration", "default_acceleration", nil)
	registry.Direct("first_layer_acceleration", "initial_layer_acceleration", nil)
	registry.Direct("bridge_acceleration", "bridge_acceleration", nil)
	registry.Direct("travel_acceleration", "travel_acceleration", nil)

	// Line widths
	registry.Direct("extrusion_width", "line_width", nil)
	registry.Direct("first_layer_extrusion_width", "initial_layer_line_width", nil)
	registry.Direct("perimeter_extrusion_width", "inner_wall_line_width", nil)
	registry.Direct("external_perimeter_extrusion_width", "outer_wall_line_width", nil)
	registry.Direct("infill_extrusion_width", "sparse_infill_line_width", nil)
	registry.Direct("solid_infill_extrusion_width", "internal_solid_infill_line_width", nil)
	registry.Direct("top_infill_extrusion_width", "top_surface_line_width", nil)

	// Supports. The source vendor ships supports enabled by default,
	// which the target catalogs do not, so the flag is pinned off.
	registry.Direct("support_material", "enable_support", constant("0"))
	registry.Direct("support_material_speed", "support_speed", nil)
	registry.Direct("support_material_threshold", "support_threshold_angle", nil)
	registry.Direct("support_material_pattern", "support_base_pattern", mapped(supportPatterns, "auto"))
	registry.Direct("support_material_spacing", "support_base_pattern_spacing", nil)
	registry.Direct("support_material_angle", "support_angle", nil)
	registry.Direct("support_material_interface_layers", "support_interface_top_layers", nil)
	registry.Direct("support_material_interface_spacing", "support_interface_spacing", nil)
	registry.Direct("support_material_interface_speed", "support_interface_speed", nil)
	registry.Direct("support_material_buildplate_only", "support_on_build_plate_only", nil)
	// TODO: derive the absolute fallback from the nozzle size instead of
	// assuming 0.35.
	registry.Direct("support_material_xy_spacing", "support_object_xy_distance", percentFallback("0.35"))
	registry.Direct("support_material_contact_distance", "support_top_z_distance", nil)
	registry.Direct("support_material_contact_distance", "support_bottom_z_distance", nil)
	registry.Direct("raft_contact_distance", "raft_contact_distance", nil)
	registry.Direct("support_material_extrusion_width", "support_line_width", nil)
	registry.Direct("support_material_bottom_interface_layers", "support_interface_bottom_layers", nil)
	registry.Direct("support_material_enforce_layers", "enforce_support_layers", nil)
	registry.Direct("support_material_style", "support_style", mapped(supportStyles, "snug"))
	registry.Direct("support_material_interface_pattern", "support_interface_pattern", mapped(supportPatterns, "auto"))
	registry.Direct("support_tree_angle_slow", "tree_support_angle_slow", nil)
	registry.Direct("support_tree_branch_diameter_angle", "tree_support_branch_diameter_angle", nil)
	registry.Direct("support_tree_tip_diameter", "tree_support_tip_diameter", nil)
	registry.Direct("support_tree_top_rate", "tree_support_top_rate", nil)

	// Skirt and brim
	registry.Direct("skirts", "skirt_loops", nil)
	registry.Direct("skirt_distance", "skirt_distance", nil)
	registry.Direct("skirt_height", "skirt_height", nil)
	registry.Direct("min_skirt_length", "min_skirt_length", nil)
	registry.Direct("brim_width", "brim_width", nil)
	registry.Direct("brim_separation", "brim_object_gap", nil)

	// Raft
	registry.Direct("raft_layers", "raft_layers", nil)
	registry.Direct("raft_first_layer_density", "raft_first_layer_density", nil)
	registry.Direct("raft_first_layer_expansion", "raft_first_layer_expansion", nil)

	// Bridges
	registry.Direct("bridge_angle", "bridge_angle", nil)
	registry.Direct("bridge_flow_ratio", "bridge_flow", nil)
	registry.Direct("thick_bridges", "thick_bridges", nil)
	registry.Direct("dont_support_bridges", "bridge_no_support", nil)

	// Misc
	registry.Direct("seam_position", "seam_position", nil)
	registry.Direct("spiral_vase", "spiral_mode", nil)
	registry.Direct("gcode_resolution", "resolution", nil)
	registry.Direct("xy_size_compensation", "xy_contour_compensation", nil)
	registry.Direct("elefant_foot_compensation", "elefant_foot_compensation", nil)
	registry.Direct("overhangs", "detect_overhang_wall", nil)
	registry.Direct("thin_walls", "detect_thin_wall", nil)
	registry.Direct("complete_objects", "print_sequence", whenEnabled("by object", "by layer"))
	registry.Direct("output_filename_format", "filename_format", nil)
	registry.Direct("avoid_crossing_perimeters", "reduce_crossing_wall", nil)
	registry.Direct("arc_fitting", "enable_arc_fitting", flagIs("emit_center"))

	// Prime tower
	registry.Direct("wipe_tower", "enable_prime_tower", nil)
	registry.Direct("wipe_tower_width", "prime_tower_width", nil)
	registry.Direct("wipe_tower_cone_angle", "wipe_tower_cone_angle", nil)
	registry.Direct("wipe_tower_extra_spacing", "wipe_tower_extra_spacing", nil)
	registry.Direct("wipe_tower_rotation_angle", "wipe_tower_rotation_angle", nil)

	// Advanced
	registry.Direct("gcode_comments", "gcode_comments", nil)
	registry.Direct("gcode_label_objects", "gcode_label_objects", flagIs("firmware"))
	registry.Direct("infill_anchor", "infill_anchor", nil)
	registry.Direct("infill_anchor_max", "infill_anchor_max", nil)
	registry.Direct("interface_shells", "interface_shells", nil)
	registry.Direct("ooze_prevention", "ooze_prevention", nil)
	registry.Direct("standby_temperature_delta", "standby_temperature_delta", nil)
	registry.Direct("external_perimeters_first", "is_infill_first", invertFlag)
	registry.Direct("only_retract_when_crossing_perimeters", "reduce_infill_retraction", flagIs("1"))

	// Overhang speed bands
	registry.Direct("overhang_speed_0", "overhang_1_4_speed", nil)
	registry.Direct("overhang_speed_1", "overhang_2_4_speed", nil)
	registry.Direct("overhang_speed_2", "overhang_3_4_speed", nil)
	registry.Direct("overhang_speed_3", "overhang_4_4_speed", nil)

	// TODO: rewrite into a compatible_printers list instead of keeping
	// the condition expression.
	registry.Direct("compatible_printers_condition", "compatible_printers_condition", modelCondition)

	// No target-schema equivalent.
	registry.Ignore(
		"max_print_speed",
		"print_settings_id",
		"adaptive_layer_height",
		"tree_support_with_infill",
		"tree_support_branch_diameter_double_wall",
		"support_material_synchronize_layers",
	)

	return registry, registry.Err()
}
