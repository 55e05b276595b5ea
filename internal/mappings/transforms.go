// Package mappings declares the source-to-target schema mapping tables:
// one rule registry per source record type, the value transforms those
// rules apply, and the target-side default tables used to fill gaps.
package mappings

import (
	"strings"

	"slicer-profiles/internal/core"
)

// mapped returns a transform that rewrites a value through a lookup
// table, matching case-insensitively. An unknown value falls back to
// fallback, or passes through unchanged when fallback is empty.
func mapped(table map[string]string, fallback string) core.TransformFunc {
	return func(value string) any {
		if replacement, ok := table[strings.ToLower(value)]; ok {
			return replacement
		}
		if fallback != "" {
			return fallback
		}
		return value
	}
}

// commaList splits a comma-separated value into a trimmed list.
func commaList(value string) any {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		list = append(list, strings.TrimSpace(part))
	}
	return list
}

// singleton wraps a scalar value in a one-element list.
func singleton(value string) any {
	return []string{value}
}

// invertFlag flips a 0/1 flag.
func invertFlag(value string) any {
	if value == "1" {
		return "0"
	}
	return "1"
}

// flagIs returns a transform emitting "1" when the value equals match.
func flagIs(match string) core.TransformFunc {
	return func(value string) any {
		if value == match {
			return "1"
		}
		return "0"
	}
}

// whenEnabled returns a transform that picks one of two literals based
// on a 0/1 flag.
func whenEnabled(enabled string, disabled string) core.TransformFunc {
	return func(value string) any {
		if value == "1" {
			return enabled
		}
		return disabled
	}
}

// constant discards the source value entirely.
func constant(literal string) core.TransformFunc {
	return func(string) any {
		return literal
	}
}

// percentFallback substitutes a fixed absolute value for percentage
// spellings, which the target schema does not accept for this field.
func percentFallback(absolute string) core.TransformFunc {
	return func(value string) any {
		if strings.Contains(value, "%") {
			return absolute
		}
		return value
	}
}

// emptyDefault substitutes a literal for empty values.
func emptyDefault(literal string) core.TransformFunc {
	return func(value string) any {
		if value == "" {
			return literal
		}
		return value
	}
}

// modelCondition unwraps a contains('X') compatibility expression down
// to the bare model name; other expressions pass through unchanged.
func modelCondition(value string) any {
	start := strings.Index(value, "contains(")
	if start < 0 {
		return value
	}
	start += len("contains(")
	end := strings.Index(value[start:], ")")
	if end < 0 {
		return value
	}
	return strings.Trim(value[start:start+end], `'"`)
}

var fillPatterns = map[string]string{
	"rectilinear":       "rectilinear",
	"grid":              "grid",
	"triangles":         "triangles",
	"stars":             "stars",
	"cubic":             "cubic",
	"gyroid":            "gyroid",
	"honeycomb":         "honeycomb",
	"adaptivecubic":     "adaptive-cubic",
	"supportcubic":      "support-cubic",
	"3dhoneycomb":       "3dhoneycomb",
	"hilbertcurve":      "hilbertcurve",
	"archimedeanchords": "archimedeanchords",
	"octagramspiral":    "octagramspiral",
	"crosshatch":        "crosshatch",
}

var topSurfacePatterns = map[string]string{
	"rectilinear":        "rectilinear",
	"monotonic":          "monotonic",
	"monotoniclines":     "monotonicline",
	"alignedrectilinear": "rectilinear",
	"concentric":         "concentric",
	"hilbertcurve":       "hilbertcurve",
	"archimedeanchords":  "archimedeanchords",
	"octagramspiral":     "octagramspiral",
}

var bottomSurfacePatterns = map[string]string{
	"rectilinear":        "rectilinear",
	"monotonic":          "monotonic",
	"monotoniclines":     "monotonic",
	"alignedrectilinear": "rectilinear",
	"concentric":         "concentric",
	"hilbertcurve":       "hilbertcurve",
	"archimedeanchords":  "archimedeanchords",
	"octagramspiral":     "octagramspiral",
}

var supportPatterns = map[string]string{
	"rectilinear":      "rectilinear",
	"rectilinear-grid": "grid",
	"honeycomb":        "honeycomb",
	"lightning":        "lightning",
}

var supportStyles = map[string]string{
	"grid":    "snug",
	"snug":    "snug",
	"tree":    "tree",
	"organic": "tree",
}
