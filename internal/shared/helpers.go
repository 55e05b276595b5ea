// Package shared holds small helpers used across layers.
package shared

import (
	"regexp"
	"strings"
)

var (
	coreOneLPattern  = regexp.MustCompile(`\bCOREONEL\b`)
	coreOnePattern   = regexp.MustCompile(`\bCOREONE\b`)
	highFlowPattern  = regexp.MustCompile(`\bHF(\d)`)
	nozzleSuffixExpr = regexp.MustCompile(`(?i)\s+(HF)?0\.\d+\s+nozzle$`)
)

// NormalizeProfileName rewrites vendor spellings of printer names into
// the target catalog's form: COREONEL becomes CORE One L, COREONE
// becomes CORE One, and high-flow markers gain a space (HF0.4 becomes
// HF 0.4). The L variant rewrites first so COREONEL never matches the
// shorter pattern.
func NormalizeProfileName(name string) string {
	name = coreOneLPattern.ReplaceAllString(name, "CORE One L")
	name = coreOnePattern.ReplaceAllString(name, "CORE One")
	name = highFlowPattern.ReplaceAllString(name, "HF $1")
	return name
}

// ExtractPrinterBaseName strips a trailing nozzle-variant suffix such as
// "0.4 nozzle" or "HF0.4 nozzle" from a printer name.
func ExtractPrinterBaseName(fullName string) string {
	return strings.TrimSpace(nozzleSuffixExpr.ReplaceAllString(fullName, ""))
}

// ModelID derives a stable machine-model identifier from a family and a
// display name.
func ModelID(family string, name string) string {
	id := strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	prefix := family + "_"
	if !strings.HasPrefix(id, prefix) {
		id = prefix + id
	}
	return id
}
