package types

// ResolvedProfile is the flat key/value set produced by resolving a
// record's inheritance chain.
type ResolvedProfile map[string]string

// SourcedValue pairs a resolved value with the full name of the record
// that directly defined it, for change-impact attribution.
type SourcedValue struct {
	Value  string
	Source string
}

// SourcedProfile is the source-attributed variant of a resolved profile.
type SourcedProfile map[string]SourcedValue

// Values strips attribution, yielding a plain resolved profile.
func (p SourcedProfile) Values() ResolvedProfile {
	out := make(ResolvedProfile, len(p))
	for key, sourced := range p {
		out[key] = sourced.Value
	}
	return out
}

// OutputProfile is a converted target-schema profile. Values are strings
// or ordered []string sequences, matching the JSON the target slicer
// consumes. Metadata keys (type, name, inherits, from, instantiation)
// live alongside converted settings.
type OutputProfile map[string]any

// OutputCorpus groups converted or reference profiles by output kind,
// then by profile name.
type OutputCorpus map[OutputKind]map[string]OutputProfile

// MetadataKeys are the output-profile keys excluded from setting-level
// comparison by the differ.
var MetadataKeys = map[string]struct{}{
	"type":          {},
	"name":          {},
	"inherits":      {},
	"from":          {},
	"instantiation": {},
}
